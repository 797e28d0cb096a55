package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hargaku_backend/internals/features/customers/controller"
)

// CRUD pelanggan + tier harga (nested di bawah pelanggan)
func CustomerRoutes(api fiber.Router, db *gorm.DB) {
	customerCtrl := controller.NewCustomerController(db)
	customers := api.Group("/customers")
	customers.Post("/", customerCtrl.CreateCustomer)
	customers.Get("/", customerCtrl.GetAllCustomers)
	customers.Get("/:id", customerCtrl.GetCustomerByID)
	customers.Put("/:id", customerCtrl.UpdateCustomer)
	customers.Delete("/:id", customerCtrl.DeleteCustomer)

	tierCtrl := controller.NewPricingTierController(db)
	tiers := api.Group("/customers/:customer_id/tiers")
	tiers.Post("/", tierCtrl.CreateTier)
	tiers.Put("/:id", tierCtrl.UpdateTier)
	tiers.Delete("/:id", tierCtrl.DeleteTier)
}
