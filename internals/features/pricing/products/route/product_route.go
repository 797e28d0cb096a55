package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hargaku_backend/internals/features/pricing/products/controller"
)

// CRUD produk (dipakai kalkulator & manajemen produk)
func ProductRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProductController(db)
	products := api.Group("/products")
	products.Post("/", ctrl.CreateProduct)
	products.Get("/", ctrl.GetAllProducts)
	products.Get("/:id", ctrl.GetProductByID)
	products.Put("/:id", ctrl.UpdateProduct)
	products.Delete("/:id", ctrl.DeleteProduct)
}
