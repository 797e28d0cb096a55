package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hargaku_backend/internals/features/pricing/regions/controller"
)

// CRUD region (pengali harga per daerah)
func ProductRegionRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProductRegionController(db)
	regions := api.Group("/product-regions")
	regions.Post("/", ctrl.CreateRegion)
	regions.Get("/", ctrl.GetAllRegions)
	regions.Put("/:id", ctrl.UpdateRegion)
	regions.Delete("/:id", ctrl.DeleteRegion)
}
