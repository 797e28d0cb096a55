package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hargaku_backend/internals/features/pricing/calculator/controller"
)

func CalculatorRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCalculatorController(db)
	calc := api.Group("/calculator")
	calc.Post("/compute", ctrl.Compute)
}
