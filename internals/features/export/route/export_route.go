package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hargaku_backend/internals/features/export/controller"
)

func ExportRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewExportController(db)
	export := api.Group("/export")
	export.Post("/calculation/xlsx", ctrl.ExportCalculationXLSX)
	export.Post("/calculation/pdf", ctrl.ExportCalculationPDF)
}
