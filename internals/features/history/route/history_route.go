package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	exportController "hargaku_backend/internals/features/export/controller"
	"hargaku_backend/internals/features/history/controller"
)

func HistoryRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewHistoryController(db)
	expCtrl := exportController.NewExportController(db)

	history := api.Group("/history")
	history.Post("/", ctrl.CreateHistory)
	history.Get("/", ctrl.GetHistory)
	// Rute export didaftarkan sebelum /:id supaya tidak tertangkap param
	history.Get("/export/xlsx", expCtrl.ExportHistoryXLSX)
	history.Get("/export/pdf", expCtrl.ExportHistoryPDF)
	history.Get("/:id", ctrl.GetHistoryByID)
	history.Patch("/:id", ctrl.UpdateHistory)
	history.Delete("/:id", ctrl.DeleteHistory)
	history.Get("/:id/duplicate", ctrl.DuplicateHistory)
}
