package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assistantRoute "hargaku_backend/internals/features/assistant/route"
	backupRoute "hargaku_backend/internals/features/backup/route"
	backupService "hargaku_backend/internals/features/backup/service"
	customerRoute "hargaku_backend/internals/features/customers/route"
	exportRoute "hargaku_backend/internals/features/export/route"
	historyRoute "hargaku_backend/internals/features/history/route"
	calculatorRoute "hargaku_backend/internals/features/pricing/calculator/route"
	productRoute "hargaku_backend/internals/features/pricing/products/route"
	regionRoute "hargaku_backend/internals/features/pricing/regions/route"
)

// SetupRoutes mendaftarkan seluruh fitur di bawah prefix /api.
func SetupRoutes(app *fiber.App, db *gorm.DB, backup *backupService.Manager) {
	api := app.Group("/api")

	productRoute.ProductRoutes(api, db)
	regionRoute.ProductRegionRoutes(api, db)
	customerRoute.CustomerRoutes(api, db)
	calculatorRoute.CalculatorRoutes(api, db)
	historyRoute.HistoryRoutes(api, db)
	exportRoute.ExportRoutes(api, db)
	backupRoute.BackupRoutes(api, db, backup)
	assistantRoute.AssistantRoutes(api, db)
}
