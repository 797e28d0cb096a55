package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hargaku_backend/internals/features/backup/controller"
	"hargaku_backend/internals/features/backup/service"
)

func BackupRoutes(api fiber.Router, db *gorm.DB, manager *service.Manager) {
	ctrl := controller.NewBackupController(db, manager)
	backup := api.Group("/backup")
	backup.Get("/export", ctrl.ExportBackup)
	backup.Post("/import", ctrl.ImportBackup)
	backup.Post("/restore", ctrl.RestoreBackup)
	backup.Get("/status", ctrl.BackupStatus)
	backup.Post("/now", ctrl.BackupNow)
}
