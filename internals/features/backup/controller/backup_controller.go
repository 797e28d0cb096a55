package controller

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hargaku_backend/internals/features/backup/service"
	helper "hargaku_backend/internals/helpers"
)

type BackupController struct {
	DB      *gorm.DB
	Manager *service.Manager
}

func NewBackupController(db *gorm.DB, manager *service.Manager) *BackupController {
	return &BackupController{DB: db, Manager: manager}
}

// 🟢 GET /api/backup/export (unduh dokumen backup sebagai file JSON)
func (ctrl *BackupController) ExportBackup(c *fiber.Ctx) error {
	doc, err := service.BuildDocument(ctrl.DB)
	if err != nil {
		return helper.JsonDBError(c, err, "Gagal menyusun backup")
	}
	filename := fmt.Sprintf("hargaku-backup-%s.json", time.Now().Format("02-01-2006"))
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.JSON(doc)
}

// 🟢 POST /api/backup/import (body = isi file backup)
//
// Validasi file lebih dulu, nol baris tertulis kalau ditolak. Upsert per
// koleksi dalam urutan FK, idempoten untuk file yang sama.
func (ctrl *BackupController) ImportBackup(c *fiber.Ctx) error {
	doc, err := service.ValidateDocument(c.Body())
	if err != nil {
		if errors.Is(err, service.ErrMalformedDocument) ||
			errors.Is(err, service.ErrMissingVersion) ||
			errors.Is(err, service.ErrMissingArrays) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca file backup")
	}

	if err := service.ImportDocument(ctrl.DB, doc); err != nil {
		log.Printf("[ERROR] Import backup gagal: %v", err)
		return helper.JsonDBError(c, err, "Gagal mengimpor backup")
	}
	return helper.JsonOK(c, "Backup berhasil diimpor", fiber.Map{
		"products":               len(doc.Products),
		"product_regions":        len(doc.ProductRegions),
		"customers":              len(doc.Customers),
		"price_history":          len(doc.PriceHistory),
		"customer_pricing_tiers": len(doc.CustomerPricingTiers),
	})
}

// 🟢 POST /api/backup/restore (dorong snapshot lokal ke database)
func (ctrl *BackupController) RestoreBackup(c *fiber.Ctx) error {
	raw, err := ctrl.Manager.ReadSnapshot()
	if err != nil {
		if os.IsNotExist(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Belum ada snapshot lokal")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca snapshot lokal")
	}

	doc, err := service.ValidateDocument(raw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := service.ImportDocument(ctrl.DB, doc); err != nil {
		log.Printf("[ERROR] Restore backup gagal: %v", err)
		return helper.JsonDBError(c, err, "Gagal me-restore backup")
	}
	return helper.JsonOK(c, "Snapshot lokal berhasil di-restore", nil)
}

// 🟢 GET /api/backup/status
func (ctrl *BackupController) BackupStatus(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Status backup", ctrl.Manager.Status())
}

// 🟢 POST /api/backup/now (paksa snapshot tanpa menunggu debounce)
func (ctrl *BackupController) BackupNow(c *fiber.Ctx) error {
	if err := ctrl.Manager.WriteSnapshot(); err != nil {
		log.Printf("[ERROR] Snapshot manual gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menulis snapshot")
	}
	return helper.JsonOK(c, "Snapshot berhasil ditulis", ctrl.Manager.Status())
}
