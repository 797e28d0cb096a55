package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hargaku_backend/internals/features/customers/dto"
	"hargaku_backend/internals/features/customers/model"
	helper "hargaku_backend/internals/helpers"
)

type PricingTierController struct {
	DB *gorm.DB
}

func NewPricingTierController(db *gorm.DB) *PricingTierController {
	return &PricingTierController{DB: db}
}

// 🟢 POST /api/customers/:customer_id/tiers
func (ctrl *PricingTierController) CreateTier(c *fiber.Ctx) error {
	customerID, err := uuid.Parse(strings.TrimSpace(c.Params("customer_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Customer ID tidak valid")
	}

	// Precheck FK biar error jadi 404, bukan 500
	var cnt int64
	if err := ctrl.DB.Model(&model.CustomerModel{}).Where("id = ?", customerID).Count(&cnt).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal memeriksa pelanggan")
	}
	if cnt == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Pelanggan tidak ditemukan")
	}

	var req dto.PricingTierRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	req.Normalize()
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	newTier := req.ToModel(customerID)
	if err := ctrl.DB.Create(newTier).Error; err != nil {
		log.Printf("[ERROR] Gagal menyimpan tier: %v", err)
		return helper.JsonDBError(c, err, "Gagal menyimpan tier")
	}
	return helper.JsonCreated(c, "Tier harga berhasil ditambahkan", dto.ToPricingTierResponse(newTier))
}

// 🟡 PUT /api/customers/:customer_id/tiers/:id
func (ctrl *PricingTierController) UpdateTier(c *fiber.Ctx) error {
	customerID, err := uuid.Parse(strings.TrimSpace(c.Params("customer_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Customer ID tidak valid")
	}
	tierID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tier ID tidak valid")
	}

	// Tier harus milik pelanggan pada path (tidak boleh lintas pelanggan)
	var tier model.CustomerPricingTierModel
	if err := ctrl.DB.Where("id = ? AND customer_id = ?", tierID, customerID).First(&tier).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Tier tidak ditemukan untuk pelanggan ini")
	}

	var req dto.PricingTierRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	req.Normalize()
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	updated := req.ToModel(customerID)
	updates := map[string]interface{}{
		"tier_name":           updated.TierName,
		"discount_percentage": updated.DiscountPercentage,
		"description":         updated.Description,
	}
	if err := ctrl.DB.Model(&tier).Updates(updates).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal memperbarui tier")
	}
	if err := ctrl.DB.Where("id = ?", tierID).First(&tier).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data tier terbaru")
	}
	return helper.JsonUpdated(c, "Tier harga berhasil diperbarui", dto.ToPricingTierResponse(&tier))
}

// 🔴 DELETE /api/customers/:customer_id/tiers/:id
func (ctrl *PricingTierController) DeleteTier(c *fiber.Ctx) error {
	customerID, err := uuid.Parse(strings.TrimSpace(c.Params("customer_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Customer ID tidak valid")
	}
	tierID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tier ID tidak valid")
	}

	res := ctrl.DB.Where("id = ? AND customer_id = ?", tierID, customerID).Delete(&model.CustomerPricingTierModel{})
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "Gagal menghapus tier")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Tier tidak ditemukan untuk pelanggan ini")
	}
	return helper.JsonDeleted(c, "Tier harga berhasil dihapus", nil)
}
