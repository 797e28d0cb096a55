package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hargaku_backend/internals/features/pricing/regions/dto"
	"hargaku_backend/internals/features/pricing/regions/model"
	helper "hargaku_backend/internals/helpers"
)

type ProductRegionController struct {
	DB *gorm.DB
}

func NewProductRegionController(db *gorm.DB) *ProductRegionController {
	return &ProductRegionController{DB: db}
}

// 🟢 POST /api/product-regions
func (ctrl *ProductRegionController) CreateRegion(c *fiber.Ctx) error {
	var req dto.ProductRegionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	req.Normalize()
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	newRegion := req.ToModel()
	if err := ctrl.DB.Create(newRegion).Error; err != nil {
		log.Printf("[ERROR] Gagal menyimpan region: %v", err)
		return helper.JsonDBError(c, err, "Gagal menyimpan region")
	}
	return helper.JsonCreated(c, "Region berhasil ditambahkan", dto.ToProductRegionResponse(newRegion))
}

// 🟢 GET /api/product-regions (grup A dulu, lalu nama)
func (ctrl *ProductRegionController) GetAllRegions(c *fiber.Ctx) error {
	var regions []model.ProductRegionModel
	if err := ctrl.DB.Order("region_group ASC, name ASC").Find(&regions).Error; err != nil {
		log.Printf("[ERROR] Gagal mengambil data region: %v", err)
		return helper.JsonDBError(c, err, "Gagal mengambil data region")
	}
	return helper.JsonOK(c, "Region berhasil ditemukan", dto.ToProductRegionResponseList(regions))
}

// 🟡 PUT /api/product-regions/:id
func (ctrl *ProductRegionController) UpdateRegion(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Region ID tidak valid")
	}

	var region model.ProductRegionModel
	if err := ctrl.DB.Where("id = ?", id).First(&region).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Region tidak ditemukan")
	}

	var req dto.ProductRegionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	req.Normalize()
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	updates := map[string]interface{}{
		"name":             req.Name,
		"price_multiplier": req.Multiplier,
		"region_group":     req.Group,
	}
	if err := ctrl.DB.Model(&region).Updates(updates).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal memperbarui region")
	}
	if err := ctrl.DB.Where("id = ?", id).First(&region).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data region terbaru")
	}
	return helper.JsonUpdated(c, "Region berhasil diperbarui", dto.ToProductRegionResponse(&region))
}

// 🔴 DELETE /api/product-regions/:id
func (ctrl *ProductRegionController) DeleteRegion(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Region ID tidak valid")
	}

	res := ctrl.DB.Where("id = ?", id).Delete(&model.ProductRegionModel{})
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "Gagal menghapus region")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Region tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Region berhasil dihapus", nil)
}
