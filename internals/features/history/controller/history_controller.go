package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hargaku_backend/internals/features/history/dto"
	"hargaku_backend/internals/features/history/model"
	"hargaku_backend/internals/features/history/service"
	calcController "hargaku_backend/internals/features/pricing/calculator/controller"
	calcservice "hargaku_backend/internals/features/pricing/calculator/service"
	helper "hargaku_backend/internals/helpers"
)

type HistoryController struct {
	DB *gorm.DB
}

func NewHistoryController(db *gorm.DB) *HistoryController {
	return &HistoryController{DB: db}
}

// applyCustomerFilter menerapkan ?customer=all|none|<uuid> ke query.
func applyCustomerFilter(q *gorm.DB, raw string) (*gorm.DB, error) {
	switch raw {
	case "", "all":
		return q, nil
	case "none":
		return q.Where("customer_id IS NULL"), nil
	default:
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, err
		}
		return q.Where("customer_id = ?", id), nil
	}
}

// 🟢 POST /api/history (kalkulasi dijalankan ulang lalu disimpan)
func (ctrl *HistoryController) CreateHistory(c *fiber.Ctx) error {
	var req dto.CreateHistoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	req.Normalize()
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	res, err := calcservice.ComputeSelection(ctrl.DB, calcservice.Selection{
		ProductID:  req.ProductID,
		RegionID:   req.RegionID,
		CustomerID: req.CustomerID,
		TierID:     req.TierID,
		Discounts:  req.ToStackedDiscounts(),
		Margin:     req.ToMarginInput(),
	})
	if err != nil {
		return calcController.JsonSelectionError(c, err)
	}

	row, err := service.BuildHistoryModel(res, req.ToMarginInput(), req.Notes)
	if err != nil {
		log.Printf("[ERROR] Gagal menyusun baris riwayat: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan riwayat")
	}
	if err := ctrl.DB.Create(row).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menyimpan riwayat")
	}
	return helper.JsonCreated(c, "Riwayat harga berhasil disimpan", dto.ToHistoryResponse(row))
}

// 🟢 GET /api/history?customer=all|none|<id>&page=&per_page= (terbaru dulu)
func (ctrl *HistoryController) GetHistory(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 100, 100)

	q, err := applyCustomerFilter(ctrl.DB.Model(&model.PriceHistoryModel{}), strings.TrimSpace(c.Query("customer")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Filter customer tidak valid")
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal menghitung riwayat")
	}

	var rows []model.PriceHistoryModel
	if err := q.Session(&gorm.Session{}).
		Order("created_at DESC").Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil riwayat")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Riwayat harga berhasil ditemukan", dto.ToHistoryResponseList(rows), &pagination)
}

// 🟢 GET /api/history/:id
func (ctrl *HistoryController) GetHistoryByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "History ID tidak valid")
	}

	var row model.PriceHistoryModel
	if err := ctrl.DB.Where("id = ?", id).First(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Riwayat tidak ditemukan")
	}
	return helper.JsonOK(c, "Riwayat berhasil ditemukan", dto.ToHistoryResponse(&row))
}

// 🟡 PATCH /api/history/:id (edit langsung final/margin, net diturunkan balik)
func (ctrl *HistoryController) UpdateHistory(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "History ID tidak valid")
	}

	var row model.PriceHistoryModel
	if err := ctrl.DB.Where("id = ?", id).First(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Riwayat tidak ditemukan")
	}

	var req dto.UpdateHistoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	req.Normalize()
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	fields, err := service.DeriveEdit(req.FinalPrice, req.MarginAmount, req.MarginType, req.Notes)
	if err != nil {
		if errors.Is(err, service.ErrNegativeNet) {
			return helper.JsonValidationError(c, map[string][]string{
				"final_price": {err.Error()},
			})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui riwayat")
	}

	updates := map[string]interface{}{
		"final_price":     fields.FinalPrice,
		"margin_amount":   fields.MarginAmount,
		"net_price":       fields.NetPrice,
		"margin_type":     fields.MarginType,
		"payment_type":    fields.PaymentType,
		"tempo_term_days": fields.TempoTermDays,
	}
	if fields.NotesSet {
		if fields.Notes != nil {
			updates["notes"] = *fields.Notes
		} else {
			updates["notes"] = nil
		}
	}
	if err := ctrl.DB.Model(&row).Updates(updates).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal memperbarui riwayat")
	}
	if err := ctrl.DB.Where("id = ?", id).First(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat riwayat terbaru")
	}
	return helper.JsonUpdated(c, "Riwayat berhasil diperbarui", dto.ToHistoryResponse(&row))
}

// 🔴 DELETE /api/history/:id
func (ctrl *HistoryController) DeleteHistory(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "History ID tidak valid")
	}

	res := ctrl.DB.Where("id = ?", id).Delete(&model.PriceHistoryModel{})
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "Gagal menghapus riwayat")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Riwayat tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Riwayat berhasil dihapus", nil)
}

// 🟢 GET /api/history/:id/duplicate (susun ulang state kalkulator)
func (ctrl *HistoryController) DuplicateHistory(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "History ID tidak valid")
	}

	var row model.PriceHistoryModel
	if err := ctrl.DB.Where("id = ?", id).First(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Riwayat tidak ditemukan")
	}

	productID, regionID, customerID, discounts, margin, err := service.DuplicateState(ctrl.DB, &row)
	if err != nil {
		log.Printf("[ERROR] Gagal menduplikasi riwayat %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menduplikasi riwayat")
	}

	resp := dto.DuplicateResponse{
		ProductID:  productID,
		RegionID:   regionID,
		CustomerID: customerID,
		Discounts:  discounts,
		Margin:     margin,
		Notes:      row.Notes,
	}
	return helper.JsonOK(c, "Riwayat siap diduplikasi ke kalkulator", resp)
}
