package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hargaku_backend/internals/features/pricing/calculator/dto"
	"hargaku_backend/internals/features/pricing/calculator/service"
	helper "hargaku_backend/internals/helpers"
)

type CalculatorController struct {
	DB *gorm.DB
}

func NewCalculatorController(db *gorm.DB) *CalculatorController {
	return &CalculatorController{DB: db}
}

// JsonSelectionError memetakan error resolve kalkulasi ke status HTTP.
func JsonSelectionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrRegionNotFound),
		errors.Is(err, service.ErrCustomerNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNoSelection):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	default:
		log.Printf("[ERROR] Kalkulasi gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menjalankan kalkulasi")
	}
}

// 🟢 POST /api/calculator/compute
func (ctrl *CalculatorController) Compute(c *fiber.Ctx) error {
	var req dto.ComputeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	req.Normalize()
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	res, err := service.ComputeSelection(ctrl.DB, service.Selection{
		ProductID:  req.ProductID,
		RegionID:   req.RegionID,
		CustomerID: req.CustomerID,
		TierID:     req.TierID,
		Discounts:  req.ToStackedDiscounts(),
		Margin:     req.ToMarginInput(),
	})
	if err != nil {
		return JsonSelectionError(c, err)
	}
	return helper.JsonOK(c, "Kalkulasi berhasil", dto.ToComputeResponse(res, req.ToMarginInput()))
}
