package controller

import (
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	customerModel "hargaku_backend/internals/features/customers/model"
	"hargaku_backend/internals/features/export/service"
	historyModel "hargaku_backend/internals/features/history/model"
	calcController "hargaku_backend/internals/features/pricing/calculator/controller"
	calcdto "hargaku_backend/internals/features/pricing/calculator/dto"
	calcservice "hargaku_backend/internals/features/pricing/calculator/service"
	helper "hargaku_backend/internals/helpers"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pdfContentType  = "application/pdf"
)

type ExportController struct {
	DB *gorm.DB
}

func NewExportController(db *gorm.DB) *ExportController {
	return &ExportController{DB: db}
}

func sendAttachment(c *fiber.Ctx, contentType, filename string, body []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(body)
}

// resolveCalculation menjalankan alur yang sama dengan endpoint compute,
// hanya hasilnya dirender ke dokumen alih-alih JSON.
func (ctrl *ExportController) resolveCalculation(c *fiber.Ctx) (*calcservice.Resolved, string, error) {
	var req calcdto.ComputeRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, "", helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	req.Normalize()
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return nil, "", helper.JsonValidationError(c, fieldErrs)
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
		return nil, "", calcController.JsonSelectionError(c, err)
	}
	return res, calcservice.MarginLabel(req.Margin.PaymentType, req.Margin.TempoTermDays), nil
}

// 🟢 POST /api/export/calculation/xlsx
func (ctrl *ExportController) ExportCalculationXLSX(c *fiber.Ctx) error {
	res, marginLabel, err := ctrl.resolveCalculation(c)
	if err != nil {
		return err
	}
	body, renderErr := service.RenderCalculationXLSX(res, marginLabel)
	if renderErr != nil {
		log.Printf("[ERROR] Render Excel gagal: %v", renderErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat file Excel")
	}
	return sendAttachment(c, xlsxContentType, service.ReportFilename(res.Product.Name, "xlsx"), body)
}

// 🟢 POST /api/export/calculation/pdf
func (ctrl *ExportController) ExportCalculationPDF(c *fiber.Ctx) error {
	res, marginLabel, err := ctrl.resolveCalculation(c)
	if err != nil {
		return err
	}
	body, renderErr := service.RenderCalculationPDF(res, marginLabel)
	if renderErr != nil {
		log.Printf("[ERROR] Render PDF gagal: %v", renderErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat file PDF")
	}
	return sendAttachment(c, pdfContentType, service.ReportFilename(res.Product.Name, "pdf"), body)
}

// loadHistoryForExport memuat riwayat terfilter (terbaru dulu) beserta
// peta nama pelanggan untuk kolom tabel.
func (ctrl *ExportController) loadHistoryForExport(c *fiber.Ctx) ([]historyModel.PriceHistoryModel, map[string]string, error) {
	q := ctrl.DB.Model(&historyModel.PriceHistoryModel{})
	switch raw := strings.TrimSpace(c.Query("customer")); raw {
	case "", "all":
	case "none":
		q = q.Where("customer_id IS NULL")
	default:
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, nil, err
		}
		q = q.Where("customer_id = ?", id)
	}

	var rows []historyModel.PriceHistoryModel
	if err := q.Order("created_at DESC").Limit(1000).Find(&rows).Error; err != nil {
		return nil, nil, err
	}

	names := map[string]string{}
	var customers []customerModel.CustomerModel
	if err := ctrl.DB.Select("id", "name").Find(&customers).Error; err != nil {
		return nil, nil, err
	}
	for _, cust := range customers {
		names[cust.CustomerID.String()] = cust.Name
	}
	return rows, names, nil
}

// 🟢 GET /api/history/export/xlsx?customer=
func (ctrl *ExportController) ExportHistoryXLSX(c *fiber.Ctx) error {
	rows, names, err := ctrl.loadHistoryForExport(c)
	if err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil riwayat")
	}
	body, renderErr := service.RenderHistoryXLSX(rows, names)
	if renderErr != nil {
		log.Printf("[ERROR] Render Excel riwayat gagal: %v", renderErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat file Excel")
	}
	return sendAttachment(c, xlsxContentType, service.ReportFilename("Riwayat", "xlsx"), body)
}

// 🟢 GET /api/history/export/pdf?customer=
func (ctrl *ExportController) ExportHistoryPDF(c *fiber.Ctx) error {
	rows, names, err := ctrl.loadHistoryForExport(c)
	if err != nil {
		return helper.JsonDBError(c, err, "Gagal mengambil riwayat")
	}
	body, renderErr := service.RenderHistoryPDF(rows, names)
	if renderErr != nil {
		log.Printf("[ERROR] Render PDF riwayat gagal: %v", renderErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat file PDF")
	}
	return sendAttachment(c, pdfContentType, service.ReportFilename("Riwayat", "pdf"), body)
}
