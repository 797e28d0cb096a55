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

type CustomerController struct {
	DB *gorm.DB
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db}
}

// 🟢 POST /api/customers
func (ctrl *CustomerController) CreateCustomer(c *fiber.Ctx) error {
	var req dto.CustomerRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ERROR] Body parser gagal: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	req.Normalize()
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	newCustomer := req.ToModel()
	if err := ctrl.DB.Create(newCustomer).Error; err != nil {
		log.Printf("[ERROR] Gagal menyimpan pelanggan: %v", err)
		return helper.JsonDBError(c, err, "Gagal menyimpan pelanggan")
	}
	return helper.JsonCreated(c, "Pelanggan berhasil ditambahkan", dto.ToCustomerResponse(newCustomer))
}

// 🟢 GET /api/customers (urut nama + tier harga masing-masing)
func (ctrl *CustomerController) GetAllCustomers(c *fiber.Ctx) error {
	var customers []model.CustomerModel
	if err := ctrl.DB.Preload("PricingTiers").Order("name ASC").Find(&customers).Error; err != nil {
		log.Printf("[ERROR] Gagal mengambil data pelanggan: %v", err)
		return helper.JsonDBError(c, err, "Gagal mengambil data pelanggan")
	}
	return helper.JsonOK(c, "Pelanggan berhasil ditemukan", dto.ToCustomerResponseList(customers))
}

// 🟢 GET /api/customers/:id
func (ctrl *CustomerController) GetCustomerByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Customer ID tidak valid")
	}

	var customer model.CustomerModel
	if err := ctrl.DB.Preload("PricingTiers").Where("id = ?", id).First(&customer).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Pelanggan tidak ditemukan")
	}
	return helper.JsonOK(c, "Pelanggan berhasil ditemukan", dto.ToCustomerResponse(&customer))
}

// 🟡 PUT /api/customers/:id
func (ctrl *CustomerController) UpdateCustomer(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Customer ID tidak valid")
	}

	var customer model.CustomerModel
	if err := ctrl.DB.Where("id = ?", id).First(&customer).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Pelanggan tidak ditemukan")
	}

	var req dto.CustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	req.Normalize()
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	updated := req.ToModel()
	updates := map[string]interface{}{
		"name":    updated.Name,
		"address": updated.Address,
		"phone":   updated.Phone,
		"email":   updated.Email,
		"notes":   updated.Notes,
	}
	if err := ctrl.DB.Model(&customer).Updates(updates).Error; err != nil {
		return helper.JsonDBError(c, err, "Gagal memperbarui pelanggan")
	}
	if err := ctrl.DB.Preload("PricingTiers").Where("id = ?", id).First(&customer).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data pelanggan terbaru")
	}
	return helper.JsonUpdated(c, "Pelanggan berhasil diperbarui", dto.ToCustomerResponse(&customer))
}

// 🔴 DELETE /api/customers/:id (tier ikut terhapus)
func (ctrl *CustomerController) DeleteCustomer(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Customer ID tidak valid")
	}

	var customer model.CustomerModel
	if err := ctrl.DB.Where("id = ?", id).First(&customer).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Pelanggan tidak ditemukan")
	}

	tx := ctrl.DB.Begin()
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memulai transaksi")
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Where("customer_id = ?", id).Delete(&model.CustomerPricingTierModel{}).Error; err != nil {
		tx.Rollback()
		return helper.JsonDBError(c, err, "Gagal menghapus tier pelanggan")
	}
	if err := tx.Delete(&customer).Error; err != nil {
		tx.Rollback()
		return helper.JsonDBError(c, err, "Gagal menghapus pelanggan")
	}
	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan perubahan")
	}
	return helper.JsonDeleted(c, "Pelanggan berhasil dihapus", nil)
}
