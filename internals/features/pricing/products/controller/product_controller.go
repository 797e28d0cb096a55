package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hargaku_backend/internals/features/pricing/products/dto"
	"hargaku_backend/internals/features/pricing/products/model"
	helper "hargaku_backend/internals/helpers"
)

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db}
}

// 🟢 POST /api/products
func (ctrl *ProductController) CreateProduct(c *fiber.Ctx) error {
	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ERROR] Body parser gagal: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	req.Normalize()
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	newProduct := req.ToModel()
	if err := ctrl.DB.Create(newProduct).Error; err != nil {
		log.Printf("[ERROR] Gagal menyimpan produk: %v", err)
		return helper.JsonDBError(c, err, "Gagal menyimpan produk")
	}

	return helper.JsonCreated(c, "Produk berhasil ditambahkan", dto.ToProductResponse(newProduct))
}

// 🟢 GET /api/products (diurutkan per nama, tanpa paging — dipakai dropdown kalkulator)
func (ctrl *ProductController) GetAllProducts(c *fiber.Ctx) error {
	var products []model.ProductModel
	if err := ctrl.DB.Order("name ASC").Find(&products).Error; err != nil {
		log.Printf("[ERROR] Gagal mengambil data produk: %v", err)
		return helper.JsonDBError(c, err, "Gagal mengambil data produk")
	}
	return helper.JsonOK(c, "Produk berhasil ditemukan", dto.ToProductResponseList(products))
}

// 🟢 GET /api/products/:id
func (ctrl *ProductController) GetProductByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Product ID tidak valid")
	}

	var product model.ProductModel
	if err := ctrl.DB.Where("id = ?", id).First(&product).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Produk tidak ditemukan")
	}
	return helper.JsonOK(c, "Produk berhasil ditemukan", dto.ToProductResponse(&product))
}

// 🟡 PUT /api/products/:id
func (ctrl *ProductController) UpdateProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Product ID tidak valid")
	}

	var product model.ProductModel
	if err := ctrl.DB.Where("id = ?", id).First(&product).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Produk tidak ditemukan")
	}

	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	req.Normalize()
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	updates := map[string]interface{}{
		"name":       req.Name,
		"category":   req.Category,
		"base_price": req.BasePrice,
		"unit":       req.Unit,
	}
	if err := ctrl.DB.Model(&product).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] Gagal memperbarui produk: %v", err)
		return helper.JsonDBError(c, err, "Gagal memperbarui produk")
	}

	// Reload untuk response terbaru
	if err := ctrl.DB.Where("id = ?", id).First(&product).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data produk terbaru")
	}
	return helper.JsonUpdated(c, "Produk berhasil diperbarui", dto.ToProductResponse(&product))
}

// 🔴 DELETE /api/products/:id
func (ctrl *ProductController) DeleteProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Product ID tidak valid")
	}

	res := ctrl.DB.Where("id = ?", id).Delete(&model.ProductModel{})
	if res.Error != nil {
		log.Printf("[ERROR] Gagal menghapus produk: %v", res.Error)
		return helper.JsonDBError(c, res.Error, "Gagal menghapus produk")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Produk tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Produk berhasil dihapus", nil)
}
