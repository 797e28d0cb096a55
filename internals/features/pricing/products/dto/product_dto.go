package dto

import (
	"strings"

	"github.com/google/uuid"

	"hargaku_backend/internals/features/pricing/products/model"
)

// 🔹 Request untuk membuat / mengubah produk
type ProductRequest struct {
	Name      string  `json:"name" validate:"required,min=1,max=100"`
	Category  string  `json:"category" validate:"max=100"`
	BasePrice float64 `json:"base_price" validate:"gte=0"`
	Unit      string  `json:"unit" validate:"required,min=1,max=30"`
}

// 🔹 Response untuk menampilkan produk
type ProductResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	BasePrice float64   `json:"base_price"`
	Unit      string    `json:"unit"`
	CreatedAt string    `json:"created_at"`
}

func (r *ProductRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Category = strings.TrimSpace(r.Category)
	r.Unit = strings.TrimSpace(r.Unit)
}

// 🔄 Konversi dari request → model
func (r *ProductRequest) ToModel() *model.ProductModel {
	return &model.ProductModel{
		Name:      r.Name,
		Category:  r.Category,
		BasePrice: r.BasePrice,
		Unit:      r.Unit,
	}
}

// 🔄 Konversi dari model → response
func ToProductResponse(m *model.ProductModel) *ProductResponse {
	return &ProductResponse{
		ID:        m.ProductID,
		Name:      m.Name,
		Category:  m.Category,
		BasePrice: m.BasePrice,
		Unit:      m.Unit,
		CreatedAt: m.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// 🔄 Konversi list model → list response
func ToProductResponseList(models []model.ProductModel) []ProductResponse {
	result := make([]ProductResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToProductResponse(&m))
	}
	return result
}
