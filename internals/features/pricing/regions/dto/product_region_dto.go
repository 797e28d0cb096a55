package dto

import (
	"strings"

	"github.com/google/uuid"

	"hargaku_backend/internals/features/pricing/regions/model"
)

// 🔹 Request untuk membuat / mengubah region
type ProductRegionRequest struct {
	Name       string  `json:"name" validate:"required,min=1,max=100"`
	Multiplier float64 `json:"price_multiplier" validate:"gt=0"`
	Group      string  `json:"region_group" validate:"required,oneof=A B"`
}

// 🔹 Response untuk menampilkan region
type ProductRegionResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Multiplier float64   `json:"price_multiplier"`
	Group      string    `json:"region_group"`
}

func (r *ProductRegionRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Group = strings.ToUpper(strings.TrimSpace(r.Group))
}

// 🔄 Konversi dari request → model
func (r *ProductRegionRequest) ToModel() *model.ProductRegionModel {
	return &model.ProductRegionModel{
		Name:       r.Name,
		Multiplier: r.Multiplier,
		Group:      r.Group,
	}
}

// 🔄 Konversi dari model → response
func ToProductRegionResponse(m *model.ProductRegionModel) *ProductRegionResponse {
	return &ProductRegionResponse{
		ID:         m.RegionID,
		Name:       m.Name,
		Multiplier: m.Multiplier,
		Group:      m.Group,
	}
}

// 🔄 Konversi list model → list response
func ToProductRegionResponseList(models []model.ProductRegionModel) []ProductRegionResponse {
	result := make([]ProductRegionResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToProductRegionResponse(&m))
	}
	return result
}
