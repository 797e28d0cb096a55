package dto

import (
	"strings"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"hargaku_backend/internals/features/history/model"
	calcdto "hargaku_backend/internals/features/pricing/calculator/dto"
	calcservice "hargaku_backend/internals/features/pricing/calculator/service"
)

// 🔹 Request simpan riwayat: input kalkulasi + catatan. Kalkulasinya
// dijalankan ulang di server, bukan menerima angka jadi dari klien.
type CreateHistoryRequest struct {
	calcdto.ComputeRequest
	Notes string `json:"notes" validate:"max=1000"`
}

func (r *CreateHistoryRequest) Normalize() {
	r.ComputeRequest.Normalize()
	r.Notes = strings.TrimSpace(r.Notes)
}

// 🔹 Request edit langsung (PATCH): final & margin diubah tanpa lewat
// engine, net diturunkan balik di service. Notes pointer supaya field
// yang tidak dikirim bisa dibedakan dari string kosong (hapus catatan).
type UpdateHistoryRequest struct {
	FinalPrice   float64 `json:"final_price" validate:"gte=0"`
	MarginAmount float64 `json:"margin_amount" validate:"gte=0"`
	MarginType   string  `json:"margin_type" validate:"required,max=50"`
	Notes        *string `json:"notes" validate:"omitempty,max=1000"`
}

func (r *UpdateHistoryRequest) Normalize() {
	r.MarginType = strings.TrimSpace(r.MarginType)
	if r.Notes != nil {
		trimmed := strings.TrimSpace(*r.Notes)
		r.Notes = &trimmed
	}
}

type HistoryResponse struct {
	ID            uuid.UUID              `json:"id"`
	CustomerID    *uuid.UUID             `json:"customer_id,omitempty"`
	ProductName   string                 `json:"product_name"`
	ProductUnit   string                 `json:"product_unit"`
	RegionName    string                 `json:"region_name"`
	BasePrice     float64                `json:"base_price"`
	RegionPrice   float64                `json:"region_price"`
	Discounts     []calcservice.LineItem `json:"discounts"`
	NetPrice      float64                `json:"net_price"`
	MarginAmount  float64                `json:"margin_amount"`
	MarginType    string                 `json:"margin_type"`
	PaymentType   string                 `json:"payment_type"`
	TempoTermDays int                    `json:"tempo_term_days,omitempty"`
	FinalPrice    float64                `json:"final_price"`
	Notes         *string                `json:"notes,omitempty"`
	CreatedAt     string                 `json:"created_at"`
}

// 🔹 State kalkulator hasil duplikasi riwayat. Id bisa nil kalau master
// datanya sudah dihapus atau diganti nama.
type DuplicateResponse struct {
	ProductID  *uuid.UUID                       `json:"product_id"`
	RegionID   *uuid.UUID                       `json:"region_id"`
	CustomerID *uuid.UUID                       `json:"customer_id"`
	Discounts  []calcdto.StackedDiscountRequest `json:"discounts"`
	Margin     calcdto.MarginRequest            `json:"margin"`
	Notes      *string                          `json:"notes,omitempty"`
}

func ToHistoryResponse(m *model.PriceHistoryModel) *HistoryResponse {
	items := []calcservice.LineItem{}
	if len(m.Discounts) > 0 {
		// Baris korup dibiarkan jadi list kosong, bukan error
		_ = sonic.Unmarshal(m.Discounts, &items)
	}
	return &HistoryResponse{
		ID:            m.HistoryID,
		CustomerID:    m.CustomerRef,
		ProductName:   m.ProductName,
		ProductUnit:   m.ProductUnit,
		RegionName:    m.RegionName,
		BasePrice:     m.BasePrice,
		RegionPrice:   m.RegionPrice,
		Discounts:     items,
		NetPrice:      m.NetPrice,
		MarginAmount:  m.MarginAmount,
		MarginType:    m.MarginType,
		PaymentType:   m.PaymentType,
		TempoTermDays: m.TempoTermDays,
		FinalPrice:    m.FinalPrice,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToHistoryResponseList(models []model.PriceHistoryModel) []HistoryResponse {
	result := make([]HistoryResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToHistoryResponse(&models[i]))
	}
	return result
}
