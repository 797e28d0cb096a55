package dto

import (
	"strings"

	"github.com/google/uuid"

	"hargaku_backend/internals/features/customers/model"
)

// 🔹 Request pelanggan (batas panjang mengikuti validasi form)
type CustomerRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Address string `json:"address" validate:"max=500"`
	Phone   string `json:"phone" validate:"max=20"`
	Email   string `json:"email" validate:"omitempty,email,max=100"`
	Notes   string `json:"notes" validate:"max=1000"`
}

// 🔹 Request tier harga
type PricingTierRequest struct {
	TierName           string  `json:"tier_name" validate:"required,min=1,max=50"`
	DiscountPercentage float64 `json:"discount_percentage" validate:"gte=0,lte=100"`
	Description        string  `json:"description" validate:"max=200"`
}

type PricingTierResponse struct {
	ID                 uuid.UUID `json:"id"`
	CustomerID         uuid.UUID `json:"customer_id"`
	TierName           string    `json:"tier_name"`
	DiscountPercentage float64   `json:"discount_percentage"`
	Description        *string   `json:"description,omitempty"`
}

type CustomerResponse struct {
	ID           uuid.UUID             `json:"id"`
	Name         string                `json:"name"`
	Address      *string               `json:"address,omitempty"`
	Phone        *string               `json:"phone,omitempty"`
	Email        *string               `json:"email,omitempty"`
	Notes        *string               `json:"notes,omitempty"`
	CreatedAt    string                `json:"created_at"`
	PricingTiers []PricingTierResponse `json:"pricing_tiers"`
}

func (r *CustomerRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Address = strings.TrimSpace(r.Address)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Email = strings.TrimSpace(r.Email)
	r.Notes = strings.TrimSpace(r.Notes)
}

func (r *PricingTierRequest) Normalize() {
	r.TierName = strings.TrimSpace(r.TierName)
	r.Description = strings.TrimSpace(r.Description)
}

func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// 🔄 Konversi dari request → model
func (r *CustomerRequest) ToModel() *model.CustomerModel {
	return &model.CustomerModel{
		Name:    r.Name,
		Address: optStr(r.Address),
		Phone:   optStr(r.Phone),
		Email:   optStr(r.Email),
		Notes:   optStr(r.Notes),
	}
}

func (r *PricingTierRequest) ToModel(customerID uuid.UUID) *model.CustomerPricingTierModel {
	return &model.CustomerPricingTierModel{
		CustomerRef:        customerID,
		TierName:           r.TierName,
		DiscountPercentage: r.DiscountPercentage,
		Description:        optStr(r.Description),
	}
}

// 🔄 Konversi dari model → response
func ToPricingTierResponse(m *model.CustomerPricingTierModel) *PricingTierResponse {
	return &PricingTierResponse{
		ID:                 m.TierID,
		CustomerID:         m.CustomerRef,
		TierName:           m.TierName,
		DiscountPercentage: m.DiscountPercentage,
		Description:        m.Description,
	}
}

func ToCustomerResponse(m *model.CustomerModel) *CustomerResponse {
	tiers := make([]PricingTierResponse, 0, len(m.PricingTiers))
	for _, t := range m.PricingTiers {
		tiers = append(tiers, *ToPricingTierResponse(&t))
	}
	return &CustomerResponse{
		ID:           m.CustomerID,
		Name:         m.Name,
		Address:      m.Address,
		Phone:        m.Phone,
		Email:        m.Email,
		Notes:        m.Notes,
		CreatedAt:    m.CreatedAt.Format("2006-01-02 15:04:05"),
		PricingTiers: tiers,
	}
}

func ToCustomerResponseList(models []model.CustomerModel) []CustomerResponse {
	result := make([]CustomerResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToCustomerResponse(&m))
	}
	return result
}
