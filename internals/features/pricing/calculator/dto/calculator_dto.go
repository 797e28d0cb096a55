package dto

import (
	"strings"

	"github.com/google/uuid"

	"hargaku_backend/internals/constants"
	"hargaku_backend/internals/features/pricing/calculator/service"
)

// 🔹 Satu diskon manual pada request kalkulasi. Urutan array = urutan penerapan.
type StackedDiscountRequest struct {
	Label   string  `json:"label" validate:"max=100"`
	Kind    string  `json:"kind" validate:"required,oneof=percentage nominal"`
	Value   float64 `json:"value" validate:"gte=0"`
	Enabled bool    `json:"enabled"`
}

type MarginRequest struct {
	Kind          string  `json:"kind" validate:"required,oneof=percentage nominal"`
	Value         float64 `json:"value" validate:"gte=0"`
	PaymentType   string  `json:"payment_type" validate:"required,oneof=cash tempo"`
	TempoTermDays int     `json:"tempo_term_days" validate:"omitempty,oneof=7 14 30 45 60 90"`
}

// 🔹 Request kalkulasi harga jual (juga dipakai endpoint export kalkulasi)
type ComputeRequest struct {
	ProductID  uuid.UUID                `json:"product_id" validate:"required"`
	RegionID   uuid.UUID                `json:"region_id" validate:"required"`
	CustomerID *uuid.UUID               `json:"customer_id"`
	TierID     *uuid.UUID               `json:"tier_id"`
	Discounts  []StackedDiscountRequest `json:"discounts" validate:"max=4,dive"`
	Margin     MarginRequest            `json:"margin" validate:"required"`
}

func (r *ComputeRequest) Normalize() {
	for i := range r.Discounts {
		r.Discounts[i].Label = strings.TrimSpace(r.Discounts[i].Label)
		if r.Discounts[i].Label == "" {
			r.Discounts[i].Label = "Diskon"
		}
	}
	if r.Margin.PaymentType == constants.PaymentTempo && r.Margin.TempoTermDays == 0 {
		r.Margin.TempoTermDays = constants.DefaultTempoTermDays
	}
}

func (r *ComputeRequest) ToStackedDiscounts() []service.StackedDiscount {
	out := make([]service.StackedDiscount, 0, len(r.Discounts))
	for _, d := range r.Discounts {
		out = append(out, service.StackedDiscount{
			Label:   d.Label,
			Kind:    d.Kind,
			Value:   d.Value,
			Enabled: d.Enabled,
		})
	}
	return out
}

func (r *ComputeRequest) ToMarginInput() service.MarginInput {
	return service.MarginInput{
		Kind:          r.Margin.Kind,
		Value:         r.Margin.Value,
		PaymentType:   r.Margin.PaymentType,
		TempoTermDays: r.Margin.TempoTermDays,
	}
}

// 🔹 Rincian lengkap hasil kalkulasi
type ComputeResponse struct {
	ProductID     uuid.UUID          `json:"product_id"`
	ProductName   string             `json:"product_name"`
	ProductUnit   string             `json:"product_unit"`
	RegionID      uuid.UUID          `json:"region_id"`
	RegionName    string             `json:"region_name"`
	CustomerID    *uuid.UUID         `json:"customer_id,omitempty"`
	CustomerName  *string            `json:"customer_name,omitempty"`
	BasePrice     float64            `json:"base_price"`
	RegionPrice   float64            `json:"region_price"`
	Discounts     []service.LineItem `json:"discounts"`
	NetPrice      float64            `json:"net_price"`
	MarginAmount  float64            `json:"margin_amount"`
	FinalPrice    float64            `json:"final_price"`
	MarginType    string             `json:"margin_type"`
	PaymentType   string             `json:"payment_type"`
	TempoTermDays int                `json:"tempo_term_days,omitempty"`
}

// 🔄 Konversi hasil resolve + kalkulasi → response rincian
func ToComputeResponse(res *service.Resolved, margin service.MarginInput) *ComputeResponse {
	out := &ComputeResponse{
		ProductID:    res.Product.ProductID,
		ProductName:  res.Product.Name,
		ProductUnit:  res.Product.Unit,
		RegionID:     res.Region.RegionID,
		RegionName:   res.Region.Name,
		BasePrice:    res.Calc.BasePrice,
		RegionPrice:  res.Calc.RegionPrice,
		Discounts:    res.Calc.Discounts,
		NetPrice:     res.Calc.NetPrice,
		MarginAmount: res.Calc.MarginAmount,
		FinalPrice:   res.Calc.FinalPrice,
		MarginType:   service.MarginLabel(margin.PaymentType, margin.TempoTermDays),
		PaymentType:  margin.PaymentType,
	}
	if margin.PaymentType == constants.PaymentTempo {
		out.TempoTermDays = margin.TempoTermDays
	}
	if res.Customer != nil {
		id := res.Customer.CustomerID
		name := res.Customer.Name
		out.CustomerID = &id
		out.CustomerName = &name
	}
	return out
}
