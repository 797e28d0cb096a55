package model

import (
	"time"

	"github.com/google/uuid"
)

// CustomerModel merepresentasikan tabel customers.
type CustomerModel struct {
	CustomerID uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name       string    `gorm:"column:name;type:varchar(100);not null;index:idx_customers_name" json:"name"`
	Address    *string   `gorm:"column:address;type:varchar(500)" json:"address,omitempty"`
	Phone      *string   `gorm:"column:phone;type:varchar(20)"    json:"phone,omitempty"`
	Email      *string   `gorm:"column:email;type:varchar(100)"   json:"email,omitempty"`
	Notes      *string   `gorm:"column:notes;type:varchar(1000)"  json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;autoCreateTime" json:"created_at"`

	// Tier harga milik pelanggan ini (dimuat via Preload)
	PricingTiers []CustomerPricingTierModel `gorm:"foreignKey:CustomerRef;references:CustomerID" json:"pricing_tiers,omitempty"`
}

func (CustomerModel) TableName() string {
	return "customers"
}
