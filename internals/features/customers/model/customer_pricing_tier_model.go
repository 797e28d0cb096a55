package model

import (
	"github.com/google/uuid"
)

// CustomerPricingTierModel merepresentasikan tabel customer_pricing_tiers:
// diskon persentase per tier yang melekat pada satu pelanggan. Maksimal
// satu tier yang aktif dalam satu kalkulasi, diterapkan paling awal.
type CustomerPricingTierModel struct {
	TierID             uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CustomerRef        uuid.UUID `gorm:"column:customer_id;type:uuid;not null;index:idx_tiers_customer_id" json:"customer_id"`
	TierName           string    `gorm:"column:tier_name;type:varchar(50);not null" json:"tier_name"`
	DiscountPercentage float64   `gorm:"column:discount_percentage;type:numeric;not null" json:"discount_percentage"`
	Description        *string   `gorm:"column:description;type:varchar(200)" json:"description,omitempty"`
}

func (CustomerPricingTierModel) TableName() string {
	return "customer_pricing_tiers"
}
