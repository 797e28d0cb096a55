package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductRegionModel merepresentasikan tabel product_regions: daerah
// penjualan dengan pengali harga. Grup A = pricelist dasar (×1.0),
// grup B = +5% (×1.05).
type ProductRegionModel struct {
	RegionID   uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name       string    `gorm:"column:name;type:varchar(100);not null;index:idx_product_regions_name" json:"name"`
	Multiplier float64   `gorm:"column:price_multiplier;type:numeric;not null;default:1.0" json:"price_multiplier"`
	Group      string    `gorm:"column:region_group;type:varchar(1);not null;default:'A'"  json:"region_group"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (ProductRegionModel) TableName() string {
	return "product_regions"
}
