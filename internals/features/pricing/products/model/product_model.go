package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel merepresentasikan tabel products: bahan/furniture dengan
// harga dasar per satuan, sebelum pengali region dan diskon.
type ProductModel struct {
	ProductID uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(100);not null;index:idx_products_name" json:"name"`
	Category  string    `gorm:"column:category;type:varchar(100)"                        json:"category"`
	BasePrice float64   `gorm:"column:base_price;type:numeric;not null"                  json:"base_price"`
	Unit      string    `gorm:"column:unit;type:varchar(30);not null"                    json:"unit"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (ProductModel) TableName() string {
	return "products"
}
