package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PriceHistoryModel merepresentasikan tabel price_history: snapshot
// denormalisasi satu kalkulasi. Nama produk/region disimpan apa adanya
// supaya riwayat tetap terbaca walau master datanya diganti atau dihapus.
//
// margin_type menyimpan label tampilan ("Cash" / "Tempo N hari") demi
// kompatibilitas file backup lama; payment_type dan tempo_term_days
// adalah bentuk terstrukturnya dan jadi acuan utama saat duplikasi.
type PriceHistoryModel struct {
	HistoryID   uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CustomerRef *uuid.UUID `gorm:"column:customer_id;type:uuid;index:idx_price_history_customer_id" json:"customer_id,omitempty"`

	ProductName string `gorm:"column:product_name;type:varchar(100);not null" json:"product_name"`
	ProductUnit string `gorm:"column:product_unit;type:varchar(30);not null"  json:"product_unit"`
	RegionName  string `gorm:"column:region_name;type:varchar(100);not null"  json:"region_name"`

	BasePrice   float64        `gorm:"column:base_price;type:numeric;not null"   json:"base_price"`
	RegionPrice float64        `gorm:"column:region_price;type:numeric;not null" json:"region_price"`
	Discounts   datatypes.JSON `gorm:"column:discounts;type:jsonb;not null"      json:"discounts"`
	NetPrice    float64        `gorm:"column:net_price;type:numeric;not null"    json:"net_price"`

	MarginAmount  float64 `gorm:"column:margin_amount;type:numeric;not null"         json:"margin_amount"`
	MarginType    string  `gorm:"column:margin_type;type:varchar(50);not null"       json:"margin_type"`
	PaymentType   string  `gorm:"column:payment_type;type:varchar(10);default:'cash'" json:"payment_type"`
	TempoTermDays int     `gorm:"column:tempo_term_days;default:0"                   json:"tempo_term_days"`
	FinalPrice    float64 `gorm:"column:final_price;type:numeric;not null"           json:"final_price"`

	Notes     *string   `gorm:"column:notes;type:varchar(1000)" json:"notes,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;autoCreateTime;index:idx_price_history_created_at" json:"created_at"`
}

func (PriceHistoryModel) TableName() string {
	return "price_history"
}
