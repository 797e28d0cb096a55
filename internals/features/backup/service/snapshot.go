package service

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	customerModel "hargaku_backend/internals/features/customers/model"
	historyModel "hargaku_backend/internals/features/history/model"
	calcservice "hargaku_backend/internals/features/pricing/calculator/service"
	productModel "hargaku_backend/internals/features/pricing/products/model"
	regionModel "hargaku_backend/internals/features/pricing/regions/model"
)

const DocumentVersion = "2.0"

// Document adalah format file backup berversi. Nama field mengikuti file
// backup yang sudah beredar, jangan diubah.
type Document struct {
	Version              string                                   `json:"version"`
	ExportedAt           time.Time                                `json:"exportedAt"`
	Customers            []customerModel.CustomerModel            `json:"customers"`
	PriceHistory         []historyModel.PriceHistoryModel         `json:"priceHistory"`
	CustomerPricingTiers []customerModel.CustomerPricingTierModel `json:"customerPricingTiers"`
	Products             []productModel.ProductModel              `json:"products"`
	ProductRegions       []regionModel.ProductRegionModel         `json:"productRegions"`
}

// shadow dipakai saat validasi supaya array yang absen bisa dibedakan
// dari array kosong.
type shadowDocument struct {
	Version              string          `json:"version"`
	Customers            json.RawMessage `json:"customers"`
	PriceHistory         json.RawMessage `json:"priceHistory"`
	CustomerPricingTiers json.RawMessage `json:"customerPricingTiers"`
}

var (
	ErrMalformedDocument = errors.New("file backup tidak bisa dibaca")
	ErrMissingVersion    = errors.New("file backup tidak punya field version")
	ErrMissingArrays     = errors.New("file backup tidak lengkap: customers, priceHistory, dan customerPricingTiers wajib ada")
)

// ValidateDocument memeriksa file sebelum ada satu pun baris ditulis.
// Array products/productRegions boleh absen (format lama) dan dianggap
// kosong.
func ValidateDocument(raw []byte) (*Document, error) {
	var shadow shadowDocument
	if err := sonic.Unmarshal(raw, &shadow); err != nil {
		return nil, ErrMalformedDocument
	}
	if shadow.Version == "" {
		return nil, ErrMissingVersion
	}
	if shadow.Customers == nil || shadow.PriceHistory == nil || shadow.CustomerPricingTiers == nil {
		return nil, ErrMissingArrays
	}

	var doc Document
	if err := sonic.Unmarshal(raw, &doc); err != nil {
		return nil, ErrMalformedDocument
	}
	return &doc, nil
}

// BuildDocument membaca kelima koleksi menjadi satu dokumen backup.
func BuildDocument(db *gorm.DB) (*Document, error) {
	doc := &Document{
		Version:              DocumentVersion,
		ExportedAt:           time.Now(),
		Customers:            []customerModel.CustomerModel{},
		PriceHistory:         []historyModel.PriceHistoryModel{},
		CustomerPricingTiers: []customerModel.CustomerPricingTierModel{},
		Products:             []productModel.ProductModel{},
		ProductRegions:       []regionModel.ProductRegionModel{},
	}
	if err := db.Find(&doc.Products).Error; err != nil {
		return nil, err
	}
	if err := db.Find(&doc.ProductRegions).Error; err != nil {
		return nil, err
	}
	if err := db.Find(&doc.Customers).Error; err != nil {
		return nil, err
	}
	if err := db.Find(&doc.PriceHistory).Error; err != nil {
		return nil, err
	}
	if err := db.Find(&doc.CustomerPricingTiers).Error; err != nil {
		return nil, err
	}
	return doc, nil
}

// ImportDocument meng-upsert kelima koleksi dalam urutan dependensi FK.
// Upsert by id: import file yang sama dua kali tidak menduplikasi baris.
// Tidak ada transaksi lintas koleksi; kegagalan di tengah meninggalkan
// koleksi sebelumnya sudah tertulis.
func ImportDocument(db *gorm.DB, doc *Document) error {
	upsert := func(value interface{}) error {
		// Asosiasi tidak ikut disimpan; tiap koleksi di-upsert sendiri
		return db.Omit(clause.Associations).
			Clauses(clause.OnConflict{UpdateAll: true}).
			Create(value).Error
	}

	if len(doc.Products) > 0 {
		if err := upsert(&doc.Products); err != nil {
			return err
		}
	}
	if len(doc.ProductRegions) > 0 {
		if err := upsert(&doc.ProductRegions); err != nil {
			return err
		}
	}
	if len(doc.Customers) > 0 {
		if err := upsert(&doc.Customers); err != nil {
			return err
		}
	}
	if len(doc.PriceHistory) > 0 {
		backfillMarginColumns(doc.PriceHistory)
		if err := upsert(&doc.PriceHistory); err != nil {
			return err
		}
	}
	if len(doc.CustomerPricingTiers) > 0 {
		if err := upsert(&doc.CustomerPricingTiers); err != nil {
			return err
		}
	}
	return nil
}

// backfillMarginColumns mengisi payment_type/tempo_term_days dari label
// margin_type untuk baris dari file lama yang belum punya kolom
// terstruktur. Tanpa ini kolom payment_type jatuh ke default 'cash' saat
// insert, padahal labelnya bisa "Tempo N hari".
func backfillMarginColumns(rows []historyModel.PriceHistoryModel) {
	for i := range rows {
		if rows[i].PaymentType != "" {
			continue
		}
		rows[i].PaymentType, rows[i].TempoTermDays = calcservice.ParseMarginLabel(rows[i].MarginType)
	}
}
