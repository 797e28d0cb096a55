package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hargaku_backend/internals/constants"
	customerModel "hargaku_backend/internals/features/customers/model"
	historyModel "hargaku_backend/internals/features/history/model"
	productModel "hargaku_backend/internals/features/pricing/products/model"
	regionModel "hargaku_backend/internals/features/pricing/regions/model"
)

func openTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("buka sqlite: %v", err)
	}
	ddl := []string{
		`CREATE TABLE products (id TEXT PRIMARY KEY, name TEXT, category TEXT, base_price REAL, unit TEXT, created_at DATETIME, updated_at DATETIME)`,
		`CREATE TABLE product_regions (id TEXT PRIMARY KEY, name TEXT, price_multiplier REAL, region_group TEXT, created_at DATETIME, updated_at DATETIME)`,
		`CREATE TABLE customers (id TEXT PRIMARY KEY, name TEXT, address TEXT, phone TEXT, email TEXT, notes TEXT, created_at DATETIME)`,
		`CREATE TABLE customer_pricing_tiers (id TEXT PRIMARY KEY, customer_id TEXT, tier_name TEXT, discount_percentage REAL, description TEXT)`,
		`CREATE TABLE price_history (id TEXT PRIMARY KEY, customer_id TEXT, product_name TEXT, product_unit TEXT, region_name TEXT, base_price REAL, region_price REAL, discounts TEXT, net_price REAL, margin_amount REAL, margin_type TEXT, payment_type TEXT DEFAULT 'cash', tempo_term_days INTEGER DEFAULT 0, final_price REAL, notes TEXT, created_at DATETIME)`,
	}
	for _, q := range ddl {
		if err := db.Exec(q).Error; err != nil {
			t.Fatalf("buat skema: %v", err)
		}
	}
	return db
}

func TestValidateDocumentRejectsMissingArrays(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want error
	}{
		{"bukan json", `{"version": `, ErrMalformedDocument},
		{"tanpa version", `{"customers":[],"priceHistory":[],"customerPricingTiers":[]}`, ErrMissingVersion},
		{"tanpa customers", `{"version":"2.0","priceHistory":[],"customerPricingTiers":[]}`, ErrMissingArrays},
		{"tanpa priceHistory", `{"version":"2.0","customers":[],"customerPricingTiers":[]}`, ErrMissingArrays},
	}
	for _, tc := range cases {
		if _, err := ValidateDocument([]byte(tc.raw)); !errors.Is(err, tc.want) {
			t.Fatalf("%s: mau %v, dapat %v", tc.name, tc.want, err)
		}
	}
}

func TestValidateDocumentToleratesLegacyFormat(t *testing.T) {
	// Format lama tanpa array products/productRegions tetap diterima
	raw := `{"version":"1.0","exportedAt":"2024-01-02T00:00:00Z","customers":[],"priceHistory":[],"customerPricingTiers":[]}`
	doc, err := ValidateDocument([]byte(raw))
	if err != nil {
		t.Fatalf("ValidateDocument error: %v", err)
	}
	if len(doc.Products) != 0 || len(doc.ProductRegions) != 0 {
		t.Fatalf("array absen harus jadi kosong: %d %d", len(doc.Products), len(doc.ProductRegions))
	}
}

func TestImportDocumentIdempotent(t *testing.T) {
	db := openTestDB(t, "backup_import")

	doc := &Document{
		Version: DocumentVersion,
		Products: []productModel.ProductModel{
			{ProductID: uuid.New(), Name: "Semen Portland 50kg", BasePrice: 75000, Unit: "sak"},
		},
		ProductRegions: []regionModel.ProductRegionModel{
			{RegionID: uuid.New(), Name: "Kudus", Multiplier: 1, Group: "A"},
		},
		Customers: []customerModel.CustomerModel{
			{CustomerID: uuid.New(), Name: "Toko Berkah"},
		},
	}

	if err := ImportDocument(db, doc); err != nil {
		t.Fatalf("import pertama: %v", err)
	}
	if err := ImportDocument(db, doc); err != nil {
		t.Fatalf("import kedua: %v", err)
	}

	var cnt int64
	db.Table("products").Count(&cnt)
	if cnt != 1 {
		t.Fatalf("products = %d, mau 1 (tidak boleh duplikat)", cnt)
	}
	db.Table("customers").Count(&cnt)
	if cnt != 1 {
		t.Fatalf("customers = %d, mau 1", cnt)
	}
}

func TestImportDocumentUpdatesExistingRow(t *testing.T) {
	db := openTestDB(t, "backup_lww")

	id := uuid.New()
	doc := &Document{
		Version: DocumentVersion,
		Products: []productModel.ProductModel{
			{ProductID: id, Name: "Besi Beton 10mm", BasePrice: 52000, Unit: "batang"},
		},
	}
	if err := ImportDocument(db, doc); err != nil {
		t.Fatalf("import awal: %v", err)
	}

	doc.Products[0].BasePrice = 55000
	if err := ImportDocument(db, doc); err != nil {
		t.Fatalf("import ulang: %v", err)
	}

	var got productModel.ProductModel
	if err := db.Where("id = ?", id).First(&got).Error; err != nil {
		t.Fatalf("baca produk: %v", err)
	}
	// Last-writer-wins di level baris
	if got.BasePrice != 55000 {
		t.Fatalf("base price = %v, mau 55000", got.BasePrice)
	}
}

func TestImportDocumentBackfillsLegacyMargin(t *testing.T) {
	db := openTestDB(t, "backup_legacy_margin")

	// File lama: margin hanya berupa label, tanpa key payment_type.
	// Tanpa backfill kolomnya jatuh ke default 'cash' dari skema.
	id := uuid.New()
	raw := `{"version":"1.0","customers":[],"customerPricingTiers":[],"priceHistory":[{` +
		`"id":"` + id.String() + `","product_name":"Produk Lama","product_unit":"sak",` +
		`"region_name":"Region Lama","base_price":75000,"region_price":75000,` +
		`"discounts":[],"net_price":70000,"margin_amount":4000,` +
		`"margin_type":"Tempo 60 hari","final_price":74000}]}`

	doc, err := ValidateDocument([]byte(raw))
	if err != nil {
		t.Fatalf("ValidateDocument error: %v", err)
	}
	if err := ImportDocument(db, doc); err != nil {
		t.Fatalf("import: %v", err)
	}

	var row historyModel.PriceHistoryModel
	if err := db.Where("id = ?", id).First(&row).Error; err != nil {
		t.Fatalf("baca riwayat: %v", err)
	}
	if row.PaymentType != constants.PaymentTempo || row.TempoTermDays != 60 {
		t.Fatalf("kolom terstruktur = %q/%d, mau tempo/60 dari label", row.PaymentType, row.TempoTermDays)
	}
}

func TestBuildDocumentRoundTrip(t *testing.T) {
	src := openTestDB(t, "backup_src")
	dst := openTestDB(t, "backup_dst")

	if err := src.Create(&productModel.ProductModel{ProductID: uuid.New(), Name: "Triplek 18mm", BasePrice: 285000, Unit: "lembar"}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := src.Create(&regionModel.ProductRegionModel{RegionID: uuid.New(), Name: "Pati", Multiplier: 1, Group: "A"}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	doc, err := BuildDocument(src)
	if err != nil {
		t.Fatalf("BuildDocument error: %v", err)
	}
	if doc.Version != DocumentVersion {
		t.Fatalf("version = %q", doc.Version)
	}
	if err := ImportDocument(dst, doc); err != nil {
		t.Fatalf("import: %v", err)
	}

	var cnt int64
	dst.Table("products").Count(&cnt)
	if cnt != 1 {
		t.Fatalf("products = %d", cnt)
	}
	dst.Table("product_regions").Count(&cnt)
	if cnt != 1 {
		t.Fatalf("product_regions = %d", cnt)
	}
}
