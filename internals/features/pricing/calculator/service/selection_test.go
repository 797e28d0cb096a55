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
	}
	for _, q := range ddl {
		if err := db.Exec(q).Error; err != nil {
			t.Fatalf("buat skema: %v", err)
		}
	}
	return db
}

func seedSelection(t *testing.T, db *gorm.DB) (prodID, regID, custID, tierID uuid.UUID) {
	t.Helper()
	prodID, regID, custID, tierID = uuid.New(), uuid.New(), uuid.New(), uuid.New()
	if err := db.Create(&productModel.ProductModel{ProductID: prodID, Name: "Semen Portland 50kg", BasePrice: 100000, Unit: "sak"}).Error; err != nil {
		t.Fatalf("seed produk: %v", err)
	}
	if err := db.Create(&regionModel.ProductRegionModel{RegionID: regID, Name: "Kendal", Multiplier: 1.05, Group: "B"}).Error; err != nil {
		t.Fatalf("seed region: %v", err)
	}
	if err := db.Create(&customerModel.CustomerModel{CustomerID: custID, Name: "Toko Berkah"}).Error; err != nil {
		t.Fatalf("seed pelanggan: %v", err)
	}
	if err := db.Create(&customerModel.CustomerPricingTierModel{TierID: tierID, CustomerRef: custID, TierName: "Gold", DiscountPercentage: 5}).Error; err != nil {
		t.Fatalf("seed tier: %v", err)
	}
	return
}

func TestComputeSelectionWithTier(t *testing.T) {
	db := openTestDB(t, "sel_tier")
	prodID, regID, custID, tierID := seedSelection(t, db)

	res, err := ComputeSelection(db, Selection{
		ProductID:  prodID,
		RegionID:   regID,
		CustomerID: &custID,
		TierID:     &tierID,
		Discounts: []StackedDiscount{
			{Label: "Potongan langsung", Kind: constants.KindNominal, Value: 5000, Enabled: true},
		},
		Margin: MarginInput{Kind: constants.KindPercentage, Value: 0, PaymentType: constants.PaymentCash},
	})
	if err != nil {
		t.Fatalf("ComputeSelection error: %v", err)
	}
	if res.Tier == nil || res.Tier.TierName != "Gold" {
		t.Fatalf("tier tidak ter-resolve: %+v", res.Tier)
	}
	if res.Calc.NetPrice != 94750 {
		t.Fatalf("net = %v, mau 94750", res.Calc.NetPrice)
	}
	if res.Calc.Discounts[0].Label != "Toko Berkah - Gold" {
		t.Fatalf("label tier: %q", res.Calc.Discounts[0].Label)
	}
}

func TestComputeSelectionForeignTierIgnored(t *testing.T) {
	db := openTestDB(t, "sel_foreign")
	prodID, regID, _, tierID := seedSelection(t, db)

	// Pelanggan lain memilih tier id milik pelanggan pertama
	otherID := uuid.New()
	if err := db.Create(&customerModel.CustomerModel{CustomerID: otherID, Name: "CV Lain"}).Error; err != nil {
		t.Fatalf("seed pelanggan: %v", err)
	}

	res, err := ComputeSelection(db, Selection{
		ProductID:  prodID,
		RegionID:   regID,
		CustomerID: &otherID,
		TierID:     &tierID,
		Margin:     MarginInput{Kind: constants.KindPercentage, Value: 0, PaymentType: constants.PaymentCash},
	})
	if err != nil {
		t.Fatalf("ComputeSelection error: %v", err)
	}
	if res.Tier != nil {
		t.Fatalf("tier pelanggan lain harus diabaikan: %+v", res.Tier)
	}
	if len(res.Calc.Discounts) != 0 {
		t.Fatalf("tidak boleh ada line item: %+v", res.Calc.Discounts)
	}
}

func TestComputeSelectionUnknownProduct(t *testing.T) {
	db := openTestDB(t, "sel_missing")
	_, regID, _, _ := seedSelection(t, db)

	_, err := ComputeSelection(db, Selection{
		ProductID: uuid.New(),
		RegionID:  regID,
		Margin:    MarginInput{Kind: constants.KindPercentage, Value: 0, PaymentType: constants.PaymentCash},
	})
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("mau ErrProductNotFound, dapat %v", err)
	}
}
