package controller

import (
	"bytes"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	productModel "hargaku_backend/internals/features/pricing/products/model"
	regionModel "hargaku_backend/internals/features/pricing/regions/model"
)

func newTestApp(t *testing.T, name string) (*fiber.App, *gorm.DB) {
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

	app := fiber.New(fiber.Config{
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})
	ctrl := NewCalculatorController(db)
	app.Post("/api/calculator/compute", ctrl.Compute)
	return app, db
}

func TestComputeEndpoint(t *testing.T) {
	app, db := newTestApp(t, "calc_endpoint")

	prodID, regID := uuid.New(), uuid.New()
	if err := db.Create(&productModel.ProductModel{ProductID: prodID, Name: "Semen Portland 50kg", BasePrice: 100000, Unit: "sak"}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := db.Create(&regionModel.ProductRegionModel{RegionID: regID, Name: "Kendal", Multiplier: 1.05, Group: "B"}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	body := `{
		"product_id": "` + prodID.String() + `",
		"region_id": "` + regID.String() + `",
		"discounts": [{"label":"Diskon 1","kind":"percentage","value":10,"enabled":true}],
		"margin": {"kind":"percentage","value":10,"payment_type":"cash"}
	}`
	req := httptest.NewRequest("POST", "/api/calculator/compute", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, body: %s", resp.StatusCode, raw)
	}

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			RegionPrice  float64 `json:"region_price"`
			NetPrice     float64 `json:"net_price"`
			MarginAmount float64 `json:"margin_amount"`
			FinalPrice   float64 `json:"final_price"`
			MarginType   string  `json:"margin_type"`
		} `json:"data"`
	}
	raw, _ := io.ReadAll(resp.Body)
	if err := sonic.Unmarshal(raw, &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !envelope.Success {
		t.Fatalf("success = false: %s", raw)
	}
	if envelope.Data.RegionPrice != 105000 || envelope.Data.NetPrice != 94500 ||
		envelope.Data.MarginAmount != 9450 || envelope.Data.FinalPrice != 103950 {
		t.Fatalf("rincian: %+v", envelope.Data)
	}
	if envelope.Data.MarginType != "Cash" {
		t.Fatalf("margin type = %q", envelope.Data.MarginType)
	}
}

func TestComputeEndpointUnknownProduct(t *testing.T) {
	app, db := newTestApp(t, "calc_404")

	regID := uuid.New()
	if err := db.Create(&regionModel.ProductRegionModel{RegionID: regID, Name: "Pati", Multiplier: 1, Group: "A"}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	body := `{
		"product_id": "` + uuid.NewString() + `",
		"region_id": "` + regID.String() + `",
		"margin": {"kind":"percentage","value":0,"payment_type":"cash"}
	}`
	req := httptest.NewRequest("POST", "/api/calculator/compute", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, mau 404", resp.StatusCode)
	}
}

func TestComputeEndpointValidation(t *testing.T) {
	app, _ := newTestApp(t, "calc_422")

	// 5 diskon melewati batas 4
	body := `{
		"product_id": "` + uuid.NewString() + `",
		"region_id": "` + uuid.NewString() + `",
		"discounts": [
			{"kind":"percentage","value":1,"enabled":true},
			{"kind":"percentage","value":1,"enabled":true},
			{"kind":"percentage","value":1,"enabled":true},
			{"kind":"percentage","value":1,"enabled":true},
			{"kind":"percentage","value":1,"enabled":true}
		],
		"margin": {"kind":"percentage","value":0,"payment_type":"cash"}
	}`
	req := httptest.NewRequest("POST", "/api/calculator/compute", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("status = %d, mau 422", resp.StatusCode)
	}
}
