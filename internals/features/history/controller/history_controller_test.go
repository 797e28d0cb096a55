package controller

import (
	"bytes"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hargaku_backend/internals/features/history/model"
)

func newTestApp(t *testing.T, name string) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("buka sqlite: %v", err)
	}
	ddl := `CREATE TABLE price_history (id TEXT PRIMARY KEY, customer_id TEXT, product_name TEXT, product_unit TEXT, region_name TEXT, base_price REAL, region_price REAL, discounts TEXT, net_price REAL, margin_amount REAL, margin_type TEXT, payment_type TEXT DEFAULT 'cash', tempo_term_days INTEGER DEFAULT 0, final_price REAL, notes TEXT, created_at DATETIME)`
	if err := db.Exec(ddl).Error; err != nil {
		t.Fatalf("buat skema: %v", err)
	}

	app := fiber.New(fiber.Config{
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})
	ctrl := NewHistoryController(db)
	app.Patch("/api/history/:id", ctrl.UpdateHistory)
	return app, db
}

func seedHistoryRow(t *testing.T, db *gorm.DB, notes string) uuid.UUID {
	t.Helper()
	row := &model.PriceHistoryModel{
		HistoryID:    uuid.New(),
		ProductName:  "Semen Portland 50kg",
		ProductUnit:  "sak",
		RegionName:   "Kudus",
		BasePrice:    75000,
		RegionPrice:  75000,
		Discounts:    datatypes.JSON(`[]`),
		NetPrice:     94500,
		MarginAmount: 9450,
		MarginType:   "Cash",
		PaymentType:  "cash",
		FinalPrice:   103950,
		Notes:        &notes,
	}
	if err := db.Create(row).Error; err != nil {
		t.Fatalf("seed riwayat: %v", err)
	}
	return row.HistoryID
}

func doPatch(t *testing.T, app *fiber.App, id uuid.UUID, body string) {
	t.Helper()
	req := httptest.NewRequest("PATCH", "/api/history/"+id.String(), bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, body: %s", resp.StatusCode, raw)
	}
}

func TestUpdateHistoryKeepsNotesWhenAbsent(t *testing.T) {
	app, db := newTestApp(t, "hist_patch_keep")
	id := seedHistoryRow(t, db, "pengiriman minggu depan")

	// Edit harga tanpa field notes: catatan lama tidak boleh hilang
	doPatch(t, app, id, `{"final_price":120000,"margin_amount":9450,"margin_type":"Cash"}`)

	var row model.PriceHistoryModel
	if err := db.Where("id = ?", id).First(&row).Error; err != nil {
		t.Fatalf("baca riwayat: %v", err)
	}
	if row.FinalPrice != 120000 || row.NetPrice != 110550 {
		t.Fatalf("harga: final=%v net=%v", row.FinalPrice, row.NetPrice)
	}
	if row.Notes == nil || *row.Notes != "pengiriman minggu depan" {
		t.Fatalf("notes ikut terhapus: %v", row.Notes)
	}
}

func TestUpdateHistoryClearsNotesWithEmptyString(t *testing.T) {
	app, db := newTestApp(t, "hist_patch_clear")
	id := seedHistoryRow(t, db, "catatan lama")

	doPatch(t, app, id, `{"final_price":103950,"margin_amount":9450,"margin_type":"Cash","notes":""}`)

	var row model.PriceHistoryModel
	if err := db.Where("id = ?", id).First(&row).Error; err != nil {
		t.Fatalf("baca riwayat: %v", err)
	}
	if row.Notes != nil {
		t.Fatalf("string kosong harus menghapus catatan: %v", row.Notes)
	}
}
