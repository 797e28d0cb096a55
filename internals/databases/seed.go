package database

import (
	"log"

	customerModel "hargaku_backend/internals/features/customers/model"
	historyModel "hargaku_backend/internals/features/history/model"
	productModel "hargaku_backend/internals/features/pricing/products/model"
	regionModel "hargaku_backend/internals/features/pricing/regions/model"

	"hargaku_backend/internals/constants"
)

// SeedDefaults menjalankan migrasi skema lalu mengisi produk dan region
// contoh saat tabelnya masih kosong. Data yang sudah ada tidak disentuh.
func SeedDefaults() {
	if err := DB.AutoMigrate(
		&productModel.ProductModel{},
		&regionModel.ProductRegionModel{},
		&customerModel.CustomerModel{},
		&customerModel.CustomerPricingTierModel{},
		&historyModel.PriceHistoryModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}

	seedProducts()
	seedRegions()
}

func seedProducts() {
	var cnt int64
	if err := DB.Model(&productModel.ProductModel{}).Count(&cnt).Error; err != nil || cnt > 0 {
		return
	}

	products := []productModel.ProductModel{
		{Name: "Semen Portland 50kg", Category: "Semen", BasePrice: 75000, Unit: "sak"},
		{Name: "Besi Beton 10mm", Category: "Besi", BasePrice: 52000, Unit: "batang"},
		{Name: "Pasir Cor", Category: "Agregat", BasePrice: 350000, Unit: "m3"},
		{Name: "Bata Merah", Category: "Bata", BasePrice: 850, Unit: "biji"},
		{Name: "Cat Tembok 5kg", Category: "Cat", BasePrice: 98000, Unit: "kaleng"},
		{Name: "Paku 5cm", Category: "Paku", BasePrice: 18000, Unit: "kg"},
		{Name: "Triplek 18mm", Category: "Kayu", BasePrice: 285000, Unit: "lembar"},
	}
	if err := DB.Create(&products).Error; err != nil {
		log.Printf("[ERROR] Seed produk gagal: %v", err)
		return
	}
	log.Printf("✅ Seed %d produk contoh", len(products))
}

func seedRegions() {
	var cnt int64
	if err := DB.Model(&regionModel.ProductRegionModel{}).Count(&cnt).Error; err != nil || cnt > 0 {
		return
	}

	groupA := []string{"Kudus", "Semarang", "Pati", "Rembang"}
	groupB := []string{
		"Kendal", "Kaliwungu", "Batang", "Pekalongan", "Tuban",
		"Bangilan", "Bojonegoro", "Blora", "Ngawi", "Madiun",
	}

	regions := make([]regionModel.ProductRegionModel, 0, len(groupA)+len(groupB))
	for _, name := range groupA {
		regions = append(regions, regionModel.ProductRegionModel{
			Name: name, Multiplier: 1.0, Group: constants.RegionGroupA,
		})
	}
	for _, name := range groupB {
		regions = append(regions, regionModel.ProductRegionModel{
			Name: name, Multiplier: 1.05, Group: constants.RegionGroupB,
		})
	}
	if err := DB.Create(&regions).Error; err != nil {
		log.Printf("[ERROR] Seed region gagal: %v", err)
		return
	}
	log.Printf("✅ Seed %d region contoh", len(regions))
}
