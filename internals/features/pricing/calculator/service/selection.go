package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	customerModel "hargaku_backend/internals/features/customers/model"
	productModel "hargaku_backend/internals/features/pricing/products/model"
	regionModel "hargaku_backend/internals/features/pricing/regions/model"
)

var (
	ErrProductNotFound  = errors.New("produk tidak ditemukan")
	ErrRegionNotFound   = errors.New("region tidak ditemukan")
	ErrCustomerNotFound = errors.New("pelanggan tidak ditemukan")
)

// Selection adalah pilihan kalkulasi berbasis id, sebelum entitasnya
// dimuat dari database.
type Selection struct {
	ProductID  uuid.UUID
	RegionID   uuid.UUID
	CustomerID *uuid.UUID
	TierID     *uuid.UUID
	Discounts  []StackedDiscount
	Margin     MarginInput
}

// Resolved membawa entitas hasil lookup beserta rincian kalkulasinya.
type Resolved struct {
	Product  productModel.ProductModel
	Region   regionModel.ProductRegionModel
	Customer *customerModel.CustomerModel
	Tier     *customerModel.CustomerPricingTierModel
	Calc     *PriceCalculation
}

// ComputeSelection memuat produk, region, pelanggan (beserta tiernya),
// me-resolve tier, lalu menjalankan Compute. Dipakai endpoint kalkulasi,
// simpan riwayat, dan export.
func ComputeSelection(db *gorm.DB, sel Selection) (*Resolved, error) {
	var out Resolved

	if err := db.Where("id = ?", sel.ProductID).First(&out.Product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	if err := db.Where("id = ?", sel.RegionID).First(&out.Region).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRegionNotFound
		}
		return nil, err
	}

	if sel.CustomerID != nil {
		var cust customerModel.CustomerModel
		if err := db.Preload("PricingTiers").Where("id = ?", *sel.CustomerID).First(&cust).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCustomerNotFound
			}
			return nil, err
		}
		out.Customer = &cust
		out.Tier = ResolveTier(&cust, sel.TierID)
	}

	in := ComputeInput{
		BasePrice:       out.Product.BasePrice,
		PriceMultiplier: out.Region.Multiplier,
		HasProduct:      true,
		HasRegion:       true,
		Discounts:       sel.Discounts,
		Margin:          sel.Margin,
	}
	if out.Tier != nil {
		in.Tier = &TierInput{
			CustomerName:       out.Customer.Name,
			TierName:           out.Tier.TierName,
			DiscountPercentage: out.Tier.DiscountPercentage,
		}
	}

	calc, err := Compute(in)
	if err != nil {
		return nil, err
	}
	out.Calc = calc
	return &out, nil
}
