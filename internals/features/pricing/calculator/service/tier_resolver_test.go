package service

import (
	"testing"

	"github.com/google/uuid"

	customerModel "hargaku_backend/internals/features/customers/model"
)

func TestResolveTier(t *testing.T) {
	tierA := uuid.New()
	tierB := uuid.New()
	cust := &customerModel.CustomerModel{
		CustomerID: uuid.New(),
		Name:       "Toko Sinar",
		PricingTiers: []customerModel.CustomerPricingTierModel{
			{TierID: tierA, TierName: "Gold", DiscountPercentage: 5},
		},
	}

	if got := ResolveTier(cust, &tierA); got == nil || got.TierName != "Gold" {
		t.Fatalf("tier milik pelanggan harus ketemu, dapat %+v", got)
	}
	// Tier id valid tapi milik pelanggan lain: tidak boleh ikut terbawa
	if got := ResolveTier(cust, &tierB); got != nil {
		t.Fatalf("tier pelanggan lain harus nil, dapat %+v", got)
	}
	if got := ResolveTier(cust, nil); got != nil {
		t.Fatalf("tanpa tier id harus nil")
	}
	if got := ResolveTier(nil, &tierA); got != nil {
		t.Fatalf("tanpa pelanggan harus nil")
	}
}
