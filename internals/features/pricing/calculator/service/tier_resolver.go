package service

import (
	"github.com/google/uuid"

	customerModel "hargaku_backend/internals/features/customers/model"
)

// ResolveTier mengembalikan maksimal satu tier milik pelanggan tersebut.
// Tier id yang valid tapi milik pelanggan lain dianggap tidak ada, jadi
// ganti pelanggan otomatis menggugurkan tier lama.
func ResolveTier(customer *customerModel.CustomerModel, tierID *uuid.UUID) *customerModel.CustomerPricingTierModel {
	if customer == nil || tierID == nil {
		return nil
	}
	for i := range customer.PricingTiers {
		if customer.PricingTiers[i].TierID == *tierID {
			return &customer.PricingTiers[i]
		}
	}
	return nil
}
