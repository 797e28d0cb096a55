package service

import (
	"errors"
	"fmt"
	"math"

	"hargaku_backend/internals/constants"
)

// ErrNoSelection berarti produk atau region belum dipilih. Tidak ada
// kalkulasi yang dikembalikan (bukan harga 0).
var ErrNoSelection = errors.New("produk dan region harus dipilih")

// TierInput adalah diskon tier pelanggan yang sudah di-resolve (maksimal
// satu), diterapkan paling awal sebelum semua diskon manual.
type TierInput struct {
	CustomerName       string
	TierName           string
	DiscountPercentage float64
}

// StackedDiscount adalah satu diskon manual bertingkat. Urutan list
// menentukan urutan penerapan.
type StackedDiscount struct {
	Label   string
	Kind    string // percentage | nominal
	Value   float64
	Enabled bool
}

// MarginInput adalah konfigurasi margin keuntungan di atas harga nett.
type MarginInput struct {
	Kind          string // percentage | nominal
	Value         float64
	PaymentType   string // cash | tempo
	TempoTermDays int
}

type ComputeInput struct {
	BasePrice       float64
	PriceMultiplier float64
	HasProduct      bool
	HasRegion       bool
	Tier            *TierInput
	Discounts       []StackedDiscount
	Margin          MarginInput
}

// LineItem adalah satu baris potongan pada rincian harga. Source menandai
// asal baris (tier atau manual) supaya baris tier tidak perlu ditebak
// dari posisinya.
type LineItem struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
	Source string  `json:"source"`
}

type PriceCalculation struct {
	BasePrice    float64    `json:"base_price"`
	RegionPrice  float64    `json:"region_price"`
	Discounts    []LineItem `json:"discounts"`
	NetPrice     float64    `json:"net_price"`
	MarginAmount float64    `json:"margin_amount"`
	FinalPrice   float64    `json:"final_price"`
}

// Compute menjalankan kalkulasi harga jual. Fungsi murni tanpa I/O:
// input identik selalu menghasilkan output identik.
//
// Urutan: harga region (dibulatkan sekali) → diskon tier → diskon manual
// berurutan (persentase dihitung terhadap harga berjalan, jadi saling
// menggandakan, bukan dijumlah dari harga dasar) → margin di atas nett.
// Harga berjalan tidak pernah turun di bawah 0.
func Compute(in ComputeInput) (*PriceCalculation, error) {
	if !in.HasProduct || !in.HasRegion {
		return nil, ErrNoSelection
	}

	regionPrice := math.Round(in.BasePrice * in.PriceMultiplier)
	runningPrice := regionPrice
	lineItems := make([]LineItem, 0, len(in.Discounts)+1)

	if in.Tier != nil {
		tierAmount := math.Round(runningPrice * in.Tier.DiscountPercentage / 100)
		lineItems = append(lineItems, LineItem{
			Label:  fmt.Sprintf("%s - %s", in.Tier.CustomerName, in.Tier.TierName),
			Amount: tierAmount,
			Source: constants.SourceTier,
		})
		runningPrice = math.Max(0, runningPrice-tierAmount)
	}

	for _, d := range in.Discounts {
		if !d.Enabled || d.Value <= 0 {
			continue
		}
		var amount float64
		if d.Kind == constants.KindPercentage {
			amount = math.Round(runningPrice * d.Value / 100)
		} else {
			// Nominal sudah berupa rupiah bulat, tidak dibulatkan lagi
			amount = d.Value
		}
		lineItems = append(lineItems, LineItem{
			Label:  d.Label,
			Amount: amount,
			Source: constants.SourceManual,
		})
		runningPrice = math.Max(0, runningPrice-amount)
	}

	netPrice := runningPrice
	var marginAmount float64
	if in.Margin.Kind == constants.KindPercentage {
		marginAmount = math.Round(netPrice * in.Margin.Value / 100)
	} else {
		marginAmount = in.Margin.Value
	}

	return &PriceCalculation{
		BasePrice:    in.BasePrice,
		RegionPrice:  regionPrice,
		Discounts:    lineItems,
		NetPrice:     netPrice,
		MarginAmount: marginAmount,
		FinalPrice:   netPrice + marginAmount,
	}, nil
}
