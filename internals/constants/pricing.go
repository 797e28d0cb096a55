package constants

// Grup region harga. Region A = harga dasar, Region B = +5% (pricelist).
const (
	RegionGroupA = "A"
	RegionGroupB = "B"
)

var RegionGroups = []string{RegionGroupA, RegionGroupB}

// Tipe pembayaran margin keuntungan.
const (
	PaymentCash  = "cash"
	PaymentTempo = "tempo"
)

// Jenis nilai diskon / margin.
const (
	KindPercentage = "percentage"
	KindNominal    = "nominal"
)

// Asal baris diskon pada rincian kalkulasi.
const (
	SourceTier   = "tier"
	SourceManual = "manual"
)

// Pilihan jangka waktu tempo (hari).
var TempoTermDays = []int{7, 14, 30, 45, 60, 90}

const DefaultTempoTermDays = 30

// Batas jumlah diskon bertingkat manual per kalkulasi.
const MaxStackedDiscounts = 4

func IsValidTempoTerm(days int) bool {
	for _, d := range TempoTermDays {
		if d == days {
			return true
		}
	}
	return false
}
