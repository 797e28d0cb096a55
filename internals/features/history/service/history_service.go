package service

import (
	"errors"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	customerModel "hargaku_backend/internals/features/customers/model"
	"hargaku_backend/internals/features/history/model"
	calcdto "hargaku_backend/internals/features/pricing/calculator/dto"
	calcservice "hargaku_backend/internals/features/pricing/calculator/service"
	productModel "hargaku_backend/internals/features/pricing/products/model"
	regionModel "hargaku_backend/internals/features/pricing/regions/model"

	"hargaku_backend/internals/constants"
)

// ErrNegativeNet berarti hasil edit langsung membuat harga nett negatif
// (final lebih kecil dari margin). Ditolak, bukan dipaksa jadi 0.
var ErrNegativeNet = errors.New("harga nett hasil perhitungan negatif, periksa harga final dan margin")

// BuildHistoryModel memetakan hasil kalkulasi menjadi baris riwayat.
// Baris diskon tier selalu berada di urutan pertama, mengikuti urutan
// penerapan engine.
func BuildHistoryModel(res *calcservice.Resolved, margin calcservice.MarginInput, notes string) (*model.PriceHistoryModel, error) {
	raw, err := sonic.Marshal(res.Calc.Discounts)
	if err != nil {
		return nil, err
	}

	tempoDays := 0
	if margin.PaymentType == constants.PaymentTempo {
		tempoDays = margin.TempoTermDays
		if tempoDays <= 0 {
			tempoDays = constants.DefaultTempoTermDays
		}
	}

	row := &model.PriceHistoryModel{
		ProductName:   res.Product.Name,
		ProductUnit:   res.Product.Unit,
		RegionName:    res.Region.Name,
		BasePrice:     res.Calc.BasePrice,
		RegionPrice:   res.Calc.RegionPrice,
		Discounts:     datatypes.JSON(raw),
		NetPrice:      res.Calc.NetPrice,
		MarginAmount:  res.Calc.MarginAmount,
		MarginType:    calcservice.MarginLabel(margin.PaymentType, margin.TempoTermDays),
		PaymentType:   margin.PaymentType,
		TempoTermDays: tempoDays,
		FinalPrice:    res.Calc.FinalPrice,
	}
	if res.Customer != nil {
		id := res.Customer.CustomerID
		row.CustomerRef = &id
	}
	if notes != "" {
		row.Notes = &notes
	}
	return row, nil
}

// EditFields adalah hasil turunan balik dari edit langsung final/margin.
// NotesSet membedakan field notes yang tidak dikirim (kolom tidak
// disentuh) dari string kosong (catatan dihapus).
type EditFields struct {
	FinalPrice    float64
	MarginAmount  float64
	NetPrice      float64
	MarginType    string
	PaymentType   string
	TempoTermDays int
	Notes         *string
	NotesSet      bool
}

// DeriveEdit menurunkan net = final - margin. Baris diskon sengaja tidak
// dihitung ulang dan menjadi basi relatif terhadap nett yang baru.
func DeriveEdit(finalPrice, marginAmount float64, marginType string, notes *string) (*EditFields, error) {
	net := finalPrice - marginAmount
	if net < 0 {
		return nil, ErrNegativeNet
	}
	paymentType, tempoDays := calcservice.ParseMarginLabel(marginType)
	out := &EditFields{
		FinalPrice:    finalPrice,
		MarginAmount:  marginAmount,
		NetPrice:      net,
		MarginType:    marginType,
		PaymentType:   paymentType,
		TempoTermDays: tempoDays,
	}
	if notes != nil {
		out.NotesSet = true
		if *notes != "" {
			out.Notes = notes
		}
	}
	return out, nil
}

// DuplicateState menyusun ulang state kalkulator dari satu baris riwayat.
// Produk dan region dicari berdasarkan nama yang tersimpan (master bisa
// saja sudah diganti nama atau dihapus, maka id-nya bisa nil). Baris tier
// dibuang berdasarkan tag source; untuk baris lama tanpa tag, baris
// pertama dianggap tier selama pelanggannya masih ada.
func DuplicateState(db *gorm.DB, row *model.PriceHistoryModel) (productID, regionID, customerID *uuid.UUID, discounts []calcdto.StackedDiscountRequest, margin calcdto.MarginRequest, err error) {
	var product productModel.ProductModel
	if e := db.Where("name = ?", row.ProductName).First(&product).Error; e == nil {
		id := product.ProductID
		productID = &id
	} else if !errors.Is(e, gorm.ErrRecordNotFound) {
		err = e
		return
	}

	var region regionModel.ProductRegionModel
	if e := db.Where("name = ?", row.RegionName).First(&region).Error; e == nil {
		id := region.RegionID
		regionID = &id
	} else if !errors.Is(e, gorm.ErrRecordNotFound) {
		err = e
		return
	}

	customerFound := false
	if row.CustomerRef != nil {
		var cnt int64
		if e := db.Model(&customerModel.CustomerModel{}).Where("id = ?", *row.CustomerRef).Count(&cnt).Error; e != nil {
			err = e
			return
		}
		if cnt > 0 {
			id := *row.CustomerRef
			customerID = &id
			customerFound = true
		}
	}

	items := []calcservice.LineItem{}
	if len(row.Discounts) > 0 {
		if e := sonic.Unmarshal(row.Discounts, &items); e != nil {
			err = e
			return
		}
	}

	manual := stripTierItems(items, customerFound)
	discounts = make([]calcdto.StackedDiscountRequest, 0, len(manual))
	for _, it := range manual {
		discounts = append(discounts, calcdto.StackedDiscountRequest{
			Label:   it.Label,
			Kind:    constants.KindNominal,
			Value:   it.Amount,
			Enabled: true,
		})
	}

	margin = rebuildMargin(row)
	return
}

// stripTierItems membuang baris diskon tier. Baris bertag dipilah lewat
// source; list lama tanpa tag memakai asumsi posisional (baris pertama =
// tier) selama pelanggannya ketemu.
func stripTierItems(items []calcservice.LineItem, customerFound bool) []calcservice.LineItem {
	tagged := false
	for _, it := range items {
		if it.Source != "" {
			tagged = true
			break
		}
	}

	if tagged {
		out := make([]calcservice.LineItem, 0, len(items))
		for _, it := range items {
			if it.Source == constants.SourceTier {
				continue
			}
			out = append(out, it)
		}
		return out
	}

	if customerFound && len(items) > 0 {
		return items[1:]
	}
	return items
}

func rebuildMargin(row *model.PriceHistoryModel) calcdto.MarginRequest {
	paymentType := row.PaymentType
	tempoDays := row.TempoTermDays
	labelType, labelDays := calcservice.ParseMarginLabel(row.MarginType)
	if paymentType == "" {
		// Baris lama: kolom terstruktur kosong, jatuh ke parsing label
		paymentType, tempoDays = labelType, labelDays
	} else if paymentType == constants.PaymentCash && labelType == constants.PaymentTempo {
		// Baris dari file lama yang terlanjur tersimpan dengan default
		// 'cash'. Label dan kolom terstruktur selalu ditulis bersamaan,
		// jadi kalau bertentangan labelnya yang menyimpan bentuk asli
		paymentType, tempoDays = labelType, labelDays
	}
	if paymentType == constants.PaymentTempo && tempoDays <= 0 {
		tempoDays = constants.DefaultTempoTermDays
	}
	return calcdto.MarginRequest{
		Kind:          constants.KindNominal,
		Value:         row.MarginAmount,
		PaymentType:   paymentType,
		TempoTermDays: tempoDays,
	}
}
