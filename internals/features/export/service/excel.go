package service

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	historyModel "hargaku_backend/internals/features/history/model"
	calcservice "hargaku_backend/internals/features/pricing/calculator/service"
	helper "hargaku_backend/internals/helpers"
)

const sheetName = "Sheet1"

// RenderCalculationXLSX merender satu rincian kalkulasi menjadi workbook
// LAPORAN HARGA JUAL, mengikuti tata letak laporan cetak toko.
func RenderCalculationXLSX(res *calcservice.Resolved, marginLabel string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	_ = f.SetColWidth(sheetName, "A", "A", 32)
	_ = f.SetColWidth(sheetName, "B", "B", 24)

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	_ = f.MergeCell(sheetName, "A1", "B1")
	_ = f.SetCellValue(sheetName, "A1", "LAPORAN HARGA JUAL")
	_ = f.SetCellStyle(sheetName, "A1", "B1", titleStyle)
	_ = f.SetCellValue(sheetName, "A2", "Tanggal")
	_ = f.SetCellValue(sheetName, "B2", time.Now().Format("02-01-2006"))

	row := 4
	put := func(label, value string) {
		cellA, _ := excelize.CoordinatesToCellName(1, row)
		cellB, _ := excelize.CoordinatesToCellName(2, row)
		_ = f.SetCellValue(sheetName, cellA, label)
		_ = f.SetCellValue(sheetName, cellB, value)
		row++
	}
	putBold := func(label, value string) {
		cellA, _ := excelize.CoordinatesToCellName(1, row)
		cellB, _ := excelize.CoordinatesToCellName(2, row)
		_ = f.SetCellValue(sheetName, cellA, label)
		_ = f.SetCellValue(sheetName, cellB, value)
		_ = f.SetCellStyle(sheetName, cellA, cellB, boldStyle)
		row++
	}

	put("Nama Produk", res.Product.Name)
	put("Satuan", res.Product.Unit)
	put("Region", res.Region.Name)
	if res.Customer != nil {
		put("Pelanggan", res.Customer.Name)
	}
	row++

	put("Harga Dasar", helper.FormatRupiah(res.Calc.BasePrice))
	put("Harga Region", helper.FormatRupiah(res.Calc.RegionPrice))
	for i, d := range res.Calc.Discounts {
		put(fmt.Sprintf("Diskon %d: %s", i+1, d.Label), "-"+helper.FormatRupiah(d.Amount))
	}
	putBold("Harga Nett", helper.FormatRupiah(res.Calc.NetPrice))
	put(fmt.Sprintf("Margin (%s)", marginLabel), helper.FormatRupiah(res.Calc.MarginAmount))
	putBold("HARGA JUAL FINAL", helper.FormatRupiah(res.Calc.FinalPrice))

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var historyHeaders = []string{
	"Tanggal", "Produk", "Region", "Pelanggan", "Harga Region",
	"Total Diskon", "Harga Nett", "Margin", "Harga Final",
}

// RenderHistoryXLSX merender daftar riwayat menjadi tabel dengan baris
// grand total di bawah.
func RenderHistoryXLSX(rows []historyModel.PriceHistoryModel, customerNames map[string]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	lastCol, _ := excelize.ColumnNumberToName(len(historyHeaders))
	_ = f.MergeCell(sheetName, "A1", lastCol+"1")
	_ = f.SetCellValue(sheetName, "A1", "LAPORAN RIWAYAT HARGA JUAL")
	_ = f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	for i, h := range historyHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		_ = f.SetCellValue(sheetName, cell, h)
		_ = f.SetCellStyle(sheetName, cell, cell, boldStyle)
	}

	var grandTotal float64
	for i := range rows {
		r := &rows[i]
		customer := "-"
		if r.CustomerRef != nil {
			if name, ok := customerNames[r.CustomerRef.String()]; ok {
				customer = name
			}
		}
		values := []interface{}{
			r.CreatedAt.Format("02-01-2006"),
			r.ProductName,
			r.RegionName,
			customer,
			helper.FormatRupiah(r.RegionPrice),
			"-" + helper.FormatRupiah(r.RegionPrice-r.NetPrice),
			helper.FormatRupiah(r.NetPrice),
			r.MarginType,
			helper.FormatRupiah(r.FinalPrice),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+4)
			_ = f.SetCellValue(sheetName, cell, v)
		}
		grandTotal += r.FinalPrice
	}

	totalRow := len(rows) + 4
	cellA, _ := excelize.CoordinatesToCellName(1, totalRow)
	cellLast, _ := excelize.CoordinatesToCellName(len(historyHeaders), totalRow)
	_ = f.SetCellValue(sheetName, cellA, "GRAND TOTAL")
	_ = f.SetCellValue(sheetName, cellLast, helper.FormatRupiah(grandTotal))
	_ = f.SetCellStyle(sheetName, cellA, cellLast, boldStyle)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
