package service

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	historyModel "hargaku_backend/internals/features/history/model"
	calcservice "hargaku_backend/internals/features/pricing/calculator/service"
	helper "hargaku_backend/internals/helpers"
)

// RenderCalculationPDF merender satu rincian kalkulasi ke PDF dengan tata
// letak yang sama seperti versi Excel.
func RenderCalculationPDF(res *calcservice.Resolved, marginLabel string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "LAPORAN HARGA JUAL", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, "Tanggal: "+time.Now().Format("02-01-2006"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	line := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Arial", style, 11)
		pdf.CellFormat(90, 8, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 8, value, "", 1, "R", false, 0, "")
	}

	line("Nama Produk", res.Product.Name, false)
	line("Satuan", res.Product.Unit, false)
	line("Region", res.Region.Name, false)
	if res.Customer != nil {
		line("Pelanggan", res.Customer.Name, false)
	}
	pdf.Ln(3)

	line("Harga Dasar", helper.FormatRupiah(res.Calc.BasePrice), false)
	line("Harga Region", helper.FormatRupiah(res.Calc.RegionPrice), false)
	for i, d := range res.Calc.Discounts {
		line(fmt.Sprintf("Diskon %d: %s", i+1, d.Label), "-"+helper.FormatRupiah(d.Amount), false)
	}
	line("Harga Nett", helper.FormatRupiah(res.Calc.NetPrice), true)
	line(fmt.Sprintf("Margin (%s)", marginLabel), helper.FormatRupiah(res.Calc.MarginAmount), false)
	pdf.Ln(2)
	line("HARGA JUAL FINAL", helper.FormatRupiah(res.Calc.FinalPrice), true)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderHistoryPDF merender daftar riwayat menjadi tabel landscape dengan
// baris grand total.
func RenderHistoryPDF(rows []historyModel.PriceHistoryModel, customerNames map[string]string) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "LAPORAN RIWAYAT HARGA JUAL", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	widths := []float64{22, 48, 30, 40, 28, 28, 28, 28, 28}
	pdf.SetFont("Arial", "B", 9)
	for i, h := range historyHeaders {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	var grandTotal float64
	for i := range rows {
		r := &rows[i]
		customer := "-"
		if r.CustomerRef != nil {
			if name, ok := customerNames[r.CustomerRef.String()]; ok {
				customer = name
			}
		}
		cells := []string{
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
		for j, v := range cells {
			align := "L"
			if j >= 4 {
				align = "R"
			}
			pdf.CellFormat(widths[j], 7, v, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
		grandTotal += r.FinalPrice
	}

	pdf.SetFont("Arial", "B", 9)
	var leftWidth float64
	for _, w := range widths[:len(widths)-1] {
		leftWidth += w
	}
	pdf.CellFormat(leftWidth, 8, "GRAND TOTAL", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[len(widths)-1], 8, helper.FormatRupiah(grandTotal), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
