package service

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var unsafeFilenameRe = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// ReportFilename menyusun nama file unduhan, misal
// "Laporan_Harga_Semen_Portland_50kg_02-01-2006.xlsx".
func ReportFilename(name, ext string) string {
	clean := unsafeFilenameRe.ReplaceAllString(strings.ReplaceAll(strings.TrimSpace(name), " ", "_"), "")
	if clean == "" {
		clean = "Laporan"
	}
	return fmt.Sprintf("Laporan_Harga_%s_%s.%s", clean, time.Now().Format("02-01-2006"), ext)
}
