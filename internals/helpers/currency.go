// file: internals/helpers/currency.go
package helper

import (
	"fmt"
	"math"
	"strings"
)

// FormatRupiah memformat nilai rupiah utuh dengan pemisah ribuan titik
// (gaya id-ID): 103950 → "Rp 103.950".
func FormatRupiah(v float64) string {
	neg := v < 0
	n := int64(math.Round(math.Abs(v)))

	s := fmt.Sprintf("%d", n)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-Rp " + b.String()
	}
	return "Rp " + b.String()
}
