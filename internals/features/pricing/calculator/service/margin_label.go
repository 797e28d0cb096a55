package service

import (
	"fmt"
	"regexp"
	"strconv"

	"hargaku_backend/internals/constants"
)

var tempoLabelRe = regexp.MustCompile(`Tempo (\d+) hari`)

// MarginLabel merender label tipe pembayaran untuk disimpan di riwayat,
// misal "Cash" atau "Tempo 30 hari".
func MarginLabel(paymentType string, tempoTermDays int) string {
	if paymentType == constants.PaymentTempo {
		if tempoTermDays <= 0 {
			tempoTermDays = constants.DefaultTempoTermDays
		}
		return fmt.Sprintf("Tempo %d hari", tempoTermDays)
	}
	return "Cash"
}

// ParseMarginLabel membaca kembali label riwayat lama yang belum punya
// kolom terstruktur. Label yang tidak dikenali dianggap cash.
func ParseMarginLabel(label string) (paymentType string, tempoTermDays int) {
	if m := tempoLabelRe.FindStringSubmatch(label); m != nil {
		days, err := strconv.Atoi(m[1])
		if err != nil || days <= 0 {
			days = constants.DefaultTempoTermDays
		}
		return constants.PaymentTempo, days
	}
	return constants.PaymentCash, 0
}
