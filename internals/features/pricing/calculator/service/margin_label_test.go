package service

import (
	"testing"

	"hargaku_backend/internals/constants"
)

func TestMarginLabel(t *testing.T) {
	if got := MarginLabel(constants.PaymentCash, 0); got != "Cash" {
		t.Fatalf("label cash = %q", got)
	}
	if got := MarginLabel(constants.PaymentTempo, 45); got != "Tempo 45 hari" {
		t.Fatalf("label tempo = %q", got)
	}
	if got := MarginLabel(constants.PaymentTempo, 0); got != "Tempo 30 hari" {
		t.Fatalf("tempo tanpa hari harus default 30, dapat %q", got)
	}
}

func TestParseMarginLabel(t *testing.T) {
	pt, days := ParseMarginLabel("Tempo 60 hari")
	if pt != constants.PaymentTempo || days != 60 {
		t.Fatalf("parse tempo: %q %d", pt, days)
	}
	pt, days = ParseMarginLabel("Cash")
	if pt != constants.PaymentCash || days != 0 {
		t.Fatalf("parse cash: %q %d", pt, days)
	}
	// Label tidak dikenal dianggap cash
	pt, _ = ParseMarginLabel("Kredit 12 bulan")
	if pt != constants.PaymentCash {
		t.Fatalf("label asing = %q", pt)
	}
}
