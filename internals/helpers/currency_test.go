package helper

import "testing"

func TestFormatRupiah(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "Rp 0"},
		{850, "Rp 850"},
		{103950, "Rp 103.950"},
		{1250000, "Rp 1.250.000"},
		{-5000, "-Rp 5.000"},
	}
	for _, tc := range cases {
		if got := FormatRupiah(tc.in); got != tc.want {
			t.Fatalf("FormatRupiah(%v) = %q, mau %q", tc.in, got, tc.want)
		}
	}
}
