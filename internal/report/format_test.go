package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "Rp 0"},
		{999, "Rp 999"},
		{1500, "Rp 1.500"},
		{30000000, "Rp 30.000.000"},
		{10000000.4, "Rp 10.000.000"},
		{2.5, "Rp 2"},
		{3.5, "Rp 4"},
		{1234567.5, "Rp 1.234.568"},
		{1e19, "Rp 10.000.000.000.000.000.000"},
		{1e20, "Rp 100.000.000.000.000.000.000"},
		{-1e20, "Rp -100.000.000.000.000.000.000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatRupiah(tt.in), "FormatRupiah(%v)", tt.in)
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "6.50 jam (0.27 hari)", FormatDuration(6.5))
	assert.Equal(t, "144.00 jam (6.00 hari)", FormatDuration(144))
	assert.Equal(t, "0.00 jam (0.00 hari)", FormatDuration(0))
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "6.50", FormatHours(6.5))
	assert.Equal(t, "0.00", FormatHours(0))
}

func TestFormatDays(t *testing.T) {
	assert.Equal(t, "3.00 hari", FormatDays(3))
	assert.Equal(t, "0.27 hari", FormatDays(6.5/24))
}

func TestMetaFileStem(t *testing.T) {
	assert.Equal(t, "Voyage_Report_TB Sinar 01", Meta{TugBoat: "TB Sinar 01"}.FileStem())
	assert.Equal(t, "Voyage_Report_vessel", Meta{}.FileStem())
}
