package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Indonesian grouping uses a dot as the thousands separator.
var idPrinter = message.NewPrinter(language.Indonesian)

var maxInt64 = decimal.NewFromInt(math.MaxInt64)

// FormatRupiah renders an amount as "Rp 30.000.000". The amount is rounded
// half-to-even to whole rupiah.
func FormatRupiah(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return fmt.Sprintf("Rp %v", x)
	}
	d := decimal.NewFromFloat(x).RoundBank(0)
	if d.Abs().GreaterThan(maxInt64) {
		return "Rp " + groupThousands(d.String())
	}
	return "Rp " + idPrinter.Sprintf("%d", d.IntPart())
}

// groupThousands inserts dots into an integer string such as "-1234567".
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return sign + b.String()
}

// FormatDuration renders hours as "6.50 jam (0.27 hari)".
func FormatDuration(hours float64) string {
	return FormatHours(hours) + " jam (" + FormatDays(hours/24) + ")"
}

func FormatDays(days float64) string {
	return fmt.Sprintf("%.2f hari", days)
}

// FormatHours renders hours with two decimals and no unit, as in the
// per-port activity tables.
func FormatHours(hours float64) string {
	return fmt.Sprintf("%.2f", hours)
}

func FormatPercent(p float64) string {
	return fmt.Sprintf("%.0f%%", p)
}
