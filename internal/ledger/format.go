package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// formatAmount renders a decimal with two fixed fraction digits and
// thousands separators, e.g. -1234567.8 -> "-1,234,567.80". Rounding
// happens only here, at the display boundary; balances are never rounded
// while they are being computed.
func formatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString(sign)
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}
