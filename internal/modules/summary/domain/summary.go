package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Health is the backend-computed financial health percentage.
type Health struct {
	Percent float64
}

// Level buckets the percentage the way the dashboard gauge colors it.
func (h Health) Level() string {
	switch {
	case h.Percent >= 70:
		return "good"
	case h.Percent >= 40:
		return "attention"
	default:
		return "critical"
	}
}

type CardInfo struct {
	Number string
	Expiry string
	Holder string
	Brand  string
}

// Masked hides all but the last four digits of the card number.
func (c CardInfo) Masked() string {
	digits := strings.ReplaceAll(c.Number, " ", "")
	if len(digits) <= 4 {
		return digits
	}
	return "•••• •••• •••• " + digits[len(digits)-4:]
}

// MonthPoint is one bar of the monthly overview chart.
type MonthPoint struct {
	Month  string
	Amount decimal.Decimal
}
