package service

import "github.com/shopspring/decimal"

// TrendDirection classifies a period-over-period change.
type TrendDirection string

const (
	TrendUp   TrendDirection = "up"
	TrendDown TrendDirection = "down"
	TrendFlat TrendDirection = "flat"
)

// TrendResult is a signed percentage change between a current value and a
// comparable prior-period value. Percent carries exactly one fractional
// digit; Sign is "+" only for positive changes (negative percentages carry
// their own minus sign).
type TrendResult struct {
	Percent   string         `json:"percent"`
	Direction TrendDirection `json:"direction"`
	Sign      string         `json:"sign"`
}

var hundred = decimal.NewFromInt(100)

// ComputeTrend computes the percentage change from previous to current.
// A zero baseline reports exactly +100% for any growth and 0% otherwise;
// this is a deliberate simplification, not a true ratio. Rounding is
// half-away-from-zero to one decimal place.
func ComputeTrend(current, previous float64) TrendResult {
	cur := decimal.NewFromFloat(current)
	prev := decimal.NewFromFloat(previous)

	var percent decimal.Decimal
	if prev.IsZero() {
		if cur.IsPositive() {
			percent = hundred
		} else {
			percent = decimal.Zero
		}
	} else {
		percent = cur.Sub(prev).Div(prev.Abs()).Mul(hundred).Round(1)
	}

	direction := TrendFlat
	sign := ""
	switch percent.Sign() {
	case 1:
		direction = TrendUp
		sign = "+"
	case -1:
		direction = TrendDown
	}

	return TrendResult{
		Percent:   percent.StringFixed(1),
		Direction: direction,
		Sign:      sign,
	}
}
