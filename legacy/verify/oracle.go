package verify

import (
	"math"

	"github.com/shopspring/decimal"
)

var (
	maxIntDecimal = decimal.NewFromInt(int64(math.MaxInt))
	minIntDecimal = decimal.NewFromInt(int64(math.MinInt))
)

// referenceQuotient computes the expected SafeDivide result without native
// integer division: the quotient is taken at precision 0 (truncated toward
// zero) in arbitrary precision and then clamped to the int range.
func referenceQuotient(a, b int64) decimal.Decimal {
	if b == 0 {
		return decimal.Zero
	}

	q, _ := decimal.NewFromInt(a).QuoRem(decimal.NewFromInt(b), 0)

	switch {
	case q.GreaterThan(maxIntDecimal):
		return maxIntDecimal
	case q.LessThan(minIntDecimal):
		return minIntDecimal
	default:
		return q
	}
}

// exceedsInt reports whether the exact quotient a / b falls outside int.
func exceedsInt(a, b int64) bool {
	if b == 0 {
		return false
	}

	q, _ := decimal.NewFromInt(a).QuoRem(decimal.NewFromInt(b), 0)

	return q.GreaterThan(maxIntDecimal) || q.LessThan(minIntDecimal)
}
