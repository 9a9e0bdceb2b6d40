package accounting

import "github.com/shopspring/decimal"

// MoneyScale is the number of fraction digits every monetary figure is rounded to.
const MoneyScale int32 = 2

var (
	// NearZeroThreshold is the largest magnitude still treated as zero for display.
	NearZeroThreshold = decimal.RequireFromString("0.009")
	// BalanceTolerance is the slack allowed when checking that a statement balances.
	BalanceTolerance = decimal.RequireFromString("0.01")
)

// RoundMoney rounds to two decimals, half away from zero.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MoneyScale)
}

// AddMoney returns round(a + b).
func AddMoney(a, b decimal.Decimal) decimal.Decimal {
	return RoundMoney(a.Add(b))
}

// SubMoney returns round(a - b).
func SubMoney(a, b decimal.Decimal) decimal.Decimal {
	return RoundMoney(a.Sub(b))
}

// SumMoney folds amounts with AddMoney.
func SumMoney(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, amount := range amounts {
		total = AddMoney(total, amount)
	}
	return total
}

// IsNearZero reports whether |amount| <= 0.009.
func IsNearZero(amount decimal.Decimal) bool {
	return amount.Abs().LessThanOrEqual(NearZeroThreshold)
}

// MoneyEqual reports whether two amounts are equal for display and variance purposes.
func MoneyEqual(a, b decimal.Decimal) bool {
	return IsNearZero(a.Sub(b))
}

// WithinTolerance reports whether a reconciliation difference is within one cent.
func WithinTolerance(difference decimal.Decimal) bool {
	return difference.Abs().LessThanOrEqual(BalanceTolerance)
}
