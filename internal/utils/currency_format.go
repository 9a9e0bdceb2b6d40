package utils

import (
	"github.com/SscSPs/ledger_statements/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount with exactly two fraction digits.
// Example: 12.5 returns "12.50", -0.005 returns "-0.01"
func FormatMoney(amount decimal.Decimal) string {
	return accounting.RoundMoney(amount).StringFixed(accounting.MoneyScale)
}

// FormatWithPrecision formats an amount with the given precision
// This is a convenience function when you only have the precision value
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
