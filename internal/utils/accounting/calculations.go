package accounting

import (
	"github.com/SscSPs/ledger_statements/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NormalBalanceSign returns +1 for debit-normal types and -1 for credit-normal types.
//
// DEBIT increases ASSET/EXPENSE -> +1
// CREDIT increases LIABILITY/EQUITY/REVENUE -> -1
//
// Anything else, including a blank type, falls back to -1. Callers that care
// should check AccountType.IsKnown first.
func NormalBalanceSign(accountType domain.AccountType) int64 {
	switch domain.ParseAccountType(string(accountType)) {
	case domain.Asset, domain.Expense:
		return 1
	default:
		return -1
	}
}

// SignedAmount nets a debit/credit pair and applies the normal-balance sign:
// round(sign * round(debit - credit)).
func SignedAmount(debit, credit decimal.Decimal, accountType domain.AccountType) decimal.Decimal {
	net := SubMoney(debit, credit)
	return RoundMoney(net.Mul(decimal.NewFromInt(NormalBalanceSign(accountType))))
}

// SignedBalance is SignedAmount applied to an aggregated row.
func SignedBalance(row domain.AccountBalanceRow) decimal.Decimal {
	return SignedAmount(row.DebitTotal, row.CreditTotal, row.AccountType)
}

// ClassifySection maps an account type to the statement section it is shown in.
// Unknown types land in SectionUnclassified and stay out of section totals.
func ClassifySection(accountType domain.AccountType) domain.StatementSection {
	switch domain.ParseAccountType(string(accountType)) {
	case domain.Asset:
		return domain.SectionAssets
	case domain.Liability:
		return domain.SectionLiabilities
	case domain.Equity:
		return domain.SectionEquity
	case domain.Revenue:
		return domain.SectionRevenue
	case domain.Expense:
		return domain.SectionExpenses
	default:
		return domain.SectionUnclassified
	}
}

// SignedSumByCodes sums the signed balances of the rows whose code is in codes.
func SignedSumByCodes(rows []domain.AccountBalanceRow, codes []string) decimal.Decimal {
	wanted := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		wanted[code] = struct{}{}
	}
	total := decimal.Zero
	for _, row := range rows {
		if _, ok := wanted[row.AccountCode]; ok {
			total = AddMoney(total, SignedBalance(row))
		}
	}
	return total
}
