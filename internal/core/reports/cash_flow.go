package reports

import (
	"slices"
	"time"

	"github.com/SscSPs/ledger_statements/internal/core/domain"
	"github.com/SscSPs/ledger_statements/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// CashFlowInput carries the aggregates the indirect cash flow is derived from.
// Opening holds balances as of the day before From, Closing as of To.
type CashFlowInput struct {
	From      time.Time
	To        time.Time
	Opening   []domain.AccountBalanceRow
	Closing   []domain.AccountBalanceRow
	NetIncome decimal.Decimal
}

type adjustmentRule struct {
	label string
	codes func(domain.CashFlowMapping) []string
	// increases in asset balances consume cash, increases in liabilities provide it
	sign int64
}

var operatingAdjustments = []adjustmentRule{
	{label: "Change in trade receivables", codes: func(m domain.CashFlowMapping) []string { return m.ReceivableCodes }, sign: -1},
	{label: "Change in inventory", codes: func(m domain.CashFlowMapping) []string { return m.InventoryCodes }, sign: -1},
	{label: "Change in input tax credit", codes: func(m domain.CashFlowMapping) []string { return m.InputTaxCodes }, sign: -1},
	{label: "Change in trade payables", codes: func(m domain.CashFlowMapping) []string { return m.PayableCodes }, sign: 1},
	{label: "Change in output tax payable", codes: func(m domain.CashFlowMapping) []string { return m.OutputTaxCodes }, sign: 1},
	{label: "Change in customer advances", codes: func(m domain.CashFlowMapping) []string { return m.CustomerAdvanceCodes }, sign: 1},
}

// BuildCashFlow reconciles net income to the movement in cash using balance
// deltas of the mapped control accounts:
//
//	operating = net income - Δreceivables - Δinventory - Δinput tax
//	            + Δpayables + Δoutput tax + Δcustomer advances
//
// Whatever the model does not explain is reported in Unclassified.
func BuildCashFlow(in CashFlowInput, mapping domain.CashFlowMapping) domain.CashFlowStatement {
	cf := domain.CashFlowStatement{
		From:        in.From,
		To:          in.To,
		NetIncome:   accounting.RoundMoney(in.NetIncome),
		Adjustments: make([]domain.CashFlowAdjustment, 0, len(operatingAdjustments)),
	}

	operating := cf.NetIncome
	for _, rule := range operatingAdjustments {
		codes := rule.codes(mapping)
		delta := balanceDelta(in.Opening, in.Closing, codes)
		effect := accounting.RoundMoney(delta.Mul(decimal.NewFromInt(rule.sign)))
		operating = accounting.AddMoney(operating, effect)
		cf.Adjustments = append(cf.Adjustments, domain.CashFlowAdjustment{
			Label:  rule.label,
			Codes:  slices.Clone(codes),
			Delta:  delta,
			Effect: effect,
		})
	}
	cf.OperatingCash = operating

	cf.OpeningCash = accounting.SignedSumByCodes(in.Opening, mapping.CashCodes)
	cf.ClosingCash = accounting.SignedSumByCodes(in.Closing, mapping.CashCodes)
	cf.CashDelta = accounting.SubMoney(cf.ClosingCash, cf.OpeningCash)
	cf.Unclassified = accounting.SubMoney(cf.CashDelta, cf.OperatingCash)
	cf.Reconciled = accounting.WithinTolerance(cf.Unclassified)
	return cf
}

// balanceDelta is closing minus opening signed balance over codes.
func balanceDelta(opening, closing []domain.AccountBalanceRow, codes []string) decimal.Decimal {
	return accounting.SubMoney(
		accounting.SignedSumByCodes(closing, codes),
		accounting.SignedSumByCodes(opening, codes),
	)
}
