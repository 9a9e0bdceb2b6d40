package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow represents a single row in a trial balance report
type TrialBalanceRow struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"` // Signed by normal balance
}

// TrialBalance lists period activity per account. A non-zero Difference means
// the ledger itself is out of balance; it is reported, never corrected.
type TrialBalance struct {
	From         time.Time         `json:"from"`
	To           time.Time         `json:"to"`
	Rows         []TrialBalanceRow `json:"rows"`
	TotalDebit   decimal.Decimal   `json:"totalDebit"`
	TotalCredit  decimal.Decimal   `json:"totalCredit"`
	Difference   decimal.Decimal   `json:"difference"`
	Balanced     bool              `json:"balanced"`
	UnknownTypes []string          `json:"unknownTypes"` // Account codes whose type is not recognised
}

// StatementLine is one account shown on a statement with its net amount.
type StatementLine struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Amount      decimal.Decimal `json:"amount"`
}

// ReportSection is a titled block of statement lines.
type ReportSection struct {
	Section StatementSection `json:"section"`
	Lines   []StatementLine  `json:"lines"`
	Total   decimal.Decimal  `json:"total"`
}

// BalanceSheet is the financial position at a single cutoff date.
// Equity is shown as recorded equity plus unclosed earnings to date.
type BalanceSheet struct {
	AsOf                      time.Time       `json:"asOf"`
	Assets                    ReportSection   `json:"assets"`
	Liabilities               ReportSection   `json:"liabilities"`
	Equity                    ReportSection   `json:"equity"`
	NetIncomeToDate           decimal.Decimal `json:"netIncomeToDate"`
	TotalEquity               decimal.Decimal `json:"totalEquity"`
	TotalLiabilitiesAndEquity decimal.Decimal `json:"totalLiabilitiesAndEquity"`
	Difference                decimal.Decimal `json:"difference"`
	Balanced                  bool            `json:"balanced"`
}

// ProfitAndLoss is revenue against expenses over a period.
type ProfitAndLoss struct {
	From      time.Time       `json:"from"`
	To        time.Time       `json:"to"`
	Revenue   ReportSection   `json:"revenue"`
	Expenses  ReportSection   `json:"expenses"`
	NetProfit decimal.Decimal `json:"netProfit"` // Total revenue minus total expenses
}

// CashFlowAdjustment is one working-capital line of the indirect cash flow.
// Delta is the change in the accounts' signed balances; Effect is its contribution to operating cash.
type CashFlowAdjustment struct {
	Label  string          `json:"label"`
	Codes  []string        `json:"codes"`
	Delta  decimal.Decimal `json:"delta"`
	Effect decimal.Decimal `json:"effect"`
}

// CashFlowStatement reconciles accrual profit to the actual movement in cash.
// Unclassified is the residual the operating model does not explain (investing,
// financing, anything unmapped). It is expected to be non-zero on real data.
type CashFlowStatement struct {
	From          time.Time            `json:"from"`
	To            time.Time            `json:"to"`
	NetIncome     decimal.Decimal      `json:"netIncome"`
	Adjustments   []CashFlowAdjustment `json:"adjustments"`
	OperatingCash decimal.Decimal      `json:"operatingCash"`
	OpeningCash   decimal.Decimal      `json:"openingCash"`
	ClosingCash   decimal.Decimal      `json:"closingCash"`
	CashDelta     decimal.Decimal      `json:"cashDelta"`
	Unclassified  decimal.Decimal      `json:"unclassified"`
	Reconciled    bool                 `json:"reconciled"`
}

// LedgerKind selects the netting convention of a subsidiary ledger.
type LedgerKind string

const (
	GeneralLedger  LedgerKind = "GENERAL"
	CustomerLedger LedgerKind = "CUSTOMER"
	VendorLedger   LedgerKind = "VENDOR"
)

// SubsidiaryLedger is an opening balance followed by running rows for one account or party.
type SubsidiaryLedger struct {
	Kind            LedgerKind         `json:"kind"`
	AccountCode     string             `json:"accountCode,omitempty"`
	AccountName     string             `json:"accountName,omitempty"`
	Party           *PartyRef          `json:"party,omitempty"`
	ControlAccounts []string           `json:"controlAccounts"`
	From            time.Time          `json:"from"`
	To              time.Time          `json:"to"`
	OpeningBalance  decimal.Decimal    `json:"openingBalance"`
	Rows            []RunningLedgerRow `json:"rows"`
	TotalDebit      decimal.Decimal    `json:"totalDebit"`
	TotalCredit     decimal.Decimal    `json:"totalCredit"`
	ClosingBalance  decimal.Decimal    `json:"closingBalance"`
}
