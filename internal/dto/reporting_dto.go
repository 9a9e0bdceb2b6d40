package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/ledger_statements/internal/apperrors"
	"github.com/SscSPs/ledger_statements/internal/core/domain"
	"github.com/SscSPs/ledger_statements/internal/utils"
)

// DateLayout is the wire format of every report date.
const DateLayout = time.DateOnly

// PeriodReportQuery holds the query parameters of period reports and ledgers.
type PeriodReportQuery struct {
	FromDate string `form:"fromDate" binding:"omitempty,datetime=2006-01-02"`
	ToDate   string `form:"toDate" binding:"omitempty,datetime=2006-01-02"`
	Scope    string `form:"scope" binding:"omitempty,max=512"` // Comma separated scope tags
}

// AsOfReportQuery holds the query parameters of point-in-time reports.
type AsOfReportQuery struct {
	AsOf  string `form:"asOf" binding:"omitempty,datetime=2006-01-02"`
	Scope string `form:"scope" binding:"omitempty,max=512"`
}

// AccountLedgerURI binds the account code of a general ledger request.
type AccountLedgerURI struct {
	AccountCode string `uri:"account_code" binding:"required,accountcode"`
}

// PartyLedgerURI binds the party of a customer or vendor ledger request.
type PartyLedgerURI struct {
	PartyID string `uri:"party_id" binding:"required,max=64"`
}

// ToScopeRequest applies the date defaults: toDate is today and fromDate the
// first day of toDate's month.
func (q PeriodReportQuery) ToScopeRequest(userID, companyID string, now time.Time) (domain.ScopeRequest, error) {
	to, err := parseDate("toDate", q.ToDate, now)
	if err != nil {
		return domain.ScopeRequest{}, err
	}
	from, err := parseDate("fromDate", q.FromDate, time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		return domain.ScopeRequest{}, err
	}
	return domain.ScopeRequest{
		UserID:    userID,
		CompanyID: companyID,
		From:      from,
		To:        to,
		ScopeTags: splitScope(q.Scope),
	}, nil
}

// ToScopeRequest applies the asOf default of today.
func (q AsOfReportQuery) ToScopeRequest(userID, companyID string, now time.Time) (domain.ScopeRequest, error) {
	asOf, err := parseDate("asOf", q.AsOf, now)
	if err != nil {
		return domain.ScopeRequest{}, err
	}
	return domain.ScopeRequest{
		UserID:    userID,
		CompanyID: companyID,
		To:        asOf,
		ScopeTags: splitScope(q.Scope),
	}, nil
}

func parseDate(name, value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return time.Date(fallback.Year(), fallback.Month(), fallback.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid %s format, use YYYY-MM-DD", apperrors.ErrValidation, name)
	}
	return t, nil
}

func splitScope(scope string) []string {
	if strings.TrimSpace(scope) == "" {
		return nil
	}
	return strings.Split(scope, ",")
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// TrialBalanceRowResponse represents a row in the trial balance report response
type TrialBalanceRowResponse struct {
	AccountCode string `json:"accountCode"`
	AccountName string `json:"accountName"`
	AccountType string `json:"accountType"`
	Debit       string `json:"debit"`
	Credit      string `json:"credit"`
	Balance     string `json:"balance"`
}

// TrialBalanceTotals is the footer of the trial balance.
type TrialBalanceTotals struct {
	Debit      string `json:"debit"`
	Credit     string `json:"credit"`
	Difference string `json:"difference"`
	Balanced   bool   `json:"balanced"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	FromDate     string                    `json:"fromDate"`
	ToDate       string                    `json:"toDate"`
	Rows         []TrialBalanceRowResponse `json:"rows"`
	Totals       TrialBalanceTotals        `json:"totals"`
	UnknownTypes []string                  `json:"unknownTypes"`
}

// ToTrialBalanceResponse converts a trial balance to its response
func ToTrialBalanceResponse(tb *domain.TrialBalance) TrialBalanceResponse {
	resp := TrialBalanceResponse{
		FromDate: formatDate(tb.From),
		ToDate:   formatDate(tb.To),
		Rows:     make([]TrialBalanceRowResponse, 0, len(tb.Rows)),
		Totals: TrialBalanceTotals{
			Debit:      utils.FormatMoney(tb.TotalDebit),
			Credit:     utils.FormatMoney(tb.TotalCredit),
			Difference: utils.FormatMoney(tb.Difference),
			Balanced:   tb.Balanced,
		},
		UnknownTypes: append([]string{}, tb.UnknownTypes...),
	}
	for _, row := range tb.Rows {
		resp.Rows = append(resp.Rows, TrialBalanceRowResponse{
			AccountCode: row.AccountCode,
			AccountName: row.AccountName,
			AccountType: string(row.AccountType),
			Debit:       utils.FormatMoney(row.Debit),
			Credit:      utils.FormatMoney(row.Credit),
			Balance:     utils.FormatMoney(row.Balance),
		})
	}
	return resp
}

// AccountAmountResponse represents an account with its amount in a financial report
type AccountAmountResponse struct {
	AccountCode string `json:"accountCode"`
	Name        string `json:"name"`
	Amount      string `json:"amount"`
}

// SectionResponse is a block of statement lines with its total.
type SectionResponse struct {
	Lines []AccountAmountResponse `json:"lines"`
	Total string                  `json:"total"`
}

func toSectionResponse(section domain.ReportSection) SectionResponse {
	resp := SectionResponse{
		Lines: make([]AccountAmountResponse, 0, len(section.Lines)),
		Total: utils.FormatMoney(section.Total),
	}
	for _, line := range section.Lines {
		resp.Lines = append(resp.Lines, AccountAmountResponse{
			AccountCode: line.AccountCode,
			Name:        line.AccountName,
			Amount:      utils.FormatMoney(line.Amount),
		})
	}
	return resp
}

// ProfitAndLossSummary holds the totals of a profit and loss report.
type ProfitAndLossSummary struct {
	TotalRevenue  string `json:"totalRevenue"`
	TotalExpenses string `json:"totalExpenses"`
	NetProfit     string `json:"netProfit"`
}

// ProfitAndLossResponse represents the profit and loss report response
type ProfitAndLossResponse struct {
	FromDate string               `json:"fromDate"`
	ToDate   string               `json:"toDate"`
	Revenue  SectionResponse      `json:"revenue"`
	Expenses SectionResponse      `json:"expenses"`
	Summary  ProfitAndLossSummary `json:"summary"`
}

// ToProfitAndLossResponse converts a profit and loss report to its response
func ToProfitAndLossResponse(pl *domain.ProfitAndLoss) ProfitAndLossResponse {
	return ProfitAndLossResponse{
		FromDate: formatDate(pl.From),
		ToDate:   formatDate(pl.To),
		Revenue:  toSectionResponse(pl.Revenue),
		Expenses: toSectionResponse(pl.Expenses),
		Summary: ProfitAndLossSummary{
			TotalRevenue:  utils.FormatMoney(pl.Revenue.Total),
			TotalExpenses: utils.FormatMoney(pl.Expenses.Total),
			NetProfit:     utils.FormatMoney(pl.NetProfit),
		},
	}
}

// BalanceSheetSummary holds the totals and balance check of a balance sheet.
type BalanceSheetSummary struct {
	TotalAssets               string `json:"totalAssets"`
	TotalLiabilities          string `json:"totalLiabilities"`
	RecordedEquity            string `json:"recordedEquity"`
	NetIncomeToDate           string `json:"netIncomeToDate"`
	TotalEquity               string `json:"totalEquity"`
	TotalLiabilitiesAndEquity string `json:"totalLiabilitiesAndEquity"`
	Difference                string `json:"difference"`
	Balanced                  bool   `json:"balanced"`
}

// BalanceSheetResponse represents the balance sheet report response
type BalanceSheetResponse struct {
	AsOf        string              `json:"asOf"`
	Assets      SectionResponse     `json:"assets"`
	Liabilities SectionResponse     `json:"liabilities"`
	Equity      SectionResponse     `json:"equity"`
	Summary     BalanceSheetSummary `json:"summary"`
}

// ToBalanceSheetResponse converts a balance sheet to its response
func ToBalanceSheetResponse(bs *domain.BalanceSheet) BalanceSheetResponse {
	return BalanceSheetResponse{
		AsOf:        formatDate(bs.AsOf),
		Assets:      toSectionResponse(bs.Assets),
		Liabilities: toSectionResponse(bs.Liabilities),
		Equity:      toSectionResponse(bs.Equity),
		Summary: BalanceSheetSummary{
			TotalAssets:               utils.FormatMoney(bs.Assets.Total),
			TotalLiabilities:          utils.FormatMoney(bs.Liabilities.Total),
			RecordedEquity:            utils.FormatMoney(bs.Equity.Total),
			NetIncomeToDate:           utils.FormatMoney(bs.NetIncomeToDate),
			TotalEquity:               utils.FormatMoney(bs.TotalEquity),
			TotalLiabilitiesAndEquity: utils.FormatMoney(bs.TotalLiabilitiesAndEquity),
			Difference:                utils.FormatMoney(bs.Difference),
			Balanced:                  bs.Balanced,
		},
	}
}

// CashFlowAdjustmentResponse is one working-capital line of the cash flow.
type CashFlowAdjustmentResponse struct {
	Label  string   `json:"label"`
	Codes  []string `json:"codes"`
	Delta  string   `json:"delta"`
	Effect string   `json:"effect"`
}

// CashFlowResponse represents the indirect cash flow report response
type CashFlowResponse struct {
	FromDate      string                       `json:"fromDate"`
	ToDate        string                       `json:"toDate"`
	NetIncome     string                       `json:"netIncome"`
	Adjustments   []CashFlowAdjustmentResponse `json:"adjustments"`
	OperatingCash string                       `json:"operatingCash"`
	OpeningCash   string                       `json:"openingCash"`
	ClosingCash   string                       `json:"closingCash"`
	CashDelta     string                       `json:"cashDelta"`
	Unclassified  string                       `json:"unclassified"`
	Reconciled    bool                         `json:"reconciled"`
}

// ToCashFlowResponse converts a cash flow statement to its response
func ToCashFlowResponse(cf *domain.CashFlowStatement) CashFlowResponse {
	resp := CashFlowResponse{
		FromDate:      formatDate(cf.From),
		ToDate:        formatDate(cf.To),
		NetIncome:     utils.FormatMoney(cf.NetIncome),
		Adjustments:   make([]CashFlowAdjustmentResponse, 0, len(cf.Adjustments)),
		OperatingCash: utils.FormatMoney(cf.OperatingCash),
		OpeningCash:   utils.FormatMoney(cf.OpeningCash),
		ClosingCash:   utils.FormatMoney(cf.ClosingCash),
		CashDelta:     utils.FormatMoney(cf.CashDelta),
		Unclassified:  utils.FormatMoney(cf.Unclassified),
		Reconciled:    cf.Reconciled,
	}
	for _, adj := range cf.Adjustments {
		resp.Adjustments = append(resp.Adjustments, CashFlowAdjustmentResponse{
			Label:  adj.Label,
			Codes:  append([]string{}, adj.Codes...),
			Delta:  utils.FormatMoney(adj.Delta),
			Effect: utils.FormatMoney(adj.Effect),
		})
	}
	return resp
}

// LedgerRowResponse is one entry of a running ledger.
type LedgerRowResponse struct {
	Date           string `json:"date"`
	JournalID      int64  `json:"journalID"`
	EntryID        int64  `json:"entryID"`
	ReferenceType  string `json:"referenceType,omitempty"`
	ReferenceID    string `json:"referenceID,omitempty"`
	Narration      string `json:"narration,omitempty"`
	AccountCode    string `json:"accountCode"`
	Debit          string `json:"debit"`
	Credit         string `json:"credit"`
	Delta          string `json:"delta"`
	RunningBalance string `json:"runningBalance"`
}

// LedgerResponse represents a general, customer or vendor ledger response
type LedgerResponse struct {
	Kind            string              `json:"kind"`
	AccountCode     string              `json:"accountCode,omitempty"`
	AccountName     string              `json:"accountName,omitempty"`
	PartyType       string              `json:"partyType,omitempty"`
	PartyID         string              `json:"partyID,omitempty"`
	ControlAccounts []string            `json:"controlAccounts"`
	FromDate        string              `json:"fromDate"`
	ToDate          string              `json:"toDate"`
	OpeningBalance  string              `json:"openingBalance"`
	Rows            []LedgerRowResponse `json:"rows"`
	TotalDebit      string              `json:"totalDebit"`
	TotalCredit     string              `json:"totalCredit"`
	ClosingBalance  string              `json:"closingBalance"`
}

// ToLedgerResponse converts a subsidiary ledger to its response
func ToLedgerResponse(l *domain.SubsidiaryLedger) LedgerResponse {
	resp := LedgerResponse{
		Kind:            string(l.Kind),
		AccountCode:     l.AccountCode,
		AccountName:     l.AccountName,
		ControlAccounts: append([]string{}, l.ControlAccounts...),
		FromDate:        formatDate(l.From),
		ToDate:          formatDate(l.To),
		OpeningBalance:  utils.FormatMoney(l.OpeningBalance),
		Rows:            make([]LedgerRowResponse, 0, len(l.Rows)),
		TotalDebit:      utils.FormatMoney(l.TotalDebit),
		TotalCredit:     utils.FormatMoney(l.TotalCredit),
		ClosingBalance:  utils.FormatMoney(l.ClosingBalance),
	}
	if l.Party != nil {
		resp.PartyType = string(l.Party.Type)
		resp.PartyID = l.Party.ID
	}
	for _, row := range l.Rows {
		resp.Rows = append(resp.Rows, LedgerRowResponse{
			Date:           formatDate(row.Entry.JournalDate),
			JournalID:      row.Entry.JournalID,
			EntryID:        row.Entry.EntryID,
			ReferenceType:  row.Entry.ReferenceType,
			ReferenceID:    row.Entry.ReferenceID,
			Narration:      row.Entry.Narration,
			AccountCode:    row.Entry.AccountCode,
			Debit:          utils.FormatMoney(row.Entry.Debit),
			Credit:         utils.FormatMoney(row.Entry.Credit),
			Delta:          utils.FormatMoney(row.Delta),
			RunningBalance: utils.FormatMoney(row.RunningBalance),
		})
	}
	return resp
}
