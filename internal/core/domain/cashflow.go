package domain

import "slices"

// CashFlowMapping assigns control-account codes to the lines of the indirect
// cash-flow reconciliation. Codes are configuration; which line adds and which
// subtracts is fixed by the reconciliation itself.
type CashFlowMapping struct {
	CashCodes            []string `json:"cashCodes"`
	ReceivableCodes      []string `json:"receivableCodes"`
	InventoryCodes       []string `json:"inventoryCodes"`
	InputTaxCodes        []string `json:"inputTaxCodes"`
	PayableCodes         []string `json:"payableCodes"`
	OutputTaxCodes       []string `json:"outputTaxCodes"`
	CustomerAdvanceCodes []string `json:"customerAdvanceCodes"`
}

// DefaultCashFlowMapping returns the stock chart-of-accounts codes.
func DefaultCashFlowMapping() CashFlowMapping {
	return CashFlowMapping{
		CashCodes:            []string{"1000", "1010"},
		ReceivableCodes:      []string{"1200"},
		InventoryCodes:       []string{"1300"},
		InputTaxCodes:        []string{"1410", "1420", "1430"},
		PayableCodes:         []string{"2000"},
		OutputTaxCodes:       []string{"2210", "2220", "2230"},
		CustomerAdvanceCodes: []string{"2300"},
	}
}

// CustomerControlCodes are the accounts a customer ledger is drawn from.
func (m CashFlowMapping) CustomerControlCodes() []string {
	return slices.Concat(m.ReceivableCodes, m.CustomerAdvanceCodes)
}

// VendorControlCodes are the accounts a vendor ledger is drawn from.
func (m CashFlowMapping) VendorControlCodes() []string {
	return slices.Clone(m.PayableCodes)
}

// AllCodes lists every configured code once, in configuration order.
func (m CashFlowMapping) AllCodes() []string {
	all := slices.Concat(m.CashCodes, m.ReceivableCodes, m.InventoryCodes, m.InputTaxCodes,
		m.PayableCodes, m.OutputTaxCodes, m.CustomerAdvanceCodes)
	seen := make(map[string]struct{}, len(all))
	out := make([]string, 0, len(all))
	for _, code := range all {
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}
