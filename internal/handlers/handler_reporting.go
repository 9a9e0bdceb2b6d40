package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/ledger_statements/internal/apperrors"
	"github.com/SscSPs/ledger_statements/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_statements/internal/core/ports/services"
	"github.com/SscSPs/ledger_statements/internal/dto"
	"github.com/SscSPs/ledger_statements/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
	now              func() time.Time
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

// RegisterReportingRoutes registers the report routes under a company group
// (a group whose path carries :company_id). Extra handlers run in front of
// every report route.
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService, extra ...gin.HandlerFunc) {
	if err := RegisterValidators(); err != nil {
		panic(err)
	}
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports", extra...)
	{
		reportingGroup.GET("/trial-balance", h.getTrialBalance)
		reportingGroup.GET("/balance-sheet", h.getBalanceSheet)
		reportingGroup.GET("/profit-and-loss", h.getProfitAndLoss)
		reportingGroup.GET("/cash-flow", h.getCashFlow)
		reportingGroup.GET("/general-ledger/:account_code", h.getGeneralLedger)
		reportingGroup.GET("/customer-ledger/:party_id", h.getCustomerLedger)
		reportingGroup.GET("/vendor-ledger/:party_id", h.getVendorLedger)
	}
}

// getTrialBalance godoc
// @Summary Generate trial balance report
// @Description Lists debit and credit activity per account within the period, with totals and the ledger difference
// @Tags reports
// @Produce json
// @Param company_id path string true "Company ID"
// @Param fromDate query string false "Start date (YYYY-MM-DD)" default(first day of toDate month)
// @Param toDate query string false "End date (YYYY-MM-DD)" default(current date)
// @Param scope query string false "Comma separated scope tags"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Company or membership not found"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /companies/{company_id}/reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	req, logger, ok := h.bindPeriod(c, "trial balance")
	if !ok {
		return
	}

	report, err := h.reportingService.TrialBalance(c.Request.Context(), req)
	if err != nil {
		respondReportError(c, logger, "trial balance", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(report))
}

// getBalanceSheet godoc
// @Summary Generate balance sheet report
// @Description Assets, liabilities and equity as of a date. Unclosed revenue and expense appear as net income to date within equity.
// @Tags reports
// @Produce json
// @Param company_id path string true "Company ID"
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Param scope query string false "Comma separated scope tags"
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Company or membership not found"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /companies/{company_id}/reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger, companyID, userID, ok := h.requestContext(c, "balance sheet")
	if !ok {
		return
	}

	var query dto.AsOfReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Invalid balance sheet query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	req, err := query.ToScopeRequest(userID, companyID, h.now())
	if err != nil {
		respondReportError(c, logger, "balance sheet", err)
		return
	}

	logger.Info("Received request to generate balance sheet report", slog.String("asOf", req.To.Format(dto.DateLayout)))
	report, err := h.reportingService.BalanceSheet(c.Request.Context(), req)
	if err != nil {
		respondReportError(c, logger, "balance sheet", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(report))
}

// getProfitAndLoss godoc
// @Summary Generate profit and loss report
// @Description Revenue and expenses netted per account for a period
// @Tags reports
// @Produce json
// @Param company_id path string true "Company ID"
// @Param fromDate query string false "Start date (YYYY-MM-DD)" default(first day of toDate month)
// @Param toDate query string false "End date (YYYY-MM-DD)" default(current date)
// @Param scope query string false "Comma separated scope tags"
// @Success 200 {object} dto.ProfitAndLossResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Company or membership not found"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /companies/{company_id}/reports/profit-and-loss [get]
func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	req, logger, ok := h.bindPeriod(c, "profit and loss")
	if !ok {
		return
	}

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), req)
	if err != nil {
		respondReportError(c, logger, "profit and loss", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfitAndLossResponse(report))
}

// getCashFlow godoc
// @Summary Generate indirect cash flow report
// @Description Reconciles period net income to the change in cash through working-capital deltas. Unexplained movement is reported as unclassified.
// @Tags reports
// @Produce json
// @Param company_id path string true "Company ID"
// @Param fromDate query string false "Start date (YYYY-MM-DD)" default(first day of toDate month)
// @Param toDate query string false "End date (YYYY-MM-DD)" default(current date)
// @Param scope query string false "Comma separated scope tags"
// @Success 200 {object} dto.CashFlowResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Company or membership not found"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /companies/{company_id}/reports/cash-flow [get]
func (h *reportingHandler) getCashFlow(c *gin.Context) {
	req, logger, ok := h.bindPeriod(c, "cash flow")
	if !ok {
		return
	}

	report, err := h.reportingService.CashFlow(c.Request.Context(), req)
	if err != nil {
		respondReportError(c, logger, "cash flow", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCashFlowResponse(report))
}

// getGeneralLedger godoc
// @Summary Generate general ledger for an account
// @Description Opening balance, running entries and closing balance of one account, signed by its normal balance
// @Tags reports
// @Produce json
// @Param company_id path string true "Company ID"
// @Param account_code path string true "Account code"
// @Param fromDate query string false "Start date (YYYY-MM-DD)" default(first day of toDate month)
// @Param toDate query string false "End date (YYYY-MM-DD)" default(current date)
// @Param scope query string false "Comma separated scope tags"
// @Success 200 {object} dto.LedgerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /companies/{company_id}/reports/general-ledger/{account_code} [get]
func (h *reportingHandler) getGeneralLedger(c *gin.Context) {
	var uri dto.AccountLedgerURI
	if err := c.ShouldBindUri(&uri); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Invalid account code", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account code"})
		return
	}
	req, logger, ok := h.bindPeriod(c, "general ledger")
	if !ok {
		return
	}

	report, err := h.reportingService.GeneralLedger(c.Request.Context(), req, uri.AccountCode)
	if err != nil {
		respondReportError(c, logger, "general ledger", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerResponse(report))
}

// getCustomerLedger godoc
// @Summary Generate customer ledger
// @Description Running balance of one customer across receivable and advance accounts. Positive means the customer owes us.
// @Tags reports
// @Produce json
// @Param company_id path string true "Company ID"
// @Param party_id path string true "Customer ID"
// @Param fromDate query string false "Start date (YYYY-MM-DD)" default(first day of toDate month)
// @Param toDate query string false "End date (YYYY-MM-DD)" default(current date)
// @Param scope query string false "Comma separated scope tags"
// @Success 200 {object} dto.LedgerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /companies/{company_id}/reports/customer-ledger/{party_id} [get]
func (h *reportingHandler) getCustomerLedger(c *gin.Context) {
	h.partyLedger(c, domain.PartyCustomer)
}

// getVendorLedger godoc
// @Summary Generate vendor ledger
// @Description Running balance of one vendor across payable accounts. Positive means we owe the vendor.
// @Tags reports
// @Produce json
// @Param company_id path string true "Company ID"
// @Param party_id path string true "Vendor ID"
// @Param fromDate query string false "Start date (YYYY-MM-DD)" default(first day of toDate month)
// @Param toDate query string false "End date (YYYY-MM-DD)" default(current date)
// @Param scope query string false "Comma separated scope tags"
// @Success 200 {object} dto.LedgerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /companies/{company_id}/reports/vendor-ledger/{party_id} [get]
func (h *reportingHandler) getVendorLedger(c *gin.Context) {
	h.partyLedger(c, domain.PartyVendor)
}

func (h *reportingHandler) partyLedger(c *gin.Context, partyType domain.PartyType) {
	var uri dto.PartyLedgerURI
	if err := c.ShouldBindUri(&uri); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Invalid party id", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid party ID"})
		return
	}

	name := "customer ledger"
	fetch := h.reportingService.CustomerLedger
	if partyType == domain.PartyVendor {
		name = "vendor ledger"
		fetch = h.reportingService.VendorLedger
	}

	req, logger, ok := h.bindPeriod(c, name)
	if !ok {
		return
	}

	report, err := fetch(c.Request.Context(), req, uri.PartyID)
	if err != nil {
		respondReportError(c, logger, name, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerResponse(report))
}

// requestContext pulls the company and caller out of the request.
func (h *reportingHandler) requestContext(c *gin.Context, report string) (*slog.Logger, string, string, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")
	if companyID == "" {
		logger.Error("Company ID missing from path", slog.String("report", report))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Company ID required in path"})
		return nil, "", "", false
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, "", "", false
	}

	logger = logger.With(
		slog.String("company_id", companyID),
		slog.String("report", report),
	)
	return logger, companyID, userID, true
}

// bindPeriod reads the fromDate/toDate/scope query of period reports.
func (h *reportingHandler) bindPeriod(c *gin.Context, report string) (domain.ScopeRequest, *slog.Logger, bool) {
	logger, companyID, userID, ok := h.requestContext(c, report)
	if !ok {
		return domain.ScopeRequest{}, nil, false
	}

	var query dto.PeriodReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Invalid report query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return domain.ScopeRequest{}, nil, false
	}
	req, err := query.ToScopeRequest(userID, companyID, h.now())
	if err != nil {
		respondReportError(c, logger, report, err)
		return domain.ScopeRequest{}, nil, false
	}

	logger.Info("Received request to generate report",
		slog.String("fromDate", req.From.Format(dto.DateLayout)),
		slog.String("toDate", req.To.Format(dto.DateLayout)))
	return req, logger, true
}

// respondReportError maps service errors to HTTP statuses.
func respondReportError(c *gin.Context, logger *slog.Logger, report string, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Invalid report request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("User forbidden to access report")
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to access this report"})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Company or membership not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
	default:
		logger.Error("Failed to generate report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate " + report + " report"})
	}
}
