package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/ledger_statements/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-that-is-long-enough"

func signToken(t *testing.T, subject string, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Issuer:    "ledger-statements-test",
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	return r
}

func TestStructuredLoggingMiddleware_InjectsLoggerAndRequestID(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))
	r := newRouter(middleware.StructuredLoggingMiddleware(base))
	r.GET("/ping", func(c *gin.Context) {
		middleware.GetLoggerFromCtx(c.Request.Context()).Info("inside handler")
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
	assert.Contains(t, buf.String(), `"msg":"inside handler"`)
	assert.Contains(t, buf.String(), `"request_id":"req-123"`)
	assert.Contains(t, buf.String(), `"msg":"Request completed"`)
}

func TestGetLoggerFromCtx_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, slog.Default(), middleware.GetLoggerFromCtx(httptest.NewRequest(http.MethodGet, "/", nil).Context()))
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantUser   string
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not-a-jwt", wantStatus: http.StatusUnauthorized},
		{name: "expired token", header: "Bearer " + signToken(t, "user-1", -time.Minute), wantStatus: http.StatusUnauthorized},
		{name: "empty subject", header: "Bearer " + signToken(t, "", time.Hour), wantStatus: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer " + signToken(t, "user-1", time.Hour), wantStatus: http.StatusOK, wantUser: "user-1"},
		{name: "scheme is case insensitive", header: "bearer " + signToken(t, "user-2", time.Hour), wantStatus: http.StatusOK, wantUser: "user-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(middleware.AuthMiddleware(testSecret))
			var gotUser string
			r.GET("/secure", func(c *gin.Context) {
				gotUser, _ = middleware.GetUserIDFromContext(c)
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/secure", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantUser, gotUser)
		})
	}
}

func TestRateLimit_BlocksAfterQuota(t *testing.T) {
	lim, err := middleware.NewReportLimiter("2-M")
	require.NoError(t, err)
	r := newRouter(middleware.RateLimit(lim))
	r.GET("/r", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/r", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestNewReportLimiter_InvalidRate(t *testing.T) {
	_, err := middleware.NewReportLimiter("lots")
	assert.Error(t, err)
}

type fakeTracker struct {
	events []map[string]any
	users  []string
}

func (f *fakeTracker) IsInitialized() bool { return true }

func (f *fakeTracker) Enqueue(distinctID string, event string, properties map[string]any) {
	f.users = append(f.users, distinctID)
	properties["event"] = event
	f.events = append(f.events, properties)
}

func TestPosthogMiddleware_TracksSuccessfulReports(t *testing.T) {
	tracker := &fakeTracker{}
	r := newRouter(middleware.AuthMiddleware(testSecret), middleware.PosthogMiddleware(tracker))
	r.GET("/api/v1/companies/:company_id/reports/trial-balance", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/api/v1/companies/:company_id/reports/cash-flow", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for _, path := range []string{
		"/api/v1/companies/c-1/reports/trial-balance?scope=north",
		"/api/v1/companies/c-1/reports/cash-flow",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "user-9", time.Hour))
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	require.Len(t, tracker.events, 1)
	assert.Equal(t, "user-9", tracker.users[0])
	assert.Equal(t, middleware.ReportViewedEvent, tracker.events[0]["event"])
	assert.Equal(t, "trial-balance", tracker.events[0]["report"])
	assert.Equal(t, "c-1", tracker.events[0]["company_id"])
	assert.Equal(t, "north", tracker.events[0]["scope"])
}
