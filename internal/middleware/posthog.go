package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// EventTracker is the product analytics sink, satisfied by utils.PosthogClientWrapper.
type EventTracker interface {
	IsInitialized() bool
	Enqueue(distinctID string, event string, properties map[string]any)
}

// ReportViewedEvent is emitted once per successfully served report.
const ReportViewedEvent = "report_viewed"

// PosthogMiddleware records which reports users open. Failed requests and
// requests without an authenticated user are not tracked.
func PosthogMiddleware(tracker EventTracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tracker == nil || !tracker.IsInitialized() {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}
		report := reportName(c.FullPath())
		if report == "" {
			return
		}

		props := map[string]any{
			"report":      report,
			"company_id":  c.Param("company_id"),
			"status_code": c.Writer.Status(),
		}
		if scope := c.Query("scope"); scope != "" {
			props["scope"] = scope
		}
		tracker.Enqueue(userID, ReportViewedEvent, props)
	}
}

// reportName extracts "trial-balance" from ".../reports/trial-balance" style route patterns.
func reportName(fullPath string) string {
	_, rest, found := strings.Cut(fullPath, "/reports/")
	if !found {
		return ""
	}
	name, _, _ := strings.Cut(rest, "/")
	return name
}
