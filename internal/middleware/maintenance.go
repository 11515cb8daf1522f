package middleware

import (
	"github.com/gigspace/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

// MaintenanceChecker reports whether the public site is gated.
type MaintenanceChecker interface {
	MaintenanceActive() bool
}

// Maintenance blocks anonymous access to public routes while
// maintenance mode is on. Authenticated callers pass through so the
// dashboard can turn the mode back off.
func Maintenance(checker MaintenanceChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if checker.MaintenanceActive() && !IsAuthenticated(c) {
			response.ServiceUnavailable(c, "site is under maintenance, please check back shortly")
			return
		}
		c.Next()
	}
}
