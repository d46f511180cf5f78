package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/npcoderes/GTS-sub001/internal/config"
)

// NotFound is the dashboard's fallback screen payload. It offers the two
// recovery actions the UI renders: jump to the dashboard home, or go back
// one history entry. The theme flag is injected config, never mutable state.
func NotFound(env config.Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
			"theme":  env.UITheme,
			"actions": gin.H{
				"home": env.DashboardPath,
				"back": "history:-1",
			},
		})
	}
}
