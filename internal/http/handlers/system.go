package handlers

import (
	"context"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
)

// Pinger checks fleet API reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

var (
	routerMu sync.RWMutex
	router   *gin.Engine
)

// SetRouter stores the active gin engine for later inspection (e.g., /api/routes).
func SetRouter(r *gin.Engine) {
	routerMu.Lock()
	defer routerMu.Unlock()
	router = r
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "trips dashboard backend running"})
}

// SystemHandler exposes operational endpoints beyond plain liveness.
type SystemHandler struct {
	Upstream Pinger
}

// GET /api/upstream-check
func (h SystemHandler) UpstreamCheck(c *gin.Context) {
	if h.Upstream == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "fleet API client not configured"})
		return
	}
	if err := h.Upstream.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "fleet API unreachable: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "fleet API connection OK"})
}

func Routes(c *gin.Context) {
	routerMu.RLock()
	r := router
	routerMu.RUnlock()
	if r == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "router not ready"})
		return
	}

	routes := r.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method":  rt.Method,
			"path":    rt.Path,
			"handler": rt.Handler,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
