package api

import (
	"log"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	"github.com/npcoderes/GTS-sub001/internal/config"
	"github.com/npcoderes/GTS-sub001/internal/fleetapi"
	h "github.com/npcoderes/GTS-sub001/internal/http/handlers"
	"github.com/npcoderes/GTS-sub001/internal/http/middleware"
)

// NewRouter wires the dashboard backend: trip-list views over one shared
// fleet API client, behind admin auth.
func NewRouter(env config.Env) *gin.Engine {
	client := fleetapi.NewClient(env.FleetAPIBaseURL, env.FleetAPIToken, env.UpstreamTimeout)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(h.NotFound(env))

	trips := h.TripsHandler{Lister: client}
	system := h.SystemHandler{Upstream: client}
	auth := h.AuthHandler{Env: env}

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health", h.Health)
		apiGroup.GET("/upstream-check", system.UpstreamCheck)
		apiGroup.GET("/routes", h.Routes)

		apiGroup.POST("/auth/login", auth.Login)

		secured := apiGroup.Group("")
		secured.Use(middleware.RequireAuth([]byte(env.JWTSecret)))
		{
			secured.GET("/trips", trips.List)
			secured.GET("/trips/statuses", trips.Statuses)
			secured.GET("/trips/manifest", trips.Manifest)
		}
	}

	h.SetRouter(r)
	return r
}
