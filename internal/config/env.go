package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Env holds all runtime configuration. Everything comes from the process
// environment; a .env file beside the binary is honored when present.
type Env struct {
	AppAddr string
	GinMode string

	FleetAPIBaseURL string
	FleetAPIToken   string
	UpstreamTimeout time.Duration

	AdminUsername     string
	AdminPasswordHash string
	JWTSecret         string

	CORSAllowedOrigins []string

	// UITheme is the dashboard theme flag ("dark" or "light") injected into
	// view payloads; read-only after startup.
	UITheme       string
	DashboardPath string
}

func LoadEnv() Env {
	// missing .env is fine; real deployments set the environment directly
	_ = godotenv.Load()

	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	baseURL := strings.TrimSpace(os.Getenv("FLEET_API_BASE_URL"))
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}
	baseURL = strings.TrimRight(baseURL, "/")

	timeout := 10 * time.Second
	if raw := strings.TrimSpace(os.Getenv("FLEET_API_TIMEOUT_SECONDS")); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			timeout = time.Duration(secs) * time.Second
		}
	}

	jwtSecret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if jwtSecret == "" {
		jwtSecret = "super-secret-key-change-me"
	}

	theme := strings.ToLower(strings.TrimSpace(os.Getenv("UI_THEME")))
	if theme != "dark" {
		theme = "light"
	}

	dashboardPath := strings.TrimSpace(os.Getenv("DASHBOARD_PATH"))
	if dashboardPath == "" {
		dashboardPath = "/dashboard"
	}

	var origins []string
	for _, o := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}
	}

	return Env{
		AppAddr:            appAddr,
		GinMode:            strings.TrimSpace(os.Getenv("GIN_MODE")),
		FleetAPIBaseURL:    baseURL,
		FleetAPIToken:      strings.TrimSpace(os.Getenv("FLEET_API_TOKEN")),
		UpstreamTimeout:    timeout,
		AdminUsername:      strings.TrimSpace(os.Getenv("ADMIN_USERNAME")),
		AdminPasswordHash:  strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH")),
		JWTSecret:          jwtSecret,
		CORSAllowedOrigins: origins,
		UITheme:            theme,
		DashboardPath:      dashboardPath,
	}
}
