package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/npcoderes/GTS-sub001/internal/config"
	"github.com/npcoderes/GTS-sub001/internal/http/middleware"
	"github.com/npcoderes/GTS-sub001/internal/utils"
)

// AuthHandler signs in the single env-configured admin account. The
// dashboard has no user store; credentials live in the environment.
type AuthHandler struct {
	Env config.Env
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/auth/login
func (h AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	if h.Env.AdminUsername == "" || h.Env.AdminPasswordHash == "" {
		RespondError(c, http.StatusServiceUnavailable, "admin account not configured", nil)
		return
	}

	if req.Username != h.Env.AdminUsername {
		RespondError(c, http.StatusUnauthorized, "invalid username or password", nil)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(h.Env.AdminPasswordHash), []byte(req.Password)); err != nil {
		RespondError(c, http.StatusUnauthorized, "invalid username or password", nil)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": req.Username,
		"role":     "admin",
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(h.Env.JWTSecret))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to issue token", err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "auth", "login", "admin signed in")
	c.JSON(http.StatusOK, gin.H{
		"token": signed,
		"user": gin.H{
			"username": req.Username,
			"role":     "admin",
		},
	})
}
