package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/npcoderes/GTS-sub001/internal/domain"
)

const authContextKey = "auth_context"

// RequireAuth validates the Bearer token issued at login and stores the
// admin identity in the gin context.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if raw == "" || raw == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		rc := domain.RequestContext{Role: "admin"}
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if u, ok := claims["username"].(string); ok {
				rc.Username = u
			}
			if r, ok := claims["role"].(string); ok {
				rc.Role = r
			}
		}
		c.Set(authContextKey, rc)
		c.Next()
	}
}

// GetAuthContext returns the authenticated admin identity when present.
func GetAuthContext(c *gin.Context) (domain.RequestContext, bool) {
	v, ok := c.Get(authContextKey)
	if !ok {
		return domain.RequestContext{}, false
	}
	rc, ok := v.(domain.RequestContext)
	return rc, ok
}
