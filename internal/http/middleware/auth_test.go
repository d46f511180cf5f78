package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "admin",
		"role":     "admin",
		"exp":      exp.Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func authEngine(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequireAuth([]byte(secret)))
	r.GET("/secured", func(c *gin.Context) {
		rc, ok := GetAuthContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "missing auth context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"username": rc.Username, "role": rc.Role})
	})
	return r
}

func requestWithAuth(r *gin.Engine, header string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secured", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthAcceptsValidToken(t *testing.T) {
	r := authEngine("secret")
	token := signToken(t, "secret", time.Now().Add(time.Hour))

	w := requestWithAuth(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"admin"`)
}

func TestRequireAuthRejectsMissingHeader(t *testing.T) {
	w := requestWithAuth(authEngine("secret"), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthRejectsWrongSecret(t *testing.T) {
	r := authEngine("secret")
	token := signToken(t, "other-secret", time.Now().Add(time.Hour))

	w := requestWithAuth(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthRejectsExpiredToken(t *testing.T) {
	r := authEngine("secret")
	token := signToken(t, "secret", time.Now().Add(-time.Minute))

	w := requestWithAuth(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthRejectsMalformedHeader(t *testing.T) {
	w := requestWithAuth(authEngine("secret"), "Token abc123")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
