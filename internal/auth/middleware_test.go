package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newGuardedRouter(token string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(NewMiddleware(token).RequireToken())
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func request(router *gin.Engine, header string) int {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set(HeaderAuthorization, header)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Code
}

func TestRequireToken(t *testing.T) {
	router := newGuardedRouter("secret")

	assert.Equal(t, http.StatusUnauthorized, request(router, ""))
	assert.Equal(t, http.StatusUnauthorized, request(router, "secret"))
	assert.Equal(t, http.StatusUnauthorized, request(router, "Bearer wrong"))
	assert.Equal(t, http.StatusOK, request(router, "Bearer secret"))
	assert.Equal(t, http.StatusOK, request(router, "bearer secret"))
}

func TestEmptyTokenDisablesGuard(t *testing.T) {
	router := newGuardedRouter("")
	assert.Equal(t, http.StatusOK, request(router, ""))
}
