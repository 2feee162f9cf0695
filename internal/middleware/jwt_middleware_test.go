package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/guardianpro/guardianpro-api/internal/utils"
)

func setupProtectedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", NewJWTMiddleware().Handle(), func(c *gin.Context) {
		c.JSON(200, gin.H{
			"admin_id": c.GetString("admin_id"),
			"username": c.GetString("username"),
			"role":     c.GetString("role"),
		})
	})
	return router
}

func TestJWTMiddlewareMissingHeader(t *testing.T) {
	utils.InitJWT("test-secret")
	router := setupProtectedRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	if w.Code != 401 {
		t.Fatalf("want 401, got %d", w.Code)
	}
}

func TestJWTMiddlewareMalformedHeader(t *testing.T) {
	utils.InitJWT("test-secret")
	router := setupProtectedRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	router.ServeHTTP(w, req)

	if w.Code != 401 {
		t.Fatalf("want 401, got %d", w.Code)
	}
}

func TestJWTMiddlewareInvalidToken(t *testing.T) {
	utils.InitJWT("test-secret")
	router := setupProtectedRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)

	if w.Code != 401 {
		t.Fatalf("want 401, got %d", w.Code)
	}
}

func TestJWTMiddlewareValidToken(t *testing.T) {
	utils.InitJWT("test-secret")
	router := setupProtectedRouter(t)

	token, _, err := utils.GenerateSessionToken("admin-1", "admin", "admin")
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("want 200, got %d: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	for _, want := range []string{`"admin_id":"admin-1"`, `"username":"admin"`, `"role":"admin"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("response missing %s: %s", want, body)
		}
	}
}
