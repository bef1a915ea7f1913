package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	foodhttp "foodorder/internal/adapters/in/http"
	"foodorder/internal/pkg/auth"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthedEcho(tokens *auth.TokenService) *echo.Echo {
	e := echo.New()
	e.Use(foodhttp.JWTAuthentication(tokens))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/api/v1/food", func(c echo.Context) error {
		if claims := foodhttp.ClaimsFromContext(c); claims != nil {
			return c.String(http.StatusOK, claims.Username)
		}
		return c.String(http.StatusOK, "catalog")
	})
	e.GET("/api/v1/orders", func(c echo.Context) error {
		claims := foodhttp.ClaimsFromContext(c)
		if claims == nil {
			return c.NoContent(http.StatusInternalServerError)
		}
		return c.String(http.StatusOK, claims.Username)
	})
	return e
}

func TestJWTAuthentication_PublicRoutesPassWithoutToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	e := newAuthedEcho(tokens)

	for _, path := range []string{"/health", "/api/v1/food"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestJWTAuthentication_MissingToken_Returns401(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	e := newAuthedEcho(tokens)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthentication_InvalidToken_Returns401(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	e := newAuthedEcho(tokens)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthentication_TokenOnPublicRoute_ExposesClaims(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	e := newAuthedEcho(tokens)

	token, err := tokens.Issue("9b9dff67-1423-4fd0-9c29-7966c3f9e152", "john", "CUSTOMER")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/food", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "john", rec.Body.String())
}

func TestJWTAuthentication_InvalidTokenOnPublicRoute_Returns401(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	e := newAuthedEcho(tokens)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/food", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthentication_ValidToken_ExposesClaims(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	e := newAuthedEcho(tokens)

	token, err := tokens.Issue("9b9dff67-1423-4fd0-9c29-7966c3f9e152", "john", "CUSTOMER")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "john", rec.Body.String())
}
