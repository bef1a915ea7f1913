package http

import (
	"net/http"
	"strings"

	"foodorder/internal/generated/servers"
	"foodorder/internal/pkg/auth"

	"github.com/labstack/echo/v4"
)

// claimsContextKey is the echo context key under which verified token claims
// are stored for the duration of a request.
const claimsContextKey = "auth.claims"

const bearerPrefix = "Bearer "

// PublicRoute reports whether a request may pass without a token. Health and
// spec endpoints, registration, login and the public catalog listing stay
// open; everything else requires authentication.
func PublicRoute(ctx echo.Context) bool {
	path := ctx.Path()
	switch path {
	case "/health", "/openapi.json", "/api/v1/auth/register", "/api/v1/auth/login":
		return true
	case "/api/v1/food":
		return ctx.Request().Method == http.MethodGet
	}
	return false
}

// JWTAuthentication returns echo middleware that verifies the bearer token
// and stores the resulting claims in the request context. A token is required
// on every non-public route; on public routes a token is optional, but when
// one is presented it is still verified and its claims stored, so public
// endpoints such as registration can recognize an authenticated admin.
// Requests carrying an invalid token are rejected with 401 everywhere.
func JWTAuthentication(tokens *auth.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, bearerPrefix) {
				if PublicRoute(ctx) {
					return next(ctx)
				}
				return ctx.JSON(http.StatusUnauthorized, servers.Error{
					Code:    http.StatusUnauthorized,
					Message: "Missing bearer token",
				})
			}

			claims, err := tokens.Verify(strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, servers.Error{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or expired token",
				})
			}

			ctx.Set(claimsContextKey, claims)
			return next(ctx)
		}
	}
}

// ClaimsFromContext returns the verified claims stored by JWTAuthentication,
// or nil when the request came in through a public route.
func ClaimsFromContext(ctx echo.Context) *auth.Claims {
	claims, _ := ctx.Get(claimsContextKey).(*auth.Claims)
	return claims
}
