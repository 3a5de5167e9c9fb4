package http

import (
	"net/http"
	"strings"

	"sendit/internal/core/domain/model/auth"
	"sendit/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// principalContextKey is where the auth middleware stores the verified
// principal on the echo context.
const principalContextKey = "sendit.principal"

// publicPaths lists route prefixes served without a bearer token.
var publicPaths = []string{
	"/auth/",
	"/health",
}

// AuthMiddleware verifies the Authorization bearer token and stores the
// resulting principal on the context. Requests to public paths pass through
// untouched.
func AuthMiddleware(tokens *TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if isPublicPath(ctx.Path()) || isPublicPath(ctx.Request().URL.Path) {
				return next(ctx)
			}

			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return unauthorized(ctx, "Missing bearer token")
			}

			tokenString := strings.TrimPrefix(header, "Bearer ")
			principal, err := tokens.Verify(tokenString)
			if err != nil {
				return unauthorized(ctx, "Invalid or expired token")
			}

			ctx.Set(principalContextKey, principal)
			return next(ctx)
		}
	}
}

func isPublicPath(path string) bool {
	for _, p := range publicPaths {
		if strings.HasPrefix(path, p) || strings.HasPrefix(path, "/api/v1"+p) {
			return true
		}
	}
	return false
}

func unauthorized(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnauthorized, servers.Error{
		Code:    http.StatusUnauthorized,
		Message: message,
	})
}

// principalFrom extracts the principal stored by AuthMiddleware.
func principalFrom(ctx echo.Context) (auth.Principal, bool) {
	p, ok := ctx.Get(principalContextKey).(auth.Principal)
	if !ok || p.Validate() != nil {
		return auth.Principal{}, false
	}
	return p, true
}
