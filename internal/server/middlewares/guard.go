package middlewares

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// CurrentUserContextKey is the key to retrieve the current user id from echo.Context.
const CurrentUserContextKey = "current_user"

// Guard returns a bearer-token auth middleware.
// Tokens are issued by the identity provider sharing signingKey; the
// subject claim carries the caller's id, stored into echo.Context for
// owner-scoped handlers. Anonymous callers are rejected before any
// storage access.
func Guard(signingKey []byte) echo.MiddlewareFunc {
	check := echojwt.JWT(signingKey)

	fake := func(echo.Context) error {
		return nil
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authorization := c.Request().Header.Get(echo.HeaderAuthorization)
			if token(authorization) == "" {
				return unauthorized(c)
			}

			if err := check(fake)(c); err != nil {
				// Check token validity according its claims.
				return unauthorized(c)
			}

			tk, ok := c.Get("user").(*jwt.Token)
			if !ok {
				panic("token implementation has changed")
			}

			subject, err := tk.Claims.GetSubject()
			if err != nil || subject == "" {
				return unauthorized(c)
			}

			// Store the caller id for handlers.
			c.Set(CurrentUserContextKey, subject)
			return next(c)
		}
	}
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, echo.Map{
		"success": false,
		"message": "Unauthorized",
	})
}

func token(authorization string) string {
	parts := strings.Split(authorization, " ")
	if strings.ToLower(parts[0]) != "bearer" {
		return ""
	}

	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
