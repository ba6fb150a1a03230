package middleware

import (
	"net/http"

	golangjwt "github.com/golang-jwt/jwt"
	echojwt "github.com/labstack/echo-jwt"
	"github.com/labstack/echo/v4"

	"github.com/commutecast/backend/shared/jwt"
)

// contextUserIDKey is the echo.Context key the core reads the verified
// user ID from. Handlers never trust any client-supplied identity field.
const contextUserIDKey = "userID"

// contextTokenKey is where echojwt stores the parsed token, matching the
// teacher's JwtConfig convention (shared/jwt/jwt.go's echojwt.Config).
const contextTokenKey = "user"

// Auth verifies the bearer token set by the external identity provider
// using echojwt, the teacher's JWT middleware of choice, and injects the
// verified user ID into the request context.
func Auth() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: contextTokenKey,
		SigningKey: jwt.SecretKey(),
		Claims:     &jwt.Claims{},
		ErrorHandlerWithContext: func(err error, c echo.Context) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		},
		SuccessHandler: func(c echo.Context) {
			token := c.Get(contextTokenKey).(*golangjwt.Token)
			claims := token.Claims.(*jwt.Claims)
			c.Set(contextUserIDKey, claims.UserID)
		},
	})
}

// UserIDFromContext recovers the verified user ID set by Auth(). Handlers
// call this instead of reading any client-supplied field.
func UserIDFromContext(c echo.Context) (string, bool) {
	v, ok := c.Get(contextUserIDKey).(string)
	return v, ok && v != ""
}
