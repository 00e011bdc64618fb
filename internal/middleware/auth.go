package middleware

import (
	"booking-service/pkg/jwtutil"
	"booking-service/pkg/logger"
	"booking-service/prometheus"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// UserContextKey is where the authenticated token claims are stored
const UserContextKey = "user"

// AuthMiddleware rejects requests without a valid bearer token and stores the
// decoded claims on the context. It never consults the store.
func AuthMiddleware(jwtUtil *jwtutil.JWTUtil) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log := logger.FromContext(c)

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				log.Warn("Missing Authorization header")
				prometheus.RecordAuthError("missing_token")
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Not authorized, no token"})
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				log.Warn("Invalid Authorization header format")
				prometheus.RecordAuthError("invalid_auth_format")
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Not authorized, no token"})
			}

			claims, err := jwtUtil.ValidateToken(parts[1])
			if err != nil {
				log.Warn("Invalid or expired token", zap.Error(err))
				prometheus.RecordAuthError("invalid_token")
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Not authorized, token failed"})
			}

			c.Set(UserContextKey, claims)
			logger.WithLogger(c, log.With(zap.Uint("user_id", claims.UserID)))
			log.Debug("JWT token validated successfully",
				zap.Uint("user_id", claims.UserID),
				zap.String("email", claims.Email))

			return next(c)
		}
	}
}

// CurrentUser returns the claims stored by AuthMiddleware
func CurrentUser(c echo.Context) (*jwtutil.UserClaims, bool) {
	claims, ok := c.Get(UserContextKey).(*jwtutil.UserClaims)
	return claims, ok
}
