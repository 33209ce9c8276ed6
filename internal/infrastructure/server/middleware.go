package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	httpHandlers "github.com/taskdesk/core/internal/adapters/http"
	"github.com/taskdesk/core/internal/application/services"
	"github.com/taskdesk/core/internal/domain/entities"
)

// authMiddleware validates the Bearer token and stores the verified
// requester in the request context. Routes behind it never see an
// unauthenticated request; services still re-check the requester they are
// handed.
func (s *Server) authMiddleware(authService *services.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing authorization header")
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization header format")
			}

			requester, err := authService.ValidateToken(tokenString)
			if err != nil {
				s.logger.LogSecurityEvent("invalid_token", "", c.RealIP(), map[string]interface{}{
					"error": err.Error(),
				})
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			c.Set(httpHandlers.RequesterContextKey, *requester)

			return next(c)
		}
	}
}

// requireBoss rejects non-boss requesters before the handler runs
func (s *Server) requireBoss() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requester, ok := c.Get(httpHandlers.RequesterContextKey).(entities.Requester)
			if !ok {
				return echo.NewHTTPError(http.StatusInternalServerError, "Failed to get requester from context")
			}

			if requester.Role != entities.RoleBoss {
				s.logger.LogSecurityEvent("insufficient_permissions",
					requester.ID,
					c.RealIP(),
					map[string]interface{}{
						"user_role": requester.Role,
						"endpoint":  c.Request().URL.Path,
					})
				return echo.NewHTTPError(http.StatusForbidden, "Insufficient permissions")
			}

			return next(c)
		}
	}
}
