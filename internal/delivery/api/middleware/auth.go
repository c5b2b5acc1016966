package middleware

import (
	"log/slog"
	"strings"

	"elderguard/internal/delivery/api/response"
	deliverycontext "elderguard/internal/delivery/context"
	domainerrors "elderguard/internal/domain/errors"
	"elderguard/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerPrefix = "Bearer "

// AuthMiddleware verifies Firebase ID tokens and attaches the principal to the request.
type AuthMiddleware struct {
	verifier service.IdentityVerifier
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.IdentityVerifier, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, logger: logger}
}

// Authenticate validates the bearer ID token on every request. Results are never cached.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			return response.FromAppError(c, domainerrors.ErrTokenMissing)
		}

		idToken := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if idToken == "" {
			return response.FromAppError(c, domainerrors.ErrTokenMissing)
		}

		ctx := c.Request().Context()
		principal, err := m.verifier.VerifyIDToken(ctx, idToken)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Authentication failed", slog.Any("error", err))

			switch {
			case errors.Is(err, service.ErrIDTokenExpired):
				return response.FromAppError(c, domainerrors.ErrTokenExpired)
			case errors.Is(err, service.ErrIDTokenRevoked):
				return response.FromAppError(c, domainerrors.ErrTokenRevoked)
			default:
				return response.FromAppError(c, domainerrors.ErrTokenInvalid)
			}
		}

		deliverycontext.SetPrincipal(c, principal)

		return next(c)
	}
}
