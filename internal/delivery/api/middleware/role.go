package middleware

import (
	"elderguard/internal/delivery/api/response"
	deliverycontext "elderguard/internal/delivery/context"
	domainerrors "elderguard/internal/domain/errors"
	"elderguard/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// RequireRole admits principals whose role is in allowed.
// It must be used AFTER the Authenticate middleware.
func RequireRole(allowed ...entity.Role) echo.MiddlewareFunc {
	roles := entity.Roles(allowed)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := deliverycontext.GetPrincipal(c)
			if !ok {
				return response.FromAppError(c, domainerrors.ErrAuthenticationRequired)
			}

			if !roles.Contains(principal.Role) {
				return response.FromAppError(c, domainerrors.NewForbiddenRoleError(principal.Role.String()))
			}

			return next(c)
		}
	}
}

// RequireCaregiver admits caregivers only.
func RequireCaregiver() echo.MiddlewareFunc {
	return RequireRole(entity.RoleCaregiver)
}

// RequireFamilyOrCaregiver admits both known roles.
func RequireFamilyOrCaregiver() echo.MiddlewareFunc {
	return RequireRole(entity.RoleFamily, entity.RoleCaregiver)
}
