// Package handler contains the HTTP handlers of the REST API.
package handler

import (
	"elderguard/internal/delivery/api/response"
	deliverycontext "elderguard/internal/delivery/context"
	domainerrors "elderguard/internal/domain/errors"
	"elderguard/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// principal returns the authenticated subject, or writes a 401 when the auth middleware did not run.
func principal(c echo.Context) (*entity.Principal, bool, error) {
	p, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return nil, false, response.FromAppError(c, domainerrors.ErrAuthenticationRequired)
	}

	return p, true, nil
}
