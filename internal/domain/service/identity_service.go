package service

import (
	"context"

	"elderguard/internal/domain/entity"

	"github.com/pkg/errors"
)

// Verification failures distinguished by the authentication middleware.
var (
	ErrIDTokenExpired = errors.New("id token expired")
	ErrIDTokenRevoked = errors.New("id token revoked")
	ErrIDTokenInvalid = errors.New("id token invalid")
)

// IdentityVerifier verifies bearer ID tokens against the identity provider.
type IdentityVerifier interface {
	// VerifyIDToken verifies idToken, loads the user's custom claims and resolves a role.
	// Errors wrap ErrIDTokenExpired, ErrIDTokenRevoked or ErrIDTokenInvalid.
	VerifyIDToken(ctx context.Context, idToken string) (*entity.Principal, error)
}
