package firebase

import (
	"context"
	"log/slog"

	"elderguard/internal/domain/entity"
	"elderguard/internal/domain/service"
	"elderguard/internal/errors"

	"firebase.google.com/go/v4/auth"
)

// tokenAuthority is the subset of *auth.Client used to verify requests.
type tokenAuthority interface {
	VerifyIDTokenAndCheckRevoked(ctx context.Context, idToken string) (*auth.Token, error)
	GetUser(ctx context.Context, uid string) (*auth.UserRecord, error)
}

// identityVerifier implements service.IdentityVerifier on Firebase Auth.
type identityVerifier struct {
	client tokenAuthority
	logger *slog.Logger

	isExpired func(error) bool
	isRevoked func(error) bool
}

// NewIdentityVerifier creates a verifier bound to the gateway's auth client.
func NewIdentityVerifier(client *auth.Client, logger *slog.Logger) service.IdentityVerifier {
	return newIdentityVerifier(client, logger)
}

func newIdentityVerifier(client tokenAuthority, logger *slog.Logger) *identityVerifier {
	return &identityVerifier{
		client:    client,
		logger:    logger,
		isExpired: auth.IsIDTokenExpired,
		isRevoked: auth.IsIDTokenRevoked,
	}
}

// VerifyIDToken implements service.IdentityVerifier.
func (v *identityVerifier) VerifyIDToken(ctx context.Context, idToken string) (*entity.Principal, error) {
	token, err := v.client.VerifyIDTokenAndCheckRevoked(ctx, idToken)
	if err != nil {
		v.logger.Warn("ID token verification failed", slog.Any("error", err))

		return nil, v.classify(err)
	}

	record, err := v.client.GetUser(ctx, token.UID)
	if err != nil {
		v.logger.Warn("Failed to load user record", slog.String("uid", token.UID), slog.Any("error", err))

		return nil, errors.Wrap(service.ErrIDTokenInvalid, err.Error())
	}

	principal := &entity.Principal{
		UID:    token.UID,
		Email:  emailOf(token, record),
		Role:   entity.RoleFromClaim(record.CustomClaims["role"]),
		Claims: record.CustomClaims,
	}

	return principal, nil
}

func (v *identityVerifier) classify(err error) error {
	switch {
	case v.isExpired(err):
		return errors.Wrap(service.ErrIDTokenExpired, err.Error())
	case v.isRevoked(err):
		return errors.Wrap(service.ErrIDTokenRevoked, err.Error())
	default:
		return errors.Wrap(service.ErrIDTokenInvalid, err.Error())
	}
}

func emailOf(token *auth.Token, record *auth.UserRecord) string {
	if email, ok := token.Claims["email"].(string); ok && email != "" {
		return email
	}
	if record != nil && record.UserInfo != nil {
		return record.Email
	}

	return ""
}
