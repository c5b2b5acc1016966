package firebase

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"elderguard/internal/domain/entity"
	"elderguard/internal/domain/service"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errExpired = errors.New("ID token has expired")
	errRevoked = errors.New("ID token has been revoked")
)

type fakeAuthority struct {
	token     *auth.Token
	verifyErr error
	record    *auth.UserRecord
	userErr   error
}

func (f *fakeAuthority) VerifyIDTokenAndCheckRevoked(_ context.Context, _ string) (*auth.Token, error) {
	return f.token, f.verifyErr
}

func (f *fakeAuthority) GetUser(_ context.Context, _ string) (*auth.UserRecord, error) {
	return f.record, f.userErr
}

func newTestVerifier(f *fakeAuthority) *identityVerifier {
	v := newIdentityVerifier(f, slog.New(slog.NewTextHandler(io.Discard, nil)))
	v.isExpired = func(err error) bool { return errors.Is(err, errExpired) }
	v.isRevoked = func(err error) bool { return errors.Is(err, errRevoked) }

	return v
}

func TestVerifyIDToken_ResolvesRoleFromCustomClaims(t *testing.T) {
	tests := []struct {
		name   string
		claims map[string]any
		want   entity.Role
	}{
		{name: "caregiver", claims: map[string]any{"role": "caregiver"}, want: entity.RoleCaregiver},
		{name: "family", claims: map[string]any{"role": "family"}, want: entity.RoleFamily},
		{name: "unknown role is kept", claims: map[string]any{"role": "admin"}, want: entity.Role("admin")},
		{name: "empty role", claims: map[string]any{"role": ""}, want: entity.RoleFamily},
		{name: "no role claim", claims: map[string]any{"tier": "gold"}, want: entity.RoleFamily},
		{name: "no claims", claims: nil, want: entity.RoleFamily},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newTestVerifier(&fakeAuthority{
				token: &auth.Token{UID: "uid-1", Claims: map[string]any{"email": "carol@example.com"}},
				record: &auth.UserRecord{
					UserInfo:     &auth.UserInfo{UID: "uid-1", Email: "carol@example.com"},
					CustomClaims: tt.claims,
				},
			})

			principal, err := v.VerifyIDToken(context.Background(), "token")
			require.NoError(t, err)
			assert.Equal(t, "uid-1", principal.UID)
			assert.Equal(t, "carol@example.com", principal.Email)
			assert.Equal(t, tt.want, principal.Role)
		})
	}
}

func TestVerifyIDToken_EmailFallsBackToUserRecord(t *testing.T) {
	v := newTestVerifier(&fakeAuthority{
		token:  &auth.Token{UID: "uid-2"},
		record: &auth.UserRecord{UserInfo: &auth.UserInfo{Email: "fam@example.com"}},
	})

	principal, err := v.VerifyIDToken(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "fam@example.com", principal.Email)
}

func TestVerifyIDToken_ClassifiesFailures(t *testing.T) {
	tests := []struct {
		name string
		f    *fakeAuthority
		want error
	}{
		{name: "expired", f: &fakeAuthority{verifyErr: errExpired}, want: service.ErrIDTokenExpired},
		{name: "revoked", f: &fakeAuthority{verifyErr: errRevoked}, want: service.ErrIDTokenRevoked},
		{name: "malformed", f: &fakeAuthority{verifyErr: errors.New("bad signature")}, want: service.ErrIDTokenInvalid},
		{
			name: "user lookup fails",
			f:    &fakeAuthority{token: &auth.Token{UID: "gone"}, userErr: errors.New("user not found")},
			want: service.ErrIDTokenInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestVerifier(tt.f).VerifyIDToken(context.Background(), "token")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
