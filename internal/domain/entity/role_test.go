package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleFromClaim(t *testing.T) {
	tests := []struct {
		name  string
		claim any
		want  Role
	}{
		{name: "caregiver", claim: "caregiver", want: RoleCaregiver},
		{name: "family", claim: "family", want: RoleFamily},
		{name: "absent", claim: nil, want: DefaultRole},
		{name: "empty", claim: "", want: DefaultRole},
		{name: "blank", claim: "  ", want: DefaultRole},
		{name: "unknown string kept", claim: "admin", want: Role("admin")},
		{name: "non-string kept", claim: 42, want: Role("42")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoleFromClaim(tt.claim)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoleFromClaim_UnknownRoleIsNotValid(t *testing.T) {
	assert.False(t, RoleFromClaim("admin").IsValid())
	assert.False(t, Roles{RoleFamily, RoleCaregiver}.Contains(RoleFromClaim("admin")))
}
