package entity

// Principal is the authenticated subject attached to every API request.
type Principal struct {
	UID    string         `json:"uid"`
	Email  string         `json:"email"`
	Role   Role           `json:"role"`
	Claims map[string]any `json:"claims,omitempty"` // Custom claims from the identity provider.
}

// IsCaregiver reports whether the principal holds the caregiver role.
func (p *Principal) IsCaregiver() bool {
	return p != nil && p.Role == RoleCaregiver
}
