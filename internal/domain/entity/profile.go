package entity

import "time"

// Profile is the per-user settings document, created lazily on first read.
type Profile struct {
	UID             string    `json:"uid"`
	Email           string    `json:"email"`
	Role            Role      `json:"role"`
	PostureTracking bool      `json:"postureTracking"` // Enables the posture tracking engine.
	AlertDispatch   bool      `json:"alertDispatch"`   // Enables push dispatch on SOS.
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// NewDefaultProfile builds the profile written the first time a subject reads it.
func NewDefaultProfile(p *Principal, now time.Time) *Profile {
	return &Profile{
		UID:             p.UID,
		Email:           p.Email,
		Role:            p.Role,
		PostureTracking: true,
		AlertDispatch:   true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// ProfileSettings is a partial update of the profile toggles.
type ProfileSettings struct {
	PostureTracking *bool `json:"postureTracking,omitempty"`
	AlertDispatch   *bool `json:"alertDispatch,omitempty"`
}

// IsEmpty reports whether no toggle is set.
func (s ProfileSettings) IsEmpty() bool {
	return s.PostureTracking == nil && s.AlertDispatch == nil
}
