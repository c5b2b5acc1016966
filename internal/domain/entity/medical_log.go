package entity

import "time"

// MedicalLog is a caregiver note about the monitored person.
type MedicalLog struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`    // Owner; only this subject may update or delete.
	Note      string    `json:"note"`      // Trimmed, never empty.
	Author    string    `json:"author"`    // Email of the creator, immutable.
	Role      Role      `json:"role"`      // Role of the creator, immutable.
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsOwnedBy reports whether uid owns the log.
func (l *MedicalLog) IsOwnedBy(uid string) bool {
	return l.UserID == uid
}
