package entity

import "time"

// FallCheck is the outcome of one poll of the fall-detection bridge.
type FallCheck struct {
	Success   bool      `json:"success"` // False when the bridge could not be reached.
	Alert     bool      `json:"alert"`   // Always false when Success is false.
	CheckedAt time.Time `json:"checkedAt"`
}
