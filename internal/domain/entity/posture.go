package entity

import "time"

// ActionUnknown is reported when no posture has been recorded yet.
const ActionUnknown = "Unknown"

// ActionFallDetected is recorded when the bridge reports a fall.
const ActionFallDetected = "FALL DETECTED"

// PostureStatus is the latest known action/posture of the monitored person.
type PostureStatus struct {
	UserID    string      `json:"userId"`
	Action    string      `json:"action"`
	Posture   string      `json:"posture,omitempty"`
	Source    AlertSource `json:"source,omitempty"`
	UpdatedAt *time.Time  `json:"updatedAt,omitempty"`
}

// UnknownPosture is returned for subjects without a stored status.
func UnknownPosture(uid string) *PostureStatus {
	return &PostureStatus{UserID: uid, Action: ActionUnknown}
}
