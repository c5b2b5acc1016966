package model

import "time"

// AlertsCollection stores fall, posture, SOS and manual alerts.
const AlertsCollection = "alerts"

// AlertModel is the document stored under alerts/{id}.
type AlertModel struct {
	UserID         string     `firestore:"userId"`
	Type           string     `firestore:"type"`
	Severity       string     `firestore:"severity"`
	Message        string     `firestore:"message"`
	Source         string     `firestore:"source"`
	Acknowledged   bool       `firestore:"acknowledged"`
	AcknowledgedAt *time.Time `firestore:"acknowledgedAt,omitempty"`
	AcknowledgedBy string     `firestore:"acknowledgedBy,omitempty"`
	CreatedAt      time.Time  `firestore:"createdAt"`
}
