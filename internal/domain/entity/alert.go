package entity

import "time"

// AlertType classifies what raised an alert.
type AlertType string

const (
	AlertTypeFall    AlertType = "fall"
	AlertTypePosture AlertType = "posture"
	AlertTypeSOS     AlertType = "sos"
	AlertTypeManual  AlertType = "manual"
)

// IsValid checks if the AlertType is a valid value.
func (t AlertType) IsValid() bool {
	switch t {
	case AlertTypeFall, AlertTypePosture, AlertTypeSOS, AlertTypeManual:
		return true
	default:
		return false
	}
}

// AlertSeverity ranks how urgent an alert is.
type AlertSeverity string

const (
	SeverityInfo     AlertSeverity = "info"
	SeverityWarning  AlertSeverity = "warning"
	SeverityCritical AlertSeverity = "critical"
)

// IsValid checks if the AlertSeverity is a valid value.
func (s AlertSeverity) IsValid() bool {
	switch s {
	case SeverityInfo, SeverityWarning, SeverityCritical:
		return true
	default:
		return false
	}
}

// AlertSource names the producer of an alert.
type AlertSource string

const (
	SourceBridge    AlertSource = "bridge"
	SourceCaregiver AlertSource = "caregiver"
	SourceSOS       AlertSource = "sos"
)

// MaxAlertsListed caps alert listings.
const MaxAlertsListed = 50

// Alert describes a fall, posture, SOS or manual event.
type Alert struct {
	ID             string        `json:"id"`
	UserID         string        `json:"userId"`
	Type           AlertType     `json:"type"`
	Severity       AlertSeverity `json:"severity"`
	Message        string        `json:"message"`
	Source         AlertSource   `json:"source"`
	Acknowledged   bool          `json:"acknowledged"`
	AcknowledgedAt *time.Time    `json:"acknowledgedAt,omitempty"`
	AcknowledgedBy string        `json:"acknowledgedBy,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
}

// IsOwnedBy reports whether uid owns the alert.
func (a *Alert) IsOwnedBy(uid string) bool {
	return a.UserID == uid
}
