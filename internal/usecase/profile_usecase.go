package usecase

import (
	"context"
	"time"

	"elderguard/internal/domain/entity"
)

// SystemInfo carries the process facts reported by the status endpoints.
type SystemInfo struct {
	Environment      string
	Version          string
	StartedAt        time.Time
	FirebaseReady    bool
	GeminiConfigured bool
	BridgeURL        string
}

// BridgeStatus summarizes the latest fall-detection check.
type BridgeStatus struct {
	Status        string     `json:"status"` // online, offline or unknown
	URL           string     `json:"url,omitempty"`
	LastCheckedAt *time.Time `json:"lastCheckedAt,omitempty"`
	LastAlert     bool       `json:"lastAlert"`
}

// SystemStatus is the component report returned by GET /api/profile/system-status.
type SystemStatus struct {
	Firebase        string       `json:"firebase"`
	Gemini          string       `json:"gemini"`
	Bridge          BridgeStatus `json:"bridge"`
	PostureTracking bool         `json:"postureTracking"`
	AlertDispatch   bool         `json:"alertDispatch"`
	Environment     string       `json:"environment"`
	Version         string       `json:"version"`
	Uptime          string       `json:"uptime"`
	Timestamp       time.Time    `json:"timestamp"`
}

// SOSResult reports the alert recorded for an SOS and whether a push went out.
type SOSResult struct {
	Alert      *entity.Alert `json:"alert"`
	Dispatched bool          `json:"dispatched"`
}

// ProfileUsecase defines profile, settings and emergency operations.
type ProfileUsecase interface {
	// GetProfile returns the principal's profile, creating the default one on first access.
	GetProfile(ctx context.Context, principal *entity.Principal) (*entity.Profile, error)

	// UpdateSettings applies the provided toggles. At least one must be set.
	UpdateSettings(ctx context.Context, principal *entity.Principal, settings entity.ProfileSettings) (*entity.Profile, error)

	// GetSystemStatus reports the state of each backend component.
	GetSystemStatus(ctx context.Context, principal *entity.Principal) (*SystemStatus, error)

	// TriggerSOS records a critical SOS alert and dispatches it when the profile allows.
	TriggerSOS(ctx context.Context, principal *entity.Principal, message string) (*SOSResult, error)
}
