package service

import "context"

// FallDetector is the external fall-detection service.
type FallDetector interface {
	// Predict asks the detector whether a fall is currently visible.
	Predict(ctx context.Context) (bool, error)
}
