package usecase

import (
	"context"

	"elderguard/internal/domain/entity"
)

// FallUsecase polls the fall-detection bridge.
type FallUsecase interface {
	// CheckFall polls the bridge once. It never fails: an unreachable bridge
	// yields a FallCheck with Success and Alert both false.
	CheckFall(ctx context.Context, principal *entity.Principal) *entity.FallCheck

	// LastCheck returns the most recent check outcome, if any.
	LastCheck() (*entity.FallCheck, bool)
}
