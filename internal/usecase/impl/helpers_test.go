package impl

import (
	"io"
	"log/slog"
	"time"

	"elderguard/internal/domain/entity"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func caregiver() *entity.Principal {
	return &entity.Principal{UID: "caregiver-1", Email: "carol@example.com", Role: entity.RoleCaregiver}
}

func family() *entity.Principal {
	return &entity.Principal{UID: "family-1", Email: "fred@example.com", Role: entity.RoleFamily}
}

func boolPtr(v bool) *bool {
	return &v
}
