package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"elderguard/internal/delivery/api/validator"
	deliverycontext "elderguard/internal/delivery/context"
	"elderguard/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type testEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Count   *int            `json:"count"`
	Message string          `json:"message"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var (
	caregiverPrincipal = &entity.Principal{UID: "caregiver-1", Email: "carol@example.com", Role: entity.RoleCaregiver}
	familyPrincipal    = &entity.Principal{UID: "family-1", Email: "fred@example.com", Role: entity.RoleFamily}
)

// newRequest builds an echo context carrying principal (when non-nil) and an optional JSON body.
func newRequest(method, target, body string, principal *entity.Principal) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if principal != nil {
		deliverycontext.SetPrincipal(c, principal)
	}

	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) testEnvelope {
	t.Helper()

	var env testEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}
