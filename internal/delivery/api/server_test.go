package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"elderguard/config"
	apimiddleware "elderguard/internal/delivery/api/middleware"
	"elderguard/internal/delivery/api/router"
	"elderguard/internal/delivery/api/router/handler"
	"elderguard/internal/domain/entity"
	"elderguard/internal/infra/metrics"
	mockSvc "elderguard/internal/mocks/service"
	mockUsecase "elderguard/internal/mocks/usecase"
	"elderguard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverFixtures struct {
	echo      *echo.Echo
	verifier  *mockSvc.MockIdentityVerifier
	medicalUC *mockUsecase.MockMedicalUsecase
	fallUC    *mockUsecase.MockFallUsecase
}

func createTestServer(t *testing.T) serverFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.Env.Env = "production"
	cfg.HTTP.MaxRequestBodySize = "1M"
	cfg.CORS.Origin = "http://localhost:5173"
	cfg.RateLimit.WindowMs = 60_000
	cfg.RateLimit.Max = 1000

	verifier := mockSvc.NewMockIdentityVerifier(t)
	medicalUC := mockUsecase.NewMockMedicalUsecase(t)
	fallUC := mockUsecase.NewMockFallUsecase(t)
	m := metrics.New()

	e := NewEcho(ServerParams{
		Cfg:             cfg,
		Logger:          logger,
		Metrics:         m,
		ErrorMiddleware: apimiddleware.NewErrorMiddleware(logger, cfg),
		RateLimiter:     apimiddleware.NewRateLimiter(apimiddleware.RateLimiterParams{Config: cfg, Metrics: m, Logger: logger}),
		RouterParams: router.RouterParams{
			MedicalHandler: handler.NewMedicalHandler(handler.MedicalHandlerParams{MedicalUC: medicalUC, Logger: logger}),
			AlertHandler:   handler.NewAlertHandler(handler.AlertHandlerParams{AlertUC: mockUsecase.NewMockAlertUsecase(t), Logger: logger}),
			ProfileHandler: handler.NewProfileHandler(handler.ProfileHandlerParams{ProfileUC: mockUsecase.NewMockProfileUsecase(t), Logger: logger}),
			GeminiHandler:  handler.NewGeminiHandler(handler.GeminiHandlerParams{AssistantUC: mockUsecase.NewMockAssistantUsecase(t), Logger: logger}),
			FallHandler:    handler.NewFallHandler(handler.FallHandlerParams{FallUC: fallUC, Logger: logger}),
			HealthHandler:  handler.NewHealthHandler(usecase.SystemInfo{Environment: "production", Version: "1.0.0"}),
			AuthMiddleware: apimiddleware.NewAuthMiddleware(verifier, logger),
			Metrics:        m,
		},
	})

	return serverFixtures{echo: e, verifier: verifier, medicalUC: medicalUC, fallUC: fallUC}
}

func (fx serverFixtures) do(method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)

	return body.Error.Message
}

func TestServer_Health(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ElderGuard Backend is running")
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestServer_APIRequiresToken(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(http.MethodGet, "/api/medical", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized: No token provided", errorMessage(t, rec))
}

func TestServer_FamilyCannotCreateMedicalLog(t *testing.T) {
	fx := createTestServer(t)
	fx.verifier.EXPECT().
		VerifyIDToken(mock.Anything, "family-token").
		Return(&entity.Principal{UID: "f1", Role: entity.RoleFamily}, nil)

	rec := fx.do(http.MethodPost, "/api/medical", "family-token", `{"note":"x"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Forbidden: family role cannot perform this action", errorMessage(t, rec))
}

func TestServer_CaregiverCreatesMedicalLog(t *testing.T) {
	fx := createTestServer(t)
	principal := &entity.Principal{UID: "c1", Email: "carol@example.com", Role: entity.RoleCaregiver}
	fx.verifier.EXPECT().VerifyIDToken(mock.Anything, "caregiver-token").Return(principal, nil)
	fx.medicalUC.EXPECT().
		CreateLog(mock.Anything, principal, "Walked 20 minutes").
		Return(&entity.MedicalLog{ID: "log-1", UserID: "c1", Note: "Walked 20 minutes"}, nil)

	rec := fx.do(http.MethodPost, "/api/medical", "caregiver-token", `{"note":"Walked 20 minutes"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"request_id"`)
}

func TestServer_CheckFallUnreachable(t *testing.T) {
	fx := createTestServer(t)
	principal := &entity.Principal{UID: "f1", Role: entity.RoleFamily}
	fx.verifier.EXPECT().VerifyIDToken(mock.Anything, "tok").Return(principal, nil)
	fx.fallUC.EXPECT().CheckFall(mock.Anything, principal).Return(&entity.FallCheck{})

	rec := fx.do(http.MethodGet, "/api/check-fall", "tok", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":false,"alert":false}`, rec.Body.String())
}

func TestServer_InternalErrorsAreHiddenInProduction(t *testing.T) {
	fx := createTestServer(t)
	principal := &entity.Principal{UID: "f1", Role: entity.RoleFamily}
	fx.verifier.EXPECT().VerifyIDToken(mock.Anything, "tok").Return(principal, nil)
	fx.medicalUC.EXPECT().ListLogs(mock.Anything, principal).Return(nil, assert.AnError)

	rec := fx.do(http.MethodGet, "/api/medical", "tok", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestServer_UnknownRoute(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(http.MethodGet, "/nope", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route /nope not found", errorMessage(t, rec))
}

func TestServer_UnknownAPIRouteWithoutToken(t *testing.T) {
	fx := createTestServer(t)

	for _, target := range []string{"/api/nope", "/api/medical/1/history"} {
		rec := fx.do(http.MethodGet, target, "", "")
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
		assert.Equal(t, "Route "+target+" not found", errorMessage(t, rec))
	}
}

func TestServer_Metrics(t *testing.T) {
	fx := createTestServer(t)
	fx.do(http.MethodGet, "/health", "", "")

	rec := fx.do(http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `elderguard_http_requests_total{method="GET",path="/health",status="200"} 1`)
}

func TestServer_UnknownRoleClaimIsForbidden(t *testing.T) {
	fx := createTestServer(t)
	fx.verifier.EXPECT().
		VerifyIDToken(mock.Anything, "admin-token").
		Return(&entity.Principal{UID: "a1", Role: entity.Role("admin")}, nil)

	rec := fx.do(http.MethodGet, "/api/medical", "admin-token", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Forbidden: admin role cannot perform this action", errorMessage(t, rec))
}
