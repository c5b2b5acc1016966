// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"elderguard/internal/delivery/api/middleware"
	"elderguard/internal/delivery/api/router/handler"
	"elderguard/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	MedicalHandler *handler.MedicalHandler
	AlertHandler   *handler.AlertHandler
	ProfileHandler *handler.ProfileHandler
	GeminiHandler  *handler.GeminiHandler
	FallHandler    *handler.FallHandler
	HealthHandler  *handler.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Metrics `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	medicalHandler *handler.MedicalHandler
	alertHandler   *handler.AlertHandler
	profileHandler *handler.ProfileHandler
	geminiHandler  *handler.GeminiHandler
	fallHandler    *handler.FallHandler
	healthHandler  *handler.HealthHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		medicalHandler: params.MedicalHandler,
		alertHandler:   params.AlertHandler,
		profileHandler: params.ProfileHandler,
		geminiHandler:  params.GeminiHandler,
		fallHandler:    params.FallHandler,
		healthHandler:  params.HealthHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Public endpoints
	e.GET("/health", r.healthHandler.HealthCheck)
	if r.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	}

	// Auth is attached per route so unmatched /api paths still answer 404.
	auth := r.authMiddleware.Authenticate
	readers := []echo.MiddlewareFunc{auth, middleware.RequireFamilyOrCaregiver()}
	writers := []echo.MiddlewareFunc{auth, middleware.RequireCaregiver()}

	api := e.Group("/api")

	medicalGroup := api.Group("/medical")
	{
		medicalGroup.GET("", r.medicalHandler.ListLogs, readers...)
		medicalGroup.POST("", r.medicalHandler.CreateLog, writers...)
		medicalGroup.PUT("/:id", r.medicalHandler.UpdateLog, writers...)
		medicalGroup.DELETE("/:id", r.medicalHandler.DeleteLog, writers...)
	}

	alertsGroup := api.Group("/alerts")
	{
		alertsGroup.GET("", r.alertHandler.ListAlerts, readers...)
		alertsGroup.POST("", r.alertHandler.CreateAlert, writers...)
		alertsGroup.GET("/posture/current", r.alertHandler.GetCurrentPosture, readers...)
		alertsGroup.PUT("/posture/current", r.alertHandler.UpdatePosture, writers...)
		alertsGroup.PUT("/:id/acknowledge", r.alertHandler.AcknowledgeAlert, writers...)
	}

	profileGroup := api.Group("/profile")
	{
		profileGroup.GET("", r.profileHandler.GetProfile, readers...)
		profileGroup.PUT("/settings", r.profileHandler.UpdateSettings, writers...)
		profileGroup.GET("/system-status", r.profileHandler.GetSystemStatus, readers...)
		profileGroup.POST("/sos", r.profileHandler.TriggerSOS, readers...)
	}

	geminiGroup := api.Group("/gemini")
	{
		geminiGroup.POST("/research", r.geminiHandler.Research, readers...)
		geminiGroup.POST("/summarize", r.geminiHandler.Summarize, readers...)
		geminiGroup.POST("/tts", r.geminiHandler.TextToSpeech, readers...)
	}

	// Any authenticated role may poll the bridge
	api.GET("/check-fall", r.fallHandler.CheckFall, auth)
}
