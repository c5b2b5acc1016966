package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"elderguard/config"
	"elderguard/internal/delivery"
	"elderguard/internal/delivery/api"
	"elderguard/internal/delivery/api/middleware"
	"elderguard/internal/delivery/api/router/handler"
	"elderguard/internal/infra/bridge"
	"elderguard/internal/infra/firebase"
	"elderguard/internal/infra/gemini"
	logs "elderguard/internal/infra/log"
	"elderguard/internal/infra/metrics"
	"elderguard/internal/infra/notification"
	"elderguard/internal/infra/persistence/firestore"
	"elderguard/internal/infra/pubsub"
	"elderguard/internal/usecase"
	"elderguard/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.New,
		firebase.NewGateway,
		firebase.FirestoreClient,
		firebase.AuthClient,
		firebase.MessagingClient,
		newSystemInfo,
	)
}

// newSystemInfo captures the process facts reported by /health and system-status
func newSystemInfo(cfg *config.Config, gw *firebase.Gateway, bridgeClient *bridge.Client) usecase.SystemInfo {
	return usecase.SystemInfo{
		Environment:      cfg.Env.Env,
		Version:          cfg.Env.Version,
		StartedAt:        time.Now(),
		FirebaseReady:    gw.Initialized(),
		GeminiConfigured: cfg.Gemini.APIKey != "",
		BridgeURL:        bridgeClient.BaseURL(),
	}
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewMedicalLogRepository,
			firestore.NewAlertRepository,
			firestore.NewPostureRepository,
			firestore.NewProfileRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			firebase.NewIdentityVerifier,
			notification.NewFirebaseService,
			pubsub.NewEventPublisher,
			gemini.NewClient,
			bridge.NewClient,
			bridge.NewFallDetector,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMedicalService,
			impl.NewAlertService,
			impl.NewProfileService,
			impl.NewAssistantService,
			impl.NewFallService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRateLimiter,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewMedicalHandler,
			handler.NewAlertHandler,
			handler.NewProfileHandler,
			handler.NewGeminiHandler,
			handler.NewFallHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
