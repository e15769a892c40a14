package main

import (
	"context"
	"log/slog"
	"os"

	"draftdesk/config"
	"draftdesk/internal/delivery"
	"draftdesk/internal/delivery/http"
	"draftdesk/internal/delivery/http/middleware"
	"draftdesk/internal/delivery/http/router/handler"
	"draftdesk/internal/domain/access"
	"draftdesk/internal/domain/service"
	"draftdesk/internal/infra/auth"
	"draftdesk/internal/infra/auth/firebase"
	"draftdesk/internal/infra/broadcast"
	"draftdesk/internal/infra/geo"
	logs "draftdesk/internal/infra/log"
	"draftdesk/internal/infra/persistence/firestore"
	"draftdesk/internal/infra/qrcode"
	"draftdesk/internal/infra/session"
	"draftdesk/internal/infra/storage"
	"draftdesk/internal/usecase/impl"

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
		// Expose the service-area config for the lead intake checker
		func(cfg *config.Config) *config.ServiceAreaConfig {
			if cfg == nil || cfg.ServiceArea == nil {
				return &config.ServiceAreaConfig{}
			}

			return cfg.ServiceArea
		},
		logs.New,
		context.Background,
		firestore.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewProfileRepository,
			firestore.NewLeadRepository,
			firestore.NewOrderRepository,
			firestore.NewPortfolioRepository,
			firestore.NewContentRepository,
			firestore.NewNotificationRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			firebase.NewIdentityProvider,
			session.NewRedisStore,
			storage.NewAttachmentStore,
			geo.NewAreaChecker,
			newResolver,
			access.NewWatcher,
			newQRCodeService,
		),
		broadcast.Module,
	)
}

// newResolver builds the admin role resolver from the configured allow-list.
func newResolver(cfg *config.Config) *access.Resolver {
	if cfg.Admin == nil {
		return access.NewResolver(nil)
	}

	return access.NewResolver(cfg.Admin.AllowedEmails)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewLeadService,
			impl.NewAttachmentService,
			impl.NewOrderService,
			impl.NewPortfolioService,
			impl.NewContentService,
			impl.NewNotificationService,
			impl.NewProfileService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewGuardHandler,
			handler.NewLeadHandler,
			handler.NewAttachmentHandler,
			handler.NewOrderHandler,
			handler.NewPortfolioHandler,
			handler.NewContentHandler,
			handler.NewNotificationHandler,
			handler.NewProfileHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
