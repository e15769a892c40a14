package broadcast

import (
	"context"
	"log/slog"

	"draftdesk/config"
	"draftdesk/internal/domain/repository"
	"draftdesk/internal/domain/service"
	"draftdesk/internal/errors"

	"go.uber.org/fx"
)

// Transport provider names accepted in configuration.
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// noopPublisher drops snapshots. Used when no transport is configured and a
// single instance serves all traffic.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishSnapshot(_ context.Context, snapshot *service.PortfolioSnapshot) error {
	p.logger.Debug("[NoopBroadcast] No transport configured, snapshot not forwarded",
		slog.String("origin", snapshot.Origin),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// Params holds dependencies for the broadcaster, injected by Fx.
type Params struct {
	fx.In

	Lc        fx.Lifecycle
	Ctx       context.Context
	Config    *config.Config
	Logger    *slog.Logger
	Portfolio repository.PortfolioRepository
}

// NewContentBroadcast builds the broadcaster over the configured transport.
func NewContentBroadcast(params Params) (service.ContentBroadcast, *Broadcaster, error) {
	cfg := params.Config.Broadcast
	logger := params.Logger

	var publisher service.SnapshotPublisher
	var err error

	switch {
	case cfg == nil || cfg.Provider == "":
		logger.Info("Broadcast transport not configured, using no-op publisher")
		publisher = &noopPublisher{logger: logger}

	case cfg.Provider == ProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP transport for content broadcast",
			slog.String("endpoint", cfg.LocalEndpoint),
		)
		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case cfg.Provider == ProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, nil, errors.New("topic ID is required for google provider")
		}
		publisher, err = NewGooglePublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, nil, err
		}

	default:
		return nil, nil, errors.Errorf("unknown broadcast provider: %s", cfg.Provider)
	}

	broadcaster := NewBroadcaster(publisher, logger)

	// Without a transport, remote edits still reach this instance through the
	// document store's snapshot listener.
	if cfg == nil || cfg.Provider == "" {
		watchCtx, cancel := context.WithCancel(params.Ctx)
		go func() {
			if err := RunPortfolioWatcher(watchCtx, params.Portfolio, broadcaster, logger); err != nil {
				logger.Error("portfolio watch stopped",
					slog.Any("error", err),
				)
			}
		}()

		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				cancel()

				return nil
			},
		})
	}

	if cfg != nil && cfg.Provider == ProviderGoogle && cfg.SubscriptionID != "" {
		subCtx, cancel := context.WithCancel(params.Ctx)
		go func() {
			if err := RunGoogleSubscriber(subCtx, cfg.ProjectID, cfg.SubscriptionID, broadcaster, logger); err != nil {
				logger.Error("broadcast subscriber stopped",
					slog.Any("error", err),
				)
			}
		}()

		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				cancel()

				return nil
			},
		})
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Closing content broadcaster")

			return broadcaster.Close()
		},
	})

	return broadcaster, broadcaster, nil
}

// Module provides the broadcast FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewContentBroadcast),
)
