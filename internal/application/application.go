package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"

	"price_checker/internal/config"
	"price_checker/internal/domain/service/comparison"
	"price_checker/internal/infrastructure/lookupcache"
	"price_checker/internal/infrastructure/persistence"
	"price_checker/internal/infrastructure/rakuten"
	"price_checker/internal/infrastructure/yahoo"
	"price_checker/internal/server"
	"price_checker/internal/transport/bot"
	"price_checker/internal/transport/bot/handler"
	"price_checker/internal/worker"
	"price_checker/pkg/application/connectors"
	"price_checker/pkg/application/modules"
	"price_checker/pkg/contextx"
	"price_checker/pkg/httpx"
	"price_checker/pkg/logx"
	"price_checker/pkg/middlewarex"
	"price_checker/pkg/probe"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Run wires every component from cfg and blocks until ctx is cancelled or one of the
// servers fails.
func Run(ctx context.Context, cfg config.Config) error { //nolint:funlen
	g, ctx := errgroup.WithContext(ctx)

	redisConnector := &connectors.Redis{
		Address:            cfg.Redis.Address,
		Username:           cfg.Redis.Username,
		Password:           cfg.Redis.Password,
		DatabaseNumber:     cfg.Redis.DatabaseNumber,
		PoolSize:           cfg.Redis.PoolSize,
		MinIdleConnections: cfg.Redis.MinIdleConnections,
		MaxIdleConnections: cfg.Redis.MaxIdleConnections,
	}
	defer redisConnector.Close(context.WithoutCancel(ctx))

	postgresConnector := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}
	defer postgresConnector.Close(context.WithoutCancel(ctx))

	primary, secondary, err := newProviders(ctx, cfg, redisConnector)
	if err != nil {
		return fmt.Errorf("newProviders: %w", err)
	}

	svc := comparison.NewService(primary, secondary, comparison.Config{
		AmazonTag:   cfg.Amazon.TrackingID,
		FailureMode: comparison.FailureMode(cfg.Aggregator.FailureMode),
	})

	historyServer := server.HistoryServer{}

	if cfg.Postgres.DSN != "" {
		db, err := postgresConnector.Client(ctx)
		if err != nil {
			return fmt.Errorf("postgresConnector.Client: %w", err)
		}

		repo := persistence.NewSearchHistoryRepository(db)
		historyServer = server.NewHistoryServer(repo)

		if cfg.History.Async {
			asynqClient := asynq.NewClient(redisClientOpt(cfg.Redis))
			defer asynqClient.Close()

			svc.WithHistoryRecorder(worker.NewHistoryPublisher(asynqClient))

			modules.AsynqServer{
				RedisUsername: cfg.Redis.Username,
				RedisPassword: cfg.Redis.Password,
				RedisAddress:  cfg.Redis.Address,
				RedisDB:       cfg.Redis.DatabaseNumber,
				Concurrency:   cfg.History.Concurrency,
			}.Run(
				ctx,
				g,
				modules.AsynqQueues{worker.QueueHistory: 1},
				modules.AsynqHandler{
					Pattern: worker.TaskRecordSearch,
					Handle:  worker.NewHistoryHandler(repo).Handle,
				},
			)
		} else {
			svc.WithHistoryRecorder(repo)
		}
	}

	srv := server.NewServer(
		server.NewSearchServer(svc),
		historyServer,
		server.NewPageServer(svc),
	)

	if cfg.RateLimit.Enabled() {
		limiter := middlewarex.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		go limiter.Run(ctx.Done())

		srv = srv.WithRateLimit(middlewarex.RateLimit(limiter))
	}

	masker := logx.NewSensitiveDataMasker()

	router := chi.NewRouter()
	router.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, cfg.HTTP.LogFieldMaxLen),
		middlewarex.ResponseLogging(masker, cfg.HTTP.LogFieldMaxLen),
	)
	srv.RegisterRoutes(router)

	modules.HTTPServer{
		ListenAddress:   cfg.HTTP.ListenAddress,
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g, router)

	modules.MetricServer{
		ListenAddress: cfg.Metrics.ListenAddress,
	}.Run(ctx, g)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.ListenAddress,
		Checks:        readinessChecks(cfg, redisConnector, postgresConnector),
	}.Run(ctx, g)

	if cfg.Bot.Enabled() {
		telegramBot, err := bot.New(
			bot.Config{Token: cfg.Bot.Token, AllowedChats: cfg.Bot.AllowedChats},
			handler.New(svc),
		)
		if err != nil {
			return fmt.Errorf("bot.New: %w", err)
		}

		g.Go(func() error {
			return telegramBot.Run(ctx)
		})
	}

	logger(ctx).Info(
		"application started",
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
		slog.String(logx.FieldCacheBackend, cfg.Cache.Backend),
		slog.Bool("history", cfg.Postgres.DSN != ""),
		slog.Bool("bot", cfg.Bot.Enabled()),
	)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

// newProviders builds the Rakuten and Yahoo clients, behind the lookup cache when one
// is configured.
func newProviders(
	ctx context.Context,
	cfg config.Config,
	redisConnector *connectors.Redis,
) (comparison.Provider, comparison.Provider, error) {
	transportOpts := []httpx.Option{
		httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
		httpx.WithLogFieldMaxLen(cfg.HTTP.LogFieldMaxLen),
	}

	if !cfg.HTTP.LogUpstreamBodies {
		transportOpts = append(transportOpts, httpx.WithoutBodies())
	}

	transport := httpx.NewLoggingRoundTripper(http.DefaultTransport, transportOpts...)

	var primary comparison.Provider = rakuten.NewClient(rakuten.Config{
		BaseURL:       cfg.Rakuten.BaseURL,
		ApplicationID: cfg.Rakuten.ApplicationID,
		AffiliateID:   cfg.Rakuten.AffiliateID,
		Timeout:       cfg.Rakuten.Timeout,
	}, transport)

	var secondary comparison.Provider = yahoo.NewClient(yahoo.Config{
		BaseURL:  cfg.Yahoo.BaseURL,
		ClientID: cfg.Yahoo.ClientID,
		Timeout:  cfg.Yahoo.Timeout,
	}, transport)

	var backend lookupcache.Backend

	switch cfg.Cache.Backend {
	case config.CacheBackendMemory:
		backend = lookupcache.NewMemory(cfg.Cache.TTL)
	case config.CacheBackendRedis:
		client, err := redisConnector.Client(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("redisConnector.Client: %w", err)
		}

		backend = lookupcache.NewRedis(client)
	default:
		return primary, secondary, nil
	}

	return lookupcache.New(primary, backend, cfg.Cache.TTL),
		lookupcache.New(secondary, backend, cfg.Cache.TTL),
		nil
}

// readinessChecks lists only the stores this configuration actually uses.
func readinessChecks(
	cfg config.Config,
	redisConnector *connectors.Redis,
	postgresConnector *connectors.Postgres,
) map[string]probe.Check {
	checks := map[string]probe.Check{}

	if cfg.Cache.Backend == config.CacheBackendRedis || (cfg.History.Async && cfg.Postgres.DSN != "") {
		checks["redis"] = redisConnector.Ping
	}

	if cfg.Postgres.DSN != "" {
		checks["postgres"] = postgresConnector.Ping
	}

	return checks
}

func redisClientOpt(cfg config.Redis) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Address,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DatabaseNumber,
	}
}
