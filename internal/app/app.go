package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/marketmarket/internal/catalog"
	"github.com/MrSnakeDoc/marketmarket/internal/config"
	"github.com/MrSnakeDoc/marketmarket/internal/httpserver"
	"github.com/MrSnakeDoc/marketmarket/internal/httpserver/deps"
	"github.com/MrSnakeDoc/marketmarket/internal/logger"
	"github.com/MrSnakeDoc/marketmarket/internal/metrics"
	"github.com/MrSnakeDoc/marketmarket/internal/redis"
	"github.com/MrSnakeDoc/marketmarket/internal/scheduler"
	"github.com/MrSnakeDoc/marketmarket/internal/session"
	redisstore "github.com/MrSnakeDoc/marketmarket/internal/store/redis"
	"github.com/MrSnakeDoc/marketmarket/internal/tui"
	"github.com/MrSnakeDoc/marketmarket/internal/utils"
	"github.com/MrSnakeDoc/marketmarket/internal/version"
	"github.com/MrSnakeDoc/marketmarket/internal/view"
)

// App is the HTTP host: catalog, session service and server wired together.
type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	sweeper     *scheduler.SessionSweeper // nil with the redis backend, which expires keys itself
}

// New loads the catalog, connects the session backend and builds the server.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	store, err := catalog.Open(cfg.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	loggerClient.Info("catalog loaded",
		logger.String("source", catalog.NewLoader(cfg.CatalogFile).Source()),
		logger.Int("count", store.Count()))

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m, err := metrics.New(registry)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	a := &App{cfg: cfg, logger: loggerClient}

	var sessionStore session.Store
	switch cfg.SessionBackend {
	case config.SessionBackendRedis:
		// Fail fast if unavailable
		client, err := redis.Connect(ctx, redis.OptionsFromConfig(cfg), loggerClient)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		a.redisClient = client
		sessionStore = redisstore.NewSessionStore(client)
	default:
		mem := session.NewMemoryStore()
		a.sweeper = scheduler.NewSessionSweeper(mem, loggerClient, m, cfg.SessionSweepInterval)
		sessionStore = mem
	}
	loggerClient.Info("session backend ready",
		logger.String("backend", sessionStore.Name()),
		logger.Duration("ttl", cfg.SessionTTL))

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:           loggerClient,
		StartTime:        time.Now(),
		Version:          version.Version,
		Commit:           version.Commit,
		BuildDate:        version.BuildDate,
		GoVersion:        version.GoVersion,
		TimeNow:          time.Now,
		AllowedHosts:     cfg.AllowedHosts,
		AllowedCIDRS:     cfg.AllowedCIDRS,
		TrustProxy:       cfg.TrustProxy,
		RateBurst:        cfg.RateBurst,
		RateRefillPerMin: cfg.RateRefillPerMin,
		Catalog:          store,
		Sessions:         session.NewService(sessionStore, store, cfg.SessionTTL, loggerClient, m),
		Pages:            view.NewBuilder(m),
		Gatherer:         registry,
	}

	a.server = httpserver.New(cfg, loggerClient, d)
	return a, nil
}

// Run serves until SIGINT/SIGTERM, then shuts down gracefully.
func (a *App) Run() error {
	a.logger.Infof("🚀 Starting marketmarket %s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("marketmarket %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if a.sweeper != nil {
		a.sweeper.Start(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case runErr = <-errCh:
	}

	if a.sweeper != nil {
		a.sweeper.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil && runErr == nil {
		runErr = fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		utils.MustClose(a.redisClient, "redis", a.logger)
	}

	if runErr != nil {
		return runErr
	}
	a.logger.Info("✅ marketmarket stopped cleanly")
	_ = a.logger.Sync()
	return nil
}

// Browse runs the terminal UI over a local session. Logs go to
// cfg.LogFile since the UI owns the terminal.
func Browse(ctx context.Context, cfg *config.Config) error {
	log, err := logger.NewWithOptions(logger.Options{
		Level:      cfg.LogLevel,
		Pretty:     false,
		OutputPath: cfg.LogFile,
	})
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = log.Sync() }()

	store, err := catalog.Open(cfg.CatalogFile)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	log.Info("browser started", logger.Int("count", store.Count()))

	final, err := tui.Run(ctx, tui.New(store, view.NewBuilder(nil), log, session.NewState(time.Now())))
	if err != nil {
		return fmt.Errorf("terminal ui failed: %w", err)
	}
	log.Info("browser closed",
		logger.Int("favorites", final.View.FavoriteCount()),
		logger.String("tab", string(final.Tab)))
	return nil
}
