// Package app собирает зависимости сервиса и управляет жизненным циклом HTTP-сервера.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"raider-registry-backend/internal/common/config"
	"raider-registry-backend/internal/common/logger"
	adminService "raider-registry-backend/internal/features/admin/service"
	leaderboardService "raider-registry-backend/internal/features/leaderboard/service"
	registrationRepo "raider-registry-backend/internal/features/registration/repository/postgres"
	registrationService "raider-registry-backend/internal/features/registration/service"
	statusRepo "raider-registry-backend/internal/features/status/repository/postgres"
	statusService "raider-registry-backend/internal/features/status/service"
	"raider-registry-backend/internal/features/twitterauth/oauth"
	twitterRepo "raider-registry-backend/internal/features/twitterauth/repository"
	memoryStore "raider-registry-backend/internal/features/twitterauth/repository/memory"
	redisStore "raider-registry-backend/internal/features/twitterauth/repository/redis"
	twitterService "raider-registry-backend/internal/features/twitterauth/service"
	"raider-registry-backend/internal/platform/postgres"
	"raider-registry-backend/internal/platform/ratelimit"
	"raider-registry-backend/internal/platform/redis"
)

const shutdownTimeout = 30 * time.Second

type App struct {
	cfg    *config.Config
	logger zerolog.Logger
	server *http.Server

	pg    *postgres.Client
	redis *redis.Client
}

// New подключается к хранилищам и собирает сервисы и роутер
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logger.Component("app")
	started := time.Now()

	pg, err := postgres.NewClient(ctx, cfg.Postgres.URL, cfg.Postgres.MaxConns)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.Postgres.AutoMigrate {
		if err := postgres.Migrate(ctx, pg.Pool()); err != nil {
			pg.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	a := &App{cfg: cfg, logger: log, pg: pg}
	checks := map[string]HealthChecker{"postgres": pg}

	if cfg.Redis.Enabled {
		rc, err := redis.Open(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		a.redis = rc
		checks["redis"] = rc
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	profiles := registrationRepo.NewPostgresRepository(pg.Pool())

	client := oauth.NewClient(
		oauth.NewCredentials(cfg.Twitter.APIKey, cfg.Twitter.APISecret),
		oauth.Endpoints{
			RequestTokenURL: cfg.Twitter.RequestTokenURL,
			AuthorizeURL:    cfg.Twitter.AuthorizeURL,
			AccessTokenURL:  cfg.Twitter.AccessTokenURL,
			ProfileURL:      cfg.Twitter.ProfileURL,
		},
		cfg.Twitter.HTTPTimeout,
	)
	if !client.Configured() {
		log.Warn().Msg("TWITTER_API_KEY/TWITTER_API_SECRET not set, Twitter login is disabled")
	}
	if cfg.Admin.Username == "" || cfg.Admin.Password == "" {
		log.Warn().Msg("ADMIN_USERNAME/ADMIN_PASSWORD not set, admin listing is disabled")
	}

	services := Services{
		TwitterAuth: twitterService.NewTwitterAuthService(
			client,
			a.handshakeStore(),
			cfg.Twitter.CallbackURL,
			logger.Component("twitter_auth"),
			registry,
		),
		Registration: registrationService.NewRegistrationService(profiles, logger.Component("registration")),
		Admin:        adminService.NewAdminService(profiles, cfg.Admin.Username, cfg.Admin.Password, logger.Component("admin")),
		Leaderboard:  leaderboardService.NewLeaderboardService(),
		Status:       statusService.NewStatusService(statusRepo.NewPostgresRepository(pg.Pool())),
	}

	router := NewRouter(RouterDeps{
		Config:   cfg,
		Logger:   logger.Component("http"),
		Services: services,
		Limiter:  a.limiter(),
		Registry: registry,
		Checks:   checks,
		Started:  started,
	})

	a.server = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return a, nil
}

func (a *App) handshakeStore() twitterRepo.HandshakeStore {
	if a.cfg.Twitter.HandshakeStore == config.HandshakeStoreRedis && a.redis != nil {
		a.logger.Info().Dur("ttl", a.cfg.Twitter.HandshakeTTL).Msg("Handshake store: redis")
		return redisStore.NewHandshakeStore(a.redis.Client, a.cfg.Twitter.HandshakeTTL)
	}
	a.logger.Info().Dur("ttl", a.cfg.Twitter.HandshakeTTL).Msg("Handshake store: memory")
	return memoryStore.NewHandshakeStore(a.cfg.Twitter.HandshakeTTL)
}

func (a *App) limiter() ratelimit.Limiter {
	if !a.cfg.RateLimit.Enabled {
		return nil
	}
	if a.redis != nil {
		return ratelimit.NewRedisLimiter(a.redis.Client, "raider:rl:", a.cfg.RateLimit.Max, a.cfg.RateLimit.Window)
	}
	return ratelimit.NewMemoryLimiter(a.cfg.RateLimit.Max, a.cfg.RateLimit.Window)
}

// Run обслуживает запросы до отмены ctx, затем плавно останавливает сервер
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info().Str("addr", a.server.Addr).Str("environment", a.cfg.Server.Environment).Msg("Starting HTTP server")
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("Server forced to shutdown")
		return err
	}

	a.logger.Info().Msg("Server exited")
	return nil
}

// Close освобождает соединения с хранилищами
func (a *App) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn().Err(err).Msg("Failed to close redis client")
		}
	}
	if a.pg != nil {
		a.pg.Close()
	}
}
