package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "raider-registry-backend/docs"
	"raider-registry-backend/internal/common/config"
	"raider-registry-backend/internal/common/middleware"
	adminHTTP "raider-registry-backend/internal/features/admin/delivery/http"
	adminService "raider-registry-backend/internal/features/admin/service"
	leaderboardHTTP "raider-registry-backend/internal/features/leaderboard/delivery/http"
	leaderboardService "raider-registry-backend/internal/features/leaderboard/service"
	registrationHTTP "raider-registry-backend/internal/features/registration/delivery/http"
	registrationService "raider-registry-backend/internal/features/registration/service"
	statusHTTP "raider-registry-backend/internal/features/status/delivery/http"
	statusService "raider-registry-backend/internal/features/status/service"
	twitterHTTP "raider-registry-backend/internal/features/twitterauth/delivery/http"
	twitterService "raider-registry-backend/internal/features/twitterauth/service"
	"raider-registry-backend/internal/platform/ratelimit"
)

// HealthChecker - зависимость, проверяемая в /ready
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Services - все, что нужно роутеру
type Services struct {
	TwitterAuth  twitterService.TwitterAuthService
	Registration registrationService.RegistrationService
	Admin        adminService.AdminService
	Leaderboard  leaderboardService.LeaderboardService
	Status       statusService.StatusService
}

type RouterDeps struct {
	Config   *config.Config
	Logger   zerolog.Logger
	Services Services
	Limiter  ratelimit.Limiter
	Registry *prometheus.Registry
	Checks   map[string]HealthChecker // проверяются в /ready
	Started  time.Time
}

func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	if err := router.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		deps.Logger.Warn().Err(err).Msg("Invalid trusted proxies, trusting none")
		_ = router.SetTrustedProxies(nil)
	}

	// Logger и метрики снаружи, чтобы видеть итоговый статус после Errors
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(deps.Logger, "/health", "/metrics"))
	if deps.Registry != nil {
		router.Use(middleware.NewHTTPMetrics(deps.Registry).Handler())
	}
	router.Use(middleware.ErrorHandler(deps.Logger))
	router.Use(middleware.Errors(deps.Logger))

	corsConfig := cors.DefaultConfig()
	if allowsAnyOrigin(cfg.Server.Origins) {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.Server.Origins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", "Accept", middleware.InitDataHeader}
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "X-RateLimit-Remaining", "Retry-After"}
	router.Use(cors.New(corsConfig))

	router.GET("/health", healthHandler(cfg, deps.Started))
	router.GET("/ready", readyHandler(deps.Checks))

	if deps.Registry != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}

	if cfg.Server.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := router.Group("/api")
	if cfg.RateLimit.Enabled {
		api.Use(middleware.RateLimit(deps.Limiter, deps.Logger))
	}

	svc := deps.Services
	twitterHTTP.NewTwitterAuthHandler(svc.TwitterAuth, cfg.Frontend.URL, deps.Logger).RegisterRoutes(api)
	registrationHTTP.NewRegistrationHandler(svc.Registration).RegisterRoutes(api,
		middleware.TelegramInitData(cfg.Telegram.BotToken, cfg.Telegram.InitDataTTL, cfg.Telegram.RequireInitData))
	adminHTTP.NewAdminHandler(svc.Admin).RegisterRoutes(api)
	leaderboardHTTP.NewLeaderboardHandler(svc.Leaderboard).RegisterRoutes(api)
	statusHTTP.NewStatusHandler(svc.Status).RegisterRoutes(api)

	return router
}

func healthHandler(cfg *config.Config, started time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "ok",
			"uptime":      time.Since(started).Seconds(),
			"environment": cfg.Server.Environment,
		})
	}
}

func readyHandler(checks map[string]HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		for name, check := range checks {
			if err := check.HealthCheck(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status": "unready",
					"error":  name + " unavailable",
				})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "ready",
			"timestamp": time.Now().UTC(),
		})
	}
}

func allowsAnyOrigin(origins []string) bool {
	if len(origins) == 0 {
		return true
	}
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
