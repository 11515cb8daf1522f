package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gigspace/core/internal/config"
	"github.com/gigspace/core/internal/database"
	"github.com/gigspace/core/internal/domain"
	"github.com/gigspace/core/internal/middleware"
	"github.com/gigspace/core/internal/pkg/ai"
	"github.com/gigspace/core/internal/pkg/jwt"
	"github.com/gigspace/core/internal/pkg/mail"
	pkgredis "github.com/gigspace/core/internal/pkg/redis"
	"github.com/gigspace/core/internal/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// App holds all application dependencies.
type App struct {
	cfg      *config.AppConfig
	router   *gin.Engine
	backend  store.Store
	domain   *domain.Store
	enhancer *ai.Enhancer
	rc       *pkgredis.Client
	logger   *zap.Logger
}

// New loads configuration, picks a storage backend, hydrates the
// domain store and builds the HTTP router.
func New(logger *zap.Logger, configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if secret := strings.TrimSpace(cfg.JWTSecret); secret != "" {
		jwt.SetSecret(secret)
	} else {
		logger.Warn("jwt_secret is empty, using built-in default secret")
	}

	backend, err := buildStore(cfg, logger)
	if err != nil {
		return nil, err
	}

	// Redis is optional; without it the rate limiter and view dedup
	// simply stay off.
	var rc *pkgredis.Client
	if cfg.RedisURL != "" {
		rc, err = pkgredis.Connect(cfg.RedisURL)
		if err != nil {
			logger.Warn("redis unavailable, continuing without it", zap.Error(err))
			rc = nil
		}
	}

	mailer := mail.New(mail.Config{APIKey: cfg.Mail.APIKey, From: cfg.Mail.From})
	if !mailer.Enabled() {
		logger.Warn("resend api key missing, outbound email disabled")
	}
	enhancer := ai.New(cfg.AI, logger)

	d := domain.New(backend, mailer, logger, domain.Options{RecoveryLogin: cfg.RecoveryLogin})
	d.LoadPublic(context.Background())

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}
	if len(cfg.AllowedOrigins) > 0 && !cfg.IsDev() {
		patterns := cfg.AllowedOrigins
		corsConfig.AllowOriginFunc = func(origin string) bool {
			host := extractOriginHost(origin)
			for _, pattern := range patterns {
				if matchOriginPattern(pattern, host) {
					return true
				}
			}
			return false
		}
	} else {
		corsConfig.AllowOriginFunc = func(origin string) bool { return true }
	}
	router.Use(cors.New(corsConfig))

	app := &App{
		cfg:      cfg,
		router:   router,
		backend:  backend,
		domain:   d,
		enhancer: enhancer,
		rc:       rc,
		logger:   logger,
	}
	app.registerRoutes()
	return app, nil
}

func buildStore(cfg *config.AppConfig, logger *zap.Logger) (store.Store, error) {
	if cfg.UseFileStore() {
		logger.Info("no database dsn configured, using local file store",
			zap.String("data_dir", cfg.DataDir))
		return store.NewFileStore(cfg.DataDir, logger)
	}
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	return store.NewDBStore(db), nil
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }

// Shutdown cleans up background resources.
func (a *App) Shutdown() {
	if a.rc != nil {
		if err := a.rc.Raw().Close(); err != nil && !errors.Is(err, context.Canceled) {
			a.logger.Warn("closing redis failed", zap.Error(err))
		}
	}
}
