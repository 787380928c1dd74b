package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"

	"hexconv-service/internal/config"
	"hexconv-service/internal/handler"
	"hexconv-service/internal/metrics"
	"hexconv-service/internal/middleware"
	"hexconv-service/internal/service"
	"hexconv-service/internal/web"
	"hexconv-service/pkg/cache"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	apiRoot   = "/api"
	apiPrefix = apiRoot + "/"

	// Ops endpoints live under a two-segment prefix so that every single
	// segment stays a greeting name.
	healthPath = "/-/health"
)

type Application struct {
	config  *config.Config
	router  *gin.Engine
	logger  *zap.Logger
	redis   *cache.RedisClient
	metrics *metrics.Metrics
	server  *http.Server
}

// New wires the application. Redis is optional: when it is enabled but
// unreachable the service starts without a cache.
func New(cfg *config.Config, logger *zap.Logger) (*Application, error) {
	switch cfg.Server.Mode {
	case gin.ReleaseMode:
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	logger.Info("Running in " + strings.ToUpper(gin.Mode()) + " mode")

	app := &Application{
		config: cfg,
		router: gin.New(),
		logger: logger,
	}

	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(cfg.Redis, logger)
		if err != nil {
			logger.Error("Failed to create Redis client, continuing without cache", zap.Error(err))
		} else {
			app.redis = redisClient
		}
	}
	if cfg.Metrics.Enabled {
		app.metrics = metrics.New()
	}

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	app.router.SetHTMLTemplate(tmpl)

	app.setupMiddleware()
	if err := app.setupRouter(); err != nil {
		return nil, err
	}

	logger.Info("Application initialized",
		zap.String("addr", cfg.Server.Addr()),
		zap.Bool("redis_connected", app.redis != nil),
		zap.Bool("metrics_enabled", app.metrics != nil),
	)
	return app, nil
}

// NewLogger builds the zap logger from the logging config.
func NewLogger(cfg *config.LoggingConfig) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error
	if cfg.Format == "json" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	switch cfg.Level {
	case "debug":
		logger = logger.WithOptions(zap.IncreaseLevel(zap.DebugLevel))
	case "info":
		logger = logger.WithOptions(zap.IncreaseLevel(zap.InfoLevel))
	case "warn":
		logger = logger.WithOptions(zap.IncreaseLevel(zap.WarnLevel))
	case "error":
		logger = logger.WithOptions(zap.IncreaseLevel(zap.ErrorLevel))
	}
	return logger, nil
}

// Router exposes the gin engine, used by tests.
func (a *Application) Router() http.Handler {
	return a.router
}

func (a *Application) setupMiddleware() {
	a.router.Use(middleware.RecoveryMiddleware(a.logger))
	a.router.Use(middleware.RequestIDMiddleware())
	a.router.Use(middleware.LoggingMiddleware(a.logger))
	if a.metrics != nil {
		a.router.Use(middleware.MetricsMiddleware(a.metrics))
	}
	a.router.Use(middleware.CORSMiddleware(a.config.CORS.AllowOrigin))
	a.logger.Debug("Middleware configured")
}

func (a *Application) setupRouter() error {
	var resultCache service.ResultCache
	var healthCache handler.HealthChecker
	if a.redis != nil {
		resultCache = a.redis
		healthCache = a.redis
	}
	conversionService := service.NewConversionService(resultCache, a.metrics, a.logger)
	conversionHandler := handler.NewConversionHandler(conversionService)

	a.router.GET(healthPath, handler.NewHealthHandler(healthCache).HealthCheck)
	if a.metrics != nil {
		a.router.GET(a.config.Metrics.Path, gin.WrapH(a.metrics.Handler()))
	}

	static := a.router.Group("/static")
	for _, asset := range []struct{ route, file, contentType string }{
		{"/css/styles.css", "css/styles.css", "text/css"},
		{"/js/htmx.min.js", "js/htmx.min.js", "text/javascript"},
	} {
		h, err := handler.StaticAsset(web.Static(), asset.file, asset.contentType)
		if err != nil {
			return err
		}
		static.GET(asset.route, h)
	}

	api := a.router.Group(apiRoot)
	api.POST("/hexify", conversionHandler.Hexify)
	api.POST("/decify", conversionHandler.Decify)
	// The bare namespace answers like any other unmatched /api path instead
	// of being redirected to, or greeted by, /:name.
	api.Any("", handler.APINotFound)
	api.Any("/", handler.APINotFound)

	fragments := a.router.Group("/html")
	fragments.POST("/hexify", conversionHandler.HexifyFragment)
	fragments.POST("/decify", conversionHandler.DecifyFragment)

	a.router.GET("/", handler.HelloWorld)
	a.router.GET("/index.html", handler.HelloWorld)
	a.router.GET("/:name", handler.HelloName)

	// gin has a single NoRoute, so the /api fallback is chosen by prefix.
	// HandleMethodNotAllowed stays off: a known /api path with the wrong
	// method (GET /api/hexify) gets the JSON 404 as well, not a 405.
	a.router.NoRoute(func(c *gin.Context) {
		if isAPIPath(c.Request.URL.Path) {
			handler.APINotFound(c)
			return
		}
		c.String(http.StatusNotFound, "404 page not found")
	})

	a.logger.Debug("Routes configured",
		zap.String("ops", healthPath+", "+a.config.Metrics.Path),
		zap.String("greeting", "GET /, /index.html, /:name"),
		zap.String("api", "POST /api/hexify, /api/decify"),
		zap.String("html", "POST /html/hexify, /html/decify"),
		zap.String("static", "GET /static/css/styles.css, /static/js/htmx.min.js"),
	)
	return nil
}

func isAPIPath(path string) bool {
	return path == apiRoot || strings.HasPrefix(path, apiPrefix)
}

// Run serves until SIGINT/SIGTERM, then shuts down gracefully.
func (a *Application) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return a.Serve(ctx)
}

// Serve serves until ctx is cancelled or the listener fails.
func (a *Application) Serve(ctx context.Context) error {
	a.server = &http.Server{
		Addr:         a.config.Server.Addr(),
		Handler:      a.router,
		ReadTimeout:  a.config.Server.ReadTimeout,
		WriteTimeout: a.config.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("Server starting",
			zap.String("address", a.server.Addr),
			zap.String("mode", gin.Mode()),
		)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		a.Shutdown()
		return nil
	})
	return g.Wait()
}

// Shutdown stops the HTTP server, then closes Redis and flushes the logger.
func (a *Application) Shutdown() {
	a.logger.Info("Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
	defer cancel()

	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			a.logger.Error("Failed to shutdown HTTP server", zap.Error(err))
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("Failed to close Redis client", zap.Error(err))
		}
	}

	a.logger.Info("Server stopped gracefully")
	_ = a.logger.Sync()
}
