package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apihttp "github.com/GriffinCanCode/FocusBrowser/backend/internal/api/http"
	"github.com/GriffinCanCode/FocusBrowser/backend/internal/api/middleware"
	"github.com/GriffinCanCode/FocusBrowser/backend/internal/domain/autocomplete"
	"github.com/GriffinCanCode/FocusBrowser/backend/internal/domain/customtab"
	"github.com/GriffinCanCode/FocusBrowser/backend/internal/domain/search"
	"github.com/GriffinCanCode/FocusBrowser/backend/internal/domain/session"
	"github.com/GriffinCanCode/FocusBrowser/backend/internal/domain/settings"
	"github.com/GriffinCanCode/FocusBrowser/backend/internal/infrastructure/config"
	"github.com/GriffinCanCode/FocusBrowser/backend/internal/infrastructure/logging"
	"github.com/GriffinCanCode/FocusBrowser/backend/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/FocusBrowser/backend/internal/ws"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router  *gin.Engine
	http    *http.Server
	loop    *session.Loop
	hub     *ws.Hub
	logger  *logging.Logger
	config  *config.Config
	metrics *monitoring.Metrics
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	logger, err := newLogger(cfg.Logging)
	if err != nil {
		return nil, err
	}

	logger.Info("Initializing session server",
		zap.String("port", cfg.Server.Port),
		zap.String("log_level", cfg.Logging.Level),
	)

	// Initialize metrics first (needed by other components)
	metrics := monitoring.NewMetrics()

	catalog, err := loadCatalog(cfg.Search)
	if err != nil {
		return nil, err
	}
	logger.Info("Search catalog loaded",
		zap.Int("engines", len(catalog.Engines)),
		zap.String("source", catalogSource(cfg.Search)),
	)

	prefs := settings.NewStore(settings.Defaults{
		SearchSuggestions:   cfg.Search.SuggestionsEnabled,
		DefaultSearchEngine: cfg.Search.DefaultEngine,
	})
	engines := search.NewManager(catalog, prefs)
	suggester := search.NewSuggester(engines, prefs, search.SuggesterConfig{
		Timeout:           cfg.Suggest.Timeout,
		RetryMax:          cfg.Suggest.RetryMax,
		RequestsPerSecond: cfg.Suggest.RequestsPerSecond,
		MaxResults:        cfg.Suggest.MaxResults,
		BreakerThreshold:  cfg.Suggest.BreakerThreshold,
		BreakerCooldown:   cfg.Suggest.BreakerCooldown,
	}, logger.Component("suggest")).WithMetrics(metrics)

	// The loop is the only owner of the registry from here on
	manager := session.NewManager(customtab.NewParser(), nil, engines).
		WithLogger(logger.Component("sessions")).
		WithMetrics(metrics)
	loop := session.NewLoop(manager)

	hub := ws.NewHub(loop, cfg.Stream.Buffer, logger.Component("stream")).WithMetrics(metrics)
	if err := hub.Start(context.Background()); err != nil {
		loop.Close()
		return nil, fmt.Errorf("failed to start snapshot stream: %w", err)
	}

	domains := autocomplete.NewDomains(cfg.Autocomplete.Domains...)

	// Create router
	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(logger.Component("http")))
	router.Use(monitoring.Middleware(metrics))
	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.Server.CORSOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.Server.CORSOrigins
	}
	router.Use(middleware.CORS(corsCfg))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		rl := middleware.DefaultRateLimitConfig()
		rl.RequestsPerSecond = cfg.RateLimit.RequestsPerSecond
		rl.Burst = cfg.RateLimit.Burst
		router.Use(middleware.RateLimit(rl))
	}

	handlers := apihttp.NewHandlers(loop, engines, suggester, prefs, domains, metrics, logger.Component("api"))
	handlers.Register(router)

	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.Any("/debug/log-level", gin.WrapH(logger.Level()))
	router.GET("/stream", hub.HandleConnection)

	logger.Info("Server initialized successfully")

	return &Server{
		router:  router,
		loop:    loop,
		hub:     hub,
		logger:  logger,
		config:  cfg,
		metrics: metrics,
	}, nil
}

func newLogger(cfg config.LogConfig) (*logging.Logger, error) {
	base := logging.DefaultConfig()
	if cfg.Development {
		base = logging.DevelopmentConfig()
	}
	if cfg.Level != "" {
		base.Level = cfg.Level
	}

	logger, err := logging.New(base)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}

func loadCatalog(cfg config.SearchConfig) (*search.Catalog, error) {
	if cfg.EnginesFile == "" {
		return search.BundledCatalog(), nil
	}
	catalog, err := search.LoadCatalogFile(cfg.EnginesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load search engines: %w", err)
	}
	return catalog, nil
}

func catalogSource(cfg config.SearchConfig) string {
	if cfg.EnginesFile == "" {
		return "bundled"
	}
	return cfg.EnginesFile
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the HTTP server and blocks until it stops
func (s *Server) Run() error {
	addr := net.JoinHostPort(s.config.Server.Host, s.config.Server.Port)
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("Starting HTTP server", zap.String("addr", addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Close gracefully shuts down the server
func (s *Server) Close(ctx context.Context) error {
	s.logger.Info("Shutting down server...")

	var errs []error
	if s.http != nil {
		if err := s.http.Shutdown(ctx); err != nil {
			s.logger.Error("Failed to stop HTTP server", zap.Error(err))
			errs = append(errs, fmt.Errorf("failed to stop http server: %w", err))
		}
	}

	if err := s.hub.Stop(ctx); err != nil && !errors.Is(err, session.ErrLoopClosed) {
		errs = append(errs, fmt.Errorf("failed to stop snapshot stream: %w", err))
	}
	s.loop.Close()

	// Sync logger before exit
	_ = s.logger.Sync()

	return errors.Join(errs...)
}
