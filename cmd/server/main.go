package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Shivrajsoni/portfolio/internal/auth"
	"github.com/Shivrajsoni/portfolio/internal/config"
	models "github.com/Shivrajsoni/portfolio/internal/domain/models/content"
	"github.com/Shivrajsoni/portfolio/internal/domain/services"
	"github.com/Shivrajsoni/portfolio/internal/handler"
	"github.com/Shivrajsoni/portfolio/internal/httputil"
	"github.com/Shivrajsoni/portfolio/internal/middleware"
	"github.com/Shivrajsoni/portfolio/internal/ratelimit"
	"github.com/Shivrajsoni/portfolio/internal/repository/filesystem"
	contentsvc "github.com/Shivrajsoni/portfolio/internal/service/content"
	"github.com/Shivrajsoni/portfolio/internal/service/content/converter"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	logger, logCloser, err := config.NewLogger(cfg, os.Stdout)
	if err != nil {
		log.Fatalf("Failed to setup logging: %v", err)
	}
	defer logCloser.Close()
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"content_dir", cfg.ContentDir,
	)
	for _, warning := range cfg.Warnings() {
		logger.Warn("insecure configuration", "detail", warning)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Repositories, one directory per kind
	storeConfig := &filesystem.StoreConfig{
		Root:      cfg.ContentDir,
		Extension: cfg.ContentExtension,
		Logger:    logger,
	}
	blogStore := filesystem.NewStore(storeConfig, models.NewBlog)
	projectStore := filesystem.NewStore(storeConfig, models.NewProject)
	proofStore := filesystem.NewStore(storeConfig, models.NewProofOfWork)

	// Content services
	renderer := contentsvc.NewRenderer(contentsvc.RendererOptions{UnsafeHTML: cfg.RenderUnsafeHTML})
	analyzer := contentsvc.NewContentAnalyzer()
	serviceOpts := contentsvc.ServiceOptions{DefaultAuthor: cfg.DefaultAuthor}

	blogService := contentsvc.NewContentService[*models.Blog](blogStore, renderer, analyzer, serviceOpts, logger)
	projectService := contentsvc.NewContentService[*models.Project](projectStore, renderer, analyzer, serviceOpts, logger)
	proofService := contentsvc.NewContentService[*models.ProofOfWork](proofStore, renderer, analyzer, serviceOpts, logger)
	siteService := contentsvc.NewSiteService(cfg.SiteURL, logger, blogService, projectService, proofService)

	// Import
	converters := converter.NewConverterRegistry()
	converters.Register(converter.NewMarkdownConverter())
	converters.Register(converter.NewTextConverter())
	converters.Register(converter.NewHTMLConverter())

	importers := map[models.Kind]services.ImportService{
		models.KindBlog:        contentsvc.NewImportService[*models.Blog](blogService, models.NewBlog, converters, analyzer, logger),
		models.KindProject:     contentsvc.NewImportService[*models.Project](projectService, models.NewProject, converters, analyzer, logger),
		models.KindProofOfWork: contentsvc.NewImportService[*models.ProofOfWork](proofService, models.NewProofOfWork, converters, analyzer, logger),
	}

	// Admin gate and rate limiting
	gate := auth.NewStaticGate(cfg.AdminID, cfg.AdminPassword, cfg.AdminToken, logger)

	proxies, err := httputil.ParseTrustedProxies(cfg.TrustedProxies)
	if err != nil {
		log.Fatalf("Invalid TRUSTED_PROXIES: %v", err)
	}
	if proxies.Len() > 0 {
		logger.Info("forwarding headers trusted", "proxies", cfg.TrustedProxies)
	}

	limiter, closeLimiter, err := setupLimiter(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to setup rate limiter: %v", err)
	}
	defer closeLimiter()

	logger.Info("services initialized")

	router := &handler.Router{
		Site:   handler.NewSiteHandler(siteService, logger),
		Auth:   handler.NewAuthHandler(gate, cfg.IsProduction(), logger),
		Import: handler.NewImportHandler(importers, logger),
		Content: []handler.ContentRoutes{
			handler.NewContentHandler(blogService, models.NewBlog, logger),
			handler.NewContentHandler(projectService, models.NewProject, logger),
			handler.NewContentHandler(proofService, models.NewProofOfWork, logger),
		},
		RateLimit:    middleware.RateLimit(limiter, ratelimit.DefaultPolicy(), config.RateLimitWindow, proxies, logger),
		RequireAdmin: middleware.RequireAdmin(gate, logger),
	}

	// Build middleware chain
	// Order: CORS → Request logging → Recovery → Routes
	var h http.Handler = router.Handler()
	h = middleware.Recovery(logger)(h)
	h = middleware.RequestLogger(logger)(h)

	// CORS - Must be outermost to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOriginList(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposedHeaders:   []string{"X-Request-ID", "Retry-After"},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

// setupLimiter picks the rate limit backend. The memory backend runs a
// janitor until ctx ends; the redis backend is pinged before use.
func setupLimiter(ctx context.Context, cfg *config.Config, logger *slog.Logger) (ratelimit.Limiter, func(), error) {
	switch cfg.RateLimitBackend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, err
		}

		logger.Info("rate limiter using redis", "addr", cfg.RedisAddr, "db", cfg.RedisDB)
		return ratelimit.NewRedis(client, config.RateLimitWindow), func() { _ = client.Close() }, nil

	case "memory", "":
		limiter := ratelimit.NewMemory(config.RateLimitWindow)
		go limiter.RunJanitor(ctx, time.Minute, logger)

		logger.Info("rate limiter using memory")
		return limiter, func() {}, nil

	default:
		return nil, nil, errors.New("unknown RATE_LIMIT_BACKEND " + cfg.RateLimitBackend)
	}
}
