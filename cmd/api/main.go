package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/algoviz/algoviz-api/docs"
	"github.com/algoviz/algoviz-api/internal/api/handlers"
	"github.com/algoviz/algoviz-api/internal/api/routes"
	"github.com/algoviz/algoviz-api/internal/config"
	"github.com/algoviz/algoviz-api/internal/logging"
	"github.com/algoviz/algoviz-api/internal/observability"
	"github.com/algoviz/algoviz-api/internal/services"
	"github.com/algoviz/algoviz-api/internal/typesense"
)

var version = "dev"

// @title           AlgoViz API
// @version         1.0
// @description     API do AlgoViz: blog, views de listagem com filtro e paginação, quiz, autenticação e estatísticas do repositório
// @BasePath        /

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "erro: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := observability.InitTracer(ctx, cfg, version, logger)
	if err != nil {
		logger.Warn("tracing not available", zap.Error(err))
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(sctx); err != nil {
			logger.Warn("failed to shutdown tracer provider", zap.Error(err))
		}
	}()

	readiness := map[string]handlers.Checker{}
	extra := map[string]handlers.Checker{}

	var source services.Source
	switch cfg.CatalogSource {
	case config.SourceTypesense:
		client := typesense.NewClient(cfg, logger)
		source = typesense.NewCatalogSource(client, cfg.BlogCollection, cfg.QuizCollection)
		extra["typesense"] = client.Health
	default:
		source = services.NewSeedSource(cfg.CatalogSeedPath)
	}

	catalog := services.NewCatalog(source, cfg.CatalogLoadDelay, logger)
	readiness["catalog"] = catalog.Ready

	views := services.NewViewService(catalog, services.ViewOptions{
		IdleTTL:         cfg.ViewIdleTTL,
		MaxViews:        cfg.ViewMaxSessions,
		DefaultPageSize: cfg.DefaultPageSize,
	}, logger)
	defer views.Shutdown()

	listing := services.NewListingService(catalog, cfg.ListingCacheTTL, cfg.ListingCacheMaxSize)
	quiz := services.NewQuizService(catalog)
	auth := services.NewAuthService(cfg.AuthServiceURL, cfg.AuthTimeout, logger)
	repoStats := services.NewRepoStatsService(
		services.NewGitHubClient(cfg.GitHubToken),
		cfg.GitHubOwner, cfg.GitHubRepo, cfg.RepoStatsTTL, logger,
	)

	// O catálogo carrega em segundo plano; até lá /readiness responde 503
	go func() {
		if err := catalog.Load(ctx); err != nil {
			logger.Error("initial catalog load failed", zap.Error(err))
			return
		}
		if cfg.CatalogWatch && cfg.CatalogSource == config.SourceSeed {
			if err := catalog.Watch(ctx, cfg.CatalogSeedPath); err != nil {
				logger.Warn("catalog watch disabled", zap.Error(err))
			}
		}
	}()

	gin.SetMode(cfg.GinMode)
	router := routes.SetupRouter(routes.Dependencies{
		Config:    cfg,
		Logger:    logger,
		Views:     views,
		Listing:   listing,
		Quiz:      quiz,
		Auth:      auth,
		RepoStats: repoStats,
		Readiness: readiness,
		Health:    extra,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started", zap.String("port", cfg.ServerPort), zap.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("erro ao iniciar servidor: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(sctx)
}
