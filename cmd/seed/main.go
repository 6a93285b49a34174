package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/algoviz/algoviz-api/internal/config"
	"github.com/algoviz/algoviz-api/internal/logging"
	"github.com/algoviz/algoviz-api/internal/models"
	"github.com/algoviz/algoviz-api/internal/services"
	"github.com/algoviz/algoviz-api/internal/typesense"
)

// Carrega o arquivo TOML de seed nas collections do Typesense
func main() {
	cfg := config.Load()

	seedPath := flag.String("seed", cfg.CatalogSeedPath, "Arquivo TOML com posts e questões")
	only := flag.String("only", "", "Carregar apenas uma coleção: blog ou quiz")
	dryRun := flag.Bool("dry-run", false, "Validar o arquivo sem alterar o Typesense")
	flag.Parse()

	logger, err := logging.New(cfg.LogLevel, "console")
	if err != nil {
		fmt.Fprintf(os.Stderr, "erro ao criar logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger, *seedPath, models.CollectionKind(*only), *dryRun); err != nil {
		logger.Fatal("seed failed", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger, seedPath string, only models.CollectionKind, dryRun bool) error {
	if only != "" && !only.Valid() {
		return fmt.Errorf("coleção inválida: %q", only)
	}

	seed, err := services.ReadSeedFile(seedPath)
	if err != nil {
		return err
	}
	logger.Info("seed file parsed",
		zap.String("path", seedPath),
		zap.Int("blog", len(seed.Blog)),
		zap.Int("quiz", len(seed.Quiz)),
	)
	if dryRun {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	client := typesense.NewClient(cfg, logger)
	if err := client.Health(ctx); err != nil {
		return err
	}

	jobs := map[models.CollectionKind]struct {
		collection string
		items      []models.Item
	}{
		models.KindBlog: {cfg.BlogCollection, seed.Blog},
		models.KindQuiz: {cfg.QuizCollection, seed.Quiz},
	}

	g, gctx := errgroup.WithContext(ctx)
	for kind, job := range jobs {
		if only != "" && kind != only {
			continue
		}
		g.Go(func() error {
			if err := client.RecreateCollection(gctx, job.collection); err != nil {
				return err
			}
			return client.ImportItems(gctx, job.collection, job.items)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("seed completed")
	return nil
}
