package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/algoviz/algoviz-api/internal/constants"
	"github.com/algoviz/algoviz-api/internal/models"
	"github.com/algoviz/algoviz-api/internal/search"
	"github.com/algoviz/algoviz-api/internal/utils"
)

const descriptionExcerptLength = 160

// Source carrega uma coleção completa do catálogo
type Source interface {
	LoadCollection(ctx context.Context, kind models.CollectionKind) ([]models.Item, error)
}

// Snapshot é uma versão imutável do catálogo. Um reload cria um novo Snapshot,
// nunca altera o anterior.
type Snapshot struct {
	Version  uint64
	LoadedAt time.Time
	Blog     []models.Item
	Quiz     []models.Item
}

// Collection retorna a coleção do tipo pedido com a versão do snapshot
func (s *Snapshot) Collection(kind models.CollectionKind) search.Collection {
	switch kind {
	case models.KindQuiz:
		return search.Collection{Items: s.Quiz, Version: s.Version}
	default:
		return search.Collection{Items: s.Blog, Version: s.Version}
	}
}

// CategoriesFor retorna a enumeração de categorias válida para a coleção
func CategoriesFor(kind models.CollectionKind) []string {
	if kind == models.KindQuiz {
		return constants.QuizTopics
	}
	return constants.BlogCategories
}

// Catalog mantém os itens carregados e os substitui atomicamente a cada reload
type Catalog struct {
	source Source
	delay  time.Duration
	logger *zap.Logger

	current atomic.Pointer[Snapshot]
	version atomic.Uint64

	reloadMu  sync.Mutex
	listeners []func(*Snapshot)
}

// NewCatalog cria o catálogo. delay simula latência de carregamento.
func NewCatalog(source Source, delay time.Duration, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Catalog{
		source: source,
		delay:  delay,
		logger: logger.Named("catalog"),
	}
}

// OnReload registra uma função chamada após cada carga bem-sucedida.
// Deve ser chamada antes de Load.
func (c *Catalog) OnReload(fn func(*Snapshot)) {
	c.reloadMu.Lock()
	defer c.reloadMu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// Load carrega blog e quiz em paralelo e publica um novo snapshot
func (c *Catalog) Load(ctx context.Context) error {
	c.reloadMu.Lock()
	defer c.reloadMu.Unlock()

	ctx, span := otel.Tracer("catalog").Start(ctx, "catalog.load")
	defer span.End()

	start := time.Now()
	if c.delay > 0 {
		select {
		case <-time.After(c.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	var blog, quiz []models.Item
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := c.source.LoadCollection(gctx, models.KindBlog)
		if err != nil {
			return fmt.Errorf("erro ao carregar posts: %w", err)
		}
		blog = c.prepare(models.KindBlog, items)
		return nil
	})
	g.Go(func() error {
		items, err := c.source.LoadCollection(gctx, models.KindQuiz)
		if err != nil {
			return fmt.Errorf("erro ao carregar questões: %w", err)
		}
		quiz = c.prepare(models.KindQuiz, items)
		return nil
	})
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return err
	}

	snapshot := &Snapshot{
		Version:  c.version.Add(1),
		LoadedAt: time.Now(),
		Blog:     blog,
		Quiz:     quiz,
	}
	c.current.Store(snapshot)

	span.SetAttributes(
		attribute.Int64("catalog.version", int64(snapshot.Version)),
		attribute.Int("catalog.blog_items", len(blog)),
		attribute.Int("catalog.quiz_items", len(quiz)),
	)
	c.logger.Info("catalog loaded",
		zap.Uint64("version", snapshot.Version),
		zap.Int("blog_items", len(blog)),
		zap.Int("quiz_items", len(quiz)),
		zap.Duration("took", time.Since(start)),
	)

	for _, fn := range c.listeners {
		fn(snapshot)
	}
	return nil
}

// Snapshot retorna o snapshot atual ou nil se o catálogo nunca foi carregado
func (c *Catalog) Snapshot() *Snapshot {
	return c.current.Load()
}

// Ready retorna erro enquanto o catálogo não estiver carregado
func (c *Catalog) Ready(context.Context) error {
	if c.current.Load() == nil {
		return ErrCatalogNotLoaded
	}
	return nil
}

// Collection retorna a coleção atual do tipo pedido
func (c *Catalog) Collection(kind models.CollectionKind) (search.Collection, error) {
	if !kind.Valid() {
		return search.Collection{}, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
	snapshot := c.current.Load()
	if snapshot == nil {
		return search.Collection{}, ErrCatalogNotLoaded
	}
	return snapshot.Collection(kind), nil
}

// Categories conta os itens por categoria na ordem da enumeração
func (c *Catalog) Categories(kind models.CollectionKind) ([]models.CategoryCount, int, error) {
	coll, err := c.Collection(kind)
	if err != nil {
		return nil, 0, err
	}

	counts := make(map[string]int)
	for _, item := range coll.Items {
		counts[item.Category]++
	}

	result := make([]models.CategoryCount, 0, len(CategoriesFor(kind)))
	for _, name := range CategoriesFor(kind) {
		result = append(result, models.CategoryCount{Name: name, Count: counts[name]})
	}
	return result, len(coll.Items), nil
}

// Find busca um item por ID ou slug
func (c *Catalog) Find(kind models.CollectionKind, idOrSlug string) (*models.Item, error) {
	coll, err := c.Collection(kind)
	if err != nil {
		return nil, err
	}
	for i := range coll.Items {
		if coll.Items[i].ID == idOrSlug || (coll.Items[i].Slug != "" && coll.Items[i].Slug == idOrSlug) {
			item := coll.Items[i]
			return &item, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrItemNotFound, idOrSlug)
}

// Watch recarrega o catálogo quando o arquivo em path muda. Retorna quando o
// watcher está ativo; o monitoramento para quando ctx é cancelado.
func (c *Catalog) Watch(ctx context.Context, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("erro ao criar watcher: %w", err)
	}

	target := filepath.Clean(path)
	// observa o diretório porque editores costumam substituir o arquivo
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		watcher.Close()
		return fmt.Errorf("erro ao observar %s: %w", target, err)
	}

	go func() {
		defer watcher.Close()

		var debounce <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
					debounce = time.After(200 * time.Millisecond)
				}
			case <-debounce:
				debounce = nil
				if err := c.Load(ctx); err != nil {
					c.logger.Warn("catalog reload failed, keeping previous snapshot", zap.Error(err))
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				c.logger.Warn("catalog watcher error", zap.Error(err))
			}
		}
	}()

	c.logger.Info("watching seed file", zap.String("path", target))
	return nil
}

// prepare normaliza os itens carregados: descarta inválidos e duplicados,
// deduplica tags, gera slug e descrição, e limpa links externos
func (c *Catalog) prepare(kind models.CollectionKind, items []models.Item) []models.Item {
	seen := make(map[string]bool, len(items))
	out := make([]models.Item, 0, len(items))

	for _, item := range items {
		if item.ID == "" || strings.TrimSpace(item.Title) == "" {
			c.logger.Warn("skipping item without id or title", zap.String("kind", string(kind)), zap.String("id", item.ID))
			continue
		}
		if seen[item.ID] {
			c.logger.Warn("skipping duplicated item", zap.String("kind", string(kind)), zap.String("id", item.ID))
			continue
		}
		seen[item.ID] = true

		if category, ok := utils.ResolveCategory(item.Category, CategoriesFor(kind)); ok {
			item.Category = category
		} else {
			c.logger.Warn("item with unknown category", zap.String("id", item.ID), zap.String("category", item.Category))
		}
		if kind == models.KindQuiz {
			if difficulty, ok := utils.ResolveCategory(item.Difficulty, constants.QuizDifficulties); ok {
				item.Difficulty = difficulty
			}
		}

		item.Tags = uniqueTags(item.Tags)
		item.Link = utils.SanitizeLink(item.Link)
		if item.Slug == "" {
			item.Slug = utils.PostSlug(item.Title, item.ID)
		}
		if item.Description == "" && item.Body != "" {
			item.Description = utils.Excerpt(item.Body, descriptionExcerptLength)
		}
		out = append(out, item)
	}
	return out
}

// uniqueTags trata as tags como conjunto, mantendo a primeira grafia
func uniqueTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		key := utils.Fold(tag)
		if tag == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, tag)
	}
	return out
}

// SeedSource lê o catálogo de um arquivo TOML
type SeedSource struct {
	path string
}

// NewSeedSource cria uma fonte baseada em arquivo
func NewSeedSource(path string) *SeedSource {
	return &SeedSource{path: path}
}

// LoadCollection lê o arquivo e retorna a coleção pedida
func (s *SeedSource) LoadCollection(_ context.Context, kind models.CollectionKind) ([]models.Item, error) {
	seed, err := ReadSeedFile(s.path)
	if err != nil {
		return nil, err
	}
	switch kind {
	case models.KindBlog:
		return seed.Blog, nil
	case models.KindQuiz:
		return seed.Quiz, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
}

// ReadSeedFile faz o parse do arquivo TOML de seed
func ReadSeedFile(path string) (*models.SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler arquivo seed: %w", err)
	}

	var seed models.SeedFile
	if err := toml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("erro ao interpretar arquivo seed %s: %w", path, err)
	}
	return &seed, nil
}
