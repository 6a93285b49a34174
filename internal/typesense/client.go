// Package typesense é a fonte do catálogo baseada no Typesense: leitura das
// coleções para o Catalog e carga do seed pelo comando cmd/seed.
package typesense

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/typesense/typesense-go/v3/typesense"
	"github.com/typesense/typesense-go/v3/typesense/api"
	"github.com/typesense/typesense-go/v3/typesense/api/pointer"
	"go.uber.org/zap"

	"github.com/algoviz/algoviz-api/internal/config"
	"github.com/algoviz/algoviz-api/internal/models"
)

const (
	// Máximo de documentos por página permitido pelo Typesense
	perPageLimit = 250

	importBatchSize = 100
)

type Client struct {
	client *typesense.Client
	logger *zap.Logger
}

// document é o formato indexado: o item mais sua posição no catálogo, usada
// para preservar a ordem original na leitura
type document struct {
	models.Item
	Position int `json:"position"`
}

func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	typesenseClient := typesense.NewClient(
		typesense.WithServer(cfg.TypesenseURL()),
		typesense.WithAPIKey(cfg.TypesenseAPIKey),
		typesense.WithConnectionTimeout(10*time.Second),
	)

	return &Client{
		client: typesenseClient,
		logger: logger.Named("typesense"),
	}
}

// Health verifica se o servidor Typesense está respondendo
func (c *Client) Health(ctx context.Context) error {
	ok, err := c.client.Health(ctx, 2*time.Second)
	if err != nil {
		return fmt.Errorf("typesense indisponível: %w", err)
	}
	if !ok {
		return errors.New("typesense reportou status não saudável")
	}
	return nil
}

// LoadCollection lê todos os documentos da collection na ordem de posição
func (c *Client) LoadCollection(ctx context.Context, name string) ([]models.Item, error) {
	var items []models.Item

	page := 1
	for {
		searchParams := &api.SearchCollectionParams{
			Q:       pointer.String("*"),
			SortBy:  pointer.String("position:asc"),
			Page:    pointer.Int(page),
			PerPage: pointer.Int(perPageLimit),
		}

		result, err := c.client.Collection(name).Documents().Search(ctx, searchParams)
		if err != nil {
			return nil, fmt.Errorf("erro ao buscar documentos de %s: %w", name, err)
		}

		hitsCount := 0
		if result.Hits != nil {
			hitsCount = len(*result.Hits)
			for _, hit := range *result.Hits {
				if hit.Document == nil {
					continue
				}
				item, err := decodeItem(*hit.Document)
				if err != nil {
					c.logger.Warn("skipping undecodable document", zap.String("collection", name), zap.Error(err))
					continue
				}
				items = append(items, item)
			}
		}

		// Se retornou menos que perPageLimit, chegamos ao fim
		if hitsCount < perPageLimit {
			break
		}
		page++
	}

	c.logger.Debug("collection loaded", zap.String("collection", name), zap.Int("documents", len(items)))
	return items, nil
}

// RecreateCollection apaga (se existir) e cria a collection com o schema de itens
func (c *Client) RecreateCollection(ctx context.Context, name string) error {
	if _, err := c.client.Collection(name).Delete(ctx); err != nil && !isNotFound(err) {
		return fmt.Errorf("erro ao remover collection %s: %w", name, err)
	}

	schema := &api.CollectionSchema{
		Name: name,
		Fields: []api.Field{
			{Name: "position", Type: "int32", Sort: pointer.True()},
			{Name: "slug", Type: "string", Optional: pointer.True()},
			{Name: "title", Type: "string"},
			{Name: "category", Type: "string", Facet: pointer.True()},
			{Name: "tags", Type: "string[]", Optional: pointer.True(), Facet: pointer.True()},
			{Name: "description", Type: "string", Optional: pointer.True()},
			{Name: "body", Type: "string", Optional: pointer.True()},
			{Name: "author", Type: "string", Optional: pointer.True()},
			{Name: "date", Type: "string", Optional: pointer.True()},
			{Name: "read_minutes", Type: "int32", Optional: pointer.True()},
			{Name: "link", Type: "string", Optional: pointer.True()},
			{Name: "difficulty", Type: "string", Optional: pointer.True(), Facet: pointer.True()},
			{Name: "options", Type: "string[]", Optional: pointer.True()},
			{Name: "answer", Type: "int32", Optional: pointer.True()},
			{Name: "explanation", Type: "string", Optional: pointer.True()},
		},
		DefaultSortingField: pointer.String("position"),
	}

	if _, err := c.client.Collections().Create(ctx, schema); err != nil {
		return fmt.Errorf("erro ao criar collection %s: %w", name, err)
	}
	c.logger.Info("collection created", zap.String("collection", name))
	return nil
}

// ImportItems indexa os itens na ordem recebida com uma única chamada de import.
// Falha se algum documento for rejeitado.
func (c *Client) ImportItems(ctx context.Context, name string, items []models.Item) error {
	if len(items) == 0 {
		return nil
	}

	docs := make([]interface{}, len(items))
	for i, item := range items {
		docs[i] = document{Item: item, Position: i}
	}

	params := &api.ImportDocumentsParams{
		Action:    pointer.Any(api.Create),
		BatchSize: pointer.Int(importBatchSize),
	}
	results, err := c.client.Collection(name).Documents().Import(ctx, docs, params)
	if err != nil {
		return fmt.Errorf("erro ao importar itens em %s: %w", name, err)
	}

	var failed []string
	for i, result := range results {
		if result == nil || result.Success {
			continue
		}
		id := ""
		if i < len(items) {
			id = items[i].ID
		}
		failed = append(failed, fmt.Sprintf("%s: %s", id, result.Error))
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d de %d itens rejeitados em %s: %s", len(failed), len(items), name, strings.Join(failed, "; "))
	}

	c.logger.Info("items imported", zap.String("collection", name), zap.Int("count", len(items)))
	return nil
}

func decodeItem(raw map[string]interface{}) (models.Item, error) {
	var doc document
	data, err := json.Marshal(raw)
	if err != nil {
		return models.Item{}, fmt.Errorf("erro ao serializar documento: %w", err)
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.Item{}, fmt.Errorf("erro ao deserializar documento: %w", err)
	}
	return doc.Item, nil
}

func isNotFound(err error) bool {
	var httpErr *typesense.HTTPError
	return errors.As(err, &httpErr) && httpErr.Status == http.StatusNotFound
}

// CatalogSource expõe as collections do Typesense como fonte do catálogo
type CatalogSource struct {
	client      *Client
	collections map[models.CollectionKind]string
}

func NewCatalogSource(client *Client, blogCollection, quizCollection string) *CatalogSource {
	return &CatalogSource{
		client: client,
		collections: map[models.CollectionKind]string{
			models.KindBlog: blogCollection,
			models.KindQuiz: quizCollection,
		},
	}
}

// LoadCollection implementa services.Source
func (s *CatalogSource) LoadCollection(ctx context.Context, kind models.CollectionKind) ([]models.Item, error) {
	name, ok := s.collections[kind]
	if !ok {
		return nil, fmt.Errorf("coleção inválida: %q", kind)
	}
	return s.client.LoadCollection(ctx, name)
}
