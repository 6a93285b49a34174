package services

import (
	"time"

	"github.com/algoviz/algoviz-api/internal/models"
	"github.com/algoviz/algoviz-api/internal/search"
)

// ListingService atende a listagem sem estado (GET /blog/posts), com cache por
// versão do catálogo
type ListingService struct {
	catalog *Catalog
	cache   *search.ListingCache
}

// NewListingService cria o serviço e limpa o cache a cada recarga do catálogo
func NewListingService(catalog *Catalog, cacheTTL time.Duration, cacheSize int) *ListingService {
	s := &ListingService{
		catalog: catalog,
		cache:   search.NewListingCache(cacheTTL, cacheSize),
	}
	catalog.OnReload(func(*Snapshot) { s.cache.Clear() })
	return s
}

// List filtra e pagina a coleção. page começa em 1; páginas fora do intervalo
// são ajustadas para a mais próxima válida.
func (s *ListingService) List(kind models.CollectionKind, category, query string, page, perPage int) (*models.ListingResponse, error) {
	coll, err := s.catalog.Collection(kind)
	if err != nil {
		return nil, err
	}
	params, err := search.ParseParams(category, query, CategoriesFor(kind))
	if err != nil {
		return nil, err
	}
	if perPage <= 0 {
		perPage = 10
	}

	key := search.ListingKey{Kind: kind, Version: coll.Version, Params: params, Page: page, PerPage: perPage}
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	filtered := search.Filter(coll.Items, params)
	totalPages := search.TotalPages(len(filtered), perPage)
	index := search.Clamp(page-1, totalPages)
	results := search.Page(filtered, index, perPage)

	response := &models.ListingResponse{
		Results:       append(make([]models.Item, 0, len(results)), results...),
		TotalCount:    len(coll.Items),
		FilteredCount: len(filtered),
		Page:          index + 1,
		PerPage:       perPage,
		TotalPages:    totalPages,
		Category:      params.Category,
		Query:         params.SearchText,
	}
	s.cache.Set(key, response)
	return response, nil
}

// Categories retorna as categorias da coleção com a contagem de itens
func (s *ListingService) Categories(kind models.CollectionKind) (*models.CategoriesResponse, error) {
	categories, total, err := s.catalog.Categories(kind)
	if err != nil {
		return nil, err
	}
	return &models.CategoriesResponse{
		Categories:      categories,
		TotalCategories: len(categories),
		TotalItems:      total,
	}, nil
}

// Get retorna um item por ID ou slug
func (s *ListingService) Get(kind models.CollectionKind, idOrSlug string) (*models.Item, error) {
	return s.catalog.Find(kind, idOrSlug)
}
