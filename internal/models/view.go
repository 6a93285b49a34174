package models

import "time"

// FilterParams são os critérios de categoria/busca aplicados pelo usuário
type FilterParams struct {
	Category   string `json:"category"`
	SearchText string `json:"search_text"`
}

// PaginationState descreve a janela de paginação atual
type PaginationState struct {
	PageIndex  int `json:"page_index"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
	TotalItems int `json:"total_items"`
}

// InteractionCounters são os contadores de diagnóstico de uma view
type InteractionCounters struct {
	SearchOperations int64 `json:"search_operations"`
	FilterOperations int64 `json:"filter_operations"`
	Interactions     int64 `json:"interactions"`
}

// ItemOpenEvent registra a abertura de um item em uma view
type ItemOpenEvent struct {
	ItemID string    `json:"item_id"`
	Action string    `json:"action"`
	At     time.Time `json:"at"`
}

// ViewState é o estado completo de uma view retornado ao front-end
type ViewState struct {
	ID          string              `json:"id"`
	Kind        CollectionKind      `json:"kind"`
	Filter      FilterParams        `json:"filter"`
	Items       []Item              `json:"items"`
	Pagination  PaginationState     `json:"pagination"`
	Counters    InteractionCounters `json:"counters"`
	RecentOpens []ItemOpenEvent     `json:"recent_opens"`
	Version     uint64              `json:"catalog_version"`
	CreatedAt   time.Time           `json:"created_at"`
}

// OpenViewRequest é o corpo da requisição de ativação de view
type OpenViewRequest struct {
	Kind       CollectionKind `json:"kind" validate:"required,oneof=blog quiz"`
	PageSize   int            `json:"page_size" validate:"omitempty,min=1,max=100"`
	Category   string         `json:"category"`
	SearchText string         `json:"search_text" validate:"max=200"`
}

// SearchUpdateRequest altera o texto de busca de uma view
type SearchUpdateRequest struct {
	SearchText string `json:"search_text" validate:"max=200"`
}

// CategoryUpdateRequest altera a categoria selecionada de uma view
type CategoryUpdateRequest struct {
	Category string `json:"category" validate:"required"`
}

// ItemOpenRequest registra a abertura de um item
type ItemOpenRequest struct {
	Action string `json:"action" validate:"omitempty,oneof=read share external"`
}

// ListingResponse é a resposta da listagem sem estado (GET /blog/posts)
type ListingResponse struct {
	Results       []Item `json:"results"`
	TotalCount    int    `json:"total_count"`
	FilteredCount int    `json:"filtered_count"`
	Page          int    `json:"page"`
	PerPage       int    `json:"per_page"`
	TotalPages    int    `json:"total_pages"`
	Category      string `json:"category"`
	Query         string `json:"query,omitempty"`
}

// CategoriesResponse lista as categorias de uma coleção
type CategoriesResponse struct {
	Categories      []CategoryCount `json:"categories"`
	TotalCategories int             `json:"total_categories"`
	TotalItems      int             `json:"total_items"`
}
