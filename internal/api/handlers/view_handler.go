package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/algoviz/algoviz-api/internal/models"
	"github.com/algoviz/algoviz-api/internal/services"
)

// ViewHandler expõe o ciclo de vida das views: ativação, filtros, paginação e encerramento
type ViewHandler struct {
	views     *services.ViewService
	validator *validator.Validate
}

func NewViewHandler(views *services.ViewService) *ViewHandler {
	return &ViewHandler{
		views:     views,
		validator: newValidator(),
	}
}

// PageRequest é o corpo de PUT /views/{id}/page
type PageRequest struct {
	PageIndex int `json:"page_index" validate:"min=0"`
}

// OpenView godoc
// @Summary Ativa uma view
// @Description Cria uma view sobre a coleção (blog ou quiz) com contadores zerados e retorna a primeira página
// @Tags views
// @Accept json
// @Produce json
// @Param view body models.OpenViewRequest true "Coleção e filtros iniciais"
// @Success 201 {object} models.ViewState
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Failure 429 {object} map[string]string "Limite de views atingido"
// @Failure 503 {object} map[string]string
// @Router /api/v1/views [post]
func (h *ViewHandler) OpenView(c *gin.Context) {
	var request models.OpenViewRequest
	if !bindAndValidate(c, h.validator, &request) {
		return
	}

	state, err := h.views.Open(request.Kind, request.PageSize, request.Category, request.SearchText)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, state)
}

// GetView godoc
// @Summary Estado da view
// @Description Retorna a página atual da view derivada, a paginação e os contadores
// @Tags views
// @Produce json
// @Param id path string true "ID da view"
// @Success 200 {object} models.ViewState
// @Failure 404 {object} map[string]string
// @Router /api/v1/views/{id} [get]
func (h *ViewHandler) GetView(c *gin.Context) {
	state, err := h.views.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// UpdateSearch godoc
// @Summary Altera o texto de busca
// @Description Aplica o texto (sem espaços nas pontas), conta uma operação de busca e volta para a primeira página
// @Tags views
// @Accept json
// @Produce json
// @Param id path string true "ID da view"
// @Param search body models.SearchUpdateRequest true "Texto de busca"
// @Success 200 {object} models.ViewState
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/views/{id}/search [put]
func (h *ViewHandler) UpdateSearch(c *gin.Context) {
	var request models.SearchUpdateRequest
	if !bindAndValidate(c, h.validator, &request) {
		return
	}

	state, err := h.views.SetSearch(c.Param("id"), request.SearchText)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// UpdateCategory godoc
// @Summary Altera a categoria
// @Description Aplica a categoria ("All" remove o filtro), conta uma troca de categoria e volta para a primeira página
// @Tags views
// @Accept json
// @Produce json
// @Param id path string true "ID da view"
// @Param category body models.CategoryUpdateRequest true "Categoria"
// @Success 200 {object} models.ViewState
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/views/{id}/category [put]
func (h *ViewHandler) UpdateCategory(c *gin.Context) {
	var request models.CategoryUpdateRequest
	if !bindAndValidate(c, h.validator, &request) {
		return
	}

	state, err := h.views.SetCategory(c.Param("id"), request.Category)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// OpenItem godoc
// @Summary Abre um item
// @Description Registra a abertura de um item da coleção da view e retorna o item completo
// @Tags views
// @Accept json
// @Produce json
// @Param id path string true "ID da view"
// @Param itemId path string true "ID do item"
// @Param action body models.ItemOpenRequest false "Ação (read, share ou external)"
// @Success 200 {object} models.Item
// @Failure 404 {object} map[string]string
// @Router /api/v1/views/{id}/items/{itemId}/open [post]
func (h *ViewHandler) OpenItem(c *gin.Context) {
	var request models.ItemOpenRequest
	if !bindOptionalAndValidate(c, h.validator, &request) {
		return
	}

	item, err := h.views.OpenItem(c.Param("id"), c.Param("itemId"), request.Action)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// NextPage godoc
// @Summary Próxima página
// @Description Avança uma página; na última página não faz nada
// @Tags views
// @Produce json
// @Param id path string true "ID da view"
// @Success 200 {object} models.ViewState
// @Failure 404 {object} map[string]string
// @Router /api/v1/views/{id}/page/next [post]
func (h *ViewHandler) NextPage(c *gin.Context) {
	state, err := h.views.Next(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// PreviousPage godoc
// @Summary Página anterior
// @Description Volta uma página; na primeira página não faz nada
// @Tags views
// @Produce json
// @Param id path string true "ID da view"
// @Success 200 {object} models.ViewState
// @Failure 404 {object} map[string]string
// @Router /api/v1/views/{id}/page/prev [post]
func (h *ViewHandler) PreviousPage(c *gin.Context) {
	state, err := h.views.Previous(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// GotoPage godoc
// @Summary Vai para uma página
// @Description Índices fora do intervalo são ajustados para a página válida mais próxima
// @Tags views
// @Accept json
// @Produce json
// @Param id path string true "ID da view"
// @Param page body PageRequest true "Índice da página (começa em 0)"
// @Success 200 {object} models.ViewState
// @Failure 404 {object} map[string]string
// @Router /api/v1/views/{id}/page [put]
func (h *ViewHandler) GotoPage(c *gin.Context) {
	var request PageRequest
	if !bindAndValidate(c, h.validator, &request) {
		return
	}

	state, err := h.views.Goto(c.Param("id"), request.PageIndex)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// CloseView godoc
// @Summary Encerra a view
// @Description Descarta a view; resultados assíncronos que chegarem depois são ignorados
// @Tags views
// @Param id path string true "ID da view"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/views/{id} [delete]
func (h *ViewHandler) CloseView(c *gin.Context) {
	if err := h.views.Close(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
