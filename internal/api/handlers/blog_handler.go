package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/algoviz/algoviz-api/internal/models"
	"github.com/algoviz/algoviz-api/internal/services"
)

// BlogHandler atende a listagem sem estado do blog
type BlogHandler struct {
	listing *services.ListingService
}

func NewBlogHandler(listing *services.ListingService) *BlogHandler {
	return &BlogHandler{listing: listing}
}

// ListPosts godoc
// @Summary Lista posts do blog
// @Description Filtra por categoria e texto (título, descrição ou tag, sem diferenciar maiúsculas) e pagina o resultado, preservando a ordem do catálogo.
// @Description Categoria vazia ou "All" não filtra. Páginas fora do intervalo retornam a última página válida.
// @Tags blog
// @Produce json
// @Param category query string false "Categoria (nome ou slug)" default(All)
// @Param q query string false "Texto de busca (máximo 200 caracteres)"
// @Param page query int false "Página (começa em 1)" minimum(1) default(1)
// @Param per_page query int false "Posts por página" minimum(1) maximum(100) default(10)
// @Success 200 {object} models.ListingResponse
// @Failure 400 {object} map[string]string "Categoria desconhecida, busca longa demais ou paginação inválida"
// @Failure 503 {object} map[string]string "Catálogo ainda não carregado"
// @Router /api/v1/blog/posts [get]
func (h *BlogHandler) ListPosts(c *gin.Context) {
	page := parseIntQuery(c, "page", 1)
	perPage := parseIntQuery(c, "per_page", 10)

	if page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Parâmetro page inválido",
			"details": "Page deve ser maior ou igual a 1",
		})
		return
	}
	if perPage < 1 || perPage > 100 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Parâmetro per_page inválido",
			"details": "PerPage deve estar entre 1 e 100",
		})
		return
	}

	result, err := h.listing.List(models.KindBlog, c.Query("category"), c.Query("q"), page, perPage)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListCategories godoc
// @Summary Lista categorias do blog
// @Description Retorna as categorias na ordem fixa com a quantidade de posts de cada uma
// @Tags blog
// @Produce json
// @Success 200 {object} models.CategoriesResponse
// @Failure 503 {object} map[string]string
// @Router /api/v1/blog/categories [get]
func (h *BlogHandler) ListCategories(c *gin.Context) {
	result, err := h.listing.Categories(models.KindBlog)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetPost godoc
// @Summary Busca um post
// @Description Retorna um post pelo ID ou slug
// @Tags blog
// @Produce json
// @Param id path string true "ID ou slug do post"
// @Success 200 {object} models.Item
// @Failure 404 {object} map[string]string
// @Router /api/v1/blog/posts/{id} [get]
func (h *BlogHandler) GetPost(c *gin.Context) {
	item, err := h.listing.Get(models.KindBlog, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}
