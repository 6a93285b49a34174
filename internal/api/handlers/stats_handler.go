package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/algoviz/algoviz-api/internal/models"
)

// RepoStatsProvider fornece as estatísticas do repositório
type RepoStatsProvider interface {
	Stats(ctx context.Context) models.RepoStats
}

type StatsHandler struct {
	stats RepoStatsProvider
}

func NewStatsHandler(stats RepoStatsProvider) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// RepoStats godoc
// @Summary Estatísticas do repositório
// @Description Estrelas, forks e issues abertas do repositório no GitHub. Falhas na consulta retornam o último valor conhecido ou zeros.
// @Tags contribute
// @Produce json
// @Success 200 {object} models.RepoStats
// @Router /api/v1/repo/stats [get]
func (h *StatsHandler) RepoStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.stats.Stats(c.Request.Context()))
}
