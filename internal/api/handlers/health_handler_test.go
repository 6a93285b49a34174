package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/algoviz/algoviz-api/internal/models"
)

type staticStats struct{ stats models.RepoStats }

func (s staticStats) Stats(context.Context) models.RepoStats { return s.stats }

func TestHealthHandler(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	h := NewHealthHandler(map[string]Checker{"catalog": ok}, map[string]Checker{"typesense": down})
	r := gin.New()
	r.GET("/liveness", h.Liveness)
	r.GET("/readiness", h.Readiness)
	r.GET("/health", h.Health)

	w := perform(r, http.MethodGet, "/liveness", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = perform(r, http.MethodGet, "/readiness", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]string{"catalog": "ok"}, decode[HealthResponse](t, w).Checks)

	w = perform(r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	resp := decode[HealthResponse](t, w)
	assert.Equal(t, "unhealthy", resp.Status)
	assert.Equal(t, "failed", resp.Checks["typesense"])
	assert.Equal(t, "typesense: connection refused", resp.Error)
}

func TestStatsHandler(t *testing.T) {
	h := NewStatsHandler(staticStats{stats: models.RepoStats{Repository: "algoviz/algoviz", StargazersCount: 12}})
	r := gin.New()
	r.GET("/repo/stats", h.RepoStats)

	w := perform(r, http.MethodGet, "/repo/stats", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 12, decode[models.RepoStats](t, w).StargazersCount)
}
