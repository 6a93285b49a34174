package handlers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
)

// Checker verifica uma dependência
type Checker func(ctx context.Context) error

// HealthHandler gerencia os endpoints de health check
type HealthHandler struct {
	readiness map[string]Checker
	health    map[string]Checker
}

// NewHealthHandler recebe as checagens de readiness (obrigatórias para receber
// tráfego) e as checagens extras reportadas apenas em /health
func NewHealthHandler(readiness, extra map[string]Checker) *HealthHandler {
	health := make(map[string]Checker, len(readiness)+len(extra))
	for name, check := range readiness {
		health[name] = check
	}
	for name, check := range extra {
		health[name] = check
	}
	return &HealthHandler{readiness: readiness, health: health}
}

// HealthResponse representa a resposta do health check
type HealthResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks,omitempty"`
	Error     string            `json:"error,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

// Liveness godoc
// @Summary Liveness probe endpoint
// @Description Verifica se a aplicação está viva (sem checagem de dependências externas)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /liveness [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "alive",
		Timestamp: time.Now().Unix(),
	})
}

// Readiness godoc
// @Summary Readiness probe endpoint
// @Description Verifica se a aplicação está pronta para receber tráfego (catálogo carregado)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readiness [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	c.JSON(h.run(ctx, h.readiness, "ready", "not_ready"))
}

// Health godoc
// @Summary Comprehensive health check endpoint
// @Description Verifica a saúde completa da aplicação (para monitoramento externo de uptime)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	c.JSON(h.run(ctx, h.health, "healthy", "unhealthy"))
}

func (h *HealthHandler) run(ctx context.Context, checks map[string]Checker, okStatus, failStatus string) (int, HealthResponse) {
	response := HealthResponse{
		Status:    okStatus,
		Checks:    make(map[string]string, len(checks)),
		Timestamp: time.Now().Unix(),
	}

	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := checks[name](ctx); err != nil {
			response.Checks[name] = "failed"
			response.Status = failStatus
			if response.Error == "" {
				response.Error = name + ": " + err.Error()
			}
			continue
		}
		response.Checks[name] = "ok"
	}

	if response.Status == failStatus {
		return http.StatusServiceUnavailable, response
	}
	return http.StatusOK, response
}
