package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/algoviz/algoviz-api/internal/models"
	"github.com/algoviz/algoviz-api/internal/services"
)

type QuizHandler struct {
	quiz      *services.QuizService
	validator *validator.Validate
}

func NewQuizHandler(quiz *services.QuizService) *QuizHandler {
	return &QuizHandler{
		quiz:      quiz,
		validator: newValidator(),
	}
}

// Setup godoc
// @Summary Configuração do quiz
// @Description Lista tópicos e dificuldades com a quantidade de questões disponíveis
// @Tags quiz
// @Produce json
// @Success 200 {object} models.QuizSetupResponse
// @Failure 503 {object} map[string]string
// @Router /api/v1/quiz/setup [get]
func (h *QuizHandler) Setup(c *gin.Context) {
	setup, err := h.quiz.Setup()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, setup)
}

// CreateSession godoc
// @Summary Inicia um quiz
// @Description Seleciona as questões do tópico e dificuldade na ordem do catálogo. "All" em ambos não filtra nada.
// @Tags quiz
// @Accept json
// @Produce json
// @Param session body models.QuizSessionRequest true "Tópico, dificuldade e quantidade"
// @Success 201 {object} models.QuizSessionResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Router /api/v1/quiz/sessions [post]
func (h *QuizHandler) CreateSession(c *gin.Context) {
	var request models.QuizSessionRequest
	if !bindAndValidate(c, h.validator, &request) {
		return
	}

	session, err := h.quiz.NewSession(request)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}
