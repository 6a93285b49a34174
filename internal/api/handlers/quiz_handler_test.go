package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algoviz/algoviz-api/internal/models"
	"github.com/algoviz/algoviz-api/internal/services"
)

func quizRouter(t *testing.T) *gin.Engine {
	h := NewQuizHandler(services.NewQuizService(testCatalog(t)))
	r := gin.New()
	r.GET("/quiz/setup", h.Setup)
	r.POST("/quiz/sessions", h.CreateSession)
	return r
}

func TestQuizHandler_Setup(t *testing.T) {
	w := perform(quizRouter(t), http.MethodGet, "/quiz/setup", nil)
	require.Equal(t, http.StatusOK, w.Code)

	setup := decode[models.QuizSetupResponse](t, w)
	assert.Equal(t, models.TopicSummary{Name: "All", Questions: 2}, setup.Topics[0])
	assert.Equal(t, 50, setup.MaxQuestions)
}

func TestQuizHandler_CreateSession(t *testing.T) {
	r := quizRouter(t)

	w := perform(r, http.MethodPost, "/quiz/sessions", models.QuizSessionRequest{Topic: "All", Difficulty: "All", Count: 10})
	require.Equal(t, http.StatusCreated, w.Code)
	session := decode[models.QuizSessionResponse](t, w)
	assert.Len(t, session.Questions, 2)

	w = perform(r, http.MethodPost, "/quiz/sessions", models.QuizSessionRequest{Topic: "Graphs", Difficulty: "Medium", Count: 10})
	require.Equal(t, http.StatusCreated, w.Code)
	session = decode[models.QuizSessionResponse](t, w)
	require.Len(t, session.Questions, 1)
	assert.Equal(t, "q2", session.Questions[0].ID)

	w = perform(r, http.MethodPost, "/quiz/sessions", models.QuizSessionRequest{Topic: "All", Difficulty: "All", Count: 0})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = perform(r, http.MethodPost, "/quiz/sessions", models.QuizSessionRequest{Topic: "All", Difficulty: "Insane", Count: 5})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
