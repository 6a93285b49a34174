package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/algoviz/algoviz-api/internal/constants"
	"github.com/algoviz/algoviz-api/internal/models"
	"github.com/algoviz/algoviz-api/internal/search"
	"github.com/algoviz/algoviz-api/internal/utils"
)

const maxQuizQuestions = 50

// QuizService monta a configuração e as sessões do quiz a partir do catálogo
type QuizService struct {
	catalog *Catalog
}

func NewQuizService(catalog *Catalog) *QuizService {
	return &QuizService{catalog: catalog}
}

// Setup lista tópicos (com "All" primeiro) e dificuldades disponíveis
func (s *QuizService) Setup() (*models.QuizSetupResponse, error) {
	coll, err := s.catalog.Collection(models.KindQuiz)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, item := range coll.Items {
		counts[item.Category]++
	}

	topics := make([]models.TopicSummary, 0, len(constants.QuizTopics)+1)
	topics = append(topics, models.TopicSummary{Name: constants.AllCategories, Questions: len(coll.Items)})
	for _, topic := range constants.QuizTopics {
		topics = append(topics, models.TopicSummary{Name: topic, Questions: counts[topic]})
	}

	difficulties := append([]string{constants.AllCategories}, constants.QuizDifficulties...)
	return &models.QuizSetupResponse{
		Topics:       topics,
		Difficulties: difficulties,
		MaxQuestions: maxQuizQuestions,
	}, nil
}

// NewSession seleciona as questões do tópico e dificuldade pedidos, na ordem do
// catálogo. "All" em qualquer um dos dois não restringe aquele critério.
func (s *QuizService) NewSession(req models.QuizSessionRequest) (*models.QuizSessionResponse, error) {
	coll, err := s.catalog.Collection(models.KindQuiz)
	if err != nil {
		return nil, err
	}

	params, err := search.ParseParams(req.Topic, "", constants.QuizTopics)
	if err != nil {
		return nil, err
	}

	difficulty := constants.AllCategories
	if d := strings.TrimSpace(req.Difficulty); d != "" && !strings.EqualFold(d, constants.AllCategories) {
		resolved, ok := utils.ResolveCategory(d, constants.QuizDifficulties)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDifficulty, d)
		}
		difficulty = resolved
	}

	byTopic := search.Filter(coll.Items, params)
	questions := make([]models.Item, 0, len(byTopic))
	for _, item := range byTopic {
		if difficulty == constants.AllCategories || item.Difficulty == difficulty {
			questions = append(questions, item)
		}
	}

	available := len(questions)
	count := req.Count
	if count <= 0 || count > maxQuizQuestions {
		count = maxQuizQuestions
	}
	if len(questions) > count {
		questions = questions[:count]
	}

	return &models.QuizSessionResponse{
		ID:         uuid.NewString(),
		Topic:      params.Category,
		Difficulty: difficulty,
		Questions:  questions,
		Available:  available,
	}, nil
}
