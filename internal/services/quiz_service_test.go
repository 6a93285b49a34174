package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algoviz/algoviz-api/internal/constants"
	"github.com/algoviz/algoviz-api/internal/models"
	"github.com/algoviz/algoviz-api/internal/search"
)

func TestQuizService_Setup(t *testing.T) {
	svc := NewQuizService(loadedCatalog(t))

	setup, err := svc.Setup()
	require.NoError(t, err)

	require.Len(t, setup.Topics, len(constants.QuizTopics)+1)
	assert.Equal(t, models.TopicSummary{Name: constants.AllCategories, Questions: 4}, setup.Topics[0])
	assert.Equal(t, models.TopicSummary{Name: "Sorting", Questions: 2}, setup.Topics[1])
	assert.Equal(t, []string{"All", "Easy", "Medium", "Hard"}, setup.Difficulties)
}

func TestQuizService_NewSession(t *testing.T) {
	svc := NewQuizService(loadedCatalog(t))

	tests := []struct {
		name      string
		req       models.QuizSessionRequest
		want      []string
		available int
	}{
		{
			name:      "all topics and difficulties",
			req:       models.QuizSessionRequest{Topic: "All", Difficulty: "All", Count: 10},
			want:      []string{"q1", "q2", "q3", "q4"},
			available: 4,
		},
		{
			name:      "topic only",
			req:       models.QuizSessionRequest{Topic: "sorting", Difficulty: "All", Count: 10},
			want:      []string{"q1", "q2"},
			available: 2,
		},
		{
			name:      "difficulty only",
			req:       models.QuizSessionRequest{Topic: "All", Difficulty: "easy", Count: 10},
			want:      []string{"q1", "q3"},
			available: 2,
		},
		{
			name:      "truncated to count",
			req:       models.QuizSessionRequest{Topic: "All", Difficulty: "All", Count: 3},
			want:      []string{"q1", "q2", "q3"},
			available: 4,
		},
		{
			name:      "no match",
			req:       models.QuizSessionRequest{Topic: "Trees", Difficulty: "Hard", Count: 5},
			want:      []string{},
			available: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := svc.NewSession(tt.req)
			require.NoError(t, err)
			assert.NotEmpty(t, session.ID)
			assert.Equal(t, tt.want, itemIDs(session.Questions))
			assert.Equal(t, tt.available, session.Available)
		})
	}
}

func TestQuizService_NewSessionErrors(t *testing.T) {
	svc := NewQuizService(loadedCatalog(t))

	_, err := svc.NewSession(models.QuizSessionRequest{Topic: "Cooking", Difficulty: "All", Count: 5})
	assert.ErrorIs(t, err, search.ErrUnknownCategory)

	_, err = svc.NewSession(models.QuizSessionRequest{Topic: "All", Difficulty: "Impossible", Count: 5})
	assert.ErrorIs(t, err, ErrUnknownDifficulty)
}
