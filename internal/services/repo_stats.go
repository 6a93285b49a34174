package services

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/go-github/v73/github"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"

	"github.com/algoviz/algoviz-api/internal/models"
)

// NewGitHubClient cria o cliente da API do GitHub, autenticado quando há token
func NewGitHubClient(token string) *github.Client {
	if token == "" {
		return github.NewClient(nil)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return github.NewClient(oauth2.NewClient(context.Background(), ts))
}

// RepoStatsService busca as estatísticas do repositório para a página de contribuição.
// Falhas nunca chegam ao usuário: retorna o último valor conhecido ou zeros.
type RepoStatsService struct {
	client *github.Client
	owner  string
	repo   string
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time

	group     singleflight.Group
	mu        sync.RWMutex
	cached    *models.RepoStats
	fetchedAt time.Time
}

// NewRepoStatsService cria o serviço com cache de ttl
func NewRepoStatsService(client *github.Client, owner, repo string, ttl time.Duration, logger *zap.Logger) *RepoStatsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RepoStatsService{
		client: client,
		owner:  owner,
		repo:   repo,
		ttl:    ttl,
		logger: logger.Named("repo_stats"),
		now:    time.Now,
	}
}

// Stats retorna as estatísticas, consultando o GitHub quando o cache expirou.
// Chamadas concorrentes compartilham a mesma consulta.
func (s *RepoStatsService) Stats(ctx context.Context) models.RepoStats {
	if stats, ok := s.fresh(); ok {
		return stats
	}

	v, err, _ := s.group.Do("stats", func() (any, error) {
		return s.fetch(ctx)
	})
	if err != nil {
		s.logger.Warn("failed to fetch repository stats", zap.String("repo", s.fullName()), zap.Error(err))
		return s.fallback()
	}
	return v.(models.RepoStats)
}

func (s *RepoStatsService) fresh() (models.RepoStats, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cached == nil || s.now().Sub(s.fetchedAt) >= s.ttl {
		return models.RepoStats{}, false
	}
	return *s.cached, true
}

func (s *RepoStatsService) fallback() models.RepoStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cached != nil {
		return *s.cached
	}
	return models.RepoStats{Repository: s.fullName()}
}

func (s *RepoStatsService) fetch(ctx context.Context) (models.RepoStats, error) {
	repo, resp, err := s.client.Repositories.Get(ctx, s.owner, s.repo)
	if err != nil {
		return models.RepoStats{}, err
	}
	if resp != nil && resp.StatusCode != http.StatusOK {
		return models.RepoStats{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	now := s.now()
	stats := models.RepoStats{
		Repository:      repo.GetFullName(),
		StargazersCount: repo.GetStargazersCount(),
		ForksCount:      repo.GetForksCount(),
		OpenIssuesCount: repo.GetOpenIssuesCount(),
		UpdatedAt:       now.UTC().Format(time.RFC3339),
	}
	if stats.Repository == "" {
		stats.Repository = s.fullName()
	}

	s.mu.Lock()
	s.cached = &stats
	s.fetchedAt = now
	s.mu.Unlock()
	return stats, nil
}

func (s *RepoStatsService) fullName() string {
	return s.owner + "/" + s.repo
}
