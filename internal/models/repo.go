package models

// RepoStats são as estatísticas públicas do repositório exibidas na página de contribuição
type RepoStats struct {
	Repository      string `json:"repository"`
	StargazersCount int    `json:"stargazers_count"`
	ForksCount      int    `json:"forks_count"`
	OpenIssuesCount int    `json:"open_issues_count"`
	UpdatedAt       string `json:"updated_at,omitempty"`
}
