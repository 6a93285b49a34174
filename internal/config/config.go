// Package config gerencia configurações da aplicação via variáveis de ambiente.
//
// # Variáveis de Ambiente
//
// ## Servidor
//   - SERVER_PORT: Porta HTTP (default: 8080)
//   - GIN_MODE: debug, release ou test (default: release)
//   - LOG_LEVEL: debug, info, warn, error (default: info)
//   - LOG_FORMAT: json ou console (default: json)
//   - CORS_ALLOWED_ORIGINS: Origens do front-end separadas por vírgula, com cookies (default: http://localhost:5173).
//     "*" libera qualquer origem, mas sem credenciais
//
// ## Catálogo
//   - CATALOG_SOURCE: typesense ou seed (default: seed)
//   - CATALOG_SEED_PATH: Arquivo TOML com posts e questões (default: data/seed.toml)
//   - CATALOG_WATCH: Recarrega o catálogo quando o arquivo seed muda (default: false)
//   - CATALOG_LOAD_DELAY: Atraso simulado no carregamento, ex: 500ms (default: 0)
//   - BLOG_COLLECTION: Collection Typesense dos posts (default: blog_posts)
//   - QUIZ_COLLECTION: Collection Typesense das questões (default: quiz_questions)
//
// ## Typesense
//   - TYPESENSE_HOST: Host do servidor Typesense (default: localhost)
//   - TYPESENSE_PORT: Porta do servidor (default: 8108)
//   - TYPESENSE_API_KEY: Chave de API do Typesense
//   - TYPESENSE_PROTOCOL: Protocolo http/https (default: http)
//
// ## Views e listagem
//   - VIEW_IDLE_TTL: Tempo sem uso até uma view expirar (default: 30m)
//   - VIEW_MAX_SESSIONS: Máximo de views simultâneas (default: 10000)
//   - DEFAULT_PAGE_SIZE: Itens por página quando não informado (default: 6)
//   - LISTING_CACHE_TTL: TTL do cache da listagem sem estado (default: 1m)
//   - LISTING_CACHE_MAX_SIZE: Entradas máximas do cache da listagem (default: 256)
//
// ## Autenticação
//   - AUTH_SERVICE_URL: URL base do serviço de autenticação (obrigatória)
//   - AUTH_TIMEOUT: Timeout das chamadas ao serviço (default: 10s)
//   - COOKIE_DOMAIN: Domínio dos cookies de sessão (default: vazio)
//   - COOKIE_SECURE: Cookies apenas via HTTPS (default: true)
//   - SESSION_MAX_AGE: Validade da sessão persistida (default: 168h)
//
// ## GitHub
//   - GITHUB_OWNER: Dono do repositório exibido na página de contribuição (default: algoviz)
//   - GITHUB_REPO: Nome do repositório (default: algoviz)
//   - GITHUB_TOKEN: Token opcional para aumentar o rate limit
//   - REPO_STATS_TTL: Tempo de cache das estatísticas (default: 10m)
//
// ## Tracing
//   - TRACING_ENABLED: Habilita exportação OTLP (default: false)
//   - TRACING_ENDPOINT: Endpoint gRPC do coletor (default: localhost:4317)
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	SourceTypesense = "typesense"
	SourceSeed      = "seed"
)

type Config struct {
	ServerPort string
	GinMode    string
	LogLevel   string
	LogFormat  string

	CORSAllowedOrigins []string

	// Catalog configuration
	CatalogSource    string
	CatalogSeedPath  string
	CatalogWatch     bool
	CatalogLoadDelay time.Duration
	BlogCollection   string
	QuizCollection   string

	TypesenseHost     string
	TypesensePort     string
	TypesenseAPIKey   string
	TypesenseProtocol string

	// View sessions and stateless listing
	ViewIdleTTL         time.Duration
	ViewMaxSessions     int
	DefaultPageSize     int
	ListingCacheTTL     time.Duration
	ListingCacheMaxSize int

	// Authentication backend and session cookies
	AuthServiceURL string
	AuthTimeout    time.Duration
	CookieDomain   string
	CookieSecure   bool
	SessionMaxAge  time.Duration

	// Repository statistics
	GitHubOwner  string
	GitHubRepo   string
	GitHubToken  string
	RepoStatsTTL time.Duration

	// Tracing configuration
	TracingEnabled  bool
	TracingEndpoint string
}

// LoadConfig lê o .env (se existir) e as variáveis de ambiente e valida o resultado
func LoadConfig() (*Config, error) {
	cfg := Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load lê a configuração sem validar; usado por ferramentas que não sobem o servidor
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		GinMode:    getEnv("GIN_MODE", "release"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogFormat:  getEnv("LOG_FORMAT", "json"),

		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),

		CatalogSource:    strings.ToLower(getEnv("CATALOG_SOURCE", SourceSeed)),
		CatalogSeedPath:  getEnv("CATALOG_SEED_PATH", "data/seed.toml"),
		CatalogWatch:     getEnv("CATALOG_WATCH", "false") == "true",
		CatalogLoadDelay: getEnvDuration("CATALOG_LOAD_DELAY", 0),
		BlogCollection:   getEnv("BLOG_COLLECTION", "blog_posts"),
		QuizCollection:   getEnv("QUIZ_COLLECTION", "quiz_questions"),

		TypesenseHost:     getEnv("TYPESENSE_HOST", "localhost"),
		TypesensePort:     getEnv("TYPESENSE_PORT", "8108"),
		TypesenseAPIKey:   getEnv("TYPESENSE_API_KEY", ""),
		TypesenseProtocol: getEnv("TYPESENSE_PROTOCOL", "http"),

		ViewIdleTTL:         getEnvDuration("VIEW_IDLE_TTL", 30*time.Minute),
		ViewMaxSessions:     getEnvInt("VIEW_MAX_SESSIONS", 10000),
		DefaultPageSize:     getEnvInt("DEFAULT_PAGE_SIZE", 6),
		ListingCacheTTL:     getEnvDuration("LISTING_CACHE_TTL", time.Minute),
		ListingCacheMaxSize: getEnvInt("LISTING_CACHE_MAX_SIZE", 256),

		AuthServiceURL: strings.TrimRight(getEnv("AUTH_SERVICE_URL", ""), "/"),
		AuthTimeout:    getEnvDuration("AUTH_TIMEOUT", 10*time.Second),
		CookieDomain:   getEnv("COOKIE_DOMAIN", ""),
		CookieSecure:   getEnv("COOKIE_SECURE", "true") == "true",
		SessionMaxAge:  getEnvDuration("SESSION_MAX_AGE", 7*24*time.Hour),

		GitHubOwner:  getEnv("GITHUB_OWNER", "algoviz"),
		GitHubRepo:   getEnv("GITHUB_REPO", "algoviz"),
		GitHubToken:  getEnv("GITHUB_TOKEN", ""),
		RepoStatsTTL: getEnvDuration("REPO_STATS_TTL", 10*time.Minute),

		TracingEnabled:  getEnv("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4317"),
	}
}

// Validate verifica combinações inválidas de configuração
func (c *Config) Validate() error {
	if c.AuthServiceURL == "" {
		return fmt.Errorf("AUTH_SERVICE_URL environment variable is required but not set")
	}
	if c.CatalogSource != SourceSeed && c.CatalogSource != SourceTypesense {
		return fmt.Errorf("CATALOG_SOURCE must be %q or %q, got %q", SourceSeed, SourceTypesense, c.CatalogSource)
	}
	if c.CatalogSource == SourceSeed && c.CatalogSeedPath == "" {
		return fmt.Errorf("CATALOG_SEED_PATH is required when CATALOG_SOURCE=%s", SourceSeed)
	}
	if c.DefaultPageSize < 1 || c.DefaultPageSize > 100 {
		return fmt.Errorf("DEFAULT_PAGE_SIZE must be between 1 and 100, got %d", c.DefaultPageSize)
	}
	if c.ViewMaxSessions < 1 {
		return fmt.Errorf("VIEW_MAX_SESSIONS must be positive, got %d", c.ViewMaxSessions)
	}
	return nil
}

// TypesenseURL monta a URL do servidor Typesense
func (c *Config) TypesenseURL() string {
	return fmt.Sprintf("%s://%s:%s", c.TypesenseProtocol, c.TypesenseHost, c.TypesensePort)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvList(key, defaultValue string) []string {
	var values []string
	for _, v := range strings.Split(getEnv(key, defaultValue), ",") {
		if v = strings.TrimRight(strings.TrimSpace(v), "/"); v != "" {
			values = append(values, v)
		}
	}
	return values
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
