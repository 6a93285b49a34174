package models

// CollectionKind identifica qual coleção do catálogo uma view exibe
type CollectionKind string

const (
	KindBlog CollectionKind = "blog"
	KindQuiz CollectionKind = "quiz"
)

// Valid informa se k é uma coleção conhecida
func (k CollectionKind) Valid() bool {
	return k == KindBlog || k == KindQuiz
}

// Item é um registro exibível (post do blog ou questão de quiz).
// Imutável depois de carregado no catálogo.
type Item struct {
	ID          string   `json:"id" toml:"id"`
	Slug        string   `json:"slug,omitempty" toml:"slug"`
	Title       string   `json:"title" toml:"title"`
	Category    string   `json:"category" toml:"category"`
	Tags        []string `json:"tags" toml:"tags"`
	Description string   `json:"description" toml:"description"`
	Body        string   `json:"body,omitempty" toml:"body"`
	Author      string   `json:"author,omitempty" toml:"author"`
	Date        string   `json:"date,omitempty" toml:"date"`
	ReadMinutes int      `json:"read_minutes,omitempty" toml:"read_minutes"`
	Link        string   `json:"link,omitempty" toml:"link"`

	// Campos específicos de questões de quiz
	Difficulty  string   `json:"difficulty,omitempty" toml:"difficulty"`
	Options     []string `json:"options,omitempty" toml:"options"`
	Answer      *int     `json:"answer,omitempty" toml:"answer"`
	Explanation string   `json:"explanation,omitempty" toml:"explanation"`
}

// SeedFile é o formato do arquivo TOML usado para popular o catálogo
type SeedFile struct {
	Blog []Item `toml:"blog"`
	Quiz []Item `toml:"quiz"`
}

// CategoryCount representa uma categoria com a quantidade de itens
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
