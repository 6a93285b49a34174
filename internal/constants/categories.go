package constants

// AllCategories é o valor que desliga o filtro de categoria
const AllCategories = "All"

// BlogCategories contém as categorias disponíveis para posts do blog
var BlogCategories = []string{
	"Sorting",
	"Searching",
	"Graphs",
	"Trees",
	"Dynamic Programming",
	"Data Structures",
	"Tutorials",
	"Announcements",
}

// QuizTopics contém os tópicos disponíveis na tela de configuração do quiz
var QuizTopics = []string{
	"Sorting",
	"Searching",
	"Graphs",
	"Trees",
	"Dynamic Programming",
	"Data Structures",
}

// QuizDifficulties contém os níveis de dificuldade das questões
var QuizDifficulties = []string{
	"Easy",
	"Medium",
	"Hard",
}

// Chaves fixas onde a sessão do usuário é persistida no cliente
const (
	SessionUserCookie  = "algoviz_user"
	SessionTokenCookie = "algoviz_token"
)
