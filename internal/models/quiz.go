package models

// TopicSummary é um tópico do quiz com a quantidade de questões
type TopicSummary struct {
	Name      string `json:"name"`
	Questions int    `json:"questions"`
}

// QuizSetupResponse alimenta a tela de configuração do quiz
type QuizSetupResponse struct {
	Topics       []TopicSummary `json:"topics"`
	Difficulties []string       `json:"difficulties"`
	MaxQuestions int            `json:"max_questions"`
}

// QuizSessionRequest é a configuração escolhida pelo usuário
type QuizSessionRequest struct {
	Topic      string `json:"topic" validate:"required"`
	Difficulty string `json:"difficulty" validate:"required"`
	Count      int    `json:"count" validate:"min=1,max=50"`
}

// QuizSessionResponse contém as questões selecionadas
type QuizSessionResponse struct {
	ID         string `json:"id"`
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
	Questions  []Item `json:"questions"`
	Available  int    `json:"available"`
}
