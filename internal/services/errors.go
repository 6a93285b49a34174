package services

import "errors"

var (
	ErrCatalogNotLoaded  = errors.New("catálogo ainda não carregado")
	ErrInvalidKind       = errors.New("coleção inválida")
	ErrViewNotFound      = errors.New("view não encontrada")
	ErrViewLimit         = errors.New("limite de views simultâneas atingido")
	ErrItemNotFound      = errors.New("item não encontrado")
	ErrUnknownDifficulty = errors.New("dificuldade desconhecida")
	ErrAuthUnavailable   = errors.New("serviço de autenticação indisponível")
	ErrInvalidCredential = errors.New("credencial inválida")
)

// AuthError é uma rejeição do serviço de autenticação.
// Message é a mensagem legível devolvida pelo backend e exibida ao usuário sem alterações.
type AuthError struct {
	Status  int
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}
