package models

// PasswordRules indica quais regras de senha foram satisfeitas
type PasswordRules struct {
	Length      bool `json:"length"`
	Uppercase   bool `json:"uppercase"`
	Lowercase   bool `json:"lowercase"`
	Number      bool `json:"number"`
	SpecialChar bool `json:"special_char"`
}

// Satisfied retorna true quando todas as regras passam
func (r PasswordRules) Satisfied() bool {
	return r.Length && r.Uppercase && r.Lowercase && r.Number && r.SpecialChar
}

// PasswordCheckRequest é o corpo de POST /auth/password-rules
type PasswordCheckRequest struct {
	Password string `json:"password"`
}

// PasswordCheckResponse retorna as flags de regra e o agregado
type PasswordCheckResponse struct {
	Rules PasswordRules `json:"rules"`
	Valid bool          `json:"valid"`
}

// SignupRequest é o formulário de cadastro.
// Só a confirmação da senha e o aceite dos termos bloqueiam o envio; força da
// senha e formato do email ficam com o serviço de autenticação.
type SignupRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	AcceptTerms     bool   `json:"accept_terms" validate:"eq=true"`
}

// GoogleLoginRequest carrega a credencial opaca do provedor de identidade
type GoogleLoginRequest struct {
	Credential string `json:"credential" validate:"required"`
}

// User é o perfil retornado pelo serviço de autenticação
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture,omitempty"`
}

// AuthResult é a resposta de sucesso do serviço de autenticação
type AuthResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// SessionResponse informa se existe sessão persistida no cliente
type SessionResponse struct {
	SignedIn bool  `json:"signed_in"`
	User     *User `json:"user,omitempty"`
}

// IdentityClaims são os claims decodificados da credencial do provedor.
// Usados apenas para exibição e log, nunca para autorização.
type IdentityClaims struct {
	Issuer        string `json:"iss"`
	Subject       string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
	ExpiresAt     int64  `json:"exp"`
}
