package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/algoviz/algoviz-api/internal/constants"
	middlewares "github.com/algoviz/algoviz-api/internal/middleware"
	"github.com/algoviz/algoviz-api/internal/models"
	"github.com/algoviz/algoviz-api/internal/services"
)

// Authenticator é o serviço de autenticação externo
type Authenticator interface {
	Signup(ctx context.Context, name, email, password string) (*models.AuthResult, error)
	GoogleLogin(ctx context.Context, credential string) (*models.AuthResult, error)
}

// CookieOptions controla os cookies onde a sessão é persistida
type CookieOptions struct {
	Domain string
	Secure bool
	MaxAge time.Duration
}

type AuthHandler struct {
	auth      Authenticator
	validator *validator.Validate
	cookies   CookieOptions
	logger    *zap.Logger
}

func NewAuthHandler(auth Authenticator, cookies CookieOptions, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{
		auth:      auth,
		validator: newValidator(),
		cookies:   cookies,
		logger:    logger.Named("auth_handler"),
	}
}

// PasswordRules godoc
// @Summary Avalia as regras de senha
// @Description Retorna, para cada regra, se a senha a satisfaz. As regras são independentes entre si.
// @Tags auth
// @Accept json
// @Produce json
// @Param password body models.PasswordCheckRequest true "Senha digitada"
// @Success 200 {object} models.PasswordCheckResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/auth/password-rules [post]
func (h *AuthHandler) PasswordRules(c *gin.Context) {
	var request models.PasswordCheckRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos: " + err.Error()})
		return
	}

	rules := services.CheckPasswordRules(request.Password)
	c.JSON(http.StatusOK, models.PasswordCheckResponse{Rules: rules, Valid: rules.Satisfied()})
}

// Signup godoc
// @Summary Cadastro de usuário
// @Description Valida o formulário e cria a conta no serviço de autenticação. Em caso de sucesso a sessão é gravada em cookies.
// @Description Rejeições do serviço (ex: 409 "Email already in use") são repassadas com o status e a mensagem originais.
// @Tags auth
// @Accept json
// @Produce json
// @Param signup body models.SignupRequest true "Formulário de cadastro"
// @Success 201 {object} models.AuthResult
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]interface{} "Erros por campo"
// @Failure 502 {object} map[string]string
// @Router /api/v1/auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var request models.SignupRequest
	if !bindAndValidate(c, h.validator, &request) {
		return
	}

	result, err := h.auth.Signup(c.Request.Context(), request.Name, request.Email, request.Password)
	if err != nil {
		h.respondAuthError(c, err)
		return
	}

	h.persistSession(c, result)
	c.JSON(http.StatusCreated, result)
}

// GoogleLogin godoc
// @Summary Login com Google
// @Description Envia a credencial do provedor de identidade ao serviço de autenticação e grava a sessão em cookies
// @Tags auth
// @Accept json
// @Produce json
// @Param login body models.GoogleLoginRequest true "Credencial do provedor"
// @Success 200 {object} models.AuthResult
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Failure 502 {object} map[string]string
// @Router /api/v1/auth/google [post]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var request models.GoogleLoginRequest
	if !bindAndValidate(c, h.validator, &request) {
		return
	}

	result, err := h.auth.GoogleLogin(c.Request.Context(), request.Credential)
	if err != nil {
		h.respondAuthError(c, err)
		return
	}

	h.persistSession(c, result)
	c.JSON(http.StatusOK, result)
}

// Session godoc
// @Summary Sessão atual
// @Description Informa se existe sessão persistida e retorna o usuário
// @Tags auth
// @Produce json
// @Success 200 {object} models.SessionResponse
// @Router /api/v1/auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	user := middlewares.GetSessionUser(c)
	c.JSON(http.StatusOK, models.SessionResponse{SignedIn: user != nil, User: user})
}

// Logout godoc
// @Summary Encerra a sessão
// @Description Remove os cookies de sessão
// @Tags auth
// @Success 204
// @Router /api/v1/auth/session [delete]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constants.SessionUserCookie, "", -1, "/", h.cookies.Domain, h.cookies.Secure, false)
	c.SetCookie(constants.SessionTokenCookie, "", -1, "/", h.cookies.Domain, h.cookies.Secure, true)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) persistSession(c *gin.Context, result *models.AuthResult) {
	encoded, err := middlewares.EncodeSessionUser(result.User)
	if err != nil {
		h.logger.Warn("could not encode session user", zap.Error(err))
		return
	}

	maxAge := int(h.cookies.MaxAge / time.Second)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constants.SessionUserCookie, encoded, maxAge, "/", h.cookies.Domain, h.cookies.Secure, false)
	c.SetCookie(constants.SessionTokenCookie, result.Token, maxAge, "/", h.cookies.Domain, h.cookies.Secure, true)
}

// respondAuthError repassa rejeições 4xx com a mensagem do serviço; o resto vira 502
func (h *AuthHandler) respondAuthError(c *gin.Context, err error) {
	_ = c.Error(err)

	if authErr, ok := services.IsAuthRejection(err); ok {
		c.JSON(authErr.Status, gin.H{"error": authErr.Message})
		return
	}

	message := services.ErrAuthUnavailable.Error()
	var authErr *services.AuthError
	if errors.As(err, &authErr) {
		message = authErr.Message
	}
	h.logger.Error("auth request failed", zap.Error(err))
	c.JSON(http.StatusBadGateway, gin.H{"error": message})
}
