package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/algoviz/algoviz-api/internal/models"
)

const maxAuthResponseSize = 1 << 20

// AuthService é o cliente do serviço de autenticação externo
type AuthService struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewAuthService cria o cliente com timeout por requisição
func NewAuthService(baseURL string, timeout time.Duration, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger.Named("auth"),
	}
}

// Signup cria a conta no serviço de autenticação
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (*models.AuthResult, error) {
	return s.post(ctx, "/auth/signup", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})
}

// GoogleLogin troca a credencial do provedor de identidade por uma sessão
func (s *AuthService) GoogleLogin(ctx context.Context, credential string) (*models.AuthResult, error) {
	if claims, err := DecodeCredential(credential); err != nil {
		s.logger.Warn("could not decode identity credential", zap.Error(err))
	} else {
		s.logger.Info("identity provider login",
			zap.String("email", claims.Email),
			zap.String("name", claims.Name),
			zap.Bool("email_verified", claims.EmailVerified),
		)
	}

	return s.post(ctx, "/auth/google", map[string]string{"credential": credential})
}

func (s *AuthService) post(ctx context.Context, path string, payload any) (*models.AuthResult, error) {
	ctx, span := otel.Tracer("auth").Start(ctx, "auth"+strings.ReplaceAll(path, "/", "."))
	defer span.End()

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar requisição: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("erro ao montar requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		s.logger.Error("auth service request failed", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrAuthUnavailable, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxAuthResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: erro ao ler resposta: %v", ErrAuthUnavailable, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		authErr := &AuthError{Status: resp.StatusCode, Message: errorMessage(raw)}
		if authErr.Message == "" {
			authErr.Message = http.StatusText(resp.StatusCode)
		}
		span.SetStatus(codes.Error, authErr.Message)
		s.logger.Info("auth service rejected request",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", authErr.Message),
		)
		return nil, authErr
	}

	var result models.AuthResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("%w: resposta inválida: %v", ErrAuthUnavailable, err)
	}
	if result.Token == "" {
		return nil, fmt.Errorf("%w: resposta sem token", ErrAuthUnavailable)
	}
	return &result, nil
}

// errorMessage extrai a mensagem de erro dos formatos {message} ou {error}
func errorMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}

// IsAuthRejection informa se err é uma rejeição 4xx do backend
func IsAuthRejection(err error) (*AuthError, bool) {
	var authErr *AuthError
	if errors.As(err, &authErr) && authErr.Status < http.StatusInternalServerError {
		return authErr, true
	}
	return nil, false
}
