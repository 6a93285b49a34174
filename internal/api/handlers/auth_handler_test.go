package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/algoviz/algoviz-api/internal/constants"
	middlewares "github.com/algoviz/algoviz-api/internal/middleware"
	"github.com/algoviz/algoviz-api/internal/models"
	"github.com/algoviz/algoviz-api/internal/services"
)

type fakeAuth struct {
	result *models.AuthResult
	err    error
	calls  int
}

func (f *fakeAuth) Signup(_ context.Context, name, email, _ string) (*models.AuthResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakeAuth) GoogleLogin(context.Context, string) (*models.AuthResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func authRouter(auth Authenticator) *gin.Engine {
	h := NewAuthHandler(auth, CookieOptions{MaxAge: time.Hour}, zap.NewNop())
	r := gin.New()
	r.Use(middlewares.SessionContext())
	r.POST("/auth/password-rules", h.PasswordRules)
	r.POST("/auth/signup", h.Signup)
	r.POST("/auth/google", h.GoogleLogin)
	r.GET("/auth/session", h.Session)
	r.DELETE("/auth/session", h.Logout)
	return r
}

func validSignup() models.SignupRequest {
	return models.SignupRequest{
		Name:            "Ada Lovelace",
		Email:           "ada@example.com",
		Password:        "Abc1234!",
		ConfirmPassword: "Abc1234!",
		AcceptTerms:     true,
	}
}

func cookieByName(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestAuthHandler_PasswordRules(t *testing.T) {
	r := authRouter(&fakeAuth{})

	w := perform(r, http.MethodPost, "/auth/password-rules", models.PasswordCheckRequest{Password: "abcdefgh"})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[models.PasswordCheckResponse](t, w)
	assert.Equal(t, models.PasswordRules{Length: true, Lowercase: true}, resp.Rules)
	assert.False(t, resp.Valid)

	w = perform(r, http.MethodPost, "/auth/password-rules", models.PasswordCheckRequest{Password: "Abc1234!"})
	assert.True(t, decode[models.PasswordCheckResponse](t, w).Valid)
}

func TestAuthHandler_SignupSuccessPersistsSession(t *testing.T) {
	auth := &fakeAuth{result: &models.AuthResult{
		User:  models.User{ID: "u1", Name: "Ada Lovelace", Email: "ada@example.com"},
		Token: "tok-123",
	}}
	r := authRouter(auth)

	w := perform(r, http.MethodPost, "/auth/signup", validSignup())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "tok-123", decode[models.AuthResult](t, w).Token)

	userCookie := cookieByName(w, constants.SessionUserCookie)
	tokenCookie := cookieByName(w, constants.SessionTokenCookie)
	require.NotNil(t, userCookie)
	require.NotNil(t, tokenCookie)
	assert.True(t, tokenCookie.HttpOnly)
	assert.Equal(t, 3600, tokenCookie.MaxAge)

	w = perform(r, http.MethodGet, "/auth/session", nil, userCookie, tokenCookie)
	session := decode[models.SessionResponse](t, w)
	assert.True(t, session.SignedIn)
	require.NotNil(t, session.User)
	assert.Equal(t, "ada@example.com", session.User.Email)
}

func TestAuthHandler_SignupValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.SignupRequest)
		field  string
	}{
		{"missing name", func(r *models.SignupRequest) { r.Name = "" }, "name"},
		{"missing email", func(r *models.SignupRequest) { r.Email = "" }, "email"},
		{"mismatched confirmation", func(r *models.SignupRequest) { r.ConfirmPassword = "Abc1234?" }, "confirm_password"},
		{"terms not accepted", func(r *models.SignupRequest) { r.AcceptTerms = false }, "accept_terms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &fakeAuth{}
			req := validSignup()
			tt.mutate(&req)

			w := perform(authRouter(auth), http.MethodPost, "/auth/signup", req)
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

			body := decode[struct {
				Error   string            `json:"error"`
				Details map[string]string `json:"details"`
			}](t, w)
			assert.Contains(t, body.Details, tt.field)
			assert.Zero(t, auth.calls, "formulário inválido não chega ao serviço")
		})
	}
}

func TestAuthHandler_SignupLeavesStrengthToBackend(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.SignupRequest)
	}{
		{"weak password", func(r *models.SignupRequest) { r.Password, r.ConfirmPassword = "abcdefgh", "abcdefgh" }},
		{"short password", func(r *models.SignupRequest) { r.Password, r.ConfirmPassword = "abc", "abc" }},
		{"unusual email", func(r *models.SignupRequest) { r.Email = "ada-at-example" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &fakeAuth{result: &models.AuthResult{
				User:  models.User{ID: "u1", Name: "Ada Lovelace", Email: "ada@example.com"},
				Token: "tok-123",
			}}
			req := validSignup()
			tt.mutate(&req)

			w := perform(authRouter(auth), http.MethodPost, "/auth/signup", req)
			assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
			assert.Equal(t, 1, auth.calls, "confirmação e aceite ok: o serviço decide")
		})
	}
}

func TestAuthHandler_WeakPasswordRejectedByBackend(t *testing.T) {
	auth := &fakeAuth{err: &services.AuthError{Status: http.StatusBadRequest, Message: "Password too weak"}}
	req := validSignup()
	req.Password, req.ConfirmPassword = "abcdefgh", "abcdefgh"

	w := perform(authRouter(auth), http.MethodPost, "/auth/signup", req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Password too weak"}`, w.Body.String())
	assert.Equal(t, 1, auth.calls)
}

func TestAuthHandler_BackendRejectionMessageIsPreserved(t *testing.T) {
	auth := &fakeAuth{err: &services.AuthError{Status: http.StatusConflict, Message: "Email already in use"}}

	w := perform(authRouter(auth), http.MethodPost, "/auth/signup", validSignup())
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, map[string]string{"error": "Email already in use"}, decode[map[string]string](t, w))
	assert.Nil(t, cookieByName(w, constants.SessionTokenCookie))
}

func TestAuthHandler_BackendRejectionThroughHTTPClient(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"Email already in use"}`))
	}))
	defer backend.Close()

	auth := services.NewAuthService(backend.URL, time.Second, zap.NewNop())
	w := perform(authRouter(auth), http.MethodPost, "/auth/signup", validSignup())

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"Email already in use"}`, w.Body.String())
}

func TestAuthHandler_BackendUnavailable(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"network", fmt.Errorf("%w: connection refused", services.ErrAuthUnavailable)},
		{"server error", &services.AuthError{Status: http.StatusInternalServerError, Message: "db down"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(authRouter(&fakeAuth{err: tt.err}), http.MethodPost, "/auth/google", models.GoogleLoginRequest{Credential: "a.b.c"})
			assert.Equal(t, http.StatusBadGateway, w.Code)
			assert.NotEmpty(t, decode[map[string]string](t, w)["error"])
		})
	}
}

func TestAuthHandler_GoogleLoginRequiresCredential(t *testing.T) {
	w := perform(authRouter(&fakeAuth{}), http.MethodPost, "/auth/google", map[string]string{})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestAuthHandler_SessionAnonymousAndLogout(t *testing.T) {
	r := authRouter(&fakeAuth{})

	w := perform(r, http.MethodGet, "/auth/session", nil)
	assert.Equal(t, models.SessionResponse{SignedIn: false}, decode[models.SessionResponse](t, w))

	w = perform(r, http.MethodDelete, "/auth/session", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	cleared := cookieByName(w, constants.SessionTokenCookie)
	require.NotNil(t, cleared)
	assert.Less(t, cleared.MaxAge, 0)
}
