package middlewares

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/algoviz/algoviz-api/internal/constants"
	"github.com/algoviz/algoviz-api/internal/models"
)

const (
	SessionUserKey  = "session_user"
	SessionTokenKey = "session_token"
)

// SessionContext lê a sessão persistida nos cookies e a coloca no contexto.
// Cookies ausentes ou corrompidos são tratados como usuário anônimo.
func SessionContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(constants.SessionTokenCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}

		raw, err := c.Cookie(constants.SessionUserCookie)
		if err != nil {
			c.Next()
			return
		}
		user, err := DecodeSessionUser(raw)
		if err != nil {
			c.Next()
			return
		}

		c.Set(SessionUserKey, user)
		c.Set(SessionTokenKey, token)
		c.Next()
	}
}

// EncodeSessionUser serializa o usuário para o cookie de sessão
func EncodeSessionUser(user models.User) (string, error) {
	data, err := json.Marshal(user)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// DecodeSessionUser faz o caminho inverso de EncodeSessionUser
func DecodeSessionUser(raw string) (*models.User, error) {
	data, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("cookie de sessão inválido: %w", err)
	}
	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("cookie de sessão inválido: %w", err)
	}
	if user.ID == "" && user.Email == "" {
		return nil, fmt.Errorf("cookie de sessão sem usuário")
	}
	return &user, nil
}

// GetSessionUser retorna o usuário da sessão ou nil se anônimo
func GetSessionUser(c *gin.Context) *models.User {
	if user, exists := c.Get(SessionUserKey); exists {
		if u, ok := user.(*models.User); ok {
			return u
		}
	}
	return nil
}
