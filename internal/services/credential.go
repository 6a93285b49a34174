package services

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/algoviz/algoviz-api/internal/models"
)

// DecodeCredential decodifica o payload da credencial (JWT) do provedor de identidade.
// A assinatura NÃO é validada: o resultado serve só para log e exibição,
// quem decide a autenticação é o serviço de autenticação.
func DecodeCredential(credential string) (*models.IdentityClaims, error) {
	parts := strings.Split(credential, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: esperado 3 partes, recebido %d", ErrInvalidCredential, len(parts))
	}

	payload, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(parts[1], "="))
	if err != nil {
		return nil, fmt.Errorf("%w: payload não é base64url: %v", ErrInvalidCredential, err)
	}

	var claims models.IdentityClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, fmt.Errorf("%w: payload não é JSON: %v", ErrInvalidCredential, err)
	}
	return &claims, nil
}
