package utils

import (
	"net/url"
	"strings"
)

// SanitizeLink aceita apenas URLs absolutas http/https.
// Qualquer outro valor (javascript:, caminhos relativos, lixo) vira string vazia.
func SanitizeLink(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}

	scheme := strings.ToLower(parsed.Scheme)
	if (scheme != "http" && scheme != "https") || parsed.Host == "" {
		return ""
	}

	return parsed.String()
}
