package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	MaxSlugLength = 60
	SlugIDLength  = 6
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// PostSlug gera o slug de um post a partir do título e do ID.
// Formato: {titulo-em-kebab-case}-{id curto}
// Exemplo: "Understanding Quick Sort" + "post-0042" -> "understanding-quick-sort-post-0"
func PostSlug(titulo, id string) string {
	if titulo == "" || id == "" {
		return ""
	}

	base := slugify(titulo)
	if len(base) > MaxSlugLength {
		base = cutAtHyphen(base[:MaxSlugLength])
	}

	sufixo := slugify(id)
	if len(sufixo) > SlugIDLength {
		sufixo = strings.Trim(sufixo[:SlugIDLength], "-")
	}

	switch {
	case base == "":
		return sufixo
	case sufixo == "":
		return base
	}
	return base + "-" + sufixo
}

// slugify remove acentos, converte para minúsculas e troca separadores por hífen
func slugify(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, text)
	if err != nil {
		plain = text
	}
	return strings.Trim(nonSlugChars.ReplaceAllString(strings.ToLower(plain), "-"), "-")
}

// cutAtHyphen corta o slug no último hífen para não quebrar palavras
func cutAtHyphen(slug string) string {
	if i := strings.LastIndex(slug, "-"); i > 0 {
		return slug[:i]
	}
	return slug
}
