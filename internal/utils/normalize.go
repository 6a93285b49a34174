package utils

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold aplica case folding Unicode para comparações que ignoram maiúsculas/minúsculas.
// Um Caser guarda estado, por isso é criado a cada chamada.
func Fold(s string) string {
	if s == "" {
		return s
	}
	return cases.Fold().String(s)
}

// ContainsFold verifica se needle aparece em haystack ignorando caixa.
// needle já deve estar dobrado com Fold.
func ContainsFold(haystack, foldedNeedle string) bool {
	if foldedNeedle == "" {
		return true
	}
	return strings.Contains(Fold(haystack), foldedNeedle)
}

// CategoryKey normaliza o nome ou slug de uma categoria para comparação
// Exemplo: "Dynamic Programming" -> "dynamic-programming", "dynamic_programming" -> "dynamic-programming"
func CategoryKey(categoria string) string {
	return slugify(categoria)
}

// ResolveCategory encontra a categoria canônica a partir de nome ou slug.
// Retorna false se nenhuma categoria válida corresponder.
func ResolveCategory(input string, validas []string) (string, bool) {
	key := CategoryKey(input)
	if key == "" {
		return "", false
	}
	for _, categoria := range validas {
		if CategoryKey(categoria) == key {
			return categoria, true
		}
	}
	return "", false
}
