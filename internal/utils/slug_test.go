package utils

import (
	"strings"
	"testing"
)

func TestPostSlug(t *testing.T) {
	tests := []struct {
		name     string
		titulo   string
		id       string
		expected string
	}{
		{
			name:     "título simples",
			titulo:   "Understanding Quick Sort",
			id:       "p1",
			expected: "understanding-quick-sort-p1",
		},
		{
			name:     "id longo é encurtado",
			titulo:   "Binary Search",
			id:       "abcdef123456",
			expected: "binary-search-abcdef",
		},
		{
			name:     "título com acentos",
			titulo:   "Árvores de Busca Binária",
			id:       "42",
			expected: "arvores-de-busca-binaria-42",
		},
		{
			name:     "título com pontuação",
			titulo:   "Dijkstra's Algorithm: A Visual Guide!",
			id:       "7",
			expected: "dijkstra-s-algorithm-a-visual-guide-7",
		},
		{
			name:     "apenas caracteres especiais",
			titulo:   "!@#$%",
			id:       "abc",
			expected: "abc",
		},
		{
			name:     "título vazio",
			titulo:   "",
			id:       "abc",
			expected: "",
		},
		{
			name:     "id vazio",
			titulo:   "Heaps",
			id:       "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PostSlug(tt.titulo, tt.id)
			if result != tt.expected {
				t.Errorf("PostSlug(%q, %q) = %q; expected %q", tt.titulo, tt.id, result, tt.expected)
			}
		})
	}
}

func TestPostSlug_Truncation(t *testing.T) {
	titulo := strings.Repeat("Graph Traversal ", 10)
	result := PostSlug(titulo, "xyz")

	if !strings.HasSuffix(result, "-xyz") {
		t.Fatalf("slug deveria terminar com o id: %q", result)
	}
	base := strings.TrimSuffix(result, "-xyz")
	if len(base) > MaxSlugLength {
		t.Errorf("base do slug deveria ter no máximo %d chars, got %d: %q", MaxSlugLength, len(base), base)
	}
	if strings.HasSuffix(base, "-") || strings.Contains(result, "--") {
		t.Errorf("slug com hífens inválidos: %q", result)
	}
}
