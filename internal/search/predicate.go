// Package search implementa a listagem filtrável: o predicado de filtro,
// a view derivada memoizada e a janela de paginação.
package search

import (
	"github.com/algoviz/algoviz-api/internal/constants"
	"github.com/algoviz/algoviz-api/internal/models"
	"github.com/algoviz/algoviz-api/internal/utils"
)

// Matches informa se item pertence à view filtrada por category e searchText.
// Categoria diferente de "All" precisa ser igual; searchText não vazio precisa
// aparecer, sem diferenciar maiúsculas, no título, na descrição ou em uma das tags.
func Matches(item *models.Item, category, searchText string) bool {
	return newMatcher(category, searchText).match(item)
}

// matcher normaliza o texto de busca uma vez só, não a cada item
type matcher struct {
	category string
	needle   string
}

func newMatcher(category, searchText string) matcher {
	return matcher{category: category, needle: utils.Fold(searchText)}
}

func (m matcher) match(item *models.Item) bool {
	if m.category != constants.AllCategories && item.Category != m.category {
		return false
	}
	if m.needle == "" {
		return true
	}
	if utils.ContainsFold(item.Title, m.needle) || utils.ContainsFold(item.Description, m.needle) {
		return true
	}
	for _, tag := range item.Tags {
		if utils.ContainsFold(tag, m.needle) {
			return true
		}
	}
	return false
}
