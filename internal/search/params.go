package search

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/algoviz/algoviz-api/internal/constants"
	"github.com/algoviz/algoviz-api/internal/models"
	"github.com/algoviz/algoviz-api/internal/utils"
)

// MaxSearchLength limita o texto de busca aceito dos clientes
const MaxSearchLength = 200

// ParseParams monta FilterParams a partir da entrada do usuário. Categoria vazia
// significa "All"; categorias podem vir por nome ou slug e são resolvidas contra allowed.
func ParseParams(category, searchText string, allowed []string) (models.FilterParams, error) {
	params := models.FilterParams{
		Category:   constants.AllCategories,
		SearchText: strings.TrimSpace(searchText),
	}

	if utf8.RuneCountInString(params.SearchText) > MaxSearchLength {
		return params, fmt.Errorf("%w: max %d characters", ErrSearchTooLong, MaxSearchLength)
	}

	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, constants.AllCategories) {
		return params, nil
	}

	resolved, ok := utils.ResolveCategory(category, allowed)
	if !ok {
		return params, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	params.Category = resolved
	return params, nil
}
