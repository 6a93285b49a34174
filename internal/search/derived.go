package search

import (
	"slices"
	"sync"

	"github.com/algoviz/algoviz-api/internal/models"
)

// Collection é um conjunto imutável de itens marcado com a versão do catálogo de origem
type Collection struct {
	Items   []models.Item
	Version uint64
}

// Filter retorna os itens que atendem params, na ordem original.
// Sempre devolve um slice novo; items nunca é alterado.
func Filter(items []models.Item, params models.FilterParams) []models.Item {
	m := newMatcher(params.Category, params.SearchText)
	out := make([]models.Item, 0, len(items))
	for i := range items {
		if m.match(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out
}

// viewKey identifica as entradas da view derivada: a coleção por identidade
// (array, tamanho, versão) e os params por valor
type viewKey struct {
	data    *models.Item
	length  int
	version uint64
	params  models.FilterParams
}

func keyOf(c Collection, params models.FilterParams) viewKey {
	var data *models.Item
	if len(c.Items) > 0 {
		data = &c.Items[0]
	}
	return viewKey{data: data, length: len(c.Items), version: c.Version, params: params}
}

// DerivedView memoiza Filter para as últimas entradas vistas. Os slices
// retornados são compartilhados e devem ser tratados como somente leitura.
type DerivedView struct {
	mu     sync.Mutex
	key    viewKey
	valid  bool
	result []models.Item
	hits   uint64
	misses uint64
}

// Compute retorna a view filtrada de c, recalculando só quando c ou params mudam
func (d *DerivedView) Compute(c Collection, params models.FilterParams) []models.Item {
	key := keyOf(c, params)

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.valid && d.key == key {
		d.hits++
		return d.result
	}

	d.misses++
	d.result = slices.Clip(Filter(c.Items, params))
	d.key = key
	d.valid = true
	return d.result
}

// Invalidate descarta o resultado memoizado
func (d *DerivedView) Invalidate() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.valid = false
	d.result = nil
}

// Stats retorna quantas chamadas de Compute vieram do cache e quantas recalcularam
func (d *DerivedView) Stats() (hits, misses uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.hits, d.misses
}
