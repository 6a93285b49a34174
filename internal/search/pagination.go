package search

import "github.com/algoviz/algoviz-api/internal/models"

// TotalPages retorna ceil(total/pageSize). pageSize não positivo conta como 1.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 {
		pageSize = 1
	}
	if total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// Clamp limita pageIndex a [0, totalPages-1]. Sem páginas o único índice é 0.
func Clamp(pageIndex, totalPages int) int {
	if pageIndex >= totalPages {
		pageIndex = totalPages - 1
	}
	if pageIndex < 0 {
		pageIndex = 0
	}
	return pageIndex
}

// Page retorna a página pageIndex de items. Índices fora do intervalo são
// limitados em vez de falhar: depois que a coleção encolhe, o pedido ainda
// retorna a última página válida.
func Page[T any](items []T, pageIndex, pageSize int) []T {
	if pageSize <= 0 {
		pageSize = 1
	}
	pageIndex = Clamp(pageIndex, TotalPages(len(items), pageSize))

	start := pageIndex * pageSize
	if start >= len(items) {
		return items[len(items):len(items):len(items)]
	}
	end := min(start+pageSize, len(items))
	return items[start:end:end]
}

// Window é o estado de paginação de uma lista em carrossel. Next e Previous
// param nas bordas, sem dar a volta.
type Window struct {
	index int
	size  int
	total int
}

// NewWindow cria uma janela na página 0. pageSize não positivo conta como 1.
func NewWindow(pageSize int) *Window {
	if pageSize <= 0 {
		pageSize = 1
	}
	return &Window{size: pageSize}
}

// SetTotal atualiza o total de itens e limita de novo o índice da página
func (w *Window) SetTotal(total int) {
	if total < 0 {
		total = 0
	}
	w.total = total
	w.index = Clamp(w.index, w.TotalPages())
}

// Next avança uma página e informa se o índice mudou
func (w *Window) Next() bool {
	if w.index+1 >= w.TotalPages() {
		return false
	}
	w.index++
	return true
}

// Previous volta uma página e informa se o índice mudou
func (w *Window) Previous() bool {
	if w.index == 0 {
		return false
	}
	w.index--
	return true
}

// Goto vai para pageIndex, limitado ao intervalo válido
func (w *Window) Goto(pageIndex int) {
	w.index = Clamp(pageIndex, w.TotalPages())
}

// Reset volta para a primeira página
func (w *Window) Reset() {
	w.index = 0
}

func (w *Window) Index() int      { return w.index }
func (w *Window) Size() int       { return w.size }
func (w *Window) TotalPages() int { return TotalPages(w.total, w.size) }

// State expõe a janela nas respostas da API
func (w *Window) State() models.PaginationState {
	return models.PaginationState{
		PageIndex:  w.index,
		PageSize:   w.size,
		TotalPages: w.TotalPages(),
		TotalItems: w.total,
	}
}
