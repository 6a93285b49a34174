package services

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/algoviz/algoviz-api/internal/models"
)

const recentOpensLimit = 20

// Recorder conta interações de uma única view. Cada view recebe o seu, então
// os contadores começam do zero a cada ativação. Todos os métodos aceitam
// receptor nil e nunca falham: o registro é best-effort.
type Recorder struct {
	searches     atomic.Int64
	filters      atomic.Int64
	interactions atomic.Int64

	mu     sync.Mutex
	recent []models.ItemOpenEvent
	now    func() time.Time
}

// NewRecorder cria contadores zerados
func NewRecorder() *Recorder {
	return &Recorder{now: time.Now}
}

// RecordSearch conta uma operação de busca
func (r *Recorder) RecordSearch() {
	if r == nil {
		return
	}
	r.searches.Add(1)
}

// RecordCategoryChange conta uma troca de categoria
func (r *Recorder) RecordCategoryChange() {
	if r == nil {
		return
	}
	r.filters.Add(1)
}

// RecordItemOpen conta a abertura de um item e guarda o evento
func (r *Recorder) RecordItemOpen(id, action string) {
	if r == nil {
		return
	}
	r.interactions.Add(1)

	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.recent) == recentOpensLimit {
		copy(r.recent, r.recent[1:])
		r.recent = r.recent[:recentOpensLimit-1]
	}
	r.recent = append(r.recent, models.ItemOpenEvent{ItemID: id, Action: action, At: r.now()})
}

// Counters retorna uma cópia dos contadores
func (r *Recorder) Counters() models.InteractionCounters {
	if r == nil {
		return models.InteractionCounters{}
	}
	return models.InteractionCounters{
		SearchOperations: r.searches.Load(),
		FilterOperations: r.filters.Load(),
		Interactions:     r.interactions.Load(),
	}
}

// RecentOpens retorna os últimos itens abertos, do mais antigo ao mais recente
func (r *Recorder) RecentOpens() []models.ItemOpenEvent {
	if r == nil {
		return []models.ItemOpenEvent{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.ItemOpenEvent, len(r.recent))
	copy(out, r.recent)
	return out
}
