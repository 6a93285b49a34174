package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/algoviz/algoviz-api/internal/models"
	"github.com/algoviz/algoviz-api/internal/search"
)

// View é o estado de uma tela de listagem ativa: parâmetros de filtro, janela de
// paginação, view derivada memoizada e contadores próprios. O contexto é
// cancelado no teardown e protege continuações assíncronas que chegam depois.
type View struct {
	ID        string
	Kind      models.CollectionKind
	CreatedAt time.Time

	ctx    context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	collection search.Collection
	params     models.FilterParams
	window     *search.Window
	derived    search.DerivedView
	recorder   *Recorder
	lastSeen   time.Time
}

// whenAlive executa fn com a view travada, se ela ainda não foi encerrada
func (v *View) whenAlive(fn func()) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.ctx.Err() != nil {
		return false
	}
	fn()
	return true
}

// state monta a resposta da view; deve ser chamado com v.mu travado
func (v *View) state() *models.ViewState {
	items := v.derived.Compute(v.collection, v.params)
	v.window.SetTotal(len(items))
	page := search.Page(items, v.window.Index(), v.window.Size())

	return &models.ViewState{
		ID:          v.ID,
		Kind:        v.Kind,
		Filter:      v.params,
		Items:       append(make([]models.Item, 0, len(page)), page...),
		Pagination:  v.window.State(),
		Counters:    v.recorder.Counters(),
		RecentOpens: v.recorder.RecentOpens(),
		Version:     v.collection.Version,
		CreatedAt:   v.CreatedAt,
	}
}

// ViewOptions configura o registro de views
type ViewOptions struct {
	IdleTTL         time.Duration
	MaxViews        int
	DefaultPageSize int
}

// ViewService mantém as views ativas, expira as ociosas e repassa recargas do catálogo
type ViewService struct {
	catalog *Catalog
	opts    ViewOptions
	logger  *zap.Logger
	now     func() time.Time

	mu     sync.RWMutex
	views  map[string]*View
	closed bool

	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewViewService cria o serviço e inicia a limpeza periódica de views ociosas
func NewViewService(catalog *Catalog, opts ViewOptions, logger *zap.Logger) *ViewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.IdleTTL <= 0 {
		opts.IdleTTL = 30 * time.Minute
	}
	if opts.MaxViews <= 0 {
		opts.MaxViews = 10000
	}
	if opts.DefaultPageSize <= 0 {
		opts.DefaultPageSize = 6
	}

	s := &ViewService{
		catalog: catalog,
		opts:    opts,
		logger:  logger.Named("views"),
		now:     time.Now,
		views:   make(map[string]*View),
		stop:    make(chan struct{}),
	}
	catalog.OnReload(s.rebase)

	s.wg.Add(1)
	go s.janitor()
	return s
}

// Open ativa uma nova view sobre a coleção pedida
func (s *ViewService) Open(kind models.CollectionKind, pageSize int, category, searchText string) (*models.ViewState, error) {
	coll, err := s.catalog.Collection(kind)
	if err != nil {
		return nil, err
	}
	params, err := search.ParseParams(category, searchText, CategoriesFor(kind))
	if err != nil {
		return nil, err
	}
	if pageSize <= 0 {
		pageSize = s.opts.DefaultPageSize
	}

	now := s.now()
	ctx, cancel := context.WithCancel(context.Background())
	v := &View{
		ID:         uuid.NewString(),
		Kind:       kind,
		CreatedAt:  now,
		ctx:        ctx,
		cancel:     cancel,
		collection: coll,
		params:     params,
		window:     search.NewWindow(pageSize),
		recorder:   NewRecorder(),
		lastSeen:   now,
	}

	s.mu.Lock()
	if len(s.views) >= s.opts.MaxViews {
		s.sweepLocked(now)
	}
	if len(s.views) >= s.opts.MaxViews {
		s.mu.Unlock()
		cancel()
		return nil, ErrViewLimit
	}
	s.views[v.ID] = v
	s.mu.Unlock()

	s.logger.Debug("view opened", zap.String("view_id", v.ID), zap.String("kind", string(kind)))

	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state(), nil
}

// Get retorna o estado atual da view
func (s *ViewService) Get(id string) (*models.ViewState, error) {
	return s.update(id, func(*View) {})
}

// SetSearch aplica um novo texto de busca e volta para a primeira página
func (s *ViewService) SetSearch(id, searchText string) (*models.ViewState, error) {
	v, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	params, err := search.ParseParams("", searchText, CategoriesFor(v.Kind))
	if err != nil {
		return nil, err
	}
	return s.update(id, func(v *View) {
		v.recorder.RecordSearch()
		v.params.SearchText = params.SearchText
		v.window.Reset()
	})
}

// SetCategory aplica uma nova categoria e volta para a primeira página
func (s *ViewService) SetCategory(id, category string) (*models.ViewState, error) {
	v, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	params, err := search.ParseParams(category, "", CategoriesFor(v.Kind))
	if err != nil {
		return nil, err
	}
	return s.update(id, func(v *View) {
		v.recorder.RecordCategoryChange()
		v.params.Category = params.Category
		v.window.Reset()
	})
}

// OpenItem registra a abertura de um item da coleção da view e o retorna
func (s *ViewService) OpenItem(id, itemID, action string) (*models.Item, error) {
	var found *models.Item
	_, err := s.update(id, func(v *View) {
		for i := range v.collection.Items {
			if v.collection.Items[i].ID == itemID {
				item := v.collection.Items[i]
				found = &item
				break
			}
		}
		if found != nil {
			if action == "" {
				action = "read"
			}
			v.recorder.RecordItemOpen(itemID, action)
		}
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}
	return found, nil
}

// Next avança uma página; na última página não faz nada
func (s *ViewService) Next(id string) (*models.ViewState, error) {
	return s.update(id, func(v *View) {
		v.window.SetTotal(len(v.derived.Compute(v.collection, v.params)))
		v.window.Next()
	})
}

// Previous volta uma página; na primeira página não faz nada
func (s *ViewService) Previous(id string) (*models.ViewState, error) {
	return s.update(id, func(v *View) {
		v.window.Previous()
	})
}

// Goto vai para a página pedida, limitada ao intervalo válido
func (s *ViewService) Goto(id string, pageIndex int) (*models.ViewState, error) {
	return s.update(id, func(v *View) {
		v.window.SetTotal(len(v.derived.Compute(v.collection, v.params)))
		v.window.Goto(pageIndex)
	})
}

// Close encerra a view e cancela seu contexto
func (s *ViewService) Close(id string) error {
	s.mu.Lock()
	v, ok := s.views[id]
	delete(s.views, id)
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrViewNotFound, id)
	}
	s.teardown(v)
	s.logger.Debug("view closed", zap.String("view_id", id))
	return nil
}

// Len retorna o número de views ativas
func (s *ViewService) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.views)
}

// Shutdown para a limpeza periódica e encerra todas as views. Recargas do
// catálogo que chegam depois são ignoradas.
func (s *ViewService) Shutdown() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.stopOnce.Do(func() {
		close(s.stop)
	})
	s.wg.Wait()

	s.mu.Lock()
	views := s.views
	s.views = make(map[string]*View)
	s.mu.Unlock()

	for _, v := range views {
		s.teardown(v)
	}
}

func (s *ViewService) lookup(id string) (*View, error) {
	s.mu.RLock()
	v, ok := s.views[id]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrViewNotFound, id)
	}
	return v, nil
}

// update aplica fn à view viva e devolve o novo estado
func (s *ViewService) update(id string, fn func(*View)) (*models.ViewState, error) {
	v, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	var state *models.ViewState
	alive := v.whenAlive(func() {
		fn(v)
		v.lastSeen = s.now()
		state = v.state()
	})
	if !alive {
		return nil, fmt.Errorf("%w: %s", ErrViewNotFound, id)
	}
	return state, nil
}

func (s *ViewService) teardown(v *View) {
	v.mu.Lock()
	v.cancel()
	v.mu.Unlock()
}

// rebase entrega o novo snapshot do catálogo às views vivas, em segundo plano.
// Views encerradas antes da entrega são ignoradas.
func (s *ViewService) rebase(snapshot *Snapshot) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	// wg.Add sob o lock: Shutdown marca closed antes do wg.Wait
	if s.closed {
		return
	}
	views := make([]*View, 0, len(s.views))
	for _, v := range s.views {
		views = append(views, v)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.applySnapshot(views, snapshot)
	}()
}

func (s *ViewService) applySnapshot(views []*View, snapshot *Snapshot) {
	skipped := 0
	for _, v := range views {
		applied := v.whenAlive(func() {
			if snapshot.Version <= v.collection.Version {
				return
			}
			v.collection = snapshot.Collection(v.Kind)
			v.window.SetTotal(len(v.derived.Compute(v.collection, v.params)))
		})
		if !applied {
			skipped++
		}
	}
	s.logger.Debug("catalog snapshot applied to views",
		zap.Uint64("version", snapshot.Version),
		zap.Int("views", len(views)-skipped),
		zap.Int("skipped", skipped),
	)
}

func (s *ViewService) janitor() {
	defer s.wg.Done()

	interval := s.opts.IdleTTL / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			removed := s.sweepLocked(s.now())
			s.mu.Unlock()
			if removed > 0 {
				s.logger.Info("expired idle views", zap.Int("removed", removed))
			}
		}
	}
}

// sweepLocked remove views ociosas há mais de IdleTTL; exige s.mu travado
func (s *ViewService) sweepLocked(now time.Time) int {
	removed := 0
	for id, v := range s.views {
		v.mu.Lock()
		idle := now.Sub(v.lastSeen) >= s.opts.IdleTTL
		if idle {
			v.cancel()
		}
		v.mu.Unlock()
		if idle {
			delete(s.views, id)
			removed++
		}
	}
	return removed
}
