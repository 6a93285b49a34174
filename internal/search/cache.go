package search

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/algoviz/algoviz-api/internal/models"
)

// ListingCache armazena em memória as respostas da listagem sem estado
type ListingCache struct {
	data    map[string]*cachedListing
	mu      sync.RWMutex
	ttl     time.Duration
	maxSize int
	now     func() time.Time
}

type cachedListing struct {
	response *models.ListingResponse
	storedAt time.Time
}

// ListingKey são os parâmetros que identificam uma listagem
type ListingKey struct {
	Kind    models.CollectionKind
	Version uint64
	Params  models.FilterParams
	Page    int
	PerPage int
}

// NewListingCache cria um cache com TTL e tamanho máximo
func NewListingCache(ttl time.Duration, maxSize int) *ListingCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if maxSize <= 0 {
		maxSize = 256
	}
	return &ListingCache{
		data:    make(map[string]*cachedListing),
		ttl:     ttl,
		maxSize: maxSize,
		now:     time.Now,
	}
}

// Get busca uma listagem válida no cache
func (c *ListingCache) Get(key ListingKey) (*models.ListingResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cached, ok := c.data[key.hash()]
	if !ok || c.now().Sub(cached.storedAt) >= c.ttl {
		return nil, false
	}
	return cached.response, true
}

// Set armazena uma listagem; quando cheio remove expirados e depois o mais antigo
func (c *ListingCache) Set(key ListingKey, response *models.ListingResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.data) >= c.maxSize {
		c.evict()
	}
	c.data[key.hash()] = &cachedListing{response: response, storedAt: c.now()}
}

// Clear limpa o cache, usado quando o catálogo é recarregado
func (c *ListingCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]*cachedListing)
}

// Len retorna o número de entradas armazenadas
func (c *ListingCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}

func (c *ListingCache) evict() {
	now := c.now()
	for k, cached := range c.data {
		if now.Sub(cached.storedAt) >= c.ttl {
			delete(c.data, k)
		}
	}
	if len(c.data) < c.maxSize {
		return
	}

	oldestKey := ""
	var oldest time.Time
	for k, cached := range c.data {
		if oldestKey == "" || cached.storedAt.Before(oldest) {
			oldest = cached.storedAt
			oldestKey = k
		}
	}
	delete(c.data, oldestKey)
}

func (k ListingKey) hash() string {
	raw := fmt.Sprintf("%s|%d|%s|%s|%d|%d", k.Kind, k.Version, k.Params.Category, k.Params.SearchText, k.Page, k.PerPage)
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:16])
}
