package typesense

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/algoviz/algoviz-api/internal/config"
	"github.com/algoviz/algoviz-api/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	u, err := url.Parse(server.URL)
	require.NoError(t, err)
	cfg := &config.Config{
		TypesenseProtocol: u.Scheme,
		TypesenseHost:     u.Hostname(),
		TypesensePort:     u.Port(),
		TypesenseAPIKey:   "test-key",
	}
	return NewClient(cfg, zap.NewNop())
}

func TestDecodeItem(t *testing.T) {
	item, err := decodeItem(map[string]interface{}{
		"id":       "q1",
		"title":    "Which sort is stable?",
		"category": "Sorting",
		"options":  []interface{}{"Quick sort", "Merge sort"},
		"answer":   float64(1),
		"position": float64(0),
	})
	require.NoError(t, err)

	assert.Equal(t, "q1", item.ID)
	assert.Equal(t, []string{"Quick sort", "Merge sort"}, item.Options)
	require.NotNil(t, item.Answer)
	assert.Equal(t, 1, *item.Answer)
}

func TestCatalogSource_LoadCollection(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/collections/blog_posts/documents/search", r.URL.Path)
		assert.Equal(t, "position:asc", r.URL.Query().Get("sort_by"))
		assert.Equal(t, "test-key", r.Header.Get("X-Typesense-Api-Key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"found": 2,
			"page": 1,
			"hits": [
				{"document": {"id": "1", "title": "Merge Sort", "category": "Sorting", "position": 0}},
				{"document": {"id": "2", "title": "Binary Search", "category": "Searching", "position": 1}}
			]
		}`))
	})

	source := NewCatalogSource(client, "blog_posts", "quiz_questions")
	items, err := source.LoadCollection(context.Background(), models.KindBlog)
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, "Merge Sort", items[0].Title)
	assert.Equal(t, "Searching", items[1].Category)
}

func TestCatalogSource_UnknownKind(t *testing.T) {
	source := NewCatalogSource(&Client{logger: zap.NewNop()}, "blog_posts", "quiz_questions")
	_, err := source.LoadCollection(context.Background(), models.CollectionKind("videos"))
	assert.Error(t, err)
}

func TestClient_ImportItems(t *testing.T) {
	var lines []map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/collections/blog_posts/documents/import", r.URL.Path)
		assert.Equal(t, "create", r.URL.Query().Get("action"))

		scanner := bufio.NewScanner(r.Body)
		for scanner.Scan() {
			var doc map[string]interface{}
			assert.NoError(t, json.Unmarshal(scanner.Bytes(), &doc))
			lines = append(lines, doc)
		}
		for range lines {
			_, _ = w.Write([]byte("{\"success\":true}\n"))
		}
	})

	items := []models.Item{
		{ID: "1", Title: "Merge Sort", Category: "Sorting"},
		{ID: "2", Title: "Binary Search", Category: "Searching"},
	}
	require.NoError(t, client.ImportItems(context.Background(), "blog_posts", items))

	require.Len(t, lines, 2, "um único import com todos os documentos")
	assert.Equal(t, "1", lines[0]["id"])
	assert.Equal(t, float64(0), lines[0]["position"])
	assert.Equal(t, float64(1), lines[1]["position"])
}

func TestClient_ImportItemsReportsRejectedDocuments(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{\"success\":true}\n{\"success\":false,\"error\":\"A document with id 2 already exists.\"}\n"))
	})

	items := []models.Item{
		{ID: "1", Title: "Merge Sort", Category: "Sorting"},
		{ID: "2", Title: "Binary Search", Category: "Searching"},
	}
	err := client.ImportItems(context.Background(), "blog_posts", items)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 de 2")
	assert.Contains(t, err.Error(), "2: A document with id 2 already exists.")
}

func TestClient_ImportItemsEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
	})
	assert.NoError(t, client.ImportItems(context.Background(), "blog_posts", nil))
}
