package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/algoviz/algoviz-api/internal/services"
)

const handlerSeed = `
[[blog]]
id = "1"
title = "Understanding Merge Sort"
category = "Sorting"
tags = ["stable"]
description = "Split, sort and merge."

[[blog]]
id = "2"
title = "Binary Search Pitfalls"
category = "Searching"
description = "Off-by-one errors everywhere."

[[blog]]
id = "3"
title = "Quick Sort Visualized"
category = "Sorting"
description = "Partitioning step by step."

[[blog]]
id = "4"
title = "Heap Sort"
category = "Sorting"
tags = ["heap"]
description = "Sorting with a binary heap."

[[blog]]
id = "5"
title = "Dijkstra in Practice"
category = "Graphs"
description = "Priority queues meet graphs."

[[quiz]]
id = "q1"
title = "Which sort is stable?"
category = "Sorting"
difficulty = "Easy"
options = ["Quick sort", "Merge sort"]
answer = 1

[[quiz]]
id = "q2"
title = "BFS uses which structure?"
category = "Graphs"
difficulty = "Medium"
options = ["Stack", "Queue"]
answer = 1
`

func init() {
	gin.SetMode(gin.TestMode)
}

func testCatalog(t *testing.T) *services.Catalog {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.toml")
	require.NoError(t, os.WriteFile(path, []byte(handlerSeed), 0o644))

	catalog := services.NewCatalog(services.NewSeedSource(path), 0, zap.NewNop())
	require.NoError(t, catalog.Load(context.Background()))
	return catalog
}

func perform(r http.Handler, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, _ := json.Marshal(b)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
