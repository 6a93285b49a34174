package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/algoviz/algoviz-api/internal/models"
)

const testSeed = `
[[blog]]
id = "1"
title = "Understanding Merge Sort"
category = "Sorting"
tags = ["divide and conquer", "stable", "Stable"]
body = "**Merge sort** splits the array in halves and merges them back."

[[blog]]
id = "2"
title = "Binary Search Pitfalls"
category = "searching"
tags = ["arrays"]
description = "Off-by-one errors everywhere."

[[blog]]
id = "3"
title = "Quick Sort Visualized"
category = "Sorting"
tags = ["pivot"]
description = "Partitioning step by step."
link = "javascript:alert(1)"

[[blog]]
id = "4"
title = "Dijkstra in Practice"
category = "Graphs"
tags = ["shortest path"]
description = "Priority queues meet graphs."

[[blog]]
id = "5"
title = "Heap Sort"
category = "Sorting"
tags = ["heap"]
description = "Sorting with a binary heap."

[[blog]]
id = "6"
title = "Tries for Autocomplete"
category = "data-structures"
tags = ["strings"]
description = "Prefix trees explained."

[[blog]]
id = "7"
title = "Memoization vs Tabulation"
category = "Dynamic Programming"
tags = ["DP"]
description = "Two ways to avoid recomputing."

[[blog]]
id = "7"
title = "Duplicated post"
category = "Sorting"

[[blog]]
id = ""
title = "Post without id"
category = "Sorting"

[[quiz]]
id = "q1"
title = "Which sort is stable?"
category = "Sorting"
difficulty = "easy"
options = ["Quick sort", "Merge sort", "Heap sort"]
answer = 1

[[quiz]]
id = "q2"
title = "Worst case of quick sort?"
category = "Sorting"
difficulty = "Hard"
options = ["O(n log n)", "O(n^2)"]
answer = 1

[[quiz]]
id = "q3"
title = "BFS uses which structure?"
category = "Graphs"
difficulty = "Easy"
options = ["Stack", "Queue"]
answer = 1

[[quiz]]
id = "q4"
title = "Binary search precondition?"
category = "Searching"
difficulty = "Medium"
options = ["Sorted input", "Unique keys"]
answer = 0
`

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestCatalog(t *testing.T) (*Catalog, string) {
	t.Helper()
	path := writeSeed(t, testSeed)
	catalog := NewCatalog(NewSeedSource(path), 0, zap.NewNop())
	return catalog, path
}

func loadedCatalog(t *testing.T) *Catalog {
	t.Helper()
	catalog, _ := newTestCatalog(t)
	require.NoError(t, catalog.Load(context.Background()))
	return catalog
}

func itemIDs(items []models.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}
