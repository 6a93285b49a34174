package search

import "github.com/algoviz/algoviz-api/internal/models"

func sampleItems() []models.Item {
	return []models.Item{
		{ID: "1", Title: "Understanding Merge Sort", Category: "Sorting", Tags: []string{"divide and conquer", "stable"}, Description: "Split, sort and merge."},
		{ID: "2", Title: "Binary Search Pitfalls", Category: "Searching", Tags: []string{"arrays"}, Description: "Off-by-one errors everywhere."},
		{ID: "3", Title: "Quick Sort Visualized", Category: "Sorting", Tags: []string{"pivot", "in-place"}, Description: "Partitioning step by step."},
		{ID: "4", Title: "Dijkstra in Practice", Category: "Graphs", Tags: []string{"shortest path", "Heap"}, Description: "Priority queues meet graphs."},
		{ID: "5", Title: "Heap Sort", Category: "Sorting", Tags: []string{"heap"}, Description: "Sorting with a binary heap."},
		{ID: "6", Title: "Tries for Autocomplete", Category: "Data Structures", Tags: []string{"strings"}, Description: "Prefix trees explained."},
		{ID: "7", Title: "Memoization vs Tabulation", Category: "Dynamic Programming", Tags: []string{"DP"}, Description: "Two ways to avoid recomputing."},
	}
}

func ids(items []models.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}
