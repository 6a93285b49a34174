package services

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algoviz/algoviz-api/internal/models"
	"github.com/algoviz/algoviz-api/internal/search"
)

func TestListingService_List(t *testing.T) {
	svc := NewListingService(loadedCatalog(t), time.Minute, 16)

	resp, err := svc.List(models.KindBlog, "Sorting", "", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3"}, itemIDs(resp.Results))
	assert.Equal(t, 7, resp.TotalCount)
	assert.Equal(t, 3, resp.FilteredCount)
	assert.Equal(t, 2, resp.TotalPages)
	assert.Equal(t, "Sorting", resp.Category)

	resp, err = svc.List(models.KindBlog, "Sorting", "", 9, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Page, "página fora do intervalo é ajustada")
	assert.Equal(t, []string{"5"}, itemIDs(resp.Results))
}

func TestListingService_ListErrors(t *testing.T) {
	svc := NewListingService(loadedCatalog(t), time.Minute, 16)

	_, err := svc.List(models.KindBlog, "Cooking", "", 1, 10)
	assert.ErrorIs(t, err, search.ErrUnknownCategory)

	_, err = svc.List(models.KindBlog, "", strings.Repeat("a", search.MaxSearchLength+1), 1, 10)
	assert.ErrorIs(t, err, search.ErrSearchTooLong)
}

func TestListingService_CacheClearedOnReload(t *testing.T) {
	catalog, path := newTestCatalog(t)
	svc := NewListingService(catalog, time.Minute, 16)
	require.NoError(t, catalog.Load(context.Background()))

	_, err := svc.List(models.KindBlog, "", "", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, svc.cache.Len())

	require.NoError(t, os.WriteFile(path, []byte(`
[[blog]]
id = "1"
title = "Only post"
category = "Sorting"
`), 0o644))
	require.NoError(t, catalog.Load(context.Background()))
	assert.Zero(t, svc.cache.Len())

	resp, err := svc.List(models.KindBlog, "", "", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.TotalCount)
}

func TestListingService_CategoriesAndGet(t *testing.T) {
	svc := NewListingService(loadedCatalog(t), time.Minute, 16)

	categories, err := svc.Categories(models.KindBlog)
	require.NoError(t, err)
	assert.Equal(t, 8, categories.TotalCategories)
	assert.Equal(t, 7, categories.TotalItems)

	item, err := svc.Get(models.KindBlog, "2")
	require.NoError(t, err)
	assert.Equal(t, "Binary Search Pitfalls", item.Title)
}
