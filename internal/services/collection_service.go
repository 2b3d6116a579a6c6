package services

import (
	"context"
	"time"

	"github.com/alimgiray/contribscore/internal/models"
)

// PageSize is the number of items requested per API page.
const PageSize = 100

// PageFunc fetches one page of a remote collection. Pages are 1-based.
type PageFunc[T any] func(ctx context.Context, page int) ([]T, error)

// ReadCollection accumulates a date-filtered collection across pages.
// Each page is filtered to items whose effective timestamp is strictly
// after `from`, but pagination continues based on the raw page length:
// only a short raw page means the remote collection is exhausted.
// A fetch error aborts the read immediately; there are no retries.
func ReadCollection[T models.Dated](ctx context.Context, from time.Time, fetch PageFunc[T]) ([]T, error) {
	var collection []T
	for page := 1; ; page++ {
		items, err := fetch(ctx, page)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			if item.EffectiveAt().After(from) {
				collection = append(collection, item)
			}
		}
		if len(items) < PageSize {
			return collection, nil
		}
	}
}

// ReadSearch accumulates paged search results. The caller encodes all
// filtering into the search query, so no per-item filtering happens
// here; the read always walks to the last page and stops when a page
// comes back shorter than the page size.
func ReadSearch[T any](ctx context.Context, fetch PageFunc[T]) ([]T, error) {
	var results []T
	for page := 1; ; page++ {
		items, err := fetch(ctx, page)
		if err != nil {
			return nil, err
		}
		results = append(results, items...)
		if len(items) < PageSize {
			return results, nil
		}
	}
}
