package vercel_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/vercel-client/pkg/vercel"
)

func int64Ptr(v int64) *int64 {
	return &v
}

// scriptedFetcher replays a fixed sequence of pages and records the cursors
// it was asked for.
type scriptedFetcher struct {
	pages   []*vercel.Page[string]
	cursors []*int64
	calls   int
}

func (f *scriptedFetcher) fetch(_ context.Context, cursor *int64) (*vercel.Page[string], error) {
	f.cursors = append(f.cursors, cursor)
	page := f.pages[f.calls]
	f.calls++

	return page, nil
}

func TestPageIteratorWalksAllPages(t *testing.T) {
	t.Parallel()

	fetcher := &scriptedFetcher{pages: []*vercel.Page[string]{
		{Items: []string{"a", "b"}, Pagination: vercel.Pagination{Count: 2, Next: int64Ptr(200)}},
		{Items: []string{"c"}, Pagination: vercel.Pagination{Count: 1, Next: int64Ptr(300)}},
		{Items: nil, Pagination: vercel.Pagination{Count: 0}},
	}}

	it := vercel.NewPageIterator(context.Background(), fetcher.fetch)

	var items []string

	for it.HasNext() {
		item, err := it.Next()
		require.NoError(t, err)

		items = append(items, item)
	}

	assert.Equal(t, []string{"a", "b", "c"}, items)
	assert.Equal(t, 3, fetcher.calls, "the empty terminal page must be fetched exactly once")
	require.Len(t, fetcher.cursors, 3)
	assert.Nil(t, fetcher.cursors[0])
	assert.Equal(t, int64(200), *fetcher.cursors[1])
	assert.Equal(t, int64(300), *fetcher.cursors[2])
}

func TestPageIteratorStopsOnNilCursor(t *testing.T) {
	t.Parallel()

	fetcher := &scriptedFetcher{pages: []*vercel.Page[string]{
		{Items: []string{"only"}, Pagination: vercel.Pagination{Count: 1}},
	}}

	it := vercel.NewPageIterator(context.Background(), fetcher.fetch)

	item, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, "only", item)

	assert.False(t, it.HasNext())
	assert.Equal(t, 1, fetcher.calls, "a page without a next cursor ends the sequence without another fetch")
}

func TestPageIteratorEmptyFirstPage(t *testing.T) {
	t.Parallel()

	fetcher := &scriptedFetcher{pages: []*vercel.Page[string]{
		{Items: nil, Pagination: vercel.Pagination{Count: 0}},
	}}

	it := vercel.NewPageIterator(context.Background(), fetcher.fetch)

	assert.False(t, it.HasNext())

	_, err := it.Next()
	assert.ErrorIs(t, err, vercel.ErrNoMoreItems)
	assert.Equal(t, 1, fetcher.calls)
}

func TestPageIteratorExhaustionIsIdempotent(t *testing.T) {
	t.Parallel()

	fetcher := &scriptedFetcher{pages: []*vercel.Page[string]{
		{Items: []string{"x"}, Pagination: vercel.Pagination{Count: 1}},
	}}

	it := vercel.NewPageIterator(context.Background(), fetcher.fetch)

	_, err := it.Next()
	require.NoError(t, err)

	for range 3 {
		_, err := it.Next()
		assert.ErrorIs(t, err, vercel.ErrNoMoreItems)
	}

	assert.False(t, it.HasNext())
	assert.Equal(t, 1, fetcher.calls)
}

func TestPageIteratorFetchErrorDoesNotAdvance(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("boom")
	failures := 1
	fetcher := &scriptedFetcher{pages: []*vercel.Page[string]{
		{Items: []string{"a"}, Pagination: vercel.Pagination{Count: 1}},
	}}

	fetch := func(ctx context.Context, cursor *int64) (*vercel.Page[string], error) {
		if failures > 0 {
			failures--

			return nil, fetchErr
		}

		return fetcher.fetch(ctx, cursor)
	}

	it := vercel.NewPageIterator(context.Background(), fetch)

	_, err := it.Next()
	require.Error(t, err)
	assert.ErrorIs(t, err, fetchErr)

	// The failed fetch did not consume the page: the retry succeeds.
	item, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, "a", item)
}

func TestPageIteratorHasNextSurfacesErrorOnNext(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("boom")
	fetch := func(context.Context, *int64) (*vercel.Page[string], error) {
		return nil, fetchErr
	}

	it := vercel.NewPageIterator(context.Background(), fetch)

	// HasNext cannot report errors, so it answers true and the error is
	// delivered by the Next that follows.
	assert.True(t, it.HasNext())

	_, err := it.Next()
	require.Error(t, err)
	assert.ErrorIs(t, err, fetchErr)
}

func TestPageIteratorAll(t *testing.T) {
	t.Parallel()

	fetcher := &scriptedFetcher{pages: []*vercel.Page[string]{
		{Items: []string{"a", "b"}, Pagination: vercel.Pagination{Count: 2, Next: int64Ptr(200)}},
		{Items: []string{"c"}, Pagination: vercel.Pagination{Count: 1}},
	}}

	it := vercel.NewPageIterator(context.Background(), fetcher.fetch)

	items, err := it.All()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, items)
}

func TestPageIteratorForEach(t *testing.T) {
	t.Parallel()

	t.Run("visits every item", func(t *testing.T) {
		t.Parallel()

		fetcher := &scriptedFetcher{pages: []*vercel.Page[string]{
			{Items: []string{"a", "b"}, Pagination: vercel.Pagination{Count: 2}},
		}}

		it := vercel.NewPageIterator(context.Background(), fetcher.fetch)

		var seen []string

		require.NoError(t, it.ForEach(func(item string) error {
			seen = append(seen, item)

			return nil
		}))
		assert.Equal(t, []string{"a", "b"}, seen)
	})

	t.Run("stops at the first callback error", func(t *testing.T) {
		t.Parallel()

		fetcher := &scriptedFetcher{pages: []*vercel.Page[string]{
			{Items: []string{"a", "b"}, Pagination: vercel.Pagination{Count: 2}},
		}}

		it := vercel.NewPageIterator(context.Background(), fetcher.fetch)

		stop := errors.New("stop")
		count := 0

		err := it.ForEach(func(string) error {
			count++

			return stop
		})
		assert.ErrorIs(t, err, stop)
		assert.Equal(t, 1, count)
	})
}

func TestIteratePagesThreadsCursor(t *testing.T) {
	t.Parallel()

	var cursors []*int64

	var limits []int

	list := func(_ context.Context, opts *vercel.ListOptions) (*vercel.Page[string], error) {
		cursors = append(cursors, opts.Until)
		limits = append(limits, opts.Limit)

		if opts.Until == nil {
			return &vercel.Page[string]{
				Items:      []string{"first"},
				Pagination: vercel.Pagination{Count: 1, Next: int64Ptr(500)},
			}, nil
		}

		return &vercel.Page[string]{Items: []string{"second"}, Pagination: vercel.Pagination{Count: 1}}, nil
	}

	opts := vercel.NewListOptions().WithLimit(50)

	it := vercel.IteratePages(context.Background(), list, opts)

	items, err := it.All()
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, items)

	require.Len(t, cursors, 2)
	assert.Nil(t, cursors[0])
	assert.Equal(t, int64(500), *cursors[1])
	assert.Equal(t, []int{50, 50}, limits, "the page size carries across pages")
	assert.Nil(t, opts.Until, "the caller's options are never mutated")
}
