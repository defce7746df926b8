package vercel

import (
	"context"
	"fmt"
)

// PageFetcher fetches one page of results. A nil cursor requests the first
// page; otherwise cursor is the millisecond timestamp returned as the
// previous page's next cursor.
type PageFetcher[T any] func(ctx context.Context, cursor *int64) (*Page[T], error)

// iteratorState tracks where the iterator is in its page sequence.
type iteratorState int

const (
	stateNotStarted iteratorState = iota
	stateInPage
	stateExhausted
)

// PageIterator turns a sequence of cursor-keyed pages into a single lazy,
// single-pass item sequence. Pages are fetched only when the consumer asks
// for an item beyond the buffered page; an empty page or an absent next
// cursor terminates the sequence. Restarting from the beginning requires a
// new iterator bound to the same fetcher.
type PageIterator[T any] struct {
	ctx        context.Context
	fetch      PageFetcher[T]
	state      iteratorState
	page       *Page[T]
	index      int
	nextCursor *int64
	pending    error
}

// NewPageIterator creates an iterator over the pages produced by fetch,
// starting from an empty cursor.
func NewPageIterator[T any](ctx context.Context, fetch PageFetcher[T]) *PageIterator[T] {
	return &PageIterator[T]{
		ctx:   ctx,
		fetch: fetch,
		state: stateNotStarted,
	}
}

// IteratePages builds a PageIterator over a list endpoint, threading the
// advancing cursor through a clone of the caller's options.
func IteratePages[T any](
	ctx context.Context,
	list func(ctx context.Context, opts *ListOptions) (*Page[T], error),
	opts *ListOptions,
) *PageIterator[T] {
	return NewPageIterator(ctx, func(ctx context.Context, cursor *int64) (*Page[T], error) {
		pageOpts := opts.Clone()
		pageOpts.Until = cursor

		return list(ctx, pageOpts)
	})
}

// advance fetches the page at cursor and installs it. On a fetch failure the
// iterator does not move, so a subsequent call retries the same page. An
// empty page transitions straight to exhausted.
func (it *PageIterator[T]) advance(cursor *int64) error {
	page, err := it.fetch(it.ctx, cursor)
	if err != nil {
		return fmt.Errorf("fetching page: %w", err)
	}

	if page == nil || len(page.Items) == 0 {
		it.state = stateExhausted

		return nil
	}

	it.state = stateInPage
	it.page = page
	it.index = 0
	it.nextCursor = page.NextCursor()

	return nil
}

// HasNext reports whether another item is available. At a page boundary this
// fetches the next page so the answer is truthful; a fetch failure makes
// HasNext return true and the following Next call surfaces the error.
func (it *PageIterator[T]) HasNext() bool {
	if it.pending != nil {
		return true
	}

	switch it.state {
	case stateExhausted:
		return false
	case stateNotStarted:
		if err := it.advance(nil); err != nil {
			it.pending = err

			return true
		}
	case stateInPage:
		if it.index < len(it.page.Items) {
			return true
		}

		if it.nextCursor == nil {
			it.state = stateExhausted

			return false
		}

		if err := it.advance(it.nextCursor); err != nil {
			it.pending = err

			return true
		}
	}

	return it.state == stateInPage
}

// Next yields the next item. Once the sequence is exhausted it returns
// ErrNoMoreItems on every call.
func (it *PageIterator[T]) Next() (T, error) {
	var zero T

	if it.pending != nil {
		err := it.pending
		it.pending = nil

		return zero, err
	}

	for {
		switch it.state {
		case stateExhausted:
			return zero, ErrNoMoreItems
		case stateNotStarted:
			if err := it.advance(nil); err != nil {
				return zero, err
			}
		case stateInPage:
			if it.index < len(it.page.Items) {
				item := it.page.Items[it.index]
				it.index++

				return item, nil
			}

			if it.nextCursor == nil {
				it.state = stateExhausted

				return zero, ErrNoMoreItems
			}

			if err := it.advance(it.nextCursor); err != nil {
				return zero, err
			}
		}
	}
}

// All drains the remaining sequence into a slice.
func (it *PageIterator[T]) All() ([]T, error) {
	var items []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}

// ForEach applies fn to each remaining item, stopping at the first error.
func (it *PageIterator[T]) ForEach(fn func(T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return err
		}

		if err := fn(item); err != nil {
			return err
		}
	}

	return nil
}
