package paykit

import "context"

// ListPageFunc fetches one page of a collection starting at the given
// cursor. An empty cursor means the start of the collection.
type ListPageFunc[T any] func(ctx context.Context, from string, limit int) (*List[T], error)

// Iterator walks a cursor-paginated collection item by item, following the
// "next" links of each page. It is not safe for concurrent use.
type Iterator[T any] struct {
	ctx   context.Context
	fetch ListPageFunc[T]
	limit int

	buffer []*T
	cursor string
	done   bool
	err    error
}

// NewIterator creates an iterator over a paginated collection. The fetch
// function is typically a closure around a resource client's List method.
func NewIterator[T any](ctx context.Context, fetch ListPageFunc[T], limit int) *Iterator[T] {
	return &Iterator[T]{ctx: ctx, fetch: fetch, limit: limit}
}

// HasNext reports whether another item is available. It may fetch the next
// page. When a fetch fails, HasNext returns true so that Next can surface
// the error.
func (it *Iterator[T]) HasNext() bool {
	if len(it.buffer) > 0 || it.err != nil {
		return true
	}

	if it.done {
		return false
	}

	it.fetchPage()

	return len(it.buffer) > 0 || it.err != nil
}

// Next returns the next item, fetching pages as needed. It returns
// ErrNoMoreItems after the collection is exhausted.
func (it *Iterator[T]) Next() (*T, error) {
	if len(it.buffer) == 0 && it.err == nil && !it.done {
		it.fetchPage()
	}

	if it.err != nil {
		err := it.err
		it.err = nil

		return nil, err
	}

	if len(it.buffer) == 0 {
		return nil, ErrNoMoreItems
	}

	item := it.buffer[0]
	it.buffer = it.buffer[1:]

	return item, nil
}

// All collects the remaining items across all pages.
func (it *Iterator[T]) All() ([]*T, error) {
	var items []*T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}

// ForEach invokes fn for each remaining item. Iteration stops at the first
// error from fn or from a page fetch.
func (it *Iterator[T]) ForEach(fn func(*T) error) error {
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

func (it *Iterator[T]) fetchPage() {
	page, err := it.fetch(it.ctx, it.cursor, it.limit)
	if err != nil {
		it.err = err
		it.done = true

		return
	}

	it.buffer = append(it.buffer, page.Items...)

	next, ok := page.NextFrom()
	if !ok || len(page.Items) == 0 {
		it.done = true

		return
	}

	it.cursor = next
}
