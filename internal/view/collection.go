// Package view holds the shared machinery behind every data-bound page:
// a small fetch/mutate/refetch state machine and the pure derivations
// (buckets, stats, calendar grids) computed fresh from a fetched collection
// on every render.
package view

import "context"

type State int

const (
	StateLoading State = iota
	StateReady
	StateError
)

// Collection runs the page state machine: Loading until the first fetch
// resolves, then Ready with the fetched items or Error with the failure,
// never both. Mutations never patch items locally; a successful mutation
// re-issues the full fetch, and a failed one leaves the prior items standing.
type Collection[T any] struct {
	fetch func(ctx context.Context) ([]T, error)

	state State
	items []T
	err   error
}

func NewCollection[T any](fetch func(ctx context.Context) ([]T, error)) *Collection[T] {
	return &Collection[T]{fetch: fetch, state: StateLoading}
}

// Load issues the fetch and transitions to Ready or Error.
func (c *Collection[T]) Load(ctx context.Context) error {
	items, err := c.fetch(ctx)
	if err != nil {
		c.state = StateError
		c.err = err
		return err
	}
	c.state = StateReady
	c.items = items
	c.err = nil
	return nil
}

// Mutate runs the mutation and, only when it succeeds, refetches the whole
// collection. The refetch is sequenced strictly after the mutation response.
func (c *Collection[T]) Mutate(ctx context.Context, mutation func(ctx context.Context) error) error {
	if err := mutation(ctx); err != nil {
		return err
	}
	return c.Load(ctx)
}

func (c *Collection[T]) State() State { return c.state }

// Items returns the last successfully fetched collection.
func (c *Collection[T]) Items() []T { return c.items }

func (c *Collection[T]) Err() error { return c.err }
