// Package parsechain applies an ordered list of parsing strategies to free
// text and keeps the first one that produces a value.
package parsechain

// Strategy tries to extract a value from raw. ok reports whether it did.
type Strategy[T any] struct {
	Name  string
	Parse func(raw string) (value T, ok bool)
}

// Chain is an ordered list of strategies.
type Chain[T any] struct {
	strategies []Strategy[T]
}

// New builds a chain that tries strategies in the given order.
func New[T any](strategies ...Strategy[T]) Chain[T] {
	return Chain[T]{strategies: strategies}
}

// Then returns a copy of the chain with s appended.
func (c Chain[T]) Then(s Strategy[T]) Chain[T] {
	next := make([]Strategy[T], 0, len(c.strategies)+1)
	next = append(next, c.strategies...)
	next = append(next, s)
	return Chain[T]{strategies: next}
}

// Run applies every strategy in order and returns the first success along
// with the name of the strategy that produced it.
func (c Chain[T]) Run(raw string) (value T, name string, ok bool) {
	for _, s := range c.strategies {
		if v, ok := s.Parse(raw); ok {
			return v, s.Name, true
		}
	}
	var zero T
	return zero, "", false
}

// Len returns the number of strategies.
func (c Chain[T]) Len() int {
	return len(c.strategies)
}
