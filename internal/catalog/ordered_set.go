package catalog

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// OrderedSet keeps the first occurrence of each item in insertion order.
// The zero value is an empty set ready to use.
type OrderedSet[T comparable] struct {
	m *orderedmap.OrderedMap[T, struct{}]
}

// NewOrderedSet builds a set from items, dropping repeats.
func NewOrderedSet[T comparable](items ...T) *OrderedSet[T] {
	s := &OrderedSet[T]{}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

func (s *OrderedSet[T]) init() {
	if s.m == nil {
		s.m = orderedmap.New[T, struct{}]()
	}
}

// Add appends item unless it is already present. It reports whether the set changed.
func (s *OrderedSet[T]) Add(item T) bool {
	s.init()
	if _, ok := s.m.Get(item); ok {
		return false
	}
	s.m.Set(item, struct{}{})
	return true
}

// Remove deletes item and keeps the relative order of the rest.
func (s *OrderedSet[T]) Remove(item T) bool {
	if s.m == nil {
		return false
	}
	_, ok := s.m.Delete(item)
	return ok
}

func (s *OrderedSet[T]) Contains(item T) bool {
	if s.m == nil {
		return false
	}
	_, ok := s.m.Get(item)
	return ok
}

func (s *OrderedSet[T]) Len() int {
	if s.m == nil {
		return 0
	}
	return s.m.Len()
}

// Values returns a copy of the items in insertion order. It never returns nil.
func (s *OrderedSet[T]) Values() []T {
	out := make([]T, 0, s.Len())
	if s.m == nil {
		return out
	}
	for pair := s.m.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}
