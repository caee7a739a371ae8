// Package pkg is a package that provides utilities for nsshift.
package pkg

import (
	"cmp"
	"slices"
)

// OrderedSet is a generic deduplicating collection whose Values are always
// returned sorted. The audit reporter relies on it for deterministic output.
type OrderedSet[T cmp.Ordered] interface {
	Len() int
	Add(item T)
	AddAll(items []T)
	Contains(item T) bool
	Values() []T
}

type orderedSetImpl[T cmp.Ordered] struct {
	items map[T]struct{}
}

// Add implements OrderedSet.
func (s *orderedSetImpl[T]) Add(item T) {
	s.items[item] = struct{}{}
}

// AddAll implements OrderedSet.
func (s *orderedSetImpl[T]) AddAll(items []T) {
	for _, item := range items {
		s.Add(item)
	}
}

// Contains implements OrderedSet.
func (s *orderedSetImpl[T]) Contains(item T) bool {
	_, ok := s.items[item]
	return ok
}

// Len implements OrderedSet.
func (s *orderedSetImpl[T]) Len() int {
	return len(s.items)
}

// Values implements OrderedSet. The returned slice is a fresh copy in
// ascending order.
func (s *orderedSetImpl[T]) Values() []T {
	values := make([]T, 0, len(s.items))
	for item := range s.items {
		values = append(values, item)
	}

	slices.Sort(values)

	return values
}

// NewOrderedSet creates an empty OrderedSet for items of type T.
func NewOrderedSet[T cmp.Ordered]() OrderedSet[T] {
	return &orderedSetImpl[T]{items: make(map[T]struct{})}
}
