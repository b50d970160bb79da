// Package seq holds the small sequence containers and sorting routines the
// early PSP exercises required building by hand.
package seq

import "iter"

// LinkedList is a doubly linked list that appends at the tail.
type LinkedList[T any] struct {
	first *node[T]
	last  *node[T]
	size  int
}

type node[T any] struct {
	value  T
	before *node[T]
	after  *node[T]
}

// IsEmpty reports whether the list holds no values.
func (l *LinkedList[T]) IsEmpty() bool {
	return l.first == nil && l.last == nil
}

// Len returns the number of values in the list.
func (l *LinkedList[T]) Len() int {
	return l.size
}

// Insert appends a value at the tail of the list.
func (l *LinkedList[T]) Insert(value T) {
	n := &node[T]{value: value, before: l.last}
	if l.last != nil {
		l.last.after = n
		l.last = n
	} else {
		l.first = n
		l.last = n
	}
	l.size++
}

// All iterates the values in insertion order.
func (l *LinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.first; n != nil; n = n.after {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Slice returns the values in insertion order.
func (l *LinkedList[T]) Slice() []T {
	out := make([]T, 0, l.size)
	for n := l.first; n != nil; n = n.after {
		out = append(out, n.value)
	}
	return out
}
