// Package list implements a generic singly-linked list.
//
// A List owns a chain of nodes, each holding one value and a link to the
// next node. Mutating methods change the list in place and return the
// receiver, so calls can be chained:
//
//	l := list.Empty[int]().Append(1).Append(2).Prepend(0)
//
// Lists are not safe for concurrent use.
package list

import (
	"fmt"
	"strings"
)

// List is a singly-linked list. The zero value is a valid empty list.
type List[T any] struct {
	head *node[T]
	// Always the last node reachable from head, or nil when head is nil.
	tail *node[T]
	size int
}

type node[T any] struct {
	value T
	next  *node[T]
}

// Empty returns a new empty list.
func Empty[T any]() *List[T] {
	return &List[T]{}
}

// Len returns the number of values in the list.
func (l *List[T]) Len() int {
	return l.size
}

// Append adds v to the end of the list and returns the list.
func (l *List[T]) Append(v T) *List[T] {
	n := &node[T]{value: v}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
	return l
}

// Prepend adds v to the beginning of the list and returns the list.
func (l *List[T]) Prepend(v T) *List[T] {
	l.head = &node[T]{value: v, next: l.head}
	if l.tail == nil {
		l.tail = l.head
	}
	l.size++
	return l
}

// First returns the first value in the list. The second return value is false
// if the list is empty.
func (l *List[T]) First() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.value, true
}

// Last returns the last value in the list. The second return value is false
// if the list is empty.
func (l *List[T]) Last() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	return l.tail.value, true
}

// RemoveAt removes the value at the zero-based index i and returns the list.
// An index out of the range [0, l.Len()) leaves the list unchanged.
func (l *List[T]) RemoveAt(i int) *List[T] {
	if i < 0 || i >= l.size {
		return l
	}
	var removed *node[T]
	if i == 0 {
		removed = l.head
		l.head = removed.next
		if l.head == nil {
			l.tail = nil
		}
	} else {
		prev := l.head
		for j := 0; j < i-1; j++ {
			prev = prev.next
		}
		removed = prev.next
		prev.next = removed.next
		if removed == l.tail {
			l.tail = prev
		}
	}
	removed.next = nil
	l.size--
	return l
}

// Each calls f with each value in the list, from first to last, until f
// returns false.
func (l *List[T]) Each(f func(T) bool) {
	for n := l.head; n != nil; n = n.next {
		if !f(n.value) {
			return
		}
	}
}

// Slice returns the values in the list as a newly allocated slice. It returns
// an empty, non-nil slice for an empty list.
func (l *List[T]) Slice() []T {
	s := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		s = append(s, n.value)
	}
	return s
}

// String returns the values of the list formatted with %v, surrounded by
// brackets and separated by spaces.
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, n.value)
	}
	sb.WriteByte(']')
	return sb.String()
}
