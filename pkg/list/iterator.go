package list

// Iterator is a cursor over a List. It is created by (*List).Iterator, and is
// used like this:
//
//	for it := l.Iterator(); it.Next(); {
//		v := it.Value()
//		// ...
//	}
//
// An Iterator reads the list lazily, one node per call to Next. The behavior
// is undefined if the list is mutated while an Iterator over it is in use.
type Iterator[T any] struct {
	next  *node[T]
	value T
}

// Iterator returns a new Iterator positioned before the first value of the
// list. Each call starts a fresh pass.
func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{next: l.head}
}

// Next advances the iterator to the next value, and reports whether there is
// one. Once Next returns false, it keeps returning false.
func (it *Iterator[T]) Next() bool {
	if it.next == nil {
		var zero T
		it.value = zero
		return false
	}
	it.value = it.next.value
	it.next = it.next.next
	return true
}

// Value returns the value the iterator is positioned on. It returns the zero
// value of T before the first call to Next and after Next has returned false.
func (it *Iterator[T]) Value() T {
	return it.value
}
