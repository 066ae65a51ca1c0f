package list

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrInvalidSource is wrapped by the error From returns when its argument is
// not a sequence of the requested element type.
var ErrInvalidSource = errors.New("invalid source")

// ArrayLike is a sequence with a known length and positional access.
type ArrayLike[T any] interface {
	Len() int
	Index(i int) T
}

// Iterable is a sequence that can be traversed with a callback. The traversal
// stops early when the callback returns false. *List[T] implements
// Iterable[T].
type Iterable[T any] interface {
	Each(f func(T) bool)
}

// FromSlice returns a new list holding the values of s in order.
func FromSlice[T any](s []T) *List[T] {
	l := Empty[T]()
	for _, v := range s {
		l.Append(v)
	}
	return l
}

// FromArrayLike returns a new list holding a.Index(0) through
// a.Index(a.Len()-1) in order.
func FromArrayLike[T any](a ArrayLike[T]) *List[T] {
	l := Empty[T]()
	for i, n := 0, a.Len(); i < n; i++ {
		l.Append(a.Index(i))
	}
	return l
}

// FromIterable returns a new list holding the values produced by it, in the
// order they are produced.
func FromIterable[T any](it Iterable[T]) *List[T] {
	return FromSeq(it.Each)
}

// FromSeq returns a new list holding the values seq yields, in order.
func FromSeq[T any](seq func(yield func(T) bool)) *List[T] {
	l := Empty[T]()
	seq(func(v T) bool {
		l.Append(v)
		return true
	})
	return l
}

// From returns a new list from src, which must be one of:
//
//   - A []T.
//   - An ArrayLike[T].
//   - An Iterable[T], including a *List[T].
//   - A func(func(T) bool).
//   - A []any whose elements all have type T.
//
// A nil []T or []any is an empty sequence. Any other value, including nil
// and nil pointers, maps or funcs, causes an error wrapping ErrInvalidSource.
func From[T any](src any) (*List[T], error) {
	switch src := src.(type) {
	case []T:
		return FromSlice(src), nil
	case ArrayLike[T]:
		if isNil(src) {
			return nil, nilSourceError(src)
		}
		return FromArrayLike(src), nil
	case Iterable[T]:
		if isNil(src) {
			return nil, nilSourceError(src)
		}
		return FromIterable(src), nil
	case func(func(T) bool):
		if src == nil {
			return nil, nilSourceError(src)
		}
		return FromSeq(src), nil
	case []any:
		l := Empty[T]()
		for i, v := range src {
			tv, ok := v.(T)
			if !ok {
				var zero T
				return nil, fmt.Errorf("%w: element %d is %T, want %T",
					ErrInvalidSource, i, v, zero)
			}
			l.Append(tv)
		}
		return l, nil
	}
	return nil, fmt.Errorf("%w: %T is not a sequence", ErrInvalidSource, src)
}

func nilSourceError(src any) error {
	return fmt.Errorf("%w: nil %T", ErrInvalidSource, src)
}

// Reports whether v holds a nil pointer, map, slice, func, chan or interface.
// Calling methods on such a value usually panics.
func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
