package list_test

import (
	"fmt"

	"src.sll.sh/pkg/list"
)

func Example() {
	l := list.Empty[int]().Append(2).Append(3).Prepend(1)
	fmt.Println(l, l.Len())
	l.RemoveAt(1).RemoveAt(5)
	fmt.Println(l, l.Len())
	// Output:
	// [1 2 3] 3
	// [1 3] 2
}

func ExampleList_Iterator() {
	l := list.FromSlice([]string{"a", "b", "c"})
	for it := l.Iterator(); it.Next(); {
		fmt.Println(it.Value())
	}
	// Output:
	// a
	// b
	// c
}

func ExampleList_First() {
	l := list.Empty[string]()
	_, ok := l.First()
	fmt.Println(ok)
	l.Append("x")
	v, ok := l.First()
	fmt.Println(v, ok)
	// Output:
	// false
	// x true
}

func ExampleFrom() {
	l, err := list.From[int]([]any{1, 2})
	fmt.Println(l, err)
	_, err = list.From[int]("12")
	fmt.Println(err)
	// Output:
	// [1 2] <nil>
	// invalid source: string is not a sequence
}
