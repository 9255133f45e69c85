package wavlmap_test

import (
	"fmt"

	"github.com/ordered-kv/wavlmap"
)

func ExampleMap_Entries() {
	m := wavlmap.New[string, int]()
	m.Set("banana", 2)
	m.Set("apple", 1)
	m.Set("cherry", 3)

	for k, v := range m.Entries() {
		fmt.Println(k, v)
	}
	// Output:
	// apple 1
	// banana 2
	// cherry 3
}

func ExampleMap_From() {
	m := wavlmap.New[int, string]()
	for i := 1; i <= 5; i++ {
		m.Set(i, fmt.Sprintf("n%d", i))
	}

	for k, v := range m.From(3).Entries() {
		fmt.Println(k, v)
	}
	// Output:
	// 3 n3
	// 4 n4
	// 5 n5
}

func ExampleMap_Below() {
	m := wavlmap.New[int, string]()
	for i := 1; i <= 5; i++ {
		m.Set(i, fmt.Sprintf("n%d", i))
	}

	for k := range m.Below(3).Keys() {
		fmt.Println(k)
	}
	// Output:
	// 1
	// 2
}
