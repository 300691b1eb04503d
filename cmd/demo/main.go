package main

import (
	"fmt"
	"log"

	"pgmdyn/pkg/core"
	"pgmdyn/pkg/options"
)

func main() {
	opts := options.Defaults()
	h, err := core.New[int64, string](opts)
	if err != nil {
		log.Fatalf("core.New: %v", err)
	}

	fmt.Println("Inserting keys 1..5000...")
	for k := int64(1); k <= 5000; k++ {
		h.Insert(k, fmt.Sprintf("value-%d", k))
	}

	fmt.Println("Overwriting key 42...")
	h.Insert(42, "overwritten")
	if v, ok := h.Find(42); ok {
		fmt.Printf("find(42) = %q\n", v)
	}

	fmt.Println("Erasing key 1000...")
	h.Erase(1000)
	if _, ok := h.Find(1000); !ok {
		fmt.Println("find(1000) = end, as expected")
	}

	it := h.LowerBound(4995)
	fmt.Println("Iterating from lower_bound(4995):")
	for !it.AtEnd() {
		item, _ := it.Item()
		fmt.Printf("  %d -> %s\n", item.Key, item.Value)
		it.Next()
	}

	fmt.Printf("size_in_bytes = %d, index_size_in_bytes = %d\n", h.SizeInBytes(), h.IndexSizeInBytes())
}
