package main

import (
	"flag"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"pgmdyn/pkg/core/learned"
)

func main() {
	n := flag.Int("n", 1_000_000, "number of keys to index")
	iterations := flag.Int("iterations", 100_000, "number of lookups to time")
	fanout := flag.Int("fanout", 64, "RMI bucket fanout")
	flag.Parse()

	fmt.Printf("Learned Index Benchmark (n=%d, iterations=%d, fanout=%d)\n", *n, *iterations, *fanout)
	fmt.Println("---------------------------------------------------")

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	keys := make([]int64, *n)
	for i := range keys {
		keys[i] = int64(i) * 3
	}
	rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	lookups := make([]int64, *iterations)
	for i := range lookups {
		lookups[i] = keys[rng.Intn(len(keys))]
	}

	fmt.Println(">> Building RMI...")
	buildStart := time.Now()
	idx := learned.Build[int64](keys, *fanout)
	fmt.Printf("   built in %v\n\n", time.Since(buildStart))

	fmt.Println(">> Plain binary search...")
	binStart := time.Now()
	for _, k := range lookups {
		sort.Search(len(keys), func(i int) bool { return keys[i] >= k })
	}
	binDuration := time.Since(binStart)
	fmt.Printf("   total %v | avg %v\n\n", binDuration, binDuration/time.Duration(*iterations))

	fmt.Println(">> Learned index narrow + binary search...")
	rmiStart := time.Now()
	for _, k := range lookups {
		lo, hi := idx.Search(k)
		sort.Search(hi-lo, func(i int) bool { return keys[lo+i] >= k })
	}
	rmiDuration := time.Since(rmiStart)
	fmt.Printf("   total %v | avg %v\n\n", rmiDuration, rmiDuration/time.Duration(*iterations))

	fmt.Println("---------------------------------------------------")
	speedup := binDuration.Seconds() / rmiDuration.Seconds()
	fmt.Printf("Conclusion: learned index is %.2fx faster than plain binary search\n", speedup)
	fmt.Printf("index_size_in_bytes = %d\n", idx.SizeInBytes())
}
