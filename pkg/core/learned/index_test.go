package learned

import (
	"math/rand"
	"sort"
	"testing"
)

func TestRMISearchContainsTruePosition(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	keys := make([]int64, 3000)
	seen := map[int64]bool{}
	for i := range keys {
		for {
			k := rng.Int63n(5_000_000)
			if !seen[k] {
				seen[k] = true
				keys[i] = k
				break
			}
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	idx := Build[int64](keys, 32)
	for i, k := range keys {
		lo, hi := idx.Search(k)
		if i < lo || i >= hi {
			t.Fatalf("true position %d for key %d not within returned range [%d,%d)", i, k, lo, hi)
		}
		if lo < 0 || hi > len(keys) || lo > hi {
			t.Fatalf("invalid range [%d,%d) for key %d", lo, hi, k)
		}
	}
}

func TestStubAlwaysReturnsFullRange(t *testing.T) {
	s := NewStub[int64](100)
	lo, hi := s.Search(42)
	if lo != 0 || hi != 100 {
		t.Fatalf("Stub.Search = (%d,%d); want (0,100)", lo, hi)
	}
}

func TestEmptyHasZeroSize(t *testing.T) {
	e := Empty[int64]()
	if e.Size() != 0 {
		t.Fatalf("Empty().Size() = %d; want 0", e.Size())
	}
	lo, hi := e.Search(5)
	if lo != 0 || hi != 0 {
		t.Fatalf("Empty().Search(5) = (%d,%d); want (0,0)", lo, hi)
	}
}

func TestBuildEmptyKeysDoesNotPanic(t *testing.T) {
	idx := Build[int64](nil, 16)
	lo, hi := idx.Search(0)
	if lo != 0 || hi != 0 {
		t.Fatalf("Search on empty RMI = (%d,%d); want (0,0)", lo, hi)
	}
}

func TestBinarySearchRangeMatchesSortSearch(t *testing.T) {
	keys := []int64{1, 3, 5, 7, 9}
	lo, hi := BinarySearchRange(keys, 5)
	if lo != 2 || hi != 3 {
		t.Fatalf("BinarySearchRange(5) = (%d,%d); want (2,3)", lo, hi)
	}
	lo, hi = BinarySearchRange(keys, 6)
	if lo != 3 || hi != 3 {
		t.Fatalf("BinarySearchRange(6) = (%d,%d); want (3,3)", lo, hi)
	}
}
