package core

import (
	"testing"

	"pgmdyn/pkg/common"
)

func keys[K common.Number, V any](items []Item[K, V]) []K {
	out := make([]K, len(items))
	for i, it := range items {
		out[i] = it.Key
	}
	return out
}

func TestMergeRunsTieBreakPrefersA(t *testing.T) {
	a := []Item[int, string]{NewItem[int, string](1, "new")}
	b := []Item[int, string]{NewItem[int, string](1, "old")}
	out := make([]Item[int, string], 2)

	n := mergeRuns(a, b, out, false)
	if n != 1 || out[0].Value != "new" {
		t.Fatalf("got %d items, out[0]=%+v; want 1 item with value new", n, out[0])
	}
}

func TestMergeRunsInterleaves(t *testing.T) {
	a := []Item[int, string]{NewItem[int, string](1, "a"), NewItem[int, string](3, "a")}
	b := []Item[int, string]{NewItem[int, string](2, "b"), NewItem[int, string](4, "b")}
	out := make([]Item[int, string], 4)

	n := mergeRuns(a, b, out, false)
	if n != 4 {
		t.Fatalf("got %d items, want 4", n)
	}
	if got, want := keys(out[:n]), []int{1, 2, 3, 4}; !equalInts(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestMergeRunsDropsTombstoneOnlyWhenToldTo(t *testing.T) {
	a := []Item[int, string]{Tombstone[int, string](5)}
	b := []Item[int, string]{NewItem[int, string](5, "old")}
	out := make([]Item[int, string], 2)

	n := mergeRuns(a, b, out, false)
	if n != 1 || !out[0].Deleted() {
		t.Fatalf("without drop flag, tombstone should be retained: n=%d out[0]=%+v", n, out[0])
	}

	n = mergeRuns(a, b, out, true)
	if n != 0 {
		t.Fatalf("with drop flag on a matching tie, tombstone should vanish entirely: n=%d", n)
	}
}

func TestMergeRunsDoesNotDropUnmatchedTombstone(t *testing.T) {
	a := []Item[int, string]{Tombstone[int, string](5)}
	b := []Item[int, string]{NewItem[int, string](9, "other")}
	out := make([]Item[int, string], 2)

	n := mergeRuns(a, b, out, true)
	if n != 2 {
		t.Fatalf("an unmatched tombstone must still be emitted, even with drop flag set: n=%d", n)
	}
	if !out[0].Deleted() || out[0].Key != 5 {
		t.Fatalf("out[0] = %+v; want tombstone for key 5", out[0])
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
