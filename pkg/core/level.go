package core

import (
	"sort"

	"pgmdyn/pkg/common"
	"pgmdyn/pkg/core/learned"
	"pgmdyn/pkg/core/structure"
)

// level is a contiguous, strictly ascending run of Items. Capacity at
// level i is 2^i; the hierarchy enforces that invariant, not the level
// itself. index is only meaningful once rebuildIndex has been called for a
// level at or above MinIndexedLevel — levels below that threshold are
// searched in full regardless of what index holds. filter is set by
// rebuildFilter on every level a merge or bulk build fills, at any index.
type level[K common.Number, V any] struct {
	items  []Item[K, V]
	index  learned.Index[K]
	filter *structure.Filter[K]
}

func newLevel[K common.Number, V any]() *level[K, V] {
	return &level[K, V]{}
}

func (l *level[K, V]) size() int {
	return len(l.items)
}

func (l *level[K, V]) empty() bool {
	return len(l.items) == 0
}

// searchRange narrows the portion of items that could contain key. useIndex
// should be true only for levels at or above MinIndexedLevel; other levels
// are always searched in full.
func (l *level[K, V]) searchRange(key K, useIndex bool) (lo, hi int) {
	if !useIndex || l.index == nil {
		return 0, len(l.items)
	}
	lo, hi = l.index.Search(key)
	if lo < 0 {
		lo = 0
	}
	if hi > len(l.items) {
		hi = len(l.items)
	}
	if hi < 0 {
		hi = 0
	}
	if lo > hi {
		lo = hi
	}
	return lo, hi
}

// lowerBoundIn returns the index, within items[lo:hi], of the first item
// with key >= key, offset back into the whole-level index space.
func (l *level[K, V]) lowerBoundIn(lo, hi int, key K) int {
	return lo + sort.Search(hi-lo, func(i int) bool {
		return l.items[lo+i].Key >= key
	})
}

// upperBoundIn returns the index, within items[lo:hi], of the first item
// with key strictly greater than key. The caller must only pass an [lo,hi)
// narrowed by searchRange for this same key, so that any item at or past
// hi is already known to be greater than key.
func (l *level[K, V]) upperBoundIn(lo, hi int, key K) int {
	return lo + sort.Search(hi-lo, func(i int) bool {
		return l.items[lo+i].Key > key
	})
}

// find returns the index of the Item with key, and whether one was found.
func (l *level[K, V]) find(key K, useIndex bool) (pos int, found bool) {
	if l.filter != nil && !l.filter.MayContain(key) {
		return 0, false
	}
	lo, hi := l.searchRange(key, useIndex)
	idx := l.lowerBoundIn(lo, hi, key)
	if idx < hi && l.items[idx].Key == key {
		return idx, true
	}
	return idx, false
}

func (l *level[K, V]) rebuildIndex(minIndexedLevel, levelIdx, fanout int) {
	if levelIdx < minIndexedLevel {
		l.index = nil
		return
	}
	if len(l.items) == 0 {
		l.index = learned.Empty[K]()
		return
	}
	keys := make([]K, len(l.items))
	for i, it := range l.items {
		keys[i] = it.Key
	}
	l.index = learned.Build[K](keys, fanout)
}

func (l *level[K, V]) rebuildFilter(falsePositiveRate float64) {
	if len(l.items) == 0 {
		l.filter = nil
		return
	}
	f := structure.NewFilter[K](uint(len(l.items)), falsePositiveRate)
	for _, it := range l.items {
		f.Add(it.Key)
	}
	l.filter = f
}

// clear empties the level and drops its learned index and filter. When
// levelIdx exceeds maxFullyAllocatedLevel the backing slice is released
// rather than retained, matching the always-reserved band described in
// spec.md §4.2.
func (l *level[K, V]) clear(levelIdx, maxFullyAllocatedLevel int) {
	if levelIdx > maxFullyAllocatedLevel {
		l.items = nil
	} else {
		l.items = l.items[:0]
	}
	l.filter = nil
	l.index = nil
}
