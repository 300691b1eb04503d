// Package core implements the dynamic, learned, ordered key→value map: a
// logarithmic-method buffer hierarchy of always-sorted levels, merged
// pairwise as the bottom level overflows, cooperating with a per-level
// learned index above a configurable threshold.
package core

import (
	"unsafe"

	"pgmdyn/pkg/common"
	"pgmdyn/pkg/options"
)

// bloomFalsePositiveRate is the target false-positive rate for every
// level's negative-lookup filter; it trades a small amount of memory for
// fewer wasted binary searches and never affects query results.
const bloomFalsePositiveRate = 0.01

// Hierarchy is a dynamic, learned, ordered key→value map over unique keys
// K. It is not safe for concurrent use: all public methods assume
// exclusive access, matching spec.md §5's single-threaded model.
type Hierarchy[K common.Number, V any] struct {
	opts       options.Options
	usedLevels int
	levels     []*level[K, V]
}

// New constructs an empty Hierarchy, pre-reserving
// max(InitLevels, MaxFullyAllocatedLevel-MinLevel+1) level slots starting
// at MinLevel.
func New[K common.Number, V any](opts options.Options) (*Hierarchy[K, V], error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	h := &Hierarchy[K, V]{
		opts:       opts,
		usedLevels: opts.MinLevel,
	}

	initCount := opts.InitLevels
	if n := opts.MaxFullyAllocatedLevel - opts.MinLevel + 1; n > initCount {
		initCount = n
	}
	h.levels = make([]*level[K, V], initCount)
	for i := range h.levels {
		h.levels[i] = newLevel[K, V]()
	}
	return h, nil
}

// levelAt returns the level at absolute index idx, growing the backing
// slice on demand if idx has never been addressed before.
func (h *Hierarchy[K, V]) levelAt(idx int) *level[K, V] {
	pos := idx - h.opts.MinLevel
	for pos >= len(h.levels) {
		h.levels = append(h.levels, newLevel[K, V]())
	}
	return h.levels[pos]
}

// Insert adds or overwrites the value for key.
func (h *Hierarchy[K, V]) Insert(key K, value V) {
	h.insert(NewItem[K, V](key, value))
}

// Erase marks key as deleted. It is equivalent to inserting a tombstone
// and never short-circuits on absence: spec.md §4.5.
func (h *Hierarchy[K, V]) Erase(key K) {
	h.insert(Tombstone[K, V](key))
}

func (h *Hierarchy[K, V]) insert(newItem Item[K, V]) {
	bottom := h.levelAt(h.opts.MinLevel)
	insertionPoint := bottom.lowerBoundIn(0, len(bottom.items), newItem.Key)
	if insertionPoint < len(bottom.items) && bottom.items[insertionPoint].Key == newItem.Key {
		bottom.items[insertionPoint] = newItem
		return
	}

	firstLevelMaxSize := (1 << (h.opts.MinLevel + 1)) - 1
	if len(bottom.items) < firstLevelMaxSize {
		bottom.items = insertAt(bottom.items, insertionPoint, newItem)
		if h.usedLevels == h.opts.MinLevel {
			h.usedLevels = h.opts.MinLevel + 1
		}
		return
	}

	slotsRequired := firstLevelMaxSize + 1
	i := h.opts.MinLevel + 1
	for ; i < h.usedLevels; i++ {
		lvl := h.levelAt(i)
		slotsLeft := (1 << i) - lvl.size()
		if slotsRequired <= slotsLeft {
			break
		}
		slotsRequired += lvl.size()
	}

	needNewLevel := i == h.usedLevels
	if needNewLevel {
		h.usedLevels++
		h.levelAt(i)
	}

	h.pairwiseLogarithmicMerge(newItem, i-1, slotsRequired, insertionPoint)
}

// insertAt inserts v at pos in s, shifting later elements up by one.
func insertAt[T any](s []T, pos int, v T) []T {
	s = append(s, v)
	copy(s[pos+1:], s[pos:len(s)-1])
	s[pos] = v
	return s
}

// Count returns 1 if key is present and live, 0 otherwise.
func (h *Hierarchy[K, V]) Count(key K) int {
	if _, ok := h.Find(key); ok {
		return 1
	}
	return 0
}

// SizeInBytes estimates the total memory held by all levels, including
// their learned indices and filters.
func (h *Hierarchy[K, V]) SizeInBytes() int {
	var zero Item[K, V]
	itemSize := int(unsafe.Sizeof(zero))
	total := h.IndexSizeInBytes()
	for _, lvl := range h.levels {
		total += lvl.size() * itemSize
		if lvl.filter != nil {
			// one bool per filter bit
			total += int(lvl.filter.Stats()["bits"])
		}
	}
	return total
}

// IndexSizeInBytes estimates the memory held by every level's learned
// index across the whole hierarchy.
func (h *Hierarchy[K, V]) IndexSizeInBytes() int {
	total := 0
	for _, lvl := range h.levels {
		if lvl.index != nil {
			total += lvl.index.SizeInBytes()
		}
	}
	return total
}
