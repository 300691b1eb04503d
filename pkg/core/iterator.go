package core

import (
	"container/heap"

	"pgmdyn/pkg/common"
)

// heapEntry is a candidate next-position within one level, tracked by the
// merging iterator's priority queue.
type heapEntry[K common.Number] struct {
	levelIdx int
	pos      int
	key      K
}

// iterHeap is a min-heap by key, with ties broken by the higher level
// index sorting first so that the lowest-level (newest) record among a
// run of equal keys is popped last — spec.md §4.8's priority rule.
type iterHeap[K common.Number] []heapEntry[K]

func (q iterHeap[K]) Len() int { return len(q) }

func (q iterHeap[K]) Less(i, j int) bool {
	if q[i].key != q[j].key {
		return q[i].key < q[j].key
	}
	return q[i].levelIdx > q[j].levelIdx
}

func (q iterHeap[K]) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *iterHeap[K]) Push(x any) { *q = append(*q, x.(heapEntry[K])) }

func (q *iterHeap[K]) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	*q = old[:n-1]
	return e
}

// Iterator is a lazy, forward-only, multi-way merging cursor over live
// items across all levels in ascending key order, hiding deletes and
// shadowed older versions. It is invalidated by any mutation of the
// Hierarchy it was obtained from.
type Iterator[K common.Number, V any] struct {
	h           *Hierarchy[K, V]
	levelIdx    int
	pos         int
	atEnd       bool
	initialized bool
	queue       iterHeap[K]
}

// End returns an iterator positioned past the last item.
func (h *Hierarchy[K, V]) End() *Iterator[K, V] {
	return &Iterator[K, V]{h: h, atEnd: true, initialized: true}
}

// Item returns the current item and true, or the zero value and false if
// the iterator is positioned at end.
func (it *Iterator[K, V]) Item() (Item[K, V], bool) {
	if it.atEnd {
		var zero Item[K, V]
		return zero, false
	}
	return it.h.levelAt(it.levelIdx).items[it.pos], true
}

// AtEnd reports whether the iterator has no current item.
func (it *Iterator[K, V]) AtEnd() bool {
	return it.atEnd
}

// Next advances the iterator to the next live, non-shadowed item.
func (it *Iterator[K, V]) Next() {
	it.lazyInitQueue()
	it.advance()
}

func (it *Iterator[K, V]) lazyInitQueue() {
	if it.initialized {
		return
	}
	it.initialized = true

	curKey := it.h.levelAt(it.levelIdx).items[it.pos].Key
	for i := it.h.opts.MinLevel; i < it.h.usedLevels; i++ {
		lvl := it.h.levelAt(i)
		if lvl.empty() {
			continue
		}
		useIndex := i >= it.h.opts.MinIndexedLevel
		lo, hi := lvl.searchRange(curKey, useIndex)
		pos := lvl.upperBoundIn(lo, hi, curKey)
		if pos < len(lvl.items) {
			heap.Push(&it.queue, heapEntry[K]{levelIdx: i, pos: pos, key: lvl.items[pos].Key})
		}
	}
}

func (it *Iterator[K, V]) queueStep() heapEntry[K] {
	e := heap.Pop(&it.queue).(heapEntry[K])
	lvl := it.h.levelAt(e.levelIdx)
	if e.pos+1 < len(lvl.items) {
		heap.Push(&it.queue, heapEntry[K]{levelIdx: e.levelIdx, pos: e.pos + 1, key: lvl.items[e.pos+1].Key})
	}
	return e
}

func (it *Iterator[K, V]) advance() {
	if it.queue.Len() == 0 {
		it.setEnd()
		return
	}

	var tmp heapEntry[K]
	for {
		tmp = it.queueStep()
		for it.queue.Len() > 0 && it.queue[0].key == tmp.key {
			tmp = it.queueStep()
		}
		if !it.h.levelAt(tmp.levelIdx).items[tmp.pos].Deleted() {
			break
		}
		if it.queue.Len() == 0 {
			break
		}
	}

	if it.h.levelAt(tmp.levelIdx).items[tmp.pos].Deleted() {
		it.setEnd()
		return
	}
	it.levelIdx = tmp.levelIdx
	it.pos = tmp.pos
}

func (it *Iterator[K, V]) setEnd() {
	it.atEnd = true
	it.queue = nil
}

// Each calls fn for every live item from it to end, in ascending key
// order, stopping early if fn returns false.
func (it *Iterator[K, V]) Each(fn func(item Item[K, V]) bool) {
	for !it.AtEnd() {
		item, ok := it.Item()
		if !ok || !fn(item) {
			return
		}
		it.Next()
	}
}
