package core

// Find returns the value stored for key, and whether a live record for
// key exists. Levels are consulted from MinLevel upward; the first match
// is authoritative by the recency invariant (spec.md §4.6).
func (h *Hierarchy[K, V]) Find(key K) (V, bool) {
	var zero V
	for i := h.opts.MinLevel; i < h.usedLevels; i++ {
		lvl := h.levelAt(i)
		if lvl.empty() {
			continue
		}
		useIndex := i >= h.opts.MinIndexedLevel
		pos, found := lvl.find(key, useIndex)
		if !found {
			continue
		}
		if lvl.items[pos].Deleted() {
			return zero, false
		}
		return lvl.items[pos].Value, true
	}
	return zero, false
}

// LowerBound returns an Iterator positioned at the first live item with
// key >= key. Every level is scanned independently and the smallest
// non-tombstone candidate is kept, as in the reference implementation; if a
// lower level holds a tombstone for that candidate's key, the iterator is
// advanced through the merging iterator to the next live key.
func (h *Hierarchy[K, V]) LowerBound(key K) *Iterator[K, V] {
	var best struct {
		levelIdx int
		pos      int
		set      bool
	}

	for i := h.opts.MinLevel; i < h.usedLevels; i++ {
		lvl := h.levelAt(i)
		if lvl.empty() {
			continue
		}
		useIndex := i >= h.opts.MinIndexedLevel
		lo, hi := lvl.searchRange(key, useIndex)
		pos := lvl.lowerBoundIn(lo, hi, key)
		for pos < len(lvl.items) && lvl.items[pos].Deleted() {
			pos++
		}
		if pos >= len(lvl.items) {
			continue
		}
		if !best.set || lvl.items[pos].Key < h.levelAt(best.levelIdx).items[best.pos].Key {
			best.levelIdx, best.pos, best.set = i, pos, true
		}
	}

	if !best.set {
		return h.End()
	}
	it := &Iterator[K, V]{h: h, levelIdx: best.levelIdx, pos: best.pos}
	// A tombstone for the candidate's key in a lower (newer) level means the
	// candidate was erased; the merging iterator skips to the next live key.
	candKey := h.levelAt(best.levelIdx).items[best.pos].Key
	for i := h.opts.MinLevel; i < best.levelIdx; i++ {
		lvl := h.levelAt(i)
		if pos, found := lvl.find(candKey, i >= h.opts.MinIndexedLevel); found && lvl.items[pos].Deleted() {
			it.Next()
			break
		}
	}
	return it
}

// Begin returns an Iterator positioned at the smallest live key.
func (h *Hierarchy[K, V]) Begin() *Iterator[K, V] {
	var best struct {
		levelIdx int
		pos      int
		set      bool
	}

	for i := h.opts.MinLevel; i < h.usedLevels; i++ {
		lvl := h.levelAt(i)
		pos := 0
		for pos < len(lvl.items) && lvl.items[pos].Deleted() {
			pos++
		}
		if pos >= len(lvl.items) {
			continue
		}
		if !best.set || lvl.items[pos].Key < h.levelAt(best.levelIdx).items[best.pos].Key {
			best.levelIdx, best.pos, best.set = i, pos, true
		}
	}

	if !best.set {
		return h.End()
	}
	it := &Iterator[K, V]{h: h, levelIdx: best.levelIdx, pos: best.pos}
	candKey := h.levelAt(best.levelIdx).items[best.pos].Key
	for i := h.opts.MinLevel; i < best.levelIdx; i++ {
		lvl := h.levelAt(i)
		if pos, found := lvl.find(candKey, i >= h.opts.MinIndexedLevel); found && lvl.items[pos].Deleted() {
			it.Next()
			break
		}
	}
	return it
}
