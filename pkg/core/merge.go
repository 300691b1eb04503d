package core

import "pgmdyn/pkg/common"

// pairwiseLogarithmicMerge merges levels MinLevel..upToLevel together with
// newItem into level upToLevel+1, using two scratch buffers and alternating
// between them so the chain of two-way merges never copies more than
// necessary. newItem is spliced into the bottom level's copy at
// insertionPoint, matching spec.md §4.4.1's description of the initial
// step. Unlike the reference implementation this tracks the live output
// buffer explicitly rather than assuming a fixed final buffer, which keeps
// the ping-pong correct when the target level already holds data.
func (h *Hierarchy[K, V]) pairwiseLogarithmicMerge(newItem Item[K, V], upToLevel, sizeHint, insertionPoint int) {
	minLevel := h.opts.MinLevel
	targetIdx := upToLevel + 1
	targetLevel := h.levelAt(targetIdx)
	targetWasEmpty := targetLevel.empty()

	// Both scratch buffers are sized to the worst case (the accumulated
	// cascade plus whatever the target level already holds) rather than
	// splitting sizeHint across them: the output buffer at any given step
	// is chosen dynamically (see curIsA below), so either one may end up
	// holding the final merge against the target level's pre-existing
	// data.
	scratchSize := sizeHint + targetLevel.size()
	bufA := make([]Item[K, V], scratchSize)
	bufB := make([]Item[K, V], scratchSize)

	mod := (upToLevel - minLevel) % 2
	curIsA := mod != 0

	bottom := h.levelAt(minLevel)
	cur := bufB
	if curIsA {
		cur = bufA
	}
	copy(cur, bottom.items[:insertionPoint])
	cur[insertionPoint] = newItem
	copy(cur[insertionPoint+1:], bottom.items[insertionPoint:])
	actualSize := 1 << (1 + minLevel)

	limit := upToLevel
	if !targetWasEmpty {
		limit = upToLevel + 1
	}

	for i := minLevel + 1; i <= limit; i++ {
		lvl := h.levelAt(i)
		out := bufA
		if curIsA {
			out = bufB
		}

		canDeletePermanently := i == h.usedLevels-1
		actualSize = mergeRuns(cur[:actualSize], lvl.items, out, canDeletePermanently)

		cur = out
		curIsA = !curIsA
		lvl.clear(i, h.opts.MaxFullyAllocatedLevel)
	}

	// The target is the topmost used level: no older record sits above it
	// for a tombstone to shadow, so every tombstone in the output is dropped.
	if targetIdx == h.usedLevels-1 {
		kept := 0
		for _, item := range cur[:actualSize] {
			if !item.Deleted() {
				cur[kept] = item
				kept++
			}
		}
		actualSize = kept
	}

	result := make([]Item[K, V], actualSize)
	copy(result, cur[:actualSize])

	bottom.items = bottom.items[:0]
	targetLevel.items = result
	targetLevel.rebuildIndex(h.opts.MinIndexedLevel, targetIdx, h.opts.Fanout)
	targetLevel.rebuildFilter(bloomFalsePositiveRate)
}

// mergeRuns merges sorted a and b into out, writing at most len(a)+len(b)
// items, and returns the number written. On equal keys a's item wins (it
// is always the newer/lower-level run); if dropTombstones is true and the
// winning item on a tie is a tombstone, neither input is emitted at all —
// the tombstone has reached the topmost used level and its job is done.
func mergeRuns[K common.Number, V any](a, b []Item[K, V], out []Item[K, V], dropTombstones bool) int {
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case b[j].Key < a[i].Key:
			out[k] = b[j]
			j++
			k++
		case a[i].Key < b[j].Key:
			out[k] = a[i]
			i++
			k++
		case dropTombstones && a[i].Deleted():
			i++
			j++
		default:
			out[k] = a[i]
			i++
			j++
			k++
		}
	}
	k += copy(out[k:], a[i:])
	k += copy(out[k:], b[j:])
	return k
}
