package core

import (
	"math"

	"pgmdyn/pkg/common"
	"pgmdyn/pkg/options"
)

// Build constructs a Hierarchy from sorted, a presorted slice of Items.
// The entire deduplicated input — keeping the first of each group of equal
// keys — is placed directly in the smallest level whose capacity suffices;
// every lower level starts empty. Build returns ErrUnsorted if sorted is
// not in non-decreasing key order.
func Build[K common.Number, V any](opts options.Options, sorted []Item[K, V]) (*Hierarchy[K, V], error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Key < sorted[i-1].Key {
			return nil, ErrUnsorted
		}
	}
	if len(sorted) == 0 {
		return New[K, V](opts)
	}

	deduped := dedupFirst(sorted)
	n := len(deduped)

	used := int(math.Ceil(math.Log2(float64(n)))) + 1
	// The source's used_levels = ceil(log2(n))+1 puts the data at level
	// used-1, which is at or below MinLevel for n <= 2^MinLevel; clamp so
	// the bulk-loaded level always sits strictly above the insertion buffer.
	if used < opts.MinLevel+2 {
		used = opts.MinLevel + 2
	}

	h := &Hierarchy[K, V]{opts: opts, usedLevels: used}

	initCount := used - opts.MinLevel
	if n2 := opts.MaxFullyAllocatedLevel - opts.MinLevel + 1; n2 > initCount {
		initCount = n2
	}
	h.levels = make([]*level[K, V], initCount)
	for i := range h.levels {
		h.levels[i] = newLevel[K, V]()
	}

	targetIdx := used - 1
	target := h.levelAt(targetIdx)
	target.items = deduped
	target.rebuildIndex(opts.MinIndexedLevel, targetIdx, opts.Fanout)
	target.rebuildFilter(bloomFalsePositiveRate)

	return h, nil
}

func dedupFirst[K common.Number, V any](sorted []Item[K, V]) []Item[K, V] {
	out := make([]Item[K, V], 0, len(sorted))
	out = append(out, sorted[0])
	for _, it := range sorted[1:] {
		if it.Key != out[len(out)-1].Key {
			out = append(out, it)
		}
	}
	return out
}
