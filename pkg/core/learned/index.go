// Package learned provides implementations of the learned-index adapter
// contract the core hierarchy treats as a black box: build a model over a
// sorted key slice, then narrow any later key to a search range.
package learned

import (
	"sort"

	"pgmdyn/pkg/common"
	"pgmdyn/pkg/model"
)

// Index is satisfied by anything the core can hand a sorted level of keys
// to at merge time and later ask to narrow a lookup range for a key. Search
// never produces a false negative: the true position of key, if present,
// always lies in [lo, hi).
type Index[K common.Number] interface {
	Search(key K) (lo, hi int)
	Size() int
	SizeInBytes() int
}

// RMI is a two-layer recursive-model-index adapter. It trains a
// model.RMIModel over the level's sorted keys and tracks the widest
// under/over-prediction seen during training, so that Search can widen any
// later prediction by the same bound and still guarantee containment.
type RMI[K common.Number] struct {
	size   int
	model  *model.RMIModel[K]
	minErr int
	maxErr int
}

// Build trains an RMI over sortedKeys. Callers must supply keys already in
// ascending order; Build does not sort them itself.
func Build[K common.Number](sortedKeys []K, fanout int) *RMI[K] {
	rmi := model.NewRMIModel[K](fanout)
	rmi.Train(sortedKeys)

	minErr, maxErr := 0, 0
	for i, key := range sortedKeys {
		err := i - rmi.Predict(key)
		if err < minErr {
			minErr = err
		}
		if err > maxErr {
			maxErr = err
		}
	}

	return &RMI[K]{
		size:   len(sortedKeys),
		model:  rmi,
		minErr: minErr,
		maxErr: maxErr,
	}
}

func (r *RMI[K]) Search(key K) (lo, hi int) {
	if r.size == 0 {
		return 0, 0
	}

	predicted := r.model.Predict(key)
	lo = predicted + r.minErr
	hi = predicted + r.maxErr + 1

	if lo < 0 {
		lo = 0
	}
	if hi > r.size {
		hi = r.size
	}
	if hi < 0 {
		hi = 0
	}
	if lo > hi {
		lo = hi
	}
	return lo, hi
}

func (r *RMI[K]) Size() int {
	return r.size
}

func (r *RMI[K]) SizeInBytes() int {
	return r.model.SizeInBytes()
}

// Stub always returns the full range; it never trains a model. Levels below
// MinIndexedLevel carry no index at all; Stub backs Empty and serves tests
// that want to exercise the indexed code path without training cost.
type Stub[K common.Number] struct {
	size int
}

func NewStub[K common.Number](size int) *Stub[K] {
	return &Stub[K]{size: size}
}

func (s *Stub[K]) Search(key K) (lo, hi int) {
	return 0, s.size
}

func (s *Stub[K]) Size() int {
	return s.size
}

func (s *Stub[K]) SizeInBytes() int {
	return 0
}

// Empty is the zero-size index assigned to a level at or above
// MinIndexedLevel that a merge has left with no items; every search against
// it is vacuously empty.
func Empty[K common.Number]() *Stub[K] {
	return &Stub[K]{size: 0}
}

// BinarySearchRange narrows [lo, hi) for key within sortedKeys using plain
// binary search: [idx, idx+1) when key is present at idx, otherwise the
// empty range at key's insertion point.
func BinarySearchRange[K common.Number](sortedKeys []K, key K) (lo, hi int) {
	idx := sort.Search(len(sortedKeys), func(i int) bool {
		return sortedKeys[i] >= key
	})
	if idx < len(sortedKeys) && sortedKeys[idx] == key {
		return idx, idx + 1
	}
	return idx, idx
}
