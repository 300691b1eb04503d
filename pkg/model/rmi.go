package model

import (
	"pgmdyn/pkg/common"
)

// RMIModel is a two-layer recursive model index.
// Layer 1: an affine bucket map over [min, max] picks a segment.
// Layer 2: one LinearModel per segment predicts the position within it.
type RMIModel[K common.Number] struct {
	globalMin K
	globalMax K
	fanout    int
	buckets   []*LinearModel[K]
}

func NewRMIModel[K common.Number](fanout int) *RMIModel[K] {
	return &RMIModel[K]{
		fanout:  fanout,
		buckets: make([]*LinearModel[K], fanout),
	}
}

func (rmi *RMIModel[K]) Train(keys []K) {
	if len(keys) == 0 {
		return
	}

	rmi.globalMin = keys[0]
	rmi.globalMax = keys[len(keys)-1]

	keyRange := float64(rmi.globalMax) - float64(rmi.globalMin)
	if keyRange == 0 {
		keyRange = 1
	}

	bucketKeys := make([][]K, rmi.fanout)
	bucketPoss := make([][]int, rmi.fanout)

	for i, key := range keys {
		idx := rmi.bucketIndex(key, keyRange)
		bucketKeys[idx] = append(bucketKeys[idx], key)
		bucketPoss[idx] = append(bucketPoss[idx], i)
	}

	for i := 0; i < rmi.fanout; i++ {
		rmi.buckets[i] = NewLinearModel[K]()
		rmi.buckets[i].TrainWithPos(bucketKeys[i], bucketPoss[i])
	}
}

func (rmi *RMIModel[K]) bucketIndex(key K, keyRange float64) int {
	idx := int((float64(key) - float64(rmi.globalMin)) / keyRange * float64(rmi.fanout))
	if idx >= rmi.fanout {
		idx = rmi.fanout - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

func (rmi *RMIModel[K]) Predict(key K) int {
	keyRange := float64(rmi.globalMax) - float64(rmi.globalMin)
	if keyRange == 0 {
		return 0
	}
	return rmi.buckets[rmi.bucketIndex(key, keyRange)].Predict(key)
}

func (rmi *RMIModel[K]) SizeInBytes() int {
	total := 0
	for _, b := range rmi.buckets {
		if b != nil {
			total += b.SizeInBytes()
		}
	}
	return total
}
