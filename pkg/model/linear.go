package model

import (
	"pgmdyn/pkg/common"
)

// LinearModel is a single ordinary-least-squares regression of position on
// key. It is the leaf model of an RMIModel's second layer, but it also
// satisfies Model[K] on its own for levels small enough that a single
// segment is an adequate predictor.
type LinearModel[K common.Number] struct {
	Slope     float64
	Intercept float64
	n         float64
	sumX      float64
	sumY      float64
	sumXY     float64
	sumXX     float64
}

func NewLinearModel[K common.Number]() *LinearModel[K] {
	return &LinearModel[K]{}
}

func (lm *LinearModel[K]) Train(keys []K) {
	positions := make([]int, len(keys))
	for i := range positions {
		positions[i] = i
	}
	lm.TrainWithPos(keys, positions)
}

// TrainWithPos fits the regression against explicit (key, position) pairs,
// used when keys is a sub-bucket of a larger sorted array and its elements'
// true positions are not its own indices.
func (lm *LinearModel[K]) TrainWithPos(keys []K, positions []int) {
	lm.n = float64(len(keys))
	lm.sumX, lm.sumY, lm.sumXY, lm.sumXX = 0, 0, 0, 0

	for i, key := range keys {
		x := float64(key)
		y := float64(positions[i])

		lm.sumX += x
		lm.sumY += y
		lm.sumXY += x * y
		lm.sumXX += x * x
	}
	lm.solve()
}

func (lm *LinearModel[K]) solve() {
	denominator := lm.n*lm.sumXX - lm.sumX*lm.sumX
	if denominator == 0 {
		lm.Slope = 0
		lm.Intercept = 0
	} else {
		lm.Slope = (lm.n*lm.sumXY - lm.sumX*lm.sumY) / denominator
		lm.Intercept = (lm.sumY - lm.Slope*lm.sumX) / lm.n
	}
}

func (lm *LinearModel[K]) Predict(key K) int {
	return int(lm.Slope*float64(key) + lm.Intercept)
}

func (lm *LinearModel[K]) SizeInBytes() int {
	return 2 * 8 // Slope, Intercept
}
