package model

import "testing"

func TestLinearModelFitsExactLine(t *testing.T) {
	keys := []int{0, 2, 4, 6, 8}
	lm := NewLinearModel[int]()
	lm.Train(keys)

	for i, k := range keys {
		got := lm.Predict(k)
		if diff := got - i; diff < -1 || diff > 1 {
			t.Errorf("Predict(%d) = %d, want close to %d", k, got, i)
		}
	}
}

func TestLinearModelTrainWithPos(t *testing.T) {
	keys := []int{10, 20, 30}
	positions := []int{5, 6, 7}
	lm := NewLinearModel[int]()
	lm.TrainWithPos(keys, positions)

	if got := lm.Predict(20); got < 5 || got > 7 {
		t.Errorf("Predict(20) = %d, want within [5,7]", got)
	}
}

func TestLinearModelSingleKeyDoesNotPanic(t *testing.T) {
	lm := NewLinearModel[int]()
	lm.Train([]int{5})
	_ = lm.Predict(5)
}
