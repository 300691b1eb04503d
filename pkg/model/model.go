package model

import "pgmdyn/pkg/common"

// Model is satisfied by anything that can be trained on a sorted key slice
// and asked to predict a position for a key.
type Model[K common.Number] interface {
	Train(keys []K)
	Predict(key K) (pos int)
	SizeInBytes() int
}
