package core

import (
	"github.com/google/btree"

	"pgmdyn/pkg/common"
)

// oracle is an independent ordered map used only to cross-check Hierarchy
// query results under randomized operation sequences. It is the test-only
// descendant of the btree-backed buffer this package's teacher once used
// as its live mutable store.
type oracle[K common.Number, V any] struct {
	tree *btree.BTreeG[oracleItem[K, V]]
}

type oracleItem[K common.Number, V any] struct {
	key   K
	value V
	live  bool
}

func newOracle[K common.Number, V any]() *oracle[K, V] {
	less := func(a, b oracleItem[K, V]) bool { return a.key < b.key }
	return &oracle[K, V]{tree: btree.NewG(32, less)}
}

func (o *oracle[K, V]) Insert(key K, value V) {
	o.tree.ReplaceOrInsert(oracleItem[K, V]{key: key, value: value, live: true})
}

func (o *oracle[K, V]) Erase(key K) {
	o.tree.ReplaceOrInsert(oracleItem[K, V]{key: key, live: false})
}

func (o *oracle[K, V]) Find(key K) (V, bool) {
	item, ok := o.tree.Get(oracleItem[K, V]{key: key})
	if !ok || !item.live {
		var zero V
		return zero, false
	}
	return item.value, true
}

func (o *oracle[K, V]) LowerBound(key K) (K, V, bool) {
	var zk K
	var zv V
	var found bool
	o.tree.AscendGreaterOrEqual(oracleItem[K, V]{key: key}, func(item oracleItem[K, V]) bool {
		if !item.live {
			return true
		}
		zk, zv, found = item.key, item.value, true
		return false
	})
	return zk, zv, found
}

func (o *oracle[K, V]) Ascend(fn func(key K, value V) bool) {
	o.tree.Ascend(func(item oracleItem[K, V]) bool {
		if !item.live {
			return true
		}
		return fn(item.key, item.value)
	})
}
