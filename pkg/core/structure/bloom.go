// Package structure holds small internal accelerators the core hierarchy
// uses but that are never part of its observable contract.
package structure

import (
	"hash/fnv"
	"math"

	"pgmdyn/pkg/common"
)

// Filter is a per-level negative-lookup accelerator: a miss proves the key
// is absent from the level, a hit means nothing (the level must still be
// searched). It is not safe for concurrent use — the hierarchy it backs
// has no lock either, per its single-threaded contract.
type Filter[K common.Number] struct {
	bitset []bool
	k      uint
	m      uint
	count  uint
}

// NewFilter sizes a filter for n expected entries and a target false
// positive rate p.
func NewFilter[K common.Number](n uint, p float64) *Filter[K] {
	if n == 0 {
		n = 1
	}
	m := uint(math.Ceil(-float64(n) * math.Log(p) / (math.Ln2 * math.Ln2)))
	if m == 0 {
		m = 1
	}
	k := uint(math.Ceil((float64(m) / float64(n)) * math.Ln2))
	if k == 0 {
		k = 1
	}

	return &Filter[K]{
		bitset: make([]bool, m),
		k:      k,
		m:      m,
	}
}

func (f *Filter[K]) Add(key K) {
	h1, h2 := keyHashes(key)
	for i := uint(0); i < f.k; i++ {
		pos := (h1 + uint32(i)*h2) % uint32(f.m)
		f.bitset[pos] = true
	}
	f.count++
}

func (f *Filter[K]) MayContain(key K) bool {
	h1, h2 := keyHashes(key)
	for i := uint(0); i < f.k; i++ {
		pos := (h1 + uint32(i)*h2) % uint32(f.m)
		if !f.bitset[pos] {
			return false
		}
	}
	return true
}

func keyHashes[K common.Number](key K) (h1, h2 uint32) {
	bits := keyBits(key)
	h := fnv.New32a()
	h.Write([]byte{
		byte(bits), byte(bits >> 8), byte(bits >> 16), byte(bits >> 24),
		byte(bits >> 32), byte(bits >> 40), byte(bits >> 48), byte(bits >> 56),
	})
	return h.Sum32(), uint32(bits ^ (bits >> 32))
}

func keyBits[K common.Number](key K) uint64 {
	switch v := any(key).(type) {
	case float64:
		return math.Float64bits(v)
	case float32:
		return uint64(math.Float32bits(v))
	default:
		return uint64(key)
	}
}

func (f *Filter[K]) Stats() map[string]uint {
	return map[string]uint{
		"bits":    f.m,
		"hashes":  f.k,
		"entries": f.count,
	}
}
