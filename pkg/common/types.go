// Package common holds the small set of generic constraints shared by the
// model, learned-index, and core packages.
package common

import "golang.org/x/exp/constraints"

// Number is the key constraint for everything that trains or queries a
// learned index: it must support ordering and arithmetic, which rules out
// strings even though those satisfy cmp.Ordered.
type Number interface {
	constraints.Integer | constraints.Float
}
