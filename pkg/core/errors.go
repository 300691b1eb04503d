package core

import "errors"

// ErrUnsorted is returned by Build when the input slice is not in
// non-decreasing key order.
var ErrUnsorted = errors.New("core: bulk input is not sorted by key")
