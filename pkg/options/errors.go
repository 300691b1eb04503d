package options

import "errors"

// ErrInvalidOptions is returned when an Options value violates one of the
// preconditions Validate checks.
var ErrInvalidOptions = errors.New("options: invalid configuration")
