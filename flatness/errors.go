package flatness

import "errors"

// ErrOptionViolation is returned by Detect when an invalid Option is
// supplied (negative worker count, non-positive tolerance).
var ErrOptionViolation = errors.New("flatness: invalid option supplied")
