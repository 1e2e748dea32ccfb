package memory

import "errors"

var (
	ErrEmptyKey = errors.New("key required")
)
