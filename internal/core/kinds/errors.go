package kinds

import "errors"

var (
	ErrEmptyName           = errors.New("name must not be empty")
	ErrDuplicateCapability = errors.New("capability already defined")
	ErrDuplicateKind       = errors.New("kind already registered")
	ErrUnknownCapability   = errors.New("unknown capability")
)
