package entity

import "errors"

var (
	ErrNilType         = errors.New("entity type is nil")
	ErrEmptyName       = errors.New("entity type name must not be empty")
	ErrDuplicateEntity = errors.New("entity type already registered")
)
