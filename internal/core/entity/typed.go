package entity

import "github.com/zeusync/entitytype/internal/core/kinds"

// GetAs is Get with a checked conversion to T. A resolution miss is reported
// as by Get; a stored value that is not a T yields the zero value and false.
func GetAs[T any](t *Type, c kinds.Capability, tr Tranche, row int) (T, bool) {
	v, ok := t.Get(c, tr, row).(T)
	return v, ok
}

// TryGetAs is TryGet with a checked conversion to T.
func TryGetAs[T any](t *Type, c kinds.Capability, tr Tranche, row int) (T, bool) {
	raw, found := t.TryGet(c, tr, row)
	if !found {
		var zero T
		return zero, false
	}
	v, ok := raw.(T)
	return v, ok
}
