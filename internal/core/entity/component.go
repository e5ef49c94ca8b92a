package entity

import "github.com/zeusync/entitytype/internal/core/kinds"

// Component declares one component kind of an entity type. KindName is what
// the data file said; Kind is what it resolved to, nil when the name did not
// match any registered kind.
type Component struct {
	KindName string      `json:"kind" yaml:"kind"`
	Kind     *kinds.Kind `json:"-" yaml:"-"`
}

// NewComponent declares a component of the given kind.
func NewComponent(k *kinds.Kind) *Component {
	c := &Component{Kind: k}
	if k != nil {
		c.KindName = k.Name()
	}
	return c
}

// Resolved reports whether c is present and has a kind.
func (c *Component) Resolved() bool {
	return c != nil && c.Kind != nil
}
