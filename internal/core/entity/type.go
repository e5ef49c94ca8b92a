// Package entity implements entity type descriptors and capability
// resolution against them.
//
// A Type is an ordered list of component declarations; the position of a
// component in that list is the storage slot that backs it. Callers ask for a
// capability (a kind, or anything a kind implements) and get back accessors
// bound to the one slot that provides it. Accessors are resolved once per
// (Type, capability) and cached on the Type for its whole lifetime.
//
// Entity type data is authored outside the program, so nothing here panics on
// bad data: Validate repairs the component list and accessors for missing or
// ambiguous capabilities degrade to nil reads and ignored writes plus a
// logged diagnostic.
package entity

import (
	"fmt"
	"slices"

	"github.com/zeusync/entitytype/internal/core/kinds"
	"github.com/zeusync/entitytype/internal/core/observability/log"
	"github.com/zeusync/entitytype/pkg/sequence"
)

// Validation report messages.
const (
	MsgNoComponents   = "No defined components"
	MsgNullComponent  = "Null component"
	MsgCleaningList   = "Cleaning component list from invalid components"
	msgUnresolvedKind = "Unresolved component kind %q"
)

// Type is an entity type descriptor. Components must not be modified after
// Validate has run and accessors have been requested.
type Type struct {
	Name       string       `json:"name" yaml:"name"`
	Components []*Component `json:"components" yaml:"components"`

	// seq is the registration index plus one, zero while unregistered. It is
	// handed out by Registry.Register and never read from or written to data
	// files.
	seq    int
	logger log.Log
	cache  accessorCache
}

// NewType creates an unregistered entity type with the given components in
// slot order.
//
// Resolution errors go to the logger set with SetLogger or attached by
// Registry.Register. Without either they go to log.Provide, which discards
// them unless log.New was called.
func NewType(name string, components ...*Component) *Type {
	return &Type{
		Name:       name,
		Components: components,
	}
}

// NewTypeOf is a shorthand for NewType with one component per kind.
func NewTypeOf(name string, ks ...*kinds.Kind) *Type {
	return NewType(name, sequence.ToArray(sequence.From(ks), NewComponent)...)
}

// Index returns the registration index, or -1 if t was never registered.
func (t *Type) Index() int {
	return t.seq - 1
}

// SetLogger sets the diagnostic sink for resolution errors. It must be called
// before t is used concurrently.
func (t *Type) SetLogger(l log.Log) {
	t.logger = l
}

func (t *Type) String() string {
	return t.Name
}

func (t *Type) log() log.Log {
	if t.logger == nil {
		return log.Provide()
	}
	return t.logger
}

// Validate checks the component list and repairs it. Every problem is passed
// to report; entries that are nil or have no resolved kind are then removed
// in place so later resolution never sees them. A nil report drops messages.
func (t *Type) Validate(report func(string)) {
	if report == nil {
		report = func(string) {}
	}

	if len(t.Components) == 0 {
		report(MsgNoComponents)
		return
	}

	comps := sequence.From(t.Components)
	if !comps.Any(func(c *Component) bool { return !c.Resolved() }) {
		return
	}

	report(MsgNullComponent)
	unresolved := comps.Filter(func(c *Component) bool { return c != nil && c.Kind == nil && c.KindName != "" })
	for c := range unresolved.Seq() {
		report(fmt.Sprintf(msgUnresolvedKind, c.KindName))
	}

	report(MsgCleaningList)
	t.Components = slices.DeleteFunc(t.Components, func(c *Component) bool { return !c.Resolved() })
	// slots shifted, anything resolved before the repair is stale
	t.cache.reset()
}
