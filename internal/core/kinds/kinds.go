// Package kinds holds the component kind registry and the conformance table
// that answers "does kind K provide capability C".
//
// Capabilities form a DAG: each one may name parent capabilities that it
// refines, and parents must be defined first. Every registered kind is also a
// capability under its own name, so asking for a concrete kind is the same
// question as asking for an interface it implements. The full set of
// capabilities a kind provides is computed once at registration, after which
// lookups are a single map probe.
package kinds

import (
	"fmt"
	"sync"

	"github.com/zeusync/entitytype/pkg/sequence"
)

// Capability names something a caller can request from an entity: a base
// type, an interface or a concrete kind.
type Capability string

// KindID is assigned sequentially in registration order.
type KindID uint32

// Kind is a concrete component type. It is immutable once registered.
type Kind struct {
	name       string
	id         KindID
	implements map[Capability]struct{}
}

func (k *Kind) ID() KindID {
	return k.id
}

func (k *Kind) Name() string {
	return k.name
}

// Capability returns the capability token naming exactly this kind.
func (k *Kind) Capability() Capability {
	return Capability(k.name)
}

// Implements reports whether k provides c. A nil kind provides nothing.
func (k *Kind) Implements(c Capability) bool {
	if k == nil {
		return false
	}
	_, ok := k.implements[c]
	return ok
}

// Capabilities returns every capability k provides, sorted by name.
func (k *Kind) Capabilities() []Capability {
	caps := make([]Capability, 0, len(k.implements))
	for c := range k.implements {
		caps = append(caps, c)
	}
	return sequence.From(caps).Sort(func(a, b Capability) bool { return a < b }).Collect()
}

func (k *Kind) String() string {
	if k == nil {
		return "<nil>"
	}
	return k.name
}

// Registry owns capability and kind definitions. It is safe for concurrent use.
type Registry struct {
	mu sync.RWMutex
	// capability -> itself plus every ancestor
	closure map[Capability][]Capability
	kinds   map[string]*Kind
	ordered []*Kind
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		closure: make(map[Capability][]Capability),
		kinds:   make(map[string]*Kind),
	}
}

// DefineCapability declares an abstract capability refining the given parents.
// Every parent must already be defined when this is called: an abstract
// capability, or a kind registered earlier with RegisterKind.
func (r *Registry) DefineCapability(name string, parents ...string) error {
	if name == "" {
		return ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	c := Capability(name)
	if _, ok := r.closure[c]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCapability, name)
	}

	ancestors, err := r.expandLocked(parents)
	if err != nil {
		return fmt.Errorf("capability %s: %w", name, err)
	}
	r.closure[c] = append([]Capability{c}, ancestors...)
	return nil
}

// RegisterKind registers a concrete kind that implements the given
// capabilities, directly or through their ancestors.
func (r *Registry) RegisterKind(name string, implements ...string) (*Kind, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.kinds[name]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateKind, name)
	}
	self := Capability(name)
	if _, ok := r.closure[self]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateCapability, name)
	}

	ancestors, err := r.expandLocked(implements)
	if err != nil {
		return nil, fmt.Errorf("kind %s: %w", name, err)
	}

	k := &Kind{
		name:       name,
		id:         KindID(len(r.ordered)),
		implements: make(map[Capability]struct{}, len(ancestors)+1),
	}
	k.implements[self] = struct{}{}
	for _, c := range ancestors {
		k.implements[c] = struct{}{}
	}

	r.closure[self] = append([]Capability{self}, ancestors...)
	r.kinds[name] = k
	r.ordered = append(r.ordered, k)
	return k, nil
}

// Kind looks up a registered kind by name.
func (r *Registry) Kind(name string) (*Kind, bool) {
	r.mu.RLock()
	k, ok := r.kinds[name]
	r.mu.RUnlock()
	return k, ok
}

// Capability reports whether name is a known capability or kind.
func (r *Registry) Capability(name string) bool {
	r.mu.RLock()
	_, ok := r.closure[Capability(name)]
	r.mu.RUnlock()
	return ok
}

// Kinds returns every registered kind in ID order.
func (r *Registry) Kinds() []*Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Kind, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// expandLocked returns the deduplicated union of the closures of names.
func (r *Registry) expandLocked(names []string) ([]Capability, error) {
	seen := make(map[Capability]struct{})
	var out []Capability
	for _, name := range names {
		closure, ok := r.closure[Capability(name)]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCapability, name)
		}
		for _, c := range closure {
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	return out, nil
}
