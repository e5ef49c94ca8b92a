package entity

import (
	"fmt"
	"sync"

	"github.com/zeusync/entitytype/internal/core/observability/log"
	"github.com/zeusync/entitytype/pkg/concurrent"
	"github.com/zeusync/entitytype/pkg/sequence"
)

// Registry owns the entity types of a process and hands out their indexes.
// Indexes follow registration order, so loading the same definitions in the
// same order always yields the same indexes.
type Registry struct {
	mu      sync.RWMutex
	logger  log.Log
	byName  map[string]*Type
	ordered []*Type
}

// NewRegistry creates an empty registry. Registered types report resolution
// errors to logger.
func NewRegistry(logger log.Log) *Registry {
	if logger == nil {
		logger = log.Provide()
	}
	return &Registry{
		logger: logger,
		byName: make(map[string]*Type),
	}
}

// Register assigns t the next index and attaches the registry logger.
func (r *Registry) Register(t *Type) error {
	if t == nil {
		return ErrNilType
	}
	if t.Name == "" {
		return ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[t.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateEntity, t.Name)
	}
	r.ordered = append(r.ordered, t)
	t.seq = len(r.ordered)
	if t.logger == nil {
		t.logger = r.logger
	}
	r.byName[t.Name] = t
	return nil
}

// Lookup finds a registered type by name.
func (r *Registry) Lookup(name string) (*Type, bool) {
	r.mu.RLock()
	t, ok := r.byName[name]
	r.mu.RUnlock()
	return t, ok
}

// At returns the type registered at index i.
func (r *Registry) At(i int) (*Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i < 0 || i >= len(r.ordered) {
		return nil, false
	}
	return r.ordered[i], true
}

// All returns every registered type in index order.
func (r *Registry) All() []*Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Type, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ordered)
}

// ValidateAll validates every registered type concurrently. Each message is
// prefixed with the type name; report must be safe for concurrent use.
func (r *Registry) ValidateAll(report func(string)) {
	concurrent.ParallelMust(sequence.From(r.All()), func(t *Type) {
		t.Validate(func(msg string) {
			if report != nil {
				report(t.Name + ": " + msg)
			}
		})
	})
}

// ValidateAllLogged validates every registered type concurrently and sends
// the reports to the registry logger, tagged with the type name.
func (r *Registry) ValidateAllLogged() {
	concurrent.ParallelMust(sequence.From(r.All()), func(t *Type) {
		t.Validate(log.Reporter(r.logger, log.String("entity", t.Name), log.Int("index", t.Index())))
	})
}
