package entity

import (
	"github.com/zeusync/entitytype/internal/core/kinds"
)

// MatchKind classifies the outcome of resolving a capability.
type MatchKind uint8

const (
	// MatchNone means no component provides the capability.
	MatchNone MatchKind = iota
	// MatchUnique means exactly one component provides it.
	MatchUnique
	// MatchAmbiguous means two or more components provide it.
	MatchAmbiguous
)

func (k MatchKind) String() string {
	switch k {
	case MatchUnique:
		return "unique"
	case MatchAmbiguous:
		return "ambiguous"
	default:
		return "none"
	}
}

// Match is the result of resolving a capability against a Type.
type Match struct {
	Kind MatchKind
	// Slot is the backing storage slot for MatchUnique and -1 otherwise.
	Slot int
	// Candidates lists every providing kind in slot order.
	Candidates []*kinds.Kind
}

// Resolve scans the component list for kinds providing c. Unresolved entries
// are skipped. The result is not cached; use Accessors for that.
func (t *Type) Resolve(c kinds.Capability) Match {
	m := Match{Kind: MatchNone, Slot: -1}
	for slot, comp := range t.Components {
		if !comp.Resolved() || !comp.Kind.Implements(c) {
			continue
		}
		if len(m.Candidates) == 0 {
			m.Slot = slot
		}
		m.Candidates = append(m.Candidates, comp.Kind)
	}

	switch len(m.Candidates) {
	case 0:
	case 1:
		m.Kind = MatchUnique
	default:
		m.Kind = MatchAmbiguous
		m.Slot = -1
	}
	return m
}
