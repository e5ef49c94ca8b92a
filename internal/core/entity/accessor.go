package entity

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/zeusync/entitytype/internal/core/kinds"
	"github.com/zeusync/entitytype/internal/core/observability/log"
	"github.com/zeusync/entitytype/pkg/sequence"
)

// Resolution diagnostics.
const (
	MsgNoMatch        = "cannot find match for capability in entity"
	MsgAmbiguous      = "ambiguous capability; could be any of "
	msgNilTranche     = "accessor called with nil tranche"
	candidatesJoinSep = ", "
)

// Tranche is row-indexed storage with one column per component slot.
type Tranche interface {
	ReadAt(slot, row int) any
	WriteAt(slot, row int, value any)
}

// Accessors are the get, try-get and set operations for one capability on
// one Type. They hold a slot index, not a tranche, so one value serves every
// tranche laid out for the Type.
type Accessors struct {
	owner      *Type
	capability kinds.Capability
	match      Match
	reported   atomic.Bool
}

func newAccessors(owner *Type, capability kinds.Capability, match Match) *Accessors {
	return &Accessors{
		owner:      owner,
		capability: capability,
		match:      match,
	}
}

// Match returns the resolution the accessors were built from.
func (a *Accessors) Match() Match {
	return a.match
}

// Capability returns the capability the accessors serve.
func (a *Accessors) Capability() kinds.Capability {
	return a.capability
}

// Get reads the component for row. A missing or ambiguous capability is
// reported and yields nil.
func (a *Accessors) Get(t Tranche, row int) any {
	if a.match.Kind != MatchUnique {
		a.reportMiss()
		return nil
	}
	if t == nil {
		a.owner.log().Error(msgNilTranche, a.fields()...)
		return nil
	}
	return t.ReadAt(a.match.Slot, row)
}

// TryGet reads the component for row if the capability resolves to exactly
// one slot. Misses are expected here and never reported.
func (a *Accessors) TryGet(t Tranche, row int) (any, bool) {
	if a.match.Kind != MatchUnique || t == nil {
		return nil, false
	}
	return t.ReadAt(a.match.Slot, row), true
}

// Set writes the component for row. A missing or ambiguous capability is
// reported and the write is dropped.
func (a *Accessors) Set(t Tranche, row int, value any) {
	if a.match.Kind != MatchUnique {
		a.reportMiss()
		return
	}
	if t == nil {
		a.owner.log().Error(msgNilTranche, a.fields()...)
		return
	}
	t.WriteAt(a.match.Slot, row, value)
}

// reportMiss logs the resolution failure the first time a strict accessor
// hits it.
func (a *Accessors) reportMiss() {
	if !a.reported.CompareAndSwap(false, true) {
		return
	}

	switch a.match.Kind {
	case MatchNone:
		a.owner.log().Error(MsgNoMatch, a.fields()...)
	case MatchAmbiguous:
		names := a.candidateNames()
		a.owner.log().Error(MsgAmbiguous+strings.Join(names, candidatesJoinSep),
			append(a.fields(), log.Strings("candidates", names))...)
	}
}

func (a *Accessors) candidateNames() []string {
	return sequence.ToArray(sequence.From(a.match.Candidates), (*kinds.Kind).Name)
}

func (a *Accessors) fields() []log.Field {
	return []log.Field{
		log.String("entity", a.owner.Name),
		log.String("capability", string(a.capability)),
	}
}

func (a *Accessors) String() string {
	switch a.match.Kind {
	case MatchUnique:
		return fmt.Sprintf("unique slot %d (%s)", a.match.Slot, a.match.Candidates[0].Name())
	case MatchAmbiguous:
		return "ambiguous [" + strings.Join(a.candidateNames(), candidatesJoinSep) + "]"
	default:
		return "none"
	}
}

// Accessors returns the cached accessors for c, resolving them on first use.
// Concurrent first calls may each resolve; exactly one result is kept and
// returned to all of them.
func (t *Type) Accessors(c kinds.Capability) *Accessors {
	if a, ok := t.cache.load(c); ok {
		return a
	}
	a, _ := t.cache.loadOrStore(c, newAccessors(t, c, t.Resolve(c)))
	return a
}

// CachedCount returns how many capabilities have been resolved on t.
func (t *Type) CachedCount() int {
	return t.cache.len()
}

// Get reads the component providing c. See Accessors.Get.
func (t *Type) Get(c kinds.Capability, tr Tranche, row int) any {
	return t.Accessors(c).Get(tr, row)
}

// TryGet reads the component providing c, if exactly one does.
func (t *Type) TryGet(c kinds.Capability, tr Tranche, row int) (any, bool) {
	return t.Accessors(c).TryGet(tr, row)
}

// Set writes the component providing c. See Accessors.Set.
func (t *Type) Set(c kinds.Capability, tr Tranche, row int, value any) {
	t.Accessors(c).Set(tr, row, value)
}

// HasCapability reports whether any component of t provides c, including
// when several do.
func (t *Type) HasCapability(c kinds.Capability) bool {
	return t.Accessors(c).Match().Kind != MatchNone
}
