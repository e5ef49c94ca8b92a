// Package tranche provides a plain in-memory column store that satisfies
// entity.Tranche. Engines with their own storage layout only need ReadAt and
// WriteAt; this one backs the tests and the inspect tool.
package tranche

import (
	"sync"

	"github.com/google/uuid"
	"github.com/zeusync/entitytype/internal/core/observability/log"
)

// Tranche stores one column per component slot. Out of range access never
// panics: reads return nil and writes are dropped. The same holds for a nil
// *Tranche.
type Tranche struct {
	id      string
	mx      sync.RWMutex
	columns [][]any
	rows    int
	logger  log.Log
}

// New allocates a tranche with the given number of slots and rows.
func New(slots, rows int) *Tranche {
	if slots < 0 {
		slots = 0
	}
	if rows < 0 {
		rows = 0
	}
	t := &Tranche{
		id:      uuid.NewString(),
		columns: make([][]any, slots),
		rows:    rows,
		logger:  log.Nop(),
	}
	for i := range t.columns {
		t.columns[i] = make([]any, rows)
	}
	return t
}

// WithLogger makes out of range writes visible at warn level.
func (t *Tranche) WithLogger(l log.Log) *Tranche {
	t.logger = l.With(log.String("tranche", t.id))
	return t
}

func (t *Tranche) ID() string {
	return t.id
}

func (t *Tranche) Slots() int {
	return len(t.columns)
}

func (t *Tranche) Rows() int {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.rows
}

// Grow appends n empty rows and returns the index of the first one.
func (t *Tranche) Grow(n int) int {
	t.mx.Lock()
	defer t.mx.Unlock()

	first := t.rows
	if n <= 0 {
		return first
	}
	for i := range t.columns {
		t.columns[i] = append(t.columns[i], make([]any, n)...)
	}
	t.rows += n
	return first
}

func (t *Tranche) ReadAt(slot, row int) any {
	if t == nil {
		return nil
	}
	t.mx.RLock()
	defer t.mx.RUnlock()

	if !t.inRange(slot, row) {
		return nil
	}
	return t.columns[slot][row]
}

func (t *Tranche) WriteAt(slot, row int, value any) {
	if t == nil {
		return
	}
	t.mx.Lock()
	defer t.mx.Unlock()

	if !t.inRange(slot, row) {
		t.logger.Warn("tranche write out of range", log.Int("slot", slot), log.Int("row", row))
		return
	}
	t.columns[slot][row] = value
}

func (t *Tranche) inRange(slot, row int) bool {
	return slot >= 0 && slot < len(t.columns) && row >= 0 && row < t.rows
}
