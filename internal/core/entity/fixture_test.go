package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zeusync/entitytype/internal/core/kinds"
	"github.com/zeusync/entitytype/internal/core/observability/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// fixture kinds:
//
//	Position  -> Spatial
//	Velocity  -> Spatial
//	Sprite    -> Drawable
//	Health
type fixture struct {
	kinds    *kinds.Registry
	position *kinds.Kind
	velocity *kinds.Kind
	sprite   *kinds.Kind
	health   *kinds.Kind
	logger   log.Log
	logs     *observer.ObservedLogs
}

func newFixture(t testing.TB) *fixture {
	t.Helper()

	kr := kinds.NewRegistry()
	require.NoError(t, kr.DefineCapability("Spatial"))
	require.NoError(t, kr.DefineCapability("Drawable"))

	f := &fixture{kinds: kr}
	var err error
	f.position, err = kr.RegisterKind("Position", "Spatial")
	require.NoError(t, err)
	f.velocity, err = kr.RegisterKind("Velocity", "Spatial")
	require.NoError(t, err)
	f.sprite, err = kr.RegisterKind("Sprite", "Drawable")
	require.NoError(t, err)
	f.health, err = kr.RegisterKind("Health")
	require.NoError(t, err)

	core, logs := observer.New(zapcore.DebugLevel)
	f.logger = log.NewFromZap(zap.New(core))
	f.logs = logs
	return f
}

func (f *fixture) newType(name string, ks ...*kinds.Kind) *Type {
	et := NewTypeOf(name, ks...)
	et.SetLogger(f.logger)
	return et
}

// memTranche is a minimal Tranche for tests in this package.
type memTranche struct {
	cols [][]any
}

func newMemTranche(slots, rows int) *memTranche {
	m := &memTranche{cols: make([][]any, slots)}
	for i := range m.cols {
		m.cols[i] = make([]any, rows)
	}
	return m
}

func (m *memTranche) ReadAt(slot, row int) any         { return m.cols[slot][row] }
func (m *memTranche) WriteAt(slot, row int, value any) { m.cols[slot][row] = value }
