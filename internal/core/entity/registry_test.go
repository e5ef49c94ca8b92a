package entity

import (
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_Register(t *testing.T) {
	f := newFixture(t)
	r := NewRegistry(f.logger)

	a := NewTypeOf("a", f.position)
	b := NewTypeOf("b", f.health)
	require.NoError(t, r.Register(a))
	require.NoError(t, r.Register(b))

	require.Equal(t, 0, a.Index())
	require.Equal(t, 1, b.Index())
	require.Equal(t, 2, r.Len())
	require.Equal(t, []*Type{a, b}, r.All())

	got, ok := r.Lookup("b")
	require.True(t, ok)
	require.Same(t, b, got)

	got, ok = r.At(0)
	require.True(t, ok)
	require.Same(t, a, got)
	_, ok = r.At(2)
	require.False(t, ok)

	t.Run("Errors", func(t *testing.T) {
		require.ErrorIs(t, r.Register(nil), ErrNilType)
		require.ErrorIs(t, r.Register(NewType("")), ErrEmptyName)
		require.ErrorIs(t, r.Register(NewTypeOf("a", f.sprite)), ErrDuplicateEntity)
		require.Equal(t, 2, r.Len())
	})

	t.Run("Logger Attached", func(t *testing.T) {
		b.Get("Sprite", newMemTranche(1, 1), 0)
		require.Equal(t, 1, f.logs.FilterMessage(MsgNoMatch).Len())
	})
}

func TestRegistry_Deterministic(t *testing.T) {
	f := newFixture(t)
	names := []string{"orc", "elf", "dwarf", "troll"}

	for round := 0; round < 3; round++ {
		r := NewRegistry(f.logger)
		for _, name := range names {
			require.NoError(t, r.Register(NewTypeOf(name, f.health)))
		}
		for i, name := range names {
			et, ok := r.Lookup(name)
			require.True(t, ok)
			require.Equal(t, i, et.Index())
		}
	}
}

func TestRegistry_ValidateAll(t *testing.T) {
	f := newFixture(t)
	r := NewRegistry(f.logger)
	require.NoError(t, r.Register(NewType("empty")))
	require.NoError(t, r.Register(NewType("broken", nil, NewComponent(f.health))))
	require.NoError(t, r.Register(NewTypeOf("fine", f.position)))

	var (
		mu   sync.Mutex
		msgs []string
	)
	r.ValidateAll(func(msg string) {
		mu.Lock()
		msgs = append(msgs, msg)
		mu.Unlock()
	})

	sort.Strings(msgs)
	require.Equal(t, []string{
		"broken: " + MsgCleaningList,
		"broken: " + MsgNullComponent,
		"empty: " + MsgNoComponents,
	}, msgs)

	broken, _ := r.Lookup("broken")
	require.Len(t, broken.Components, 1)
}

func TestRegistry_ValidateAllLogged(t *testing.T) {
	f := newFixture(t)
	r := NewRegistry(f.logger)
	for i := 0; i < 8; i++ {
		require.NoError(t, r.Register(NewType(fmt.Sprintf("t%d", i))))
	}

	r.ValidateAllLogged()

	entries := f.logs.FilterMessage(MsgNoComponents).All()
	require.Len(t, entries, 8)
	seen := make(map[string]bool)
	for _, e := range entries {
		seen[e.ContextMap()["entity"].(string)] = true
	}
	require.Len(t, seen, 8)
}

func TestRegistry_NilLogger(t *testing.T) {
	r := NewRegistry(nil)
	require.NotNil(t, r.logger)
}
