package kinds

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Capabilities(t *testing.T) {
	t.Run("Define", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.DefineCapability("Spatial"))
		require.NoError(t, r.DefineCapability("Position", "Spatial"))
		require.True(t, r.Capability("Position"))
		require.False(t, r.Capability("Velocity"))
	})

	t.Run("Errors", func(t *testing.T) {
		r := NewRegistry()
		require.ErrorIs(t, r.DefineCapability(""), ErrEmptyName)
		require.NoError(t, r.DefineCapability("Spatial"))
		require.ErrorIs(t, r.DefineCapability("Spatial"), ErrDuplicateCapability)
		require.ErrorIs(t, r.DefineCapability("Position", "Missing"), ErrUnknownCapability)
		require.False(t, r.Capability("Position"))
	})
}

func TestRegistry_Kinds(t *testing.T) {
	t.Run("Sequential IDs", func(t *testing.T) {
		r := NewRegistry()
		a, err := r.RegisterKind("A")
		require.NoError(t, err)
		b, err := r.RegisterKind("B")
		require.NoError(t, err)

		require.Equal(t, KindID(0), a.ID())
		require.Equal(t, KindID(1), b.ID())
		require.Equal(t, []*Kind{a, b}, r.Kinds())

		got, ok := r.Kind("B")
		require.True(t, ok)
		require.Same(t, b, got)
	})

	t.Run("Errors", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.DefineCapability("Renderable"))

		_, err := r.RegisterKind("")
		require.ErrorIs(t, err, ErrEmptyName)

		_, err = r.RegisterKind("Sprite", "Missing")
		require.ErrorIs(t, err, ErrUnknownCapability)
		_, ok := r.Kind("Sprite")
		require.False(t, ok)

		_, err = r.RegisterKind("Sprite", "Renderable")
		require.NoError(t, err)
		_, err = r.RegisterKind("Sprite")
		require.ErrorIs(t, err, ErrDuplicateKind)

		_, err = r.RegisterKind("Renderable")
		require.ErrorIs(t, err, ErrDuplicateCapability)
	})
}

func TestKind_Implements(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.DefineCapability("Component"))
	require.NoError(t, r.DefineCapability("Spatial", "Component"))
	require.NoError(t, r.DefineCapability("Position", "Spatial"))
	require.NoError(t, r.DefineCapability("Drawable"))

	pos, err := r.RegisterKind("Position2D", "Position")
	require.NoError(t, err)
	hex, err := r.RegisterKind("HexPosition", "Position2D", "Drawable")
	require.NoError(t, err)

	t.Run("Exact Kind", func(t *testing.T) {
		require.True(t, pos.Implements("Position2D"))
		require.Equal(t, Capability("Position2D"), pos.Capability())
	})

	t.Run("Transitive Ancestors", func(t *testing.T) {
		require.True(t, pos.Implements("Position"))
		require.True(t, pos.Implements("Spatial"))
		require.True(t, pos.Implements("Component"))
		require.False(t, pos.Implements("Drawable"))
	})

	t.Run("Kind As Parent", func(t *testing.T) {
		require.True(t, hex.Implements("Position2D"))
		require.True(t, hex.Implements("Component"))
		require.True(t, hex.Implements("Drawable"))
		require.False(t, pos.Implements("HexPosition"))
	})

	t.Run("Capabilities Sorted", func(t *testing.T) {
		require.Equal(t,
			[]Capability{"Component", "Position", "Position2D", "Spatial"},
			pos.Capabilities())
	})

	t.Run("Nil Kind", func(t *testing.T) {
		var k *Kind
		require.False(t, k.Implements("Component"))
		require.Equal(t, "<nil>", k.String())
	})
}

func TestRegistry_Concurrent(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.DefineCapability("Base"))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := r.RegisterKind(fmt.Sprintf("K%d", i), "Base")
			assert.NoError(t, err)
			_, _ = r.Kind("K0")
		}(i)
	}
	wg.Wait()

	ks := r.Kinds()
	require.Len(t, ks, 32)
	for i, k := range ks {
		require.Equal(t, KindID(i), k.ID())
		require.True(t, k.Implements("Base"))
	}
}
