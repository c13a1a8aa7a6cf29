package optional_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/distribution-auth/optional"
)

func TestUnwrap(t *testing.T) {
	t.Run("Some", func(t *testing.T) {
		assert.Equal(t, 42, optional.Unwrap(optional.Some(42)))
	})

	t.Run("None", func(t *testing.T) {
		assert.Panics(t, func() {
			optional.Unwrap(optional.None[int]())
		})
	})
}

func TestGet(t *testing.T) {
	t.Run("Some", func(t *testing.T) {
		v, ok := optional.Get(optional.Some("value"))

		require.True(t, ok)
		assert.Equal(t, "value", v)
	})

	t.Run("None", func(t *testing.T) {
		v, ok := optional.Get(optional.None[string]())

		require.False(t, ok)
		assert.Equal(t, "", v)
	})
}

func TestFromPointer(t *testing.T) {
	t.Run("Some", func(t *testing.T) {
		v := 42

		assert.Equal(t, optional.Some(42), optional.FromPointer(&v))
	})

	t.Run("None", func(t *testing.T) {
		assert.Equal(t, optional.None[int](), optional.FromPointer[int](nil))
	})
}

func TestToPointer(t *testing.T) {
	t.Run("Some", func(t *testing.T) {
		p := optional.ToPointer(optional.Some(42))

		require.NotNil(t, p)
		assert.Equal(t, 42, *p)
	})

	t.Run("None", func(t *testing.T) {
		assert.Nil(t, optional.ToPointer(optional.None[int]()))
	})
}
