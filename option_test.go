package optional_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/distribution-auth/optional"
)

func TestSome(t *testing.T) {
	opt := optional.Some("value")

	assert.True(t, opt.HasValue())
	assert.Equal(t, "value", opt.Value())
}

func TestNone(t *testing.T) {
	opt := optional.None[string]()

	assert.False(t, opt.HasValue())
	assert.Equal(t, "", opt.Value())
}
