package clipboardtest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/passgen/passgen-go/internal/clipboard"
)

func TestMemory(t *testing.T) {
	var m Memory
	assert.True(t, m.Available())

	_, ok := m.Last()
	assert.False(t, ok)

	assert.NoError(t, m.Copy("first"))
	assert.NoError(t, m.Copy("second"))

	last, ok := m.Last()
	assert.True(t, ok)
	assert.Equal(t, "second", last)
	assert.Equal(t, []string{"first", "second"}, m.Copied)
}

func TestMemory_Unavailable(t *testing.T) {
	m := &Memory{Unavailable: true}
	assert.False(t, m.Available())
	assert.ErrorIs(t, m.Copy("secret"), clipboard.ErrUnavailable)
	assert.Empty(t, m.Copied)
}

func TestMemory_CopyError(t *testing.T) {
	boom := errors.New("xclip exited")
	m := &Memory{Err: boom}
	assert.True(t, m.Available())
	assert.ErrorIs(t, m.Copy("secret"), boom)
	assert.Empty(t, m.Copied)
}
