package session

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController(t *testing.T) {
	c := NewController(rand.New(rand.NewPCG(1, 2)))

	_, ok := c.Current()
	assert.False(t, ok)

	state := c.Select(testCatalog(), "a")
	require.Equal(t, 3, state.Total())

	c.ToggleReveal()
	assert.True(t, c.State().Revealed())

	c.Advance()
	c.Advance()
	c.Advance()
	assert.Equal(t, 2, c.State().Position())
	assert.False(t, c.State().Revealed())

	c.Retreat()
	assert.Equal(t, 1, c.State().Position())

	state = c.Select(testCatalog(), "b")
	assert.Equal(t, "b", state.SetID())
	assert.Equal(t, 0, c.State().Position())

	current, ok := c.Current()
	assert.True(t, ok)
	assert.NotEmpty(t, current.Word)
}
