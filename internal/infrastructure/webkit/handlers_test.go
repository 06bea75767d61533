package webkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandlerSet_DispatchesByName(t *testing.T) {
	var h handlerSet
	var link, other []string

	assert.True(t, h.set("rpmlinkobject", func(p string) { link = append(link, p) }))
	assert.True(t, h.set("other", func(p string) { other = append(other, p) }))

	h.dispatch("rpmlinkobject", `{"eventName":"v1.user.set"}`)
	h.dispatch("other", "x")
	h.dispatch("unknown", "dropped")

	assert.Equal(t, []string{`{"eventName":"v1.user.set"}`}, link)
	assert.Equal(t, []string{"x"}, other)
}

func TestHandlerSet_RebindReplacesHandler(t *testing.T) {
	var h handlerSet
	var first, second int

	assert.True(t, h.set("rpmlinkobject", func(string) { first++ }))
	assert.False(t, h.set("rpmlinkobject", func(string) { second++ }))

	h.dispatch("rpmlinkobject", "{}")

	assert.Zero(t, first)
	assert.Equal(t, 1, second)
}
