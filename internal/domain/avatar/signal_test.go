package avatar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignal_BroadcastWithoutListenersIsNoop(t *testing.T) {
	var s Signal[string]
	assert.False(t, s.IsBound())
	assert.NotPanics(t, func() { s.Broadcast("x") })
}

func TestSignal_OrderAndUnsubscribe(t *testing.T) {
	var s Signal[int]
	var got []string

	unsubA := s.Subscribe(func(v int) { got = append(got, "a") })
	s.Subscribe(func(v int) { got = append(got, "b") })
	assert.True(t, s.IsBound())

	s.Broadcast(1)
	assert.Equal(t, []string{"a", "b"}, got)

	unsubA()
	unsubA()
	got = nil
	s.Broadcast(2)
	assert.Equal(t, []string{"b"}, got)
}

func TestSignal_ListenerMayUnsubscribeItself(t *testing.T) {
	var s Signal[string]
	calls := 0
	var unsub func()
	unsub = s.Subscribe(func(string) {
		calls++
		unsub()
	})

	s.Broadcast("one")
	s.Broadcast("two")
	assert.Equal(t, 1, calls)
	assert.False(t, s.IsBound())
}

func TestSignal_NilListenerIgnored(t *testing.T) {
	var s Signal[string]
	unsub := s.Subscribe(nil)
	assert.NotNil(t, unsub)
	assert.False(t, s.IsBound())
}
