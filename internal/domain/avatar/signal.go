package avatar

import "sync"

// Signal is a multicast notification point with zero or more listeners.
// The zero value is ready to use.
type Signal[T any] struct {
	mu        sync.RWMutex
	nextID    uint64
	listeners []listener[T]
}

type listener[T any] struct {
	id uint64
	fn func(T)
}

// Subscribe registers fn and returns a function that removes it.
func (s *Signal[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listener[T]{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { s.remove(id) })
	}
}

func (s *Signal[T]) remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, l := range s.listeners {
		if l.id == id {
			s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
			return
		}
	}
}

// IsBound reports whether at least one listener is registered.
func (s *Signal[T]) IsBound() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.listeners) > 0
}

// Broadcast calls every listener in subscription order. Listeners run
// outside the lock so they may subscribe or unsubscribe.
func (s *Signal[T]) Broadcast(v T) {
	s.mu.RLock()
	snapshot := make([]listener[T], len(s.listeners))
	copy(snapshot, s.listeners)
	s.mu.RUnlock()

	for _, l := range snapshot {
		l.fn(v)
	}
}

// Events groups the four output points of the browser widget.
type Events struct {
	OnUserSet        Signal[string]
	OnUserAuthorized Signal[string]
	OnAvatarExported Signal[string]
	OnAssetUnlock    Signal[AssetRecord]
}
