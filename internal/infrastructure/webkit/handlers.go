package webkit

import "sync"

// handlerSet routes script messages by the handler name they were posted to.
type handlerSet struct {
	mu       sync.Mutex
	handlers map[string]func(string)
}

// set installs fn for name and reports whether name was new.
func (h *handlerSet) set(name string, fn func(string)) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.handlers == nil {
		h.handlers = make(map[string]func(string))
	}
	_, exists := h.handlers[name]
	h.handlers[name] = fn
	return !exists
}

func (h *handlerSet) dispatch(name, payload string) {
	h.mu.Lock()
	fn := h.handlers[name]
	h.mu.Unlock()

	if fn != nil {
		fn(payload)
	}
}
