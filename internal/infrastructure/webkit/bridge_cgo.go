//go:build webkit_cgo

package webkit

import (
	"context"
	"errors"
	"sync"

	"github.com/diamondburned/gotk4-webkitgtk/pkg/javascriptcore/v6"
	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"

	"github.com/bnema/rpmview/internal/logging"
)

// bridge adapts a WebKitGTK view to port.ScriptBridge. Navigation and
// evaluation are scheduled on the GTK main loop so callers may use any goroutine.
// BindObject must be called from the main thread.
type bridge struct {
	ctx  context.Context
	view *webkit.WebView

	mu      sync.Mutex
	loaded  bool
	pending []string

	handlers handlerSet
}

func newBridge(ctx context.Context, opts Options) *bridge {
	b := &bridge{
		ctx:  ctx,
		view: webkit.NewWebView(),
	}

	if settings := b.view.Settings(); settings != nil {
		settings.SetEnableJavascript(true)
		settings.SetEnableDeveloperExtras(opts.EnableDeveloperExtras)
	}

	b.view.ConnectLoadChanged(func(event webkit.LoadEvent) {
		switch event {
		case webkit.LoadStarted:
			b.mu.Lock()
			b.loaded = false
			b.mu.Unlock()
		case webkit.LoadFinished:
			b.flushPending()
		}
	})

	return b
}

// LoadURI starts navigation. Scripts executed before the load finishes are queued.
func (b *bridge) LoadURI(_ context.Context, uri string) error {
	if uri == "" {
		return errors.New("webkit: empty uri")
	}
	b.mu.Lock()
	b.loaded = false
	b.mu.Unlock()

	glib.IdleAdd(func() { b.view.LoadURI(uri) })
	return nil
}

// BindObject exposes window.webkit.messageHandlers[name].postMessage to the page.
// Binding a name again replaces its handler.
func (b *bridge) BindObject(_ context.Context, name string, onMessage func(string)) error {
	if !b.handlers.set(name, onMessage) {
		return nil
	}

	ucm := b.view.UserContentManager()
	ucm.Connect("script-message-received::"+name, func(value *javascriptcore.Value) {
		b.onScriptMessage(name, value)
	})
	if !ucm.RegisterScriptMessageHandler(name, "") {
		return errors.New("webkit: failed to register script message handler " + name)
	}
	return nil
}

// AddUserScript injects script at document end of every top-frame load after this call.
func (b *bridge) AddUserScript(_ context.Context, script string) error {
	glib.IdleAdd(func() {
		b.view.UserContentManager().AddScript(webkit.NewUserScript(
			script,
			webkit.UserContentInjectTopFrame,
			webkit.UserScriptInjectAtDocumentEnd,
			nil,
			nil,
		))
	})
	return nil
}

// ExecuteJavaScript evaluates script now, or once the current load finishes.
func (b *bridge) ExecuteJavaScript(ctx context.Context, script string) error {
	b.mu.Lock()
	if !b.loaded {
		b.pending = append(b.pending, script)
		b.mu.Unlock()
		logging.FromContext(ctx).Debug().Msg("page loading, script queued")
		return nil
	}
	b.mu.Unlock()

	b.evaluate(script)
	return nil
}

func (b *bridge) flushPending() {
	b.mu.Lock()
	b.loaded = true
	scripts := b.pending
	b.pending = nil
	b.mu.Unlock()

	for _, script := range scripts {
		b.evaluate(script)
	}
}

func (b *bridge) evaluate(script string) {
	log := logging.FromContext(b.ctx)
	glib.IdleAdd(func() {
		b.view.EvaluateJavascript(b.ctx, script, -1, "", "", func(res gio.AsyncResulter) {
			if _, err := b.view.EvaluateJavascriptFinish(res); err != nil {
				log.Warn().Err(err).Msg("script evaluation failed")
			}
		})
	})
}

// onScriptMessage forwards a value posted to the named handler as a JSON
// string. Strings are passed through untouched since the setup script
// already serializes.
func (b *bridge) onScriptMessage(name string, value *javascriptcore.Value) {
	if value == nil {
		return
	}

	var payload string
	if value.IsString() {
		payload = value.String()
	} else {
		payload = value.ToJSON(0)
	}

	b.handlers.dispatch(name, payload)
}
