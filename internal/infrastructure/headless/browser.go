// Package headless drives a Chromium page over the DevTools protocol with go-rod.
package headless

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"

	"github.com/bnema/rpmview/internal/logging"
)

const defaultNavigationTimeout = 30 * time.Second

// ErrClosed is returned by operations on a closed Browser.
var ErrClosed = errors.New("headless: browser is closed")

// Options configures the Chromium backend.
type Options struct {
	// RemoteURL is the WebSocket URL of an external Chrome instance.
	// Empty launches a local Chrome via launcher.
	RemoteURL string
	// Show runs Chrome headful.
	Show              bool
	Stealth           bool
	NavigationTimeout time.Duration
	Width             int
	Height            int
}

// Browser is a single-page ScriptBridge backed by Chromium.
type Browser struct {
	opts    Options
	browser *rod.Browser
	lnch    *launcher.Launcher
	page    *rod.Page

	mu       sync.RWMutex
	bindings map[string]func(string)
	closed   bool
}

// Launch starts (or connects to) Chrome and opens a blank page.
func Launch(ctx context.Context, opts Options) (*Browser, error) {
	log := logging.FromContext(ctx)
	if opts.NavigationTimeout <= 0 {
		opts.NavigationTimeout = defaultNavigationTimeout
	}

	b := &Browser{
		opts:     opts,
		bindings: make(map[string]func(string)),
	}

	wsURL := opts.RemoteURL
	if wsURL != "" {
		log.Info().Str("url", wsURL).Msg("connecting to remote chrome")
	} else {
		l := launcher.New().Headless(!opts.Show)
		u, err := l.Context(ctx).Launch()
		if err != nil {
			return nil, fmt.Errorf("launch chrome: %w", err)
		}
		wsURL = u
		b.lnch = l
		log.Info().Str("url", wsURL).Bool("show", opts.Show).Msg("launched local chrome")
	}

	b.browser = rod.New().ControlURL(wsURL)
	if err := b.browser.Connect(); err != nil {
		b.cleanup()
		return nil, fmt.Errorf("connect chrome: %w", err)
	}

	page, err := b.openPage()
	if err != nil {
		b.cleanup()
		return nil, fmt.Errorf("create page: %w", err)
	}
	b.page = page

	if opts.Width > 0 && opts.Height > 0 {
		if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
			Width:             opts.Width,
			Height:            opts.Height,
			DeviceScaleFactor: 1,
		}); err != nil {
			log.Warn().Err(err).Msg("failed to set viewport")
		}
	}

	return b, nil
}

func (b *Browser) openPage() (*rod.Page, error) {
	if b.opts.Stealth {
		return stealth.Page(b.browser)
	}
	return b.browser.Page(proto.TargetCreateTarget{URL: ""})
}

// LoadURI navigates and waits for the load event.
func (b *Browser) LoadURI(ctx context.Context, uri string) error {
	page, err := b.activePage()
	if err != nil {
		return err
	}

	navCtx, cancel := context.WithTimeout(ctx, b.opts.NavigationTimeout)
	defer cancel()

	if err := page.Context(navCtx).Navigate(uri); err != nil {
		return fmt.Errorf("navigate: %w", err)
	}
	if err := page.Context(navCtx).WaitLoad(); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("wait load timeout")
	}
	return nil
}

// BindObject exposes window[name](payload) to the page. Calls are delivered by Listen.
func (b *Browser) BindObject(ctx context.Context, name string, onMessage func(string)) error {
	page, err := b.activePage()
	if err != nil {
		return err
	}
	if err := (proto.RuntimeAddBinding{Name: name}).Call(page.Context(ctx)); err != nil {
		return fmt.Errorf("add binding %s: %w", name, err)
	}

	b.mu.Lock()
	b.bindings[name] = onMessage
	b.mu.Unlock()
	return nil
}

// ExecuteJavaScript evaluates script in the main world of the current document.
func (b *Browser) ExecuteJavaScript(ctx context.Context, script string) error {
	page, err := b.activePage()
	if err != nil {
		return err
	}

	res, err := proto.RuntimeEvaluate{Expression: script}.Call(page.Context(ctx))
	if err != nil {
		return fmt.Errorf("evaluate script: %w", err)
	}
	if res.ExceptionDetails != nil {
		return fmt.Errorf("evaluate script: %s", res.ExceptionDetails.Text)
	}
	return nil
}

// AddUserScript registers script for every new document of the page.
func (b *Browser) AddUserScript(ctx context.Context, script string) error {
	page, err := b.activePage()
	if err != nil {
		return err
	}

	if _, err := page.Context(ctx).EvalOnNewDocument(script); err != nil {
		return fmt.Errorf("add user script: %w", err)
	}
	return nil
}

// Listen subscribes to binding calls before returning. The returned wait
// function dispatches them until ctx is cancelled.
func (b *Browser) Listen(ctx context.Context) (func() error, error) {
	page, err := b.activePage()
	if err != nil {
		return nil, err
	}

	wait := page.Context(ctx).EachEvent(func(e *proto.RuntimeBindingCalled) {
		b.dispatch(e.Name, e.Payload)
	})
	return func() error {
		wait()
		return ctx.Err()
	}, nil
}

func (b *Browser) dispatch(name, payload string) {
	b.mu.RLock()
	handler := b.bindings[name]
	b.mu.RUnlock()

	if handler != nil {
		handler(payload)
	}
}

func (b *Browser) activePage() (*rod.Page, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed || b.page == nil {
		return nil, ErrClosed
	}
	return b.page, nil
}

// Close shuts Chrome down. Safe to call twice.
func (b *Browser) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	b.mu.Unlock()

	return b.cleanup()
}

func (b *Browser) cleanup() error {
	var err error
	if b.browser != nil {
		err = b.browser.Close()
	}
	if b.lnch != nil {
		b.lnch.Kill()
		b.lnch.Cleanup()
	}
	return err
}
