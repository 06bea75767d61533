package usecase

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/rpmview/internal/application/port"
	"github.com/bnema/rpmview/internal/domain/avatar"
	"github.com/bnema/rpmview/internal/logging"
)

const (
	// LinkObjectName is the name page scripts use to reach the widget.
	LinkObjectName = "rpmlinkobject"
	// SetupScriptPath is the setup script location relative to the plugins directory.
	SetupScriptPath = "RpmWebBrowser/Scripts/RpmFrameSetup.js"
)

// BrowserWidgetConfig configures a BrowserWidget.
type BrowserWidgetConfig struct {
	Avatar     avatar.Config
	PluginsDir string
	// Validator is optional. When set, a script it rejects is not injected.
	Validator port.ScriptValidator
}

// BrowserWidget hosts the avatar creator in a ScriptBridge and relays the
// page's events to Events.
type BrowserWidget struct {
	bridge     port.ScriptBridge
	pluginsDir string
	validator  port.ScriptValidator

	mu         sync.RWMutex
	cfg        avatar.Config
	loginToken string
	initialURL string

	// Events receives the decoded page events.
	Events avatar.Events
}

// NewBrowserWidget creates a widget bound to bridge.
func NewBrowserWidget(bridge port.ScriptBridge, cfg BrowserWidgetConfig) *BrowserWidget {
	return &BrowserWidget{
		bridge:     bridge,
		pluginsDir: cfg.PluginsDir,
		validator:  cfg.Validator,
		cfg:        cfg.Avatar,
	}
}

// Config returns the avatar configuration currently in use.
func (w *BrowserWidget) Config() avatar.Config {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.cfg
}

// BuildURL returns the avatar creator URL. A non-empty loginToken overrides
// the configured one.
func (w *BrowserWidget) BuildURL(loginToken string) string {
	return w.Config().URL(loginToken)
}

// InitialURL returns the URL computed by the last Rebuild.
func (w *BrowserWidget) InitialURL() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.initialURL
}

// ScriptPath returns the absolute path of the setup script.
func (w *BrowserWidget) ScriptPath() string {
	return filepath.Join(w.pluginsDir, filepath.FromSlash(SetupScriptPath))
}

// Rebuild recomputes the initial URL and navigates the browser to it. The
// runtime token from the last RebuildWithToken is reused.
func (w *BrowserWidget) Rebuild(ctx context.Context) error {
	w.mu.RLock()
	token := w.loginToken
	w.mu.RUnlock()
	return w.RebuildWithToken(ctx, token)
}

// RebuildWithToken is Rebuild with a runtime login token. The token is kept
// for later rebuilds.
func (w *BrowserWidget) RebuildWithToken(ctx context.Context, loginToken string) error {
	log := logging.FromContext(ctx).With().Str("component", "browser-widget").Logger()

	url := w.BuildURL(loginToken)
	w.mu.Lock()
	w.loginToken = loginToken
	w.initialURL = url
	w.mu.Unlock()

	// The token is a credential; log the URL only when none was used.
	if loginToken == "" && w.Config().LoginToken == "" {
		log.Debug().Str("url", url).Msg("loading avatar creator")
	} else {
		log.Debug().Msg("loading avatar creator with login token")
	}

	if err := w.bridge.LoadURI(ctx, url); err != nil {
		return fmt.Errorf("load avatar creator: %w", err)
	}
	return nil
}

// Reconfigure swaps the avatar configuration and rebuilds. The setup script
// is registered as a user script, so the new document gets it too.
func (w *BrowserWidget) Reconfigure(ctx context.Context, cfg avatar.Config) error {
	w.mu.Lock()
	w.cfg = cfg
	w.mu.Unlock()
	return w.Rebuild(ctx)
}

// SetupBrowser binds the link object and injects the setup script into the
// current document and every document loaded after it.
// A missing or invalid script is logged and skipped; the page still loads
// without the bridge.
func (w *BrowserWidget) SetupBrowser(ctx context.Context) error {
	log := logging.FromContext(ctx).With().Str("component", "browser-widget").Logger()

	if err := w.bridge.BindObject(ctx, LinkObjectName, func(payload string) {
		w.EventReceived(ctx, payload)
	}); err != nil {
		return fmt.Errorf("bind %s: %w", LinkObjectName, err)
	}

	path := w.ScriptPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Warn().Str("path", path).Msg("script file not found")
			return nil
		}
		return fmt.Errorf("read setup script: %w", err)
	}
	script := string(data)

	if w.validator != nil {
		if err := w.validator.Validate(SetupScriptPath, script); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("setup script rejected, skipping injection")
			return nil
		}
	}

	if err := w.bridge.AddUserScript(ctx, script); err != nil {
		return fmt.Errorf("register setup script: %w", err)
	}
	if err := w.bridge.ExecuteJavaScript(ctx, script); err != nil {
		return fmt.Errorf("execute setup script: %w", err)
	}

	log.Debug().Int("script_len", len(script)).Msg("setup script injected")
	return nil
}

// EventReceived is the callback bound to the link object.
func (w *BrowserWidget) EventReceived(ctx context.Context, jsonResponse string) {
	w.HandleEvents(ctx, jsonResponse)
}

// HandleEvents decodes one page message and broadcasts it on the matching
// signal. Malformed and unknown messages are logged and dropped.
func (w *BrowserWidget) HandleEvents(ctx context.Context, jsonResponse string) {
	log := logging.FromContext(ctx).With().Str("component", "browser-widget").Logger()

	ev, err := avatar.DecodeString(jsonResponse)
	if err != nil {
		var unknown *avatar.UnknownEventError
		if errors.As(err, &unknown) {
			log.Warn().Str("event", unknown.Name).Msg("unrecognized web event")
			log.Info().Msgf("WebEvent: %s", unknown.Name)
			return
		}
		log.Warn().Err(err).Int("payload_len", len(jsonResponse)).Msg("failed to decode web event")
		return
	}

	switch e := ev.(type) {
	case avatar.UserSet:
		if w.Events.OnUserSet.IsBound() {
			w.Events.OnUserSet.Broadcast(e.ID)
		}
	case avatar.UserAuthorized:
		if w.Events.OnUserAuthorized.IsBound() {
			w.Events.OnUserAuthorized.Broadcast(e.UserID)
		}
	case avatar.AvatarExported:
		if w.Events.OnAvatarExported.IsBound() {
			w.Events.OnAvatarExported.Broadcast(e.URL)
		}
	case avatar.AssetUnlocked:
		if w.Events.OnAssetUnlock.IsBound() {
			w.Events.OnAssetUnlock.Broadcast(e.Asset)
		}
	}

	log.Info().Msgf("WebEvent: %s", ev.EventName())
}
