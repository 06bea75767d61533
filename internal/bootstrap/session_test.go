package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/rpmview/assets"
	"github.com/bnema/rpmview/internal/application/usecase"
	"github.com/bnema/rpmview/internal/domain/avatar"
	"github.com/bnema/rpmview/internal/infrastructure/config"
)

type fakeBridge struct {
	mu          sync.Mutex
	loaded      []string
	scripts     []string
	userScripts []string
	onMessage   func(string)
	bound       chan struct{}

	listening         bool
	boundBeforeListen bool
}

func newFakeBridge() *fakeBridge {
	return &fakeBridge{bound: make(chan struct{})}
}

func (f *fakeBridge) LoadURI(_ context.Context, uri string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loaded = append(f.loaded, uri)
	return nil
}

func (f *fakeBridge) BindObject(_ context.Context, name string, onMessage func(string)) error {
	f.mu.Lock()
	f.onMessage = onMessage
	if !f.listening {
		f.boundBeforeListen = true
	}
	f.mu.Unlock()
	if name == usecase.LinkObjectName {
		close(f.bound)
	}
	return nil
}

func (f *fakeBridge) ExecuteJavaScript(_ context.Context, script string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scripts = append(f.scripts, script)
	return nil
}

func (f *fakeBridge) AddUserScript(_ context.Context, script string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.userScripts = append(f.userScripts, script)
	return nil
}

func (f *fakeBridge) Listen(ctx context.Context) (func() error, error) {
	f.mu.Lock()
	f.listening = true
	f.mu.Unlock()
	return func() error {
		<-ctx.Done()
		return ctx.Err()
	}, nil
}

func (f *fakeBridge) send(payload string) {
	f.mu.Lock()
	fn := f.onMessage
	f.mu.Unlock()
	fn(payload)
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Avatar.PartnerDomain = "acme"
	cfg.Browser.PluginsDir = t.TempDir()

	path := filepath.Join(cfg.Browser.PluginsDir, filepath.FromSlash(usecase.SetupScriptPath))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(assets.FrameSetupScript), 0o644))
	return cfg
}

func TestSession_StartLoadsAndInjects(t *testing.T) {
	ctx := context.Background()
	bridge := newFakeBridge()

	s, err := NewSession(ctx, testConfig(t), bridge, SessionOptions{LoginToken: "tok"})
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Start(ctx))

	assert.Equal(t, []string{"https://acme.readyplayer.me/avatar?token=tok&frameApi"}, bridge.loaded)
	require.Len(t, bridge.scripts, 1)
	assert.Equal(t, assets.FrameSetupScript, bridge.scripts[0])
	assert.Equal(t, []string{assets.FrameSetupScript}, bridge.userScripts)
}

func TestSession_InvalidAvatarConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Avatar.Language = "xx"

	_, err := NewSession(context.Background(), cfg, newFakeBridge(), SessionOptions{})
	assert.Error(t, err)
}

func TestSession_CloseDetachesListeners(t *testing.T) {
	s, err := NewSession(context.Background(), testConfig(t), newFakeBridge(), SessionOptions{})
	require.NoError(t, err)

	assert.True(t, s.Widget.Events.OnAvatarExported.IsBound())
	s.Close()
	assert.False(t, s.Widget.Events.OnAvatarExported.IsBound())
}

func TestRunLoop_DispatchesUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bridge := newFakeBridge()
	s, err := NewSession(ctx, testConfig(t), bridge, SessionOptions{})
	require.NoError(t, err)
	defer s.Close()

	exported := make(chan string, 1)
	s.Widget.Events.OnAvatarExported.Subscribe(func(url string) { exported <- url })

	done := make(chan error, 1)
	go func() { done <- runLoop(ctx, bridge, s) }()

	select {
	case <-bridge.bound:
	case <-time.After(5 * time.Second):
		t.Fatal("link object was never bound")
	}

	bridge.send(`{"eventName":"v1.avatar.exported","data":{"url":"https://models.readyplayer.me/x.glb"}}`)
	assert.Equal(t, "https://models.readyplayer.me/x.glb", <-exported)

	bridge.mu.Lock()
	assert.False(t, bridge.boundBeforeListen, "link object bound before the listener subscribed")
	bridge.mu.Unlock()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run loop did not stop")
	}
}

func TestSession_ReconfigureKeepsTokenAndScript(t *testing.T) {
	ctx := context.Background()
	bridge := newFakeBridge()

	s, err := NewSession(ctx, testConfig(t), bridge, SessionOptions{LoginToken: "tok"})
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.Start(ctx))

	next := s.Widget.Config()
	next.Language = avatar.LanguageDe
	require.NoError(t, s.Widget.Reconfigure(ctx, next))

	assert.Equal(t, []string{
		"https://acme.readyplayer.me/avatar?token=tok&frameApi",
		"https://acme.readyplayer.me/de/avatar?token=tok&frameApi",
	}, bridge.loaded)
	assert.Equal(t, []string{assets.FrameSetupScript}, bridge.userScripts)
}
