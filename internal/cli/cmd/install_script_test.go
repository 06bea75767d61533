package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/rpmview/assets"
)

func TestInstallScript(t *testing.T) {
	dir := t.TempDir()

	path, err := installScript(dir, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "RpmWebBrowser", "Scripts", "RpmFrameSetup.js"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, assets.FrameSetupScript, string(data))

	// identical content is a no-op
	_, err = installScript(dir, false)
	require.NoError(t, err)
}

func TestInstallScript_KeepsModifiedUnlessForced(t *testing.T) {
	dir := t.TempDir()
	path, err := installScript(dir, false)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("// custom"), 0o644))

	_, err = installScript(dir, false)
	require.ErrorIs(t, err, errScriptModified)

	_, err = installScript(dir, true)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, assets.FrameSetupScript, string(data))
}
