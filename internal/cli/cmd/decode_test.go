package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/rpmview/internal/domain/avatar"
)

func TestDecodeMessage_FromArgument(t *testing.T) {
	ev, err := decodeMessage(strings.NewReader(""), []string{`{"eventName":"v1.user.set","data":{"id":"u1"}}`})
	require.NoError(t, err)
	assert.Equal(t, avatar.UserSet{ID: "u1"}, ev)
}

func TestDecodeMessage_FromStdin(t *testing.T) {
	const msg = "  {\"eventName\":\"v1.avatar.exported\",\"data\":{\"url\":\"https://m/a.glb\"}}\n"

	for _, args := range [][]string{nil, {"-"}} {
		ev, err := decodeMessage(strings.NewReader(msg), args)
		require.NoError(t, err)
		assert.Equal(t, avatar.AvatarExported{URL: "https://m/a.glb"}, ev)
	}
}

func TestDecodeMessage_Errors(t *testing.T) {
	_, err := decodeMessage(strings.NewReader(""), []string{`{"eventName":"v1.frame.ready"}`})
	require.ErrorIs(t, err, avatar.ErrUnknownEvent)

	_, err = decodeMessage(strings.NewReader(""), []string{`not json`})
	require.ErrorIs(t, err, avatar.ErrMalformedEvent)
}

func TestDecodeCommand_JSONOutput(t *testing.T) {
	var out bytes.Buffer
	decodeCmd.SetOut(&out)
	decodeCmd.SetIn(strings.NewReader(""))
	t.Cleanup(func() {
		decodeJSON = false
		decodeCmd.SetOut(nil)
		decodeCmd.SetIn(nil)
	})
	decodeJSON = true

	err := runDecode(decodeCmd, []string{`{"eventName":"v1.user.authorized","data":{"userId":"u9"}}`})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "v1.user.authorized", got["event"])
	assert.Equal(t, map[string]any{"userId": "u9"}, got["payload"])
}

func TestDecodeCommand_StyledOutput(t *testing.T) {
	var out bytes.Buffer
	decodeCmd.SetOut(&out)
	t.Cleanup(func() { decodeCmd.SetOut(nil) })

	err := runDecode(decodeCmd, []string{`{"eventName":"v1.asset.unlock","data":{"assetId":"a1","userId":"u1"}}`})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "v1.asset.unlock")
	assert.Contains(t, out.String(), "a1")
}
