package avatar

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want WebEvent
	}{
		{
			name: "user set",
			raw:  `{"source":"readyplayerme","eventName":"v1.user.set","data":{"id":"u-1"}}`,
			want: UserSet{ID: "u-1"},
		},
		{
			name: "user authorized with id",
			raw:  `{"eventName":"v1.user.authorized","data":{"id":"u-2"}}`,
			want: UserAuthorized{UserID: "u-2"},
		},
		{
			name: "user authorized with userId",
			raw:  `{"eventName":"v1.user.authorized","data":{"userId":"u-3","id":"ignored"}}`,
			want: UserAuthorized{UserID: "u-3"},
		},
		{
			name: "avatar exported",
			raw:  `{"eventName":"v1.avatar.exported","data":{"url":"https://x/y.glb"}}`,
			want: AvatarExported{URL: "https://x/y.glb"},
		},
		{
			name: "missing data",
			raw:  `{"eventName":"v1.user.set"}`,
			want: UserSet{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeString(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.EventName(), got.EventName())
		})
	}
}

func TestDecode_AssetUnlockKeepsRawRecord(t *testing.T) {
	raw := `{"eventName":"v1.asset.unlock","data":{"assetId":"a-9","userId":"u-1","extra":true}}`

	ev, err := DecodeString(raw)
	require.NoError(t, err)

	unlocked, ok := ev.(AssetUnlocked)
	require.True(t, ok)
	assert.Equal(t, "a-9", unlocked.Asset.AssetID)
	assert.Equal(t, "u-1", unlocked.Asset.UserID)
	assert.JSONEq(t, `{"assetId":"a-9","userId":"u-1","extra":true}`, string(unlocked.Asset.Raw))
}

func TestDecode_UnknownEvent(t *testing.T) {
	_, err := DecodeString(`{"eventName":"v1.frame.ready"}`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownEvent))

	var unknown *UnknownEventError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "v1.frame.ready", unknown.Name)
}

func TestDecode_Malformed(t *testing.T) {
	for _, raw := range []string{
		``,
		`not json`,
		`{"eventName":`,
		`{"data":{"id":"x"}}`,
		`{"eventName":"v1.avatar.exported","data":"oops"}`,
	} {
		_, err := DecodeString(raw)
		assert.ErrorIs(t, err, ErrMalformedEvent, "input %q", raw)
	}
}
