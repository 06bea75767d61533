package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", configName)

	cfg := DefaultConfig()
	cfg.Avatar.PartnerDomain = "acme"
	cfg.Avatar.Gender = "female"
	require.NoError(t, WriteConfig(cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[avatar]")
	assert.Contains(t, string(data), "partner_domain")
	assert.Contains(t, string(data), "acme")

	var decoded Config
	require.NoError(t, toml.Unmarshal(data, &decoded))
	assert.Equal(t, cfg.Avatar, decoded.Avatar)
	assert.Equal(t, cfg.Browser, decoded.Browser)
	assert.Equal(t, cfg.History, decoded.History)
}

func TestWriteConfig_NilConfig(t *testing.T) {
	assert.Error(t, WriteConfig(nil, filepath.Join(t.TempDir(), configName)))
}

func TestGenerateJSONSchema(t *testing.T) {
	data, err := GenerateJSONSchema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.Equal(t, "rpmview configuration", schema["title"])
	assert.Contains(t, string(data), "partner_domain")
	assert.Contains(t, string(data), "halfbody")
}
