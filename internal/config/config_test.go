package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[database]
url = "postgres://localhost/orbit"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddr, cfg.Server.Addr)
	assert.Equal(t, DefaultMeiliURL, cfg.Meili.URL)
	assert.Equal(t, DefaultRedirectURL, cfg.Twitch.RedirectURL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "postgres://localhost/orbit", cfg.Database.URL)
}

func TestLoad_FullFile(t *testing.T) {
	path := writeConfig(t, `
[log]
level = "debug"
format = "json"

[server]
addr = ":9090"

[database]
url = "postgres://localhost/orbit"

[twitch]
client_id = "abc"
client_secret = "shh"
redirect_url = "https://orbit.example/callback"

[meilisearch]
url = "http://search:7700"
key = "masterkey"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "abc", cfg.Twitch.ClientID)
	assert.Equal(t, "https://orbit.example/callback", cfg.Twitch.RedirectURL)
	assert.Equal(t, "http://search:7700", cfg.Meili.URL)
	assert.Equal(t, "masterkey", cfg.Meili.Key)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
[database]
url = "postgres://localhost/orbit"

[twitch]
client_id = "from-file"
`)

	t.Setenv("DATABASE_URL", "postgres://db:5432/orbit")
	t.Setenv("TWITCH_CLIENT_ID", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://db:5432/orbit", cfg.Database.URL)
	assert.Equal(t, "from-env", cfg.Twitch.ClientID)
}

func TestLoad_MissingFileUsesEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://db:5432/orbit")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, "postgres://db:5432/orbit", cfg.Database.URL)
}

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
