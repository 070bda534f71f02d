package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJson_OverlaysValues(t *testing.T) {
	orig := os.Args
	defer func() { os.Args = orig }()

	path := writeConfigFile(t, `{"database_path":"json.db","log_level":"warn"}`)
	os.Args = []string{"memoria", "-c", path}

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	assert.Equal(t, "json.db", cfg.DatabasePath)
	assert.Equal(t, "warn", cfg.LogLevel)
	// Fields absent from the file keep their defaults.
	assert.Equal(t, "memoria-media", cfg.MediaDir)
}

func TestParseJson_NoConfigFlag_LeavesDefaults(t *testing.T) {
	orig := os.Args
	defer func() { os.Args = orig }()
	os.Args = []string{"memoria"}

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	assert.Equal(t, "memoria.db", cfg.DatabasePath)
}

func TestParseJson_MalformedFilePanics(t *testing.T) {
	orig := os.Args
	defer func() { os.Args = orig }()

	path := writeConfigFile(t, `{broken`)
	os.Args = []string{"memoria", "-c", path}

	var cfg Config
	cfg.LoadDefaults()
	assert.Panics(t, func() { parseJson(&cfg) })
}

func TestLoadConfig_FlagsBeatJson(t *testing.T) {
	orig := os.Args
	defer func() { os.Args = orig }()

	path := writeConfigFile(t, `{"database_path":"json.db"}`)
	os.Args = []string{"memoria", "-c", path, "-d", "flag.db"}

	cfg := LoadConfig()
	assert.Equal(t, "flag.db", cfg.DatabasePath)
}
