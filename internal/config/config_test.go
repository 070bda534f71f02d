package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "memoria.db", c.DatabasePath)
	assert.Equal(t, "memoria-media", c.MediaDir)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	orig := os.Args
	defer func() { os.Args = orig }()
	os.Args = []string{"memoria", "-d", "other.db", "-l", "debug"}

	cfg := LoadConfig()
	assert.Equal(t, "other.db", cfg.DatabasePath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "memoria-media", cfg.MediaDir)
}
