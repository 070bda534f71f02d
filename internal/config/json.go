package config

import (
	"encoding/json"
	"os"

	"github.com/memoria-app/memoria/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Values are
// copied into the runtime Config after parsing; empty fields leave the
// existing value in place.
type JsonConfig struct {
	DatabasePath string `json:"database_path"`
	MediaDir     string `json:"media_dir"`
	LogLevel     string `json:"log_level"`
}

// parseJson overlays Config with values from the JSON file named by the
// -c/-config flag. When no file is given the function returns without
// touching cfg. Read or unmarshal errors panic; there is no sane way to run
// with a config file the user pointed at but we cannot parse.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.MediaDir != "" {
		cfg.MediaDir = jc.MediaDir
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
