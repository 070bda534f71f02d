package config

import (
	"flag"
	"os"

	"github.com/memoria-app/memoria/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   path to the local database file
//	-m string   directory for imported media
//	-l string   log level (debug, info, warn, error)
//
// os.Args is filtered to the flags handled here, so the -c/-config flag owned
// by parseJson does not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-m", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database file")
	fs.StringVar(&cfg.MediaDir, "m", cfg.MediaDir, "directory for imported media")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
