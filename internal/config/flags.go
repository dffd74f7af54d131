package config

import (
	"flag"
	"os"

	"mercadito/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the local SQLite database (default from Config)
//	-l string   log level: debug, info, warn, error (default from Config)
//	-noseed     start with an empty catalog instead of the demo listings
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l", "-noseed"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path to the local database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	noSeed := fs.Bool("noseed", !cfg.SeedCatalog, "start with an empty catalog")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SeedCatalog = !*noSeed
}
