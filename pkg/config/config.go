// Package config loads runtime settings from an optional .env file, the
// environment and command line flags, in increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables
const (
	EnvHighscoreFile = "LIFEFUTURES_HIGHSCORE_FILE"
	EnvLocaleDir     = "LIFEFUTURES_LOCALE_DIR"
	EnvLang          = "LIFEFUTURES_LANG"
	EnvLogFile       = "LIFEFUTURES_LOG_FILE"
	EnvSeed          = "LIFEFUTURES_SEED"
)

// Config holds the runtime settings
type Config struct {
	// HighscoreFile is the YAML file the highscore is kept in
	HighscoreFile string
	// Ephemeral keeps the highscore in memory only
	Ephemeral bool
	// Seed for the random source; 0 means seed from the clock
	Seed int64
	// LocaleDir holds gettext translations; empty uses the built-in English text
	LocaleDir string
	Lang      string
	// LogFile receives diagnostic logs; empty discards them
	LogFile string
}

// DefaultHighscoreFile returns the per-user highscore file location
func DefaultHighscoreFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".lifefutures-highscore.yaml"
	}
	return filepath.Join(dir, "lifefutures", "highscore.yaml")
}

// LoadDotEnv loads path into the environment if it exists. Existing
// environment variables are not overridden.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// fromEnv builds the defaults, overridden by environment variables
func fromEnv() (*Config, error) {
	cfg := &Config{
		HighscoreFile: DefaultHighscoreFile(),
		Lang:          "en_GB",
	}
	if v := os.Getenv(EnvHighscoreFile); v != "" {
		cfg.HighscoreFile = v
	}
	if v := os.Getenv(EnvLocaleDir); v != "" {
		cfg.LocaleDir = v
	}
	if v := os.Getenv(EnvLang); v != "" {
		cfg.Lang = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}
	return cfg, nil
}

// Load reads .env from the working directory, the environment, then parses args.
func Load(args []string) (*Config, error) {
	if err := LoadDotEnv(".env"); err != nil {
		return nil, err
	}
	return Parse(args)
}

// Parse builds the config from the environment and the given command line arguments.
func Parse(args []string) (*Config, error) {
	cfg, err := fromEnv()
	if err != nil {
		return nil, err
	}

	flags := flag.NewFlagSet("lifefutures", flag.ContinueOnError)
	flags.StringVar(&cfg.HighscoreFile, "highscore-file", cfg.HighscoreFile, "file the highscore is stored in")
	flags.BoolVar(&cfg.Ephemeral, "ephemeral", cfg.Ephemeral, "keep the highscore in memory only")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (for developer testing, 0 = random)")
	flags.StringVar(&cfg.LocaleDir, "locale-dir", cfg.LocaleDir, "gettext locale directory")
	flags.StringVar(&cfg.Lang, "lang", cfg.Lang, "language for translated text")
	flags.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "file to write diagnostic logs to")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}
