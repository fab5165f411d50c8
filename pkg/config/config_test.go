// Package config tests precedence between defaults, environment, .env files and flags.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParse_Defaults(t *testing.T) {
	for _, k := range []string{EnvHighscoreFile, EnvLocaleDir, EnvLang, EnvLogFile, EnvSeed} {
		t.Setenv(k, "")
	}
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if cfg.HighscoreFile != DefaultHighscoreFile() || cfg.Lang != "en_GB" || cfg.Seed != 0 || cfg.Ephemeral {
		t.Errorf("defaults = %+v", cfg)
	}
}

func TestParse_EnvThenFlags(t *testing.T) {
	t.Setenv(EnvHighscoreFile, "/tmp/env.yaml")
	t.Setenv(EnvSeed, "12")
	t.Setenv(EnvLang, "de_DE")

	cfg, err := Parse([]string{"-seed", "99", "-ephemeral"})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if cfg.HighscoreFile != "/tmp/env.yaml" {
		t.Errorf("HighscoreFile = %q, want env value", cfg.HighscoreFile)
	}
	if cfg.Seed != 99 {
		t.Errorf("Seed = %d, want flag value 99", cfg.Seed)
	}
	if cfg.Lang != "de_DE" || !cfg.Ephemeral {
		t.Errorf("Lang/Ephemeral = %q/%v", cfg.Lang, cfg.Ephemeral)
	}
}

func TestParse_BadSeed(t *testing.T) {
	t.Setenv(EnvSeed, "many")
	if _, err := Parse(nil); err == nil {
		t.Error("Parse with non-numeric seed: err = nil")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := LoadDotEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Errorf("missing .env: err = %v, want nil", err)
	}

	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte(EnvLogFile+"=/tmp/from-dotenv.log\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvLogFile, "")
	os.Unsetenv(EnvLogFile)

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv error: %v", err)
	}
	if got := os.Getenv(EnvLogFile); got != "/tmp/from-dotenv.log" {
		t.Errorf("%s = %q, want value from .env", EnvLogFile, got)
	}
}
