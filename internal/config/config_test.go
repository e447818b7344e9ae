package config

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/username/czech-holidays/internal/calendar"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
output:
  format: json
  lang: en
  year: 2023
ics:
  calendar_name: Czech holidays
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %q, want json", cfg.Output.Format)
	}
	if cfg.Output.Year != 2023 {
		t.Errorf("Output.Year = %d, want 2023", cfg.Output.Year)
	}
	if cfg.Output.GetLanguage() != calendar.English {
		t.Errorf("language = %v, want English", cfg.Output.GetLanguage())
	}
	if level, _ := cfg.Log.GetLevel(); level != zapcore.DebugLevel {
		t.Errorf("log level = %v, want debug", level)
	}
	if cfg.ICS.CalendarName != "Czech holidays" {
		t.Errorf("ICS.CalendarName = %q", cfg.ICS.CalendarName)
	}
	// untouched keys keep their defaults
	if cfg.ICS.ProductID != Default().ICS.ProductID {
		t.Errorf("ICS.ProductID = %q, want default", cfg.ICS.ProductID)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "output:\n  format: table\n")
	t.Setenv("CZECH_HOLIDAYS_OUTPUT_FORMAT", "yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output.Format != "yaml" {
		t.Errorf("Output.Format = %q, want yaml from environment", cfg.Output.Format)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Error("Load() expected error for missing explicit file")
	}
}

func TestLoad_SearchPathWithoutFile(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output.Format != "auto" || cfg.Output.Lang != "cs" {
		t.Errorf("defaults not applied: %+v", cfg.Output)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"bad format", func(c *Config) { c.Output.Format = "xml" }, true},
		{"upper-case format", func(c *Config) { c.Output.Format = "JSON" }, false},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, true},
		{"bad language", func(c *Config) { c.Output.Lang = "???" }, true},
		{"year too early", func(c *Config) { c.Output.Year = 1999 }, true},
		{"explicit year", func(c *Config) { c.Output.Year = 2030 }, false},
		{"missing product id", func(c *Config) { c.ICS.ProductID = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
