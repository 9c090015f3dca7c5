package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if cfg.Fetch.RetryAttempts != 3 || cfg.Fetch.RetryDelaySeconds != 5 || cfg.Fetch.BatchDelaySeconds != 1 {
		t.Errorf("unexpected retry defaults: %+v", cfg.Fetch)
	}
	if cfg.Output.Path != "data/data.json" {
		t.Errorf("output path = %q", cfg.Output.Path)
	}
	if len(cfg.Groups) != 13 {
		t.Errorf("expected 13 default groups, got %d", len(cfg.Groups))
	}
	if cfg.Groups[0].Name != "futures" {
		t.Errorf("first group = %q, want futures", cfg.Groups[0].Name)
	}
	if !cfg.IsRanked("country") || !cfg.IsRanked("sector") || cfg.IsRanked("futures") {
		t.Errorf("unexpected ranked set: %v", cfg.Ranked)
	}
	if cfg.Yields.Remap["^TNX"] != "US10Y" {
		t.Errorf("yield remap = %v", cfg.Yields.Remap)
	}
}

func TestLoad_FileOverridesGroups(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
groups:
  - name: sector
    symbols: [XLK, XLV]
  - name: crypto
    symbols: [BTC-USD]
fetch:
  retry_attempts: 5
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Groups) != 2 {
		t.Fatalf("file groups should replace defaults entirely, got %d", len(cfg.Groups))
	}
	if cfg.Groups[0].Name != "sector" || len(cfg.Groups[0].Symbols) != 2 {
		t.Errorf("unexpected first group: %+v", cfg.Groups[0])
	}
	if cfg.Fetch.RetryAttempts != 5 {
		t.Errorf("retry_attempts = %d, want 5", cfg.Fetch.RetryAttempts)
	}
	// Untouched knobs still default.
	if cfg.Fetch.RetryDelaySeconds != 5 {
		t.Errorf("retry_delay_seconds = %d, want default 5", cfg.Fetch.RetryDelaySeconds)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("OUTPUT_PATH", "/tmp/out.json")
	t.Setenv("RETRY_ATTEMPTS", "7")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Output.Path != "/tmp/out.json" {
		t.Errorf("output path = %q", cfg.Output.Path)
	}
	if cfg.Fetch.RetryAttempts != 7 {
		t.Errorf("retry attempts = %d", cfg.Fetch.RetryAttempts)
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty group name", func(c *Config) { c.Groups[0].Name = "" }},
		{"duplicate group", func(c *Config) { c.Groups[1].Name = c.Groups[0].Name }},
		{"empty symbols", func(c *Config) { c.Groups[0].Symbols = nil }},
		{"holdings without symbols", func(c *Config) { c.Holdings.Enabled = true }},
	}
	for _, tt := range tests {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		if err != nil {
			t.Fatal(err)
		}
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}
