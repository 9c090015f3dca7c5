package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Group is a named list of provider identifiers fetched as one batch.
type Group struct {
	Name    string   `yaml:"name"`
	Symbols []string `yaml:"symbols"`
}

// Config holds all application configuration.
type Config struct {
	Output struct {
		Path string `yaml:"path"`
	} `yaml:"output"`
	Fetch struct {
		LookbackDays      int `yaml:"lookback_days"`
		RetryAttempts     int `yaml:"retry_attempts"`
		RetryDelaySeconds int `yaml:"retry_delay_seconds"`
		BatchDelaySeconds int `yaml:"batch_delay_seconds"`
	} `yaml:"fetch"`
	// Groups overrides the built-in ticker universe; groups are fetched and
	// emitted in list order.
	Groups []Group `yaml:"groups"`
	// Ranked lists the groups sorted by 1-week change descending.
	Ranked []string `yaml:"ranked"`
	Yields struct {
		// Remap translates provider yield identifiers to tenor labels.
		Remap map[string]string `yaml:"remap"`
		// Secondary enables the treasury.gov 2-year probe.
		Secondary bool   `yaml:"secondary"`
		SecSym    string `yaml:"secondary_sym"`
	} `yaml:"yields"`
	Holdings struct {
		Enabled bool     `yaml:"enabled"`
		Symbols []string `yaml:"symbols"`
	} `yaml:"holdings"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Schedule struct {
		Daemon    bool   `yaml:"daemon"`
		DailyCron string `yaml:"daily_cron"`
	} `yaml:"schedule"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and fills defaults. A missing file yields the default universe.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("OUTPUT_PATH"); v != "" {
		cfg.Output.Path = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("RETRY_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Fetch.RetryAttempts = n
		}
	}

	// Defaults
	if cfg.Output.Path == "" {
		cfg.Output.Path = "data/data.json"
	}
	if cfg.Fetch.LookbackDays == 0 {
		cfg.Fetch.LookbackDays = 365
	}
	if cfg.Fetch.RetryAttempts == 0 {
		cfg.Fetch.RetryAttempts = 3
	}
	if cfg.Fetch.RetryDelaySeconds == 0 {
		cfg.Fetch.RetryDelaySeconds = 5
	}
	if cfg.Fetch.BatchDelaySeconds == 0 {
		cfg.Fetch.BatchDelaySeconds = 1
	}
	if len(cfg.Groups) == 0 {
		cfg.Groups = DefaultGroups()
	}
	if len(cfg.Ranked) == 0 {
		cfg.Ranked = []string{"country", "sector", "sectorew", "thematic", "submarket"}
	}
	if len(cfg.Yields.Remap) == 0 {
		cfg.Yields.Remap = map[string]string{
			"^IRX": "US3M",
			"^TNX": "US10Y",
			"^TYX": "US30Y",
		}
	}
	if cfg.Yields.SecSym == "" {
		cfg.Yields.SecSym = "US2Y"
	}
	if cfg.Schedule.DailyCron == "" {
		cfg.Schedule.DailyCron = "0 0 22 * * *" // 22:00 UTC, after US close
	}

	return cfg, nil
}

// Validate checks that the configuration is runnable.
func (c *Config) Validate() error {
	if c.Fetch.RetryAttempts < 1 {
		return fmt.Errorf("fetch.retry_attempts must be at least 1")
	}
	if c.Fetch.LookbackDays < 2 {
		return fmt.Errorf("fetch.lookback_days must be at least 2")
	}
	seen := make(map[string]bool, len(c.Groups))
	for _, g := range c.Groups {
		if g.Name == "" {
			return fmt.Errorf("group with empty name")
		}
		if seen[g.Name] {
			return fmt.Errorf("duplicate group %q", g.Name)
		}
		seen[g.Name] = true
		if len(g.Symbols) == 0 {
			return fmt.Errorf("group %q has no symbols", g.Name)
		}
	}
	if c.Holdings.Enabled && len(c.Holdings.Symbols) == 0 {
		return fmt.Errorf("holdings enabled but no symbols configured")
	}
	return nil
}

// IsRanked reports whether group name is sorted by weekly change.
func (c *Config) IsRanked(name string) bool {
	for _, r := range c.Ranked {
		if r == name {
			return true
		}
	}
	return false
}

// GroupNames returns group names in configured order.
func (c *Config) GroupNames() []string {
	names := make([]string, len(c.Groups))
	for i, g := range c.Groups {
		names[i] = g.Name
	}
	return names
}
