// Package config loads and saves the motolog TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Environment variables that override the file.
const (
	EnvDataDir = "MOTOLOG_DATA_DIR"
	EnvBackend = "MOTOLOG_BACKEND"
)

// Backends accepted in general.backend.
var Backends = []string{"json", "sqlite"}

// Themes accepted in appearance.theme.
var Themes = []string{"flexoki-dark", "catppuccin-mocha", "tokyo-night", "terminal"}

// Config holds all motolog configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Ledger     LedgerConfig     `toml:"ledger"`
	Report     ReportConfig     `toml:"report"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds storage settings.
type GeneralConfig struct {
	DataDir string `toml:"data_dir,omitempty"`
	Backend string `toml:"backend"`
}

// LedgerConfig holds record-store behavior.
type LedgerConfig struct {
	// KeepDateOnEdit keeps a record's date when it is edited instead of
	// moving it to today.
	KeepDateOnEdit bool `toml:"keep_date_on_edit"`
}

// ReportConfig holds report formatting and sharing settings.
type ReportConfig struct {
	Currency     string `toml:"currency"`
	ShareCommand string `toml:"share_command,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Backend: "json",
		},
		Report: ReportConfig{
			Currency: "R$",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "motolog")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "motolog")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DefaultDataDir returns the XDG-compliant data directory.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "motolog")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "motolog")
}

// Load reads the config file, returning defaults if it doesn't exist.
// Environment overrides are applied on top.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err == nil {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	}

	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		cfg.General.DataDir = dir
	}
	if b := os.Getenv(EnvBackend); b != "" {
		cfg.General.Backend = strings.ToLower(strings.TrimSpace(b))
	}
}

// Validate reports the first setting outside its accepted values.
func (c Config) Validate() error {
	if !contains(Backends, c.General.Backend) {
		return fmt.Errorf("general.backend %q: must be one of %s", c.General.Backend, strings.Join(Backends, ", "))
	}
	if c.Appearance.Theme != "" && !contains(Themes, c.Appearance.Theme) {
		return fmt.Errorf("appearance.theme %q: must be one of %s", c.Appearance.Theme, strings.Join(Themes, ", "))
	}
	if strings.TrimSpace(c.Report.Currency) == "" {
		return fmt.Errorf("report.currency must not be empty")
	}
	return nil
}

// ResolvedDataDir returns the configured data directory or the default.
func (c Config) ResolvedDataDir() string {
	if c.General.DataDir != "" {
		return c.General.DataDir
	}
	return DefaultDataDir()
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}

	encErr := toml.NewEncoder(f).Encode(cfg)
	closeErr := f.Close()
	if encErr != nil {
		return fmt.Errorf("encoding config: %w", encErr)
	}
	return closeErr
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
