// Package config loads and persists the jellyname configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Nomadcxx/jellyname/internal/logging"
	"github.com/Nomadcxx/jellyname/internal/paths"
	"github.com/spf13/viper"
)

// TMDBConfig configures the catalog client. The credential is carried in
// an explicit struct handed to the client constructor; there is no
// process-wide key state.
type TMDBConfig struct {
	APIKey   string `mapstructure:"api_key"`
	Language string `mapstructure:"language"`
}

// OptionsConfig holds renaming behavior defaults.
type OptionsConfig struct {
	// Validate makes every run a dry run unless overridden on the CLI.
	Validate bool `mapstructure:"validate"`
	// ExcludedExtensions are never renamed (default: dat, inf, pdx, txt).
	ExcludedExtensions []string `mapstructure:"excluded_extensions"`
	// SupportedExtensions gate which single files are accepted as media.
	SupportedExtensions []string `mapstructure:"supported_extensions"`
}

type Config struct {
	TMDB    TMDBConfig     `mapstructure:"tmdb"`
	Options OptionsConfig  `mapstructure:"options"`
	Logging logging.Config `mapstructure:"logging"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		TMDB: TMDBConfig{
			Language: "",
		},
		Options: OptionsConfig{
			ExcludedExtensions: []string{"dat", "inf", "pdx", "txt"},
			SupportedExtensions: []string{
				"asf", "avi", "mov", "mp4", "mpeg", "mpegts", "ts", "mkv", "wmv",
			},
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load reads the config file (if present) and applies environment
// overrides. TMDB_API_KEY or TMDB_KEY always win over the file.
func Load() (*Config, error) {
	v := viper.New()

	configPath, err := paths.ConfigPath()
	if err != nil {
		return nil, fmt.Errorf("unable to get config path: %w", err)
	}
	v.SetConfigFile(configPath)

	if _, err := os.Stat(configPath); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config: %w", err)
	}

	if key := os.Getenv("TMDB_API_KEY"); key != "" {
		cfg.TMDB.APIKey = key
	} else if key := os.Getenv("TMDB_KEY"); key != "" {
		cfg.TMDB.APIKey = key
	}

	return cfg, nil
}

// Save writes the configuration to the config file.
func (c *Config) Save() error {
	configFile, err := paths.ConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configFile)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("unable to create config dir: %w", err)
	}

	return os.WriteFile(configFile, []byte(c.ToTOML()), 0644)
}

// ConfigExists reports whether a config file is present.
func ConfigExists() bool {
	path, err := paths.ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// ToTOML renders the configuration as a commented TOML document.
func (c *Config) ToTOML() string {
	return fmt.Sprintf(`# jellyname configuration
# Generated by: jellyname config init

[tmdb]
# API key from https://www.themoviedb.org/settings/api
# Can also be supplied via the TMDB_API_KEY environment variable.
api_key = %q
# Optional result language, e.g. "en-GB". Empty uses TMDB's default.
language = %q

[options]
# When true every run is a dry run unless --validate=false is passed.
validate = %t
# File extensions that are never renamed.
excluded_extensions = [%s]
# File extensions accepted as media when passing single files.
supported_extensions = [%s]

[logging]
# debug, info, warn, error
level = %q
# Empty uses ~/.config/jellyname/logs/jellyname.log
file = %q
max_size_mb = %d
max_backups = %d
`,
		c.TMDB.APIKey,
		c.TMDB.Language,
		c.Options.Validate,
		quoteList(c.Options.ExcludedExtensions),
		quoteList(c.Options.SupportedExtensions),
		c.Logging.Level,
		c.Logging.File,
		c.Logging.MaxSizeMB,
		c.Logging.MaxBackups,
	)
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = fmt.Sprintf("%q", item)
	}
	return strings.Join(quoted, ", ")
}
