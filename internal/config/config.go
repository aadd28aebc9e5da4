package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Query   QueryConfig   `mapstructure:"query"`
	Logging LoggingConfig `mapstructure:"logging"`
	Output  OutputConfig  `mapstructure:"output"`
}

// QueryConfig holds the default AniList query filters. Each value can
// be overridden per invocation via CLI flags.
type QueryConfig struct {
	Status []string `mapstructure:"status"`
	Format []string `mapstructure:"format"`
	Year   int      `mapstructure:"year"`
	Season string   `mapstructure:"season"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	File       string `mapstructure:"file"`
	Color      bool   `mapstructure:"color"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

// OutputConfig holds presentation settings.
type OutputConfig struct {
	Clipboard bool `mapstructure:"clipboard"`
	Color     bool `mapstructure:"color"`
}

// Default returns a Config populated with default values. The query
// defaults mirror the AniChart seasonal selection.
func Default() *Config {
	return &Config{
		Query: QueryConfig{
			Status: []string{"RELEASING", "NOT_YET_RELEASED"},
			Format: []string{"TV", "MOVIE", "TV_SHORT", "OVA", "ONA"},
			Year:   2024,
			Season: "SUMMER",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "text",
			Color:      true,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     30,
			Compress:   false,
		},
		Output: OutputConfig{
			Clipboard: true,
			Color:     true,
		},
	}
}

// Load reads configuration from the given file path, or from the
// default location when path is empty. A missing config file is not an
// error; defaults apply.
func Load(path string) (*Config, *viper.Viper, error) {
	v := viper.New()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(GetConfigDir())
	}

	v.SetEnvPrefix("ANICHART")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || os.IsNotExist(err)
		if !missing {
			return nil, nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, v, nil
}

// setDefaults registers all defaults with viper so that a partial
// config file only overrides the keys it names.
func setDefaults(v *viper.Viper) {
	def := Default()

	v.SetDefault("query.status", def.Query.Status)
	v.SetDefault("query.format", def.Query.Format)
	v.SetDefault("query.year", def.Query.Year)
	v.SetDefault("query.season", def.Query.Season)

	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
	v.SetDefault("logging.file", def.Logging.File)
	v.SetDefault("logging.color", def.Logging.Color)
	v.SetDefault("logging.max_size", def.Logging.MaxSize)
	v.SetDefault("logging.max_backups", def.Logging.MaxBackups)
	v.SetDefault("logging.max_age", def.Logging.MaxAge)
	v.SetDefault("logging.compress", def.Logging.Compress)

	v.SetDefault("output.clipboard", def.Output.Clipboard)
	v.SetDefault("output.color", def.Output.Color)
}

// SaveDefaultConfig writes a config file with default values to path.
func SaveDefaultConfig(path string) error {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetConfigDir returns the configuration directory, respecting
// XDG_CONFIG_HOME.
func GetConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "anichart")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "anichart"
	}
	return filepath.Join(home, ".config", "anichart")
}

// getStateDir returns the base directory for state files such as logs,
// respecting XDG_STATE_HOME.
func getStateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "state")
}

// InitializeDirs creates the directories the application writes to.
func InitializeDirs() error {
	dirs := []string{
		GetConfigDir(),
		filepath.Join(getStateDir(), "anichart"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
