package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI      UIConfig
	History HistoryConfig
	Log     LogConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Precision  int
	TimeFormat string `mapstructure:"time_format"`
}

// HistoryConfig holds session history settings.
type HistoryConfig struct {
	Limit int
}

// LogConfig holds file logging settings. The terminal is owned by the
// TUI, so logs always go to a file.
type LogConfig struct {
	Path  string
	Level string
}

// Load reads configuration from file and env. Env var overrides use prefix UNITCONV_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.precision", 2)
	v.SetDefault("ui.time_format", "15:04:05")
	v.SetDefault("history.limit", 200)
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "state", "unitconv", "unitconv.log"))
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("UNITCONV_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "unitconv"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("UNITCONV")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory
// if needed.
func Save(cfg Config) error {
	path := os.Getenv("UNITCONV_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "unitconv", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.precision", cfg.UI.Precision)
	v.Set("ui.time_format", cfg.UI.TimeFormat)
	v.Set("history.limit", cfg.History.Limit)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
