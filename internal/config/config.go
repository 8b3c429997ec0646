// Package config loads planview settings: built-in defaults, then an
// optional YAML file, then PLANVIEW_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/planview/internal/domain"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. PLANVIEW_SERVE_ADDR.
const EnvPrefix = "PLANVIEW"

// Config is the resolved configuration.
type Config struct {
	// DBPath is the SQLite plan catalog location.
	DBPath string `mapstructure:"db_path"`
	// Plan is the plan ref shown when --plan is not given. Empty means built-in.
	Plan string `mapstructure:"plan"`
	// DefaultTab is the tab selected on start.
	DefaultTab string      `mapstructure:"default_tab"`
	Serve      ServeConfig `mapstructure:"serve"`
	Log        LogConfig   `mapstructure:"log"`
}

// ServeConfig controls the HTTP server.
type ServeConfig struct {
	Addr string `mapstructure:"addr"`
}

// LogConfig controls structured logging. An empty Level disables logging.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Dir returns the planview home directory, ~/.planview.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".planview"
	}
	return filepath.Join(home, ".planview")
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		DBPath:     filepath.Join(Dir(), "planview.db"),
		Plan:       "",
		DefaultTab: string(domain.TabOverview),
		Serve:      ServeConfig{Addr: ":8080"},
	}
}

// SetDefaults registers default values with v. Every key needs a default so
// that environment overrides reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	defaults := Default()
	v.SetDefault("db_path", defaults.DBPath)
	v.SetDefault("plan", defaults.Plan)
	v.SetDefault("default_tab", defaults.DefaultTab)
	v.SetDefault("serve.addr", defaults.Serve.Addr)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.file", defaults.Log.File)
}

// Load resolves the configuration into v. cfgFile, when set, must exist;
// otherwise config.yaml in Dir is read if present.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(Dir())
	}

	v.SetEnvPrefix(EnvPrefix)
	// PLANVIEW_SERVE_ADDR for serve.addr
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.DBPath = expandHome(cfg.DBPath)
	cfg.Log.File = expandHome(cfg.Log.File)

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, SettingErrors(errs)
	}
	return &cfg, nil
}

// Tab returns the configured default tab, or overview when it is unset.
func (c *Config) Tab() domain.Tab {
	tab, err := domain.ParseTab(c.DefaultTab)
	if err != nil {
		return domain.TabOverview
	}
	return tab
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
