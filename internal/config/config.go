package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/NoonWatt/solarscan-cli/internal/dataset"
)

// Global configuration structure.
type Global struct {
	CatalogPath      string   `mapstructure:"catalog_path" yaml:"catalog_path"`
	OutputDir        string   `mapstructure:"output_dir" yaml:"output_dir"`
	OutlierThreshold float64  `mapstructure:"outlier_threshold" yaml:"outlier_threshold"`
	MissingWarnPct   float64  `mapstructure:"missing_warn_pct" yaml:"missing_warn_pct"`
	KeyColumns       []string `mapstructure:"key_columns" yaml:"key_columns"`
	ServerAddr       string   `mapstructure:"server_addr" yaml:"server_addr"`
	LogLevel         string   `mapstructure:"log_level" yaml:"log_level"`
}

// Keys returns the configured key columns, falling back to the sensor-export
// defaults when none are configured.
func (c *Global) Keys() []string {
	if len(c.KeyColumns) > 0 {
		return c.KeyColumns
	}
	return dataset.KeyColumns()
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.solarscan/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".solarscan")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("SOLARSCAN")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("outlier_threshold", 3.0)
	v.SetDefault("missing_warn_pct", 5.0)
	v.SetDefault("key_columns", []string{})
	v.SetDefault("server_addr", ":8080")
	v.SetDefault("log_level", "info")

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".solarscan")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	// Resolve catalog_path default: ~/.solarscan/catalog.json
	if c.CatalogPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		c.CatalogPath = filepath.Join(home, ".solarscan", "catalog.json")
	}
	return &c, nil
}
