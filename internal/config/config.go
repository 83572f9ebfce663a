// Package config provides configuration management for the appdirs CLI using Viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/thoreinstein/appdirs"
)

// AppName is the application name used for config file naming.
const AppName = "appdirs"

// Config represents the top-level configuration structure. It supplies
// defaults for the CLI flags so frequently used identities don't have to
// be retyped.
type Config struct {
	App     string `mapstructure:"app" yaml:"app"`
	Author  string `mapstructure:"author" yaml:"author"`
	Version string `mapstructure:"version" yaml:"version"`
	Roaming bool   `mapstructure:"roaming" yaml:"roaming"`
	Format  string `mapstructure:"format" yaml:"format"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	// Config file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".") // Current directory
	viper.AddConfigPath(appdirs.UserDataDir(AppName, "", "", false))

	// Environment variable support
	viper.SetEnvPrefix("APPDIRS")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("format", "text")
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		// If config file not found...
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else {
			// Real read error (parsing, permissions, etc)
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
