// Package config resolves runtime settings from a TOML file, TSTACK_*
// environment variables and command-line flags, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".config/tstack"
	envPrefix  = "TSTACK"

	SeedKey     = "seed"
	LogLevelKey = "log.level"
	LogFileKey  = "log.file"

	defaultLogLevel = "warn"
)

type Config struct {
	// Seed drives piece generation; 0 asks for a fresh random seed.
	Seed     int64
	LogLevel string
	// LogFile is an optional rotating log file next to stderr output.
	LogFile string
	// File is the config file that was read, empty when none was found.
	File string
}

// Load reads configuration into cfg. An explicit path must exist; the default
// location is optional.
func Load(cfg *viper.Viper, path string) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()
	cfg.SetDefault(SeedKey, int64(0))
	cfg.SetDefault(LogLevelKey, defaultLogLevel)
	cfg.SetDefault(LogFileKey, "")

	if path != "" {
		cfg.SetConfigFile(path)
	} else {
		cfg.SetConfigName(configName)
		cfg.SetConfigType(configType)
		if homeDir, err := os.UserHomeDir(); err == nil {
			cfg.AddConfigPath(filepath.Join(homeDir, configDir))
		}
	}

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	return Config{
		Seed:     cfg.GetInt64(SeedKey),
		LogLevel: strings.ToLower(strings.TrimSpace(cfg.GetString(LogLevelKey))),
		LogFile:  strings.TrimSpace(cfg.GetString(LogFileKey)),
		File:     cfg.ConfigFileUsed(),
	}, nil
}
