// Package config resolves batchprint settings from flags, environment,
// an optional YAML file and built-in defaults, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Norgate-AV/batchprint/internal/logger"
	"github.com/Norgate-AV/batchprint/internal/timeouts"
)

// EnvPrefix is prepended to every environment override, e.g. BATCHPRINT_DELAY
const EnvPrefix = "BATCHPRINT"

// Keys understood by Load. Nested keys map to env vars with "." replaced by "_".
const (
	KeyPrinter        = "printer"
	KeyDelay          = "delay"
	KeyVerbose        = "verbose"
	KeyLPPath         = "lp_path"
	KeyLPStatPath     = "lpstat_path"
	KeyLogDir         = "log.dir"
	KeyLogMaxSize     = "log.max_size"
	KeyLogMaxBackups  = "log.max_backups"
	KeyLogMaxAge      = "log.max_age"
	KeyLogCompress    = "log.compress"
	defaultConfigName = "config"
)

// Config is the resolved application configuration
type Config struct {
	Printer    string
	Delay      time.Duration
	Verbose    bool
	LPPath     string
	LPStatPath string
	Log        logger.LoggerOptions
}

// New returns a viper instance with defaults and environment binding applied.
// Callers bind their command-line flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyPrinter, "")
	v.SetDefault(KeyDelay, timeouts.InterJobDelay)
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyLPPath, "lp")
	v.SetDefault(KeyLPStatPath, "lpstat")
	v.SetDefault(KeyLogDir, "")
	v.SetDefault(KeyLogMaxSize, logger.DefaultLogMaxSize)
	v.SetDefault(KeyLogMaxBackups, logger.DefaultLogMaxBackups)
	v.SetDefault(KeyLogMaxAge, logger.DefaultLogMaxAge)
	v.SetDefault(KeyLogCompress, true)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// DefaultConfigDir returns the directory searched for config.yaml when no
// explicit file is given.
func DefaultConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(dir, logger.AppName)
}

// Load reads the config file (if any) into v and returns the resolved Config.
// An explicit path must exist; the default location is optional.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	} else if dir := DefaultConfigDir(); dir != "" {
		v.AddConfigPath(dir)
		v.SetConfigName(defaultConfigName)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	cfg := &Config{
		Printer:    strings.TrimSpace(v.GetString(KeyPrinter)),
		Delay:      v.GetDuration(KeyDelay),
		Verbose:    v.GetBool(KeyVerbose),
		LPPath:     v.GetString(KeyLPPath),
		LPStatPath: v.GetString(KeyLPStatPath),
		Log: logger.LoggerOptions{
			Verbose:    v.GetBool(KeyVerbose),
			LogDir:     v.GetString(KeyLogDir),
			MaxSize:    v.GetInt(KeyLogMaxSize),
			MaxBackups: v.GetInt(KeyLogMaxBackups),
			MaxAge:     v.GetInt(KeyLogMaxAge),
			Compress:   v.GetBool(KeyLogCompress),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values that viper cannot reject on its own
func (c *Config) Validate() error {
	if c.Delay < 0 {
		return fmt.Errorf("delay must not be negative, got %s", c.Delay)
	}

	if c.LPPath == "" || c.LPStatPath == "" {
		return fmt.Errorf("lp_path and lpstat_path must not be empty")
	}

	return nil
}
