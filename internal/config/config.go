// Package config loads runtime settings of the command line from the
// environment. Settings never change the CSV dialect or the column table.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "EQUIPCSV"

// DotEnvFile is loaded from the working directory if it exists.
const DotEnvFile = ".env"

const (
	keyVerbose = "verbose"
	keyLogFile = "log_file"
)

// Config holds all runtime configuration.
type Config struct {
	// Verbose enables debug output on stderr (EQUIPCSV_VERBOSE, default: false)
	Verbose bool

	// LogFile receives every log entry as JSON (EQUIPCSV_LOG_FILE, default: disabled)
	LogFile string
}

// Load reads configuration from the environment after loading dotEnvPath.
// Variables already set in the environment take precedence over the file.
// A missing file is not an error.
func Load(dotEnvPath string) (*Config, error) {
	if dotEnvPath != "" {
		if err := godotenv.Load(dotEnvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config load: cannot parse env file %q: %w", dotEnvPath, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetDefault(keyVerbose, false)
	v.SetDefault(keyLogFile, "")

	cfg := &Config{}

	verbose, err := cast.ToBoolE(v.Get(keyVerbose))
	if err != nil {
		return nil, fmt.Errorf("config load: invalid value for %s: %w", EnvName(keyVerbose), err)
	}

	cfg.Verbose = verbose
	cfg.LogFile = strings.TrimSpace(v.GetString(keyLogFile))

	return cfg, nil
}

// EnvName returns the environment variable bound to key.
func EnvName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(key)
}

// String returns a representation of the config for debug logs.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Verbose: %v, LogFile: %q}", c.Verbose, c.LogFile)
}
