package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rspack-contrib/create-rspack/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyDefaultTemplate = "default_template"
	KeyTemplatesDir    = "templates_dir"
	KeyUserAgent       = "user_agent"
)

// userAgentEnv is set by npm, pnpm, yarn, and bun when they run a package binary.
const userAgentEnv = "npm_config_user_agent"

// Dir returns the path to the config directory (~/.create-rspack/).
// <PREFIX>_HOME overrides the location.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.create-rspack/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()
	// The package manager's variable wins over the prefixed override; a value
	// saved in the config file applies only when neither is set.
	_ = viper.BindEnv(KeyUserAgent, userAgentEnv, branding.EnvVar(KeyUserAgent))

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Keys returns the recognized configuration keys in sorted order.
func Keys() []string {
	keys := []string{KeyDefaultTemplate, KeyTemplatesDir, KeyUserAgent}
	sort.Strings(keys)
	return keys
}

// DefaultTemplate returns the template preselected by the template prompt.
func DefaultTemplate() string { return Get(KeyDefaultTemplate) }

// TemplatesDir returns a directory of templates that replaces the built-in set.
func TemplatesDir() string { return Get(KeyTemplatesDir) }

// UserAgent returns the invoking package manager's user agent string.
func UserAgent() string { return Get(KeyUserAgent) }
