// Config loading for the till CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/stockroom/internal/paths"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys in config.yaml.
	cfgKeyStoreName = "store_name"
	cfgKeyStoreFile = "store_file"
	cfgKeyFormat    = "format"
	cfgKeyLogLevel  = "log_level"

	defaultStoreName = "Stockroom"
	defaultFormat    = "json"
	defaultLogLevel  = "warn"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Till CLI configuration

# Display name for the catalog
store_name: Stockroom

# Store encoding: json or xml
format: json

# Logging verbosity: debug, info, warn, error
log_level: warn

# Store file path (optional; overridable by --store flag)
# store_file:
`

// loadConfig reads config.yaml from the resolved config directory using Viper.
// It creates the config directory and a default config.yaml on first run.
// A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyStoreName, defaultStoreName)
	v.SetDefault(cfgKeyFormat, defaultFormat)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// buildConfig assembles the effective configuration: config.yaml values with
// flag overrides on top, then resolves the store file path and validates.
func buildConfig(v *viper.Viper) (types.Config, error) {
	var c types.Config
	if err := v.Unmarshal(&c); err != nil {
		return types.Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if flagFormat != "" {
		c.Format = flagFormat
	}

	storeFile, err := paths.ResolveStoreFile(flagStore, c.StoreFile)
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve store file: %w", err)
	}
	c.StoreFile = storeFile

	if err := c.Validate(); err != nil {
		return types.Config{}, err
	}
	return c, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		// File already exists.
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
