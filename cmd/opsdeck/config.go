// Config loading for the opsdeck CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/agencykit/opsdeck/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyBackend       = "backend"
	cfgKeyDataDir       = "data_dir"
	cfgKeyPersistMode   = "persist_mode"
	cfgKeyBatchSize     = "batch_size"
	cfgKeyBatchInterval = "batch_interval"
)

// Defaults applied when config.yaml omits a key.
const (
	defaultBackend       = types.BackendFile
	defaultPersistMode   = types.PersistImmediate
	defaultBatchSize     = 16
	defaultBatchInterval = 2 * time.Second
)

// loadedConfig is the viper instance populated by PersistentPreRunE.
var loadedConfig *viper.Viper

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Opsdeck CLI configuration

# Storage backend: file or sqlite
backend: file

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Persistence strategy: immediate, on_close, or batch
persist_mode: immediate

# Batch persistence parameters (used when persist_mode is batch)
# batch_size: 16
# batch_interval: 2s
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on
// first run. A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, defaultBackend)
	v.SetDefault(cfgKeyPersistMode, defaultPersistMode)
	v.SetDefault(cfgKeyBatchSize, defaultBatchSize)
	v.SetDefault(cfgKeyBatchInterval, defaultBatchInterval)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Missing config.yaml falls back to defaults.
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// storeConfig assembles the store configuration from the loaded
// config.yaml and the resolved data directory.
func storeConfig() (types.Config, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend:       loadedConfig.GetString(cfgKeyBackend),
		DataDir:       dataDir,
		PersistMode:   loadedConfig.GetString(cfgKeyPersistMode),
		BatchSize:     loadedConfig.GetInt(cfgKeyBatchSize),
		BatchInterval: loadedConfig.GetDuration(cfgKeyBatchInterval),
	}
	return cfg, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
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
