package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"kctx/pkg/logging"

	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".config/kctx"
	configFileName = "config.yaml"
	stateDirName   = "state"

	// ConfigPathEnvVar overrides the configuration directory.
	ConfigPathEnvVar = "KCTX_CONFIG_PATH"
)

// osUserHomeDir is replaced in tests.
var osUserHomeDir = os.UserHomeDir

// GetDefaultConfigPath returns ~/.config/kctx.
func GetDefaultConfigPath() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine user config directory: %w", err)
	}
	return filepath.Join(homeDir, userConfigDir), nil
}

// ResolveConfigPath picks the configuration directory: flagValue when set,
// then $KCTX_CONFIG_PATH, then the default.
func ResolveConfigPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv(ConfigPathEnvVar); env != "" {
		return env, nil
	}
	return GetDefaultConfigPath()
}

// StateDir returns where persistent state is kept for cfg loaded from
// configPath.
func StateDir(cfg KctxConfig, configPath string) string {
	if cfg.Recent.StateDir != "" {
		return cfg.Recent.StateDir
	}
	return filepath.Join(configPath, stateDirName)
}

// LoadConfig loads config.yaml from configPath on top of the defaults.
func LoadConfig(configPath string) (KctxConfig, error) {
	configFilePath := filepath.Join(configPath, configFileName)
	config := GetDefaultConfig()

	data, err := os.ReadFile(configFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Debug("ConfigLoader", "No config.yaml found at %s, using defaults", configFilePath)
			return config, nil
		}
		logging.Warn("ConfigLoader", "Error loading config.yaml from %s: %s", configFilePath, err)
		return KctxConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return KctxConfig{}, fmt.Errorf("error loading config from %s: %w", configFilePath, err)
	}
	if err := config.Validate(); err != nil {
		return KctxConfig{}, fmt.Errorf("invalid config in %s: %w", configFilePath, err)
	}
	logging.Debug("ConfigLoader", "Loaded configuration from %s", configFilePath)
	return config, nil
}
