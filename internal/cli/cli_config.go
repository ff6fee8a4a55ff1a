package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultServerURL is used by fetch when neither flags, environment nor the
// config file name a server.
const DefaultServerURL = "http://localhost:8080"

// CLIConfig represents the configuration for the CLI
type CLIConfig struct {
	ServerURL string        `yaml:"serverURL"`
	Plugin    string        `yaml:"plugin"`
	Timeout   time.Duration `yaml:"timeout"`
}

// DefaultCLIConfigPath returns ~/.coderws/config.yaml.
func DefaultCLIConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".coderws", "config.yaml"), nil
}

// LoadCLIConfig loads configuration from multiple sources in order of precedence:
// 1. Flags (handled by caller)
// 2. Environment variables
// 3. Config file (~/.coderws/config.yaml)
func LoadCLIConfig() (*CLIConfig, error) {
	path, err := DefaultCLIConfigPath()
	if err != nil {
		path = ""
	}
	return LoadCLIConfigFrom(path)
}

// LoadCLIConfigFrom is LoadCLIConfig with an explicit config file path. A
// missing file is not an error.
func LoadCLIConfigFrom(path string) (*CLIConfig, error) {
	config := &CLIConfig{}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	// Environment variables override the config file
	if envURL := os.Getenv("CODERWS_SERVER_URL"); envURL != "" {
		config.ServerURL = envURL
	}

	if config.ServerURL == "" {
		config.ServerURL = DefaultServerURL
	}
	return config, nil
}
