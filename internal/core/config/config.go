// Package config reads and writes the user-level aikit configuration at
// ~/.aikit/config.json. The file is JSON with comments and trailing
// commas tolerated, so users can annotate it by hand.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/tailscale/hujson"
)

const (
	configDirName  = ".aikit"
	configFileName = "config.json"
	packagesDir    = "packages"
)

// Config is the persisted user configuration.
type Config struct {
	DefaultAgent string `json:"defaultAgent,omitempty"` // agent key used when --agent is omitted
	DefaultModel string `json:"defaultModel,omitempty"` // model passed to runnable agents by default
	DefaultRoot  string `json:"defaultRoot,omitempty"`  // project root used when --root is omitted
}

// Manager handles reading and writing the aikit configuration.
type Manager struct {
	configDir string
	mu        sync.RWMutex
}

// NewManager creates a Manager using the default config path (~/.aikit/).
func NewManager() (*Manager, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting home directory: %w", err)
	}
	return &Manager{configDir: filepath.Join(home, configDirName)}, nil
}

// NewManagerWithDir creates a Manager using a custom config directory.
// Useful for testing.
func NewManagerWithDir(dir string) *Manager {
	return &Manager{configDir: dir}
}

// ConfigDir returns the configuration directory path.
func (m *Manager) ConfigDir() string { return m.configDir }

// ConfigPath returns the full path to the config file.
func (m *Manager) ConfigPath() string {
	return filepath.Join(m.configDir, configFileName)
}

// PackagesDir returns the path where fetched template packages live.
func (m *Manager) PackagesDir() string {
	return filepath.Join(m.configDir, packagesDir)
}

// Load reads the config from disk. A missing file yields the zero
// config. Comments and trailing commas in the file are standardized
// away before decoding.
func (m *Manager) Load() (*Config, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, err := os.ReadFile(m.ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(std, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes the config to disk, creating the directory if needed.
// Saving rewrites the file as plain JSON; hand-written comments do not
// survive a save.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(m.configDir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	// Write atomically: write to temp file then rename
	tmpPath := m.ConfigPath() + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	if err := os.Rename(tmpPath, m.ConfigPath()); err != nil {
		_ = os.Remove(tmpPath) // clean up on failure
		return fmt.Errorf("saving config: %w", err)
	}
	return nil
}
