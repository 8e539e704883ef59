package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up when no --config flag is given.
const FileName = "teller.yaml"

// Config represents the top-level teller.yaml configuration.
type Config struct {
	Bank    BankConfig    `yaml:"bank"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// BankConfig controls what the menu shows.
type BankConfig struct {
	Title string `yaml:"title"`
}

// StorageConfig locates the data files. Relative paths are resolved against
// the directory holding the config file.
type StorageConfig struct {
	AccountsFile     string `yaml:"accounts_file"`
	TransactionsFile string `yaml:"transactions_file"`
}

// LogConfig controls diagnostic output on stderr.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Load reads a teller.yaml file from disk. Empty fields take their defaults
// and relative storage paths are resolved against the file's directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default("")
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Resolve(filepath.Dir(path))
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields Default.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(""), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults. An empty title uses the
// stock greeting.
func Default(title string) *Config {
	if title == "" {
		title = "Standard Chartered Bank"
	}
	return &Config{
		Bank: BankConfig{
			Title: title,
		},
		Storage: StorageConfig{
			AccountsFile:     "accounts.txt",
			TransactionsFile: "transactions.txt",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Resolve makes relative storage paths relative to dir.
func (c *Config) Resolve(dir string) {
	c.Storage.AccountsFile = resolve(dir, c.Storage.AccountsFile)
	c.Storage.TransactionsFile = resolve(dir, c.Storage.TransactionsFile)
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
