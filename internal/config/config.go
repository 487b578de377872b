package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/lista/internal/config/colors"
	"github.com/thenoetrevino/lista/internal/export"
	"github.com/thenoetrevino/lista/internal/models"
	"github.com/thenoetrevino/lista/internal/store"
)

// Environment variables that override values from the config file
const (
	EnvDataFile   = "LISTA_DATA_FILE"
	EnvBackupFile = "LISTA_BACKUP_FILE"
	EnvThemeFile  = "LISTA_THEME_FILE"
)

// Config represents the application configuration
type Config struct {
	DataFile        string             `yaml:"data_file"`
	BackupFile      string             `yaml:"backup_file"`
	AutoBackup      bool               `yaml:"auto_backup"`
	DefaultPriority string             `yaml:"default_priority"`
	ExportFormat    string             `yaml:"export_format"`
	KeyMappings     KeyMappings        `yaml:"key_mappings"`
	ColorScheme     colors.ColorScheme `yaml:"theme"`
}

// Default returns a config with every value set to its default
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

// loadThemeFile loads and merges theme from LISTA_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.Override(themeConfig.Theme)
	}
}

// loadEnv applies environment overrides for the store paths
func loadEnv(config *Config) {
	if v := os.Getenv(EnvDataFile); v != "" {
		config.DataFile = v
	}
	if v := os.Getenv(EnvBackupFile); v != "" {
		config.BackupFile = v
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		config := &Config{}
		loadEnv(config)
		loadThemeFile(config)
		config.applyDefaults()
		return config, nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads config from an explicit path
// A missing file yields the default config
func LoadFrom(configPath string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(configPath)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", configPath, err)
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", configPath, err)
		}
	}

	loadEnv(&config)

	// Load theme from LISTA_THEME_FILE if set
	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", configPath, err)
	}

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(configPath)
}

// SaveTo writes the config as YAML to the given path
func (c *Config) SaveTo(configPath string) error {
	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// StoreConfig returns the store settings described by this config
func (c *Config) StoreConfig() store.Config {
	return store.Config{
		DataFile:   c.DataFile,
		BackupFile: c.BackupFile,
		AutoBackup: c.AutoBackup,
	}
}

// Priority returns the configured default priority
func (c *Config) Priority() models.Priority {
	p, err := models.ParsePriority(c.DefaultPriority)
	if err != nil {
		return models.DefaultPriority
	}
	return p
}

// Path returns the path Load reads the config from
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "lista", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "lista", "config.yaml"), nil
}

// dataDir returns the directory holding the task files by default
func dataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".lista"
	}
	return filepath.Join(homeDir, ".lista")
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.DataFile == "" {
		c.DataFile = filepath.Join(dataDir(), "todos.txt")
	}
	if c.BackupFile == "" {
		c.BackupFile = filepath.Join(dataDir(), "todos_backup.txt")
	}
	if c.DefaultPriority == "" {
		c.DefaultPriority = string(models.DefaultPriority)
	}
	if c.ExportFormat == "" {
		c.ExportFormat = string(export.FormatText)
	}
	c.DataFile = expandHome(c.DataFile)
	c.BackupFile = expandHome(c.BackupFile)
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}

func (c *Config) validate() error {
	if _, err := models.ParsePriority(c.DefaultPriority); err != nil {
		return fmt.Errorf("default_priority: %w", err)
	}
	if _, err := export.ParseFormat(c.ExportFormat); err != nil {
		return fmt.Errorf("export_format: %w", err)
	}
	return validatePreset(c.ColorScheme.Preset)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
}
