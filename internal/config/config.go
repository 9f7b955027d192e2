package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"gosyncquotes/internal/utils"
	"gosyncquotes/remote"

	_ "embed"
)

var configOnce sync.Once

var globalConfig *Config

var customConfigPath string // Custom config path set via --config flag

//go:embed config.sample.yaml
var sampleConfig []byte

const (
	CONFIG_DIR_PATH  = "gosyncquotes"
	CONFIG_FILE_PATH = "config.yaml"
	CONFIG_DIR_PERM  = 0755
	CONFIG_FILE_PERM = 0644
)

// Config represents the application configuration.
type Config struct {
	Server  ServerConfig `yaml:"server"`
	Store   StoreConfig  `yaml:"store"`
	Sync    SyncConfig   `yaml:"sync"`
	UI      string       `yaml:"ui" validate:"oneof=cli tui"`
	Verbose bool         `yaml:"verbose"`
}

// ServerConfig points at the quote server.
type ServerConfig struct {
	BaseURL string `yaml:"base_url" validate:"required,url"`
}

// StoreConfig selects and locates the local store implementation.
type StoreConfig struct {
	Type string `yaml:"type" validate:"required,oneof=bolt sqlite"`
	// Path overrides the default state file location. Supports ~ and
	// environment variables. Empty means the XDG data directory.
	Path string `yaml:"path"`
}

// SyncConfig holds the auto-sync defaults. The interval stored in the local
// store, when present, takes precedence over this value.
type SyncConfig struct {
	Auto       bool `yaml:"auto"`
	IntervalMS int  `yaml:"interval_ms" validate:"min=0"`
}

func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	return nil
}

// applyDefaults fills zero values so a partial config file still works.
func (c *Config) applyDefaults() {
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = remote.DefaultBaseURL
	}
	if c.Store.Type == "" {
		c.Store.Type = "bolt"
	}
	if c.UI == "" {
		c.UI = "cli"
	}
}

// StorePath resolves the state file location: the configured path (expanded)
// or a type-specific file under the XDG data directory.
func (c *Config) StorePath() (string, error) {
	if c.Store.Path != "" {
		return utils.ExpandPath(c.Store.Path)
	}

	dir, err := utils.DataDir(CONFIG_DIR_PATH)
	if err != nil {
		return "", fmt.Errorf("failed to resolve data directory: %w", err)
	}

	name := "state.bolt"
	if c.Store.Type == "sqlite" {
		name = "state.db"
	}
	return filepath.Join(dir, name), nil
}

// SyncInterval returns the configured auto-sync interval, or zero when the
// config does not set one.
func (c *Config) SyncInterval() time.Duration {
	if c.Sync.IntervalMS <= 0 {
		return 0
	}
	return time.Duration(c.Sync.IntervalMS) * time.Millisecond
}

// SetCustomConfigPath sets a custom config path to use instead of the default
// user config directory.
// If path is empty or ".", it uses "./gosyncquotes/config.yaml" (current directory).
// If path is a directory, it looks for "config.yaml" inside it.
// If path is a file, it uses that file directly.
// This must be called before GetConfig() is called for the first time.
func SetCustomConfigPath(path string) {
	if path == "" || path == "." {
		customConfigPath = filepath.Join(".", CONFIG_DIR_PATH, CONFIG_FILE_PATH)
	} else {
		info, err := os.Stat(path)
		if err == nil && info.IsDir() {
			customConfigPath = filepath.Join(path, CONFIG_FILE_PATH)
		} else {
			customConfigPath = path
		}
	}
}

func GetConfig() *Config {
	configOnce.Do(func() {
		config, err := loadUserOrSampleConfig()
		if err != nil {
			log.Fatal(err)
		}
		globalConfig = config
	})
	return globalConfig
}

func loadUserOrSampleConfig() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	configData, err := configDataFromPath(configPath)
	if err != nil {
		return nil, err
	}
	return parseConfig(configData, configPath)
}

func GetConfigPath() (string, error) {
	// If a custom config path was set, use it even if it does not exist yet
	// (allows creation of config in custom location).
	if customConfigPath != "" {
		return customConfigPath, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}
	return filepath.Join(dir, CONFIG_DIR_PATH, CONFIG_FILE_PATH), nil
}

func createConfigDir(configPath string) error {
	return os.MkdirAll(filepath.Dir(configPath), CONFIG_DIR_PERM)
}

func WriteConfigFile(configPath string, data []byte) error {
	return os.WriteFile(configPath, data, CONFIG_FILE_PERM)
}

func createConfigFromSample(configPath string) ([]byte, error) {
	if err := createConfigDir(configPath); err != nil {
		return nil, err
	}
	if err := WriteConfigFile(configPath, sampleConfig); err != nil {
		return nil, err
	}
	return sampleConfig, nil
}

func parseConfig(configData []byte, configPath string) (*Config, error) {
	var configObj Config
	if err := yaml.Unmarshal(configData, &configObj); err != nil {
		return nil, utils.WrapWithSuggestion(
			fmt.Errorf("invalid YAML in config file %s: %w", configPath, err),
			"Fix the file or delete it to start over from the sample",
		)
	}

	configObj.applyDefaults()

	if err := configObj.Validate(); err != nil {
		return nil, utils.ErrInvalidConfig(configPath, err.Error())
	}
	return &configObj, nil
}

func configDataFromPath(configPath string) ([]byte, error) {
	configData, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		fmt.Println("No config exists at", configPath)

		shouldCopySample := utils.PromptYesNo("Do you want to copy the config sample to " + configPath + "?")
		if shouldCopySample {
			return createConfigFromSample(configPath)
		}
		// Run with the sample defaults without writing anything.
		return sampleConfig, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	return configData, nil
}
