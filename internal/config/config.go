// Package config manages the tool's settings file and credential resolution.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the persisted tool settings.
type Config struct {
	Provider string `mapstructure:"provider"`
	Model    string `mapstructure:"model"`
	APIKey   string `mapstructure:"api_key"`
}

const (
	DefaultProvider   = "gemini"
	DefaultConfigName = ".autocommit"

	apiKeyConfigKey = "api_key"
)

var configPath string

// Init loads the configuration file. A missing file is not an error; it is
// created lazily on the first write.
func Init(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		configPath = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("unable to find home directory: %w", err)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(DefaultConfigName)
		viper.SetConfigType("yaml")
		configPath = filepath.Join(home, DefaultConfigName+".yaml")
	}

	viper.SetDefault("provider", DefaultProvider)
	viper.SetDefault("model", "")
	viper.SetDefault(apiKeyConfigKey, "")

	viper.AutomaticEnv()

	// viper reports a missing file as ConfigFileNotFoundError in search-path
	// mode but as a plain path error when the file was set explicitly
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("unable to read config file: %w", err)
		}
	}

	return nil
}

// Get returns the current configuration.
func Get() *Config {
	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return &Config{Provider: DefaultProvider}
	}
	return cfg
}

// Save writes the configuration file. The file may hold an API key, so it is
// kept private to the user.
func Save() error {
	if configPath == "" {
		return fmt.Errorf("config path not initialized")
	}
	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("unable to write config file: %w", err)
	}
	return os.Chmod(configPath, 0600)
}

// Source records where a credential value came from.
type Source int

const (
	SourceEnvironment Source = iota
	SourceStored
	SourceUserEntered
)

func (s Source) String() string {
	switch s {
	case SourceEnvironment:
		return "environment"
	case SourceStored:
		return "stored"
	case SourceUserEntered:
		return "user-entered"
	default:
		return "unknown"
	}
}

// Credential is a resolved secret value. Its value is never logged.
type Credential struct {
	Name   string
	Value  string
	Source Source
}

// Store resolves credentials from the process environment first and the
// config file second, and persists user-entered values for future runs.
type Store struct{}

// Resolve returns the named credential, or false if it is absent in both the
// environment and the store.
func (Store) Resolve(name string) (Credential, bool) {
	if value := os.Getenv(name); value != "" {
		return Credential{Name: name, Value: value, Source: SourceEnvironment}, true
	}
	if value := viper.GetString(apiKeyConfigKey); value != "" {
		return Credential{Name: name, Value: value, Source: SourceStored}, true
	}
	return Credential{}, false
}

// Persist writes the value to the local store. The value itself is never
// echoed to any output stream.
func (Store) Persist(name, value string) error {
	viper.Set(apiKeyConfigKey, value)
	return Save()
}
