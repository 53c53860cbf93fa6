// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config provides configuration loading, merging, and persistence
// helpers for SecWatch. It uses Viper for file/env/flag parsing.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the complete runtime configuration shared by the CLI and the TUI.
type Config struct {
	API      APIConfig   `mapstructure:"api" yaml:"api"`
	Token    TokenConfig `mapstructure:"token" yaml:"token"`
	Poll     PollConfig  `mapstructure:"poll" yaml:"poll"`
	Language string      `mapstructure:"language" yaml:"language"`
	Log      LogConfig   `mapstructure:"log" yaml:"log"`
}

// APIConfig describes how to reach the monitoring backend.
type APIConfig struct {
	BaseURL   string        `mapstructure:"base_url" yaml:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout" yaml:"timeout"`
	RateLimit float64       `mapstructure:"rate_limit" yaml:"rate_limit"`
	RateBurst int           `mapstructure:"rate_burst" yaml:"rate_burst"`
}

// TokenConfig selects where the bearer token is persisted.
type TokenConfig struct {
	Store    string `mapstructure:"store" yaml:"store"`
	Dsn      string `mapstructure:"dsn" yaml:"dsn"`
	Password string `mapstructure:"password" yaml:"password,omitempty"`
}

// PollConfig holds one refresh interval per view. Zero means manual refresh.
type PollConfig struct {
	Alerts    time.Duration `mapstructure:"alerts" yaml:"alerts"`
	Logins    time.Duration `mapstructure:"logins" yaml:"logins"`
	Files     time.Duration `mapstructure:"files" yaml:"files"`
	Dashboard time.Duration `mapstructure:"dashboard" yaml:"dashboard"`
	Users     time.Duration `mapstructure:"users" yaml:"users"`
}

// LogConfig controls the package logger.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

// Defaults returns the viper defaults for every key.
func Defaults() map[string]any {
	return map[string]any{
		"api.base_url":   "http://localhost:8000",
		"api.timeout":    "15s",
		"api.rate_limit": 0,
		"api.rate_burst": 5,
		"token.store":    "file",
		"token.dsn":      "",
		"poll.alerts":    "5s",
		"poll.logins":    "3s",
		"poll.files":     "5s",
		"poll.dashboard": "30s",
		"poll.users":     "0s",
		"language":       "en",
		"log.level":      "info",
		"log.file":       "",
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "SecWatch")
		default: // Linux, macOS, etc.
			configDir = "/etc/secwatch"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "secwatch")
	}

	return filepath.Join(configDir, "secwatch.yaml"), nil
}

// LoadConfig layers defaults, the config file, SECWATCH_* environment
// variables and the command's flags into T. When no config file exists the
// populated T is returned together with a viper.ConfigFileNotFoundError so
// callers can decide to write one.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, additionalConfigFilePath *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("secwatch")
	v.SetConfigType("yaml")

	// An explicit --config path has the highest precedence for files.
	if additionalConfigFilePath != nil {
		v.SetConfigFile(*additionalConfigFilePath)
	}

	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	var notFound error
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
		notFound = err
	}

	v.SetEnvPrefix("secwatch")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, notFound
}

// WriteConfigFile persists c as YAML at the user (or system) config path.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := GetConfigPath(system)
	if err != nil {
		return err
	}
	return WriteConfigFileTo(c, path)
}

// WriteConfigFileTo persists c as YAML at path.
func WriteConfigFileTo[T any](c *T, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	// 0600: the file may carry a redis password
	return os.WriteFile(path, data, 0o600)
}
