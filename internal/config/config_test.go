// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	cfg "github.com/secwatch/console/internal/config"
)

func TestLoadConfig_NoFile_ReturnsDefaultsAndNotFound(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
		t.Fatalf("expected ConfigFileNotFoundError, got: %T %v", err, err)
	}
	if got.API.BaseURL != "http://localhost:8000" {
		t.Fatalf("unexpected base url default: %q", got.API.BaseURL)
	}
	if got.Poll.Logins != 3*time.Second || got.Poll.Dashboard != 30*time.Second {
		t.Fatalf("unexpected poll defaults: %+v", got.Poll)
	}
	if got.Poll.Users != 0 {
		t.Fatalf("users view should default to manual refresh, got %s", got.Poll.Users)
	}
	if got.Token.Store != "file" {
		t.Fatalf("unexpected token store default: %q", got.Token.Store)
	}
}

func TestLoadConfig_ExplicitFileAndEnv(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	path := filepath.Join(tmp, "custom.yaml")
	content := "api:\n  base_url: http://soc.internal:9000\npoll:\n  alerts: 10s\nlanguage: de\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("SECWATCH_TOKEN_STORE", "memory")

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got.API.BaseURL != "http://soc.internal:9000" {
		t.Fatalf("file value not applied: %q", got.API.BaseURL)
	}
	if got.Poll.Alerts != 10*time.Second {
		t.Fatalf("expected alerts interval 10s, got %s", got.Poll.Alerts)
	}
	if got.Poll.Files != 5*time.Second {
		t.Fatalf("default for untouched key lost: %s", got.Poll.Files)
	}
	if got.Language != "de" {
		t.Fatalf("expected language de, got %q", got.Language)
	}
	if got.Token.Store != "memory" {
		t.Fatalf("env override not applied: %q", got.Token.Store)
	}
}

func TestLoadConfig_FlagOverridesFile(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	path := filepath.Join(tmp, "custom.yaml")
	if err := os.WriteFile(path, []byte("language: de\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cmd := &cobra.Command{}
	cmd.Flags().String("language", "en", "")
	if err := cmd.Flags().Set("language", "en"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	got, err := cfg.LoadConfig[cfg.Config](cmd, cfg.Defaults(), &path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got.Language != "en" {
		t.Fatalf("explicitly set flag should win over file, got %q", got.Language)
	}
}

func TestWriteConfigFile_CreatesReadableFile(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	c, _ := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	c.API.BaseURL = "https://api.example.test"
	if err := cfg.WriteConfigFile(&c, false); err != nil {
		t.Fatalf("WriteConfigFile failed: %v", err)
	}

	path, err := cfg.GetConfigPath(false)
	if err != nil {
		t.Fatalf("GetConfigPath failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected config file at %s, stat error: %v", path, err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected 0600 permissions, got %v", info.Mode().Perm())
	}

	again, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if again.API.BaseURL != "https://api.example.test" {
		t.Fatalf("written value not picked up: %q", again.API.BaseURL)
	}
	if again.Poll.Logins != 3*time.Second {
		t.Fatalf("interval did not survive the file: %s", again.Poll.Logins)
	}
}
