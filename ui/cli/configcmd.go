// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/secwatch/console/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// effectiveConfig layers defaults, files, environment and flags the same
// way the other commands do, without opening the token store.
func effectiveConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := getConfigPathFromCli(cmd)
	if err != nil {
		return config.Config{}, err
	}
	c, err := config.LoadConfig[config.Config](cmd, config.Defaults(), path)
	if err != nil && !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return c, fmt.Errorf("error loading config: %w", err)
	}
	return c, nil
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	var path string
	var force, system bool
	initCmd := &cobra.Command{
		Use:         "init",
		Short:       "Write a config file with the current settings",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipServices: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := effectiveConfig(cmd)
			if err != nil {
				return err
			}
			if path == "" {
				if path, err = config.GetConfigPath(system); err != nil {
					return err
				}
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.WriteConfigFileTo(&c, path); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().StringVar(&path, "path", "", "Target file (default: the user config path)")
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	initCmd.Flags().BoolVar(&system, "system", false, "Write the system-wide file instead of the user one")

	show := &cobra.Command{
		Use:         "show",
		Short:       "Print the effective configuration",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipServices: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPrinter(cmd)
			if err != nil {
				return err
			}
			c, err := effectiveConfig(cmd)
			if err != nil {
				return err
			}
			if c.Token.Password != "" {
				c.Token.Password = "********"
			}
			return p.result(c, func() {
				data, err := yaml.Marshal(c)
				if err != nil {
					p.line("%v", err)
					return
				}
				fmt.Fprint(p.w, string(data))
			})
		},
	}

	cmd.AddCommand(initCmd, show)
	return cmd
}
