// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command, configuration loading and the shared
// services every subcommand runs against.

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"

	"github.com/secwatch/console/buildvars"
	"github.com/secwatch/console/internal/api"
	"github.com/secwatch/console/internal/app"
	"github.com/secwatch/console/internal/config"
	"github.com/secwatch/console/internal/i18n"
	"github.com/secwatch/console/internal/logging"
	"github.com/secwatch/console/ui/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

var cfgFile string
var verbose bool

var appConfig config.Config
var application *app.App

// skipServices marks commands that must work without a reachable token store.
const skipServices = "skip-services"

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	if cmd.Annotations[skipServices] == "true" {
		lang, _ := cmd.Flags().GetString("language")
		if lang == "" {
			lang = "en"
		}
		i18n.Init(lang)
		return nil
	}

	// Load optional config file argument from cli
	optional_config_path, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), optional_config_path)
	// A missing file is fine: the defaults point at a local backend.
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		logging.Debugf("no config file found, using defaults (run `secwatch config init` to create one)")
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if appConfig.Language == "" {
		appConfig.Language = "en"
	}
	i18n.Init(appConfig.Language)

	level := appConfig.Log.Level
	if verbose {
		level = "debug"
	}
	if err := logging.SetLevel(level); err != nil {
		logging.Warnf("ignoring log level %q: %v", level, err)
	}

	if application != nil {
		_ = application.Close()
	}
	application, err = app.New(appConfig)
	if err != nil {
		return err
	}
	return nil
}

func closeServices() {
	if application == nil {
		return
	}
	if err := application.Close(); err != nil {
		logging.Warnf("closing token store: %v", err)
	}
	application = nil
}

// Execute runs the CLI entrypoint. The root main package calls it and
// handles process exit.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	defer closeServices()

	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return describeError(err)
	}
	return nil
}

// describeError turns API errors into the message shown to the operator.
func describeError(err error) error {
	var nu *api.NetworkUnreachable
	switch {
	case api.IsExpired(err), errors.Is(err, errNotLoggedIn):
		return errors.New(i18n.T("cli.session_expired"))
	case errors.As(err, &nu):
		return errors.New(i18n.T("session.error_unreachable", nu.BaseURL))
	default:
		return err
	}
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if cmd.Flags().Changed("config") {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			return nil, fmt.Errorf("could not read --config flag: %w", err)
		}

		// If the flag is set but the value is empty, do nothing.
		if path == "" {
			return nil, nil
		}

		// Make sure the user-provided file exists to avoid unwanted behavior.
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
		}
		return &path, nil
	}
	return nil, nil
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secwatch",
		Short: "SecWatch is a terminal console for the security monitoring API.",
		Long: `SecWatch signs in to the security monitoring backend and shows alerts,
login activity and file access as they happen.

Running without a subcommand will launch the interactive TUI.`,
		SilenceUsage:      true,
		PersistentPreRunE: setupDefaultServices,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(cmd.Context(), application, appConfig.Log.File)
		},
	}

	v, c, d := resolveBuildVersion(nil)
	compositeVersion := v
	if c != "" && c != "dev" {
		compositeVersion = compositeVersion + " (" + c + ")"
	}
	if d != "" {
		compositeVersion = compositeVersion + " built: " + d
	}
	cmd.Version = compositeVersion

	// Define flags
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("language", "", `Language ("en", "de")`)
	cmd.PersistentFlags().String("api.base_url", "", "Base URL of the monitoring backend")
	cmd.PersistentFlags().String("token.store", "", "Token store backend (file, sqlite, postgres, mysql, redis, memory)")
	cmd.PersistentFlags().String("token.dsn", "", "Token store location (path, DSN or redis address)")
	cmd.PersistentFlags().StringP("output", "o", "table", `Output format ("table", "json")`)

	versionCmd := &cobra.Command{
		Use:         "version",
		Short:       "Print version",
		Annotations: map[string]string{skipServices: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}

	cmd.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newStatusCmd(),
		newPingCmd(),
		newDashboardCmd(),
		newAlertsCmd(),
		newLoginsCmd(),
		newFilesCmd(),
		newUsersCmd(),
		newSimulateCmd(),
		newWatchCmd(),
		newConfigCmd(),
		versionCmd,
	)

	return cmd
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := buildvars.CommitOrDefault(gitCommit)
	resolvedDate := buildvars.DateOrDefault(buildDate)

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}

	if info != nil {
		if resolvedVersion == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" && resolvedCommit == "dev" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" && resolvedDate == "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	// fall back to the commit when no release version is known
	if (resolvedVersion == "dev" || resolvedVersion == "(devel)") && resolvedCommit != "" && resolvedCommit != "dev" {
		resolvedVersion = resolvedCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
