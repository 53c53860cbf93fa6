// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"strings"
	"time"

	"github.com/secwatch/console/internal/i18n"
	"github.com/secwatch/console/internal/model"
	"github.com/secwatch/console/internal/views"
	"github.com/spf13/cobra"
)

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Generate synthetic login traffic (administrators only)",
	}

	def := model.SimulationSettings{}
	generate := &cobra.Command{
		Use:   "generate",
		Short: "Generate a batch of login attempts over the last 24 hours",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPrinter(cmd)
			if err != nil {
				return err
			}
			if _, err := requireSession(cmd.Context(), true); err != nil {
				return err
			}
			in := defaultSettings()
			f := cmd.Flags()
			if f.Changed("attempts") {
				in.TotalAttempts = def.TotalAttempts
			}
			if f.Changed("threat-pct") {
				in.ThreatPercentage = def.ThreatPercentage
			}
			if len(def.Usernames) > 0 {
				in.Usernames = def.Usernames
			}
			if len(def.Locations) > 0 {
				in.Locations = def.Locations
			}
			res, err := application.Simulator().Generate(cmd.Context(), in)
			if err != nil {
				return err
			}
			return p.result(res, func() { printSimulation(p, res) })
		},
	}
	seed := defaultSettings()
	generate.Flags().IntVar(&def.TotalAttempts, "attempts", seed.TotalAttempts, "Number of login attempts")
	generate.Flags().Float64Var(&def.ThreatPercentage, "threat-pct", seed.ThreatPercentage, "Share of attempts that are threats, 0..100")
	generate.Flags().StringSliceVar(&def.Usernames, "usernames", nil, "Usernames to draw from (default "+strings.Join(seed.Usernames, ",")+")")
	generate.Flags().StringSliceVar(&def.Locations, "locations", nil, "Country codes to draw from (default "+strings.Join(seed.Locations, ",")+")")

	var threat bool
	var username string
	single := &cobra.Command{
		Use:   "login",
		Short: "Simulate a single login attempt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPrinter(cmd)
			if err != nil {
				return err
			}
			if _, err := requireSession(cmd.Context(), true); err != nil {
				return err
			}
			res, err := application.Simulator().Login(cmd.Context(), model.LoginSimulation{IsThreat: threat, Username: username})
			if err != nil {
				return err
			}
			return p.result(res, func() { printSimulation(p, res) })
		},
	}
	single.Flags().BoolVar(&threat, "threat", false, "Simulate a malicious attempt")
	single.Flags().StringVar(&username, "username", "admin", "Username to attempt")

	cmd.AddCommand(generate, single)
	return cmd
}

func defaultSettings() model.SimulationSettings {
	return views.DefaultSettings(time.Now())
}

func printSimulation(p *printer, res model.SimulationResult) {
	text := res.Message
	if res.ThreatCount > 0 {
		text += " " + i18n.T("sim.threats", res.ThreatCount)
	}
	p.line("%s", text)
}
