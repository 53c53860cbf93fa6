// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/secwatch/console/internal/i18n"
	"github.com/secwatch/console/internal/model"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errNotLoggedIn = errors.New("not logged in")

// requireSession settles the session from the stored token and fails when
// it is not usable, or when admin is set and the user is no administrator.
func requireSession(ctx context.Context, admin bool) (model.Session, error) {
	application.Session.CheckAuth(ctx)
	s := application.Session.Session()
	if !s.IsAuthenticated() {
		return s, errNotLoggedIn
	}
	if admin && !s.IsAdmin() {
		return s, errors.New(i18n.T("cli.admin_required"))
	}
	return s, nil
}

// readSecret reads a password without echo when in is a terminal, and a
// plain line otherwise so it can be piped in.
func readSecret(cmd *cobra.Command, prompt string) (string, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), prompt)
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		return string(b), err
	}
	return readLine(in)
}

func readLine(in io.Reader) (string, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func newLoginCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				fmt.Fprint(cmd.ErrOrStderr(), i18n.T("login.email")+": ")
				line, err := readLine(cmd.InOrStdin())
				if err != nil {
					return err
				}
				email = strings.TrimSpace(line)
			}
			if password == "" {
				secret, err := readSecret(cmd, i18n.T("login.password")+": ")
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				password = secret
			}
			if email == "" || password == "" {
				return errors.New(i18n.T("login.missing"))
			}

			if err := application.Session.Login(cmd.Context(), email, password); err != nil {
				if msg := application.Session.Session().Error; msg != "" {
					return errors.New(msg)
				}
				return err
			}
			s := application.Session.Session()
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.logged_in", s.User.DisplayName(), application.API.BaseURL()))
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "Email or username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (prompted when empty)")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application.Session.Logout(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("status.logged_out"))
			return nil
		},
	}
}

// tokenClaims is the part of the access token shown by status. The token is
// not verified here, the backend does that on every request.
type tokenClaims struct {
	Subject   string     `json:"subject,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

func parseClaims(token string) (tokenClaims, error) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return tokenClaims{}, err
	}
	out := tokenClaims{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		t := claims.ExpiresAt.Time
		out.ExpiresAt = &t
	}
	return out, nil
}

type statusReport struct {
	Server        string             `json:"server"`
	Authenticated bool               `json:"authenticated"`
	User          *model.UserProfile `json:"user,omitempty"`
	Token         *tokenClaims       `json:"token,omitempty"`
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show who is signed in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPrinter(cmd)
			if err != nil {
				return err
			}
			report := statusReport{Server: application.API.BaseURL()}

			token, err := application.Store.Get(cmd.Context())
			if err != nil {
				return fmt.Errorf("read token: %w", err)
			}
			if token != "" {
				if c, err := parseClaims(token); err == nil {
					report.Token = &c
				}
			}
			s, err := requireSession(cmd.Context(), false)
			if err == nil {
				report.Authenticated = true
				report.User = s.User
			}

			return p.result(report, func() {
				p.line("%s %s", i18n.T("cli.server"), report.Server)
				if !report.Authenticated {
					p.line("%s", i18n.T("cli.not_logged_in"))
					return
				}
				role := i18n.T("cli.role_analyst")
				if report.User.IsAdmin {
					role = i18n.T("header.admin")
				}
				p.line("%s %s <%s> (%s)", i18n.T("cli.user"), report.User.DisplayName(), report.User.Email, role)
				if report.Token != nil && report.Token.ExpiresAt != nil {
					p.line("%s %s", i18n.T("cli.token_expires"), report.Token.ExpiresAt.Local().Format(time.RFC1123))
				}
			})
		},
	}
}

func newPingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the backend is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			h, err := application.API.Health(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.ping_ok", application.API.BaseURL(), h.Status, time.Since(start).Round(time.Millisecond)))
			return nil
		},
	}
}
