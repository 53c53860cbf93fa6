// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/secwatch/console/internal/i18n"
	"github.com/secwatch/console/internal/model"
	"github.com/secwatch/console/util/slicest"
	"github.com/spf13/cobra"
)

func userHeaders() []string {
	return []string{"ID", i18n.T("users.email"), i18n.T("users.username"), i18n.T("users.full_name"), i18n.T("users.department"), i18n.T("users.role"), i18n.T("users.admin"), i18n.T("users.active")}
}

func userRow(u model.UserProfile) []string {
	return []string{strconv.Itoa(u.ID), u.Email, u.Username, u.FullName, u.Department, u.Role, yesNo(u.IsAdmin), yesNo(u.IsActive)}
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage console users (administrators only)",
	}
	cmd.AddCommand(newUsersListCmd(), newUsersCreateCmd(), newUsersUpdateCmd(), newUsersDeleteCmd())
	return cmd
}

func newUsersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPrinter(cmd)
			if err != nil {
				return err
			}
			if _, err := requireSession(cmd.Context(), true); err != nil {
				return err
			}
			users, err := application.API.Users(cmd.Context(), nil)
			if err != nil {
				return fmt.Errorf("list users: %w", err)
			}
			return p.result(users, func() { p.table(userHeaders(), slicest.Map(users, userRow)) })
		},
	}
}

func newUsersCreateCmd() *cobra.Command {
	var in model.UserCreate
	var inactive bool
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPrinter(cmd)
			if err != nil {
				return err
			}
			if _, err := requireSession(cmd.Context(), true); err != nil {
				return err
			}
			in.Email = strings.TrimSpace(in.Email)
			if in.Password == "" && in.Email != "" {
				if in.Password, err = readSecret(cmd, i18n.T("users.password")+": "); err != nil {
					return fmt.Errorf("read password: %w", err)
				}
			}
			if in.Email == "" || in.Password == "" {
				return fmt.Errorf("%s", i18n.T("users.missing"))
			}
			in.IsActive = !inactive
			u, err := application.API.CreateUser(cmd.Context(), in)
			if err != nil {
				return fmt.Errorf("create user %s: %w", in.Email, err)
			}
			return p.result(u, func() { p.line("%s", i18n.T("users.created", u.Email)) })
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.Email, "email", "", "Email address")
	f.StringVar(&in.Username, "username", "", "Username")
	f.StringVar(&in.Password, "password", "", "Initial password (prompted when empty)")
	f.StringVar(&in.FullName, "full-name", "", "Full name")
	f.StringVar(&in.Department, "department", "", "Department")
	f.StringVar(&in.Role, "role", "", "Role")
	f.BoolVar(&in.IsAdmin, "admin", false, "Grant administrator rights")
	f.BoolVar(&inactive, "inactive", false, "Create the account disabled")
	return cmd
}

func newUsersUpdateCmd() *cobra.Command {
	var email, password, fullName, department, role string
	var admin, active bool
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a user; only the given flags are sent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPrinter(cmd)
			if err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if _, err := requireSession(cmd.Context(), true); err != nil {
				return err
			}

			var in model.UserUpdate
			f := cmd.Flags()
			changed := false
			setString := func(name string, v string, dst **string) {
				if f.Changed(name) {
					*dst = &v
					changed = true
				}
			}
			setString("email", email, &in.Email)
			setString("password", password, &in.Password)
			setString("full-name", fullName, &in.FullName)
			setString("department", department, &in.Department)
			setString("role", role, &in.Role)
			if f.Changed("admin") {
				in.IsAdmin = &admin
				changed = true
			}
			if f.Changed("active") {
				in.IsActive = &active
				changed = true
			}
			if !changed {
				return fmt.Errorf("nothing to update")
			}

			u, err := application.API.UpdateUser(cmd.Context(), id, in)
			if err != nil {
				return fmt.Errorf("update user %d: %w", id, err)
			}
			return p.result(u, func() { p.table(userHeaders(), [][]string{userRow(u)}) })
		},
	}
	f := cmd.Flags()
	f.StringVar(&email, "email", "", "New email address")
	f.StringVar(&password, "password", "", "New password")
	f.StringVar(&fullName, "full-name", "", "New full name")
	f.StringVar(&department, "department", "", "New department")
	f.StringVar(&role, "role", "", "New role")
	f.BoolVar(&admin, "admin", false, "Administrator rights")
	f.BoolVar(&active, "active", true, "Account enabled")
	return cmd
}

func newUsersDeleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			s, err := requireSession(cmd.Context(), true)
			if err != nil {
				return err
			}
			if s.User != nil && s.User.ID == id {
				return fmt.Errorf("%s", i18n.T("users.delete_self"))
			}
			if !yes {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s [y/N]: ", i18n.T("users.confirm_delete", "#"+args[0]))
				answer, err := readLine(cmd.InOrStdin())
				if err != nil {
					return err
				}
				if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
					return nil
				}
			}
			if err := application.API.DeleteUser(cmd.Context(), id); err != nil {
				return fmt.Errorf("delete user %d: %w", id, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("users.deleted", "#"+args[0]))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}
