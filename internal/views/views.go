// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

package views

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/secwatch/console/internal/logging"
	"github.com/secwatch/console/internal/model"
	"github.com/secwatch/console/internal/poller"
)

// Filter keys understood by the backend.
const (
	KeySeverity  = "severity"
	KeyResolved  = "resolved"
	KeyAnomalous = "is_anomalous"
	KeyAction    = "action"
)

// Backend is the subset of the API client the views use.
type Backend interface {
	Dashboard(ctx context.Context) (model.Dashboard, error)
	Alerts(ctx context.Context, q url.Values) ([]model.Alert, error)
	ResolveAlert(ctx context.Context, id int) error
	LoginActivities(ctx context.Context, q url.Values) ([]model.LoginActivity, error)
	FileActivities(ctx context.Context, q url.Values) ([]model.FileActivity, error)
	Users(ctx context.Context, q url.Values) ([]model.UserProfile, error)
	CreateUser(ctx context.Context, u model.UserCreate) (model.UserProfile, error)
	UpdateUser(ctx context.Context, id int, u model.UserUpdate) (model.UserProfile, error)
	DeleteUser(ctx context.Context, id int) error
	SimulateGenerate(ctx context.Context, s model.SimulationSettings) (model.SimulationResult, error)
	SimulateLogin(ctx context.Context, s model.LoginSimulation) (model.SimulationResult, error)
}

// Alerts is the alert list with its resolve action.
type Alerts struct {
	*List[[]model.Alert]
	backend Backend
}

// NewAlerts builds the alert view.
func NewAlerts(b Backend, interval time.Duration, opts ...ListOption[[]model.Alert]) *Alerts {
	return &Alerts{
		List:    NewList("alerts", b.Alerts, interval, opts...),
		backend: b,
	}
}

// Resolve marks alert id resolved and refreshes the list.
func (a *Alerts) Resolve(ctx context.Context, id int) error {
	if err := a.backend.ResolveAlert(ctx, id); err != nil {
		return fmt.Errorf("resolve alert %d: %w", id, err)
	}
	logging.Infof("alerts: resolved %d", id)
	a.Refresh()
	return nil
}

// NewLoginActivity builds the login activity view.
func NewLoginActivity(b Backend, interval time.Duration, opts ...ListOption[[]model.LoginActivity]) *List[[]model.LoginActivity] {
	return NewList("logins", b.LoginActivities, interval, opts...)
}

// NewFileActivity builds the file activity view.
func NewFileActivity(b Backend, interval time.Duration, opts ...ListOption[[]model.FileActivity]) *List[[]model.FileActivity] {
	return NewList("files", b.FileActivities, interval, opts...)
}

// Users is the admin user list with its mutations.
type Users struct {
	*List[[]model.UserProfile]
	backend Backend
}

// NewUsers builds the user administration view.
func NewUsers(b Backend, interval time.Duration, opts ...ListOption[[]model.UserProfile]) *Users {
	return &Users{
		List:    NewList("users", b.Users, interval, opts...),
		backend: b,
	}
}

// Create adds a user and refreshes the list.
func (u *Users) Create(ctx context.Context, in model.UserCreate) (model.UserProfile, error) {
	p, err := u.backend.CreateUser(ctx, in)
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("create user %s: %w", in.Email, err)
	}
	u.Refresh()
	return p, nil
}

// Update changes a user and refreshes the list.
func (u *Users) Update(ctx context.Context, id int, in model.UserUpdate) (model.UserProfile, error) {
	p, err := u.backend.UpdateUser(ctx, id, in)
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("update user %d: %w", id, err)
	}
	u.Refresh()
	return p, nil
}

// Delete removes a user and refreshes the list.
func (u *Users) Delete(ctx context.Context, id int) error {
	if err := u.backend.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	u.Refresh()
	return nil
}

// NewDashboard polls the dashboard aggregate.
func NewDashboard(b Backend, interval time.Duration, opts ...poller.Option[model.Dashboard]) *poller.Poller[model.Dashboard] {
	opts = append([]poller.Option[model.Dashboard]{poller.WithName[model.Dashboard]("dashboard")}, opts...)
	return poller.New(b.Dashboard, interval, opts...)
}

// Refresher is anything that can be told to fetch now.
type Refresher interface{ Refresh() }

// Simulator triggers synthetic traffic and refreshes the affected views.
type Simulator struct {
	backend  Backend
	affected []Refresher
}

// NewSimulator returns a simulator that refreshes affected after each run.
func NewSimulator(b Backend, affected ...Refresher) *Simulator {
	return &Simulator{backend: b, affected: affected}
}

// DefaultSettings mirrors the simulator form defaults: 100 attempts over
// the last 24 hours, a fifth of them threats.
func DefaultSettings(now time.Time) model.SimulationSettings {
	return model.SimulationSettings{
		TotalAttempts:    100,
		ThreatPercentage: 20,
		Usernames:        []string{"admin", "john.doe", "jane.smith", "guest"},
		Locations:        []string{"US", "DE", "GB", "CN", "RU"},
		StartTime:        now.Add(-24 * time.Hour).UTC().Format(time.RFC3339),
		EndTime:          now.UTC().Format(time.RFC3339),
	}
}

// Generate runs a bulk simulation.
func (s *Simulator) Generate(ctx context.Context, in model.SimulationSettings) (model.SimulationResult, error) {
	if in.TotalAttempts <= 0 {
		return model.SimulationResult{}, fmt.Errorf("total attempts must be positive, got %d", in.TotalAttempts)
	}
	if in.ThreatPercentage < 0 || in.ThreatPercentage > 100 {
		return model.SimulationResult{}, fmt.Errorf("threat percentage must be within 0..100, got %v", in.ThreatPercentage)
	}
	res, err := s.backend.SimulateGenerate(ctx, in)
	if err != nil {
		return model.SimulationResult{}, fmt.Errorf("simulate: %w", err)
	}
	s.refresh()
	return res, nil
}

// Login simulates a single login.
func (s *Simulator) Login(ctx context.Context, in model.LoginSimulation) (model.SimulationResult, error) {
	res, err := s.backend.SimulateLogin(ctx, in)
	if err != nil {
		return model.SimulationResult{}, fmt.Errorf("simulate login: %w", err)
	}
	s.refresh()
	return res, nil
}

func (s *Simulator) refresh() {
	for _, r := range s.affected {
		if r != nil {
			r.Refresh()
		}
	}
}
