// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/secwatch/console/internal/model"
)

// Login exchanges credentials for a token. The body is form-encoded; a 401
// here is reported as RequestRejected.
func (c *Client) Login(ctx context.Context, identifier, secret string) (model.TokenResponse, error) {
	form := url.Values{}
	form.Set("username", identifier)
	form.Set("password", secret)

	var out model.TokenResponse
	err := c.send(ctx, http.MethodPost, apiPrefix+"/login", nil,
		strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", &out, false)
	if err != nil {
		return model.TokenResponse{}, err
	}
	if out.AccessToken == "" {
		return model.TokenResponse{}, &RequestRejected{Status: http.StatusOK, Detail: "no access token in response"}
	}
	return out, nil
}

// Me fetches the profile of the token owner.
func (c *Client) Me(ctx context.Context) (model.UserProfile, error) {
	var u model.UserProfile
	err := c.Do(ctx, http.MethodGet, "/users/me", nil, nil, &u)
	return u, err
}

// Dashboard fetches the summary aggregate.
func (c *Client) Dashboard(ctx context.Context) (model.Dashboard, error) {
	var d model.Dashboard
	err := c.Do(ctx, http.MethodGet, "/dashboard", nil, nil, &d)
	return d, err
}

// Alerts lists alerts matching query (severity, resolved).
func (c *Client) Alerts(ctx context.Context, query url.Values) ([]model.Alert, error) {
	var out []model.Alert
	err := c.Do(ctx, http.MethodGet, "/activities/alerts", query, nil, &out)
	return out, err
}

// ResolveAlert marks one alert as resolved.
func (c *Client) ResolveAlert(ctx context.Context, id int) error {
	body := map[string]bool{"resolved": true}
	return c.Do(ctx, http.MethodPut, fmt.Sprintf("/activities/alerts/%d", id), nil, body, nil)
}

// LoginActivities lists login events matching query (is_anomalous).
func (c *Client) LoginActivities(ctx context.Context, query url.Values) ([]model.LoginActivity, error) {
	var out []model.LoginActivity
	err := c.Do(ctx, http.MethodGet, "/activities/logins", query, nil, &out)
	return out, err
}

// FileActivities lists file events matching query (action, is_anomalous).
func (c *Client) FileActivities(ctx context.Context, query url.Values) ([]model.FileActivity, error) {
	var out []model.FileActivity
	err := c.Do(ctx, http.MethodGet, "/activities/files", query, nil, &out)
	return out, err
}

// Users lists all users. Admin only.
func (c *Client) Users(ctx context.Context, query url.Values) ([]model.UserProfile, error) {
	var out []model.UserProfile
	err := c.Do(ctx, http.MethodGet, "/users/", query, nil, &out)
	return out, err
}

// CreateUser creates a user. Admin only.
func (c *Client) CreateUser(ctx context.Context, u model.UserCreate) (model.UserProfile, error) {
	var out model.UserProfile
	err := c.Do(ctx, http.MethodPost, "/users/", nil, u, &out)
	return out, err
}

// UpdateUser patches a user. Admin only.
func (c *Client) UpdateUser(ctx context.Context, id int, u model.UserUpdate) (model.UserProfile, error) {
	var out model.UserProfile
	err := c.Do(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), nil, u, &out)
	return out, err
}

// DeleteUser removes a user. Admin only.
func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.Do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil, nil)
}

// SimulateGenerate asks the backend to synthesize a batch of login events.
func (c *Client) SimulateGenerate(ctx context.Context, s model.SimulationSettings) (model.SimulationResult, error) {
	var out model.SimulationResult
	err := c.Do(ctx, http.MethodPost, "/simulator/generate", nil, s, &out)
	return out, err
}

// SimulateLogin asks the backend to synthesize a single login event.
func (c *Client) SimulateLogin(ctx context.Context, s model.LoginSimulation) (model.SimulationResult, error) {
	var out model.SimulationResult
	err := c.Do(ctx, http.MethodPost, "/simulator/login", nil, s, &out)
	return out, err
}

// Health probes the unauthenticated health route outside the API prefix.
func (c *Client) Health(ctx context.Context) (model.Health, error) {
	var out model.Health
	err := c.send(ctx, http.MethodGet, "/health", nil, nil, "", &out, false)
	return out, err
}
