// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

// package model defines the wire types exchanged with the monitoring API and
// the session snapshot shared between the data layer and the front-ends.
package model // import "github.com/secwatch/console/internal/model"

import "time"

// UserProfile is a read-only snapshot of a backend user. It is replaced
// wholesale on each fetch.
type UserProfile struct {
	ID          int        `json:"id"`
	Email       string     `json:"email"`
	Username    string     `json:"username"`
	FullName    string     `json:"full_name,omitempty"`
	IsAdmin     bool       `json:"is_admin"`
	IsActive    bool       `json:"is_active"`
	Department  string     `json:"department,omitempty"`
	Role        string     `json:"role,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// DisplayName prefers the full name, then the username, then the email.
func (u UserProfile) DisplayName() string {
	switch {
	case u.FullName != "":
		return u.FullName
	case u.Username != "":
		return u.Username
	default:
		return u.Email
	}
}

// UserCreate is the payload for creating a user.
type UserCreate struct {
	Email      string `json:"email"`
	Username   string `json:"username,omitempty"`
	Password   string `json:"password"`
	FullName   string `json:"full_name,omitempty"`
	Department string `json:"department,omitempty"`
	Role       string `json:"role,omitempty"`
	IsAdmin    bool   `json:"is_admin"`
	IsActive   bool   `json:"is_active"`
}

// UserUpdate is the payload for updating a user. Nil fields are left
// untouched by the backend.
type UserUpdate struct {
	Email      *string `json:"email,omitempty"`
	Password   *string `json:"password,omitempty"`
	FullName   *string `json:"full_name,omitempty"`
	Department *string `json:"department,omitempty"`
	Role       *string `json:"role,omitempty"`
	IsAdmin    *bool   `json:"is_admin,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
}

// TokenResponse is the body returned by the token endpoint. User is only
// present on backends that inline the profile.
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type,omitempty"`
	User        *UserProfile `json:"user,omitempty"`
}
