// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

package model

// Status is the authentication state of the console session.
type Status int

const (
	Unauthenticated Status = iota
	Authenticating
	Authenticated
)

// String returns the lower-case status name.
func (s Status) String() string {
	switch s {
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// Session is an immutable snapshot of the session state. Error is only set
// together with Unauthenticated after a failed login.
type Session struct {
	User   *UserProfile
	Status Status
	Error  string
}

// IsAuthenticated reports whether protected views may be shown.
func (s Session) IsAuthenticated() bool {
	return s.Status == Authenticated && s.User != nil
}

// IsAdmin reports whether admin-only views may be shown.
func (s Session) IsAdmin() bool {
	return s.IsAuthenticated() && s.User.IsAdmin
}
