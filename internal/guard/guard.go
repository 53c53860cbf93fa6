// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

// package guard decides whether a view may be shown for a session.
package guard // import "github.com/secwatch/console/internal/guard"

import "github.com/secwatch/console/internal/model"

// Requirement is the access level a view needs.
type Requirement int

const (
	// Public views are always shown (the login form).
	Public Requirement = iota
	// Protected views need an authenticated session.
	Protected
	// AdminOnly views need an authenticated administrator.
	AdminOnly
)

// Decision is the outcome of Evaluate.
type Decision int

const (
	Admit Decision = iota
	// Loading means the session is still being settled; show a placeholder.
	Loading
	RedirectLogin
	// RedirectDefault sends an authenticated non-admin away from an admin view.
	RedirectDefault
)

func (d Decision) String() string {
	switch d {
	case Admit:
		return "admit"
	case Loading:
		return "loading"
	case RedirectLogin:
		return "redirect-login"
	default:
		return "redirect-default"
	}
}

// Evaluate is a pure function of the session snapshot and the requirement.
func Evaluate(s model.Session, req Requirement) Decision {
	if req == Public {
		return Admit
	}
	switch {
	case s.Status == model.Authenticating:
		return Loading
	case !s.IsAuthenticated():
		return RedirectLogin
	case req == AdminOnly && !s.IsAdmin():
		return RedirectDefault
	default:
		return Admit
	}
}
