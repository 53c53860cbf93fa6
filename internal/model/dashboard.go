// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

package model

// Dashboard is the composite summary served by the dashboard endpoint.
type Dashboard struct {
	TotalAlerts    int             `json:"totalAlerts"`
	CriticalAlerts int             `json:"criticalAlerts"`
	LoginAttempts  int             `json:"loginAttempts"`
	FailedLogins   int             `json:"failedLogins"`
	RecentThreats  []Alert         `json:"recentThreats"`
	ActivityData   []ActivityPoint `json:"activityData"`
}

// ActivityPoint is one day of the login activity series.
type ActivityPoint struct {
	Date       string `json:"date"`
	Successful int    `json:"successful"`
	Failed     int    `json:"failed"`
}

// SimulationSettings drives bulk synthetic traffic generation.
type SimulationSettings struct {
	TotalAttempts    int      `json:"totalAttempts"`
	ThreatPercentage float64  `json:"threatPercentage"`
	Usernames        []string `json:"usernames"`
	Locations        []string `json:"locations"`
	StartTime        string   `json:"startTime"`
	EndTime          string   `json:"endTime"`
}

// LoginSimulation drives a single synthetic login.
type LoginSimulation struct {
	IsThreat bool   `json:"isThreat"`
	Username string `json:"username"`
}

// SimulationResult is returned by both simulator endpoints.
type SimulationResult struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	ThreatCount int    `json:"threatCount,omitempty"`
}

// Health is the body of the unauthenticated health probe.
type Health struct {
	Status string `json:"status"`
}
