// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

package views

import "github.com/secwatch/console/internal/model"

// AlertStats summarizes an alert list.
type AlertStats struct {
	Total      int
	Unresolved int
	BySeverity map[string]int
}

// AlertCounts derives AlertStats from alerts.
func AlertCounts(alerts []model.Alert) AlertStats {
	s := AlertStats{Total: len(alerts), BySeverity: map[string]int{}}
	for _, a := range alerts {
		if !a.Resolved {
			s.Unresolved++
		}
		s.BySeverity[a.Severity]++
	}
	return s
}

// LoginStats summarizes a login activity list.
type LoginStats struct {
	Total     int
	Anomalous int
	Failed    int
}

// LoginCounts derives LoginStats from logins.
func LoginCounts(logins []model.LoginActivity) LoginStats {
	s := LoginStats{Total: len(logins)}
	for _, l := range logins {
		if l.IsAnomalous {
			s.Anomalous++
		}
		if !l.Success {
			s.Failed++
		}
	}
	return s
}

// FileStats summarizes a file activity list.
type FileStats struct {
	Total     int
	Anomalous int
	ByAction  map[string]int
}

// FileCounts derives FileStats from files.
func FileCounts(files []model.FileActivity) FileStats {
	s := FileStats{Total: len(files), ByAction: map[string]int{}}
	for _, f := range files {
		if f.IsAnomalous {
			s.Anomalous++
		}
		s.ByAction[f.Action]++
	}
	return s
}

// MaxActivity returns the largest daily total in the series, at least 1.
func MaxActivity(points []model.ActivityPoint) int {
	m := 1
	for _, p := range points {
		if t := p.Successful + p.Failed; t > m {
			m = t
		}
	}
	return m
}
