// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import (
	"encoding/json"
	"time"
)

// Severity levels reported by the backend.
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// Severities lists the known severities from least to most severe.
var Severities = []string{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}

// Alert is a security alert raised by the backend.
// The alerts route uses alert_type/description/is_resolved while the
// dashboard uses type/message/resolved; both decode into the same fields.
type Alert struct {
	ID        int       `json:"id"`
	Type      string    `json:"type"`
	Severity  string    `json:"severity"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	SourceIP  string    `json:"source_ip,omitempty"`
	Location  string    `json:"location,omitempty"`
	Resolved  bool      `json:"resolved"`
}

// UnmarshalJSON accepts both alert payload shapes.
func (a *Alert) UnmarshalJSON(data []byte) error {
	type plain Alert
	var aux struct {
		plain
		AlertType   string `json:"alert_type"`
		Description string `json:"description"`
		IsResolved  *bool  `json:"is_resolved"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*a = Alert(aux.plain)
	if a.Type == "" {
		a.Type = aux.AlertType
	}
	if a.Message == "" {
		a.Message = aux.Description
	}
	if aux.IsResolved != nil && *aux.IsResolved {
		a.Resolved = true
	}
	return nil
}

// LoginActivity is one authentication event.
type LoginActivity struct {
	ID          int       `json:"id"`
	UserEmail   string    `json:"user_email"`
	IPAddress   string    `json:"ip_address"`
	UserAgent   string    `json:"user_agent,omitempty"`
	Country     string    `json:"country,omitempty"`
	City        string    `json:"city,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
	Success     bool      `json:"success"`
	IsAnomalous bool      `json:"is_anomalous"`
}

// Location joins city and country for display.
func (l LoginActivity) Location() string {
	switch {
	case l.City != "" && l.Country != "":
		return l.City + ", " + l.Country
	case l.City != "":
		return l.City
	default:
		return l.Country
	}
}

// File actions reported by the backend.
const (
	FileView     = "view"
	FileDownload = "download"
	FileUpload   = "upload"
	FileDelete   = "delete"
)

// FileActions lists the file actions in display order.
var FileActions = []string{FileView, FileDownload, FileUpload, FileDelete}

// FileActivity is one file access event.
type FileActivity struct {
	ID          int       `json:"id"`
	UserEmail   string    `json:"user_email"`
	Action      string    `json:"action"`
	FileName    string    `json:"file_name"`
	FilePath    string    `json:"file_path,omitempty"`
	FileSize    int64     `json:"file_size,omitempty"`
	IPAddress   string    `json:"ip_address,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
	IsAnomalous bool      `json:"is_anomalous"`
}

// UnmarshalJSON also accepts activity_type and is_suspicious.
func (f *FileActivity) UnmarshalJSON(data []byte) error {
	type plain FileActivity
	var aux struct {
		plain
		ActivityType string `json:"activity_type"`
		IsSuspicious *bool  `json:"is_suspicious"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*f = FileActivity(aux.plain)
	if f.Action == "" {
		f.Action = aux.ActivityType
	}
	if aux.IsSuspicious != nil && *aux.IsSuspicious {
		f.IsAnomalous = true
	}
	return nil
}
