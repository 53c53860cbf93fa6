// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrSessionExpired is returned when an authenticated request is answered
// with 401. The stored token has already been cleared when it is returned.
var ErrSessionExpired = errors.New("session expired")

// NetworkUnreachable means the backend could not be reached at all.
type NetworkUnreachable struct {
	BaseURL string
	Err     error
}

func (e *NetworkUnreachable) Error() string {
	return fmt.Sprintf("cannot reach %s: %v", e.BaseURL, e.Err)
}

func (e *NetworkUnreachable) Unwrap() error { return e.Err }

// RequestRejected is a non-2xx response carrying a server detail message.
type RequestRejected struct {
	Status int
	Detail string
}

func (e *RequestRejected) Error() string { return e.Detail }

// RequestFailed is a non-2xx response without a readable detail.
type RequestFailed struct {
	Status     int
	StatusText string
}

func (e *RequestFailed) Error() string {
	return fmt.Sprintf("%d %s", e.Status, e.StatusText)
}

// StatusCode returns the HTTP status of err, or 0 when err did not come from
// a completed response.
func StatusCode(err error) int {
	var rr *RequestRejected
	if errors.As(err, &rr) {
		return rr.Status
	}
	var rf *RequestFailed
	if errors.As(err, &rf) {
		return rf.Status
	}
	if errors.Is(err, ErrSessionExpired) {
		return 401
	}
	return 0
}

// parseDetail extracts the "detail" member of an error body. FastAPI sends
// either a string or a list of validation items with a "msg" field.
func parseDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(envelope.Detail, &s); err == nil {
		return s
	}
	var items []struct {
		Loc []any  `json:"loc"`
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg == "" {
				continue
			}
			if field := lastLoc(it.Loc); field != "" {
				msgs = append(msgs, field+": "+it.Msg)
			} else {
				msgs = append(msgs, it.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}

func lastLoc(loc []any) string {
	if len(loc) == 0 {
		return ""
	}
	if s, ok := loc[len(loc)-1].(string); ok && s != "body" && s != "query" {
		return s
	}
	return ""
}
