// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

// package fakeapi is an in-process stand-in for the monitoring backend used
// by tests. It speaks the same routes and payload shapes, records every
// request and lets tests revoke tokens, inject failures and hold requests.
package fakeapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/secwatch/console/internal/model"
)

// Seeded credentials.
const (
	AdminEmail      = "admin@example.com"
	AdminPassword   = "Admin@123"
	AnalystEmail    = "analyst@example.com"
	AnalystPassword = "Analyst@123"
)

// Request is one recorded incoming request.
type Request struct {
	Method        string
	Path          string
	Query         url.Values
	Authorization string
	RequestID     string
	ContentType   string
}

type account struct {
	password string
	profile  model.UserProfile
}

type failure struct {
	status int
	detail string
}

// Server is the fake backend. The zero value is not usable; call New.
type Server struct {
	mu         sync.Mutex
	router     chi.Router
	accounts   map[string]*account
	tokens     map[string]string // token -> email
	queued     []string
	tokenSeq   int
	nextUserID int
	inlineUser bool
	alerts     []model.Alert
	logins     []model.LoginActivity
	files      []model.FileActivity
	dashboard  model.Dashboard
	requests   []Request
	failures   map[string]failure
	before     func(*http.Request)
}

// New returns a fake with one admin and one analyst account.
func New() *Server {
	s := &Server{
		accounts:   map[string]*account{},
		tokens:     map[string]string{},
		failures:   map[string]failure{},
		inlineUser: true,
		nextUserID: 1,
	}
	s.addAccount(AdminEmail, AdminPassword, "admin", true)
	s.addAccount(AnalystEmail, AnalystPassword, "analyst", false)
	s.router = s.routes()
	return s
}

// Start serves the fake on a loopback listener that is closed when the test
// ends.
func Start(t testing.TB) (*Server, *httptest.Server) {
	t.Helper()
	s := New()
	ts := httptest.NewServer(s)
	t.Cleanup(ts.Close)
	return s, ts
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) addAccount(email, password, username string, admin bool) model.UserProfile {
	now := time.Now().UTC()
	p := model.UserProfile{
		ID:        s.nextUserID,
		Email:     email,
		Username:  username,
		IsAdmin:   admin,
		IsActive:  true,
		CreatedAt: &now,
	}
	s.nextUserID++
	s.accounts[email] = &account{password: password, profile: p}
	return p
}

// SetInlineUser controls whether the login response embeds the profile.
func (s *Server) SetInlineUser(v bool) {
	s.mu.Lock()
	s.inlineUser = v
	s.mu.Unlock()
}

// QueueToken makes the next successful login return tok.
func (s *Server) QueueToken(tok string) {
	s.mu.Lock()
	s.queued = append(s.queued, tok)
	s.mu.Unlock()
}

// IssueToken returns a valid token for email without a login request.
func (s *Server) IssueToken(email string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.issueLocked(email)
}

func (s *Server) issueLocked(email string) string {
	var tok string
	if len(s.queued) > 0 {
		tok, s.queued = s.queued[0], s.queued[1:]
	} else {
		s.tokenSeq++
		tok = fmt.Sprintf("tok-%d", s.tokenSeq)
	}
	s.tokens[tok] = email
	return tok
}

// Revoke invalidates one token.
func (s *Server) Revoke(tok string) {
	s.mu.Lock()
	delete(s.tokens, tok)
	s.mu.Unlock()
}

// RevokeAll invalidates every issued token.
func (s *Server) RevokeAll() {
	s.mu.Lock()
	s.tokens = map[string]string{}
	s.mu.Unlock()
}

// Fail makes every request to path answer with status. An empty detail
// produces a body without a detail member.
func (s *Server) Fail(path string, status int, detail string) {
	s.mu.Lock()
	s.failures[path] = failure{status: status, detail: detail}
	s.mu.Unlock()
}

// ClearFailures removes every injected failure.
func (s *Server) ClearFailures() {
	s.mu.Lock()
	s.failures = map[string]failure{}
	s.mu.Unlock()
}

// Before installs fn to run on every request before routing. Tests use it
// to hold a request until they release it.
func (s *Server) Before(fn func(*http.Request)) {
	s.mu.Lock()
	s.before = fn
	s.mu.Unlock()
}

// SeedAlerts replaces the alert list.
func (s *Server) SeedAlerts(a ...model.Alert) {
	s.mu.Lock()
	s.alerts = append([]model.Alert(nil), a...)
	s.mu.Unlock()
}

// SeedLogins replaces the login activity list.
func (s *Server) SeedLogins(l ...model.LoginActivity) {
	s.mu.Lock()
	s.logins = append([]model.LoginActivity(nil), l...)
	s.mu.Unlock()
}

// SeedFiles replaces the file activity list.
func (s *Server) SeedFiles(f ...model.FileActivity) {
	s.mu.Lock()
	s.files = append([]model.FileActivity(nil), f...)
	s.mu.Unlock()
}

// SetDashboard replaces the dashboard aggregate.
func (s *Server) SetDashboard(d model.Dashboard) {
	s.mu.Lock()
	s.dashboard = d
	s.mu.Unlock()
}

// Alert returns the stored alert with id.
func (s *Server) Alert(id int) (model.Alert, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.alerts {
		if a.ID == id {
			return a, true
		}
	}
	return model.Alert{}, false
}

// LoginCount returns the number of stored login events.
func (s *Server) LoginCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.logins)
}

// Requests returns a copy of every recorded request.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// RequestsTo returns the recorded requests whose path equals path.
func (s *Server) RequestsTo(path string) []Request {
	var out []Request
	for _, r := range s.Requests() {
		if r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, code int, detail any) {
	writeJSON(w, code, map[string]any{"detail": detail})
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(s.record)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, model.Health{Status: "healthy"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/login", s.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(s.authenticate)
			r.Get("/users/me", s.handleMe)
			r.Get("/dashboard", s.handleDashboard)
			r.Get("/activities/alerts", s.handleAlerts)
			r.Put("/activities/alerts/{id}", s.handleResolve)
			r.Get("/activities/logins", s.handleLogins)
			r.Get("/activities/files", s.handleFiles)

			r.Group(func(r chi.Router) {
				r.Use(s.requireAdmin)
				r.Get("/users/", s.handleUsers)
				r.Post("/users/", s.handleCreateUser)
				r.Put("/users/{id}", s.handleUpdateUser)
				r.Delete("/users/{id}", s.handleDeleteUser)
				r.Post("/simulator/generate", s.handleGenerate)
				r.Post("/simulator/login", s.handleSimLogin)
			})
		})
	})
	return r
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:        r.Method,
			Path:          r.URL.Path,
			Query:         r.URL.Query(),
			Authorization: r.Header.Get("Authorization"),
			RequestID:     r.Header.Get("X-Request-ID"),
			ContentType:   r.Header.Get("Content-Type"),
		})
		before := s.before
		f, failing := s.failures[r.URL.Path]
		s.mu.Unlock()

		if before != nil {
			before(r)
		}
		if failing {
			if f.detail == "" {
				w.WriteHeader(f.status)
				return
			}
			writeDetail(w, f.status, f.detail)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type ctxKey struct{}

func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		s.mu.Lock()
		email, ok := s.tokens[tok]
		acc := s.accounts[email]
		s.mu.Unlock()
		if tok == "" || !ok || acc == nil {
			writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}
		next.ServeHTTP(w, r.WithContext(withEmail(r.Context(), email)))
	})
}

func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		acc := s.accounts[emailFrom(r.Context())]
		s.mu.Unlock()
		if acc == nil || !acc.profile.IsAdmin {
			writeDetail(w, http.StatusForbidden, "Not enough permissions")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeDetail(w, http.StatusBadRequest, "malformed form")
		return
	}
	email, password := r.PostForm.Get("username"), r.PostForm.Get("password")
	if email == "" || password == "" {
		writeDetail(w, http.StatusUnprocessableEntity, []map[string]any{
			{"loc": []string{"body", "username"}, "msg": "field required", "type": "value_error.missing"},
		})
		return
	}

	s.mu.Lock()
	acc, ok := s.accounts[email]
	if !ok || acc.password != password {
		s.mu.Unlock()
		writeDetail(w, http.StatusUnauthorized, "Incorrect username or password")
		return
	}
	if !acc.profile.IsActive {
		s.mu.Unlock()
		writeDetail(w, http.StatusBadRequest, "Inactive user")
		return
	}
	tok := s.issueLocked(email)
	resp := map[string]any{"access_token": tok, "token_type": "bearer"}
	if s.inlineUser {
		resp["user"] = acc.profile
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	p := s.accounts[emailFrom(r.Context())].profile
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	d := s.dashboard
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleAlerts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	s.mu.Lock()
	out := []model.Alert{}
	for _, a := range s.alerts {
		if v := q.Get("severity"); v != "" && a.Severity != v {
			continue
		}
		if v := q.Get("resolved"); v != "" && strconv.FormatBool(a.Resolved) != v {
			continue
		}
		out = append(out, a)
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid id")
		return
	}
	var body struct {
		Resolved bool `json:"resolved"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.alerts {
		if s.alerts[i].ID == id {
			s.alerts[i].Resolved = body.Resolved
			writeJSON(w, http.StatusOK, s.alerts[i])
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "Alert not found")
}

func (s *Server) handleLogins(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	s.mu.Lock()
	out := []model.LoginActivity{}
	for _, l := range s.logins {
		if v := q.Get("is_anomalous"); v != "" && strconv.FormatBool(l.IsAnomalous) != v {
			continue
		}
		out = append(out, l)
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleFiles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	s.mu.Lock()
	out := []model.FileActivity{}
	for _, f := range s.files {
		if v := q.Get("action"); v != "" && f.Action != v {
			continue
		}
		if v := q.Get("is_anomalous"); v != "" && strconv.FormatBool(f.IsAnomalous) != v {
			continue
		}
		out = append(out, f)
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleUsers(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]model.UserProfile, 0, len(s.accounts))
	for id := 1; id < s.nextUserID; id++ {
		for _, a := range s.accounts {
			if a.profile.ID == id {
				out = append(out, a.profile)
			}
		}
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var in model.UserCreate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid body")
		return
	}
	if in.Email == "" || in.Password == "" {
		writeDetail(w, http.StatusUnprocessableEntity, []map[string]any{
			{"loc": []string{"body", "email"}, "msg": "field required", "type": "value_error.missing"},
		})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[in.Email]; exists {
		writeDetail(w, http.StatusBadRequest, "Email already registered")
		return
	}
	username := in.Username
	if username == "" {
		username = strings.SplitN(in.Email, "@", 2)[0]
	}
	s.addAccount(in.Email, in.Password, username, in.IsAdmin)
	acc := s.accounts[in.Email]
	acc.profile.FullName = in.FullName
	acc.profile.Department = in.Department
	acc.profile.Role = in.Role
	acc.profile.IsActive = in.IsActive
	writeJSON(w, http.StatusOK, acc.profile)
}

func (s *Server) accountByID(id int) *account {
	for _, a := range s.accounts {
		if a.profile.ID == id {
			return a
		}
	}
	return nil
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	var in model.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	acc := s.accountByID(id)
	if acc == nil {
		writeDetail(w, http.StatusNotFound, "User not found")
		return
	}
	if in.FullName != nil {
		acc.profile.FullName = *in.FullName
	}
	if in.Department != nil {
		acc.profile.Department = *in.Department
	}
	if in.Role != nil {
		acc.profile.Role = *in.Role
	}
	if in.IsAdmin != nil {
		acc.profile.IsAdmin = *in.IsAdmin
	}
	if in.IsActive != nil {
		acc.profile.IsActive = *in.IsActive
	}
	if in.Password != nil {
		acc.password = *in.Password
	}
	writeJSON(w, http.StatusOK, acc.profile)
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	s.mu.Lock()
	defer s.mu.Unlock()
	acc := s.accountByID(id)
	if acc == nil {
		writeDetail(w, http.StatusNotFound, "User not found")
		return
	}
	delete(s.accounts, acc.profile.Email)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var in model.SimulationSettings
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid body")
		return
	}
	if in.TotalAttempts <= 0 {
		writeDetail(w, http.StatusBadRequest, "totalAttempts must be positive")
		return
	}
	threats := int(float64(in.TotalAttempts) * in.ThreatPercentage / 100)
	s.mu.Lock()
	for i := 0; i < in.TotalAttempts; i++ {
		s.appendLoginLocked(pick(in.Usernames, i), i < threats)
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, model.SimulationResult{
		Success:     true,
		Message:     fmt.Sprintf("Generated %d login attempts", in.TotalAttempts),
		ThreatCount: threats,
	})
}

func (s *Server) handleSimLogin(w http.ResponseWriter, r *http.Request) {
	var in model.LoginSimulation
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid body")
		return
	}
	s.mu.Lock()
	s.appendLoginLocked(in.Username, in.IsThreat)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, model.SimulationResult{Success: true, Message: "Simulated login for " + in.Username})
}

func (s *Server) appendLoginLocked(user string, threat bool) {
	if user == "" {
		user = "user"
	}
	s.logins = append(s.logins, model.LoginActivity{
		ID:          len(s.logins) + 1,
		UserEmail:   user + "@example.com",
		IPAddress:   "10.0.0.1",
		Timestamp:   time.Now().UTC(),
		Success:     !threat,
		IsAnomalous: threat,
	})
}

func pick(list []string, i int) string {
	if len(list) == 0 {
		return ""
	}
	return list[i%len(list)]
}
