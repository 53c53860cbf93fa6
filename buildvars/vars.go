// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

// Package buildvars holds values stamped into the binary by the linker, e.g.
//
//	go build -ldflags "-X github.com/secwatch/console/buildvars.Version=v1.4.0 \
//	  -X github.com/secwatch/console/buildvars.Commit=$(git rev-parse --short HEAD)"
//
// All of them are empty in development builds.
package buildvars

var (
	Version string
	Commit  string
	Date    string // RFC3339
)

// VersionOrDefault returns Version, or def when it was not stamped.
func VersionOrDefault(def string) string { return orDefault(Version, def) }

// CommitOrDefault returns Commit, or def when it was not stamped.
func CommitOrDefault(def string) string { return orDefault(Commit, def) }

// DateOrDefault returns Date, or def when it was not stamped.
func DateOrDefault(def string) string { return orDefault(Date, def) }

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
