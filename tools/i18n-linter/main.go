// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the translation catalogs against the source tree. It
// reports keys used in code but missing from the primary locale, keys the
// other locales lack, keys no code uses, and messages whose fmt verbs differ
// between locales.
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const primaryLocale = "active.en.yaml"

var (
	keyCall = regexp.MustCompile(`i18n\.T\("([^"]+)"`)
	verb    = regexp.MustCompile(`%[-+# 0]*[0-9]*(?:\.[0-9]+)?[a-zA-Z%]`)
)

// Report holds every finding of one run.
type Report struct {
	Undefined    []string            // used in code, absent from the primary locale
	Orphaned     []string            // in the primary locale, unused in code
	Missing      map[string][]string // locale file -> keys it lacks
	VerbMismatch map[string][]string // locale file -> keys with different verbs
}

// Failed reports whether the run found anything that breaks a translation.
func (r Report) Failed() bool {
	return len(r.Undefined) > 0 || len(r.Missing) > 0 || len(r.VerbMismatch) > 0
}

func main() {
	var root, locales string
	cmd := &cobra.Command{
		Use:           "i18n-linter",
		Short:         "Check translation keys against the source tree",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := lint(root, locales)
			if err != nil {
				return err
			}
			writeReport(cmd, r)
			if r.Failed() {
				return fmt.Errorf("translation catalogs are inconsistent")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&root, "root", ".", "Source tree to scan")
	cmd.Flags().StringVar(&locales, "locales", "internal/i18n/locales", "Directory holding the locale files")
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "i18n-linter:", err)
		os.Exit(1)
	}
}

func lint(root, localesDir string) (Report, error) {
	used, err := findUsedKeys(root)
	if err != nil {
		return Report{}, fmt.Errorf("scan sources: %w", err)
	}
	primary, err := loadLocale(filepath.Join(localesDir, primaryLocale))
	if err != nil {
		return Report{}, fmt.Errorf("load primary locale: %w", err)
	}

	r := Report{Missing: map[string][]string{}, VerbMismatch: map[string][]string{}}
	for k := range used {
		if _, ok := primary[k]; !ok {
			r.Undefined = append(r.Undefined, k)
		}
	}
	for k := range primary {
		if _, ok := used[k]; !ok {
			r.Orphaned = append(r.Orphaned, k)
		}
	}
	sort.Strings(r.Undefined)
	sort.Strings(r.Orphaned)

	files, err := filepath.Glob(filepath.Join(localesDir, "*.yaml"))
	if err != nil {
		return r, err
	}
	for _, file := range files {
		name := filepath.Base(file)
		if name == primaryLocale {
			continue
		}
		other, err := loadLocale(file)
		if err != nil {
			return r, fmt.Errorf("load %s: %w", name, err)
		}
		for k, msg := range primary {
			translated, ok := other[k]
			if !ok {
				r.Missing[name] = append(r.Missing[name], k)
				continue
			}
			if !slices.Equal(verbs(msg), verbs(translated)) {
				r.VerbMismatch[name] = append(r.VerbMismatch[name], k)
			}
		}
		sort.Strings(r.Missing[name])
		sort.Strings(r.VerbMismatch[name])
		if len(r.Missing[name]) == 0 {
			delete(r.Missing, name)
		}
		if len(r.VerbMismatch[name]) == 0 {
			delete(r.VerbMismatch, name)
		}
	}
	return r, nil
}

// findUsedKeys collects the literal ids passed to i18n.T in non-test Go
// files. Directories starting with "." or "_" are skipped like the go tool
// does, and so is tools/.
func findUsedKeys(root string) (map[string]struct{}, error) {
	keys := map[string]struct{}{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (name == "tools" || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, m := range keyCall.FindAllStringSubmatch(string(content), -1) {
			keys[m[1]] = struct{}{}
		}
		return nil
	})
	return keys, err
}

// loadLocale reads a catalog into a flat id -> message map. Nested maps are
// joined with dots the way go-i18n reads them.
func loadLocale(path string) (map[string]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}
	out := map[string]string{}
	flatten("", data, out)
	return out, nil
}

func flatten(prefix string, node any, out map[string]string) {
	switch v := node.(type) {
	case map[string]any:
		for k, val := range v {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			flatten(key, val, out)
		}
	default:
		if prefix != "" {
			out[prefix] = fmt.Sprint(v)
		}
	}
}

// verbs lists the fmt verbs of msg in order, ignoring literal percents.
func verbs(msg string) []string {
	var out []string
	for _, v := range verb.FindAllString(msg, -1) {
		if v != "%%" {
			out = append(out, v)
		}
	}
	return out
}

func writeReport(cmd *cobra.Command, r Report) {
	w := cmd.OutOrStdout()
	section := func(title string, keys []string) {
		fmt.Fprintf(w, "--- %s ---\n", title)
		if len(keys) == 0 {
			fmt.Fprintln(w, "  none")
		}
		for _, k := range keys {
			fmt.Fprintf(w, "  - %s\n", k)
		}
	}
	section("Used but undefined", r.Undefined)
	section("Orphaned (defined but unused)", r.Orphaned)
	for _, file := range sortedKeys(r.Missing) {
		section("Missing in "+file, r.Missing[file])
	}
	for _, file := range sortedKeys(r.VerbMismatch) {
		section("Format verbs differ in "+file, r.VerbMismatch[file])
	}
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
