// Package detect provides the ordered locale detection sources. Each source
// is a pure view over an injected input (store, env snapshot, header,
// page attribute) so detection stays deterministic in tests.
package detect

import (
	"context"
	"strings"

	"fitcoach/internal/ports/output"
)

// Stored yields the locale previously persisted by the resolver. First in
// the default detection order.
type Stored struct {
	Store output.PreferenceStore
	Key   string
}

func (s Stored) Candidates(ctx context.Context) []string {
	if s.Store == nil {
		return nil
	}
	value, ok, err := s.Store.Get(ctx, s.Key)
	if err != nil || !ok || value == "" {
		return nil
	}
	return []string{value}
}

// EnvLanguage reads POSIX-style locale variables (LANGUAGE, LC_ALL, LANG)
// through an injected getenv, normalizing values like "pt_BR.UTF-8" to
// language tags.
type EnvLanguage struct {
	Getenv func(string) string
	Vars   []string
}

// DefaultEnvVars is the usual precedence for POSIX locale variables.
var DefaultEnvVars = []string{"LANGUAGE", "LC_ALL", "LANG"}

func (e EnvLanguage) Candidates(context.Context) []string {
	if e.Getenv == nil {
		return nil
	}
	vars := e.Vars
	if len(vars) == 0 {
		vars = DefaultEnvVars
	}
	var tags []string
	for _, name := range vars {
		for _, raw := range strings.Split(e.Getenv(name), ":") {
			if tag := normalizePosix(raw); tag != "" {
				tags = append(tags, tag)
			}
		}
	}
	return tags
}

// normalizePosix turns "pt_BR.UTF-8" into "pt-BR". "C" and "POSIX" carry
// no language preference.
func normalizePosix(raw string) string {
	tag := strings.TrimSpace(raw)
	if i := strings.IndexAny(tag, ".@"); i >= 0 {
		tag = tag[:i]
	}
	if tag == "" || tag == "C" || tag == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(tag, "_", "-")
}

// Static yields a fixed tag, e.g. the page's declared lang attribute
// captured when the process started.
type Static struct {
	Tag string
}

func (s Static) Candidates(context.Context) []string {
	if s.Tag == "" {
		return nil
	}
	return []string{s.Tag}
}
