package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// FindingKind classifies a verification problem.
type FindingKind string

const (
	// MissingFromFallback: a key exists in some locale but not in the
	// fallback locale. The fallback must carry every key, since per-key
	// fallback lands on it.
	MissingFromFallback FindingKind = "missing_from_fallback"
	// PlaceholderMismatch: a translation uses a different placeholder set
	// than the fallback string for the same key, so interpolation params
	// that work in one locale leave markers behind in another.
	PlaceholderMismatch FindingKind = "placeholder_mismatch"
)

// Finding is one problem reported by Verify.
type Finding struct {
	Kind   FindingKind
	Locale string
	Key    string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s (locale %s)", f.Kind, f.Key, f.Locale)
}

// Coverage is the fraction of fallback keys a locale translates, in percent.
type Coverage struct {
	Locale     string
	Translated int
	Total      int
}

// Verify checks the catalog against the fallback-completeness contract:
// every key present anywhere must resolve in the fallback locale, and
// translations should use the same placeholders as their fallback
// counterpart. Secondary locales covering only a subset of keys is normal
// and not a finding; per-key fallback handles it.
func Verify(c *Catalog, fallbackLocale string) ([]Finding, []Coverage, error) {
	fallbackTree, ok := c.Tree(fallbackLocale)
	if !ok {
		return nil, nil, fmt.Errorf("catalog: verify: locale %q not in catalog", fallbackLocale)
	}

	fallbackKeys := fallbackTree.Keys()
	fallbackSet := make(map[string]struct{}, len(fallbackKeys))
	for _, k := range fallbackKeys {
		fallbackSet[k] = struct{}{}
	}

	var findings []Finding
	var coverage []Coverage
	for _, locale := range c.Locales() {
		if locale == fallbackLocale {
			continue
		}
		tree, _ := c.Tree(locale)
		keys := tree.Keys()
		translated := 0
		for _, key := range keys {
			if _, ok := fallbackSet[key]; !ok {
				findings = append(findings, Finding{Kind: MissingFromFallback, Locale: locale, Key: key})
				continue
			}
			translated++
			path := splitKey(key)
			localized, _ := tree.Resolve(path)
			reference, _ := fallbackTree.Resolve(path)
			if !samePlaceholders(Placeholders(localized), Placeholders(reference)) {
				findings = append(findings, Finding{Kind: PlaceholderMismatch, Locale: locale, Key: key})
			}
		}
		coverage = append(coverage, Coverage{Locale: locale, Translated: translated, Total: len(fallbackKeys)})
	}

	sort.Slice(findings, func(i, j int) bool {
		if findings[i].Locale != findings[j].Locale {
			return findings[i].Locale < findings[j].Locale
		}
		return findings[i].Key < findings[j].Key
	})
	return findings, coverage, nil
}

func splitKey(key string) []string {
	return strings.Split(key, ".")
}

func samePlaceholders(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[string]struct{}, len(a))
	for _, n := range a {
		set[n] = struct{}{}
	}
	for _, n := range b {
		if _, ok := set[n]; !ok {
			return false
		}
	}
	return true
}
