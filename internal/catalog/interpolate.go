package catalog

import (
	"regexp"
	"strings"
)

var placeholderRe = regexp.MustCompile(`\{\{([A-Za-z0-9_]+)\}\}`)

// Interpolate substitutes {{name}} markers in s with values from params.
// Substitution is verbatim, with no escaping: the rendering layer owns
// whatever escaping policy applies to the final output. Markers with no
// matching param are left in place, and a string without markers is
// returned unchanged whatever params holds.
func Interpolate(s string, params map[string]string) string {
	if len(params) == 0 || !strings.Contains(s, "{{") {
		return s
	}
	return placeholderRe.ReplaceAllStringFunc(s, func(marker string) string {
		name := marker[2 : len(marker)-2]
		if value, ok := params[name]; ok {
			return value
		}
		return marker
	})
}

// Placeholders returns the distinct placeholder names in s, in order of
// first appearance. Used by catalog verification to compare a translation
// against its fallback counterpart.
func Placeholders(s string) []string {
	matches := placeholderRe.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		names = append(names, m[1])
	}
	return names
}
