package output

import "context"

// DetectionSource is one ordered input used to guess the visitor's preferred
// locale at startup: the persisted choice, an environment-reported language,
// a page-declared default, etc.
//
// Candidates returns raw language tags in preference order. Tags do not have
// to name supported locales; the resolver matches them against its supported
// set and skips the rest. Implementations must not block.
type DetectionSource interface {
	Candidates(ctx context.Context) []string
}
