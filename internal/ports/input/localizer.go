package input

import "context"

// Localizer is the use-case contract the UI layer renders text through.
type Localizer interface {
	// Translate renders the message at the dotted key for the active locale,
	// falling back per key to the fallback locale and finally to the key
	// itself. params fills {{name}} placeholders. Never fails.
	Translate(key string, params map[string]string) string

	// SetLocale switches the active locale and persists the choice.
	// Fails with domain.ErrUnsupportedLocale for unknown locales.
	SetLocale(ctx context.Context, locale string) error

	// DetectLocale returns the locale the detection sources pick, without
	// changing the active locale.
	DetectLocale(ctx context.Context) string

	ActiveLocale() string
	SupportedLocales() []string
}
