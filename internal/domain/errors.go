package domain

import "errors"

// Domain errors.
var (
	ErrUnsupportedLocale = errors.New("locale is not in the supported set")
	ErrFallbackMissing   = errors.New("fallback locale has no resource tree in the catalog")
)
