package application

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"fitcoach/internal/catalog"
	"fitcoach/internal/domain"
	"fitcoach/internal/ports/input"
	"fitcoach/internal/ports/output"
)

// PreferenceKey is the fixed key the chosen locale is persisted under.
const PreferenceKey = "app.locale"

// Ensure Resolver implements the input.Localizer use case.
var _ input.Localizer = (*Resolver)(nil)

// Resolver owns the active-locale cell and answers every Translate call the
// UI makes. One resolver per process; tests build their own with a private
// catalog and store.
type Resolver struct {
	catalog  *catalog.Catalog
	fallback string
	sources  []output.DetectionSource
	store    output.PreferenceStore

	// tags[i] is the parsed form of locales[i]; matcher ranks detection
	// candidates against them (so "pt-BR" from the environment can land
	// on the supported "pt").
	locales []string
	tags    []language.Tag
	matcher language.Matcher

	mu     sync.RWMutex
	active string
}

// New builds the resolver, picks the initial locale from the detection
// sources and persists it. fallbackLocale must have a tree in the catalog
// and is expected to be fully populated; every other locale may cover only
// a subset of its keys.
func New(ctx context.Context, cat *catalog.Catalog, fallbackLocale string, sources []output.DetectionSource, store output.PreferenceStore) (*Resolver, error) {
	if !cat.Has(fallbackLocale) {
		return nil, fmt.Errorf("resolver: %q: %w", fallbackLocale, domain.ErrFallbackMissing)
	}

	r := &Resolver{
		catalog:  cat,
		fallback: fallbackLocale,
		sources:  sources,
		store:    store,
	}
	for _, locale := range cat.Locales() {
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("resolver: catalog locale %q: %w", locale, err)
		}
		r.locales = append(r.locales, locale)
		r.tags = append(r.tags, tag)
	}
	r.matcher = language.NewMatcher(r.tags)

	r.active = r.DetectLocale(ctx)
	r.persist(ctx, r.active)
	return r, nil
}

// DetectLocale consults the detection sources in order and returns the
// first candidate that names a supported locale, or the fallback locale
// when nothing matches. It does not change the active locale.
func (r *Resolver) DetectLocale(ctx context.Context) string {
	for _, source := range r.sources {
		for _, tag := range source.Candidates(ctx) {
			if locale, ok := r.match(tag); ok {
				return locale
			}
		}
	}
	return r.fallback
}

// match maps a raw candidate tag onto a supported locale. Exact names win;
// otherwise the language matcher handles region variants (en-US -> en) but
// unrelated languages stay unmatched.
func (r *Resolver) match(raw string) (string, bool) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return "", false
	}
	for _, locale := range r.locales {
		if strings.EqualFold(candidate, locale) {
			return locale, true
		}
	}
	tag, err := language.Parse(candidate)
	if err != nil {
		return "", false
	}
	if _, index, confidence := r.matcher.Match(tag); confidence >= language.High {
		return r.locales[index], true
	}
	return "", false
}

// SetLocale switches the active locale. The supported set is exact: an
// unknown locale fails with domain.ErrUnsupportedLocale rather than being
// coerced, so callers can tell bad input apart from a missing key. The
// store write is best effort; losing it only costs persistence across
// sessions.
func (r *Resolver) SetLocale(ctx context.Context, locale string) error {
	if !r.catalog.Has(locale) {
		return fmt.Errorf("resolver: %q: %w", locale, domain.ErrUnsupportedLocale)
	}
	r.mu.Lock()
	r.active = locale
	r.mu.Unlock()
	r.persist(ctx, locale)
	return nil
}

func (r *Resolver) persist(ctx context.Context, locale string) {
	if r.store == nil {
		return
	}
	if err := r.store.Set(ctx, PreferenceKey, locale); err != nil {
		log.Printf("i18n: persist locale %q: %v", locale, err)
	}
}

// Translate renders the message at the dotted key. Resolution tries the
// active locale's tree, then the fallback locale's, then degrades to the
// key itself so a missing string shows up ugly instead of crashing the UI.
// params fills {{name}} placeholders in the resolved string; the raw-key
// miss signal is returned untouched.
func (r *Resolver) Translate(key string, params map[string]string) string {
	if key == "" {
		return ""
	}
	path := strings.Split(key, ".")
	active := r.ActiveLocale()

	message, ok := "", false
	if tree, found := r.catalog.Tree(active); found {
		message, ok = tree.Resolve(path)
	}
	if !ok && active != r.fallback {
		if tree, found := r.catalog.Tree(r.fallback); found {
			message, ok = tree.Resolve(path)
		}
	}
	if !ok {
		log.Printf("i18n: missing translation (key=%s, locale=%s)", key, active)
		return key
	}
	return catalog.Interpolate(message, params)
}

// ActiveLocale returns the currently selected locale.
func (r *Resolver) ActiveLocale() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

// SupportedLocales returns the locales the catalog ships, sorted.
func (r *Resolver) SupportedLocales() []string {
	return r.catalog.Locales()
}
