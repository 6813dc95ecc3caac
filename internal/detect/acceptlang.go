package detect

import (
	"context"

	"golang.org/x/text/language"
)

// AcceptLanguage yields the tags of an Accept-Language header value in
// q-value order, for deployments that resolve the locale server-side.
type AcceptLanguage struct {
	Header string
}

func (a AcceptLanguage) Candidates(context.Context) []string {
	// ParseAcceptLanguage returns tags in descending q order and drops
	// entries with a weight of zero. A header we cannot parse at all
	// yields no candidates and detection moves on to the next source.
	tags, _, err := language.ParseAcceptLanguage(a.Header)
	if err != nil {
		return nil
	}
	var candidates []string
	for _, tag := range tags {
		// The wildcard entry parses as "mul"; it names no preference.
		if s := tag.String(); s != "mul" {
			candidates = append(candidates, s)
		}
	}
	return candidates
}
