// Package xurls implements the URL matcher contract with
// mvdan.cc/xurls.
package xurls

import (
	"regexp"

	"github.com/fwojciec/linkscrape"
	"mvdan.cc/xurls/v2"
)

// Ensure Matcher implements linkscrape.URLMatcher.
var _ linkscrape.URLMatcher = (*Matcher)(nil)

// Matcher finds URL-shaped substrings in free text.
type Matcher struct {
	re *regexp.Regexp
}

// NewMatcher returns a Matcher in relaxed mode, which also matches
// scheme-less URLs like "example.com/path".
func NewMatcher() *Matcher {
	return &Matcher{re: xurls.Relaxed()}
}

// NewStrictMatcher returns a Matcher that only matches URLs with an
// explicit scheme.
func NewStrictMatcher() *Matcher {
	return &Matcher{re: xurls.Strict()}
}

// FindURLs returns every match in text, in order, with byte offsets.
// Returns an empty slice when nothing matches.
func (m *Matcher) FindURLs(text string) []linkscrape.Match {
	idx := m.re.FindAllStringIndex(text, -1)
	matches := make([]linkscrape.Match, 0, len(idx))
	for _, pair := range idx {
		matches = append(matches, linkscrape.Match{
			Text:  text[pair[0]:pair[1]],
			Start: pair[0],
		})
	}
	return matches
}
