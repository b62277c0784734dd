package mock

import "github.com/fwojciec/linkscrape"

var _ linkscrape.URLMatcher = (*URLMatcher)(nil)

// URLMatcher is a mock implementation of linkscrape.URLMatcher.
type URLMatcher struct {
	FindURLsFn func(text string) []linkscrape.Match
}

func (m *URLMatcher) FindURLs(text string) []linkscrape.Match {
	return m.FindURLsFn(text)
}
