package linkscrape

// Match is one URL-shaped substring found in a larger text.
type Match struct {
	// Text is the matched substring.
	Text string

	// Start is the byte offset of the match within the scanned text.
	Start int
}

// URLMatcher finds URL-shaped substrings in free text. Implementations
// must be deterministic and side-effect free, and return an empty
// slice when nothing matches.
type URLMatcher interface {
	FindURLs(text string) []Match
}
