package linkscrape

import "io"

// Scraper extracts links from a single document. A scrape either
// returns the full ordered result or an error with no links; there is
// no partial-success mode.
type Scraper interface {
	Scrape(r io.Reader) ([]Link, error)
}
