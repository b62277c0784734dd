package mock

import (
	"io"

	"github.com/fwojciec/linkscrape"
)

var _ linkscrape.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of linkscrape.Scraper.
type Scraper struct {
	ScrapeFn func(r io.Reader) ([]linkscrape.Link, error)
}

func (s *Scraper) Scrape(r io.Reader) ([]linkscrape.Link, error) {
	return s.ScrapeFn(r)
}
