// Package text implements link scraping for non-structured, plain-text
// files.
package text

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/fwojciec/linkscrape"
)

// Ensure Scraper implements linkscrape.Scraper.
var _ linkscrape.Scraper = (*Scraper)(nil)

// Scraper reads a file line by line and applies the URL matcher to
// each line. Unlike the XML scraper there is no structural context:
// every link is a text link whose column is the match offset within
// its line.
type Scraper struct {
	matcher linkscrape.URLMatcher
}

// NewScraper returns a Scraper using the given URL matcher.
func NewScraper(matcher linkscrape.URLMatcher) *Scraper {
	return &Scraper{matcher: matcher}
}

// Scrape returns every link in r in document order.
func (s *Scraper) Scrape(r io.Reader) ([]linkscrape.Link, error) {
	links := []linkscrape.Link{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	line := 1
	for scanner.Scan() {
		for _, m := range s.matcher.FindURLs(scanner.Text()) {
			links = append(links, linkscrape.Link{
				URL:  m.Text,
				Pos:  linkscrape.Position{Line: line, Column: m.Start},
				Kind: linkscrape.TextKind{},
			})
		}
		line++
	}
	if err := scanner.Err(); err != nil {
		return nil, linkscrape.WrapError(linkscrape.EIO, err)
	}

	return links, nil
}

// ScrapeBytes scrapes an in-memory document.
func (s *Scraper) ScrapeBytes(b []byte) ([]linkscrape.Link, error) {
	return s.Scrape(bytes.NewReader(b))
}

// ScrapeFile scrapes the file at path.
func (s *Scraper) ScrapeFile(path string) ([]linkscrape.Link, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, linkscrape.WrapError(linkscrape.EIO, err)
	}
	defer f.Close()
	return s.Scrape(f)
}

// maxLineSize bounds a single line; lines beyond this fail the scrape
// rather than being silently split.
const maxLineSize = 10 * 1024 * 1024
