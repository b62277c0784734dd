// Package etree implements link scraping for sitemap documents with
// beevik/etree.
package etree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/linkscrape"
)

// Ensure SitemapScraper implements linkscrape.Scraper.
var _ linkscrape.Scraper = (*SitemapScraper)(nil)

// SitemapScraper extracts the referenced URLs from a sitemap document,
// handling both <urlset> and <sitemapindex> roots. It parses a single
// local document and never fetches anything; nested sitemaps in an
// index are reported as links, not resolved.
//
// Sitemaps are parsed as a DOM, so positions are not tracked and Pos
// is always zero.
type SitemapScraper struct {
	matcher linkscrape.URLMatcher
}

// NewSitemapScraper returns a SitemapScraper using the given URL
// matcher.
func NewSitemapScraper(matcher linkscrape.URLMatcher) *SitemapScraper {
	return &SitemapScraper{matcher: matcher}
}

// Scrape returns the URL of every <loc> entry, de-duplicated, in
// document order. Entries that are not URL-shaped are dropped; the
// matcher is used as a filter, the whole entry is the link.
func (s *SitemapScraper) Scrape(r io.Reader) ([]linkscrape.Link, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		var syntax *xml.SyntaxError
		if errors.As(err, &syntax) {
			return nil, &linkscrape.Error{Code: linkscrape.ESYNTAX, Message: err.Error(), Err: err}
		}
		return nil, linkscrape.WrapError(linkscrape.EIO, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, linkscrape.Errorf(linkscrape.EINVALID, "empty sitemap document")
	}

	var entry string
	switch root.Tag {
	case "sitemapindex":
		entry = "sitemap"
	case "urlset":
		entry = "url"
	default:
		return nil, linkscrape.Errorf(linkscrape.EINVALID, "not a sitemap: root element %q", root.Tag)
	}

	locName := linkscrape.Name{Local: "loc"}
	seen := make(map[string]bool)
	links := []linkscrape.Link{}
	for _, el := range root.SelectElements(entry) {
		loc := el.SelectElement("loc")
		if loc == nil {
			continue
		}
		u := strings.TrimSpace(loc.Text())
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		if len(s.matcher.FindURLs(u)) == 0 {
			continue
		}
		links = append(links, linkscrape.Link{
			URL:  u,
			Kind: linkscrape.TextKind{Parent: &locName},
		})
	}

	return links, nil
}

// ScrapeBytes scrapes an in-memory sitemap.
func (s *SitemapScraper) ScrapeBytes(b []byte) ([]linkscrape.Link, error) {
	return s.Scrape(bytes.NewReader(b))
}

// ScrapeFile scrapes the sitemap at path.
func (s *SitemapScraper) ScrapeFile(path string) ([]linkscrape.Link, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, linkscrape.WrapError(linkscrape.EIO, err)
	}
	defer f.Close()
	return s.Scrape(f)
}
