// Package goquery implements link scraping for HTML documents with
// PuerkitoBio/goquery.
package goquery

import (
	"bytes"
	"io"
	"os"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/linkscrape"
	"golang.org/x/net/html"
)

// Ensure Scraper implements linkscrape.Scraper.
var _ linkscrape.Scraper = (*Scraper)(nil)

// Scraper extracts links from HTML documents: every attribute value,
// text node, and comment is run through the URL matcher. HTML is
// parsed as a DOM, so positions are not tracked and Pos is always
// zero.
type Scraper struct {
	matcher linkscrape.URLMatcher
}

// NewScraper returns a Scraper using the given URL matcher.
func NewScraper(matcher linkscrape.URLMatcher) *Scraper {
	return &Scraper{matcher: matcher}
}

// Scrape returns every link in r in document order.
func (s *Scraper) Scrape(r io.Reader) ([]linkscrape.Link, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, linkscrape.WrapError(linkscrape.EIO, err)
	}

	links := []linkscrape.Link{}
	for _, n := range doc.Nodes {
		s.walk(n, nil, &links)
	}
	return links, nil
}

// ScrapeBytes scrapes an in-memory document.
func (s *Scraper) ScrapeBytes(b []byte) ([]linkscrape.Link, error) {
	return s.Scrape(bytes.NewReader(b))
}

// ScrapeFile scrapes the document at path.
func (s *Scraper) ScrapeFile(path string) ([]linkscrape.Link, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, linkscrape.WrapError(linkscrape.EIO, err)
	}
	defer f.Close()
	return s.Scrape(f)
}

// ScrapeHrefs runs the same traversal as Scrape but keeps only
// attribute links whose attribute name is "href" or "src".
func (s *Scraper) ScrapeHrefs(r io.Reader) ([]linkscrape.Link, error) {
	all, err := s.Scrape(r)
	if err != nil {
		return nil, err
	}
	links := []linkscrape.Link{}
	for _, link := range all {
		if k, ok := link.Kind.(linkscrape.AttrKind); ok {
			if k.Attr.Name.Local == "href" || k.Attr.Name.Local == "src" {
				links = append(links, link)
			}
		}
	}
	return links, nil
}

func (s *Scraper) walk(n *html.Node, parent *linkscrape.Name, links *[]linkscrape.Link) {
	switch n.Type {
	case html.ElementNode:
		name := linkscrape.Name{Space: n.Namespace, Local: n.Data}
		for _, a := range n.Attr {
			for _, m := range s.matcher.FindURLs(a.Val) {
				*links = append(*links, linkscrape.Link{
					URL: m.Text,
					Kind: linkscrape.AttrKind{Attr: linkscrape.Attr{
						Name:  linkscrape.Name{Space: a.Namespace, Local: a.Key},
						Value: a.Val,
					}},
				})
			}
		}
		parent = &name
	case html.TextNode:
		for _, m := range s.matcher.FindURLs(n.Data) {
			*links = append(*links, linkscrape.Link{
				URL:  m.Text,
				Kind: linkscrape.TextKind{Parent: parent},
			})
		}
	case html.CommentNode:
		for _, m := range s.matcher.FindURLs(n.Data) {
			*links = append(*links, linkscrape.Link{
				URL:  m.Text,
				Kind: linkscrape.CommentKind{},
			})
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		s.walk(c, parent, links)
	}
}
