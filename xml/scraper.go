package xml

import (
	"bytes"
	"io"
	"os"

	"github.com/fwojciec/linkscrape"
)

// Ensure Scraper implements linkscrape.Scraper.
var _ linkscrape.Scraper = (*Scraper)(nil)

// Scraper extracts links from any document with an XML schema,
// classifying each by the context it occurs in: attribute values,
// comments, character data, CDATA sections, and namespace
// declarations.
type Scraper struct {
	matcher linkscrape.URLMatcher
}

// NewScraper returns a Scraper using the given URL matcher.
func NewScraper(matcher linkscrape.URLMatcher) *Scraper {
	return &Scraper{matcher: matcher}
}

// Scrape tokenizes r and returns every discovered link in document
// order, namespace links last. A tokenizer failure aborts the scrape;
// no partial results are returned.
func (s *Scraper) Scrape(r io.Reader) ([]linkscrape.Link, error) {
	return s.ScrapeTokens(NewTokenReader(r))
}

// ScrapeBytes scrapes an in-memory document.
func (s *Scraper) ScrapeBytes(b []byte) ([]linkscrape.Link, error) {
	return s.Scrape(bytes.NewReader(b))
}

// ScrapeFile scrapes the document at path. Open failures are reported
// as EIO, distinct from grammar errors.
func (s *Scraper) ScrapeFile(path string) ([]linkscrape.Link, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, linkscrape.WrapError(linkscrape.EIO, err)
	}
	defer f.Close()
	return s.Scrape(f)
}

// nsOccurrence is a namespace declaration at the position it was first
// seen. Two occurrences are duplicates if prefix and URI both match,
// regardless of position.
type nsOccurrence struct {
	binding linkscrape.NamespaceBinding
	pos     linkscrape.Position
}

// ScrapeTokens drives the token stream to completion.
func (s *Scraper) ScrapeTokens(tr linkscrape.TokenReader) ([]linkscrape.Link, error) {
	links := []linkscrape.Link{}

	seen := make(map[linkscrape.NamespaceBinding]struct{})
	var namespaces []nsOccurrence
	var parent *linkscrape.Name

loop:
	for {
		tok, err := tr.Token()
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case linkscrape.StartElement:
			pos := tr.Position()
			for _, b := range t.Namespaces {
				if _, ok := seen[b]; ok {
					continue
				}
				seen[b] = struct{}{}
				namespaces = append(namespaces, nsOccurrence{binding: b, pos: pos})
			}
			name := t.Name
			parent = &name
			for _, a := range t.Attr {
				for _, m := range s.matcher.FindURLs(a.Value) {
					links = append(links, linkscrape.Link{
						URL:  m.Text,
						Pos:  pos,
						Kind: linkscrape.AttrKind{Attr: a},
					})
				}
			}
		case linkscrape.Comment:
			for _, m := range s.matcher.FindURLs(t.Text) {
				links = append(links, linkscrape.Link{
					URL:  m.Text,
					Pos:  tr.Position(),
					Kind: linkscrape.CommentKind{},
				})
			}
		case linkscrape.CharData:
			for _, m := range s.matcher.FindURLs(t.Text) {
				links = append(links, linkscrape.Link{
					URL:  m.Text,
					Pos:  tr.Position(),
					Kind: linkscrape.TextKind{Parent: parent},
				})
			}
		case linkscrape.CData:
			for _, m := range s.matcher.FindURLs(t.Text) {
				links = append(links, linkscrape.Link{
					URL:  m.Text,
					Pos:  tr.Position(),
					Kind: linkscrape.CDataKind{Parent: parent},
				})
			}
		case linkscrape.EndDocument:
			break loop
		}
	}

	// Namespace URIs are appended after the document ends, at their
	// first-seen position. The matcher acts purely as a URL-shaped
	// filter here: the whole URI is the link, not the matched
	// substring.
	for _, ns := range namespaces {
		if len(s.matcher.FindURLs(ns.binding.URI)) == 0 {
			continue
		}
		links = append(links, linkscrape.Link{
			URL:  ns.binding.URI,
			Pos:  ns.pos,
			Kind: linkscrape.NamespaceKind{Prefix: ns.binding.Prefix},
		})
	}

	return links, nil
}

// ScrapeHrefs runs the same traversal as Scrape but keeps only
// attribute links whose local name is "href", regardless of namespace
// or tag name.
func (s *Scraper) ScrapeHrefs(r io.Reader) ([]linkscrape.Link, error) {
	return s.ScrapeHrefsTokens(NewTokenReader(r))
}

// ScrapeHrefsBytes scrapes href attribute links from an in-memory
// document.
func (s *Scraper) ScrapeHrefsBytes(b []byte) ([]linkscrape.Link, error) {
	return s.ScrapeHrefs(bytes.NewReader(b))
}

// ScrapeHrefsTokens drives the token stream to completion, keeping
// only href attribute links.
func (s *Scraper) ScrapeHrefsTokens(tr linkscrape.TokenReader) ([]linkscrape.Link, error) {
	all, err := s.ScrapeTokens(tr)
	if err != nil {
		return nil, err
	}
	links := []linkscrape.Link{}
	for _, link := range all {
		if k, ok := link.Kind.(linkscrape.AttrKind); ok && k.Attr.Name.Local == "href" {
			links = append(links, link)
		}
	}
	return links, nil
}
