package xml

import (
	"bytes"
	"io"
	"os"

	"github.com/fwojciec/linkscrape"
)

// XLinkScraper harvests references from documents using the XLink
// vocabulary and enforces its nesting rules: locator, arc, and
// resource elements must appear inside an extended element, and simple
// or extended elements must not.
//
// Classification is delegated to linkscrape.ClassifyXLink; the nesting
// rules are enforced by an explicit two-state loop (top level vs.
// inside an extended element), not by recursion.
type XLinkScraper struct {
	matcher linkscrape.URLMatcher
}

// NewXLinkScraper returns an XLinkScraper using the given URL matcher.
func NewXLinkScraper(matcher linkscrape.URLMatcher) *XLinkScraper {
	return &XLinkScraper{matcher: matcher}
}

// Scrape tokenizes r and returns every XLink reference in document
// order. Any tokenizer, classification, or nesting failure aborts the
// scrape with no partial results.
func (s *XLinkScraper) Scrape(r io.Reader) ([]linkscrape.XLinkLink, error) {
	return s.ScrapeTokens(NewTokenReader(r))
}

// ScrapeBytes scrapes an in-memory document.
func (s *XLinkScraper) ScrapeBytes(b []byte) ([]linkscrape.XLinkLink, error) {
	return s.Scrape(bytes.NewReader(b))
}

// ScrapeFile scrapes the document at path. Open failures are reported
// as EIO, distinct from grammar errors.
func (s *XLinkScraper) ScrapeFile(path string) ([]linkscrape.XLinkLink, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, linkscrape.WrapError(linkscrape.EIO, err)
	}
	defer f.Close()
	return s.Scrape(f)
}

// ScrapeTokens drives the token stream to completion.
func (s *XLinkScraper) ScrapeTokens(tr linkscrape.TokenReader) ([]linkscrape.XLinkLink, error) {
	links := []linkscrape.XLinkLink{}

	for {
		tok, err := tr.Token()
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case linkscrape.StartElement:
			el, err := linkscrape.ClassifyXLink(t)
			if err != nil {
				return nil, err
			}
			if el == nil {
				continue
			}
			pos := tr.Position()

			switch el := el.(type) {
			case linkscrape.XLinkSimple:
				links = append(links, s.fromOptional(el.Href, linkscrape.XLinkSimpleKind, pos)...)
				links = append(links, s.fromOptional(el.Arcrole, linkscrape.XLinkArcRoleKind, pos)...)
				links = append(links, s.fromOptional(el.Role, linkscrape.XLinkRoleKind, pos)...)
			case linkscrape.XLinkExtended:
				links = append(links, s.fromOptional(el.Role, linkscrape.XLinkRoleKind, pos)...)
				inner, err := s.scrapeExtended(el, tr)
				if err != nil {
					return nil, err
				}
				links = append(links, inner...)
			case linkscrape.XLinkLocator:
				return nil, linkscrape.Errorf(linkscrape.ENESTING, "locator element outside of an extended element")
			case linkscrape.XLinkArc:
				return nil, linkscrape.Errorf(linkscrape.ENESTING, "arc element outside of an extended element")
			case linkscrape.XLinkResource:
				return nil, linkscrape.Errorf(linkscrape.ENESTING, "resource element outside of an extended element")
			case linkscrape.XLinkTitle:
				// Titles carry no references.
			}
		case linkscrape.EndDocument:
			return links, nil
		}
	}
}

// scrapeExtended consumes tokens inside an extended element until its
// end tag. The end tag is matched by qualified name only; nesting
// depth of unrelated same-named descendants is not tracked.
//
// A locator's href is emitted verbatim, without passing through the
// URL matcher; every other attribute is matcher-filtered.
func (s *XLinkScraper) scrapeExtended(ext linkscrape.XLinkExtended, tr linkscrape.TokenReader) ([]linkscrape.XLinkLink, error) {
	var links []linkscrape.XLinkLink

	for {
		tok, err := tr.Token()
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case linkscrape.StartElement:
			el, err := linkscrape.ClassifyXLink(t)
			if err != nil {
				return nil, err
			}
			if el == nil {
				continue
			}
			pos := tr.Position()

			switch el := el.(type) {
			case linkscrape.XLinkSimple:
				return nil, linkscrape.Errorf(linkscrape.ENESTING, "simple element inside of an extended element")
			case linkscrape.XLinkExtended:
				return nil, linkscrape.Errorf(linkscrape.ENESTING, "extended element inside of an extended element")
			case linkscrape.XLinkLocator:
				links = append(links, linkscrape.XLinkLink{
					URL:  el.Href,
					Pos:  pos,
					Kind: linkscrape.XLinkExtendedKind,
				})
				links = append(links, s.fromOptional(el.Role, linkscrape.XLinkRoleKind, pos)...)
			case linkscrape.XLinkArc:
				links = append(links, s.fromOptional(el.Arcrole, linkscrape.XLinkArcRoleKind, pos)...)
			case linkscrape.XLinkResource:
				links = append(links, s.fromOptional(el.Role, linkscrape.XLinkRoleKind, pos)...)
			case linkscrape.XLinkTitle:
				// Titles carry no references.
			}
		case linkscrape.EndElement:
			if t.Name == ext.Name {
				return links, nil
			}
		case linkscrape.EndDocument:
			return links, nil
		}
	}
}

// fromOptional filters an optional attribute value through the URL
// matcher and returns one link per match. An attribute whose value is
// not URL-shaped produces no links.
func (s *XLinkScraper) fromOptional(value *string, kind linkscrape.XLinkKind, pos linkscrape.Position) []linkscrape.XLinkLink {
	if value == nil {
		return nil
	}
	var links []linkscrape.XLinkLink
	for _, m := range s.matcher.FindURLs(*value) {
		links = append(links, linkscrape.XLinkLink{URL: m.Text, Pos: pos, Kind: kind})
	}
	return links
}
