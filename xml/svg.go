package xml

import (
	"bytes"
	"io"
	"os"

	"github.com/fwojciec/linkscrape"
)

// SVGLink is a discovered link relabeled with the SVG context
// taxonomy.
type SVGLink struct {
	URL  string              `json:"url"`
	Pos  linkscrape.Position `json:"pos"`
	Kind SVGKind             `json:"kind"`
}

// SVGKind classifies the context of an SVG link.
type SVGKind string

// SVG link kinds.
const (
	SVGAttribute SVGKind = "attribute"
	SVGComment   SVGKind = "comment"
	SVGText      SVGKind = "text"
	SVGScript    SVGKind = "script" // CDATA blocks, typically embedded scripts
	SVGNamespace SVGKind = "namespace"
)

// SVGScraper scrapes SVG documents. It is a projection of the generic
// XML scraper onto the narrower SVG context taxonomy.
type SVGScraper struct {
	xml *Scraper
}

// NewSVGScraper returns an SVGScraper using the given URL matcher.
func NewSVGScraper(matcher linkscrape.URLMatcher) *SVGScraper {
	return &SVGScraper{xml: NewScraper(matcher)}
}

// Scrape extracts links from an SVG document.
func (s *SVGScraper) Scrape(r io.Reader) ([]SVGLink, error) {
	links, err := s.xml.Scrape(r)
	if err != nil {
		return nil, err
	}
	out := make([]SVGLink, 0, len(links))
	for _, link := range links {
		out = append(out, SVGLink{
			URL:  link.URL,
			Pos:  link.Pos,
			Kind: svgKind(link.Kind),
		})
	}
	return out, nil
}

// ScrapeBytes scrapes an in-memory SVG document.
func (s *SVGScraper) ScrapeBytes(b []byte) ([]SVGLink, error) {
	return s.Scrape(bytes.NewReader(b))
}

// ScrapeFile scrapes the SVG document at path.
func (s *SVGScraper) ScrapeFile(path string) ([]SVGLink, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, linkscrape.WrapError(linkscrape.EIO, err)
	}
	defer f.Close()
	return s.Scrape(f)
}

func svgKind(k linkscrape.Kind) SVGKind {
	switch k.(type) {
	case linkscrape.AttrKind:
		return SVGAttribute
	case linkscrape.CommentKind:
		return SVGComment
	case linkscrape.TextKind:
		return SVGText
	case linkscrape.CDataKind:
		return SVGScript
	case linkscrape.NamespaceKind:
		return SVGNamespace
	default:
		return SVGText
	}
}
