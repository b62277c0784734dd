package xml_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/linkscrape"
	"github.com/fwojciec/linkscrape/mock"
	"github.com/fwojciec/linkscrape/xml"
	"github.com/fwojciec/linkscrape/xurls"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testXML = `<?xml version="1.0" encoding="UTF-8"?>
<root xmlns="http://www.w3.org/XML/1998/namespace">
    <element href="https://attribute.test.com"/>
    <!-- a comment linking to https://comment.test.com -->
    <text>see https://plaintext.test.com for details</text>
    <script><![CDATA[var link = "https://cdata.test.com";]]></script>
</root>`

func TestScraper_Scrape(t *testing.T) {
	t.Parallel()

	t.Run("finds one link of every contextual kind", func(t *testing.T) {
		t.Parallel()

		s := xml.NewScraper(xurls.NewMatcher())

		links, err := s.Scrape(strings.NewReader(testXML))

		require.NoError(t, err)
		require.Len(t, links, 5)

		attr := links[0]
		assert.Equal(t, "https://attribute.test.com", attr.URL)
		kind, ok := attr.Kind.(linkscrape.AttrKind)
		require.True(t, ok)
		assert.Equal(t, "href", kind.Attr.Name.Local)
		assert.Equal(t, 3, attr.Pos.Line)

		comment := links[1]
		assert.Equal(t, "https://comment.test.com", comment.URL)
		assert.IsType(t, linkscrape.CommentKind{}, comment.Kind)

		text := links[2]
		assert.Equal(t, "https://plaintext.test.com", text.URL)
		textKind, ok := text.Kind.(linkscrape.TextKind)
		require.True(t, ok)
		require.NotNil(t, textKind.Parent)
		assert.Equal(t, "text", textKind.Parent.Local)

		cdata := links[3]
		assert.Equal(t, "https://cdata.test.com", cdata.URL)
		cdataKind, ok := cdata.Kind.(linkscrape.CDataKind)
		require.True(t, ok)
		require.NotNil(t, cdataKind.Parent)
		assert.Equal(t, "script", cdataKind.Parent.Local)

		ns := links[4]
		assert.Equal(t, "http://www.w3.org/XML/1998/namespace", ns.URL)
		assert.Equal(t, linkscrape.NamespaceKind{Prefix: ""}, ns.Kind)
		assert.Equal(t, 2, ns.Pos.Line, "namespace link carries the first-seen position")
	})

	t.Run("attribute values that are not URL-shaped produce no links", func(t *testing.T) {
		t.Parallel()

		s := xml.NewScraper(xurls.NewMatcher())

		links, err := s.Scrape(strings.NewReader(`<a href="not a url" title="also nothing"/>`))

		require.NoError(t, err)
		assert.Empty(t, links)
	})

	t.Run("extracts a URL embedded in a larger attribute value", func(t *testing.T) {
		t.Parallel()

		s := xml.NewScraper(xurls.NewMatcher())

		links, err := s.Scrape(strings.NewReader(`<a note="see https://embedded.test.com for more"/>`))

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "https://embedded.test.com", links[0].URL)
	})

	t.Run("namespace links are unique per prefix and URI pair", func(t *testing.T) {
		t.Parallel()

		doc := `<r xmlns:a="https://ns.test.com">
    <inner xmlns:a="https://ns.test.com">
        <leaf xmlns:b="https://ns.test.com"/>
    </inner>
</r>`
		s := xml.NewScraper(xurls.NewMatcher())

		links, err := s.Scrape(strings.NewReader(doc))

		require.NoError(t, err)
		require.Len(t, links, 2, "same pair recurring in nested elements is recorded once")
		assert.Equal(t, linkscrape.NamespaceKind{Prefix: "a"}, links[0].Kind)
		assert.Equal(t, 1, links[0].Pos.Line)
		assert.Equal(t, linkscrape.NamespaceKind{Prefix: "b"}, links[1].Kind)
		assert.Equal(t, 3, links[1].Pos.Line)
	})

	t.Run("namespace URIs that are not URL-shaped are dropped", func(t *testing.T) {
		t.Parallel()

		s := xml.NewScraper(xurls.NewMatcher())

		links, err := s.Scrape(strings.NewReader(`<r xmlns:u="internal"/>`))

		require.NoError(t, err)
		assert.Empty(t, links)
	})

	t.Run("truncated input fails with a syntax error and no links", func(t *testing.T) {
		t.Parallel()

		s := xml.NewScraper(xurls.NewMatcher())

		links, err := s.Scrape(strings.NewReader(`<root><a href="https://attribute.test.com">`))

		require.Error(t, err)
		assert.Equal(t, linkscrape.ESYNTAX, linkscrape.ErrorCode(err))
		assert.Nil(t, links, "partial results are discarded")
	})

	t.Run("propagates token reader errors", func(t *testing.T) {
		t.Parallel()

		wantErr := linkscrape.Errorf(linkscrape.EIO, "read failed")
		tr := &mock.TokenReader{
			TokenFn: func() (linkscrape.Token, error) { return nil, wantErr },
		}
		s := xml.NewScraper(xurls.NewMatcher())

		links, err := s.ScrapeTokens(tr)

		assert.Equal(t, wantErr, err)
		assert.Nil(t, links)
	})
}

func TestScraper_ScrapeHrefs(t *testing.T) {
	t.Parallel()

	t.Run("keeps only href attribute links", func(t *testing.T) {
		t.Parallel()

		s := xml.NewScraper(xurls.NewMatcher())

		links, err := s.ScrapeHrefs(strings.NewReader(testXML))

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "https://attribute.test.com", links[0].URL)
		kind, ok := links[0].Kind.(linkscrape.AttrKind)
		require.True(t, ok)
		assert.Equal(t, "href", kind.Attr.Name.Local)
	})

	t.Run("matches the local name regardless of namespace prefix", func(t *testing.T) {
		t.Parallel()

		doc := `<r xmlns:xlink="http://www.w3.org/1999/xlink">
    <a xlink:href="https://prefixed.test.com" src="https://other.test.com"/>
</r>`
		s := xml.NewScraper(xurls.NewMatcher())

		links, err := s.ScrapeHrefs(strings.NewReader(doc))

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "https://prefixed.test.com", links[0].URL)
	})
}

func TestScraper_ScrapeBytes(t *testing.T) {
	t.Parallel()

	s := xml.NewScraper(xurls.NewMatcher())

	links, err := s.ScrapeBytes([]byte(testXML))

	require.NoError(t, err)
	assert.Len(t, links, 5)
}

func TestScraper_ScrapeFile_MissingFile(t *testing.T) {
	t.Parallel()

	s := xml.NewScraper(xurls.NewMatcher())

	links, err := s.ScrapeFile("testdata/does-not-exist.xml")

	require.Error(t, err)
	assert.Equal(t, linkscrape.EIO, linkscrape.ErrorCode(err))
	assert.Nil(t, links)
}
