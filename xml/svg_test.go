package xml_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/linkscrape/xml"
	"github.com/fwojciec/linkscrape/xurls"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg">
<!-- source: https://comment.test.com -->
<image href="https://image.test.com/logo.png"/>
<text>docs at https://text.test.com</text>
<script><![CDATA[fetch("https://script.test.com/api")]]></script>
</svg>`

func TestSVGScraper_Scrape(t *testing.T) {
	t.Parallel()

	t.Run("projects links onto the svg taxonomy", func(t *testing.T) {
		t.Parallel()

		s := xml.NewSVGScraper(xurls.NewMatcher())

		links, err := s.Scrape(strings.NewReader(testSVG))

		require.NoError(t, err)
		require.Len(t, links, 5)

		assert.Equal(t, "https://comment.test.com", links[0].URL)
		assert.Equal(t, xml.SVGComment, links[0].Kind)

		assert.Equal(t, "https://image.test.com/logo.png", links[1].URL)
		assert.Equal(t, xml.SVGAttribute, links[1].Kind)
		assert.Equal(t, 3, links[1].Pos.Line)

		assert.Equal(t, "https://text.test.com", links[2].URL)
		assert.Equal(t, xml.SVGText, links[2].Kind)

		assert.Equal(t, "https://script.test.com/api", links[3].URL)
		assert.Equal(t, xml.SVGScript, links[3].Kind)

		assert.Equal(t, "http://www.w3.org/2000/svg", links[4].URL)
		assert.Equal(t, xml.SVGNamespace, links[4].Kind)
	})

	t.Run("malformed svg fails the scrape", func(t *testing.T) {
		t.Parallel()

		s := xml.NewSVGScraper(xurls.NewMatcher())

		links, err := s.Scrape(strings.NewReader(`<svg><rect`))

		require.Error(t, err)
		assert.Nil(t, links)
	})
}
