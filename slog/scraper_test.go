package slog_test

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/fwojciec/linkscrape"
	"github.com/fwojciec/linkscrape/mock"
	lsslog "github.com/fwojciec/linkscrape/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingScraper_Scrape(t *testing.T) {
	t.Parallel()

	t.Run("delegates and logs format, count, and error", func(t *testing.T) {
		t.Parallel()

		next := &mock.Scraper{
			ScrapeFn: func(_ io.Reader) ([]linkscrape.Link, error) {
				return []linkscrape.Link{
					{URL: "https://one.test.com", Kind: linkscrape.CommentKind{}},
					{URL: "https://two.test.com", Kind: linkscrape.CommentKind{}},
				}, nil
			},
		}

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		s := lsslog.NewLoggingScraper(next, logger, "xml")

		links, err := s.Scrape(strings.NewReader("<doc/>"))

		require.NoError(t, err)
		assert.Len(t, links, 2)
		assert.Contains(t, buf.String(), "format=xml")
		assert.Contains(t, buf.String(), "count=2")
	})

	t.Run("logs the error from the wrapped scraper", func(t *testing.T) {
		t.Parallel()

		next := &mock.Scraper{
			ScrapeFn: func(_ io.Reader) ([]linkscrape.Link, error) {
				return nil, linkscrape.Errorf(linkscrape.ESYNTAX, "bad markup")
			},
		}

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		s := lsslog.NewLoggingScraper(next, logger, "xml")

		links, err := s.Scrape(strings.NewReader("x"))

		require.Error(t, err)
		assert.Nil(t, links)
		assert.Contains(t, buf.String(), "bad markup")
	})
}
