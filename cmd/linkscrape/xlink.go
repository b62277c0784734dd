package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/linkscrape"
	"github.com/fwojciec/linkscrape/xml"
)

// xlinkResult is the outcome of scanning one file for XLink
// references.
type xlinkResult struct {
	Path  string                 `json:"path"`
	Links []linkscrape.XLinkLink `json:"links"`
}

// Run executes the xlink command. Files are scanned sequentially; the
// first grammar or nesting violation aborts the run.
func (c *XLinkCmd) Run(deps *Dependencies) error {
	scraper := xml.NewXLinkScraper(deps.Matcher)

	results := make([]xlinkResult, 0, len(c.Paths))
	for _, path := range c.Paths {
		links, err := scraper.ScrapeFile(path)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", linkscrape.ErrorMessage(err))
			return fmt.Errorf("%s: %w", path, err)
		}
		results = append(results, xlinkResult{Path: path, Links: links})
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, res := range results {
		for _, link := range res.Links {
			fmt.Fprintf(deps.Stdout, "%s:%s\t%s\t%s\n", res.Path, link.Pos, link.Kind, link.URL)
		}
	}
	return nil
}
