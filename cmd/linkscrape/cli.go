package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/linkscrape"
)

// Dependencies holds all services and configuration for command
// execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Matcher linkscrape.URLMatcher
	Logger  *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scan  ScanCmd  `cmd:"" help:"Scan documents for URL references"`
	XLink XLinkCmd `cmd:"" name:"xlink" help:"Scan XML documents for XLink references, enforcing nesting rules"`
}

// ScanCmd is the "scan" subcommand.
type ScanCmd struct {
	Paths       []string `arg:"" type:"existingfile" help:"Files to scan"`
	Format      string   `short:"f" default:"auto" enum:"auto,xml,svg,html,text,sitemap" help:"Input format (auto detects by file extension)"`
	Hrefs       bool     `help:"Only report href-style attribute links"`
	JSON        bool     `help:"Emit JSON instead of text"`
	Concurrency int      `short:"c" default:"8" env:"LINKSCRAPE_CONCURRENCY" help:"Concurrent file limit"`
	Verbose     bool     `short:"v" help:"Log each scrape to stderr"`
}

// XLinkCmd is the "xlink" subcommand.
type XLinkCmd struct {
	Paths []string `arg:"" type:"existingfile" help:"XML files to scan"`
	JSON  bool     `help:"Emit JSON instead of text"`
}
