// Package linkscrape extracts URL references from documents together
// with their position and the syntactic context they occur in (an
// attribute, free text, a comment, a CDATA block, or a namespace
// declaration). It is meant for tooling that audits documents for
// outbound references: dead-link checkers, security scanners,
// dependency graphs.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., xml/,
// xurls/, goquery/, etree/).
package linkscrape
