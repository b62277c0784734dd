package linkscrape

import "fmt"

// Position is a location within a document. Line is 1-based; Column is
// a 0-based byte offset within the line.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// String returns the position in "line:column" form.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Name is a qualified element or attribute name. Space is the resolved
// namespace URI, empty when the name is unqualified.
type Name struct {
	Space string `json:"space,omitempty"`
	Local string `json:"local"`
}

// Attr is an attribute of an element. Namespace declarations are not
// attributes; they surface as NamespaceBinding on StartElement.
type Attr struct {
	Name  Name   `json:"name"`
	Value string `json:"value"`
}

// NamespaceBinding binds a prefix to a namespace URI. The empty prefix
// denotes the default namespace.
type NamespaceBinding struct {
	Prefix string `json:"prefix"`
	URI    string `json:"uri"`
}

// Token is one structural event produced while scanning a document.
//
// Token is a closed union: StartElement, EndElement, CharData, Comment,
// CData, ProcInst, Directive, and EndDocument. Consumers dispatch with
// a type switch.
type Token interface {
	token()
}

// StartElement marks the opening of an element. Namespaces holds the
// explicitly declared bindings in scope at this element, innermost
// binding winning per prefix, ordered by prefix.
type StartElement struct {
	Name       Name
	Attr       []Attr
	Namespaces []NamespaceBinding
}

// EndElement marks the closing of an element.
type EndElement struct {
	Name Name
}

// CharData is a run of character data.
type CharData struct {
	Text string
}

// Comment is the text of a comment, without the delimiters.
type Comment struct {
	Text string
}

// CData is a run of verbatim character data from a CDATA section.
type CData struct {
	Text string
}

// ProcInst is a processing instruction. Scrapers ignore it.
type ProcInst struct {
	Target string
	Inst   string
}

// Directive is a markup directive such as a DOCTYPE. Scrapers ignore
// it.
type Directive struct {
	Text string
}

// EndDocument marks the end of the document. A TokenReader keeps
// returning EndDocument once the document is exhausted, so nested
// consumer loops terminate cleanly.
type EndDocument struct{}

func (StartElement) token() {}
func (EndElement) token()   {}
func (CharData) token()     {}
func (Comment) token()      {}
func (CData) token()        {}
func (ProcInst) token()     {}
func (Directive) token()    {}
func (EndDocument) token()  {}

// TokenReader produces the ordered, single-pass token stream for one
// document.
type TokenReader interface {
	// Token returns the next token. A malformed document yields an
	// ESYNTAX error and ends consumption; a failed read yields EIO.
	Token() (Token, error)

	// Position reports the position at the start of the token most
	// recently returned by Token.
	Position() Position
}
