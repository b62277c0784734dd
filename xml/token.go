// Package xml implements link scraping for XML documents on top of
// encoding/xml, including a position-tracking token reader, the
// generic link scraper, the XLink conformance scraper, and an SVG
// projection.
package xml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"sort"

	"github.com/fwojciec/linkscrape"
)

// Ensure TokenReader implements linkscrape.TokenReader.
var _ linkscrape.TokenReader = (*TokenReader)(nil)

// TokenReader adapts an encoding/xml Decoder to the linkscrape token
// stream. It tracks line/column positions for token starts, maintains
// the in-scope namespace declarations, and separates CDATA sections
// from plain character data.
//
// The reader buffers the raw input as it is consumed; documents are
// expected to fit in memory.
type TokenReader struct {
	dec   *xml.Decoder
	input *inputTracker
	pos   linkscrape.Position

	// Stack of namespace declaration frames, one per open element.
	scopes []map[string]string

	done bool
	err  error
}

// NewTokenReader returns a TokenReader consuming r.
func NewTokenReader(r io.Reader) *TokenReader {
	input := &inputTracker{}
	return &TokenReader{
		dec:   xml.NewDecoder(io.TeeReader(r, input)),
		input: input,
		pos:   linkscrape.Position{Line: 1, Column: 0},
	}
}

// Token returns the next token. Once the document is exhausted it
// keeps returning EndDocument. Malformed markup yields an ESYNTAX
// error, read failures an EIO error; either ends consumption for good.
func (t *TokenReader) Token() (linkscrape.Token, error) {
	if t.err != nil {
		return nil, t.err
	}
	if t.done {
		return linkscrape.EndDocument{}, nil
	}

	// Tokens are contiguous in XML, so the offset where the previous
	// token ended is where this one starts.
	start := t.dec.InputOffset()

	tok, err := t.dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			t.done = true
			t.pos = t.input.position(start)
			return linkscrape.EndDocument{}, nil
		}
		t.err = codedError(err)
		return nil, t.err
	}
	t.pos = t.input.position(start)

	switch tok := tok.(type) {
	case xml.StartElement:
		return t.startElement(tok), nil
	case xml.EndElement:
		if n := len(t.scopes); n > 0 {
			t.scopes = t.scopes[:n-1]
		}
		return linkscrape.EndElement{Name: name(tok.Name)}, nil
	case xml.CharData:
		if t.input.hasPrefix(start, cdataStart) {
			return linkscrape.CData{Text: string(tok)}, nil
		}
		return linkscrape.CharData{Text: string(tok)}, nil
	case xml.Comment:
		return linkscrape.Comment{Text: string(tok)}, nil
	case xml.ProcInst:
		return linkscrape.ProcInst{Target: tok.Target, Inst: string(tok.Inst)}, nil
	case xml.Directive:
		return linkscrape.Directive{Text: string(tok)}, nil
	default:
		t.err = linkscrape.Errorf(linkscrape.EINTERNAL, "unexpected token type %T", tok)
		return nil, t.err
	}
}

// Position reports the position at the start of the most recently
// returned token.
func (t *TokenReader) Position() linkscrape.Position {
	return t.pos
}

var cdataStart = []byte("<![CDATA[")

// startElement converts an encoding/xml start element, splitting
// namespace declarations out of the attribute list and pushing them
// onto the scope stack.
func (t *TokenReader) startElement(tok xml.StartElement) linkscrape.StartElement {
	frame := make(map[string]string)
	var attrs []linkscrape.Attr
	for _, a := range tok.Attr {
		switch {
		case a.Name.Space == "xmlns":
			frame[a.Name.Local] = a.Value
		case a.Name.Space == "" && a.Name.Local == "xmlns":
			frame[""] = a.Value
		default:
			attrs = append(attrs, linkscrape.Attr{Name: name(a.Name), Value: a.Value})
		}
	}
	t.scopes = append(t.scopes, frame)

	return linkscrape.StartElement{
		Name:       name(tok.Name),
		Attr:       attrs,
		Namespaces: t.inScope(),
	}
}

// inScope flattens the scope stack into the effective bindings, the
// innermost declaration winning per prefix, ordered by prefix.
func (t *TokenReader) inScope() []linkscrape.NamespaceBinding {
	effective := make(map[string]string)
	for _, frame := range t.scopes {
		for prefix, uri := range frame {
			effective[prefix] = uri
		}
	}
	if len(effective) == 0 {
		return nil
	}

	prefixes := make([]string, 0, len(effective))
	for prefix := range effective {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)

	bindings := make([]linkscrape.NamespaceBinding, 0, len(effective))
	for _, prefix := range prefixes {
		bindings = append(bindings, linkscrape.NamespaceBinding{Prefix: prefix, URI: effective[prefix]})
	}
	return bindings
}

func name(n xml.Name) linkscrape.Name {
	return linkscrape.Name{Space: n.Space, Local: n.Local}
}

// codedError maps a decoder error onto the application error taxonomy:
// malformed markup is ESYNTAX, anything else is a read failure.
func codedError(err error) error {
	var syntax *xml.SyntaxError
	if errors.As(err, &syntax) {
		return &linkscrape.Error{
			Code:    linkscrape.ESYNTAX,
			Message: err.Error(),
			Err:     err,
		}
	}
	return linkscrape.WrapError(linkscrape.EIO, err)
}

// inputTracker records the raw bytes the decoder has consumed so token
// offsets can be mapped to line/column positions and CDATA sections
// can be told apart from plain character data.
type inputTracker struct {
	buf bytes.Buffer

	// Byte offsets at which lines 2..n start. Line 1 starts at 0.
	lineStarts []int64
}

func (t *inputTracker) Write(p []byte) (int, error) {
	base := int64(t.buf.Len())
	for i, b := range p {
		if b == '\n' {
			t.lineStarts = append(t.lineStarts, base+int64(i)+1)
		}
	}
	t.buf.Write(p)
	return len(p), nil
}

// position maps a byte offset to a line/column position. Column is a
// byte offset within the line.
func (t *inputTracker) position(off int64) linkscrape.Position {
	i := sort.Search(len(t.lineStarts), func(i int) bool {
		return t.lineStarts[i] > off
	})
	var lineStart int64
	if i > 0 {
		lineStart = t.lineStarts[i-1]
	}
	return linkscrape.Position{Line: i + 1, Column: int(off - lineStart)}
}

// hasPrefix reports whether the raw input at off starts with prefix.
func (t *inputTracker) hasPrefix(off int64, prefix []byte) bool {
	raw := t.buf.Bytes()
	if off < 0 || off > int64(len(raw)) {
		return false
	}
	return bytes.HasPrefix(raw[off:], prefix)
}
