package linkscrape

// Link is a discovered URL reference. URL is the exact substring the
// matcher identified, which may be embedded in a larger value. Pos is
// the position of the event the reference was found in: for attribute
// links this is the enclosing start tag, not the attribute's own
// offset.
type Link struct {
	URL  string   `json:"url"`
	Pos  Position `json:"pos"`
	Kind Kind     `json:"-"`
}

// Kind classifies the syntactic context a link was found in.
//
// Kind is a closed union: AttrKind, CommentKind, TextKind, CDataKind,
// and NamespaceKind. Consumers dispatch with a type switch.
type Kind interface {
	kind()
}

// AttrKind marks a link found inside an attribute value.
// Example: <a href="https://link.example.com">
type AttrKind struct {
	Attr Attr
}

// CommentKind marks a link found inside a comment.
// Example: <!-- see https://link.example.com -->
type CommentKind struct{}

// TextKind marks a link found in character data. Parent is the
// enclosing element, nil at document root.
// Example: <p>see https://link.example.com</p>
type TextKind struct {
	Parent *Name
}

// CDataKind marks a link found inside a CDATA section. Parent is the
// enclosing element, nil at document root.
type CDataKind struct {
	Parent *Name
}

// NamespaceKind marks a link that is a namespace URI. Emitted at most
// once per (prefix, URI) pair, at the position of first declaration.
// Example: <root xmlns="https://link.example.com">
type NamespaceKind struct {
	Prefix string
}

func (AttrKind) kind()      {}
func (CommentKind) kind()   {}
func (TextKind) kind()      {}
func (CDataKind) kind()     {}
func (NamespaceKind) kind() {}

// KindString returns a stable label for a link kind.
func KindString(k Kind) string {
	switch k.(type) {
	case AttrKind:
		return "attribute"
	case CommentKind:
		return "comment"
	case TextKind:
		return "text"
	case CDataKind:
		return "cdata"
	case NamespaceKind:
		return "namespace"
	default:
		return "unknown"
	}
}
