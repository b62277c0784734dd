package linkscrape

// XLinkNamespace is the namespace URI of the XLink vocabulary.
const XLinkNamespace = "http://www.w3.org/1999/xlink"

// XLinkLink is a reference harvested from an XLink attribute.
type XLinkLink struct {
	URL  string    `json:"url"`
	Pos  Position  `json:"pos"`
	Kind XLinkKind `json:"kind"`
}

// XLinkKind classifies an XLink reference by the attribute it came
// from.
type XLinkKind string

// XLink reference kinds.
const (
	XLinkSimpleKind   XLinkKind = "simple"   // xlink:href on a simple element
	XLinkExtendedKind XLinkKind = "extended" // xlink:href on a locator inside an extended element
	XLinkRoleKind     XLinkKind = "role"     // xlink:role
	XLinkArcRoleKind  XLinkKind = "arcrole"  // xlink:arcrole
)

// XLinkElement is a recognized XLink vocabulary element.
//
// XLinkElement is a closed union: XLinkSimple, XLinkExtended,
// XLinkLocator, XLinkArc, XLinkResource, and XLinkTitle. Consumers
// dispatch with a type switch.
type XLinkElement interface {
	xlinkElement()
}

// XLinkSimple is an element with xlink:type="simple". All attributes
// are optional; absent ones are nil.
type XLinkSimple struct {
	Href    *string
	Role    *string
	Arcrole *string
	Title   *string
}

// XLinkExtended is an element with xlink:type="extended". Name is the
// element's own qualified name, used to find its matching end tag.
type XLinkExtended struct {
	Name Name
	Role *string
}

// XLinkLocator is an element with xlink:type="locator". Href is
// required.
type XLinkLocator struct {
	Href string
	Role *string
}

// XLinkArc is an element with xlink:type="arc".
type XLinkArc struct {
	Arcrole *string
}

// XLinkResource is an element with xlink:type="resource".
type XLinkResource struct {
	Role *string
}

// XLinkTitle is an element with xlink:type="title". Titles carry no
// references.
type XLinkTitle struct{}

func (XLinkSimple) xlinkElement()   {}
func (XLinkExtended) xlinkElement() {}
func (XLinkLocator) xlinkElement()  {}
func (XLinkArc) xlinkElement()      {}
func (XLinkResource) xlinkElement() {}
func (XLinkTitle) xlinkElement()    {}

// ClassifyXLink decides whether a start element denotes an XLink
// vocabulary element and extracts its typed payload. Elements without
// an xlink:type attribute are not XLink elements and yield (nil, nil).
// An unrecognized xlink:type value yields EUNKNOWNTYPE; a recognized
// type missing a required attribute yields EMISSINGATTR.
func ClassifyXLink(el StartElement) (XLinkElement, error) {
	typ := xlinkAttr(el, "type")
	if typ == nil {
		return nil, nil
	}

	switch *typ {
	case "simple":
		return XLinkSimple{
			Href:    xlinkAttr(el, "href"),
			Role:    xlinkAttr(el, "role"),
			Arcrole: xlinkAttr(el, "arcrole"),
			Title:   xlinkAttr(el, "title"),
		}, nil
	case "extended":
		return XLinkExtended{
			Name: el.Name,
			Role: xlinkAttr(el, "role"),
		}, nil
	case "locator":
		href := xlinkAttr(el, "href")
		if href == nil {
			return nil, Errorf(EMISSINGATTR, "locator element missing required xlink:href attribute")
		}
		return XLinkLocator{
			Href: *href,
			Role: xlinkAttr(el, "role"),
		}, nil
	case "arc":
		return XLinkArc{
			Arcrole: xlinkAttr(el, "arcrole"),
		}, nil
	case "resource":
		return XLinkResource{
			Role: xlinkAttr(el, "role"),
		}, nil
	case "title":
		return XLinkTitle{}, nil
	default:
		return nil, Errorf(EUNKNOWNTYPE, "unknown xlink:type value %q", *typ)
	}
}

// xlinkAttr returns the value of the XLink-namespaced attribute with
// the given local name, or nil if the element does not carry it.
func xlinkAttr(el StartElement, local string) *string {
	for _, a := range el.Attr {
		if a.Name.Local == local && a.Name.Space == XLinkNamespace {
			v := a.Value
			return &v
		}
	}
	return nil
}
