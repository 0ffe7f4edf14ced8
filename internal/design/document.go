package design

import "github.com/specialistvlad/memgridgo/internal/vlnv"

// Kind distinguishes the document variants a repository can return.
type Kind int

const (
	// KindComponent is a component description.
	KindComponent Kind = iota
	// KindDesign is a design (instances plus interconnections).
	KindDesign
	// KindConfiguration is a design configuration.
	KindConfiguration
)

// String returns the document kind as used in logs and listings.
func (k Kind) String() string {
	switch k {
	case KindComponent:
		return "component"
	case KindDesign:
		return "design"
	case KindConfiguration:
		return "designConfiguration"
	default:
		return "unknown"
	}
}

// Document is the tagged union of every document kind. Use AsComponent,
// AsDesign or AsConfiguration to downcast safely.
type Document interface {
	Kind() Kind
	Identity() vlnv.VLNV
}

// AsComponent downcasts a document. It reports false for nil documents and
// for documents of another kind.
func AsComponent(doc Document) (*Component, bool) {
	c, ok := doc.(*Component)
	return c, ok && c != nil
}

// AsDesign downcasts a document. It reports false for nil documents and for
// documents of another kind.
func AsDesign(doc Document) (*Design, bool) {
	d, ok := doc.(*Design)
	return d, ok && d != nil
}

// AsConfiguration downcasts a document. It reports false for nil documents
// and for documents of another kind.
func AsConfiguration(doc Document) (*Configuration, bool) {
	c, ok := doc.(*Configuration)
	return c, ok && c != nil
}

func (c *Component) Kind() Kind              { return KindComponent }
func (c *Component) Identity() vlnv.VLNV     { return c.VLNV }
func (d *Design) Kind() Kind                 { return KindDesign }
func (d *Design) Identity() vlnv.VLNV        { return d.VLNV }
func (c *Configuration) Kind() Kind          { return KindConfiguration }
func (c *Configuration) Identity() vlnv.VLNV { return c.VLNV }
