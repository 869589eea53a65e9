package xml

import (
	"errors"
	"fmt"
	"io"

	"github.com/beevik/etree"
)

// Document is a parsed XML part. Root is the live structural tree; prolog tokens
// such as the XML declaration are kept by the underlying etree document.
type Document struct {
	Root *Element
	tree *etree.Document
}

// ParseDocument parses an XML part into a Document.
func ParseDocument(r io.Reader) (*Document, error) {
	tree := etree.NewDocument()
	if _, err := tree.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	root := tree.Root()
	if root == nil {
		return nil, errors.New("failed to parse document: no root element")
	}
	return &Document{
		Root: FromEtree(root),
		tree: tree,
	}, nil
}

// Body returns the first <w:body> element of the document, or nil.
func (d *Document) Body() *Element {
	if d.Root == nil {
		return nil
	}
	return d.Root.FindFirst(KindBody)
}

// WriteTo serialises the current state of Root.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	tree := d.tree
	if tree == nil {
		tree = etree.NewDocument()
		tree.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
		d.tree = tree
	}
	tree.SetRoot(d.Root.ToEtree())
	return tree.WriteTo(w)
}

// NewDocument wraps an Element tree so it can be serialised.
func NewDocument(root *Element) *Document {
	return &Document{Root: root}
}
