package xml

import (
	"fmt"
	"strings"
)

// Attr is an attribute of an Element. Space holds the namespace prefix.
type Attr struct {
	Space string
	Key   string
	Value string
}

// Element is a node of the structural tree.
//
// Text is the literal text attached directly to the node, not to its descendants.
// Character data interleaved with child elements is joined into Text and written
// back before the children.
//
// Children are owned by the Element; there are no back-pointers to the parent.
type Element struct {
	Kind     Kind
	Space    string
	Tag      string
	Attrs    []Attr
	Text     string
	Children []*Element
}

// NewElement creates a WordprocessingML element of the given kind with the "w" prefix.
func NewElement(kind Kind, children ...*Element) *Element {
	return &Element{
		Kind:     kind,
		Space:    "w",
		Tag:      kind.Tag(),
		Children: children,
	}
}

// NewOther creates a KindOther element with an explicit prefix and local name.
func NewOther(space, tag string, children ...*Element) *Element {
	return &Element{
		Kind:     KindOther,
		Space:    space,
		Tag:      tag,
		Children: children,
	}
}

// NewText creates a <w:t> element holding value.
func NewText(value string) *Element {
	t := NewElement(KindText)
	t.Text = value
	return t
}

// FullTag returns the prefixed element name, e.g. "w:tbl".
func (e *Element) FullTag() string {
	if e.Space == "" {
		return e.Tag
	}
	return e.Space + ":" + e.Tag
}

// String describes the element for diagnostics, e.g. "<w:tbl> (TABLE, 3 children)".
func (e *Element) String() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("<%s> (%s, %d children)", e.FullTag(), e.Kind, len(e.Children))
}

// GetAttr returns the value of the attribute with the given prefix and key.
func (e *Element) GetAttr(space, key string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Space == space && a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets or replaces the attribute with the given prefix and key.
func (e *Element) SetAttr(space, key, value string) {
	for i := range e.Attrs {
		if e.Attrs[i].Space == space && e.Attrs[i].Key == key {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Space: space, Key: key, Value: value})
}

// AppendChild adds child as the last child of e.
func (e *Element) AppendChild(child *Element) {
	e.Children = append(e.Children, child)
}

// RemoveChild removes child from e's direct children by identity.
// It reports whether child was found.
func (e *Element) RemoveChild(child *Element) bool {
	for i, c := range e.Children {
		if c == child {
			copy(e.Children[i:], e.Children[i+1:])
			e.Children[len(e.Children)-1] = nil
			e.Children = e.Children[:len(e.Children)-1]
			return true
		}
	}
	return false
}

// RemoveDescendant removes target from whichever node in e's subtree owns it.
// It reports whether target was found. e itself is never removed.
func (e *Element) RemoveDescendant(target *Element) bool {
	if e.RemoveChild(target) {
		return true
	}
	for _, c := range e.Children {
		if c.RemoveDescendant(target) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of e. The copy shares no slices with the original.
func (e *Element) Clone() *Element {
	if e == nil {
		return nil
	}
	clone := &Element{
		Kind:  e.Kind,
		Space: e.Space,
		Tag:   e.Tag,
		Text:  e.Text,
	}
	if len(e.Attrs) > 0 {
		clone.Attrs = make([]Attr, len(e.Attrs))
		copy(clone.Attrs, e.Attrs)
	}
	if len(e.Children) > 0 {
		clone.Children = make([]*Element, len(e.Children))
		for i, c := range e.Children {
			clone.Children[i] = c.Clone()
		}
	}
	return clone
}

// Walk visits e and its descendants in document order (depth-first, pre-order).
// Returning false from fn stops the walk; Walk reports whether it ran to completion.
func (e *Element) Walk(fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, c := range e.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// ChildrenOfKind returns the direct children of e with the given kind.
func (e *Element) ChildrenOfKind(kind Kind) []*Element {
	var out []*Element
	for _, c := range e.Children {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// FindFirst returns the first element of the given kind in e's subtree, e included.
func (e *Element) FindFirst(kind Kind) *Element {
	var found *Element
	e.Walk(func(n *Element) bool {
		if n.Kind == kind {
			found = n
			return false
		}
		return true
	})
	return found
}

// TextContent concatenates the text of e and all of its descendants in document order.
func (e *Element) TextContent() string {
	var b strings.Builder
	e.Walk(func(n *Element) bool {
		b.WriteString(n.Text)
		return true
	})
	return b.String()
}
