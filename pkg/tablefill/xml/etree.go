package xml

import (
	"strings"

	"github.com/beevik/etree"
)

// FromEtree converts a parsed etree element and its subtree into an Element tree.
//
// Character data between child elements is kept only when it is not pure
// whitespace; comments, processing instructions and directives inside the
// subtree are dropped.
func FromEtree(src *etree.Element) *Element {
	el := &Element{
		Kind:  KindOf(src.NamespaceURI(), src.Tag),
		Space: src.Space,
		Tag:   src.Tag,
	}
	if len(src.Attr) > 0 {
		el.Attrs = make([]Attr, len(src.Attr))
		for i, a := range src.Attr {
			el.Attrs[i] = Attr{Space: a.Space, Key: a.Key, Value: a.Value}
		}
	}

	var text strings.Builder
	for _, tok := range src.Child {
		switch t := tok.(type) {
		case *etree.Element:
			el.Children = append(el.Children, FromEtree(t))
		case *etree.CharData:
			text.WriteString(t.Data)
		}
	}
	el.Text = text.String()
	if len(el.Children) > 0 && strings.TrimSpace(el.Text) == "" {
		el.Text = ""
	}
	return el
}

// ToEtree converts e and its subtree back into an etree element.
func (e *Element) ToEtree() *etree.Element {
	dst := etree.NewElement(e.FullTag())
	for _, a := range e.Attrs {
		key := a.Key
		if a.Space != "" {
			key = a.Space + ":" + a.Key
		}
		dst.CreateAttr(key, a.Value)
	}
	if e.Text != "" {
		dst.SetText(e.Text)
	}
	for _, c := range e.Children {
		dst.AddChild(c.ToEtree())
	}
	return dst
}
