package tablefill

import (
	"strings"

	"github.com/benjaminschreck/go-tablefill/pkg/tablefill/xml"
)

// ReplaceText replaces every occurrence of token with replacement in the text of
// node and all of its descendants. It returns the number of elements whose text
// changed; the shape of the tree is never altered.
func ReplaceText(node *xml.Element, token, replacement string) int {
	if token == "" {
		return 0
	}
	changed := 0
	node.Walk(func(e *xml.Element) bool {
		if strings.Contains(e.Text, token) {
			e.Text = strings.ReplaceAll(e.Text, token, replacement)
			changed++
		}
		return true
	})
	return changed
}

// preserveSpace sets xml:space="preserve" on text elements whose content starts or
// ends with whitespace, which Word would otherwise trim.
func preserveSpace(node *xml.Element) {
	node.Walk(func(e *xml.Element) bool {
		if e.Kind == xml.KindText && e.Text != "" && strings.TrimSpace(e.Text) != e.Text {
			e.SetAttr("xml", "space", "preserve")
		}
		return true
	})
}
