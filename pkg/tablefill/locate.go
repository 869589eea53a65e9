package tablefill

import (
	"strings"

	"github.com/benjaminschreck/go-tablefill/pkg/tablefill/xml"
)

// HasText reports whether root or any of its descendants carries text containing token.
func HasText(root *xml.Element, token string) bool {
	return !root.Walk(func(e *xml.Element) bool {
		return !strings.Contains(e.Text, token)
	})
}

// Find returns the first element of the given kind, in document order, whose subtree
// contains token. root itself is a candidate. When nothing matches, Find returns a
// *NotFoundError naming the token, the kind and root.
func Find(root *xml.Element, token string, kind xml.Kind) (*xml.Element, error) {
	var found *xml.Element
	root.Walk(func(e *xml.Element) bool {
		if e.Kind == kind && HasText(e, token) {
			found = e
			return false
		}
		return true
	})

	if found == nil {
		return nil, &NotFoundError{Token: token, Kind: kind, Context: root.String()}
	}
	return found, nil
}
