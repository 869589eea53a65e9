package tablefill

import (
	"strings"

	"github.com/benjaminschreck/go-tablefill/pkg/tablefill/xml"
)

// NestedText is the text of a document grouped by structure:
// tables → rows → cells → paragraphs → runs.
//
// Body paragraphs outside tables are grouped, per contiguous block, into a pseudo
// table of one row with one cell.
type NestedText [][][][][]string

// ReadAll opens the DOCX at path and returns the text of its main part.
func ReadAll(path string) (NestedText, error) {
	dr, err := OpenDocx(path)
	if err != nil {
		return nil, err
	}
	root, err := dr.RootElement(GetGlobalConfig().MainPart)
	if err != nil {
		return nil, NewDocumentError("resolve main part", path, err)
	}
	return DocumentRuns(root), nil
}

// DocumentRuns collects the run text of the body under root. If root contains no
// <w:body>, root itself is treated as the body.
func DocumentRuns(root *xml.Element) NestedText {
	body := root.FindFirst(xml.KindBody)
	if body == nil {
		body = root
	}

	out := NestedText{}
	var loose [][]string
	flush := func() {
		if loose != nil {
			out = append(out, [][][][]string{{loose}})
			loose = nil
		}
	}

	var walk func(*xml.Element)
	walk = func(e *xml.Element) {
		for _, child := range e.Children {
			switch child.Kind {
			case xml.KindParagraph:
				loose = append(loose, paragraphRuns(child))
			case xml.KindTable:
				flush()
				out = append(out, tableRuns(child))
			default:
				// content controls and other block wrappers
				walk(child)
			}
		}
	}
	walk(body)
	flush()

	return out
}

func tableRuns(table *xml.Element) [][][][]string {
	rows := [][][][]string{}
	for _, row := range outermost(table, xml.KindTableRow) {
		cells := [][][]string{}
		for _, cell := range outermost(row, xml.KindTableCell) {
			paragraphs := [][]string{}
			for _, p := range outermost(cell, xml.KindParagraph) {
				paragraphs = append(paragraphs, paragraphRuns(p))
			}
			cells = append(cells, paragraphs)
		}
		rows = append(rows, cells)
	}
	return rows
}

func paragraphRuns(p *xml.Element) []string {
	runs := []string{}
	for _, r := range outermost(p, xml.KindRun) {
		var b strings.Builder
		for _, t := range outermost(r, xml.KindText) {
			b.WriteString(t.Text)
		}
		if b.Len() > 0 {
			runs = append(runs, b.String())
		}
	}
	return runs
}

// outermost returns the descendants of e with the given kind that have no ancestor
// of the same kind below e, in document order.
func outermost(e *xml.Element, kind xml.Kind) []*xml.Element {
	var out []*xml.Element
	for _, c := range e.Children {
		if c.Kind == kind {
			out = append(out, c)
			continue
		}
		out = append(out, outermost(c, kind)...)
	}
	return out
}
