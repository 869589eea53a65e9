package tablefill

import (
	"errors"

	"github.com/benjaminschreck/go-tablefill/pkg/tablefill/xml"
)

// ErrEmptyMarker is returned when the marker token is the empty string, which
// would match every table and could never be substituted.
var ErrEmptyMarker = errors.New("marker token must not be empty")

// StencilSite is the table, row and cell that carry the marker token. After
// ResolveStencil returns, Row and Cell are detached: Row no longer contains Cell
// and Table no longer contains Row.
type StencilSite struct {
	Table *xml.Element
	Row   *xml.Element
	Cell  *xml.Element
}

// ResolveStencil finds the first table containing token, the first row of that
// table containing token and the first cell of that row containing token, then
// detaches the cell from the row and the row from the table. The tree is left
// untouched when any of the three lookups fails.
func ResolveStencil(root *xml.Element, token string) (*StencilSite, error) {
	table, err := Find(root, token, xml.KindTable)
	if err != nil {
		return nil, err
	}
	row, err := Find(table, token, xml.KindTableRow)
	if err != nil {
		return nil, err
	}
	cell, err := Find(row, token, xml.KindTableCell)
	if err != nil {
		return nil, err
	}

	// narrowest first
	row.RemoveDescendant(cell)
	table.RemoveDescendant(row)

	return &StencilSite{Table: table, Row: row, Cell: cell}, nil
}

// NewRow builds one output row: a copy of the stencil row followed by one copy of
// the stencil cell per field, with token replaced by the field value.
func (s *StencilSite) NewRow(token string, record []string, keepSpace bool) *xml.Element {
	row := s.Row.Clone()
	for _, field := range record {
		cell := s.Cell.Clone()
		ReplaceText(cell, token, field)
		if keepSpace {
			preserveSpace(cell)
		}
		row.AppendChild(cell)
	}
	return row
}

// InsertRows expands the stencil marked by token into one row per record, appended
// to the stencil's table in record order. See Engine.InsertRows.
func InsertRows(root *xml.Element, token string, records [][]string) error {
	return New().InsertRows(root, token, records)
}

// InsertRows locates the stencil row and cell marked by token inside root, removes
// them, and appends one new row per record to the same table. Each field of a
// record becomes one cell, left to right.
//
// Records may have differing field counts; the resulting rows simply differ in
// width. A NotFoundError from the lookup is returned unchanged and root is not
// modified.
func (e *Engine) InsertRows(root *xml.Element, token string, records [][]string) error {
	if token == "" {
		return ErrEmptyMarker
	}

	site, err := ResolveStencil(root, token)
	if err != nil {
		return err
	}

	logger := e.log().WithField("marker", token)
	if logger.IsDebugMode() {
		logger.Debug("stencil resolved: table %s, row %s, cell %s", site.Table, site.Row, site.Cell)
	}

	width := -1
	for i, record := range records {
		if width < 0 {
			width = len(record)
		} else if len(record) != width {
			logger.Warn("record %d has %d fields, first record has %d", i, len(record), width)
		}
		site.Table.AppendChild(site.NewRow(token, record, e.config.PreserveSpace))
	}

	logger.WithField("rows", len(records)).Debug("rows inserted")
	return nil
}
