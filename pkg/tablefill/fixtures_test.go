package tablefill

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benjaminschreck/go-tablefill/pkg/tablefill/xml"
)

const testMarker = "CELL TEXT"

const stylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:style w:styleId="Heading1"/></w:styles>`

// documentXML wraps body content in a w:document root.
func documentXML(body string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body + `</w:body></w:document>`
}

func textParagraph(text string) string {
	return `<w:p><w:r><w:t>` + text + `</w:t></w:r></w:p>`
}

func cellXML(text string) string {
	return `<w:tc><w:tcPr><w:tcW w:w="2000" w:type="dxa"/></w:tcPr>` + textParagraph(text) + `</w:tc>`
}

func tableXML(rows ...string) string {
	return `<w:tbl><w:tblPr><w:tblW w:w="0" w:type="auto"/></w:tblPr><w:tblGrid><w:gridCol w:w="2000"/></w:tblGrid>` +
		strings.Join(rows, "") + `</w:tbl>`
}

func rowXML(cells ...string) string {
	return `<w:tr>` + strings.Join(cells, "") + `</w:tr>`
}

// templateBody is a heading, a one-cell template table and a trailing empty paragraph.
func templateBody(marker string) string {
	return `<w:p><w:pPr><w:pStyle w:val="Heading1"/></w:pPr><w:r><w:t>HEADING PARAGRAPH</w:t></w:r></w:p>` +
		tableXML(rowXML(cellXML(marker))) +
		`<w:p/><w:sectPr><w:pgSz w:w="12240" w:h="15840"/></w:sectPr>`
}

// parseRoot parses a body fragment into a live tree rooted at w:document.
func parseRoot(t *testing.T, body string) *xml.Element {
	t.Helper()
	doc, err := xml.ParseDocument(strings.NewReader(documentXML(body)))
	require.NoError(t, err)
	return doc.Root
}

// buildDOCX creates a minimal DOCX package in memory.
func buildDOCX(t *testing.T, document string) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)

	parts := []struct{ name, content string }{
		{"[Content_Types].xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`},
		{"_rels/.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`},
		{"word/_rels/document.xml.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>`},
		{"word/document.xml", document},
		{"word/styles.xml", stylesXML},
	}
	for _, p := range parts {
		f, err := w.Create(p.name)
		require.NoError(t, err)
		_, err = f.Write([]byte(p.content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

// writeDOCX writes a DOCX built from body into dir and returns its path.
func writeDOCX(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, buildDOCX(t, documentXML(body)), 0o644))
	return path
}

// tableRows returns the row elements of the n-th body table.
func tableRows(t *testing.T, root *xml.Element, n int) []*xml.Element {
	t.Helper()
	tables := root.FindFirst(xml.KindBody).ChildrenOfKind(xml.KindTable)
	require.Greater(t, len(tables), n)
	return tables[n].ChildrenOfKind(xml.KindTableRow)
}

// cellTexts returns the text of every cell in row.
func cellTexts(row *xml.Element) []string {
	var out []string
	for _, c := range row.ChildrenOfKind(xml.KindTableCell) {
		out = append(out, c.TextContent())
	}
	return out
}
