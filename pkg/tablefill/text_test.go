package tablefill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjaminschreck/go-tablefill/pkg/tablefill/xml"
)

func TestDocumentRuns(t *testing.T) {
	root := parseRoot(t, templateBody(testMarker))

	want := NestedText{
		{{{{"HEADING PARAGRAPH"}}}},
		{{{{"CELL TEXT"}}}},
		{{{{}}}},
	}
	assert.Equal(t, want, DocumentRuns(root))
}

func TestDocumentRuns_GroupsLooseParagraphs(t *testing.T) {
	root := parseRoot(t, textParagraph("one")+textParagraph("two")+
		tableXML(rowXML(cellXML("a"), cellXML("b")))+
		textParagraph("three"))

	want := NestedText{
		{{{{"one"}, {"two"}}}},
		{{{{"a"}}, {{"b"}}}},
		{{{{"three"}}}},
	}
	assert.Equal(t, want, DocumentRuns(root))
}

func TestDocumentRuns_Runs(t *testing.T) {
	root := parseRoot(t, `<w:p>`+
		`<w:r><w:t>Hello</w:t></w:r>`+
		`<w:r><w:rPr><w:b/></w:rPr></w:r>`+
		`<w:r><w:t xml:space="preserve"> wor</w:t><w:t>ld</w:t></w:r>`+
		`<w:hyperlink><w:r><w:t>link</w:t></w:r></w:hyperlink>`+
		`</w:p>`)

	want := NestedText{{{{{"Hello", " world", "link"}}}}}
	assert.Equal(t, want, DocumentRuns(root))
}

func TestDocumentRuns_ContentControls(t *testing.T) {
	root := parseRoot(t, `<w:sdt><w:sdtContent>`+textParagraph("wrapped")+`</w:sdtContent></w:sdt>`+
		tableXML(
			`<w:sdt><w:sdtContent>`+rowXML(cellXML("a"), cellXML("b"))+`</w:sdtContent></w:sdt>`,
			rowXML(cellXML("c"), `<w:sdt><w:sdtContent>`+cellXML("d")+`</w:sdtContent></w:sdt>`),
		))

	want := NestedText{
		{{{{"wrapped"}}}},
		{
			{{{"a"}}, {{"b"}}},
			{{{"c"}}, {{"d"}}},
		},
	}
	assert.Equal(t, want, DocumentRuns(root))
}

func TestDocumentRuns_EmptyBody(t *testing.T) {
	root := parseRoot(t, `<w:sectPr/>`)
	assert.Equal(t, NestedText{}, DocumentRuns(root))
}

func TestDocumentRuns_WithoutBody(t *testing.T) {
	table := xml.NewElement(xml.KindTable,
		xml.NewElement(xml.KindTableRow,
			xml.NewElement(xml.KindTableCell,
				xml.NewElement(xml.KindParagraph, xml.NewElement(xml.KindRun, xml.NewText("x"))))))

	got := DocumentRuns(xml.NewOther("", "root", table))
	require.Len(t, got, 1)
	assert.Equal(t, [][][][]string{{{{"x"}}}}, got[0])
}
