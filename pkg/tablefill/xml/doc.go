// Package xml provides the structural tree used by tablefill to search and rewrite
// WordprocessingML parts.
//
// A DOCX part such as word/document.xml is parsed with etree and converted into a tree
// of Element values. Each Element carries a Kind, a closed classification of the
// WordprocessingML elements the templater cares about:
//
//   - KindBody: <w:body>
//   - KindParagraph: <w:p>
//   - KindRun: <w:r>
//   - KindText: <w:t>, the element that carries literal text
//   - KindTable, KindTableRow, KindTableCell: <w:tbl>, <w:tr>, <w:tc>
//   - KindOther: everything else (properties, grids, content controls, ...)
//
// The tree only links parents to children. Detaching a node is done from the parent
// side with RemoveChild or from any ancestor with RemoveDescendant.
//
// Example of building a single-cell table by hand:
//
//	cell := xml.NewElement(xml.KindTableCell,
//	    xml.NewElement(xml.KindParagraph,
//	        xml.NewElement(xml.KindRun,
//	            xml.NewText("CELL TEXT"))))
//	table := xml.NewElement(xml.KindTable, xml.NewElement(xml.KindTableRow, cell))
package xml
