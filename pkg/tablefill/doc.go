// Package tablefill expands a marked table row of a Word document (DOCX) into one
// row per data record.
//
// A template document contains a table whose cell holds a marker text, for example
// "CELL TEXT". tablefill finds that table, the row and the cell carrying the marker,
// removes them, and appends one copy of the row per record. Each field of a record
// becomes a copy of the marked cell with the marker replaced by the field value.
//
// # Quick Start
//
//	err := tablefill.InsertTableRows("template.docx", "CELL TEXT",
//	    [][]string{{"1", "2", "3"}, {"4", "5", "6"}},
//	    "filled.docx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Working on the tree
//
// The lower level operations work on the structural tree of a part:
//
//	dr, err := tablefill.OpenDocx("template.docx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	root, err := dr.RootElement("officeDocument")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := tablefill.InsertRows(root, "CELL TEXT", records); err != nil {
//	    log.Fatal(err)
//	}
//	if err := dr.Save("filled.docx"); err != nil {
//	    log.Fatal(err)
//	}
//
// Find locates the first element of a kind whose subtree contains a text, in
// document order, and can be narrowed by passing a previous result as root.
// ReplaceText substitutes text throughout a subtree. DocumentRuns and ReadAll return
// the text of a document grouped by table, row, cell, paragraph and run, which is
// handy for checking output.
//
// # Matching Rules
//
//   - Only the first table containing the marker is used, and within it only the
//     first row and the first cell containing the marker.
//   - Matching is plain substring matching on the text of <w:t> elements, so a
//     marker split across runs by Word is not found.
//   - Every occurrence of the marker inside the copied cell is replaced.
//   - Records of different lengths are accepted and produce rows of different
//     widths.
//
// # Configuration
//
// Config controls logging and which part holds the table. It is read from
// TABLEFILL_* environment variables at start-up and can be loaded from YAML with
// LoadConfigFile.
//
// # Error Handling
//
//   - NotFoundError (errors.Is(err, ErrNotFound)): no table, row or cell contains
//     the marker. The document is left unmodified.
//   - DocumentError: the package could not be opened or the main part resolved.
//   - Errors from saving are the file system errors themselves.
package tablefill
