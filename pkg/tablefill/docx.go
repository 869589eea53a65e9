package tablefill

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/beevik/etree"

	"github.com/benjaminschreck/go-tablefill/pkg/tablefill/xml"
)

// MainDocumentPart is the conventional name of the main body part.
const MainDocumentPart = "word/document.xml"

// ErrPartNotFound is returned when a part selector matches nothing in the package.
var ErrPartNotFound = errors.New("part not found")

// DocxReader handles reading, editing and re-packaging DOCX files.
//
// Parts returned by RootElement are parsed once and kept live: edits made to the
// returned tree are what Save and WriteTo serialise. A DocxReader is not safe for
// concurrent use.
type DocxReader struct {
	reader *zip.Reader
	Parts  map[string]*zip.File
	parsed map[string]*xml.Document
}

// Relationship represents a relationship in the DOCX package
type Relationship struct {
	ID         string
	Type       string
	Target     string
	TargetMode string
}

// NewDocxReader creates a new DOCX reader
func NewDocxReader(r io.ReaderAt, size int64) (*DocxReader, error) {
	zipReader, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to read zip file: %w", err)
	}

	dr := &DocxReader{
		reader: zipReader,
		Parts:  make(map[string]*zip.File),
		parsed: make(map[string]*xml.Document),
	}

	for _, file := range zipReader.File {
		dr.Parts[file.Name] = file
	}

	if _, ok := dr.Parts[MainDocumentPart]; !ok {
		return nil, fmt.Errorf("not a valid DOCX file: missing %s", MainDocumentPart)
	}

	return dr, nil
}

// OpenDocx creates a DocxReader from a file path
func OpenDocx(path string) (*DocxReader, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, NewDocumentError("open", path, err)
	}

	dr, err := NewDocxReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, NewDocumentError("open", path, err)
	}
	return dr, nil
}

// GetPart retrieves the raw content of a specific part
func (dr *DocxReader) GetPart(partName string) ([]byte, error) {
	file, ok := dr.Parts[partName]
	if !ok {
		return nil, fmt.Errorf("part %s: %w", partName, ErrPartNotFound)
	}

	rc, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open part %s: %w", partName, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read part %s: %w", partName, err)
	}

	return content, nil
}

// ListParts returns the sorted names of all parts in the DOCX
func (dr *DocxReader) ListParts() []string {
	parts := make([]string, 0, len(dr.Parts))
	for name := range dr.Parts {
		parts = append(parts, name)
	}
	sort.Strings(parts)
	return parts
}

// GetRelationships retrieves relationships for a given part. An empty partName
// returns the package-level relationships from _rels/.rels.
func (dr *DocxReader) GetRelationships(partName string) ([]Relationship, error) {
	relPath := "_rels/.rels"
	if partName != "" {
		dir, base := path.Split(partName)
		relPath = dir + "_rels/" + base + ".rels"
	}

	if _, ok := dr.Parts[relPath]; !ok {
		// a missing relationships part just means no relationships
		return []Relationship{}, nil
	}

	content, err := dr.GetPart(relPath)
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(content); err != nil {
		return nil, fmt.Errorf("failed to parse relationships: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return []Relationship{}, nil
	}

	var rels []Relationship
	for _, el := range root.SelectElements("Relationship") {
		rels = append(rels, Relationship{
			ID:         el.SelectAttrValue("Id", ""),
			Type:       el.SelectAttrValue("Type", ""),
			Target:     el.SelectAttrValue("Target", ""),
			TargetMode: el.SelectAttrValue("TargetMode", ""),
		})
	}
	return rels, nil
}

// ResolvePart maps a selector to a part name. The selector is either an existing
// part name or a package relationship type, given in full or by its last path
// segment ("officeDocument").
func (dr *DocxReader) ResolvePart(selector string) (string, error) {
	if _, ok := dr.Parts[selector]; ok {
		return selector, nil
	}

	rels, err := dr.GetRelationships("")
	if err != nil {
		return "", err
	}
	for _, rel := range rels {
		if rel.TargetMode == "External" {
			continue
		}
		if rel.Type != selector && !strings.HasSuffix(rel.Type, "/"+selector) {
			continue
		}
		name := strings.TrimPrefix(rel.Target, "/")
		if _, ok := dr.Parts[name]; ok {
			return name, nil
		}
	}
	return "", fmt.Errorf("selector %q: %w", selector, ErrPartNotFound)
}

// RootElement returns the live structural tree of the part chosen by selector.
// Repeated calls for the same part return the same tree.
func (dr *DocxReader) RootElement(selector string) (*xml.Element, error) {
	name, err := dr.ResolvePart(selector)
	if err != nil {
		return nil, err
	}
	if doc, ok := dr.parsed[name]; ok {
		return doc.Root, nil
	}

	content, err := dr.GetPart(name)
	if err != nil {
		return nil, err
	}
	doc, err := xml.ParseDocument(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("part %s: %w", name, err)
	}

	dr.parsed[name] = doc
	Debug("parsed part %s", name)
	return doc.Root, nil
}

// Save writes the package, including every edit made to parsed parts, to
// outputPath. Errors from the file system are returned as-is; a partially
// written file is removed.
func (dr *DocxReader) Save(outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}

	if _, err := dr.WriteTo(f); err != nil {
		f.Close()
		os.Remove(outputPath)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(outputPath)
		return err
	}
	return nil
}

// WriteTo writes the package to w. Unparsed parts are copied without
// recompression; parsed parts are re-serialised from their live trees.
func (dr *DocxReader) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)

	for _, file := range dr.reader.File {
		doc, ok := dr.parsed[file.Name]
		if !ok {
			if err := zw.Copy(file); err != nil {
				return cw.n, fmt.Errorf("failed to copy %s: %w", file.Name, err)
			}
			continue
		}

		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     file.Name,
			Method:   zip.Deflate,
			Modified: file.Modified,
		})
		if err != nil {
			return cw.n, fmt.Errorf("failed to create %s: %w", file.Name, err)
		}
		if _, err := doc.WriteTo(fw); err != nil {
			return cw.n, fmt.Errorf("failed to write %s: %w", file.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return cw.n, fmt.Errorf("failed to finalize package: %w", err)
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
