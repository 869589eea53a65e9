package xml

// WordNamespace is the WordprocessingML main namespace URI.
const WordNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// Kind classifies an Element within the WordprocessingML structure.
type Kind int

const (
	KindOther Kind = iota
	KindBody
	KindParagraph
	KindRun
	KindText
	KindTable
	KindTableRow
	KindTableCell
)

func (k Kind) String() string {
	switch k {
	case KindOther:
		return "OTHER"
	case KindBody:
		return "BODY"
	case KindParagraph:
		return "PARAGRAPH"
	case KindRun:
		return "RUN"
	case KindText:
		return "TEXT_RUN"
	case KindTable:
		return "TABLE"
	case KindTableRow:
		return "TABLE_ROW"
	case KindTableCell:
		return "TABLE_CELL"
	default:
		return "UNKNOWN"
	}
}

// Tag returns the local WordprocessingML element name for the kind.
// KindOther has no fixed name and returns an empty string.
func (k Kind) Tag() string {
	switch k {
	case KindBody:
		return "body"
	case KindParagraph:
		return "p"
	case KindRun:
		return "r"
	case KindText:
		return "t"
	case KindTable:
		return "tbl"
	case KindTableRow:
		return "tr"
	case KindTableCell:
		return "tc"
	default:
		return ""
	}
}

// KindOf classifies a WordprocessingML element by its local name.
// Elements outside the main namespace are always KindOther.
func KindOf(namespaceURI, tag string) Kind {
	if namespaceURI != WordNamespace {
		return KindOther
	}
	switch tag {
	case "body":
		return KindBody
	case "p":
		return KindParagraph
	case "r":
		return KindRun
	case "t":
		return KindText
	case "tbl":
		return KindTable
	case "tr":
		return KindTableRow
	case "tc":
		return KindTableCell
	default:
		return KindOther
	}
}
