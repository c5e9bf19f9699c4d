package token

// Type classifies a scanned token.
type Type int

// Token types, in the order they occur within one segment.
const (
	TypeSegmentID Type = iota
	TypeElement
	TypeSubelement
	TypeRepetition
	TypeSegmentTerminator
	TypeEOF
)

// String returns the conventional name of the token type.
func (t Type) String() string {
	switch t {
	case TypeSegmentID:
		return "SEGMENT_ID"
	case TypeElement:
		return "ELEMENT"
	case TypeSubelement:
		return "SUBELEMENT"
	case TypeRepetition:
		return "REPETITION"
	case TypeSegmentTerminator:
		return "SEGMENT_TERMINATOR"
	case TypeEOF:
		return "EOF"
	default:
		return "UNKNOWN"
	}
}

// Token is one scanned unit. Line and Column are 1-based positions in
// the normalized text and Offset is the 0-based byte offset.
// SegmentIndex counts non-blank segments from zero. ElementIndex is the
// X12 element position within the segment, zero for the segment id;
// Repetition and Subelement tokens inherit the index of the element
// they split.
type Token struct {
	Type         Type
	Value        string
	Line         int
	Column       int
	Offset       int
	SegmentIndex int
	ElementIndex int
}
