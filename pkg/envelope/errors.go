package envelope

import (
	"fmt"
	"strings"
)

// Severity classifies a finding. Errors are protocol-breaking; warnings
// are reconciliation mismatches that production trading partners
// routinely violate and that never abort a parse.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding codes. The 00xx block identifies structural failures, the
// 01xx block reconciliation mismatches, the 02xx block segment and
// element content problems, and the 03xx block advisory notes.
const (
	CodeTooShort           = "X12:0001"
	CodeInvalidEnvelope    = "X12:0002"
	CodeMalformedISA       = "X12:0003"
	CodeMissingIEA         = "X12:0004"
	CodeMissingGE          = "X12:0005"
	CodeMissingSE          = "X12:0006"
	CodeUnsupportedVersion = "X12:0007"
	CodeTooLarge           = "X12:0008"
	CodeUnexpectedSegment  = "X12:0009"
	CodeControlMismatch    = "X12:0101"
	CodeCountMismatch      = "X12:0102"
	CodeMissingSegment     = "X12:0201"
	CodeBadElement         = "X12:0202"
	CodeUnsupportedSet     = "X12:0301"
)

// Path locates a finding inside a multi-group interchange. Both indexes
// are 1-based; zero means the finding is not scoped to that layer, so
// the zero value describes an interchange-level finding.
type Path struct {
	Group int
	Set   int
}

// Error is one parse or validation finding. Element and Component are
// 1-based positions within the offending segment, zero when the finding
// is not element-scoped. Error never carries payload data beyond what
// the message quotes.
type Error struct {
	Code      string
	Severity  Severity
	Message   string
	SegmentID string
	Element   int
	Component int
	Path      Path
}

// Error implements the error interface.
func (e Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] %s", e.Code, e.Severity, e.Message)
	if e.SegmentID != "" {
		fmt.Fprintf(&b, " (segment %s", e.SegmentID)
		if e.Element > 0 {
			fmt.Fprintf(&b, ", element %d", e.Element)
			if e.Component > 0 {
				fmt.Fprintf(&b, ", component %d", e.Component)
			}
		}
		b.WriteString(")")
	}
	if e.Path.Group > 0 {
		fmt.Fprintf(&b, " at group %d", e.Path.Group)
		if e.Path.Set > 0 {
			fmt.Fprintf(&b, ", set %d", e.Path.Set)
		}
	}
	return b.String()
}

// HasErrors reports whether any finding carries error severity.
func HasErrors(findings []Error) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Split partitions findings by severity, preserving order within each
// class.
func Split(findings []Error) (errors, warnings []Error) {
	for _, f := range findings {
		if f.Severity == SeverityError {
			errors = append(errors, f)
		} else {
			warnings = append(warnings, f)
		}
	}
	return errors, warnings
}
