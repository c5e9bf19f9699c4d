package validate

import (
	"fmt"
	"strings"

	"github.com/sirosfoundation/go-x12/pkg/envelope"
)

// Kind is the X12 type class of an element.
type Kind int

const (
	KindAN Kind = iota // alphanumeric
	KindN              // numeric, optional sign and decimal point
	KindID             // identifier, usually paired with a code list
	KindDT             // date, YYMMDD or CCYYMMDD
	KindTM             // time, HHMM with optional seconds and decimals
)

// ElementRule constrains one element position of a segment.
type ElementRule struct {
	Position int
	Required bool
	MinLen   int
	MaxLen   int
	Kind     Kind
	OneOf    []string
}

// SegmentRule constrains one segment id within a transaction set body.
// MaxOccurs zero means unbounded.
type SegmentRule struct {
	ID        string
	Required  bool
	MaxOccurs int
	Elements  []ElementRule
}

// apply checks every occurrence of the rule's segment id, then the
// occurrence count itself.
func (r SegmentRule) apply(segs []*envelope.Segment, path envelope.Path) []envelope.Error {
	var findings []envelope.Error
	count := 0
	for _, seg := range segs {
		if seg.ID != r.ID {
			continue
		}
		count++
		for _, er := range r.Elements {
			if f := er.check(seg, path); f != nil {
				findings = append(findings, *f)
			}
		}
	}
	if r.Required && count == 0 {
		findings = append(findings, envelope.Error{
			Code:      envelope.CodeMissingSegment,
			Severity:  envelope.SeverityError,
			Message:   fmt.Sprintf("mandatory segment %s is absent", r.ID),
			SegmentID: r.ID,
			Path:      path,
		})
	}
	if r.MaxOccurs > 0 && count > r.MaxOccurs {
		findings = append(findings, envelope.Error{
			Code:      envelope.CodeUnexpectedSegment,
			Severity:  envelope.SeverityWarning,
			Message:   fmt.Sprintf("segment %s occurs %d times, at most %d expected", r.ID, count, r.MaxOccurs),
			SegmentID: r.ID,
			Path:      path,
		})
	}
	return findings
}

// check reports the first violated constraint for the element, nil when
// the element conforms. Absent optional elements are not checked.
func (r ElementRule) check(seg *envelope.Segment, path envelope.Path) *envelope.Error {
	v := seg.At(r.Position)
	if v == "" {
		if r.Required {
			return r.finding(seg.ID, path, envelope.SeverityError,
				fmt.Sprintf("mandatory element %s%02d is empty", seg.ID, r.Position))
		}
		return nil
	}
	if r.MinLen > 0 && len(v) < r.MinLen {
		return r.finding(seg.ID, path, envelope.SeverityWarning,
			fmt.Sprintf("%s%02d %q is shorter than %d characters", seg.ID, r.Position, v, r.MinLen))
	}
	if r.MaxLen > 0 && len(v) > r.MaxLen {
		return r.finding(seg.ID, path, envelope.SeverityWarning,
			fmt.Sprintf("%s%02d %q is longer than %d characters", seg.ID, r.Position, v, r.MaxLen))
	}
	switch r.Kind {
	case KindN:
		if !isNumeric(v) {
			return r.finding(seg.ID, path, envelope.SeverityError,
				fmt.Sprintf("%s%02d %q is not numeric", seg.ID, r.Position, v))
		}
	case KindDT:
		if !isDate(v) {
			return r.finding(seg.ID, path, envelope.SeverityError,
				fmt.Sprintf("%s%02d %q is not a YYMMDD or CCYYMMDD date", seg.ID, r.Position, v))
		}
	case KindTM:
		if !isTime(v) {
			return r.finding(seg.ID, path, envelope.SeverityError,
				fmt.Sprintf("%s%02d %q is not an HHMM time", seg.ID, r.Position, v))
		}
	}
	if len(r.OneOf) > 0 && !oneOf(r.OneOf, v) {
		return r.finding(seg.ID, path, envelope.SeverityError,
			fmt.Sprintf("%s%02d %q is not an accepted code", seg.ID, r.Position, v))
	}
	return nil
}

func (r ElementRule) finding(segID string, path envelope.Path, sev envelope.Severity, msg string) *envelope.Error {
	return &envelope.Error{
		Code:      envelope.CodeBadElement,
		Severity:  sev,
		Message:   msg,
		SegmentID: segID,
		Element:   r.Position,
		Path:      path,
	}
}

func oneOf(codes []string, v string) bool {
	for _, c := range codes {
		if c == v {
			return true
		}
	}
	return false
}

func isNumeric(v string) bool {
	rest := strings.TrimPrefix(v, "-")
	if rest == "" || rest == "." {
		return false
	}
	dot := false
	for _, c := range rest {
		if c == '.' {
			if dot {
				return false
			}
			dot = true
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func isDate(v string) bool {
	return (len(v) == 6 || len(v) == 8) && digits(v)
}

func isTime(v string) bool {
	return (len(v) == 4 || len(v) == 6 || len(v) == 8) && digits(v)
}

func digits(v string) bool {
	for _, c := range v {
		if c < '0' || c > '9' {
			return false
		}
	}
	return v != ""
}
