package envelope

import (
	"fmt"
	"strings"
)

// Conventional separator bytes. Real documents override these through
// ExtractDelimiters; once a document has been parsed its own set travels
// on the Interchange and the defaults are never consulted again.
const (
	DefaultElementSeparator    = byte('*')
	DefaultSubelementSeparator = byte(':')
	DefaultRepetitionSeparator = byte('^')
	DefaultSegmentTerminator   = byte('~')
)

const (
	// isaMinLength is the fixed-width size of a complete ISA segment.
	isaMinLength = 106
	// isaFieldCount counts the ISA segment id plus its sixteen elements.
	isaFieldCount = 17
	// isaElementSeparatorOffset is the byte position of the element
	// separator, immediately after the "ISA" tag.
	isaElementSeparatorOffset = 3
)

// Delimiters is the separator set of one X12 document.
type Delimiters struct {
	Element    byte
	Subelement byte
	Repetition byte
	Terminator byte
}

// DefaultDelimiters returns the conventional separator set. It is the
// fallback when extraction fails and the starting point for generation
// when the caller has not chosen separators.
func DefaultDelimiters() Delimiters {
	return Delimiters{
		Element:    DefaultElementSeparator,
		Subelement: DefaultSubelementSeparator,
		Repetition: DefaultRepetitionSeparator,
		Terminator: DefaultSegmentTerminator,
	}
}

// ExtractDelimiters reads the four delimiters out of a document's ISA
// header. X12 is self-describing: the element separator is the byte
// after the ISA tag, the component separator is ISA16, the segment
// terminator is the byte following ISA16, and the repetition separator
// is ISA11 on 005010 interchanges ("U" marks a 004010 interchange that
// reserves the position for the standards identifier).
//
// Extraction is all-or-nothing. On any failure the conventional
// defaults are returned together with the findings; callers must check
// the findings before trusting the set.
func ExtractDelimiters(text string) (Delimiters, []Error) {
	if len(text) < isaMinLength {
		return DefaultDelimiters(), []Error{{
			Code:      CodeTooShort,
			Severity:  SeverityError,
			Message:   fmt.Sprintf("document is %d characters, a complete ISA segment needs at least %d", len(text), isaMinLength),
			SegmentID: SegISA,
		}}
	}
	if !strings.HasPrefix(text, SegISA) {
		return DefaultDelimiters(), []Error{{
			Code:      CodeInvalidEnvelope,
			Severity:  SeverityError,
			Message:   "document does not start with an ISA segment",
			SegmentID: SegISA,
		}}
	}

	element := text[isaElementSeparatorOffset]
	fields := strings.Split(text, string(element))
	if len(fields) < isaFieldCount {
		return DefaultDelimiters(), []Error{{
			Code:      CodeMalformedISA,
			Severity:  SeverityError,
			Message:   fmt.Sprintf("ISA segment has %d elements, expected %d", len(fields)-1, isaFieldCount-1),
			SegmentID: SegISA,
			Element:   16,
		}}
	}

	// The split runs past the ISA segment, so field 16 starts with the
	// component separator and carries the terminator right behind it.
	isa16 := fields[16]
	if isa16 == "" {
		return DefaultDelimiters(), []Error{{
			Code:      CodeMalformedISA,
			Severity:  SeverityError,
			Message:   "ISA16 component separator is empty",
			SegmentID: SegISA,
			Element:   16,
		}}
	}

	d := Delimiters{
		Element:    element,
		Subelement: isa16[0],
		Repetition: DefaultRepetitionSeparator,
		Terminator: DefaultSegmentTerminator,
	}
	if len(isa16) > 1 {
		d.Terminator = isa16[1]
	}
	if isa11 := fields[11]; len(isa11) == 1 && isa11 != "U" {
		d.Repetition = isa11[0]
	}
	return d, nil
}
