package parser

import (
	"strings"

	"github.com/sirosfoundation/go-x12/pkg/envelope"
)

// DecodeSegment decodes one raw segment into its element structure
// using the given separator set. A trailing segment terminator is
// tolerated and stripped. The decoder never discards information:
// empty elements stay in place and no padding is trimmed, so the
// generator can reproduce the segment exactly.
func DecodeSegment(raw string, delims envelope.Delimiters) *envelope.Segment {
	raw = strings.TrimSuffix(raw, string(delims.Terminator))
	fields := strings.Split(raw, string(delims.Element))

	seg := &envelope.Segment{ID: fields[0], Raw: raw}
	if len(fields) > 1 {
		seg.Elements = make([]envelope.Element, 0, len(fields)-1)
		for _, field := range fields[1:] {
			seg.Elements = append(seg.Elements, decodeElement(field, delims))
		}
	}
	return seg
}

// decodeElement splits one element on the repetition separator first,
// then each piece on the component separator. Value always keeps the
// raw field text, separators included.
func decodeElement(field string, delims envelope.Delimiters) envelope.Element {
	if strings.IndexByte(field, delims.Repetition) >= 0 {
		el := envelope.Element{Value: field}
		for _, repeat := range strings.Split(field, string(delims.Repetition)) {
			el.Repeats = append(el.Repeats, decodeSimple(repeat, delims))
		}
		return el
	}
	return decodeSimple(field, delims)
}

func decodeSimple(value string, delims envelope.Delimiters) envelope.Element {
	el := envelope.Element{Value: value}
	if strings.IndexByte(value, delims.Subelement) >= 0 {
		el.Components = strings.Split(value, string(delims.Subelement))
	}
	return el
}
