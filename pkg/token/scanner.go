package token

import (
	"strings"

	"github.com/sirosfoundation/go-x12/pkg/envelope"
)

// Normalize converts CRLF and bare CR line endings to LF so token
// positions are stable regardless of the platform that produced the
// document. The parser applies the same normalization, so offsets from
// both layers agree.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// Scan splits text into tokens using the document's own separator set.
// It is a single linear pass: segments are cut at the terminator,
// surrounding whitespace and blank segments are dropped, and each
// element is reported in full before its repetition or component
// pieces. Scan never fails; structural problems are the parser's
// business, not the scanner's.
func Scan(text string, delims envelope.Delimiters) []Token {
	s := &scanner{text: Normalize(text), delims: delims, line: 1, column: 1}
	s.run()
	return s.tokens
}

type scanner struct {
	text   string
	delims envelope.Delimiters
	tokens []Token

	// cursor state, advanced strictly left to right by emit
	offset int
	line   int
	column int
}

func (s *scanner) run() {
	segment := 0
	pos := 0
	for pos < len(s.text) {
		next := strings.IndexByte(s.text[pos:], s.delims.Terminator)
		end := len(s.text)
		if next >= 0 {
			end = pos + next
		}
		start, stop := trimRange(s.text, pos, end)
		if start < stop {
			s.scanSegment(start, stop, segment)
			if next >= 0 {
				s.emit(TypeSegmentTerminator, string(s.delims.Terminator), end, segment, 0)
			}
			segment++
		}
		if next < 0 {
			break
		}
		pos = end + 1
	}
	s.emit(TypeEOF, "", len(s.text), segment, 0)
}

// scanSegment tokenizes one whitespace-trimmed segment located at
// [start, stop) in the normalized text.
func (s *scanner) scanSegment(start, stop, segment int) {
	fields := strings.Split(s.text[start:stop], string(s.delims.Element))
	at := start
	s.emit(TypeSegmentID, fields[0], at, segment, 0)
	at += len(fields[0])
	for i, field := range fields[1:] {
		at++ // the element separator
		s.emit(TypeElement, field, at, segment, i+1)
		s.scanPieces(field, at, segment, i+1)
		at += len(field)
	}
}

// scanPieces reports the repetition and component structure inside one
// element. A field containing neither separator produces no extra
// tokens.
func (s *scanner) scanPieces(field string, at, segment, element int) {
	if strings.IndexByte(field, s.delims.Repetition) >= 0 {
		for i, repeat := range strings.Split(field, string(s.delims.Repetition)) {
			if i > 0 {
				at++
			}
			s.emit(TypeRepetition, repeat, at, segment, element)
			s.scanComponents(repeat, at, segment, element)
			at += len(repeat)
		}
		return
	}
	s.scanComponents(field, at, segment, element)
}

func (s *scanner) scanComponents(value string, at, segment, element int) {
	if strings.IndexByte(value, s.delims.Subelement) < 0 {
		return
	}
	for i, comp := range strings.Split(value, string(s.delims.Subelement)) {
		if i > 0 {
			at++
		}
		s.emit(TypeSubelement, comp, at, segment, element)
		at += len(comp)
	}
}

// emit records a token at the given byte offset, first advancing the
// line and column cursor to it.
func (s *scanner) emit(t Type, value string, offset, segment, element int) {
	for s.offset < offset {
		if s.text[s.offset] == '\n' {
			s.line++
			s.column = 1
		} else {
			s.column++
		}
		s.offset++
	}
	s.tokens = append(s.tokens, Token{
		Type:         t,
		Value:        value,
		Line:         s.line,
		Column:       s.column,
		Offset:       offset,
		SegmentIndex: segment,
		ElementIndex: element,
	})
}

// trimRange narrows [start, stop) past surrounding whitespace.
func trimRange(text string, start, stop int) (int, int) {
	for start < stop && isBlank(text[start]) {
		start++
	}
	for stop > start && isBlank(text[stop-1]) {
		stop--
	}
	return start, stop
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n'
}
