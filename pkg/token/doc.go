// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package token turns raw X12 text into a flat, position-annotated token
stream.

The scanner is the lowest layer of the parse pipeline: it knows nothing
about envelopes or transaction sets, only about the four separators the
document itself declares. Every token carries its line, column and byte
offset so higher layers can point diagnostics at the exact spot in the
source text.

# Scanning

	delims, errs := envelope.ExtractDelimiters(text)
	if envelope.HasErrors(errs) {
	    // the document has no usable ISA header
	}
	tokens := token.Scan(text, delims)

# Token Types

  - SegmentID: the first field of a segment (ISA, GS, BEG, PO1, ...)
  - Element: one raw element, inner separators included
  - Repetition: one repeat of a repeating element
  - Subelement: one component of a composite element
  - SegmentTerminator: the terminator closing a segment
  - EOF: end of input

A composite or repeating element is reported twice: first as the
Element carrying its raw text, then once per piece. Consumers that only
need whole elements can skip Repetition and Subelement tokens.

# Line Breaks

Documents with line breaks inserted between segments scan cleanly: CRLF
is normalized to LF and whitespace between a terminator and the next
segment id is dropped without producing tokens.
*/
package token
