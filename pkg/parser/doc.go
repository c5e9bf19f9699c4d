// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package parser builds the envelope tree out of raw X12 text.

Parsing is a single pass: the document's delimiters are extracted from
the ISA header, the text is tokenized, and the flat segment list is
folded into Interchange, FunctionalGroup and TransactionSet envelopes.
GS/GE and ST/SE pairs are matched with an explicit depth counter over
the segment slice, so a malformed group damages only itself and its
siblings still parse.

# Parsing

	result := parser.Parse(text)
	if result.Interchange == nil {
	    // fatal: empty, truncated, not X12, or missing IEA
	}
	for _, w := range result.Warnings {
	    // control-number and count mismatches are advisory
	}

Only four conditions suppress the interchange entirely: empty input,
input shorter than a complete ISA segment, input not starting with ISA,
and a missing IEA trailer. Everything else is reported in Errors or
Warnings next to whatever could still be recovered. Control-number and
count cross-checks (ISA13/IEA02, GS06/GE02, ST02/SE02, GE01, IEA01,
SE01) are always warnings: production trading partners routinely send
off-by-one counts and rejecting those interchanges helps nobody.

# Segment Decoding

Body segments are decoded with DecodeSegment using the separator set
stored on the interchange, never the conventional defaults. Mid-segment
empty elements are preserved exactly; only the generator trims trailing
empties, and only at generation time.
*/
package parser
