// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package generator writes an interchange back to X12 text.

Generation is the structural inverse of parsing: fixed-width ISA/IEA
encoding, GS/GE and ST/SE envelopes from their typed headers, and body
segments reassembled from their element structure with the separator
set stored on the interchange. Delimiters always travel with the data;
the conventional defaults are used only when an interchange was built
by hand without choosing any.

# Generating

	text := generator.Generate(ic, generator.Options{})

	// with a line break after every terminator, for humans
	text = generator.Generate(ic, generator.Options{LineBreaks: true})

Generating a parsed interchange reproduces its semantic content
exactly: trailer counts and control numbers that came off the wire are
written back verbatim, even when they disagree with the actual
structure, and are computed only when the caller left them empty.
Trailing empty elements are trimmed here and nowhere else.

The generator assumes a structurally valid interchange and performs no
defensive re-validation; callers validate before transmitting.
*/
package generator
