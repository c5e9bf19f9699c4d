// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package envelope defines the ANSI X12 interchange structures and the
delimiter set that travels with them.

This package implements the three envelope layers of an X12 interchange
as defined by ASC X12.5 and X12.6, for the 004010 and 005010 releases.

# Structures

An interchange nests three envelope layers:

	Interchange (ISA ... IEA)
	  FunctionalGroup (GS ... GE)
	    TransactionSet (ST ... SE)
	      Segment
	        Element (components, repetitions)

Every parsed structure carries the delimiter set extracted from its own
ISA segment. Delimiters are per-document state, never globals: two
interchanges on the same connection may legally use different separators.

# Delimiters

X12 documents are self-describing. The element separator is the fourth
byte of the ISA segment, the component separator is ISA16, the segment
terminator is whatever follows ISA16, and the repetition separator is
ISA11 on 005010 interchanges:

	delims, errs := envelope.ExtractDelimiters(text)
	if envelope.HasErrors(errs) {
	    // delims holds conventional defaults, do not trust them
	}

# Building Interchanges

Use the builder to assemble an interchange for generation:

	ic, err := envelope.NewInterchange(
	    envelope.WithSender(envelope.Identity{Qualifier: "ZZ", ID: "ACME"}),
	    envelope.WithReceiver(envelope.Identity{Qualifier: "ZZ", ID: "WIDGETCO"}),
	    envelope.WithUsageIndicator("T"),
	).AddGroup("PO", set).Build()

# Findings

Parse and validation findings share one Error type carrying a machine
code, a severity (error or warning), the offending segment id, 1-based
element and component positions, and a group/set path. Control-number
and count reconciliation findings are always warnings.

# References

  - ASC X12.5 Interchange Control Structures
  - ASC X12.6 Application Control Structure
*/
package envelope
