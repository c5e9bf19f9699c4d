// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package x12 is the top-level entry point for working with ANSI X12 EDI
documents: parsing, validation, generation, typed transaction records
and functional acknowledgments.

The package is a thin facade over the specialized packages; everything
here can also be reached through pkg/envelope, pkg/parser,
pkg/generator, pkg/transaction and pkg/validate directly.

# Parsing

Parse reads one complete interchange and returns the envelope tree
together with every finding, split by severity:

	result := x12.Parse(document)
	if result.Interchange == nil {
	    // input too broken to recover an envelope
	}
	for _, set := range result.Interchange.TransactionSets() {
	    typed := x12.ParseTransactionSet(set)
	    if typed.Set.PurchaseOrder != nil {
	        // work with the 850
	    }
	}

# Building and generating

BuildInterchange wraps transaction sets in ISA/GS/ST envelopes, grouping
by functional identifier code and filling control numbers, dates and
trailer counts:

	po := &transaction.PurchaseOrder850{PONumber: "PO12345", ...}
	set := envelope.NewTransactionSet("850", po.Segments()...)
	ic, err := x12.BuildInterchange([]*envelope.TransactionSet{set},
	    sender, receiver, x12.BuildOptions{})
	text, err := x12.Generate(ic, generator.Options{LineBreaks: true})

# Acknowledging

Generate997ForDocument parses a received document and produces the
matching 997 Functional Acknowledgment interchange, accepting or
rejecting each transaction set based on what parsing and validation
found.

Canonical, format-neutral order/invoice/shipment models and their X12
mappings live in pkg/canonical.
*/
package x12
