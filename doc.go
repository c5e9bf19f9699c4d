// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package gox12 implements ANSI X12 EDI envelope processing and the core
retail purchasing transaction sets.

# Overview

go-x12 is a pure-Go X12 engine: it tokenizes wire documents with the
separator set each document declares, folds segments into the
ISA/GS/ST envelope hierarchy, projects the common purchasing documents
into typed records, validates against per-set rule tables, and writes
documents back out byte-faithfully. Everything is synchronous and
allocation-bounded; there is no I/O in the core packages.

# Transaction Sets Implemented

	850 - Purchase Order
	855 - Purchase Order Acknowledgment
	856 - Ship Notice/Manifest (ASN)
	810 - Invoice
	997 - Functional Acknowledgment

Versions 004010 and 005010 of the envelope are accepted.

# Package Structure

The library is organized into the following packages:

	github.com/sirosfoundation/go-x12/pkg/x12         - Top-level facade API
	github.com/sirosfoundation/go-x12/pkg/envelope    - Envelope types, delimiters, builder
	github.com/sirosfoundation/go-x12/pkg/token       - Separator-aware segment scanner
	github.com/sirosfoundation/go-x12/pkg/parser      - Document to envelope tree
	github.com/sirosfoundation/go-x12/pkg/generator   - Envelope tree to document
	github.com/sirosfoundation/go-x12/pkg/transaction - Typed 850/855/856/810/997 records
	github.com/sirosfoundation/go-x12/pkg/validate    - Declarative segment/element rules
	github.com/sirosfoundation/go-x12/pkg/canonical   - Format-neutral order/invoice/shipment models

# Quick Start

To parse a received document and acknowledge it:

	import (
	    "github.com/sirosfoundation/go-x12/pkg/envelope"
	    "github.com/sirosfoundation/go-x12/pkg/x12"
	)

	// Parse
	res := x12.Parse(document)
	for _, set := range res.Interchange.TransactionSets() {
	    typed := x12.ParseTransactionSet(set)
	    if typed.Set.PurchaseOrder != nil {
	        fmt.Println("order", typed.Set.PurchaseOrder.PONumber)
	    }
	}

	// Validate
	findings := x12.ValidateInterchange(res.Interchange)

	// Acknowledge
	ack, err := x12.Generate997ForDocument(document,
	    envelope.Identity{Qualifier: "ZZ", ID: "LOCAL"},
	    envelope.Identity{Qualifier: "ZZ", ID: "PARTNER"})

# Error Model

Malformed input never panics and rarely aborts: parsing and validation
return partial structures plus a flat list of findings, each carrying a
machine code, severity, offending segment/element and the group/set
path. Only a document with no recoverable ISA envelope yields a nil
interchange.

# License

BSD-2-Clause License
*/
package gox12
