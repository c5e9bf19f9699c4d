// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package transaction projects generic transaction sets into typed
records.

Five transaction set codes carry a typed parser: 850 Purchase Order,
855 Purchase Order Acknowledgment, 856 Ship Notice, 810 Invoice and
997 Functional Acknowledgment. Dispatch is a fixed table keyed on the
ST01 code; anything else degrades to an Unsupported result with one
advisory note rather than an error, because rejecting an interchange
over an unknown payload type helps nobody.

# Parsing

	result := transaction.ParseSet(set)
	switch {
	case result.Set.PurchaseOrder != nil:
	    // 850
	case result.Set.Unsupported:
	    // generic segments remain available on the envelope set
	}

Typed parsers are pure functions over the generic segment list. They
walk segments in document order with loop context: an N3 extends the
most recent N1 party, a PID describes the most recent line item, an
AK4 details the most recent AK3. The 856 parser runs a hierarchical
state walk over HL levels S, O, P and I; items found under a pack are
surfaced on the pack and flattened into the shipment's item list.

A missing mandatory beginning segment (BEG, BAK, BSN, BIG, AK1) is an
error scoped to that set. Any other absence leaves the field unset.

All scalar fields keep their wire text: quantities, prices and dates
are strings, exactly as sent, so projecting and re-emitting a record
never reformats a trading partner's numbers.

# Writing

Every typed record implements Segments, the inverse projection:

	set := envelope.NewTransactionSet(envelope.SetPurchaseOrder, po.Segments()...)

# Acknowledgments

Acknowledge builds one 997 per functional group from a parse outcome;
AK5 and AK9 codes reflect the error findings scoped to each group and
set. Warnings never reject.
*/
package transaction
