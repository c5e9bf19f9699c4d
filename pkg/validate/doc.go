// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package validate checks parsed interchanges against bounded rule tables.

Validation is declarative: each supported transaction set code maps to a
list of SegmentRule values, each carrying per-element rules for
requiredness, length bounds, a type class and an optional code list.
ISA and GS header fields are checked against the fixed code lists of
X12.5. The tables deliberately cover the envelope-adjacent and
beginning-segment rules a clearinghouse would enforce, not a full
implementation guide.

Every violation is reported as an envelope.Error tagged error or
warning. Validation never mutates the interchange and never aborts:
policy is entirely the caller's. A transaction set code without a table
degrades to a single advisory note rather than rejecting the set.
*/
package validate
