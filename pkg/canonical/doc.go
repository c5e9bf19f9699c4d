// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package canonical maps typed transaction sets to format-neutral
business objects.

Order, Invoice and Shipment are the shapes the rest of a trading
application works with; they carry no X12 segment layout and are shared
with sibling EDI dialects so documents from different partners resolve
to one model. Every wire code that has business meaning travels as a
Code value: the raw code plus its resolved meaning when the finite
translation tables know it. Unknown codes pass through with Known
false; nothing is silently dropped or rejected.

The mappers are intentionally lossy against full EDI detail, but
stable: any field the canonical schema carries survives a canonical to
X12 to canonical round trip unchanged.
*/
package canonical
