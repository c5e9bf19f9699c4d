package canonical

import "github.com/sirosfoundation/go-x12/pkg/transaction"

// OrderFrom850 maps a typed 850 purchase order to the canonical order.
func OrderFrom850(po *transaction.PurchaseOrder850) *Order {
	o := &Order{
		Number:     po.PONumber,
		Date:       po.Date,
		Purpose:    classify(purposeCodes, po.Purpose),
		Type:       classify(orderTypes, po.Type),
		Currency:   po.Currency,
		Parties:    partiesFrom(po.Parties),
		References: referencesFrom(po.References),
	}
	for _, it := range po.Items {
		o.Lines = append(o.Lines, lineFrom(it.LineNumber, it.Quantity, it.Unit, it.UnitPrice, it.ProductIDs, it.Description))
	}
	return o
}

// OrderTo850 maps a canonical order back onto a typed 850. The item
// count is left for the segment writer to compute.
func OrderTo850(o *Order) *transaction.PurchaseOrder850 {
	po := &transaction.PurchaseOrder850{
		Purpose:    o.Purpose.Value,
		Type:       o.Type.Value,
		PONumber:   o.Number,
		Date:       o.Date,
		Currency:   o.Currency,
		Parties:    partiesTo(o.Parties),
		References: referencesTo(o.References),
	}
	for _, l := range o.Lines {
		po.Items = append(po.Items, transaction.Item850{
			LineNumber:  l.LineNumber,
			Quantity:    l.Quantity,
			Unit:        l.Unit.Value,
			UnitPrice:   l.UnitPrice,
			ProductIDs:  productIDsTo(l.ProductIDs),
			Description: l.Description,
		})
	}
	return po
}

// OrderFrom855 projects an 855 acknowledgment onto the order it
// answers, for matching against the buyer's own canonical order. Line
// ack statuses have no canonical home and stay on the typed record, so
// this direction has no inverse.
func OrderFrom855(ack *transaction.POAcknowledgment855) *Order {
	o := &Order{
		Number:     ack.PONumber,
		Date:       ack.PODate,
		Purpose:    classify(purposeCodes, ack.Purpose),
		Parties:    partiesFrom(ack.Parties),
		References: referencesFrom(ack.References),
	}
	for _, it := range ack.Items {
		o.Lines = append(o.Lines, lineFrom(it.LineNumber, it.Quantity, it.Unit, it.UnitPrice, it.ProductIDs, it.Description))
	}
	return o
}
