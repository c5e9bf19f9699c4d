package canonical

import "github.com/sirosfoundation/go-x12/pkg/transaction"

// InvoiceFrom810 maps a typed 810 invoice to the canonical invoice.
func InvoiceFrom810(inv *transaction.Invoice810) *Invoice {
	out := &Invoice{
		Number:      inv.InvoiceNumber,
		Date:        inv.Date,
		OrderNumber: inv.PONumber,
		OrderDate:   inv.PODate,
		Currency:    inv.Currency,
		Parties:     partiesFrom(inv.Parties),
		References:  referencesFrom(inv.References),
		Total:       inv.TotalAmount,
	}
	if t := inv.Terms; t != nil {
		out.Terms = &PaymentTerms{
			Type:            classify(termsTypes, t.Type),
			BasisDate:       t.BasisDate,
			DiscountPercent: t.DiscountPct,
			DiscountDays:    t.DiscountDays,
			NetDays:         t.NetDays,
		}
	}
	for _, it := range inv.Items {
		out.Lines = append(out.Lines, lineFrom(it.LineNumber, it.Quantity, it.Unit, it.UnitPrice, it.ProductIDs, it.Description))
	}
	for _, tx := range inv.Taxes {
		out.Taxes = append(out.Taxes, Tax{Type: classify(taxTypes, tx.Type), Amount: tx.Amount})
	}
	return out
}

// InvoiceTo810 maps a canonical invoice back onto a typed 810.
func InvoiceTo810(inv *Invoice) *transaction.Invoice810 {
	out := &transaction.Invoice810{
		Date:          inv.Date,
		InvoiceNumber: inv.Number,
		PODate:        inv.OrderDate,
		PONumber:      inv.OrderNumber,
		Currency:      inv.Currency,
		Parties:       partiesTo(inv.Parties),
		References:    referencesTo(inv.References),
		TotalAmount:   inv.Total,
	}
	if t := inv.Terms; t != nil {
		out.Terms = &transaction.Terms810{
			Type:         t.Type.Value,
			BasisDate:    t.BasisDate,
			DiscountPct:  t.DiscountPercent,
			DiscountDays: t.DiscountDays,
			NetDays:      t.NetDays,
		}
	}
	for _, l := range inv.Lines {
		out.Items = append(out.Items, transaction.Item810{
			LineNumber:  l.LineNumber,
			Quantity:    l.Quantity,
			Unit:        l.Unit.Value,
			UnitPrice:   l.UnitPrice,
			ProductIDs:  productIDsTo(l.ProductIDs),
			Description: l.Description,
		})
	}
	for _, tx := range inv.Taxes {
		out.Taxes = append(out.Taxes, transaction.Tax810{Type: tx.Type.Value, Amount: tx.Amount})
	}
	return out
}
