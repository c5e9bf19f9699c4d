package canonical

import "github.com/sirosfoundation/go-x12/pkg/transaction"

// ShipmentFrom856 maps the first shipment of a typed 856 to the
// canonical shipment. Multi-shipment notices are rare; callers that
// need the rest walk the typed record directly.
func ShipmentFrom856(n *transaction.ShipNotice856) *Shipment {
	out := &Shipment{
		ID:      n.ShipmentID,
		Date:    n.Date,
		Time:    n.Time,
		Purpose: classify(purposeCodes, n.Purpose),
	}
	if len(n.Shipments) == 0 {
		return out
	}
	s := n.Shipments[0]
	out.PackagingCode = s.PackagingCode
	out.PackageCount = s.LadingQuantity
	out.Weight = s.Weight
	out.WeightUnit = classify(unitCodes, s.WeightUnit)
	out.Parties = partiesFrom(s.Parties)
	out.References = referencesFrom(s.References)
	if c := s.Carrier; c != nil {
		out.Carrier = &Carrier{
			IDType:  classify(carrierIDTypes, c.Qualifier),
			ID:      c.Code,
			Method:  classify(transportMethods, c.Method),
			Routing: c.Routing,
		}
	}

	nested := make(map[*transaction.Item856]bool)
	for _, o := range s.Orders {
		so := ShippedOrder{
			Number:     o.PONumber,
			Date:       o.PODate,
			References: referencesFrom(o.References),
		}
		for _, p := range o.Packs {
			so.Packages = append(so.Packages, packageFrom(p, nested))
		}
		for _, it := range o.Items {
			nested[it] = true
			so.Lines = append(so.Lines, packedItemFrom(it))
		}
		out.Orders = append(out.Orders, so)
	}
	for _, p := range s.Packs {
		out.Packages = append(out.Packages, packageFrom(p, nested))
	}
	for _, it := range s.Items {
		if !nested[it] {
			out.Lines = append(out.Lines, packedItemFrom(it))
		}
	}
	return out
}

// ShipmentTo856 maps a canonical shipment back onto a typed
// single-shipment 856 with the standard shipment/order/pack/item
// structure code.
func ShipmentTo856(s *Shipment) *transaction.ShipNotice856 {
	ship := &transaction.Shipment856{
		PackagingCode:  s.PackagingCode,
		LadingQuantity: s.PackageCount,
		Weight:         s.Weight,
		WeightUnit:     s.WeightUnit.Value,
		Parties:        partiesTo(s.Parties),
		References:     referencesTo(s.References),
	}
	if c := s.Carrier; c != nil {
		ship.Carrier = &transaction.Carrier856{
			Qualifier: c.IDType.Value,
			Code:      c.ID,
			Method:    c.Method.Value,
			Routing:   c.Routing,
		}
	}
	for _, so := range s.Orders {
		o := &transaction.Order856{
			PONumber:   so.Number,
			PODate:     so.Date,
			References: referencesTo(so.References),
		}
		for _, pkg := range so.Packages {
			o.Packs = append(o.Packs, packTo(pkg, ship))
		}
		for _, l := range so.Lines {
			it := packedItemTo(l)
			o.Items = append(o.Items, it)
			ship.Items = append(ship.Items, it)
		}
		ship.Orders = append(ship.Orders, o)
	}
	for _, pkg := range s.Packages {
		ship.Packs = append(ship.Packs, packTo(pkg, ship))
	}
	for _, l := range s.Lines {
		ship.Items = append(ship.Items, packedItemTo(l))
	}
	return &transaction.ShipNotice856{
		Purpose:       s.Purpose.Value,
		ShipmentID:    s.ID,
		Date:          s.Date,
		Time:          s.Time,
		StructureCode: "0001",
		Shipments:     []*transaction.Shipment856{ship},
	}
}

func packageFrom(p *transaction.Pack856, nested map[*transaction.Item856]bool) Package {
	var pkg Package
	for _, m := range p.Marks {
		pkg.Marks = append(pkg.Marks, Mark{Type: classify(markTypes, m.Qualifier), Value: m.Value})
	}
	for _, it := range p.Items {
		nested[it] = true
		pkg.Lines = append(pkg.Lines, packedItemFrom(it))
	}
	return pkg
}

func packTo(pkg Package, ship *transaction.Shipment856) *transaction.Pack856 {
	p := &transaction.Pack856{}
	for _, m := range pkg.Marks {
		p.Marks = append(p.Marks, transaction.Mark856{Qualifier: m.Type.Value, Value: m.Value})
	}
	for _, l := range pkg.Lines {
		it := packedItemTo(l)
		p.Items = append(p.Items, it)
		ship.Items = append(ship.Items, it)
	}
	return p
}

func packedItemFrom(it *transaction.Item856) PackedItem {
	return PackedItem{
		LineNumber:  it.LineNumber,
		Quantity:    it.Quantity,
		Unit:        classify(unitCodes, it.Unit),
		ProductIDs:  productIDsFrom(it.ProductIDs),
		Description: it.Description,
	}
}

func packedItemTo(l PackedItem) *transaction.Item856 {
	return &transaction.Item856{
		LineNumber:  l.LineNumber,
		Quantity:    l.Quantity,
		Unit:        l.Unit.Value,
		ProductIDs:  productIDsTo(l.ProductIDs),
		Description: l.Description,
	}
}
