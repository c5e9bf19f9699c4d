package canonical

import "github.com/sirosfoundation/go-x12/pkg/transaction"

// Shared conversions between the transaction-level records and the
// canonical schema. The To direction writes the raw Code values back,
// so unknown codes survive both ways.

func partyFrom(p transaction.Party) Party {
	return Party{
		Role:         classify(partyRoles, p.Code),
		Name:         p.Name,
		IDType:       classify(partyIDTypes, p.IDQual),
		ID:           p.ID,
		AddressLines: p.Address,
		City:         p.City,
		Region:       p.State,
		PostalCode:   p.Zip,
		Country:      p.Country,
	}
}

func partyTo(p Party) transaction.Party {
	return transaction.Party{
		Code:    p.Role.Value,
		Name:    p.Name,
		IDQual:  p.IDType.Value,
		ID:      p.ID,
		Address: p.AddressLines,
		City:    p.City,
		State:   p.Region,
		Zip:     p.PostalCode,
		Country: p.Country,
	}
}

func partiesFrom(ps []transaction.Party) []Party {
	var out []Party
	for _, p := range ps {
		out = append(out, partyFrom(p))
	}
	return out
}

func partiesTo(ps []Party) []transaction.Party {
	var out []transaction.Party
	for _, p := range ps {
		out = append(out, partyTo(p))
	}
	return out
}

func referenceFrom(r transaction.Reference) Reference {
	return Reference{
		Type:        classify(referenceTypes, r.Qualifier),
		Value:       r.Value,
		Description: r.Description,
	}
}

func referenceTo(r Reference) transaction.Reference {
	return transaction.Reference{
		Qualifier:   r.Type.Value,
		Value:       r.Value,
		Description: r.Description,
	}
}

func referencesFrom(rs []transaction.Reference) []Reference {
	var out []Reference
	for _, r := range rs {
		out = append(out, referenceFrom(r))
	}
	return out
}

func referencesTo(rs []Reference) []transaction.Reference {
	var out []transaction.Reference
	for _, r := range rs {
		out = append(out, referenceTo(r))
	}
	return out
}

func productIDsFrom(ids []transaction.ProductID) []ProductID {
	var out []ProductID
	for _, id := range ids {
		out = append(out, ProductID{Type: classify(productIDTypes, id.Qualifier), Value: id.ID})
	}
	return out
}

func productIDsTo(ids []ProductID) []transaction.ProductID {
	var out []transaction.ProductID
	for _, id := range ids {
		out = append(out, transaction.ProductID{Qualifier: id.Type.Value, ID: id.Value})
	}
	return out
}

func lineFrom(lineNo, qty, unit, price string, ids []transaction.ProductID, desc string) LineItem {
	return LineItem{
		LineNumber:  lineNo,
		Quantity:    qty,
		Unit:        classify(unitCodes, unit),
		UnitPrice:   price,
		ProductIDs:  productIDsFrom(ids),
		Description: desc,
	}
}
