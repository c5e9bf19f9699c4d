package transaction

import (
	"strconv"

	"github.com/sirosfoundation/go-x12/pkg/envelope"
)

// Invoice810 is the typed view of an 810 Invoice.
type Invoice810 struct {
	Date          string // BIG01, invoice date
	InvoiceNumber string // BIG02
	PODate        string // BIG03
	PONumber      string // BIG04
	Currency      string // CUR02
	References    []Reference
	Dates         []Date
	Parties       []Party
	Terms         *Terms810
	Items         []Item810
	TotalAmount   string // TDS01, in implied decimal cents
	Taxes         []Tax810
	ItemCount     string // CTT01
}

// Terms810 carries the ITD payment terms.
type Terms810 struct {
	Type         string // ITD01, e.g. 01 basic, 08 basic discount
	BasisDate    string // ITD02
	DiscountPct  string // ITD03
	DiscountDays string // ITD05
	NetDays      string // ITD07
}

// Item810 is one IT1 loop.
type Item810 struct {
	LineNumber  string      // IT101
	Quantity    string      // IT102
	Unit        string      // IT103
	UnitPrice   string      // IT104
	BasisCode   string      // IT105
	ProductIDs  []ProductID // IT106 onward, qualifier/id pairs
	Description string      // PID05 of the item's free-form PID
}

// Tax810 is one TXI segment.
type Tax810 struct {
	Type   string // TXI01, e.g. ST state sales tax
	Amount string // TXI02
}

// Parse810 walks an 810 body in document order. BIG is mandatory.
func Parse810(set *envelope.TransactionSet) (*Invoice810, []envelope.Error) {
	inv := &Invoice810{}
	var errs []envelope.Error
	var parties partyLoop
	bigSeen := false
	item := -1

	for _, seg := range set.Segments {
		switch seg.ID {
		case "BIG":
			bigSeen = true
			inv.Date = seg.At(1)
			inv.InvoiceNumber = seg.At(2)
			inv.PODate = seg.At(3)
			inv.PONumber = seg.At(4)
		case "CUR":
			inv.Currency = seg.At(2)
		case "REF":
			if item < 0 {
				inv.References = append(inv.References, referenceFrom(seg))
			}
		case "DTM":
			if item < 0 {
				inv.Dates = append(inv.Dates, dateFrom(seg))
			}
		case "N1":
			parties.open(seg)
		case "N3", "N4":
			parties.extend(seg)
		case "ITD":
			inv.Terms = &Terms810{
				Type:         seg.At(1),
				BasisDate:    seg.At(2),
				DiscountPct:  seg.At(3),
				DiscountDays: seg.At(5),
				NetDays:      seg.At(7),
			}
		case "IT1":
			inv.Items = append(inv.Items, Item810{
				LineNumber: seg.At(1),
				Quantity:   seg.At(2),
				Unit:       seg.At(3),
				UnitPrice:  seg.At(4),
				BasisCode:  seg.At(5),
				ProductIDs: productIDs(seg, 6),
			})
			item = len(inv.Items) - 1
		case "PID":
			if item >= 0 && seg.At(1) == "F" {
				inv.Items[item].Description = seg.At(5)
			}
		case "TDS":
			inv.TotalAmount = seg.At(1)
		case "TXI":
			inv.Taxes = append(inv.Taxes, Tax810{Type: seg.At(1), Amount: seg.At(2)})
		case "CTT":
			inv.ItemCount = seg.At(1)
		}
	}

	if !bigSeen {
		errs = append(errs, missingSegment("BIG", envelope.SetInvoice))
	}
	inv.Parties = parties.parties
	return inv, errs
}

// Segments renders the invoice back to its segment sequence.
func (inv *Invoice810) Segments() []*envelope.Segment {
	segs := []*envelope.Segment{
		envelope.NewSegment("BIG", inv.Date, inv.InvoiceNumber, inv.PODate, inv.PONumber),
	}
	if inv.Currency != "" {
		segs = append(segs, envelope.NewSegment("CUR", "SE", inv.Currency))
	}
	for _, r := range inv.References {
		segs = append(segs, r.segment())
	}
	for _, p := range inv.Parties {
		segs = append(segs, p.segments()...)
	}
	if t := inv.Terms; t != nil {
		segs = append(segs, envelope.NewSegment("ITD", t.Type, t.BasisDate, t.DiscountPct, "", t.DiscountDays, "", t.NetDays))
	}
	for _, d := range inv.Dates {
		segs = append(segs, d.segment())
	}
	for _, it := range inv.Items {
		segs = append(segs, it.segments()...)
	}
	segs = append(segs, envelope.NewSegment("TDS", inv.TotalAmount))
	for _, tx := range inv.Taxes {
		segs = append(segs, envelope.NewSegment("TXI", tx.Type, tx.Amount))
	}
	count := inv.ItemCount
	if count == "" {
		count = strconv.Itoa(len(inv.Items))
	}
	return append(segs, envelope.NewSegment("CTT", count))
}

func (it Item810) segments() []*envelope.Segment {
	values := appendPairs([]string{it.LineNumber, it.Quantity, it.Unit, it.UnitPrice, it.BasisCode}, it.ProductIDs)
	segs := []*envelope.Segment{envelope.NewSegment("IT1", values...)}
	if it.Description != "" {
		segs = append(segs, envelope.NewSegment("PID", "F", "", "", "", it.Description))
	}
	return segs
}
