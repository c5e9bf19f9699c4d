package transaction

import (
	"strconv"

	"github.com/sirosfoundation/go-x12/pkg/envelope"
)

// PurchaseOrder850 is the typed view of an 850 Purchase Order.
type PurchaseOrder850 struct {
	Purpose       string // BEG01, 00 original
	Type          string // BEG02, e.g. SA stand-alone, NE new order
	PONumber      string // BEG03
	ReleaseNumber string // BEG04
	Date          string // BEG05, CCYYMMDD
	Currency      string // CUR02
	References    []Reference
	Dates         []Date
	Parties       []Party
	Items         []Item850
	ItemCount     string // CTT01
}

// Item850 is one PO1 loop.
type Item850 struct {
	LineNumber  string      // PO101
	Quantity    string      // PO102
	Unit        string      // PO103 unit of measure
	UnitPrice   string      // PO104
	BasisCode   string      // PO105 basis of unit price
	ProductIDs  []ProductID // PO106 onward, qualifier/id pairs
	Description string      // PID05 of the item's free-form PID
}

// Parse850 walks an 850 body in document order. BEG is mandatory;
// everything else fills fields when present and stays unset when not.
func Parse850(set *envelope.TransactionSet) (*PurchaseOrder850, []envelope.Error) {
	po := &PurchaseOrder850{}
	var errs []envelope.Error
	var parties partyLoop
	begSeen := false
	item := -1

	for _, seg := range set.Segments {
		switch seg.ID {
		case "BEG":
			begSeen = true
			po.Purpose = seg.At(1)
			po.Type = seg.At(2)
			po.PONumber = seg.At(3)
			po.ReleaseNumber = seg.At(4)
			po.Date = seg.At(5)
		case "CUR":
			po.Currency = seg.At(2)
		case "REF":
			if item < 0 {
				po.References = append(po.References, referenceFrom(seg))
			}
		case "DTM":
			if item < 0 {
				po.Dates = append(po.Dates, dateFrom(seg))
			}
		case "N1":
			parties.open(seg)
		case "N3", "N4":
			parties.extend(seg)
		case "PO1":
			po.Items = append(po.Items, Item850{
				LineNumber: seg.At(1),
				Quantity:   seg.At(2),
				Unit:       seg.At(3),
				UnitPrice:  seg.At(4),
				BasisCode:  seg.At(5),
				ProductIDs: productIDs(seg, 6),
			})
			item = len(po.Items) - 1
		case "PID":
			if item >= 0 && seg.At(1) == "F" {
				po.Items[item].Description = seg.At(5)
			}
		case "CTT":
			po.ItemCount = seg.At(1)
		}
	}

	if !begSeen {
		errs = append(errs, missingSegment("BEG", envelope.SetPurchaseOrder))
	}
	po.Parties = parties.parties
	return po, errs
}

// Segments renders the purchase order back to its segment sequence.
func (po *PurchaseOrder850) Segments() []*envelope.Segment {
	segs := []*envelope.Segment{
		envelope.NewSegment("BEG", po.Purpose, po.Type, po.PONumber, po.ReleaseNumber, po.Date),
	}
	if po.Currency != "" {
		segs = append(segs, envelope.NewSegment("CUR", "BY", po.Currency))
	}
	for _, r := range po.References {
		segs = append(segs, r.segment())
	}
	for _, d := range po.Dates {
		segs = append(segs, d.segment())
	}
	for _, p := range po.Parties {
		segs = append(segs, p.segments()...)
	}
	for _, it := range po.Items {
		segs = append(segs, it.segments()...)
	}
	count := po.ItemCount
	if count == "" {
		count = strconv.Itoa(len(po.Items))
	}
	return append(segs, envelope.NewSegment("CTT", count))
}

func (it Item850) segments() []*envelope.Segment {
	values := appendPairs([]string{it.LineNumber, it.Quantity, it.Unit, it.UnitPrice, it.BasisCode}, it.ProductIDs)
	segs := []*envelope.Segment{envelope.NewSegment("PO1", values...)}
	if it.Description != "" {
		segs = append(segs, envelope.NewSegment("PID", "F", "", "", "", it.Description))
	}
	return segs
}
