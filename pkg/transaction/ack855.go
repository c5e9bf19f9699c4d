package transaction

import (
	"strconv"

	"github.com/sirosfoundation/go-x12/pkg/envelope"
)

// POAcknowledgment855 is the typed view of an 855 Purchase Order
// Acknowledgment.
type POAcknowledgment855 struct {
	Purpose    string // BAK01
	AckType    string // BAK02, e.g. AD acknowledge with detail
	PONumber   string // BAK03
	PODate     string // BAK04
	AckDate    string // BAK09
	References []Reference
	Dates      []Date
	Parties    []Party
	Items      []ItemAck855
	ItemCount  string // CTT01
}

// ItemAck855 is one PO1 loop of an 855, with its line-level ACK
// statuses.
type ItemAck855 struct {
	LineNumber  string
	Quantity    string
	Unit        string
	UnitPrice   string
	BasisCode   string
	ProductIDs  []ProductID
	Description string
	Statuses    []ItemStatus855
}

// ItemStatus855 is one ACK segment: a status code with the quantity it
// applies to.
type ItemStatus855 struct {
	Status   string // ACK01, e.g. IA item accepted, IR item rejected
	Quantity string // ACK02
	Unit     string // ACK03
}

// Parse855 walks an 855 body in document order. BAK is mandatory. ACK
// segments attach to the most recent PO1 line and are dropped when none
// is open.
func Parse855(set *envelope.TransactionSet) (*POAcknowledgment855, []envelope.Error) {
	ack := &POAcknowledgment855{}
	var errs []envelope.Error
	var parties partyLoop
	bakSeen := false
	item := -1

	for _, seg := range set.Segments {
		switch seg.ID {
		case "BAK":
			bakSeen = true
			ack.Purpose = seg.At(1)
			ack.AckType = seg.At(2)
			ack.PONumber = seg.At(3)
			ack.PODate = seg.At(4)
			ack.AckDate = seg.At(9)
		case "REF":
			if item < 0 {
				ack.References = append(ack.References, referenceFrom(seg))
			}
		case "DTM":
			if item < 0 {
				ack.Dates = append(ack.Dates, dateFrom(seg))
			}
		case "N1":
			parties.open(seg)
		case "N3", "N4":
			parties.extend(seg)
		case "PO1":
			ack.Items = append(ack.Items, ItemAck855{
				LineNumber: seg.At(1),
				Quantity:   seg.At(2),
				Unit:       seg.At(3),
				UnitPrice:  seg.At(4),
				BasisCode:  seg.At(5),
				ProductIDs: productIDs(seg, 6),
			})
			item = len(ack.Items) - 1
		case "ACK":
			if item >= 0 {
				ack.Items[item].Statuses = append(ack.Items[item].Statuses, ItemStatus855{
					Status:   seg.At(1),
					Quantity: seg.At(2),
					Unit:     seg.At(3),
				})
			}
		case "PID":
			if item >= 0 && seg.At(1) == "F" {
				ack.Items[item].Description = seg.At(5)
			}
		case "CTT":
			ack.ItemCount = seg.At(1)
		}
	}

	if !bakSeen {
		errs = append(errs, missingSegment("BAK", envelope.SetPOAck))
	}
	ack.Parties = parties.parties
	return ack, errs
}

// Segments renders the acknowledgment back to its segment sequence.
func (ack *POAcknowledgment855) Segments() []*envelope.Segment {
	segs := []*envelope.Segment{
		envelope.NewSegment("BAK", ack.Purpose, ack.AckType, ack.PONumber, ack.PODate, "", "", "", "", ack.AckDate),
	}
	for _, r := range ack.References {
		segs = append(segs, r.segment())
	}
	for _, d := range ack.Dates {
		segs = append(segs, d.segment())
	}
	for _, p := range ack.Parties {
		segs = append(segs, p.segments()...)
	}
	for _, it := range ack.Items {
		segs = append(segs, it.segments()...)
	}
	count := ack.ItemCount
	if count == "" {
		count = strconv.Itoa(len(ack.Items))
	}
	return append(segs, envelope.NewSegment("CTT", count))
}

func (it ItemAck855) segments() []*envelope.Segment {
	values := appendPairs([]string{it.LineNumber, it.Quantity, it.Unit, it.UnitPrice, it.BasisCode}, it.ProductIDs)
	segs := []*envelope.Segment{envelope.NewSegment("PO1", values...)}
	for _, st := range it.Statuses {
		segs = append(segs, envelope.NewSegment("ACK", st.Status, st.Quantity, st.Unit))
	}
	if it.Description != "" {
		segs = append(segs, envelope.NewSegment("PID", "F", "", "", "", it.Description))
	}
	return segs
}
