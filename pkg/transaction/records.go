package transaction

import (
	"github.com/sirosfoundation/go-x12/pkg/envelope"
)

// Party is one N1 loop: a named party role with optional address.
type Party struct {
	Code    string   // N101 entity identifier, e.g. ST, BT, SE, VN
	Name    string   // N102
	IDQual  string   // N103 identification code qualifier
	ID      string   // N104
	Address []string // N3 address lines
	City    string   // N401
	State   string   // N402
	Zip     string   // N403
	Country string   // N404
}

// Reference is one REF segment.
type Reference struct {
	Qualifier   string // REF01
	Value       string // REF02
	Description string // REF03
}

// Date is one DTM segment.
type Date struct {
	Qualifier string // DTM01, e.g. 002 delivery requested, 011 shipped
	Date      string // DTM02, CCYYMMDD
	Time      string // DTM03
}

// ProductID is one qualifier/identifier pair off a line item.
type ProductID struct {
	Qualifier string // e.g. VP vendor part, BP buyer part, UP UPC
	ID        string
}

// segments renders the party as its N1/N3/N4 loop.
func (p Party) segments() []*envelope.Segment {
	segs := []*envelope.Segment{
		envelope.NewSegment("N1", p.Code, p.Name, p.IDQual, p.ID),
	}
	for _, line := range p.Address {
		segs = append(segs, envelope.NewSegment("N3", line))
	}
	if p.City != "" || p.State != "" || p.Zip != "" || p.Country != "" {
		segs = append(segs, envelope.NewSegment("N4", p.City, p.State, p.Zip, p.Country))
	}
	return segs
}

func (r Reference) segment() *envelope.Segment {
	return envelope.NewSegment("REF", r.Qualifier, r.Value, r.Description)
}

func (d Date) segment() *envelope.Segment {
	return envelope.NewSegment("DTM", d.Qualifier, d.Date, d.Time)
}

// partyLoop tracks the open N1 loop while walking segments. N3 and N4
// extend the most recently opened party.
type partyLoop struct {
	parties []Party
}

func (l *partyLoop) open(seg *envelope.Segment) {
	l.parties = append(l.parties, Party{
		Code:   seg.At(1),
		Name:   seg.At(2),
		IDQual: seg.At(3),
		ID:     seg.At(4),
	})
}

func (l *partyLoop) extend(seg *envelope.Segment) {
	if len(l.parties) == 0 {
		return
	}
	p := &l.parties[len(l.parties)-1]
	switch seg.ID {
	case "N3":
		for pos := 1; pos <= 2; pos++ {
			if line := seg.At(pos); line != "" {
				p.Address = append(p.Address, line)
			}
		}
	case "N4":
		p.City = seg.At(1)
		p.State = seg.At(2)
		p.Zip = seg.At(3)
		p.Country = seg.At(4)
	}
}

func referenceFrom(seg *envelope.Segment) Reference {
	return Reference{Qualifier: seg.At(1), Value: seg.At(2), Description: seg.At(3)}
}

func dateFrom(seg *envelope.Segment) Date {
	return Date{Qualifier: seg.At(1), Date: seg.At(2), Time: seg.At(3)}
}

// productIDs reads qualifier/id pairs starting at the given element
// position, the layout PO1, IT1 and LIN share.
func productIDs(seg *envelope.Segment, start int) []ProductID {
	var ids []ProductID
	for pos := start; ; pos += 2 {
		qual, id := seg.At(pos), seg.At(pos+1)
		if qual == "" && id == "" {
			if pos > len(seg.Elements) {
				break
			}
			continue
		}
		ids = append(ids, ProductID{Qualifier: qual, ID: id})
	}
	return ids
}

// appendPairs renders qualifier/id pairs back onto an element list.
func appendPairs(values []string, ids []ProductID) []string {
	for _, id := range ids {
		values = append(values, id.Qualifier, id.ID)
	}
	return values
}
