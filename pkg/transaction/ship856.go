package transaction

import (
	"fmt"
	"strconv"

	"github.com/sirosfoundation/go-x12/pkg/envelope"
)

// ShipNotice856 is the typed view of an 856 Advance Ship Notice.
type ShipNotice856 struct {
	Purpose       string // BSN01
	ShipmentID    string // BSN02
	Date          string // BSN03
	Time          string // BSN04
	StructureCode string // BSN05, e.g. 0001 shipment/order/pack/item
	Dates         []Date // DTM before the first HL
	Shipments     []*Shipment856
}

// Shipment856 is one S-level HL loop. Items is the flattened list of
// every item under the shipment regardless of nesting, so callers that
// do not care about the pack structure can range over it directly.
type Shipment856 struct {
	PackagingCode  string // TD101
	LadingQuantity string // TD102
	Weight         string // TD107
	WeightUnit     string // TD108
	Carrier        *Carrier856
	References     []Reference
	Dates          []Date
	Parties        []Party
	Orders         []*Order856
	Packs          []*Pack856 // packs not under any order
	Items          []*Item856 // every item in the shipment
}

// Carrier856 carries the TD5 routing details.
type Carrier856 struct {
	Qualifier string // TD502, e.g. 2 SCAC
	Code      string // TD503
	Method    string // TD504, e.g. M motor
	Routing   string // TD505
}

// Order856 is one O-level HL loop.
type Order856 struct {
	PONumber   string // PRF01
	PODate     string // PRF04
	References []Reference
	Packs      []*Pack856
	Items      []*Item856 // items directly under the order
}

// Pack856 is one P-level HL loop.
type Pack856 struct {
	Marks []Mark856
	Items []*Item856
}

// Mark856 is one MAN segment, a physical marking on the pack.
type Mark856 struct {
	Qualifier string // MAN01, e.g. GM SSCC-18
	Value     string // MAN02
}

// Item856 is one I-level HL loop.
type Item856 struct {
	LineNumber  string      // LIN01
	ProductIDs  []ProductID // LIN02 onward, qualifier/id pairs
	Quantity    string      // SN102
	Unit        string      // SN103
	Description string      // PID05 of the item's free-form PID
}

// shipWalk is the cursor state while walking HL loops. Levels nest by
// recency: each HL repositions the cursor and the segments that follow
// attach to the nearest open level that can hold them.
type shipWalk struct {
	notice  *ShipNotice856
	ship    *Shipment856
	order   *Order856
	pack    *Pack856
	item    *Item856
	parties *partyLoop
}

// Parse856 walks an 856 body in document order. BSN is mandatory. The
// HL hierarchy is reconstructed from the level codes alone; parent
// pointers in HL02 are not trusted.
func Parse856(set *envelope.TransactionSet) (*ShipNotice856, []envelope.Error) {
	n := &ShipNotice856{}
	var errs []envelope.Error
	w := shipWalk{notice: n}
	bsnSeen := false

	for _, seg := range set.Segments {
		switch seg.ID {
		case "BSN":
			bsnSeen = true
			n.Purpose = seg.At(1)
			n.ShipmentID = seg.At(2)
			n.Date = seg.At(3)
			n.Time = seg.At(4)
			n.StructureCode = seg.At(5)
		case "HL":
			if e := w.openLevel(seg); e != nil {
				errs = append(errs, *e)
			}
		case "TD1":
			if s := w.ship; s != nil {
				s.PackagingCode = seg.At(1)
				s.LadingQuantity = seg.At(2)
				s.Weight = seg.At(7)
				s.WeightUnit = seg.At(8)
			}
		case "TD5":
			if s := w.ship; s != nil {
				s.Carrier = &Carrier856{
					Qualifier: seg.At(2),
					Code:      seg.At(3),
					Method:    seg.At(4),
					Routing:   seg.At(5),
				}
			}
		case "PRF":
			if o := w.order; o != nil {
				o.PONumber = seg.At(1)
				o.PODate = seg.At(4)
			}
		case "MAN":
			if p := w.pack; p != nil {
				p.Marks = append(p.Marks, Mark856{Qualifier: seg.At(1), Value: seg.At(2)})
			}
		case "LIN":
			if it := w.item; it != nil {
				it.LineNumber = seg.At(1)
				it.ProductIDs = productIDs(seg, 2)
			}
		case "SN1":
			if it := w.item; it != nil {
				it.Quantity = seg.At(2)
				it.Unit = seg.At(3)
			}
		case "PID":
			if it := w.item; it != nil && seg.At(1) == "F" {
				it.Description = seg.At(5)
			}
		case "REF":
			switch {
			case w.order != nil:
				w.order.References = append(w.order.References, referenceFrom(seg))
			case w.ship != nil:
				w.ship.References = append(w.ship.References, referenceFrom(seg))
			}
		case "DTM":
			if w.ship != nil {
				w.ship.Dates = append(w.ship.Dates, dateFrom(seg))
			} else {
				n.Dates = append(n.Dates, dateFrom(seg))
			}
		case "N1":
			if w.parties != nil {
				w.parties.open(seg)
			}
		case "N3", "N4":
			if w.parties != nil {
				w.parties.extend(seg)
			}
		}
	}
	w.flush()

	if !bsnSeen {
		errs = append(errs, missingSegment("BSN", envelope.SetShipNotice))
	}
	return n, errs
}

func (w *shipWalk) openLevel(seg *envelope.Segment) *envelope.Error {
	w.item = nil
	switch seg.At(3) {
	case "S":
		w.flush()
		w.ship = &Shipment856{}
		w.order, w.pack = nil, nil
		w.parties = &partyLoop{}
		w.notice.Shipments = append(w.notice.Shipments, w.ship)
	case "O":
		w.ensureShipment()
		w.order = &Order856{}
		w.pack = nil
		w.ship.Orders = append(w.ship.Orders, w.order)
	case "P":
		w.ensureShipment()
		w.pack = &Pack856{}
		if w.order != nil {
			w.order.Packs = append(w.order.Packs, w.pack)
		} else {
			w.ship.Packs = append(w.ship.Packs, w.pack)
		}
	case "I":
		w.ensureShipment()
		w.item = &Item856{}
		switch {
		case w.pack != nil:
			w.pack.Items = append(w.pack.Items, w.item)
		case w.order != nil:
			w.order.Items = append(w.order.Items, w.item)
		}
		w.ship.Items = append(w.ship.Items, w.item)
	default:
		return &envelope.Error{
			Code:      envelope.CodeBadElement,
			Severity:  envelope.SeverityWarning,
			Message:   fmt.Sprintf("unknown HL level code %q", seg.At(3)),
			SegmentID: "HL",
			Element:   3,
		}
	}
	return nil
}

// ensureShipment opens an implicit shipment when a lower level arrives
// before any S-level HL, so the data still lands somewhere.
func (w *shipWalk) ensureShipment() {
	if w.ship == nil {
		w.ship = &Shipment856{}
		w.parties = &partyLoop{}
		w.notice.Shipments = append(w.notice.Shipments, w.ship)
	}
}

func (w *shipWalk) flush() {
	if w.ship != nil && w.parties != nil {
		w.ship.Parties = w.parties.parties
	}
}

// Segments renders the ship notice back to its segment sequence. HL
// numbers are reassigned sequentially and child codes recomputed, so a
// notice assembled in memory needs no bookkeeping from the caller.
func (n *ShipNotice856) Segments() []*envelope.Segment {
	segs := []*envelope.Segment{
		envelope.NewSegment("BSN", n.Purpose, n.ShipmentID, n.Date, n.Time, n.StructureCode),
	}
	for _, d := range n.Dates {
		segs = append(segs, d.segment())
	}
	next := 1
	for _, s := range n.Shipments {
		segs = s.render(segs, &next)
	}
	return segs
}

func (s *Shipment856) render(segs []*envelope.Segment, next *int) []*envelope.Segment {
	emitted := make(map[*Item856]bool)
	direct := 0
	for _, it := range s.Items {
		if !s.nested(it) {
			direct++
		}
	}

	num := *next
	*next++
	segs = append(segs, hlSegment(num, 0, "S", len(s.Orders)+len(s.Packs)+direct > 0))
	if s.PackagingCode != "" || s.LadingQuantity != "" || s.Weight != "" || s.WeightUnit != "" {
		segs = append(segs, envelope.NewSegment("TD1", s.PackagingCode, s.LadingQuantity, "", "", "", "", s.Weight, s.WeightUnit))
	}
	if c := s.Carrier; c != nil {
		segs = append(segs, envelope.NewSegment("TD5", "", c.Qualifier, c.Code, c.Method, c.Routing))
	}
	for _, r := range s.References {
		segs = append(segs, r.segment())
	}
	for _, d := range s.Dates {
		segs = append(segs, d.segment())
	}
	for _, p := range s.Parties {
		segs = append(segs, p.segments()...)
	}
	for _, o := range s.Orders {
		segs = o.render(segs, next, num, emitted)
	}
	for _, p := range s.Packs {
		segs = p.render(segs, next, num, emitted)
	}
	for _, it := range s.Items {
		if !emitted[it] {
			segs = it.render(segs, next, num)
		}
	}
	return segs
}

// nested reports whether the item sits under one of the shipment's
// orders or packs rather than directly under the shipment.
func (s *Shipment856) nested(item *Item856) bool {
	for _, o := range s.Orders {
		for _, it := range o.Items {
			if it == item {
				return true
			}
		}
		for _, p := range o.Packs {
			for _, it := range p.Items {
				if it == item {
					return true
				}
			}
		}
	}
	for _, p := range s.Packs {
		for _, it := range p.Items {
			if it == item {
				return true
			}
		}
	}
	return false
}

func (o *Order856) render(segs []*envelope.Segment, next *int, parent int, emitted map[*Item856]bool) []*envelope.Segment {
	num := *next
	*next++
	segs = append(segs, hlSegment(num, parent, "O", len(o.Packs)+len(o.Items) > 0))
	if o.PONumber != "" || o.PODate != "" {
		segs = append(segs, envelope.NewSegment("PRF", o.PONumber, "", "", o.PODate))
	}
	for _, r := range o.References {
		segs = append(segs, r.segment())
	}
	for _, p := range o.Packs {
		segs = p.render(segs, next, num, emitted)
	}
	for _, it := range o.Items {
		emitted[it] = true
		segs = it.render(segs, next, num)
	}
	return segs
}

func (p *Pack856) render(segs []*envelope.Segment, next *int, parent int, emitted map[*Item856]bool) []*envelope.Segment {
	num := *next
	*next++
	segs = append(segs, hlSegment(num, parent, "P", len(p.Items) > 0))
	for _, m := range p.Marks {
		segs = append(segs, envelope.NewSegment("MAN", m.Qualifier, m.Value))
	}
	for _, it := range p.Items {
		emitted[it] = true
		segs = it.render(segs, next, num)
	}
	return segs
}

func (it *Item856) render(segs []*envelope.Segment, next *int, parent int) []*envelope.Segment {
	num := *next
	*next++
	segs = append(segs, hlSegment(num, parent, "I", false))
	if it.LineNumber != "" || len(it.ProductIDs) > 0 {
		segs = append(segs, envelope.NewSegment("LIN", appendPairs([]string{it.LineNumber}, it.ProductIDs)...))
	}
	if it.Quantity != "" || it.Unit != "" {
		segs = append(segs, envelope.NewSegment("SN1", it.LineNumber, it.Quantity, it.Unit))
	}
	if it.Description != "" {
		segs = append(segs, envelope.NewSegment("PID", "F", "", "", "", it.Description))
	}
	return segs
}

func hlSegment(num, parent int, level string, hasChild bool) *envelope.Segment {
	parentID := ""
	if parent > 0 {
		parentID = strconv.Itoa(parent)
	}
	child := "0"
	if hasChild {
		child = "1"
	}
	return envelope.NewSegment("HL", strconv.Itoa(num), parentID, level, child)
}
