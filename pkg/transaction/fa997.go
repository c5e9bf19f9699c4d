package transaction

import (
	"strconv"

	"github.com/sirosfoundation/go-x12/pkg/envelope"
)

// FunctionalAck997 is the typed view of a 997 Functional Acknowledgment.
// One 997 acknowledges one functional group of a received interchange.
type FunctionalAck997 struct {
	FunctionalCode string // AK101, GS01 of the acknowledged group
	GroupControl   string // AK102, GS06 of the acknowledged group
	Sets           []AckedSet997
	AcceptCode     string   // AK901: A accepted, P partially accepted, R rejected
	IncludedSets   string   // AK902
	ReceivedSets   string   // AK903
	AcceptedSets   string   // AK904
	GroupNoteCodes []string // AK905-AK909
}

// AckedSet997 is one AK2 loop, the verdict on a single transaction set.
type AckedSet997 struct {
	Code          string // AK201
	ControlNumber string // AK202
	SegmentErrors []SegmentError997
	AcceptCode    string   // AK501: A accepted, R rejected
	NoteCodes     []string // AK502-AK506
}

// SegmentError997 is one AK3 loop, pointing at a faulty segment.
type SegmentError997 struct {
	SegmentID     string // AK301
	Position      string // AK302, segment position within the set
	LoopID        string // AK303
	ErrorCode     string // AK304
	ElementErrors []ElementError997
}

// ElementError997 is one AK4 segment. AK401 is a composite on the wire:
// element position, optionally followed by the component position.
type ElementError997 struct {
	Position  string
	Component string
	RefNumber string // AK402, data element reference number
	ErrorCode string // AK403
	BadValue  string // AK404, copy of the offending data
}

// Parse997 walks a 997 body in document order. AK1 is mandatory. AK3
// and AK4 attach to the most recent open AK2 loop and are dropped when
// none is open.
func Parse997(set *envelope.TransactionSet) (*FunctionalAck997, []envelope.Error) {
	fa := &FunctionalAck997{}
	var errs []envelope.Error
	ak1Seen := false
	cur, serr := -1, -1

	for _, seg := range set.Segments {
		switch seg.ID {
		case "AK1":
			ak1Seen = true
			fa.FunctionalCode = seg.At(1)
			fa.GroupControl = seg.At(2)
		case "AK2":
			fa.Sets = append(fa.Sets, AckedSet997{
				Code:          seg.At(1),
				ControlNumber: seg.At(2),
			})
			cur, serr = len(fa.Sets)-1, -1
		case "AK3":
			if cur < 0 {
				break
			}
			s := &fa.Sets[cur]
			s.SegmentErrors = append(s.SegmentErrors, SegmentError997{
				SegmentID: seg.At(1),
				Position:  seg.At(2),
				LoopID:    seg.At(3),
				ErrorCode: seg.At(4),
			})
			serr = len(s.SegmentErrors) - 1
		case "AK4":
			if cur < 0 || serr < 0 {
				break
			}
			ee := ElementError997{
				Position:  seg.At(1),
				RefNumber: seg.At(2),
				ErrorCode: seg.At(3),
				BadValue:  seg.At(4),
			}
			if comps := seg.ComponentsAt(1); len(comps) > 0 {
				ee.Position = comps[0]
				if len(comps) > 1 {
					ee.Component = comps[1]
				}
			}
			se := &fa.Sets[cur].SegmentErrors[serr]
			se.ElementErrors = append(se.ElementErrors, ee)
		case "AK5":
			if cur < 0 {
				break
			}
			fa.Sets[cur].AcceptCode = seg.At(1)
			fa.Sets[cur].NoteCodes = noteCodes(seg, 2, 6)
			cur, serr = -1, -1
		case "AK9":
			fa.AcceptCode = seg.At(1)
			fa.IncludedSets = seg.At(2)
			fa.ReceivedSets = seg.At(3)
			fa.AcceptedSets = seg.At(4)
			fa.GroupNoteCodes = noteCodes(seg, 5, 9)
		}
	}

	if !ak1Seen {
		errs = append(errs, missingSegment("AK1", envelope.SetFunctionalAck))
	}
	return fa, errs
}

func noteCodes(seg *envelope.Segment, from, to int) []string {
	var codes []string
	for pos := from; pos <= to; pos++ {
		if v := seg.At(pos); v != "" {
			codes = append(codes, v)
		}
	}
	return codes
}

// Segments renders the acknowledgment back to its segment sequence.
func (fa *FunctionalAck997) Segments() []*envelope.Segment {
	segs := []*envelope.Segment{
		envelope.NewSegment("AK1", fa.FunctionalCode, fa.GroupControl),
	}
	for _, s := range fa.Sets {
		segs = append(segs, envelope.NewSegment("AK2", s.Code, s.ControlNumber))
		for _, se := range s.SegmentErrors {
			segs = append(segs, envelope.NewSegment("AK3", se.SegmentID, se.Position, se.LoopID, se.ErrorCode))
			for _, ee := range se.ElementErrors {
				segs = append(segs, ee.segment())
			}
		}
		segs = append(segs, envelope.NewSegment("AK5", append([]string{s.AcceptCode}, s.NoteCodes...)...))
	}
	tail := append([]string{fa.AcceptCode, fa.IncludedSets, fa.ReceivedSets, fa.AcceptedSets}, fa.GroupNoteCodes...)
	return append(segs, envelope.NewSegment("AK9", tail...))
}

func (ee ElementError997) segment() *envelope.Segment {
	seg := envelope.NewSegment("AK4", ee.Position, ee.RefNumber, ee.ErrorCode, ee.BadValue)
	if ee.Component != "" {
		seg.Elements[0] = envelope.Element{
			Value:      ee.Position + ":" + ee.Component,
			Components: []string{ee.Position, ee.Component},
		}
	}
	return seg
}

// Acknowledge builds one 997 per functional group of a parsed
// interchange, judging each set against the parse and validation
// findings. A set is rejected when an error-severity finding is scoped
// to it, to its group, or to the document as a whole; warnings never
// reject. The findings address envelope structure rather than
// individual segments, so no AK3/AK4 detail is produced.
func Acknowledge(ic *envelope.Interchange, findings []envelope.Error) []*FunctionalAck997 {
	docTainted := false
	for _, f := range findings {
		if f.Severity == envelope.SeverityError && f.Path.Group == 0 {
			docTainted = true
			break
		}
	}

	var acks []*FunctionalAck997
	for gi, g := range ic.Groups {
		group := gi + 1
		groupTainted := docTainted
		for _, f := range findings {
			if f.Severity == envelope.SeverityError && f.Path.Group == group && f.Path.Set == 0 {
				groupTainted = true
				break
			}
		}

		fa := &FunctionalAck997{
			FunctionalCode: g.Header.FunctionalCode,
			GroupControl:   g.Header.ControlNumber,
		}
		accepted := 0
		for si, set := range g.Sets {
			rejected := groupTainted
			for _, f := range findings {
				if f.Severity == envelope.SeverityError && f.Path.Group == group && f.Path.Set == si+1 {
					rejected = true
					break
				}
			}
			code := "A"
			if rejected {
				code = "R"
			} else {
				accepted++
			}
			fa.Sets = append(fa.Sets, AckedSet997{
				Code:          set.Header.Code,
				ControlNumber: set.Header.ControlNumber,
				AcceptCode:    code,
			})
		}

		total := len(g.Sets)
		switch {
		case total == accepted:
			fa.AcceptCode = "A"
		case accepted == 0:
			fa.AcceptCode = "R"
		default:
			fa.AcceptCode = "P"
		}
		fa.IncludedSets = strconv.Itoa(total)
		fa.ReceivedSets = strconv.Itoa(total)
		fa.AcceptedSets = strconv.Itoa(accepted)
		acks = append(acks, fa)
	}
	return acks
}
