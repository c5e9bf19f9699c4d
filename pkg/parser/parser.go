package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirosfoundation/go-x12/pkg/envelope"
	"github.com/sirosfoundation/go-x12/pkg/token"
)

// MaxDocumentSize bounds the input accepted by Parse. X12 business
// documents are KB-scale; anything larger is rejected before delimiter
// extraction to avoid pathological allocation on hostile input.
const MaxDocumentSize = 8 << 20

// isaElementCount is the number of elements a complete ISA carries.
const isaElementCount = 16

// Result carries whatever Parse could recover plus every finding,
// partitioned by severity. Interchange is nil only for the fatal
// conditions listed on Parse.
type Result struct {
	Interchange *envelope.Interchange
	Errors      []envelope.Error
	Warnings    []envelope.Error
}

// Parse builds the envelope tree for one X12 document. It never
// panics on malformed input: findings are collected and parsing
// continues with whatever is recoverable. Only four conditions
// suppress the interchange entirely: empty input, input shorter than a
// complete ISA, input not starting with ISA, and a missing IEA
// trailer. Every control-number and count cross-check failure is a
// warning, never an error.
func Parse(text string) *Result {
	text = strings.TrimSpace(token.Normalize(text))
	if text == "" {
		return fatal(envelope.Error{
			Code:     envelope.CodeTooShort,
			Severity: envelope.SeverityError,
			Message:  "document is empty",
		})
	}
	if len(text) > MaxDocumentSize {
		return fatal(envelope.Error{
			Code:     envelope.CodeTooLarge,
			Severity: envelope.SeverityError,
			Message:  fmt.Sprintf("document is %d bytes, the parser accepts at most %d", len(text), MaxDocumentSize),
		})
	}

	delims, findings := envelope.ExtractDelimiters(text)
	if envelope.HasErrors(findings) {
		return fatal(findings...)
	}

	p := &parse{
		delims: delims,
		segs:   collectSegments(token.Scan(text, delims), delims),
	}
	p.run()

	errs, warns := envelope.Split(p.findings)
	return &Result{Interchange: p.ic, Errors: errs, Warnings: warns}
}

func fatal(findings ...envelope.Error) *Result {
	errs, warns := envelope.Split(findings)
	return &Result{Errors: errs, Warnings: warns}
}

// rawSegment is one tokenized segment before envelope folding.
type rawSegment struct {
	id     string
	fields []string
	raw    string
	line   int
}

// at returns the 1-based element, "" when the segment is too short.
func (r rawSegment) at(pos int) string {
	if pos < 1 || pos > len(r.fields) {
		return ""
	}
	return r.fields[pos-1]
}

// collectSegments folds the token stream back into flat segments. Only
// segment ids and whole elements matter here; the repetition and
// component structure is rebuilt later by DecodeSegment for body
// segments.
func collectSegments(tokens []token.Token, delims envelope.Delimiters) []rawSegment {
	var segs []rawSegment
	for _, tok := range tokens {
		switch tok.Type {
		case token.TypeSegmentID:
			segs = append(segs, rawSegment{id: tok.Value, raw: tok.Value, line: tok.Line})
		case token.TypeElement:
			s := &segs[len(segs)-1]
			s.fields = append(s.fields, tok.Value)
			s.raw += string(delims.Element) + tok.Value
		}
	}
	return segs
}

type parse struct {
	delims   envelope.Delimiters
	segs     []rawSegment
	ic       *envelope.Interchange
	findings []envelope.Error
}

func (p *parse) add(e envelope.Error) {
	p.findings = append(p.findings, e)
}

func (p *parse) run() {
	iea := -1
	for i := 1; i < len(p.segs); i++ {
		if p.segs[i].id == envelope.SegIEA {
			iea = i
			break
		}
	}
	if iea < 0 {
		p.add(envelope.Error{
			Code:      envelope.CodeMissingIEA,
			Severity:  envelope.SeverityError,
			Message:   "interchange has no IEA trailer",
			SegmentID: envelope.SegIEA,
		})
		return
	}

	p.ic = &envelope.Interchange{Delims: p.delims}
	p.parseISA(p.segs[0])

	t := p.segs[iea]
	p.ic.Trailer = envelope.IEATrailer{GroupCount: t.at(1), ControlNumber: t.at(2)}

	p.parseGroups(1, iea)

	for _, s := range p.segs[iea+1:] {
		p.add(envelope.Error{
			Code:      envelope.CodeUnexpectedSegment,
			Severity:  envelope.SeverityWarning,
			Message:   fmt.Sprintf("segment %s (line %d) after the interchange trailer was ignored", s.id, s.line),
			SegmentID: s.id,
		})
	}

	if !controlEqual(p.ic.Trailer.ControlNumber, p.ic.Header.ControlNumber) {
		p.add(envelope.Error{
			Code:      envelope.CodeControlMismatch,
			Severity:  envelope.SeverityWarning,
			Message:   fmt.Sprintf("IEA02 control number %q does not match ISA13 %q", p.ic.Trailer.ControlNumber, p.ic.Header.ControlNumber),
			SegmentID: envelope.SegIEA,
			Element:   2,
		})
	}
	if !countMatches(p.ic.Trailer.GroupCount, len(p.ic.Groups)) {
		p.add(envelope.Error{
			Code:      envelope.CodeCountMismatch,
			Severity:  envelope.SeverityWarning,
			Message:   fmt.Sprintf("IEA01 claims %s functional groups, interchange contains %d", p.ic.Trailer.GroupCount, len(p.ic.Groups)),
			SegmentID: envelope.SegIEA,
			Element:   1,
		})
	}
}

func (p *parse) parseISA(seg rawSegment) {
	if len(seg.fields) < isaElementCount {
		p.add(envelope.Error{
			Code:      envelope.CodeMalformedISA,
			Severity:  envelope.SeverityError,
			Message:   fmt.Sprintf("ISA segment has %d elements, expected %d", len(seg.fields), isaElementCount),
			SegmentID: envelope.SegISA,
		})
	}

	h := &p.ic.Header
	h.AuthQualifier = seg.at(1)
	h.AuthInformation = strings.TrimRight(seg.at(2), " ")
	h.SecurityQualifier = seg.at(3)
	h.SecurityInfo = strings.TrimRight(seg.at(4), " ")
	h.SenderQualifier = seg.at(5)
	h.SenderID = strings.TrimRight(seg.at(6), " ")
	h.ReceiverQualifier = seg.at(7)
	h.ReceiverID = strings.TrimRight(seg.at(8), " ")
	h.Date = seg.at(9)
	h.Time = seg.at(10)
	h.RepetitionSep = seg.at(11)
	h.Version = seg.at(12)
	h.ControlNumber = seg.at(13)
	h.AckRequested = seg.at(14)
	h.UsageIndicator = seg.at(15)
	h.ComponentSep = seg.at(16)

	if len(seg.fields) < isaElementCount {
		return
	}
	switch h.Version {
	case envelope.Version4010, envelope.Version5010:
	default:
		p.add(envelope.Error{
			Code:      envelope.CodeUnsupportedVersion,
			Severity:  envelope.SeverityError,
			Message:   fmt.Sprintf("interchange version %q is not supported, expected %s or %s", h.Version, envelope.Version4010, envelope.Version5010),
			SegmentID: envelope.SegISA,
			Element:   12,
		})
	}
}

// parseGroups extracts functional groups from [start, end). Each GS
// opens a group; its GE is located by matchTrailer so nested
// header/trailer pairs cannot steal it. A group missing its GE damages
// only itself.
func (p *parse) parseGroups(start, end int) {
	i := start
	for i < end {
		seg := p.segs[i]
		if seg.id != envelope.SegGS {
			p.add(envelope.Error{
				Code:      envelope.CodeUnexpectedSegment,
				Severity:  envelope.SeverityWarning,
				Message:   fmt.Sprintf("segment %s (line %d) outside any functional group was ignored", seg.id, seg.line),
				SegmentID: seg.id,
			})
			i++
			continue
		}

		groupIdx := len(p.ic.Groups) + 1
		g := &envelope.FunctionalGroup{Header: envelope.GSHeader{
			FunctionalCode: seg.at(1),
			SenderCode:     seg.at(2),
			ReceiverCode:   seg.at(3),
			Date:           seg.at(4),
			Time:           seg.at(5),
			ControlNumber:  seg.at(6),
			AgencyCode:     seg.at(7),
			VersionCode:    seg.at(8),
		}}
		p.ic.Groups = append(p.ic.Groups, g)

		ge := p.matchTrailer(i+1, end, envelope.SegGS, envelope.SegGE)
		bodyEnd, next := ge, ge+1
		if ge < 0 {
			p.add(envelope.Error{
				Code:      envelope.CodeMissingGE,
				Severity:  envelope.SeverityError,
				Message:   fmt.Sprintf("functional group %q has no GE trailer", g.Header.ControlNumber),
				SegmentID: envelope.SegGE,
				Path:      envelope.Path{Group: groupIdx},
			})
			bodyEnd, next = end, end
		}

		p.parseSets(g, groupIdx, i+1, bodyEnd)

		if ge >= 0 {
			t := p.segs[ge]
			g.Trailer = envelope.GETrailer{SetCount: t.at(1), ControlNumber: t.at(2)}
			if !controlEqual(g.Trailer.ControlNumber, g.Header.ControlNumber) {
				p.add(envelope.Error{
					Code:      envelope.CodeControlMismatch,
					Severity:  envelope.SeverityWarning,
					Message:   fmt.Sprintf("GE02 control number %q does not match GS06 %q", g.Trailer.ControlNumber, g.Header.ControlNumber),
					SegmentID: envelope.SegGE,
					Element:   2,
					Path:      envelope.Path{Group: groupIdx},
				})
			}
			if !countMatches(g.Trailer.SetCount, len(g.Sets)) {
				p.add(envelope.Error{
					Code:      envelope.CodeCountMismatch,
					Severity:  envelope.SeverityWarning,
					Message:   fmt.Sprintf("GE01 claims %s transaction sets, group contains %d", g.Trailer.SetCount, len(g.Sets)),
					SegmentID: envelope.SegGE,
					Element:   1,
					Path:      envelope.Path{Group: groupIdx},
				})
			}
		}
		i = next
	}
}

// parseSets extracts transaction sets from the group body [start, end).
func (p *parse) parseSets(g *envelope.FunctionalGroup, groupIdx, start, end int) {
	i := start
	for i < end {
		seg := p.segs[i]
		if seg.id != envelope.SegST {
			p.add(envelope.Error{
				Code:      envelope.CodeUnexpectedSegment,
				Severity:  envelope.SeverityWarning,
				Message:   fmt.Sprintf("segment %s (line %d) outside any transaction set was ignored", seg.id, seg.line),
				SegmentID: seg.id,
				Path:      envelope.Path{Group: groupIdx},
			})
			i++
			continue
		}

		setIdx := len(g.Sets) + 1
		set := &envelope.TransactionSet{Header: envelope.STHeader{
			Code:          seg.at(1),
			ControlNumber: seg.at(2),
			ConventionRef: seg.at(3),
		}}
		g.Sets = append(g.Sets, set)

		se := p.matchTrailer(i+1, end, envelope.SegST, envelope.SegSE)
		bodyEnd, next := se, se+1
		if se < 0 {
			p.add(envelope.Error{
				Code:      envelope.CodeMissingSE,
				Severity:  envelope.SeverityError,
				Message:   fmt.Sprintf("transaction set %q has no SE trailer", set.Header.ControlNumber),
				SegmentID: envelope.SegSE,
				Path:      envelope.Path{Group: groupIdx, Set: setIdx},
			})
			bodyEnd, next = end, end
		}

		for _, body := range p.segs[i+1 : bodyEnd] {
			set.Segments = append(set.Segments, DecodeSegment(body.raw, p.delims))
		}

		if se >= 0 {
			t := p.segs[se]
			set.Trailer = envelope.SETrailer{SegmentCount: t.at(1), ControlNumber: t.at(2)}
			if !controlEqual(set.Trailer.ControlNumber, set.Header.ControlNumber) {
				p.add(envelope.Error{
					Code:      envelope.CodeControlMismatch,
					Severity:  envelope.SeverityWarning,
					Message:   fmt.Sprintf("SE02 control number %q does not match ST02 %q", set.Trailer.ControlNumber, set.Header.ControlNumber),
					SegmentID: envelope.SegSE,
					Element:   2,
					Path:      envelope.Path{Group: groupIdx, Set: setIdx},
				})
			}
			if !countMatches(set.Trailer.SegmentCount, len(set.Segments)+2) {
				p.add(envelope.Error{
					Code:      envelope.CodeCountMismatch,
					Severity:  envelope.SeverityWarning,
					Message:   fmt.Sprintf("SE01 claims %s segments, set contains %d including ST and SE", set.Trailer.SegmentCount, len(set.Segments)+2),
					SegmentID: envelope.SegSE,
					Element:   1,
					Path:      envelope.Path{Group: groupIdx, Set: setIdx},
				})
			}
		}
		i = next
	}
}

// matchTrailer scans [start, end) for the trailer closing the envelope
// opened immediately before start, counting nested header/trailer
// pairs of the same kind. Returns -1 when the trailer is missing.
func (p *parse) matchTrailer(start, end int, header, trailer string) int {
	depth := 0
	for i := start; i < end; i++ {
		switch p.segs[i].id {
		case header:
			depth++
		case trailer:
			if depth == 0 {
				return i
			}
			depth--
		}
	}
	return -1
}

// controlEqual compares control numbers the way trading partners do:
// leading zeros and surrounding spaces carry no meaning, so
// "000000001" and "1" match.
func controlEqual(a, b string) bool {
	return normalizeControl(a) == normalizeControl(b)
}

func normalizeControl(s string) string {
	return strings.TrimLeft(strings.TrimSpace(s), "0")
}

func countMatches(claimed string, actual int) bool {
	n, err := strconv.Atoi(strings.TrimSpace(claimed))
	return err == nil && n == actual
}
