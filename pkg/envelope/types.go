package envelope

// Segment ids of the three envelope layers.
const (
	SegISA = "ISA"
	SegIEA = "IEA"
	SegGS  = "GS"
	SegGE  = "GE"
	SegST  = "ST"
	SegSE  = "SE"
)

// Interchange control version numbers (ISA12) accepted by the parser.
const (
	Version4010 = "004010"
	Version5010 = "005010"
)

// Transaction set codes with typed parser support.
const (
	SetPurchaseOrder = "850"
	SetPOAck         = "855"
	SetShipNotice    = "856"
	SetInvoice       = "810"
	SetFunctionalAck = "997"
)

// FunctionalCodes maps each supported transaction set code to its
// functional identifier code (GS01).
var FunctionalCodes = map[string]string{
	SetPurchaseOrder: "PO",
	SetPOAck:         "PR",
	SetShipNotice:    "SH",
	SetInvoice:       "IN",
	SetFunctionalAck: "FA",
}

// Interchange is one complete ISA...IEA envelope with its delimiter set.
type Interchange struct {
	Header  ISAHeader
	Groups  []*FunctionalGroup
	Trailer IEATrailer
	Delims  Delimiters
}

// ISAHeader holds the sixteen fixed-width ISA elements.
type ISAHeader struct {
	AuthQualifier     string // ISA01
	AuthInformation   string // ISA02
	SecurityQualifier string // ISA03
	SecurityInfo      string // ISA04
	SenderQualifier   string // ISA05
	SenderID          string // ISA06, space-padded to 15 on the wire
	ReceiverQualifier string // ISA07
	ReceiverID        string // ISA08, space-padded to 15 on the wire
	Date              string // ISA09, YYMMDD
	Time              string // ISA10, HHMM
	RepetitionSep     string // ISA11, "U" on 004010 interchanges
	Version           string // ISA12
	ControlNumber     string // ISA13, zero-padded to 9 digits
	AckRequested      string // ISA14, "0" or "1"
	UsageIndicator    string // ISA15, P, T or I
	ComponentSep      string // ISA16
}

// IEATrailer closes the interchange envelope.
type IEATrailer struct {
	GroupCount    string // IEA01
	ControlNumber string // IEA02, should match ISA13
}

// FunctionalGroup is one GS...GE envelope.
type FunctionalGroup struct {
	Header  GSHeader
	Sets    []*TransactionSet
	Trailer GETrailer
}

// GSHeader holds the GS elements.
type GSHeader struct {
	FunctionalCode string // GS01, e.g. PO, IN, SH, FA
	SenderCode     string // GS02
	ReceiverCode   string // GS03
	Date           string // GS04, CCYYMMDD
	Time           string // GS05
	ControlNumber  string // GS06
	AgencyCode     string // GS07, almost always "X"
	VersionCode    string // GS08, e.g. 004010
}

// GETrailer closes a functional group.
type GETrailer struct {
	SetCount      string // GE01, should equal the number of contained sets
	ControlNumber string // GE02, should match GS06
}

// TransactionSet is one ST...SE envelope. Segments holds only the body;
// the ST and SE segments themselves are represented by Header and Trailer.
type TransactionSet struct {
	Header   STHeader
	Segments []*Segment
	Trailer  SETrailer
}

// STHeader holds the ST elements.
type STHeader struct {
	Code          string // ST01, e.g. 850
	ControlNumber string // ST02, zero-padded to 4 digits on the wire
	ConventionRef string // ST03, implementation convention reference, optional
}

// SETrailer closes a transaction set.
type SETrailer struct {
	SegmentCount  string // SE01, counts body segments plus ST and SE
	ControlNumber string // SE02, should match ST02
}

// Segment is one decoded body segment.
type Segment struct {
	ID       string
	Elements []Element
	Raw      string
}

// Element is one segment element. Value always holds the raw element text.
// Repeats is set when the repetition separator occurred in the element;
// Components is set when the component separator occurred and the element
// does not repeat. Both are nil for a simple element.
type Element struct {
	Value      string
	Components []string
	Repeats    []Element
}

// Identity addresses one trading partner on the ISA and GS envelopes.
type Identity struct {
	Qualifier string // interchange id qualifier, e.g. ZZ, 01, 14
	ID        string // interchange id, also used as the GS application code
}

// NewSegment builds a simple segment from plain element values.
func NewSegment(id string, values ...string) *Segment {
	seg := &Segment{ID: id, Elements: make([]Element, len(values))}
	for i, v := range values {
		seg.Elements[i] = Element{Value: v}
	}
	return seg
}

// At returns the value at the 1-based element position, or "" when the
// segment is too short. X12 treats a trailing empty element and an absent
// one as equivalent.
func (s *Segment) At(pos int) string {
	if pos < 1 || pos > len(s.Elements) {
		return ""
	}
	return s.Elements[pos-1].Value
}

// ComponentsAt returns the component values at the 1-based element
// position. A simple element yields its whole value as the only component.
func (s *Segment) ComponentsAt(pos int) []string {
	if pos < 1 || pos > len(s.Elements) {
		return nil
	}
	el := s.Elements[pos-1]
	if len(el.Components) > 0 {
		return el.Components
	}
	return []string{el.Value}
}

// TransactionSets returns every set in the interchange in document order.
func (ic *Interchange) TransactionSets() []*TransactionSet {
	var sets []*TransactionSet
	for _, g := range ic.Groups {
		sets = append(sets, g.Sets...)
	}
	return sets
}

// SegmentCount returns the wire segment count of the whole interchange,
// envelopes included.
func (ic *Interchange) SegmentCount() int {
	n := 2 // ISA and IEA
	for _, g := range ic.Groups {
		n += 2 // GS and GE
		for _, s := range g.Sets {
			n += 2 + len(s.Segments)
		}
	}
	return n
}
