package envelope

import (
	"fmt"
	"strconv"
	"time"
)

// InterchangeBuilder assembles an outbound interchange. Control numbers,
// dates and counts that the caller leaves unset are filled in by Build,
// so the common path is a handful of options plus AddGroup calls.
type InterchangeBuilder struct {
	ic       *Interchange
	sender   Identity
	receiver Identity
	now      time.Time
	errors   []error
}

// Option configures an InterchangeBuilder.
type Option func(*InterchangeBuilder)

// NewInterchange creates a builder with the given options applied.
func NewInterchange(opts ...Option) *InterchangeBuilder {
	b := &InterchangeBuilder{
		ic: &Interchange{
			Header: ISAHeader{
				AuthQualifier:     "00",
				SecurityQualifier: "00",
				Version:           Version5010,
				ControlNumber:     "1",
				AckRequested:      "0",
				UsageIndicator:    "P",
			},
			Delims: DefaultDelimiters(),
		},
		now: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// WithSender sets the interchange sender identity (ISA05/ISA06, GS02).
func WithSender(id Identity) Option {
	return func(b *InterchangeBuilder) {
		b.sender = id
	}
}

// WithReceiver sets the interchange receiver identity (ISA07/ISA08, GS03).
func WithReceiver(id Identity) Option {
	return func(b *InterchangeBuilder) {
		b.receiver = id
	}
}

// WithVersion sets the interchange control version (ISA12, GS08 base).
func WithVersion(version string) Option {
	return func(b *InterchangeBuilder) {
		b.ic.Header.Version = version
	}
}

// WithUsageIndicator sets ISA15: P production, T test, I information.
func WithUsageIndicator(usage string) Option {
	return func(b *InterchangeBuilder) {
		b.ic.Header.UsageIndicator = usage
	}
}

// WithControlNumber sets the interchange control number (ISA13, IEA02).
func WithControlNumber(n int) Option {
	return func(b *InterchangeBuilder) {
		if n < 1 {
			b.errors = append(b.errors, fmt.Errorf("interchange control number must be positive, got %d", n))
			return
		}
		b.ic.Header.ControlNumber = strconv.Itoa(n)
	}
}

// WithAckRequested sets ISA14, asking the receiver for a TA1.
func WithAckRequested(requested bool) Option {
	return func(b *InterchangeBuilder) {
		if requested {
			b.ic.Header.AckRequested = "1"
		} else {
			b.ic.Header.AckRequested = "0"
		}
	}
}

// WithDate pins the envelope date and time fields, mainly for tests.
// Without it Build stamps the current UTC time.
func WithDate(t time.Time) Option {
	return func(b *InterchangeBuilder) {
		b.now = t.UTC()
	}
}

// WithDelimiters overrides the separator set used at generation time.
func WithDelimiters(d Delimiters) Option {
	return func(b *InterchangeBuilder) {
		b.ic.Delims = d
	}
}

// AddGroup appends a functional group with the given functional
// identifier code (GS01) wrapping the sets in order.
func (b *InterchangeBuilder) AddGroup(functionalCode string, sets ...*TransactionSet) *InterchangeBuilder {
	b.ic.Groups = append(b.ic.Groups, &FunctionalGroup{
		Header: GSHeader{FunctionalCode: functionalCode},
		Sets:   sets,
	})
	return b
}

// Build finalizes the interchange: identity fields, dates, sequential
// group and set control numbers, and all trailer counts. The result is
// ready for the generator.
func (b *InterchangeBuilder) Build() (*Interchange, error) {
	if len(b.errors) > 0 {
		return nil, b.errors[0]
	}
	if b.sender.ID == "" {
		return nil, fmt.Errorf("sender identity is required")
	}
	if b.receiver.ID == "" {
		return nil, fmt.Errorf("receiver identity is required")
	}
	switch b.ic.Header.Version {
	case Version4010, Version5010:
	default:
		return nil, fmt.Errorf("unsupported interchange version %q", b.ic.Header.Version)
	}

	h := &b.ic.Header
	h.SenderQualifier = b.sender.Qualifier
	h.SenderID = b.sender.ID
	h.ReceiverQualifier = b.receiver.Qualifier
	h.ReceiverID = b.receiver.ID
	h.Date = b.now.Format("060102")
	h.Time = b.now.Format("1504")
	h.ComponentSep = string(b.ic.Delims.Subelement)
	if h.Version == Version4010 {
		h.RepetitionSep = "U"
	} else {
		h.RepetitionSep = string(b.ic.Delims.Repetition)
	}

	setControl := 0
	for gi, g := range b.ic.Groups {
		g.Header.SenderCode = b.sender.ID
		g.Header.ReceiverCode = b.receiver.ID
		g.Header.Date = b.now.Format("20060102")
		g.Header.Time = b.now.Format("1504")
		g.Header.ControlNumber = strconv.Itoa(gi + 1)
		g.Header.AgencyCode = "X"
		if g.Header.VersionCode == "" {
			g.Header.VersionCode = h.Version
		}
		for _, s := range g.Sets {
			setControl++
			if s.Header.ControlNumber == "" {
				s.Header.ControlNumber = fmt.Sprintf("%04d", setControl)
			}
			s.Trailer.SegmentCount = strconv.Itoa(len(s.Segments) + 2)
			s.Trailer.ControlNumber = s.Header.ControlNumber
		}
		g.Trailer.SetCount = strconv.Itoa(len(g.Sets))
		g.Trailer.ControlNumber = g.Header.ControlNumber
	}
	b.ic.Trailer.GroupCount = strconv.Itoa(len(b.ic.Groups))
	b.ic.Trailer.ControlNumber = h.ControlNumber

	return b.ic, nil
}

// NewTransactionSet wraps body segments in an ST/SE envelope for the
// given transaction set code. Control numbers and the segment count are
// assigned by InterchangeBuilder.Build.
func NewTransactionSet(code string, segments ...*Segment) *TransactionSet {
	return &TransactionSet{
		Header:   STHeader{Code: code},
		Segments: segments,
	}
}
