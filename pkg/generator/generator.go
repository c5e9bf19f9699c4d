package generator

import (
	"strconv"
	"strings"

	"github.com/sirosfoundation/go-x12/pkg/envelope"
)

// Fixed element widths of the ISA segment.
const (
	widthQualifier = 2
	widthAuthInfo  = 10
	widthPartyID   = 15
	widthDate      = 6
	widthTime      = 4
	widthVersion   = 6
	widthControl   = 9

	// setControlWidth is the minimum width of ST02 and SE02.
	setControlWidth = 4
)

// Options control cosmetic aspects of the output.
type Options struct {
	// LineBreaks inserts a newline after every segment terminator.
	// Protocol-insignificant; parsers skip the breaks.
	LineBreaks bool
}

// Generate writes the interchange as X12 text using the separator set
// it carries. Trailer counts and control numbers present on the
// structure are emitted verbatim; empty ones are computed from the
// actual structure, which is the normal path for built interchanges.
func Generate(ic *envelope.Interchange, opts Options) string {
	d := ic.Delims
	if d.Element == 0 {
		d = envelope.DefaultDelimiters()
	}

	var b strings.Builder
	write := func(seg string) {
		b.WriteString(seg)
		b.WriteByte(d.Terminator)
		if opts.LineBreaks {
			b.WriteByte('\n')
		}
	}

	write(encodeISA(ic.Header, d))
	for _, g := range ic.Groups {
		write(encodeGS(g.Header, d))
		for _, set := range g.Sets {
			write(encodeST(set.Header, d))
			for _, seg := range set.Segments {
				write(EncodeSegment(seg, d))
			}
			write(encodeSE(set, d))
		}
		write(encodeGE(g, d))
	}
	write(encodeIEA(ic, d))
	return b.String()
}

// EncodeSegment reassembles one body segment: components joined by the
// subelement separator, repeats by the repetition separator, elements
// by the element separator. Trailing empty elements are trimmed here;
// mid-segment empties stay.
func EncodeSegment(seg *envelope.Segment, d envelope.Delimiters) string {
	fields := make([]string, 0, len(seg.Elements)+1)
	fields = append(fields, seg.ID)
	for _, el := range seg.Elements {
		fields = append(fields, encodeElement(el, d))
	}
	for len(fields) > 1 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	return strings.Join(fields, string(d.Element))
}

func encodeElement(el envelope.Element, d envelope.Delimiters) string {
	if len(el.Repeats) > 0 {
		parts := make([]string, len(el.Repeats))
		for i, r := range el.Repeats {
			parts[i] = encodeComposite(r, d)
		}
		return strings.Join(parts, string(d.Repetition))
	}
	return encodeComposite(el, d)
}

func encodeComposite(el envelope.Element, d envelope.Delimiters) string {
	if len(el.Components) > 0 {
		return strings.Join(el.Components, string(d.Subelement))
	}
	return el.Value
}

func encodeISA(h envelope.ISAHeader, d envelope.Delimiters) string {
	repetition := h.RepetitionSep
	if repetition == "" {
		if h.Version == envelope.Version4010 {
			repetition = "U"
		} else {
			repetition = string(d.Repetition)
		}
	}
	fields := []string{
		envelope.SegISA,
		padRight(h.AuthQualifier, widthQualifier),
		padRight(h.AuthInformation, widthAuthInfo),
		padRight(h.SecurityQualifier, widthQualifier),
		padRight(h.SecurityInfo, widthAuthInfo),
		padRight(h.SenderQualifier, widthQualifier),
		padRight(h.SenderID, widthPartyID),
		padRight(h.ReceiverQualifier, widthQualifier),
		padRight(h.ReceiverID, widthPartyID),
		padRight(h.Date, widthDate),
		padRight(h.Time, widthTime),
		padRight(repetition, 1),
		padRight(h.Version, widthVersion),
		padControl(h.ControlNumber, widthControl),
		padRight(h.AckRequested, 1),
		padRight(h.UsageIndicator, 1),
		string(d.Subelement),
	}
	return strings.Join(fields, string(d.Element))
}

func encodeIEA(ic *envelope.Interchange, d envelope.Delimiters) string {
	count := ic.Trailer.GroupCount
	if count == "" {
		count = strconv.Itoa(len(ic.Groups))
	}
	control := ic.Trailer.ControlNumber
	if control == "" {
		control = ic.Header.ControlNumber
	}
	return strings.Join([]string{envelope.SegIEA, count, padControl(control, widthControl)}, string(d.Element))
}

func encodeGS(h envelope.GSHeader, d envelope.Delimiters) string {
	return strings.Join([]string{
		envelope.SegGS,
		h.FunctionalCode,
		h.SenderCode,
		h.ReceiverCode,
		h.Date,
		h.Time,
		h.ControlNumber,
		h.AgencyCode,
		h.VersionCode,
	}, string(d.Element))
}

func encodeGE(g *envelope.FunctionalGroup, d envelope.Delimiters) string {
	count := g.Trailer.SetCount
	if count == "" {
		count = strconv.Itoa(len(g.Sets))
	}
	control := g.Trailer.ControlNumber
	if control == "" {
		control = g.Header.ControlNumber
	}
	return strings.Join([]string{envelope.SegGE, count, control}, string(d.Element))
}

func encodeST(h envelope.STHeader, d envelope.Delimiters) string {
	fields := []string{envelope.SegST, h.Code, zeroPad(h.ControlNumber, setControlWidth)}
	if h.ConventionRef != "" {
		fields = append(fields, h.ConventionRef)
	}
	return strings.Join(fields, string(d.Element))
}

func encodeSE(set *envelope.TransactionSet, d envelope.Delimiters) string {
	count := set.Trailer.SegmentCount
	if count == "" {
		count = strconv.Itoa(len(set.Segments) + 2)
	}
	control := set.Trailer.ControlNumber
	if control == "" {
		control = set.Header.ControlNumber
	}
	return strings.Join([]string{envelope.SegSE, count, zeroPad(control, setControlWidth)}, string(d.Element))
}

// padRight left-justifies s in a field of the given width, truncating
// when too long. ISA elements are fixed-width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

// padControl zero-pads a numeric control number to its fixed width.
// Non-numeric values fall back to space padding so the ISA stays
// fixed-width regardless.
func padControl(s string, width int) string {
	if len(s) >= width {
		return s
	}
	if !numeric(s) {
		return padRight(s, width)
	}
	return strings.Repeat("0", width-len(s)) + s
}

// zeroPad pads numeric set control numbers to a minimum width and
// leaves everything else untouched. ST02 and SE02 are variable-length
// on the wire with a four-digit minimum.
func zeroPad(s string, width int) string {
	if len(s) >= width || !numeric(s) {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

func numeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
