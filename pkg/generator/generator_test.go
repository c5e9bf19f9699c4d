package generator

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirosfoundation/go-x12/pkg/envelope"
	"github.com/sirosfoundation/go-x12/pkg/parser"
)

const testISA = "ISA*00*          *00*          *ZZ*SENDER         *ZZ*RECEIVER       *240101*1200*^*005010*000000001*0*T*:"

func po850Doc() string {
	return strings.Join([]string{
		testISA,
		"GS*PO*SENDER*RECEIVER*20240101*1200*1*X*005010",
		"ST*850*0001",
		"BEG*00*SA*PO12345**20240101",
		"PO1*1*10*EA*15.5**VP*WIDGET-1",
		"PID*F****Blue widget, 10cm",
		"SE*5*0001",
		"GE*1*1",
		"IEA*1*000000001",
	}, "~") + "~"
}

func TestGenerate_RoundTrip(t *testing.T) {
	doc := po850Doc()
	result := parser.Parse(doc)
	require.NotNil(t, result.Interchange)
	require.Empty(t, result.Errors)

	assert.Equal(t, doc, Generate(result.Interchange, Options{}))
}

func TestGenerate_RoundTripCustomDelimiters(t *testing.T) {
	doc := strings.Join([]string{
		"ISA|00|          |00|          |ZZ|SENDER         |ZZ|RECEIVER       |240101|1200|!|005010|000000001|0|T|>",
		"GS|PO|SENDER|RECEIVER|20240101|1200|1|X|005010",
		"ST|850|0001",
		"BEG|00|SA|PO-9||20240101",
		"PID|F|08||A>B",
		"SE|4|0001",
		"GE|1|1",
		"IEA|1|000000001",
	}, "'") + "'"

	result := parser.Parse(doc)
	require.NotNil(t, result.Interchange)
	require.Empty(t, result.Errors)
	assert.Equal(t, byte('|'), result.Interchange.Delims.Element)

	assert.Equal(t, doc, Generate(result.Interchange, Options{}),
		"the document's own separators travel with the interchange")
}

func TestGenerate_LineBreaks(t *testing.T) {
	result := parser.Parse(po850Doc())
	require.NotNil(t, result.Interchange)

	out := Generate(result.Interchange, Options{LineBreaks: true})
	assert.True(t, strings.HasSuffix(out, "~\n"))
	assert.Len(t, strings.Split(strings.TrimSuffix(out, "\n"), "\n"), 9, "one segment per line")

	// Cosmetic only: the broken output reparses to the same document.
	again := parser.Parse(out)
	require.NotNil(t, again.Interchange)
	assert.Empty(t, again.Errors)
	assert.Empty(t, again.Warnings)
	assert.Equal(t, po850Doc(), Generate(again.Interchange, Options{}))
}

func TestGenerate_FixedWidthISA(t *testing.T) {
	ic, err := envelope.NewInterchange(
		envelope.WithSender(envelope.Identity{Qualifier: "ZZ", ID: "ACME"}),
		envelope.WithReceiver(envelope.Identity{Qualifier: "01", ID: "004321519"}),
		envelope.WithUsageIndicator("T"),
		envelope.WithDate(time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)),
	).AddGroup("PO", envelope.NewTransactionSet(envelope.SetPurchaseOrder,
		envelope.NewSegment("BEG", "00", "SA", "PO-100", "", "20240301"),
	)).Build()
	require.NoError(t, err)

	out := Generate(ic, Options{})
	isa := out[:strings.IndexByte(out, '~')]
	assert.Len(t, isa, 106)
	assert.Contains(t, isa, "*ACME           *", "sender id is space-padded to 15")
	assert.Contains(t, isa, "*000000001*", "control number is zero-padded to 9")
	assert.Contains(t, isa, "*240301*0930*")

	result := parser.Parse(out)
	require.NotNil(t, result.Interchange)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, "ACME", result.Interchange.Header.SenderID)
	assert.Equal(t, "004321519", result.Interchange.Header.ReceiverID)
}

func TestGenerate_Version4010Repetition(t *testing.T) {
	ic, err := envelope.NewInterchange(
		envelope.WithSender(envelope.Identity{Qualifier: "ZZ", ID: "A"}),
		envelope.WithReceiver(envelope.Identity{Qualifier: "ZZ", ID: "B"}),
		envelope.WithVersion(envelope.Version4010),
	).Build()
	require.NoError(t, err)

	out := Generate(ic, Options{})
	assert.Contains(t, out, "*U*004010*", "004010 reserves ISA11 for the standards identifier")
}

func TestGenerate_TrailingEmptyTrimmed(t *testing.T) {
	d := envelope.DefaultDelimiters()

	seg := envelope.NewSegment("REF", "DP", "038", "", "")
	assert.Equal(t, "REF*DP*038", EncodeSegment(seg, d))

	seg = envelope.NewSegment("BEG", "00", "SA", "PO-1", "", "20240101")
	assert.Equal(t, "BEG*00*SA*PO-1**20240101", EncodeSegment(seg, d), "mid-segment empties stay")
}

func TestEncodeSegment_Composite(t *testing.T) {
	d := envelope.DefaultDelimiters()

	seg := &envelope.Segment{ID: "PID", Elements: []envelope.Element{
		{Value: "F"},
		{Components: []string{"VI", "CO"}},
	}}
	assert.Equal(t, "PID*F*VI:CO", EncodeSegment(seg, d))

	seg = &envelope.Segment{ID: "SVC", Elements: []envelope.Element{
		{Repeats: []envelope.Element{
			{Components: []string{"A", "1"}},
			{Value: "B"},
		}},
	}}
	assert.Equal(t, "SVC*A:1^B", EncodeSegment(seg, d))
}

func TestGenerate_PreservesParsedTrailers(t *testing.T) {
	doc := strings.Replace(po850Doc(), "GE*1*1~", "GE*2*1~", 1)
	result := parser.Parse(doc)
	require.NotNil(t, result.Interchange)
	require.Len(t, result.Warnings, 1)

	out := Generate(result.Interchange, Options{})
	assert.Contains(t, out, "~GE*2*1~", "wire trailer values survive the round trip")
}

func TestGenerate_DefaultDelimitersFallback(t *testing.T) {
	ic := &envelope.Interchange{Header: envelope.ISAHeader{
		Version:       envelope.Version5010,
		ControlNumber: "7",
	}}

	out := Generate(ic, Options{})
	assert.True(t, strings.HasPrefix(out, "ISA*"))
	assert.Contains(t, out, "*^*005010*000000007*")
	assert.True(t, strings.HasSuffix(out, "IEA*0*000000007~"))
}
