package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirosfoundation/go-x12/pkg/envelope"
	"github.com/sirosfoundation/go-x12/pkg/parser"
)

const testISA = "ISA*00*          *00*          *ZZ*SENDER         *ZZ*RECEIVER       *240101*1200*^*005010*000000001*0*T*:"

func buildDoc(segments ...string) string {
	all := append([]string{testISA}, segments...)
	return strings.Join(all, "~") + "~"
}

func po850Doc() string {
	return buildDoc(
		"GS*PO*SENDER*RECEIVER*20240101*1200*1*X*005010",
		"ST*850*0001",
		"BEG*00*SA*PO12345**20240101",
		"PO1*1*10*EA*15.5**VP*WIDGET-1",
		"SE*4*0001",
		"GE*1*1",
		"IEA*1*000000001",
	)
}

func bodySet(code string, raw ...string) *envelope.TransactionSet {
	set := &envelope.TransactionSet{Header: envelope.STHeader{Code: code, ControlNumber: "0001"}}
	for _, r := range raw {
		set.Segments = append(set.Segments, parser.DecodeSegment(r, envelope.DefaultDelimiters()))
	}
	return set
}

func TestInterchange_CleanDocument(t *testing.T) {
	res := parser.Parse(po850Doc())
	require.NotNil(t, res.Interchange)
	require.Empty(t, res.Errors)

	assert.Empty(t, Interchange(res.Interchange))
}

func TestInterchange_BadISAFields(t *testing.T) {
	cases := []struct {
		name    string
		from    string
		to      string
		element int
		code    string
	}{
		{"sender qualifier", "*ZZ*SENDER", "*QQ*SENDER", 5, envelope.CodeBadElement},
		{"receiver qualifier", "*ZZ*RECEIVER", "*QQ*RECEIVER", 7, envelope.CodeBadElement},
		{"date shape", "*240101*1200*", "*24010A*1200*", 9, envelope.CodeBadElement},
		{"time shape", "*240101*1200*", "*240101*12 0*", 10, envelope.CodeBadElement},
		{"usage indicator", "*0*T*:", "*0*X*:", 15, envelope.CodeBadElement},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := strings.Replace(po850Doc(), tc.from, tc.to, 1)
			res := parser.Parse(doc)
			require.NotNil(t, res.Interchange)

			findings := Interchange(res.Interchange)
			require.Len(t, findings, 1)
			assert.Equal(t, tc.code, findings[0].Code)
			assert.Equal(t, envelope.SeverityError, findings[0].Severity)
			assert.Equal(t, envelope.SegISA, findings[0].SegmentID)
			assert.Equal(t, tc.element, findings[0].Element)
			assert.Zero(t, findings[0].Path)
		})
	}
}

func TestInterchange_GroupCodeMismatch(t *testing.T) {
	doc := strings.Replace(po850Doc(), "GS*PO*", "GS*IN*", 1)
	res := parser.Parse(doc)
	require.NotNil(t, res.Interchange)

	findings := Interchange(res.Interchange)
	require.Len(t, findings, 1)
	f := findings[0]
	assert.Equal(t, envelope.SeverityWarning, f.Severity)
	assert.Equal(t, envelope.SegGS, f.SegmentID)
	assert.Equal(t, 1, f.Element)
	assert.Equal(t, envelope.Path{Group: 1}, f.Path)
	assert.Contains(t, f.Message, "850")
}

func TestInterchange_UnknownFunctionalID(t *testing.T) {
	doc := strings.Replace(po850Doc(), "GS*PO*", "GS*QQ*", 1)
	res := parser.Parse(doc)
	require.NotNil(t, res.Interchange)

	findings := Interchange(res.Interchange)
	require.Len(t, findings, 1)
	assert.Equal(t, envelope.SeverityWarning, findings[0].Severity)
	assert.Contains(t, findings[0].Message, "QQ")
}

func TestInterchange_SetPathStamped(t *testing.T) {
	doc := buildDoc(
		"GS*PO*SENDER*RECEIVER*20240101*1200*1*X*005010",
		"ST*850*0001",
		"BEG*00*SA*PO1**20240101",
		"SE*3*0001",
		"ST*850*0002",
		"BEG*00*XX*PO2**20240101",
		"SE*3*0002",
		"GE*2*1",
		"IEA*1*000000001",
	)
	res := parser.Parse(doc)
	require.NotNil(t, res.Interchange)
	require.Empty(t, res.Errors)

	findings := Interchange(res.Interchange)
	require.Len(t, findings, 1)
	f := findings[0]
	assert.Equal(t, "BEG", f.SegmentID)
	assert.Equal(t, 2, f.Element)
	assert.Equal(t, envelope.Path{Group: 1, Set: 2}, f.Path)
}

func TestTransactionSet_MissingMandatorySegment(t *testing.T) {
	findings := TransactionSet(bodySet("850", "PO1*1*10*EA*15.5**VP*WIDGET-1"), 2, 3)
	require.Len(t, findings, 1)
	f := findings[0]
	assert.Equal(t, envelope.CodeMissingSegment, f.Code)
	assert.Equal(t, envelope.SeverityError, f.Severity)
	assert.Equal(t, "BEG", f.SegmentID)
	assert.Equal(t, envelope.Path{Group: 2, Set: 3}, f.Path)
}

func TestTransactionSet_ElementRules(t *testing.T) {
	cases := []struct {
		name     string
		code     string
		segments []string
		segID    string
		element  int
		severity envelope.Severity
	}{
		{
			name:     "empty mandatory element",
			code:     "850",
			segments: []string{"BEG*00*SA*PO1"},
			segID:    "BEG", element: 5, severity: envelope.SeverityError,
		},
		{
			name:     "malformed date",
			code:     "850",
			segments: []string{"BEG*00*SA*PO1**2024010"},
			segID:    "BEG", element: 5, severity: envelope.SeverityError,
		},
		{
			name:     "code outside list",
			code:     "850",
			segments: []string{"BEG*ZZ*SA*PO1**20240101"},
			segID:    "BEG", element: 1, severity: envelope.SeverityError,
		},
		{
			name:     "non-numeric quantity",
			code:     "850",
			segments: []string{"BEG*00*SA*PO1**20240101", "PO1*1*abc*EA"},
			segID:    "PO1", element: 2, severity: envelope.SeverityError,
		},
		{
			name:     "overlong po number",
			code:     "850",
			segments: []string{"BEG*00*SA*AAAAAAAAAAAAAAAAAAAAAAA**20240101"},
			segID:    "BEG", element: 3, severity: envelope.SeverityWarning,
		},
		{
			name:     "malformed time",
			code:     "856",
			segments: []string{"BSN*00*SHIP1*20240110*12Z0", "HL*1**S*0"},
			segID:    "BSN", element: 4, severity: envelope.SeverityError,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			findings := TransactionSet(bodySet(tc.code, tc.segments...), 1, 1)
			require.Len(t, findings, 1)
			f := findings[0]
			assert.Equal(t, envelope.CodeBadElement, f.Code)
			assert.Equal(t, tc.severity, f.Severity)
			assert.Equal(t, tc.segID, f.SegmentID)
			assert.Equal(t, tc.element, f.Element)
		})
	}
}

func TestTransactionSet_TooManyOccurrences(t *testing.T) {
	findings := TransactionSet(bodySet("850",
		"BEG*00*SA*PO1**20240101",
		"BEG*00*SA*PO2**20240102",
	), 1, 1)
	require.Len(t, findings, 1)
	assert.Equal(t, envelope.CodeUnexpectedSegment, findings[0].Code)
	assert.Equal(t, envelope.SeverityWarning, findings[0].Severity)
	assert.Equal(t, "BEG", findings[0].SegmentID)
}

func TestTransactionSet_UnsupportedCode(t *testing.T) {
	findings := TransactionSet(bodySet("940", "W05*N*538686"), 1, 1)
	require.Len(t, findings, 1)
	f := findings[0]
	assert.Equal(t, envelope.CodeUnsupportedSet, f.Code)
	assert.Equal(t, envelope.SeverityWarning, f.Severity)
	assert.Equal(t, envelope.Path{Group: 1, Set: 1}, f.Path)
}

func TestNumericShapes(t *testing.T) {
	valid := []string{"0", "10", "-3", "15.5", "-0.25", "775"}
	for _, v := range valid {
		assert.True(t, isNumeric(v), v)
	}
	invalid := []string{"", ".", "-", "1.2.3", "12a", "1 0"}
	for _, v := range invalid {
		assert.False(t, isNumeric(v), v)
	}
}
