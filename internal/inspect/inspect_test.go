package inspect

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirosfoundation/go-x12/pkg/envelope"
	"github.com/sirosfoundation/go-x12/pkg/parser"
)

const testISA = "ISA*00*          *00*          *ZZ*SENDER         *ZZ*RECEIVER       *240101*1200*^*005010*000000001*0*T*:"

func parseDoc(t *testing.T, segments ...string) *envelope.Interchange {
	t.Helper()
	all := append([]string{testISA}, segments...)
	res := parser.Parse(strings.Join(all, "~") + "~")
	require.NotNil(t, res.Interchange)
	require.Empty(t, res.Errors)
	return res.Interchange
}

func po850Interchange(t *testing.T) *envelope.Interchange {
	t.Helper()
	return parseDoc(t,
		"GS*PO*SENDER*RECEIVER*20240101*1200*1*X*005010",
		"ST*850*0001",
		"BEG*00*SA*PO12345**20240101",
		"PO1*1*10*EA*15.5**VP*WIDGET-1",
		"K3*RED^BLUE",
		"SE*5*0001",
		"GE*1*1",
		"IEA*1*000000001",
	)
}

func TestXML_RendersEnvelopeTree(t *testing.T) {
	out, err := XML(po850Interchange(t))
	require.NoError(t, err)

	assert.Contains(t, out, `<interchange sender="ZZ:SENDER" receiver="ZZ:RECEIVER" version="005010"`)
	assert.Contains(t, out, `<group code="PO" control="1"`)
	assert.Contains(t, out, `<set code="850" control="0001"`)
	assert.Contains(t, out, `<segment id="BEG" position="1">`)
	assert.Contains(t, out, `<element position="1">00</element>`)
	assert.Contains(t, out, `<repeat>RED</repeat>`)
	assert.Contains(t, out, `<repeat>BLUE</repeat>`)
}

func TestXML_CompositeElements(t *testing.T) {
	ic := parseDoc(t,
		"GS*FA*SENDER*RECEIVER*20240101*1200*1*X*005010",
		"ST*997*0001",
		"AK1*PO*1",
		"AK2*850*0001",
		"AK3*REF*2",
		"AK4*3:2*127*7",
		"AK5*R*5",
		"AK9*R*1*1*0",
		"SE*8*0001",
		"GE*1*1",
		"IEA*1*000000001",
	)

	out, err := XML(ic)
	require.NoError(t, err)
	assert.Contains(t, out, `<segment id="AK4"`)
	assert.Contains(t, out, "<component>3</component>")
	assert.Contains(t, out, "<component>2</component>")
}

func TestJSON_RendersEnvelopeTree(t *testing.T) {
	out, err := JSON(po850Interchange(t))
	require.NoError(t, err)

	var view interchangeView
	require.NoError(t, json.Unmarshal([]byte(out), &view))

	assert.Equal(t, "ZZ:SENDER", view.Sender)
	assert.Equal(t, "005010", view.Version)
	require.Len(t, view.Groups, 1)
	require.Len(t, view.Groups[0].Sets, 1)

	set := view.Groups[0].Sets[0]
	assert.Equal(t, "850", set.Code)
	require.Len(t, set.Segments, 3)
	assert.Equal(t, "BEG", set.Segments[0].ID)
	assert.Equal(t, "00", set.Segments[0].Elements[0].Value)

	k3 := set.Segments[2]
	require.Len(t, k3.Elements, 1)
	require.Len(t, k3.Elements[0].Repeats, 2)
	assert.Equal(t, "RED", k3.Elements[0].Repeats[0].Value)
}

func TestViews_NilInterchange(t *testing.T) {
	_, err := XML(nil)
	require.Error(t, err)
	_, err = JSON(nil)
	require.Error(t, err)
}
