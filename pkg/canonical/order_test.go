package canonical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirosfoundation/go-x12/pkg/envelope"
	"github.com/sirosfoundation/go-x12/pkg/parser"
	"github.com/sirosfoundation/go-x12/pkg/transaction"
)

func bodySet(t *testing.T, code string, raw ...string) *envelope.TransactionSet {
	t.Helper()
	set := &envelope.TransactionSet{Header: envelope.STHeader{Code: code, ControlNumber: "0001"}}
	for _, r := range raw {
		set.Segments = append(set.Segments, parser.DecodeSegment(r, envelope.DefaultDelimiters()))
	}
	return set
}

func parsed850(t *testing.T, raw ...string) *transaction.PurchaseOrder850 {
	t.Helper()
	po, errs := transaction.Parse850(bodySet(t, "850", raw...))
	require.Empty(t, errs)
	return po
}

func TestOrderFrom850_Mapping(t *testing.T) {
	po := parsed850(t,
		"BEG*00*SA*PO12345**20240101",
		"CUR*BY*USD",
		"REF*DP*038",
		"REF*Q9*ODD-REF",
		"N1*ST*Acme Retail*92*0038",
		"N3*123 Main St",
		"N4*Dayton*OH*45401*US",
		"N1*XX*Mystery Party",
		"PO1*1*10*EA*15.5**VP*WIDGET-1*UP*012345678905",
		"PID*F****Blue widget",
		"CTT*1",
	)
	o := OrderFrom850(po)

	assert.Equal(t, "PO12345", o.Number)
	assert.Equal(t, "20240101", o.Date)
	assert.Equal(t, Code{Value: "00", Meaning: "original", Known: true}, o.Purpose)
	assert.Equal(t, Code{Value: "SA", Meaning: "stand-alone order", Known: true}, o.Type)
	assert.Equal(t, "USD", o.Currency)

	require.Len(t, o.References, 2)
	assert.Equal(t, Code{Value: "DP", Meaning: "department number", Known: true}, o.References[0].Type)
	assert.Equal(t, Code{Value: "Q9"}, o.References[1].Type)

	require.Len(t, o.Parties, 2)
	shipTo := o.Parties[0]
	assert.Equal(t, Code{Value: "ST", Meaning: "ship-to location", Known: true}, shipTo.Role)
	assert.Equal(t, Code{Value: "92", Meaning: "buyer-assigned code", Known: true}, shipTo.IDType)
	assert.Equal(t, []string{"123 Main St"}, shipTo.AddressLines)
	assert.Equal(t, "OH", shipTo.Region)
	assert.Equal(t, Code{Value: "XX"}, o.Parties[1].Role)

	require.Len(t, o.Lines, 1)
	line := o.Lines[0]
	assert.Equal(t, Code{Value: "EA", Meaning: "each", Known: true}, line.Unit)
	assert.Equal(t, "15.5", line.UnitPrice)
	require.Len(t, line.ProductIDs, 2)
	assert.Equal(t, Code{Value: "VP", Meaning: "vendor part number", Known: true}, line.ProductIDs[0].Type)
	assert.Equal(t, "WIDGET-1", line.ProductIDs[0].Value)
	assert.Equal(t, "Blue widget", line.Description)
}

func TestOrder_RoundTripStable(t *testing.T) {
	po := parsed850(t,
		"BEG*00*SA*PO12345**20240101",
		"CUR*BY*USD",
		"REF*DP*038",
		"REF*Q9*ODD-REF",
		"N1*ST*Acme Retail*92*0038",
		"N3*123 Main St",
		"N4*Dayton*OH*45401*US",
		"N1*XX*Mystery Party",
		"PO1*1*10*EA*15.5**VP*WIDGET-1*UP*012345678905",
		"PID*F****Blue widget",
		"PO1*2*5*QQ*100.1**ZY*GADGET-9",
		"CTT*2",
	)
	o := OrderFrom850(po)

	back := OrderTo850(o)
	again := OrderFrom850(back)
	assert.Equal(t, o, again)

	assert.Equal(t, "PO12345", back.PONumber)
	assert.Equal(t, "QQ", back.Items[1].Unit)
	assert.Equal(t, "ZY", back.Items[1].ProductIDs[0].Qualifier)
}

func TestOrderFrom855_Projection(t *testing.T) {
	ack, errs := transaction.Parse855(bodySet(t, "855",
		"BAK*06*AD*PO12345*20240101",
		"N1*SE*Widget Supply*92*77321",
		"PO1*1*10*EA*15.5**VP*WIDGET-1",
		"ACK*IA*10*EA",
		"CTT*1",
	))
	require.Empty(t, errs)

	o := OrderFrom855(ack)
	assert.Equal(t, "PO12345", o.Number)
	assert.Equal(t, "20240101", o.Date)
	assert.Equal(t, Code{Value: "06", Meaning: "confirmation", Known: true}, o.Purpose)
	require.Len(t, o.Lines, 1)
	assert.Equal(t, "10", o.Lines[0].Quantity)
	require.Len(t, o.Parties, 1)
	assert.Equal(t, Code{Value: "SE", Meaning: "selling party", Known: true}, o.Parties[0].Role)
}
