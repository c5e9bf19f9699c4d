package canonical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirosfoundation/go-x12/pkg/transaction"
)

func parsed856(t *testing.T, raw ...string) *transaction.ShipNotice856 {
	t.Helper()
	n, errs := transaction.Parse856(bodySet(t, "856", raw...))
	require.Empty(t, errs)
	return n
}

func ship856Fixture(t *testing.T) *transaction.ShipNotice856 {
	t.Helper()
	return parsed856(t,
		"BSN*00*SHIP001*20240102*1030*0001",
		"HL*1**S",
		"TD1*CTN25*3****G*47.5*LB",
		"TD5*B*2*RDWY*M",
		"REF*BM*BOL998",
		"N1*ST*Acme Retail*92*0038",
		"N3*123 Main St",
		"N4*Dayton*OH*45401*US",
		"HL*2*1*I",
		"LIN*3*VP*LOOSE-1",
		"SN1**1*EA",
		"HL*3*1*P",
		"MAN*GM*00000123450000000001",
		"HL*4*3*I",
		"LIN*4*VP*PACKED-9",
		"SN1**2*EA",
		"HL*5*1*O",
		"PRF*PO12345***20240101",
		"REF*CO*CUST-77",
		"HL*6*5*I",
		"LIN*1*VP*WIDGET-1*UP*012345678905",
		"SN1**10*EA",
		"PID*F****Blue widget",
		"HL*7*5*P",
		"MAN*CA*CASE-1",
		"HL*8*7*I",
		"LIN*2*SK*SKU-22",
		"SN1**5*CS",
	)
}

func TestShipmentFrom856_Mapping(t *testing.T) {
	v := ShipmentFrom856(ship856Fixture(t))

	assert.Equal(t, "SHIP001", v.ID)
	assert.Equal(t, "20240102", v.Date)
	assert.Equal(t, "1030", v.Time)
	assert.Equal(t, Code{Value: "00", Meaning: "original", Known: true}, v.Purpose)
	assert.Equal(t, "CTN25", v.PackagingCode)
	assert.Equal(t, "3", v.PackageCount)
	assert.Equal(t, "47.5", v.Weight)
	assert.Equal(t, Code{Value: "LB", Meaning: "pound", Known: true}, v.WeightUnit)

	require.NotNil(t, v.Carrier)
	assert.Equal(t, Code{Value: "2", Meaning: "standard carrier alpha code", Known: true}, v.Carrier.IDType)
	assert.Equal(t, "RDWY", v.Carrier.ID)
	assert.Equal(t, Code{Value: "M", Meaning: "motor", Known: true}, v.Carrier.Method)

	require.Len(t, v.Parties, 1)
	assert.Equal(t, Code{Value: "ST", Meaning: "ship-to location", Known: true}, v.Parties[0].Role)
	require.Len(t, v.References, 1)
	assert.Equal(t, Code{Value: "BM", Meaning: "bill of lading number", Known: true}, v.References[0].Type)

	// One order carrying its own package and a direct line.
	require.Len(t, v.Orders, 1)
	o := v.Orders[0]
	assert.Equal(t, "PO12345", o.Number)
	assert.Equal(t, "20240101", o.Date)
	require.Len(t, o.References, 1)
	require.Len(t, o.Packages, 1)
	assert.Equal(t, Code{Value: "CA", Meaning: "shipper-assigned case number", Known: true}, o.Packages[0].Marks[0].Type)
	require.Len(t, o.Packages[0].Lines, 1)
	assert.Equal(t, "SKU-22", o.Packages[0].Lines[0].ProductIDs[0].Value)
	require.Len(t, o.Lines, 1)
	assert.Equal(t, "Blue widget", o.Lines[0].Description)

	// The orderless package and the loose line stay at shipment level.
	require.Len(t, v.Packages, 1)
	assert.Equal(t, Code{Value: "GM", Meaning: "SSCC-18 serial shipping container code", Known: true}, v.Packages[0].Marks[0].Type)
	require.Len(t, v.Packages[0].Lines, 1)
	assert.Equal(t, "PACKED-9", v.Packages[0].Lines[0].ProductIDs[0].Value)
	require.Len(t, v.Lines, 1)
	assert.Equal(t, "LOOSE-1", v.Lines[0].ProductIDs[0].Value)
}

func TestShipment_RoundTripStable(t *testing.T) {
	v := ShipmentFrom856(ship856Fixture(t))

	back := ShipmentTo856(v)
	again := ShipmentFrom856(back)
	assert.Equal(t, v, again)

	assert.Equal(t, "0001", back.StructureCode)
	require.Len(t, back.Shipments, 1)
	assert.Len(t, back.Shipments[0].Items, 4)
}

func TestShipmentFrom856_EmptyNotice(t *testing.T) {
	v := ShipmentFrom856(parsed856(t, "BSN*00*SHIP002*20240102*1030"))
	assert.Equal(t, "SHIP002", v.ID)
	assert.Empty(t, v.Orders)
	assert.Empty(t, v.Packages)
	assert.Empty(t, v.Lines)
}
