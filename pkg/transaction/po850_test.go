package transaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirosfoundation/go-x12/pkg/envelope"
)

func TestParse850_Complete(t *testing.T) {
	po, errs := Parse850(bodySet("850",
		"BEG*00*SA*PO12345**20240101",
		"CUR*BY*USD",
		"REF*DP*038",
		"DTM*002*20240115",
		"N1*ST*Acme Retail*92*0038",
		"N3*123 Main St",
		"N4*Dayton*OH*45401*US",
		"N1*VN*Widget Supply*92*77321",
		"PO1*1*10*EA*15.5**VP*WIDGET-1*UP*012345678905",
		"PID*F****Blue widget, 10cm",
		"PO1*2*5*CS*100.1**VP*GADGET-9",
		"CTT*2",
	))
	require.Empty(t, errs)

	assert.Equal(t, "00", po.Purpose)
	assert.Equal(t, "SA", po.Type)
	assert.Equal(t, "PO12345", po.PONumber)
	assert.Equal(t, "20240101", po.Date)
	assert.Equal(t, "USD", po.Currency)
	require.Len(t, po.References, 1)
	assert.Equal(t, Reference{Qualifier: "DP", Value: "038"}, po.References[0])
	require.Len(t, po.Dates, 1)
	assert.Equal(t, Date{Qualifier: "002", Date: "20240115"}, po.Dates[0])

	require.Len(t, po.Parties, 2)
	ship := po.Parties[0]
	assert.Equal(t, "ST", ship.Code)
	assert.Equal(t, "Acme Retail", ship.Name)
	assert.Equal(t, []string{"123 Main St"}, ship.Address)
	assert.Equal(t, "Dayton", ship.City)
	assert.Equal(t, "45401", ship.Zip)
	assert.Equal(t, "US", ship.Country)
	assert.Empty(t, po.Parties[1].Address)

	require.Len(t, po.Items, 2)
	first := po.Items[0]
	assert.Equal(t, "1", first.LineNumber)
	assert.Equal(t, "10", first.Quantity)
	assert.Equal(t, "EA", first.Unit)
	assert.Equal(t, "15.5", first.UnitPrice)
	assert.Equal(t, []ProductID{{"VP", "WIDGET-1"}, {"UP", "012345678905"}}, first.ProductIDs)
	assert.Equal(t, "Blue widget, 10cm", first.Description)
	assert.Empty(t, po.Items[1].Description)
	assert.Equal(t, "2", po.ItemCount)
}

func TestParse850_MissingBEG(t *testing.T) {
	po, errs := Parse850(bodySet("850", "PO1*1*10*EA*15.5**VP*WIDGET-1"))
	require.Len(t, errs, 1)
	assert.Equal(t, envelope.CodeMissingSegment, errs[0].Code)
	assert.Equal(t, envelope.SeverityError, errs[0].Severity)
	assert.Equal(t, "BEG", errs[0].SegmentID)
	require.NotNil(t, po)
	assert.Len(t, po.Items, 1)
}

func TestParse850_PairGapsSkipped(t *testing.T) {
	po, errs := Parse850(bodySet("850",
		"BEG*00*SA*PO77**20240201",
		"PO1*1*2*EA*9.99*PE***VP*X",
	))
	require.Empty(t, errs)
	require.Len(t, po.Items, 1)
	assert.Equal(t, "PE", po.Items[0].BasisCode)
	assert.Equal(t, []ProductID{{"VP", "X"}}, po.Items[0].ProductIDs)
}

func TestParse850_HeaderScopeEndsAtFirstItem(t *testing.T) {
	po, errs := Parse850(bodySet("850",
		"BEG*00*SA*PO9**20240101",
		"PO1*1*1*EA*5**VP*A",
		"REF*DP*038",
		"DTM*002*20240110",
	))
	require.Empty(t, errs)
	assert.Empty(t, po.References)
	assert.Empty(t, po.Dates)
}

func TestParse850_DescriptionNeedsOpenItem(t *testing.T) {
	po, errs := Parse850(bodySet("850",
		"BEG*00*SA*PO9**20240101",
		"PID*F****Orphan text",
		"PO1*1*1*EA*5**VP*A",
		"PID*X****Not free-form",
	))
	require.Empty(t, errs)
	require.Len(t, po.Items, 1)
	assert.Empty(t, po.Items[0].Description)
}

func TestPurchaseOrder850_RoundTrip(t *testing.T) {
	set := bodySet("850",
		"BEG*00*SA*PO12345**20240101",
		"CUR*BY*USD",
		"REF*DP*038",
		"DTM*002*20240115",
		"N1*ST*Acme Retail*92*0038",
		"N3*123 Main St",
		"N4*Dayton*OH*45401*US",
		"PO1*1*10*EA*15.5**VP*WIDGET-1*UP*012345678905",
		"PID*F****Blue widget, 10cm",
		"PO1*2*5*CS*100.1**VP*GADGET-9",
		"CTT*2",
	)
	po, errs := Parse850(set)
	require.Empty(t, errs)

	again, errs := Parse850(&envelope.TransactionSet{Header: set.Header, Segments: po.Segments()})
	require.Empty(t, errs)
	assert.Equal(t, po, again)
}

func TestPurchaseOrder850_SegmentsComputesCount(t *testing.T) {
	po := &PurchaseOrder850{
		Purpose:  "00",
		Type:     "NE",
		PONumber: "PO500",
		Date:     "20240301",
		Items: []Item850{
			{LineNumber: "1", Quantity: "3", Unit: "EA", UnitPrice: "2.5", ProductIDs: []ProductID{{"VP", "A"}}},
			{LineNumber: "2", Quantity: "6", Unit: "EA", UnitPrice: "4", ProductIDs: []ProductID{{"VP", "B"}}},
		},
	}
	segs := po.Segments()
	last := segs[len(segs)-1]
	assert.Equal(t, "CTT", last.ID)
	assert.Equal(t, "2", last.At(1))
}
