package validate

import "github.com/sirosfoundation/go-x12/pkg/envelope"

// Rules shared by several transaction sets.
var (
	refRule = SegmentRule{ID: "REF", Elements: []ElementRule{
		{Position: 1, Required: true, Kind: KindID, MinLen: 1, MaxLen: 3},
		{Position: 2, Kind: KindAN, MaxLen: 50},
	}}
	dtmRule = SegmentRule{ID: "DTM", Elements: []ElementRule{
		{Position: 1, Required: true, Kind: KindID, MinLen: 3, MaxLen: 3},
		{Position: 2, Kind: KindDT},
		{Position: 3, Kind: KindTM},
	}}
	n1Rule = SegmentRule{ID: "N1", Elements: []ElementRule{
		{Position: 1, Required: true, Kind: KindID, OneOf: []string{"BT", "BY", "RE", "RI", "SE", "SF", "ST", "VN"}},
		{Position: 2, Kind: KindAN, MaxLen: 60},
		{Position: 3, Kind: KindID, OneOf: []string{"1", "9", "91", "92", "ZZ"}},
	}}
	n3Rule = SegmentRule{ID: "N3", Elements: []ElementRule{
		{Position: 1, Required: true, Kind: KindAN, MaxLen: 55},
	}}
	cttRule = SegmentRule{ID: "CTT", MaxOccurs: 1, Elements: []ElementRule{
		{Position: 1, Required: true, Kind: KindN},
	}}
	pidRule = SegmentRule{ID: "PID", Elements: []ElementRule{
		{Position: 1, Required: true, Kind: KindID, MaxLen: 1},
	}}
	po1Rule = SegmentRule{ID: "PO1", Elements: []ElementRule{
		{Position: 2, Kind: KindN},
		{Position: 3, Kind: KindID, MinLen: 2, MaxLen: 2},
		{Position: 4, Kind: KindN},
	}}
)

// setRules maps each supported transaction set code to its table. A
// code outside this map is reported as unsupported, never rejected.
var setRules = map[string][]SegmentRule{
	envelope.SetPurchaseOrder: {
		{ID: "BEG", Required: true, MaxOccurs: 1, Elements: []ElementRule{
			{Position: 1, Required: true, Kind: KindID, OneOf: []string{"00", "01", "04", "05", "06"}},
			{Position: 2, Required: true, Kind: KindID, OneOf: []string{"DS", "KN", "NE", "OS", "RL", "SA"}},
			{Position: 3, Required: true, Kind: KindAN, MinLen: 1, MaxLen: 22},
			{Position: 5, Required: true, Kind: KindDT},
		}},
		{ID: "CUR", MaxOccurs: 1, Elements: []ElementRule{
			{Position: 2, Required: true, Kind: KindID, MinLen: 3, MaxLen: 3},
		}},
		refRule, dtmRule, n1Rule, n3Rule, po1Rule, pidRule, cttRule,
	},
	envelope.SetPOAck: {
		{ID: "BAK", Required: true, MaxOccurs: 1, Elements: []ElementRule{
			{Position: 1, Required: true, Kind: KindID, OneOf: []string{"00", "05", "06"}},
			{Position: 2, Required: true, Kind: KindID, OneOf: []string{"AC", "AD", "AK", "AP", "AT", "RD", "RJ"}},
			{Position: 3, Required: true, Kind: KindAN, MinLen: 1, MaxLen: 22},
			{Position: 4, Required: true, Kind: KindDT},
		}},
		refRule, dtmRule, n1Rule, n3Rule, po1Rule,
		{ID: "ACK", Elements: []ElementRule{
			{Position: 1, Required: true, Kind: KindID, OneOf: []string{"IA", "IB", "IC", "ID", "IF", "IH", "IP", "IQ", "IR", "IS"}},
			{Position: 2, Kind: KindN},
		}},
		pidRule, cttRule,
	},
	envelope.SetShipNotice: {
		{ID: "BSN", Required: true, MaxOccurs: 1, Elements: []ElementRule{
			{Position: 1, Required: true, Kind: KindID, OneOf: []string{"00", "01", "04", "05"}},
			{Position: 2, Required: true, Kind: KindAN, MinLen: 2, MaxLen: 30},
			{Position: 3, Required: true, Kind: KindDT},
			{Position: 4, Required: true, Kind: KindTM},
		}},
		{ID: "HL", Required: true, Elements: []ElementRule{
			{Position: 1, Required: true, Kind: KindN},
			{Position: 3, Required: true, Kind: KindID, OneOf: []string{"S", "O", "P", "I"}},
		}},
		{ID: "TD1", Elements: []ElementRule{
			{Position: 2, Kind: KindN},
			{Position: 7, Kind: KindN},
		}},
		{ID: "PRF", Elements: []ElementRule{
			{Position: 1, Required: true, Kind: KindAN, MaxLen: 22},
			{Position: 4, Kind: KindDT},
		}},
		{ID: "MAN", Elements: []ElementRule{
			{Position: 1, Required: true, Kind: KindID, OneOf: []string{"CA", "CP", "GM", "SM", "ZZ"}},
			{Position: 2, Required: true, Kind: KindAN, MaxLen: 48},
		}},
		{ID: "LIN", Elements: []ElementRule{
			{Position: 2, Required: true, Kind: KindID, MinLen: 2, MaxLen: 2},
		}},
		{ID: "SN1", Elements: []ElementRule{
			{Position: 2, Required: true, Kind: KindN},
			{Position: 3, Required: true, Kind: KindID, MinLen: 2, MaxLen: 2},
		}},
		refRule, dtmRule, n1Rule, n3Rule, pidRule, cttRule,
	},
	envelope.SetInvoice: {
		{ID: "BIG", Required: true, MaxOccurs: 1, Elements: []ElementRule{
			{Position: 1, Required: true, Kind: KindDT},
			{Position: 2, Required: true, Kind: KindAN, MinLen: 1, MaxLen: 22},
			{Position: 3, Kind: KindDT},
			{Position: 4, Kind: KindAN, MaxLen: 22},
		}},
		{ID: "CUR", MaxOccurs: 1, Elements: []ElementRule{
			{Position: 2, Required: true, Kind: KindID, MinLen: 3, MaxLen: 3},
		}},
		{ID: "ITD", Elements: []ElementRule{
			{Position: 1, Kind: KindID, OneOf: []string{"01", "02", "05", "08", "09", "14"}},
			{Position: 3, Kind: KindN},
			{Position: 5, Kind: KindN},
			{Position: 7, Kind: KindN},
		}},
		{ID: "IT1", Elements: []ElementRule{
			{Position: 2, Kind: KindN},
			{Position: 3, Kind: KindID, MinLen: 2, MaxLen: 2},
			{Position: 4, Kind: KindN},
		}},
		{ID: "TDS", Required: true, MaxOccurs: 1, Elements: []ElementRule{
			{Position: 1, Required: true, Kind: KindN},
		}},
		{ID: "TXI", Elements: []ElementRule{
			{Position: 1, Required: true, Kind: KindID, OneOf: []string{"FD", "GS", "LO", "LS", "ST", "VA"}},
			{Position: 2, Kind: KindN},
		}},
		refRule, dtmRule, n1Rule, n3Rule, pidRule, cttRule,
	},
	envelope.SetFunctionalAck: {
		{ID: "AK1", Required: true, MaxOccurs: 1, Elements: []ElementRule{
			{Position: 1, Required: true, Kind: KindID, OneOf: []string{"FA", "IN", "PO", "PR", "SH"}},
			{Position: 2, Required: true, Kind: KindN, MaxLen: 9},
		}},
		{ID: "AK2", Elements: []ElementRule{
			{Position: 1, Required: true, Kind: KindID, MinLen: 3, MaxLen: 3},
			{Position: 2, Required: true, Kind: KindAN, MinLen: 4, MaxLen: 9},
		}},
		{ID: "AK3", Elements: []ElementRule{
			{Position: 1, Required: true, Kind: KindAN, MinLen: 2, MaxLen: 3},
			{Position: 2, Required: true, Kind: KindN},
		}},
		{ID: "AK4", Elements: []ElementRule{
			{Position: 3, Kind: KindN},
		}},
		{ID: "AK5", Elements: []ElementRule{
			{Position: 1, Required: true, Kind: KindID, OneOf: []string{"A", "E", "M", "P", "R", "W", "X"}},
		}},
		{ID: "AK9", Required: true, MaxOccurs: 1, Elements: []ElementRule{
			{Position: 1, Required: true, Kind: KindID, OneOf: []string{"A", "E", "P", "R"}},
			{Position: 2, Required: true, Kind: KindN},
			{Position: 3, Required: true, Kind: KindN},
			{Position: 4, Required: true, Kind: KindN},
		}},
	},
}
