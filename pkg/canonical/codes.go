package canonical

// Finite translation tables for the wire codes the canonical schema
// interprets. A code outside its table passes through untranslated.
var (
	partyRoles = map[string]string{
		"BT": "bill-to party",
		"BY": "buying party",
		"RE": "remit-to party",
		"RI": "remit-to party",
		"SE": "selling party",
		"SF": "ship-from location",
		"ST": "ship-to location",
		"VN": "vendor",
	}

	partyIDTypes = map[string]string{
		"1":  "D-U-N-S number",
		"9":  "D-U-N-S+4 number",
		"91": "seller-assigned code",
		"92": "buyer-assigned code",
		"ZZ": "mutually defined code",
	}

	unitCodes = map[string]string{
		"BX": "box",
		"CA": "case",
		"CS": "case",
		"CT": "carton",
		"EA": "each",
		"FT": "foot",
		"GA": "gallon",
		"KG": "kilogram",
		"LB": "pound",
		"PC": "piece",
	}

	referenceTypes = map[string]string{
		"BM": "bill of lading number",
		"CO": "customer order number",
		"CR": "customer reference number",
		"DP": "department number",
		"IA": "internal vendor number",
		"PK": "packing list number",
		"PO": "purchase order number",
		"VN": "vendor order number",
	}

	productIDTypes = map[string]string{
		"BP": "buyer part number",
		"EN": "EAN article number",
		"MG": "manufacturer part number",
		"SK": "stock keeping unit",
		"UP": "UPC code",
		"VP": "vendor part number",
	}

	purposeCodes = map[string]string{
		"00": "original",
		"01": "cancellation",
		"04": "change",
		"05": "replacement",
		"06": "confirmation",
	}

	orderTypes = map[string]string{
		"DS": "dropship order",
		"KN": "purchase order",
		"NE": "new order",
		"OS": "special order",
		"RL": "release against blanket order",
		"SA": "stand-alone order",
	}

	termsTypes = map[string]string{
		"01": "basic terms",
		"02": "end of month terms",
		"05": "discount not applicable",
		"08": "basic discount offered",
		"09": "proximo terms",
		"14": "previously agreed terms",
	}

	taxTypes = map[string]string{
		"FD": "federal tax",
		"GS": "goods and services tax",
		"LO": "local sales tax",
		"LS": "state and local sales tax",
		"ST": "state sales tax",
		"VA": "value added tax",
	}

	carrierIDTypes = map[string]string{
		"2":  "standard carrier alpha code",
		"ZZ": "mutually defined code",
	}

	transportMethods = map[string]string{
		"A": "air",
		"M": "motor",
		"R": "rail",
		"S": "ocean",
		"U": "private parcel service",
	}

	markTypes = map[string]string{
		"CA": "shipper-assigned case number",
		"CP": "carrier-assigned package id",
		"GM": "SSCC-18 serial shipping container code",
		"SM": "shipper-assigned mark",
	}
)

// classify resolves a wire code against a table. Empty codes stay the
// zero Code; unknown codes keep their value with Known false.
func classify(table map[string]string, value string) Code {
	if value == "" {
		return Code{}
	}
	if meaning, ok := table[value]; ok {
		return Code{Value: value, Meaning: meaning, Known: true}
	}
	return Code{Value: value}
}
