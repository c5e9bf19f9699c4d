package canonical

// Code is a wire code plus its resolved business meaning. Known is
// false when the code was not in the translation table; the raw value
// still passes through so nothing is lost on the way back out.
type Code struct {
	Value   string
	Meaning string
	Known   bool
}

// Party is a named business party in some role: buyer, seller,
// ship-to, remit-to.
type Party struct {
	Role         Code
	Name         string
	IDType       Code
	ID           string
	AddressLines []string
	City         string
	Region       string
	PostalCode   string
	Country      string
}

// Reference is a cross-reference carried on a document.
type Reference struct {
	Type        Code
	Value       string
	Description string
}

// ProductID identifies a product in one numbering scheme.
type ProductID struct {
	Type  Code
	Value string
}

// LineItem is one priced order or invoice line.
type LineItem struct {
	LineNumber  string
	Quantity    string
	Unit        Code
	UnitPrice   string
	ProductIDs  []ProductID
	Description string
}

// Order is the canonical purchase order.
type Order struct {
	Number     string
	Date       string
	Purpose    Code
	Type       Code
	Currency   string
	Parties    []Party
	References []Reference
	Lines      []LineItem
}

// PaymentTerms carries invoice payment conditions.
type PaymentTerms struct {
	Type            Code
	BasisDate       string
	DiscountPercent string
	DiscountDays    string
	NetDays         string
}

// Tax is one tax line on an invoice.
type Tax struct {
	Type   Code
	Amount string
}

// Invoice is the canonical invoice.
type Invoice struct {
	Number      string
	Date        string
	OrderNumber string
	OrderDate   string
	Currency    string
	Parties     []Party
	References  []Reference
	Terms       *PaymentTerms
	Lines       []LineItem
	Total       string
	Taxes       []Tax
}

// Carrier describes who moves a shipment and how.
type Carrier struct {
	IDType  Code
	ID      string
	Method  Code
	Routing string
}

// Mark is a physical marking on a package, such as an SSCC-18 label.
type Mark struct {
	Type  Code
	Value string
}

// PackedItem is one shipped line. Shipments carry quantities, not
// prices, so this is deliberately narrower than LineItem.
type PackedItem struct {
	LineNumber  string
	Quantity    string
	Unit        Code
	ProductIDs  []ProductID
	Description string
}

// Package is one physical pack with its markings.
type Package struct {
	Marks []Mark
	Lines []PackedItem
}

// ShippedOrder groups the part of a shipment that fulfills one order.
type ShippedOrder struct {
	Number     string
	Date       string
	References []Reference
	Packages   []Package
	Lines      []PackedItem
}

// Shipment is the canonical advance ship notice content.
type Shipment struct {
	ID            string
	Date          string
	Time          string
	Purpose       Code
	Carrier       *Carrier
	PackagingCode string
	PackageCount  string
	Weight        string
	WeightUnit    Code
	Parties       []Party
	References    []Reference
	Orders        []ShippedOrder
	Packages      []Package    // packs not tied to an order
	Lines         []PackedItem // items loose under the shipment
}
