package transaction

import (
	"fmt"

	"github.com/sirosfoundation/go-x12/pkg/envelope"
)

// Set is the typed projection of one transaction set. Exactly one of
// the record pointers is non-nil, or Unsupported is true for codes
// without a typed parser.
type Set struct {
	Code          string
	PurchaseOrder *PurchaseOrder850
	POAck         *POAcknowledgment855
	ShipNotice    *ShipNotice856
	Invoice       *Invoice810
	FunctionalAck *FunctionalAck997
	Unsupported   bool
}

// Result is the outcome of ParseSet: the typed set plus any findings.
// Set is always non-nil; findings are scoped to this transaction set
// and carry no group/set path, which is the caller's context.
type Result struct {
	Set    *Set
	Errors []envelope.Error
}

// setParsers is the dispatch table keyed on ST01.
var setParsers = map[string]func(*envelope.TransactionSet, *Set) []envelope.Error{
	envelope.SetPurchaseOrder: func(ts *envelope.TransactionSet, s *Set) []envelope.Error {
		po, errs := Parse850(ts)
		s.PurchaseOrder = po
		return errs
	},
	envelope.SetPOAck: func(ts *envelope.TransactionSet, s *Set) []envelope.Error {
		ack, errs := Parse855(ts)
		s.POAck = ack
		return errs
	},
	envelope.SetShipNotice: func(ts *envelope.TransactionSet, s *Set) []envelope.Error {
		sn, errs := Parse856(ts)
		s.ShipNotice = sn
		return errs
	},
	envelope.SetInvoice: func(ts *envelope.TransactionSet, s *Set) []envelope.Error {
		inv, errs := Parse810(ts)
		s.Invoice = inv
		return errs
	},
	envelope.SetFunctionalAck: func(ts *envelope.TransactionSet, s *Set) []envelope.Error {
		fa, errs := Parse997(ts)
		s.FunctionalAck = fa
		return errs
	},
}

// ParseSet projects a generic transaction set into its typed record,
// dispatching on the ST01 code. An unknown code is not an error: the
// result is marked Unsupported with a single advisory note, and the
// generic segments on the envelope set stay authoritative.
func ParseSet(set *envelope.TransactionSet) Result {
	out := &Set{Code: set.Header.Code}
	parse, ok := setParsers[set.Header.Code]
	if !ok {
		out.Unsupported = true
		return Result{Set: out, Errors: []envelope.Error{{
			Code:      envelope.CodeUnsupportedSet,
			Severity:  envelope.SeverityWarning,
			Message:   fmt.Sprintf("transaction set code %q has no typed parser", set.Header.Code),
			SegmentID: envelope.SegST,
			Element:   1,
		}}}
	}
	return Result{Set: out, Errors: parse(set, out)}
}

// missingSegment reports an absent mandatory beginning segment.
func missingSegment(id, setCode string) envelope.Error {
	return envelope.Error{
		Code:      envelope.CodeMissingSegment,
		Severity:  envelope.SeverityError,
		Message:   fmt.Sprintf("%s transaction set is missing its mandatory %s segment", setCode, id),
		SegmentID: id,
	}
}
