package x12

import (
	"fmt"

	"github.com/sirosfoundation/go-x12/pkg/envelope"
	"github.com/sirosfoundation/go-x12/pkg/generator"
	"github.com/sirosfoundation/go-x12/pkg/parser"
	"github.com/sirosfoundation/go-x12/pkg/transaction"
	"github.com/sirosfoundation/go-x12/pkg/validate"
)

// Result is the outcome of Parse: the recovered interchange plus all
// findings, split by severity.
type Result = parser.Result

// Parse reads one X12 document and builds its envelope tree. See
// parser.Parse for the exact recovery and severity rules.
func Parse(text string) *Result {
	return parser.Parse(text)
}

// Generate writes the interchange as X12 wire text.
func Generate(ic *envelope.Interchange, opts generator.Options) (string, error) {
	if ic == nil {
		return "", fmt.Errorf("interchange is required")
	}
	return generator.Generate(ic, opts), nil
}

// ValidateInterchange runs the envelope and transaction-set rule tables
// over a parsed interchange and returns the findings, path-stamped to
// the group and set they belong to.
func ValidateInterchange(ic *envelope.Interchange) []envelope.Error {
	return validate.Interchange(ic)
}

// ParseTransactionSet projects a generic transaction set into its typed
// record, dispatching on the ST01 code.
func ParseTransactionSet(set *envelope.TransactionSet) transaction.Result {
	return transaction.ParseSet(set)
}

// BuildOptions configure BuildInterchange. Zero values mean the
// builder defaults: version 005010, usage indicator P, control number 1.
type BuildOptions struct {
	Version        string
	UsageIndicator string
	ControlNumber  int
	AckRequested   bool
}

// BuildInterchange wraps the given transaction sets in a complete
// ISA/GS/ST envelope. Sets are grouped by their functional identifier
// code in order of first appearance; a set whose code has no known
// functional group is an error.
func BuildInterchange(sets []*envelope.TransactionSet, sender, receiver envelope.Identity, opts BuildOptions) (*envelope.Interchange, error) {
	if len(sets) == 0 {
		return nil, fmt.Errorf("at least one transaction set is required")
	}

	var codes []string
	grouped := make(map[string][]*envelope.TransactionSet)
	for _, set := range sets {
		fc, ok := envelope.FunctionalCodes[set.Header.Code]
		if !ok {
			return nil, fmt.Errorf("transaction set code %q has no functional identifier code", set.Header.Code)
		}
		if _, seen := grouped[fc]; !seen {
			codes = append(codes, fc)
		}
		grouped[fc] = append(grouped[fc], set)
	}

	builderOpts := []envelope.Option{
		envelope.WithSender(sender),
		envelope.WithReceiver(receiver),
		envelope.WithAckRequested(opts.AckRequested),
	}
	if opts.Version != "" {
		builderOpts = append(builderOpts, envelope.WithVersion(opts.Version))
	}
	if opts.UsageIndicator != "" {
		builderOpts = append(builderOpts, envelope.WithUsageIndicator(opts.UsageIndicator))
	}
	if opts.ControlNumber != 0 {
		builderOpts = append(builderOpts, envelope.WithControlNumber(opts.ControlNumber))
	}

	b := envelope.NewInterchange(builderOpts...)
	for _, fc := range codes {
		b.AddGroup(fc, grouped[fc]...)
	}
	return b.Build()
}

// Generate997ForDocument parses a received document, judges every
// functional group in it, and returns a complete 997 interchange
// addressed sender to receiver. The acknowledgment accepts each set
// the parser and validator found clean and rejects the rest; documents
// too broken to yield an envelope return an error instead of an ack.
func Generate997ForDocument(text string, sender, receiver envelope.Identity) (string, error) {
	result := Parse(text)
	if result.Interchange == nil {
		return "", fmt.Errorf("document has no recoverable interchange: %s", firstMessage(result.Errors))
	}

	findings := append(ValidateInterchange(result.Interchange), result.Errors...)
	findings = append(findings, result.Warnings...)
	acks := transaction.Acknowledge(result.Interchange, findings)
	if len(acks) == 0 {
		return "", fmt.Errorf("document contains no functional groups to acknowledge")
	}

	var sets []*envelope.TransactionSet
	for _, ack := range acks {
		sets = append(sets, envelope.NewTransactionSet(envelope.SetFunctionalAck, ack.Segments()...))
	}

	opts := BuildOptions{UsageIndicator: result.Interchange.Header.UsageIndicator}
	switch result.Interchange.Header.Version {
	case envelope.Version4010, envelope.Version5010:
		opts.Version = result.Interchange.Header.Version
	}
	ic, err := BuildInterchange(sets, sender, receiver, opts)
	if err != nil {
		return "", fmt.Errorf("building acknowledgment interchange: %w", err)
	}
	return Generate(ic, generator.Options{})
}

func firstMessage(errs []envelope.Error) string {
	if len(errs) == 0 {
		return "no findings"
	}
	return errs[0].Message
}
