package validate

import (
	"fmt"

	"github.com/sirosfoundation/go-x12/pkg/envelope"
)

// Interchange checks a parsed interchange: the ISA header first, then
// each group header and every transaction set. Findings from a group or
// set carry the matching 1-based path. The interchange is never
// mutated; callers decide what to do with the findings.
func Interchange(ic *envelope.Interchange) []envelope.Error {
	findings := isaFindings(ic.Header)
	for gi, g := range ic.Groups {
		group := gi + 1
		for _, f := range gsFindings(g) {
			f.Path = envelope.Path{Group: group}
			findings = append(findings, f)
		}
		for si, set := range g.Sets {
			findings = append(findings, TransactionSet(set, group, si+1)...)
		}
	}
	return findings
}

// TransactionSet checks one set against its rule table. The group and
// set indexes are 1-based and only stamp the finding paths. A code
// without a table yields a single advisory note.
func TransactionSet(set *envelope.TransactionSet, groupIdx, setIdx int) []envelope.Error {
	path := envelope.Path{Group: groupIdx, Set: setIdx}
	rules, ok := setRules[set.Header.Code]
	if !ok {
		return []envelope.Error{{
			Code:      envelope.CodeUnsupportedSet,
			Severity:  envelope.SeverityWarning,
			Message:   fmt.Sprintf("transaction set code %q has no validation table", set.Header.Code),
			SegmentID: envelope.SegST,
			Element:   1,
			Path:      path,
		}}
	}

	var findings []envelope.Error
	for _, rule := range rules {
		findings = append(findings, rule.apply(set.Segments, path)...)
	}
	return findings
}
