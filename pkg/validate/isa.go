package validate

import (
	"fmt"

	"github.com/sirosfoundation/go-x12/pkg/envelope"
)

// Fixed code lists for the interchange and group headers, from the
// X12.5 element dictionaries.
var (
	authQualifiers     = []string{"00", "03"}
	securityQualifiers = []string{"00", "01"}
	idQualifiers       = []string{"01", "02", "08", "09", "12", "14", "15", "16", "20", "ZZ"}
	ackRequestedCodes  = []string{"0", "1"}
	usageIndicators    = []string{"I", "P", "T"}
	versionCodes       = []string{envelope.Version4010, envelope.Version5010}
	functionalIDs      = []string{"FA", "IN", "PO", "PR", "SH"}
)

// isaFindings checks the ISA header fields against the fixed code
// lists. All findings are errors: a bad interchange header breaks
// routing at every VAN and clearinghouse.
func isaFindings(h envelope.ISAHeader) []envelope.Error {
	var findings []envelope.Error
	bad := func(pos int, code, msg string) {
		findings = append(findings, envelope.Error{
			Code:      code,
			Severity:  envelope.SeverityError,
			Message:   msg,
			SegmentID: envelope.SegISA,
			Element:   pos,
		})
	}

	if !oneOf(authQualifiers, h.AuthQualifier) {
		bad(1, envelope.CodeBadElement, fmt.Sprintf("ISA01 %q is not an accepted authorization qualifier", h.AuthQualifier))
	}
	if !oneOf(securityQualifiers, h.SecurityQualifier) {
		bad(3, envelope.CodeBadElement, fmt.Sprintf("ISA03 %q is not an accepted security qualifier", h.SecurityQualifier))
	}
	if !oneOf(idQualifiers, h.SenderQualifier) {
		bad(5, envelope.CodeBadElement, fmt.Sprintf("ISA05 %q is not an accepted interchange id qualifier", h.SenderQualifier))
	}
	if !oneOf(idQualifiers, h.ReceiverQualifier) {
		bad(7, envelope.CodeBadElement, fmt.Sprintf("ISA07 %q is not an accepted interchange id qualifier", h.ReceiverQualifier))
	}
	if len(h.Date) != 6 || !digits(h.Date) {
		bad(9, envelope.CodeBadElement, fmt.Sprintf("ISA09 %q is not a YYMMDD date", h.Date))
	}
	if len(h.Time) != 4 || !digits(h.Time) {
		bad(10, envelope.CodeBadElement, fmt.Sprintf("ISA10 %q is not an HHMM time", h.Time))
	}
	if !oneOf(versionCodes, h.Version) {
		bad(12, envelope.CodeUnsupportedVersion, fmt.Sprintf("ISA12 %q is not a supported interchange version", h.Version))
	}
	if !oneOf(ackRequestedCodes, h.AckRequested) {
		bad(14, envelope.CodeBadElement, fmt.Sprintf("ISA14 %q is not an accepted acknowledgment flag", h.AckRequested))
	}
	if !oneOf(usageIndicators, h.UsageIndicator) {
		bad(15, envelope.CodeBadElement, fmt.Sprintf("ISA15 %q is not an accepted usage indicator", h.UsageIndicator))
	}
	return findings
}

// gsFindings checks the group header. An unknown functional id or a
// group whose sets do not match it are advisory: the group still
// parses, it just will not route the way the header claims.
func gsFindings(g *envelope.FunctionalGroup) []envelope.Error {
	var findings []envelope.Error
	if !oneOf(functionalIDs, g.Header.FunctionalCode) {
		findings = append(findings, envelope.Error{
			Code:      envelope.CodeBadElement,
			Severity:  envelope.SeverityWarning,
			Message:   fmt.Sprintf("GS01 %q is not a supported functional identifier", g.Header.FunctionalCode),
			SegmentID: envelope.SegGS,
			Element:   1,
		})
		return findings
	}
	for _, set := range g.Sets {
		want, known := envelope.FunctionalCodes[set.Header.Code]
		if known && want != g.Header.FunctionalCode {
			findings = append(findings, envelope.Error{
				Code:      envelope.CodeBadElement,
				Severity:  envelope.SeverityWarning,
				Message:   fmt.Sprintf("GS01 %q does not match transaction set %s, expected %q", g.Header.FunctionalCode, set.Header.Code, want),
				SegmentID: envelope.SegGS,
				Element:   1,
			})
		}
	}
	return findings
}
