package envelope

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalInterchange = "ISA*00*          *00*          *ZZ*SENDER         *ZZ*RECEIVER       *240101*1200*^*005010*000000001*0*T*:~IEA*1*000000001~"

func TestExtractDelimiters_SelfDescribing(t *testing.T) {
	d, errs := ExtractDelimiters(minimalInterchange)
	require.Empty(t, errs)

	assert.Equal(t, byte('*'), d.Element)
	assert.Equal(t, byte(':'), d.Subelement)
	assert.Equal(t, byte('~'), d.Terminator)
	assert.Equal(t, byte('^'), d.Repetition)
}

func TestExtractDelimiters_NonStandardSeparators(t *testing.T) {
	doc := strings.ReplaceAll(minimalInterchange, "*", "|")
	doc = strings.ReplaceAll(doc, ":", ">")
	doc = strings.ReplaceAll(doc, "~", "'")

	d, errs := ExtractDelimiters(doc)
	require.Empty(t, errs)

	assert.Equal(t, byte('|'), d.Element)
	assert.Equal(t, byte('>'), d.Subelement)
	assert.Equal(t, byte('\''), d.Terminator)
	assert.Equal(t, byte('^'), d.Repetition)
}

func TestExtractDelimiters_Version4010RepetitionDefault(t *testing.T) {
	// ISA11 carries the standards identifier "U" on 004010 interchanges,
	// so the repetition separator falls back to the conventional caret.
	doc := strings.Replace(minimalInterchange, "*^*005010*", "*U*004010*", 1)

	d, errs := ExtractDelimiters(doc)
	require.Empty(t, errs)
	assert.Equal(t, byte('^'), d.Repetition)
}

func TestExtractDelimiters_MissingTerminatorDefaults(t *testing.T) {
	// A document cut off right after ISA16 still yields a usable set.
	truncated := minimalInterchange[:isaMinLength]
	require.True(t, strings.HasSuffix(truncated, ":"))

	d, errs := ExtractDelimiters(truncated)
	require.Empty(t, errs)
	assert.Equal(t, byte('~'), d.Terminator)
}

func TestExtractDelimiters_Failures(t *testing.T) {
	tests := []struct {
		name string
		text string
		code string
	}{
		{"empty input", "", CodeTooShort},
		{"short input", "ISA*00", CodeTooShort},
		{"not an ISA", strings.Repeat("GS*PO*A*B~", 20), CodeInvalidEnvelope},
		{"too few elements", "ISA*" + strings.Repeat("A", 120), CodeMalformedISA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, errs := ExtractDelimiters(tt.text)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.code, errs[0].Code)
			assert.Equal(t, SeverityError, errs[0].Severity)
			// Defaults come back so callers always hold a usable set.
			assert.Equal(t, DefaultDelimiters(), d)
		})
	}
}
