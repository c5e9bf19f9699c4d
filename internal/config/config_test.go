package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Profile(t *testing.T) {
	t.Setenv("TESTBED_ISA_ID", "TESTBED01")
	path := writeProfile(t, `
local:
  qualifier: ZZ
  id: ACMECORP
partners:
  widgetco:
    qualifier: "01"
    id: "004321519"
  testbed:
    qualifier: ZZ
    id: ${TESTBED_ISA_ID}
defaults:
  version: "004010"
  usage: P
  lineBreaks: true
  ackRequested: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "ACMECORP", cfg.Local.ID)
	assert.Equal(t, "ZZ", cfg.Local.Qualifier)
	assert.Equal(t, "TESTBED01", cfg.Partners["testbed"].ID)
	assert.Equal(t, "004010", cfg.Defaults.Version)
	assert.Equal(t, "P", cfg.Defaults.Usage)
	assert.True(t, cfg.Defaults.LineBreaks)
	assert.True(t, cfg.Defaults.AckRequested)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeProfile(t, `
local:
  qualifier: ZZ
  id: ACMECORP
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "005010", cfg.Defaults.Version)
	assert.Equal(t, "T", cfg.Defaults.Usage)
	assert.False(t, cfg.Defaults.LineBreaks)
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing local", "partners:\n  p:\n    qualifier: ZZ\n    id: X\n"},
		{"qualifier too long", "local:\n  qualifier: ZZZ\n  id: ACMECORP\n"},
		{"id too long", "local:\n  qualifier: ZZ\n  id: SIXTEEN-CHARS-ID\n"},
		{"bad version", "local:\n  qualifier: ZZ\n  id: A\ndefaults:\n  version: \"003050\"\n"},
		{"bad partner", "local:\n  qualifier: ZZ\n  id: A\npartners:\n  p:\n    qualifier: ZZ\n"},
		{"not yaml", "local: [unclosed\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeProfile(t, tc.body))
			require.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestConfig_Partner(t *testing.T) {
	cfg := &Config{
		Local: Identity{Qualifier: "ZZ", ID: "LOCAL"},
		Partners: map[string]Identity{
			"widgetco": {Qualifier: "01", ID: "004321519"},
		},
	}

	id, err := cfg.Partner("widgetco")
	require.NoError(t, err)
	assert.Equal(t, "004321519", id.ID)

	id, err = cfg.Partner("")
	require.NoError(t, err)
	assert.Equal(t, "004321519", id.ID)

	_, err = cfg.Partner("nobody")
	require.Error(t, err)

	cfg.Partners["second"] = Identity{Qualifier: "ZZ", ID: "OTHER"}
	_, err = cfg.Partner("")
	require.Error(t, err)
}

func TestDefault_Profile(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "LOCAL", cfg.Local.ID)
	assert.Equal(t, "005010", cfg.Defaults.Version)
	assert.True(t, cfg.Defaults.LineBreaks)

	id, err := cfg.Partner("")
	require.NoError(t, err)
	assert.Equal(t, "PARTNER", id.ID)
}
