// Package config handles trading-partner profile loading for the CLI.
//
// Profiles are loaded from a YAML file with support for environment
// variable expansion (${VAR} or $VAR syntax), so interchange IDs
// assigned by a VAN or ERP export can be injected at runtime.
//
// # Profile Sections
//
//   - local: the interchange identity this installation sends under
//   - partners: named remote identities, selected with --partner
//   - defaults: envelope version, usage indicator and output options
//
// # Example Profile
//
//	local:
//	  qualifier: ZZ
//	  id: ACMECORP
//
//	partners:
//	  widgetco:
//	    qualifier: "01"
//	    id: "004321519"
//	  testbed:
//	    qualifier: ZZ
//	    id: ${TESTBED_ISA_ID}
//
//	defaults:
//	  version: "005010"
//	  usage: T
//	  lineBreaks: true
//
// See [Load] for loading a profile from a file.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/sirosfoundation/go-x12/pkg/envelope"
)

// Config is the root profile structure.
type Config struct {
	Local    Identity            `yaml:"local" validate:"required"`
	Partners map[string]Identity `yaml:"partners" validate:"dive"`
	Defaults Defaults            `yaml:"defaults"`
}

// Identity is one interchange party: qualifier plus ID, the ISA05/06
// and ISA07/08 pair.
type Identity struct {
	Qualifier string `yaml:"qualifier" validate:"required,len=2"`
	ID        string `yaml:"id" validate:"required,max=15"`
}

// Envelope converts the profile identity to the envelope form.
func (i Identity) Envelope() envelope.Identity {
	return envelope.Identity{Qualifier: i.Qualifier, ID: i.ID}
}

// Defaults hold envelope and output settings applied when the
// corresponding flags are not given.
type Defaults struct {
	// Version is the interchange control version, ISA12.
	Version string `yaml:"version" validate:"omitempty,oneof=004010 005010"`
	// Usage is the ISA15 usage indicator: P production, T test, I information.
	Usage string `yaml:"usage" validate:"omitempty,oneof=I P T"`
	// LineBreaks emits a newline after every segment.
	LineBreaks bool `yaml:"lineBreaks"`
	// AckRequested sets ISA14 on built interchanges.
	AckRequested bool `yaml:"ackRequested"`
}

// Load reads a partner profile from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}

	cfg.applyDefaults()

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validating profile: %w", err)
	}

	return &cfg, nil
}

// Default is the profile used when no file is given: a mutually-defined
// test identity pair, test usage, line breaks on.
func Default() *Config {
	cfg := &Config{
		Local:    Identity{Qualifier: "ZZ", ID: "LOCAL"},
		Partners: map[string]Identity{"default": {Qualifier: "ZZ", ID: "PARTNER"}},
	}
	cfg.applyDefaults()
	cfg.Defaults.LineBreaks = true
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Defaults.Version == "" {
		c.Defaults.Version = envelope.Version5010
	}
	if c.Defaults.Usage == "" {
		c.Defaults.Usage = "T"
	}
}

// Partner resolves a named partner identity. An empty name picks the
// sole configured partner when there is exactly one.
func (c *Config) Partner(name string) (envelope.Identity, error) {
	if name == "" {
		if len(c.Partners) == 1 {
			for _, id := range c.Partners {
				return id.Envelope(), nil
			}
		}
		return envelope.Identity{}, fmt.Errorf("profile has %d partners, pick one with --partner", len(c.Partners))
	}
	id, ok := c.Partners[name]
	if !ok {
		return envelope.Identity{}, fmt.Errorf("partner %q is not in the profile", name)
	}
	return id.Envelope(), nil
}
