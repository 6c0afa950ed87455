// Copyright 2026 The Tinder Authors
// SPDX-License-Identifier: Apache-2.0

package jid_test

import (
	"os"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/akrherz/tinder/lib/jid"
)

// vectorFile mirrors testdata/vectors.yaml.
type vectorFile struct {
	Normalize []struct {
		Input string `yaml:"input"`
		Want  string `yaml:"want"`
	} `yaml:"normalize"`
	Equivalent []struct {
		A     string `yaml:"a"`
		B     string `yaml:"b"`
		Equal bool   `yaml:"equal"`
	} `yaml:"equivalent"`
	Invalid []string `yaml:"invalid"`
}

func loadVectors(t *testing.T) vectorFile {
	t.Helper()
	data, err := os.ReadFile("testdata/vectors.yaml")
	if err != nil {
		t.Fatalf("reading vectors: %v", err)
	}
	var vectors vectorFile
	if err := yaml.Unmarshal(data, &vectors); err != nil {
		t.Fatalf("parsing vectors: %v", err)
	}
	if len(vectors.Normalize) == 0 || len(vectors.Equivalent) == 0 || len(vectors.Invalid) == 0 {
		t.Fatal("vector file is missing sections")
	}
	return vectors
}

func TestNormalizationVectors(t *testing.T) {
	vectors := loadVectors(t)
	for _, v := range vectors.Normalize {
		t.Run(v.Input, func(t *testing.T) {
			address, err := jid.Parse(v.Input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", v.Input, err)
			}
			if address.String() != v.Want {
				t.Errorf("Parse(%q).String() = %q, want %q", v.Input, address, v.Want)
			}
			// Canonical forms are fixed points: re-parsing the output
			// yields the same address.
			again, err := jid.Parse(address.String())
			if err != nil {
				t.Fatalf("re-Parse(%q) error: %v", address, err)
			}
			if again != address {
				t.Errorf("re-parsing the canonical form changed it: %v then %v", address, again)
			}
		})
	}
}

func TestEquivalenceVectors(t *testing.T) {
	vectors := loadVectors(t)
	for _, v := range vectors.Equivalent {
		t.Run(v.A+" vs "+v.B, func(t *testing.T) {
			equal, err := jid.Equivalent(v.A, v.B)
			if err != nil {
				t.Fatalf("Equivalent(%q, %q) error: %v", v.A, v.B, err)
			}
			if equal != v.Equal {
				t.Errorf("Equivalent(%q, %q) = %v, want %v", v.A, v.B, equal, v.Equal)
			}
		})
	}
}

func TestInvalidVectors(t *testing.T) {
	vectors := loadVectors(t)
	for _, raw := range vectors.Invalid {
		t.Run(raw, func(t *testing.T) {
			if _, err := jid.Parse(raw); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", raw)
			}
		})
	}
}
