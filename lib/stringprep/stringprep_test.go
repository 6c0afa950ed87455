// Copyright 2026 The Tinder Authors
// SPDX-License-Identifier: Apache-2.0

package stringprep_test

import (
	"testing"

	"github.com/akrherz/tinder/lib/stringprep"
)

func TestNode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase unchanged", "romeo", "romeo"},
		{"uppercase folds", "Romeo", "romeo"},
		{"all caps fold", "JULIET", "juliet"},
		{"digits and punctuation", "user.name-42_x", "user.name-42_x"},
		{"escaped space survives", `joe\20smith`, `joe\20smith`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := stringprep.Node(tt.input)
			if err != nil {
				t.Fatalf("Node(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Node(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNodeRejectsProhibitedCharacters(t *testing.T) {
	inputs := []string{
		"ro meo",      // space
		`rom"eo`,      // quote
		"rom&eo",      // ampersand
		"rom'eo",      // apostrophe
		"rom/eo",      // slash
		"rom:eo",      // colon
		"rom<eo",      // less-than
		"rom>eo",      // greater-than
		"rom@eo",      // at-sign
		"",            // empty
	}
	for _, input := range inputs {
		if _, err := stringprep.Node(input); err == nil {
			t.Errorf("Node(%q) succeeded, want error", input)
		}
	}
}

func TestNodeIdempotent(t *testing.T) {
	for _, input := range []string{"Romeo", "juliet", "user.name-42"} {
		once, err := stringprep.Node(input)
		if err != nil {
			t.Fatalf("Node(%q) error: %v", input, err)
		}
		twice, err := stringprep.Node(once)
		if err != nil {
			t.Fatalf("Node(Node(%q)) error: %v", input, err)
		}
		if once != twice {
			t.Errorf("Node not idempotent on %q: %q then %q", input, once, twice)
		}
	}
}

func TestDomain(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase unchanged", "example.com", "example.com"},
		{"uppercase folds", "EXAMPLE.com", "example.com"},
		{"subdomain", "Chat.Example.COM", "chat.example.com"},
		{"underscore label allowed", "_xmpp._tcp.example.com", "_xmpp._tcp.example.com"},
		{"internationalized", "MÜNCHEN.de", "xn--mnchen-3ya.de"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := stringprep.Domain(tt.input)
			if err != nil {
				t.Fatalf("Domain(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Domain(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDomainRejectsEmpty(t *testing.T) {
	if _, err := stringprep.Domain(""); err == nil {
		t.Error("Domain(\"\") succeeded, want error")
	}
}

func TestDomainIdempotent(t *testing.T) {
	for _, input := range []string{"EXAMPLE.com", "MÜNCHEN.de", "chat.example.com"} {
		once, err := stringprep.Domain(input)
		if err != nil {
			t.Fatalf("Domain(%q) error: %v", input, err)
		}
		twice, err := stringprep.Domain(once)
		if err != nil {
			t.Fatalf("Domain(Domain(%q)) error: %v", input, err)
		}
		if once != twice {
			t.Errorf("Domain not idempotent on %q: %q then %q", input, once, twice)
		}
	}
}

func TestResourcePreservesCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"mixed case kept", "Home", "Home"},
		{"all caps kept", "BALCONY", "BALCONY"},
		{"spaces allowed", "My Phone", "My Phone"},
		{"slashes allowed", "foo/bar", "foo/bar"},
		{"at-sign allowed", "r@home", "r@home"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := stringprep.Resource(tt.input)
			if err != nil {
				t.Fatalf("Resource(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Resource(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestResourceIdempotent(t *testing.T) {
	for _, input := range []string{"Home", "My Phone", "balcony/east"} {
		once, err := stringprep.Resource(input)
		if err != nil {
			t.Fatalf("Resource(%q) error: %v", input, err)
		}
		twice, err := stringprep.Resource(once)
		if err != nil {
			t.Fatalf("Resource(Resource(%q)) error: %v", input, err)
		}
		if once != twice {
			t.Errorf("Resource not idempotent on %q: %q then %q", input, once, twice)
		}
	}
}
