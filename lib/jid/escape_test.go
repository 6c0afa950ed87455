// Copyright 2026 The Tinder Authors
// SPDX-License-Identifier: Apache-2.0

package jid_test

import (
	"testing"

	"github.com/akrherz/tinder/lib/jid"
)

func TestEscapeNode(t *testing.T) {
	tests := []struct {
		name string
		node string
		want string
	}{
		{"plain node unchanged", "juliet", "juliet"},
		{"space", "Joe Smith", `Joe\20Smith`},
		{"quote", `say "hi"`, `say\20\22hi\22`},
		{"ampersand", "tom&jerry", `tom\26jerry`},
		{"apostrophe", "d'artagnan", `d\27artagnan`},
		{"slash", "a/b", `a\2fb`},
		{"colon", "irc:gateway", `irc\3agateway`},
		{"angle brackets", "<tag>", `\3ctag\3e`},
		{"at-sign", "user@host", `user\40host`},
		{"backslash", `c:\net`, `c\3a\5cnet`},
		{"tab maps to space escape", "a\tb", `a\20b`},
		{"newline maps to space escape", "a\nb", `a\20b`},
		{"unicode passes through", "héllo", "héllo"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := jid.EscapeNode(tt.node); got != tt.want {
				t.Errorf("EscapeNode(%q) = %q, want %q", tt.node, got, tt.want)
			}
		})
	}
}

func TestUnescapeNode(t *testing.T) {
	tests := []struct {
		name string
		node string
		want string
	}{
		{"plain node unchanged", "juliet", "juliet"},
		{"space", `Joe\20Smith`, "Joe Smith"},
		{"quote", `say\20\22hi\22`, `say "hi"`},
		{"ampersand", `tom\26jerry`, "tom&jerry"},
		{"apostrophe", `d\27artagnan`, "d'artagnan"},
		{"slash", `a\2fb`, "a/b"},
		{"colon", `irc\3agateway`, "irc:gateway"},
		{"angle brackets", `\3ctag\3e`, "<tag>"},
		{"at-sign", `user\40host`, "user@host"},
		{"backslash", `c\3a\5cnet`, `c:\net`},
		{"unknown sequence is literal", `a\2xb`, `a\2xb`},
		{"uppercase hex not recognized", `a\2Fb`, `a\2Fb`},
		{"truncated sequence is literal", `abc\2`, `abc\2`},
		{"trailing backslash is literal", `abc\`, `abc\`},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := jid.UnescapeNode(tt.node); got != tt.want {
				t.Errorf("UnescapeNode(%q) = %q, want %q", tt.node, got, tt.want)
			}
		})
	}
}

// Round trips hold for any input whose whitespace is plain spaces;
// other whitespace collapses to \20 on escape and comes back as a
// space.
func TestEscapeRoundTrip(t *testing.T) {
	inputs := []string{
		"juliet",
		"Joe Smith",
		`say "hi" & 'bye'`,
		"a/b:c<d>e@f",
		`already\20escaped`,
		`back\slash`,
		"héllo wörld",
	}
	for _, input := range inputs {
		if got := jid.UnescapeNode(jid.EscapeNode(input)); got != input {
			t.Errorf("UnescapeNode(EscapeNode(%q)) = %q, want input back", input, got)
		}
	}
}
