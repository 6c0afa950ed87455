// Copyright 2026 The Tinder Authors
// SPDX-License-Identifier: Apache-2.0

package jid

import (
	"strings"
	"unicode"
)

// EscapeNode escapes the node part of a JID according to "JID Escaping"
// (XEP-0106). Characters prohibited by node preparation are replaced
// with a backslash followed by the two-digit lowercase hex of the code
// point:
//
//	<space>  \20        :  \3a
//	"        \22        <  \3c
//	&        \26        >  \3e
//	'        \27        @  \40
//	/        \2f        \  \5c
//
// Whitespace of any kind maps to \20. All other characters pass
// through unchanged.
//
// Escaping is useful when the node comes from an external source that
// does not conform to node preparation. A username in LDAP may be
// "Joe Smith"; escaping it to "Joe\20Smith" makes it a legal node.
// Escaping and un-escaping are never applied by the constructors —
// callers invoke them explicitly at the appropriate boundary.
//
// Note that EscapeNode is not idempotent: escaping an already-escaped
// node escapes its backslashes again.
func EscapeNode(node string) string {
	var escaped strings.Builder
	escaped.Grow(len(node) + 8)
	for _, r := range node {
		switch r {
		case '"':
			escaped.WriteString(`\22`)
		case '&':
			escaped.WriteString(`\26`)
		case '\'':
			escaped.WriteString(`\27`)
		case '/':
			escaped.WriteString(`\2f`)
		case ':':
			escaped.WriteString(`\3a`)
		case '<':
			escaped.WriteString(`\3c`)
		case '>':
			escaped.WriteString(`\3e`)
		case '@':
			escaped.WriteString(`\40`)
		case '\\':
			escaped.WriteString(`\5c`)
		default:
			if unicode.IsSpace(r) {
				escaped.WriteString(`\20`)
			} else {
				escaped.WriteRune(r)
			}
		}
	}
	return escaped.String()
}

// UnescapeNode reverses EscapeNode. Only the exact ten sequences from
// the XEP-0106 table are recognized; a backslash followed by anything
// else is copied through literally rather than rejected, so arbitrary
// input is always safe to pass.
func UnescapeNode(node string) string {
	var unescaped strings.Builder
	unescaped.Grow(len(node))
	for i := 0; i < len(node); i++ {
		c := node[i]
		if c == '\\' && i+2 < len(node) {
			if r, ok := unescapeSequence(node[i+1], node[i+2]); ok {
				unescaped.WriteByte(r)
				i += 2
				continue
			}
		}
		unescaped.WriteByte(c)
	}
	return unescaped.String()
}

// unescapeSequence maps the two characters after a backslash to the
// original character. The table is fixed by XEP-0106; hex digits are
// lowercase only.
func unescapeSequence(first, second byte) (byte, bool) {
	switch first {
	case '2':
		switch second {
		case '0':
			return ' ', true
		case '2':
			return '"', true
		case '6':
			return '&', true
		case '7':
			return '\'', true
		case 'f':
			return '/', true
		}
	case '3':
		switch second {
		case 'a':
			return ':', true
		case 'c':
			return '<', true
		case 'e':
			return '>', true
		}
	case '4':
		if second == '0' {
			return '@', true
		}
	case '5':
		if second == 'c' {
			return '\\', true
		}
	}
	return 0, false
}
