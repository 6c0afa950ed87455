// Copyright 2026 The Tinder Authors
// SPDX-License-Identifier: Apache-2.0

// Package stringprep implements the XMPP string preparation profiles
// for the three JID components.
//
// Each profile maps a component to its canonical form so that
// syntactically different spellings of the same address compare equal,
// and rejects strings that cannot appear in that component at all:
//
//   - Node applies the PRECIS UsernameCaseMapped profile (RFC 8265)
//     plus the additional characters RFC 7622 forbids in node parts.
//     Case-insensitive: "Romeo" and "romeo" prepare to the same node.
//   - Domain applies IDNA lookup mapping (RFC 5891): internationalized
//     domain labels are transcoded to their ASCII (xn--) form and
//     case-folded. The transcode runs on every input, not only
//     non-ASCII ones, so that case mapping is uniform.
//   - Resource applies the PRECIS OpaqueString profile (RFC 8264).
//     Case-PRESERVING: "/Home" and "/home" are different resources.
//
// All three functions are idempotent — applying a profile to its own
// output returns the output unchanged. The JID layer's fixed-point
// caches rely on this property.
package stringprep

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/text/secure/precis"
)

// prohibitedNodeChars are the characters RFC 7622 §3.3.1 forbids in a
// node part beyond what UsernameCaseMapped already disallows. They are
// the JID delimiters and quoting characters; nodes sourced from
// external systems that contain them must be escaped with the
// XEP-0106 codec before preparation.
const prohibitedNodeChars = `"&'/:<>@`

// domainProfile is the IDNA mapping used for domain preparation:
// lookup-style case folding and Unicode-to-ASCII transcoding, without
// strict hostname character checks (XMPP permits labels, such as
// service subdomains with underscores, that strict DNS validation
// rejects).
var domainProfile = idna.New(
	idna.MapForLookup(),
	idna.StrictDomainName(false),
	idna.BidiRule(),
)

// Node prepares the node (local) part of a JID. The result is
// case-folded and NFC-normalized. Returns an error if the node
// contains code points disallowed by the profile.
func Node(node string) (string, error) {
	prepared, err := precis.UsernameCaseMapped.String(node)
	if err != nil {
		return "", fmt.Errorf("nodeprep: %w", err)
	}
	if i := strings.IndexAny(prepared, prohibitedNodeChars); i >= 0 {
		return "", fmt.Errorf("nodeprep: prohibited character %q", rune(prepared[i]))
	}
	return prepared, nil
}

// Domain prepares the domain part of a JID: IDNA ASCII transcoding
// followed by case folding. The result is always ASCII.
func Domain(domain string) (string, error) {
	ascii, err := domainProfile.ToASCII(domain)
	if err != nil {
		return "", fmt.Errorf("domainprep: %w", err)
	}
	if ascii == "" {
		return "", errors.New("domainprep: empty domain")
	}
	return ascii, nil
}

// Resource prepares the resource part of a JID. Unlike Node, the
// resource profile preserves case.
func Resource(resource string) (string, error) {
	prepared, err := precis.OpaqueString.String(resource)
	if err != nil {
		return "", fmt.Errorf("resourceprep: %w", err)
	}
	return prepared, nil
}
