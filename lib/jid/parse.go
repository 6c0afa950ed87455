// Copyright 2026 The Tinder Authors
// SPDX-License-Identifier: Apache-2.0

package jid

import "strings"

// Split splits a textual JID into its raw node, domain, and resource
// parts. No normalization is applied — use Parse to obtain a validated
// JID. Absent parts are returned as empty strings.
//
// The first '/' ends the domain; everything after it is the resource,
// which may itself contain '@' and '/'. Only an '@' before the first
// '/' delimits a node. Two shapes are notable:
//
//   - A trailing '/' yields an absent resource, not an empty one:
//     Split("example.com/") returns no resource.
//   - An '@' as the final character is the one syntactic error: the
//     domain would be empty. An empty domain elsewhere (such as
//     "user@/home" or the empty string) is not rejected here — it
//     surfaces as ErrEmptyDomain at construction.
func Split(raw string) (node, domain, resource string, err error) {
	if raw == "" {
		return "", "", "", nil
	}

	slash := strings.IndexByte(raw, '/')

	prefix := raw
	if slash >= 0 {
		prefix = raw[:slash]
	}

	at := strings.IndexByte(prefix, '@')
	if at >= 0 && at == len(raw)-1 {
		return "", "", "", ErrEmptyDomain
	}
	if at > 0 {
		node = prefix[:at]
	}
	if at >= 0 {
		domain = prefix[at+1:]
	} else {
		domain = prefix
	}

	if slash >= 0 && slash < len(raw)-1 {
		resource = raw[slash+1:]
	}
	return node, domain, resource, nil
}
