// Copyright 2026 The Tinder Authors
// SPDX-License-Identifier: Apache-2.0

// Package jid provides the XMPP address (JID) value type. A JID is
// made up of a node (generally a username), a domain, and a resource.
// The node and resource are optional; domain is required. In simple
// ABNF form:
//
//	jid = [ node "@" ] domain [ "/" resource ]
//
// Some sample JIDs:
//
//	user@example.com
//	user@example.com/home
//	example.com
//
// Each component is normalized at construction — the node and domain
// case-insensitively, the resource case-preservingly — so that
// syntactically different spellings of the same address compare equal.
// Each component may occupy at most 1023 bytes.
//
// JID is an immutable, comparable value type with pre-computed bare
// and full string forms. The zero value is not a valid address; use
// IsZero to check. Construction either succeeds completely or fails
// with *IllegalJIDError — there are no partially-normalized addresses.
//
// Normalization is expensive and addresses are constructed at very
// high frequency in a messaging server, so the package keeps one
// bounded FIFO cache per component kind holding strings already known
// to be in canonical form. The package-level constructors share a
// process-wide Normalizer; tests and embedders can build their own
// with NewNormalizer to control the preparation profiles and cache
// capacities.
package jid
