// Copyright 2026 The Tinder Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the library's standard CBOR encoding
// configuration.
//
// Address records cross two kinds of boundary:
//
//   - JSON for human-facing interfaces: CLI output and embedding
//     JIDs in application configuration.
//   - CBOR for machine interchange: address records piped between
//     tools and stored in roster snapshots.
//
// This package provides shared CBOR encoding and decoding modes so
// that every consumer encodes identically without duplicating
// configuration. The encoder uses Core Deterministic Encoding
// (RFC 8949 §4.2): sorted map keys, smallest integer encoding, no
// indefinite-length items. Same logical data always produces
// identical bytes — two tools that serialize the same address record
// emit the same CBOR.
//
// For buffer-oriented operations:
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// For stream-oriented operations (pipes, sockets):
//
//	encoder := codec.NewEncoder(w)
//	decoder := codec.NewDecoder(r)
package codec
