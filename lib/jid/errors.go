// Copyright 2026 The Tinder Authors
// SPDX-License-Identifier: Apache-2.0

package jid

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDomain reports an address whose domain part is missing,
	// empty, or normalizes to the empty string. Detected either
	// syntactically (a trailing '@') or after domain preparation.
	ErrEmptyDomain = errors.New("jid: empty domain")

	// ErrComponentTooLong reports a component whose normalized form
	// exceeds MaxComponentBytes.
	ErrComponentTooLong = errors.New("jid: component too long")

	// ErrNoResource is returned by Full when the address was built
	// without a resource. Callers that want "full form or bare form,
	// whichever exists" should use String instead — Full failing loudly
	// keeps "full form equals bare form" distinct from "this address
	// has no resource".
	ErrNoResource = errors.New("jid: address has no resource")
)

// IllegalJIDError is the failure reported by every construction path.
// Raw is the literal address that was attempted (assembled from the
// component triple for the explicit constructors) and Err is the
// underlying cause: ErrEmptyDomain, ErrComponentTooLong wrapped with
// size detail, or a preparation profile rejection.
type IllegalJIDError struct {
	Raw string
	Err error
}

func (e *IllegalJIDError) Error() string {
	return fmt.Sprintf("illegal JID %q: %v", e.Raw, e.Err)
}

func (e *IllegalJIDError) Unwrap() error { return e.Err }
