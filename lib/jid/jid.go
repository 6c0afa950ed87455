// Copyright 2026 The Tinder Authors
// SPDX-License-Identifier: Apache-2.0

package jid

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/zeebo/blake3"
)

// JID is an XMPP address: [node "@"] domain ["/" resource]. Node and
// resource are optional (empty string means absent); domain is always
// present on a valid JID.
//
// JID is an immutable, comparable value type. All components are
// stored in normalized form and the bare and full string forms are
// pre-computed at construction, so accessors never allocate. Two JIDs
// constructed from different spellings of the same address are equal
// with == as well as with Equal. The zero value is not a valid
// address; use IsZero to check.
type JID struct {
	node     string
	domain   string
	resource string

	// Pre-computed canonical forms. full equals bare when the
	// resource is absent.
	bare string
	full string
}

// defaultNormalizer backs the package-level constructors. It lives for
// the whole process so that the fixed-point caches accumulate the
// hot working set of addresses.
var defaultNormalizer = NewNormalizer(NormalizerConfig{})

// Parse builds a JID from its textual representation using the shared
// process-wide Normalizer. Returns *IllegalJIDError if the text is
// malformed or a component fails normalization.
func Parse(raw string) (JID, error) {
	return defaultNormalizer.Parse(raw)
}

// MustParse is like Parse but panics on error. Use in tests and static
// initialization where the input is known-valid.
func MustParse(raw string) JID {
	j, err := Parse(raw)
	if err != nil {
		panic(fmt.Sprintf("jid.MustParse(%q): %v", raw, err))
	}
	return j
}

// New builds a JID from an explicit component triple using the shared
// process-wide Normalizer. Empty node and resource mean absent.
func New(node, domain, resource string) (JID, error) {
	return defaultNormalizer.New(node, domain, resource)
}

// NewTrusted builds a JID from components that are already in
// normalized form, assigning them verbatim: no preparation, no length
// checks, no cache interaction. For callers that hold components
// produced by a previous normalization (parsing a roster snapshot the
// server itself wrote, for example). Passing unnormalized input breaks
// the equality guarantees.
func NewTrusted(node, domain, resource string) JID {
	var b strings.Builder
	b.Grow(len(node) + len(domain) + len(resource) + 2)
	if node != "" {
		b.WriteString(node)
		b.WriteByte('@')
	}
	b.WriteString(domain)
	bare := b.String()

	full := bare
	if resource != "" {
		b.WriteByte('/')
		b.WriteString(resource)
		full = b.String()
	}
	return JID{node: node, domain: domain, resource: resource, bare: bare, full: full}
}

// Node returns the node part, or "" if the address has none.
func (j JID) Node() string { return j.node }

// Domain returns the domain part.
func (j JID) Domain() string { return j.domain }

// Resource returns the resource part, or "" if the address has none.
func (j JID) Resource() string { return j.resource }

// Bare returns the bare form of the address: "node@domain", or just
// "domain" when the node is absent. Always available.
func (j JID) Bare() string { return j.bare }

// Full returns the full form of the address: "node@domain/resource".
// Returns ErrNoResource if the address was built without a resource —
// callers must not conflate "full form equals bare form" with "this
// address has a resource". Use String for the unconditional canonical
// form.
func (j JID) Full() (string, error) {
	if j.resource == "" {
		return "", fmt.Errorf("%w: %s", ErrNoResource, j.full)
	}
	return j.full, nil
}

// String returns the canonical textual form: the full form when a
// resource is present, otherwise the bare form. Satisfies fmt.Stringer.
func (j JID) String() string { return j.full }

// BareJID returns a copy of the address with the resource stripped.
// Returns j itself when there is no resource.
func (j JID) BareJID() JID {
	if j.resource == "" {
		return j
	}
	return JID{node: j.node, domain: j.domain, bare: j.bare, full: j.bare}
}

// IsZero reports whether the JID is the zero value (uninitialized).
// A constructed JID always has a non-empty domain.
func (j JID) IsZero() bool { return j.domain == "" }

// Equal reports whether two addresses have equal node, domain, and
// resource components (absent == absent). Because components are
// normalized at construction, this is semantic address equality:
// "User@EXAMPLE.com/Home" equals "user@example.com/Home" but not
// "user@example.com/home".
func (j JID) Equal(other JID) bool {
	return j.node == other.node && j.domain == other.domain && j.resource == other.resource
}

// Compare orders two addresses lexicographically by (domain, node,
// resource), with absent components ordering as the empty string.
// The result is 0 exactly when a.Equal(b). Suitable for
// slices.SortFunc.
func Compare(a, b JID) int {
	if c := strings.Compare(a.domain, b.domain); c != 0 {
		return c
	}
	if c := strings.Compare(a.node, b.node); c != 0 {
		return c
	}
	return strings.Compare(a.resource, b.resource)
}

// hashKey is the BLAKE3 domain separation key for JID hashing, the
// ASCII domain name zero-padded to 32 bytes.
var hashKey = [32]byte{
	't', 'i', 'n', 'd', 'e', 'r', '.', 'j', 'i', 'd', 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Hash returns a 64-bit keyed BLAKE3 hash of the canonical full form.
// Equal addresses hash equally, and the value is stable across
// processes and architectures, so it can shard addresses across
// routing tables or ring buckets cluster-wide.
func (j JID) Hash() uint64 {
	hasher, err := blake3.NewKeyed(hashKey[:])
	if err != nil {
		// NewKeyed fails only for a wrong key length, which the
		// fixed-size array rules out.
		panic("jid: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write([]byte(j.full))
	return binary.BigEndian.Uint64(hasher.Sum(nil)[:8])
}

// Equivalent reports whether two textual addresses denote the same
// JID after normalization. Returns an error if either text fails to
// parse or normalize.
func Equivalent(a, b string) (bool, error) {
	ja, err := Parse(a)
	if err != nil {
		return false, err
	}
	jb, err := Parse(b)
	if err != nil {
		return false, err
	}
	return ja.Equal(jb), nil
}

// MarshalText implements encoding.TextMarshaler. Serializes as the
// canonical String form. The zero value marshals as the empty string.
func (j JID) MarshalText() ([]byte, error) {
	if j.IsZero() {
		return []byte{}, nil
	}
	return []byte(j.full), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, parsing and
// normalizing the address. Empty input produces the zero value.
func (j *JID) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*j = JID{}
		return nil
	}
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*j = parsed
	return nil
}
