// Copyright 2026 The Tinder Authors
// SPDX-License-Identifier: Apache-2.0

package jid

import (
	"fmt"

	"github.com/akrherz/tinder/lib/fifocache"
	"github.com/akrherz/tinder/lib/stringprep"
)

// MaxComponentBytes is the maximum encoded size of a single JID
// component (RFC 6122 §2.1). The limit applies to the normalized form
// and is measured in UTF-8 bytes.
const MaxComponentBytes = 1023

// Default capacities for the per-component fixed-point caches. The
// domain cache is much smaller because a server talks to far fewer
// distinct domains than distinct users or sessions.
const (
	DefaultNodeCacheCapacity     = 10000
	DefaultDomainCacheCapacity   = 500
	DefaultResourceCacheCapacity = 10000
)

// PrepFunc applies a string preparation profile to one component,
// returning the canonical form or an error for strings the profile
// rejects. Implementations must be idempotent: prep(prep(s)) ==
// prep(s) whenever prep(s) succeeds. The fixed-point caches rely on
// this to skip re-preparation of already-canonical values.
type PrepFunc func(string) (string, error)

// NormalizerConfig configures a Normalizer. The zero value selects the
// stringprep profiles and default cache capacities. Supplying an
// explicit cache (for example a tiny one in tests) overrides the
// corresponding default.
type NormalizerConfig struct {
	NodePrep     PrepFunc // default stringprep.Node
	DomainPrep   PrepFunc // default stringprep.Domain
	ResourcePrep PrepFunc // default stringprep.Resource

	NodeCache     *fifocache.Cache[string]
	DomainCache   *fifocache.Cache[string]
	ResourceCache *fifocache.Cache[string]
}

// Normalizer prepares JID components: it applies the per-kind
// preparation profile, enforces the component length ceiling, and
// maintains the fixed-point caches. A Normalizer is safe for
// concurrent use; the package-level constructors share one
// process-wide instance.
type Normalizer struct {
	node     component
	domain   component
	resource component
}

// component binds one kind's preparation profile to its cache.
type component struct {
	kind  string
	prep  PrepFunc
	cache *fifocache.Cache[string]
}

// NewNormalizer constructs a Normalizer from config, filling in
// defaults for any zero field.
func NewNormalizer(config NormalizerConfig) *Normalizer {
	if config.NodePrep == nil {
		config.NodePrep = stringprep.Node
	}
	if config.DomainPrep == nil {
		config.DomainPrep = stringprep.Domain
	}
	if config.ResourcePrep == nil {
		config.ResourcePrep = stringprep.Resource
	}
	if config.NodeCache == nil {
		config.NodeCache = fifocache.New[string](DefaultNodeCacheCapacity)
	}
	if config.DomainCache == nil {
		config.DomainCache = fifocache.New[string](DefaultDomainCacheCapacity)
	}
	if config.ResourceCache == nil {
		config.ResourceCache = fifocache.New[string](DefaultResourceCacheCapacity)
	}
	return &Normalizer{
		node:     component{kind: "node", prep: config.NodePrep, cache: config.NodeCache},
		domain:   component{kind: "domain", prep: config.DomainPrep, cache: config.DomainCache},
		resource: component{kind: "resource", prep: config.ResourcePrep, cache: config.ResourceCache},
	}
}

// Parse builds a JID from its textual representation, normalizing each
// component. Returns *IllegalJIDError on malformed syntax, profile
// rejection, or an over-long component.
func (n *Normalizer) Parse(raw string) (JID, error) {
	node, domain, resource, err := Split(raw)
	if err != nil {
		return JID{}, &IllegalJIDError{Raw: raw, Err: err}
	}
	return n.New(node, domain, resource)
}

// New builds a JID from an explicit component triple, normalizing each
// component. Empty node and resource mean absent; the domain must be
// present. Returns *IllegalJIDError carrying the assembled literal on
// any failure.
func (n *Normalizer) New(node, domain, resource string) (JID, error) {
	literal := assemble(node, domain, resource)
	if domain == "" {
		return JID{}, &IllegalJIDError{Raw: literal, Err: ErrEmptyDomain}
	}

	var err error
	if node != "" {
		if node, err = n.node.apply(node); err != nil {
			return JID{}, &IllegalJIDError{Raw: literal, Err: err}
		}
	}
	if domain, err = n.domain.apply(domain); err != nil {
		return JID{}, &IllegalJIDError{Raw: literal, Err: err}
	}
	if domain == "" {
		return JID{}, &IllegalJIDError{Raw: literal, Err: ErrEmptyDomain}
	}
	if resource != "" {
		if resource, err = n.resource.apply(resource); err != nil {
			return JID{}, &IllegalJIDError{Raw: literal, Err: err}
		}
	}
	return NewTrusted(node, domain, resource), nil
}

// apply normalizes one component value. A cache hit means the value
// was previously produced as prep output, and prep is idempotent, so
// the value is already its own canonical form and the profile call is
// skipped. The cache lock is internal to fifocache — it is never held
// across the prep call.
func (c component) apply(value string) (string, error) {
	if c.cache.Contains(value) {
		return value, nil
	}
	prepared, err := c.prep(value)
	if err != nil {
		return "", fmt.Errorf("%s: %w", c.kind, err)
	}
	if len(prepared) > MaxComponentBytes {
		return "", fmt.Errorf("%s is %d bytes, maximum is %d: %w",
			c.kind, len(prepared), MaxComponentBytes, ErrComponentTooLong)
	}
	c.cache.Put(prepared)
	return prepared, nil
}

// assemble reconstructs the literal textual form of a component triple
// for error reporting. The raw, pre-normalization values are used so
// the error shows what the caller actually attempted.
func assemble(node, domain, resource string) string {
	var literal string
	if node != "" {
		literal = node + "@"
	}
	literal += domain
	if resource != "" {
		literal += "/" + resource
	}
	return literal
}
