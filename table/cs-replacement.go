/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package table

import (
	"strings"

	"github.com/named-data/YaCSim/core"
)

// CsPolicy names a Content Store replacement policy.
type CsPolicy string

// Supported Content Store replacement policies.
const (
	CsPolicyLRU  CsPolicy = "LRU"
	CsPolicyMRU  CsPolicy = "MRU"
	CsPolicyLFU  CsPolicy = "LFU"
	CsPolicyFIFO CsPolicy = "FIFO"
	CsPolicyFACR CsPolicy = "FACR"
)

// CsPolicies lists every supported policy, in the order simulations evaluate them.
var CsPolicies = []CsPolicy{CsPolicyLRU, CsPolicyLFU, CsPolicyFIFO, CsPolicyMRU, CsPolicyFACR}

// ParseCsPolicy parses a policy name (case-insensitive).
func ParseCsPolicy(name string) (CsPolicy, error) {
	policy := CsPolicy(strings.ToUpper(strings.TrimSpace(name)))
	for _, known := range CsPolicies {
		if policy == known {
			return policy, nil
		}
	}
	return "", &core.ConfigurationError{Key: "tables.cs.policy", Value: name}
}

// CsReplacementPolicy represents a cache replacement policy for the Content Store.
type CsReplacementPolicy interface {
	String() string

	// AfterInsert is called after a new entry is inserted into the Content Store.
	AfterInsert(index uint64, name string)

	// AfterRefresh is called after an admission refreshes an existing entry in the Content Store.
	AfterRefresh(index uint64, name string)

	// BeforeErase is called before an entry is erased from the Content Store, whatever the reason.
	BeforeErase(index uint64, name string)

	// EvictEntry is called when the Content Store is full. It returns the index of the entry to evict,
	// or false if the policy chooses to admit without evicting.
	EvictEntry() (uint64, bool)
}

// PopularitySource provides the most popular content names, best first.
type PopularitySource interface {
	TopContent(n int) []string
}

func newCsReplacementPolicy(policy CsPolicy, cs *ContentStore) CsReplacementPolicy {
	switch policy {
	case CsPolicyLRU:
		return NewCsLRU(cs)
	case CsPolicyMRU:
		return NewCsMRU(cs)
	case CsPolicyLFU:
		return NewCsLFU(cs)
	case CsPolicyFIFO:
		return NewCsFIFO(cs)
	case CsPolicyFACR:
		return NewCsFACR(cs)
	}
	return nil
}
