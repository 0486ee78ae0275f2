/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package table

// CsFACR is the frequency/admission-conscious reservation policy for the Content Store.
// The top-N content of the owner's popularity table is reserved and never evicted; the remaining
// entries share CAPACITY-N slots and are evicted oldest first.
type CsFACR struct {
	cs *ContentStore
}

// NewCsFACR creates a new FACR replacement policy for the Content Store.
func NewCsFACR(cs *ContentStore) *CsFACR {
	return &CsFACR{cs: cs}
}

func (f *CsFACR) String() string {
	return string(CsPolicyFACR)
}

// AfterInsert does nothing in FACR.
func (f *CsFACR) AfterInsert(index uint64, name string) {}

// AfterRefresh does nothing in FACR.
func (f *CsFACR) AfterRefresh(index uint64, name string) {}

// BeforeErase does nothing in FACR.
func (f *CsFACR) BeforeErase(index uint64, name string) {}

// Reserved returns the set of names currently protected from eviction.
func (f *CsFACR) Reserved() map[string]bool {
	reserved := make(map[string]bool)
	if f.cs.popularity == nil || f.cs.config.TopNPopular <= 0 {
		return reserved
	}
	for _, name := range f.cs.popularity.TopContent(f.cs.config.TopNPopular) {
		reserved[name] = true
	}
	return reserved
}

// EvictEntry selects the oldest non-reserved entry, but only once the non-reserved entries fill their budget.
func (f *CsFACR) EvictEntry() (uint64, bool) {
	reserved := f.Reserved()
	nonReserved := make([]*CsEntry, 0, len(f.cs.entries))
	for _, entry := range f.cs.entries {
		if !reserved[entry.name] {
			nonReserved = append(nonReserved, entry)
		}
	}

	if len(nonReserved) == 0 || len(nonReserved) < f.cs.config.Capacity-f.cs.config.TopNPopular {
		return 0, false
	}
	return nonReserved[0].index, true
}
