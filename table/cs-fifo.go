/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package table

// CsFIFO is a first in, first out (FIFO) replacement policy for the Content Store.
// It relies on the insertion order kept by the store itself.
type CsFIFO struct {
	cs *ContentStore
}

// NewCsFIFO creates a new FIFO replacement policy for the Content Store.
func NewCsFIFO(cs *ContentStore) *CsFIFO {
	return &CsFIFO{cs: cs}
}

func (f *CsFIFO) String() string {
	return string(CsPolicyFIFO)
}

// AfterInsert does nothing in FIFO.
func (f *CsFIFO) AfterInsert(index uint64, name string) {}

// AfterRefresh does nothing in FIFO: a refresh does not change the insertion order.
func (f *CsFIFO) AfterRefresh(index uint64, name string) {}

// BeforeErase does nothing in FIFO.
func (f *CsFIFO) BeforeErase(index uint64, name string) {}

// EvictEntry selects the entry resident longest.
func (f *CsFIFO) EvictEntry() (uint64, bool) {
	if len(f.cs.entries) == 0 {
		return 0, false
	}
	return f.cs.entries[0].index, true
}
