/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package table

// CsLFU is a least frequently used (LFU) replacement policy for the Content Store.
// The frequency of an entry counts its admissions while it stays in the store.
type CsLFU struct {
	cs        *ContentStore
	frequency map[uint64]int
}

// NewCsLFU creates a new LFU replacement policy for the Content Store.
func NewCsLFU(cs *ContentStore) *CsLFU {
	l := new(CsLFU)
	l.cs = cs
	l.frequency = make(map[uint64]int)
	return l
}

func (l *CsLFU) String() string {
	return string(CsPolicyLFU)
}

// AfterInsert is called after a new entry is inserted into the Content Store.
func (l *CsLFU) AfterInsert(index uint64, name string) {
	l.frequency[index]++
}

// AfterRefresh is called after an admission refreshes an existing entry in the Content Store.
func (l *CsLFU) AfterRefresh(index uint64, name string) {
	l.frequency[index]++
}

// BeforeErase is called before an entry is erased from the Content Store.
func (l *CsLFU) BeforeErase(index uint64, name string) {
	delete(l.frequency, index)
}

// Frequency returns the recorded access frequency of the entry with the specified index.
func (l *CsLFU) Frequency(index uint64) int {
	return l.frequency[index]
}

// EvictEntry selects the entry with the lowest frequency. Ties go to the entry resident longest.
func (l *CsLFU) EvictEntry() (uint64, bool) {
	var victim uint64
	found := false
	lowest := 0
	for _, entry := range l.cs.entries {
		frequency := l.frequency[entry.index]
		if !found || frequency < lowest {
			victim = entry.index
			lowest = frequency
			found = true
		}
	}
	return victim, found
}
