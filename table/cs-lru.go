/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package table

import (
	"container/list"
	"time"
)

// recencyList orders Content Store entries by their latest admission.
type recencyList struct {
	cs          *ContentStore
	queue       *list.List
	locations   map[uint64]*list.Element
	accessTimes map[uint64]time.Time
}

func newRecencyList(cs *ContentStore) recencyList {
	return recencyList{
		cs:          cs,
		queue:       list.New(),
		locations:   make(map[uint64]*list.Element),
		accessTimes: make(map[uint64]time.Time),
	}
}

func (l *recencyList) touch(index uint64) {
	if location, ok := l.locations[index]; ok {
		l.queue.Remove(location)
	}
	l.locations[index] = l.queue.PushBack(index)
	l.accessTimes[index] = l.cs.now()
}

// AfterInsert is called after a new entry is inserted into the Content Store.
func (l *recencyList) AfterInsert(index uint64, name string) {
	l.touch(index)
}

// AfterRefresh is called after an admission refreshes an existing entry in the Content Store.
func (l *recencyList) AfterRefresh(index uint64, name string) {
	l.touch(index)
}

// BeforeErase is called before an entry is erased from the Content Store.
func (l *recencyList) BeforeErase(index uint64, name string) {
	if location, ok := l.locations[index]; ok {
		l.queue.Remove(location)
		delete(l.locations, index)
	}
	delete(l.accessTimes, index)
}

// AccessTime returns the recorded access time of the entry with the specified index.
func (l *recencyList) AccessTime(index uint64) (time.Time, bool) {
	t, ok := l.accessTimes[index]
	return t, ok
}

// CsLRU is a least recently used (LRU) replacement policy for the Content Store.
type CsLRU struct {
	recencyList
}

// NewCsLRU creates a new LRU replacement policy for the Content Store.
func NewCsLRU(cs *ContentStore) *CsLRU {
	return &CsLRU{recencyList: newRecencyList(cs)}
}

func (l *CsLRU) String() string {
	return string(CsPolicyLRU)
}

// EvictEntry selects the entry with the oldest access time.
func (l *CsLRU) EvictEntry() (uint64, bool) {
	front := l.queue.Front()
	if front == nil {
		return 0, false
	}
	return front.Value.(uint64), true
}

// CsMRU is a most recently used (MRU) replacement policy for the Content Store.
type CsMRU struct {
	recencyList
}

// NewCsMRU creates a new MRU replacement policy for the Content Store.
func NewCsMRU(cs *ContentStore) *CsMRU {
	return &CsMRU{recencyList: newRecencyList(cs)}
}

func (m *CsMRU) String() string {
	return string(CsPolicyMRU)
}

// EvictEntry selects the entry with the newest access time.
func (m *CsMRU) EvictEntry() (uint64, bool) {
	back := m.queue.Back()
	if back == nil {
		return 0, false
	}
	return back.Value.(uint64), true
}
