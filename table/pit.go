/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package table

// PitEntry records the first unsatisfied requester of a content name.
type PitEntry struct {
	Name      string
	Requester string
}

// Pit is a router's Pending Interest Table. Only the first requester of each name is kept;
// later requesters for the same name are neither recorded nor suppressed.
type Pit struct {
	requesters map[string]string
	order      []string
}

// NewPit creates an empty Pending Interest Table.
func NewPit() *Pit {
	p := new(Pit)
	p.requesters = make(map[string]string)
	p.order = make([]string, 0)
	return p
}

// Insert registers the requester for the specified name if the name is not already pending.
// Returns whether a new entry was created.
func (p *Pit) Insert(name string, requester string) bool {
	if _, ok := p.requesters[name]; ok {
		return false
	}
	p.requesters[name] = requester
	p.order = append(p.order, name)
	return true
}

// Find returns the requester recorded for the specified name.
func (p *Pit) Find(name string) (string, bool) {
	requester, ok := p.requesters[name]
	return requester, ok
}

// Size returns the number of pending names.
func (p *Pit) Size() int {
	return len(p.order)
}

// Entries returns the pending entries in the order they were created.
func (p *Pit) Entries() []PitEntry {
	entries := make([]PitEntry, len(p.order))
	for i, name := range p.order {
		entries[i] = PitEntry{Name: name, Requester: p.requesters[name]}
	}
	return entries
}

// Clear removes every entry.
func (p *Pit) Clear() {
	p.requesters = make(map[string]string)
	p.order = make([]string, 0)
}
