/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package table

import (
	"strings"

	"golang.org/x/exp/slices"
)

// NextHopKind tells whether a next hop is a router or a publisher.
type NextHopKind uint8

// Next hop kinds.
const (
	NextHopRouter NextHopKind = iota + 1
	NextHopPublisher
)

func (k NextHopKind) String() string {
	switch k {
	case NextHopRouter:
		return "router"
	case NextHopPublisher:
		return "publisher"
	}
	return "unknown"
}

// NextHop is the node an Interest is forwarded to.
type NextHop struct {
	Kind NextHopKind
	Name string
}

// RouterHop returns a next hop pointing at the specified router.
func RouterHop(name string) NextHop {
	return NextHop{Kind: NextHopRouter, Name: name}
}

// PublisherHop returns a next hop pointing at the specified publisher.
func PublisherHop(name string) NextHop {
	return NextHop{Kind: NextHopPublisher, Name: name}
}

func (h NextHop) String() string {
	return h.Kind.String() + ":" + h.Name
}

// FibEntry is a content name and its next hop.
type FibEntry struct {
	Name    string
	NextHop NextHop
}

// Fib is a router's Forwarding Information Base, mapping exact content names to a single next hop.
type Fib struct {
	nexthops map[string]NextHop
}

// NewFib creates an empty FIB.
func NewFib() *Fib {
	f := new(Fib)
	f.nexthops = make(map[string]NextHop)
	return f
}

// Insert sets the next hop of the specified name, replacing any previous one.
func (f *Fib) Insert(name string, nexthop NextHop) {
	f.nexthops[name] = nexthop
}

// Lookup returns the next hop of the specified name.
func (f *Fib) Lookup(name string) (NextHop, bool) {
	nexthop, ok := f.nexthops[name]
	return nexthop, ok
}

// Remove removes the entry of the specified name, returning whether it existed.
func (f *Fib) Remove(name string) bool {
	if _, ok := f.nexthops[name]; !ok {
		return false
	}
	delete(f.nexthops, name)
	return true
}

// Size returns the number of entries.
func (f *Fib) Size() int {
	return len(f.nexthops)
}

// Entries returns every entry, sorted by name.
func (f *Fib) Entries() []FibEntry {
	entries := make([]FibEntry, 0, len(f.nexthops))
	for name, nexthop := range f.nexthops {
		entries = append(entries, FibEntry{Name: name, NextHop: nexthop})
	}
	slices.SortFunc(entries, func(a, b FibEntry) int {
		return strings.Compare(a.Name, b.Name)
	})
	return entries
}
