/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package table_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/named-data/YaCSim/core"
	"github.com/named-data/YaCSim/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type staticPopularity []string

func (s staticPopularity) TopContent(n int) []string {
	if n > len(s) {
		n = len(s)
	}
	return s[:n]
}

func newTestCs(t *testing.T, policy table.CsPolicy, capacity int, topN int, popularity table.PopularitySource) (*table.ContentStore, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	cs, err := table.NewContentStore("R1", policy, popularity, table.CsConfig{
		Capacity:    capacity,
		TopNPopular: topN,
		TTL:         5 * time.Minute,
		Now:         clock.Now,
	})
	require.NoError(t, err)
	return cs, clock
}

func admitAll(cs *table.ContentStore, clock *fakeClock, names ...string) {
	for _, name := range names {
		clock.Advance(time.Second)
		cs.Admit(name)
	}
}

func TestParseCsPolicy(t *testing.T) {
	for _, name := range []string{"lru", "MRU", "Lfu", "fifo", " FACR "} {
		_, err := table.ParseCsPolicy(name)
		assert.NoError(t, err, name)
	}

	_, err := table.ParseCsPolicy("RANDOM")
	var configErr *core.ConfigurationError
	assert.True(t, errors.As(err, &configErr))
	assert.Equal(t, "RANDOM", configErr.Value)
}

func TestNewContentStoreInvalid(t *testing.T) {
	_, err := table.NewContentStore("R1", table.CsPolicyLRU, nil, table.CsConfig{Capacity: 0})
	assert.Error(t, err)

	_, err = table.NewContentStore("R1", table.CsPolicyLRU, nil, table.CsConfig{Capacity: 3, TopNPopular: 4})
	assert.Error(t, err)

	_, err = table.NewContentStore("R1", table.CsPolicy("ARC"), nil, table.CsConfig{Capacity: 3})
	var configErr *core.ConfigurationError
	assert.True(t, errors.As(err, &configErr))
}

func TestCsLRU(t *testing.T) {
	cs, clock := newTestCs(t, table.CsPolicyLRU, 4, 0, nil)
	admitAll(cs, clock, "a", "b", "c", "a", "d")
	assert.Equal(t, 0, cs.Evictions())
	assert.Equal(t, []string{"a", "b", "c", "d"}, cs.Names())

	// a was refreshed, so b is the least recently admitted
	clock.Advance(time.Second)
	assert.Equal(t, "b", cs.Admit("e"))
	assert.Equal(t, []string{"a", "c", "d", "e"}, cs.Names())

	clock.Advance(time.Second)
	assert.Equal(t, "c", cs.Admit("f"))
	assert.Equal(t, []string{"a", "d", "e", "f"}, cs.Names())
	assert.Equal(t, 2, cs.Evictions())

	at, ok := cs.Replacement().(*table.CsLRU).AccessTime(cs.Find("f").Index())
	assert.True(t, ok)
	assert.Equal(t, clock.Now(), at)
}

func TestCsMRU(t *testing.T) {
	cs, clock := newTestCs(t, table.CsPolicyMRU, 3, 0, nil)
	admitAll(cs, clock, "a", "b", "c")

	clock.Advance(time.Second)
	assert.Equal(t, "c", cs.Admit("d"))
	assert.Equal(t, []string{"a", "b", "d"}, cs.Names())

	clock.Advance(time.Second)
	assert.Equal(t, "d", cs.Admit("e"))
	assert.Equal(t, []string{"a", "b", "e"}, cs.Names())
}

func TestCsLFU(t *testing.T) {
	cs, clock := newTestCs(t, table.CsPolicyLFU, 4, 0, nil)
	admitAll(cs, clock, "a", "b", "c", "a")
	assert.Equal(t, 2, cs.Replacement().(*table.CsLFU).Frequency(cs.Find("a").Index()))
	assert.Equal(t, 1, cs.Replacement().(*table.CsLFU).Frequency(cs.Find("b").Index()))

	admitAll(cs, clock, "b", "d")
	assert.Equal(t, []string{"a", "b", "c", "d"}, cs.Names())

	// c and d both have frequency 1: the older one goes
	clock.Advance(time.Second)
	assert.Equal(t, "c", cs.Admit("e"))
	assert.Equal(t, []string{"a", "b", "d", "e"}, cs.Names())
}

func TestCsFIFO(t *testing.T) {
	cs, clock := newTestCs(t, table.CsPolicyFIFO, 3, 0, nil)
	admitAll(cs, clock, "a", "b", "c")

	// A refresh does not move an entry
	clock.Advance(time.Second)
	assert.Equal(t, "a", cs.Admit("b"))
	assert.Equal(t, []string{"b", "c"}, cs.Names())

	admitAll(cs, clock, "d")
	clock.Advance(time.Second)
	assert.Equal(t, "b", cs.Admit("e"))
	assert.Equal(t, []string{"c", "d", "e"}, cs.Names())
}

func TestCsFACRReservesPopular(t *testing.T) {
	popular := staticPopularity{"a", "b"}
	cs, clock := newTestCs(t, table.CsPolicyFACR, 4, 2, popular)
	admitAll(cs, clock, "a", "x", "b", "y")

	// Non-reserved entries x and y fill the 2 unreserved slots: evict the oldest of them
	clock.Advance(time.Second)
	assert.Equal(t, "x", cs.Admit("z"))
	assert.Equal(t, []string{"a", "b", "y", "z"}, cs.Names())
	assert.True(t, cs.Contains("a"))
	assert.True(t, cs.Contains("b"))
}

func TestCsFACRReservedNotCached(t *testing.T) {
	popular := staticPopularity{"p", "q"}
	cs, clock := newTestCs(t, table.CsPolicyFACR, 4, 2, popular)
	admitAll(cs, clock, "w", "x", "y", "z")

	clock.Advance(time.Second)
	assert.Equal(t, "w", cs.Admit("v"))
	assert.Equal(t, []string{"x", "y", "z", "v"}, cs.Names())
	assert.Equal(t, 1, cs.Evictions())
}

func TestCsFACRAllReserved(t *testing.T) {
	popular := staticPopularity{"a", "b", "c"}
	cs, clock := newTestCs(t, table.CsPolicyFACR, 3, 3, popular)
	admitAll(cs, clock, "a", "b", "c")

	clock.Advance(time.Second)
	assert.Equal(t, "a", cs.Admit("d"))
	assert.Equal(t, 3, cs.Size())
}

func TestCsCapacityInvariant(t *testing.T) {
	popular := staticPopularity{"n1", "n3", "n5", "n7", "n9"}
	for _, policy := range table.CsPolicies {
		cs, clock := newTestCs(t, policy, 15, 5, popular)
		for i := 0; i < 200; i++ {
			clock.Advance(time.Millisecond)
			cs.Admit(fmt.Sprintf("n%d", (i*7)%23))
			assert.LessOrEqual(t, cs.Size(), 15, string(policy))
		}
	}
}

func TestCsRefreshWhenFullCountsEviction(t *testing.T) {
	cs, clock := newTestCs(t, table.CsPolicyFIFO, 2, 0, nil)
	admitAll(cs, clock, "a", "b")
	clock.Advance(time.Second)
	assert.Equal(t, "a", cs.Admit("b"))
	assert.Equal(t, 1, cs.Evictions())
	assert.Equal(t, []string{"b"}, cs.Names())
}

func TestCsTTL(t *testing.T) {
	cs, clock := newTestCs(t, table.CsPolicyLRU, 5, 0, nil)
	admitAll(cs, clock, "a", "b")
	entry := cs.Find("a")
	require.NotNil(t, entry)
	assert.Equal(t, entry.InsertTime().Add(5*time.Minute), entry.StaleTime())

	clock.Advance(4 * time.Minute)
	cs.Admit("c")
	assert.Equal(t, []string{"a", "b", "c"}, cs.Names())

	// a expires, b is exactly at its deadline and stays
	clock.Advance(time.Minute)
	cs.Admit("d")
	assert.Equal(t, []string{"b", "c", "d"}, cs.Names())

	clock.Advance(10 * time.Minute)
	assert.ElementsMatch(t, []string{"b", "c", "d"}, cs.ExpireEntries())
	assert.Equal(t, 0, cs.Size())
	assert.Equal(t, 0, cs.Evictions())
}

func TestCsRefreshExtendsTTL(t *testing.T) {
	cs, clock := newTestCs(t, table.CsPolicyLRU, 5, 0, nil)
	admitAll(cs, clock, "a")
	clock.Advance(4 * time.Minute)
	cs.Admit("a")
	clock.Advance(4 * time.Minute)
	assert.Empty(t, cs.ExpireEntries())
	assert.True(t, cs.Contains("a"))
}

func TestCsEraseAndClear(t *testing.T) {
	cs, clock := newTestCs(t, table.CsPolicyLRU, 2, 0, nil)
	admitAll(cs, clock, "a", "b", "c")
	assert.Equal(t, 1, cs.Evictions())

	assert.True(t, cs.Erase("b"))
	assert.False(t, cs.Erase("b"))
	assert.Equal(t, []string{"c"}, cs.Names())

	cs.Clear()
	assert.Equal(t, 0, cs.Size())
	assert.Equal(t, 0, cs.Evictions())
	assert.Nil(t, cs.Find("c"))
}

func TestCsSetPolicy(t *testing.T) {
	cs, clock := newTestCs(t, table.CsPolicyLRU, 3, 0, nil)
	admitAll(cs, clock, "a", "b", "c")
	require.NoError(t, cs.SetPolicy(table.CsPolicyMRU))
	assert.Equal(t, table.CsPolicyMRU, cs.Policy())
	assert.Equal(t, "MRU", cs.Replacement().String())

	// Entries are replayed in insertion order, so c is the most recent
	clock.Advance(time.Second)
	assert.Equal(t, "c", cs.Admit("d"))

	assert.Error(t, cs.SetPolicy(table.CsPolicy("nope")))
	assert.Equal(t, table.CsPolicyMRU, cs.Policy())
}

func TestCsEvents(t *testing.T) {
	cs, clock := newTestCs(t, table.CsPolicyFIFO, 2, 0, nil)
	events := make([]table.CsEvent, 0)
	handler := func(event table.CsEvent) {
		events = append(events, event)
	}
	require.NoError(t, cs.SubscribeEvents(handler))

	admitAll(cs, clock, "a", "b", "c")
	clock.Advance(10 * time.Minute)
	cs.ExpireEntries()

	types := make([]table.CsEventType, len(events))
	for i, event := range events {
		types[i] = event.Type
		assert.Equal(t, "R1", event.Store)
	}
	assert.Equal(t, []table.CsEventType{
		table.CsEventInsert, table.CsEventInsert, table.CsEventEvict,
		table.CsEventInsert, table.CsEventExpire, table.CsEventExpire,
	}, types)
	assert.Equal(t, "a", events[2].Name)
	assert.Equal(t, "evict", events[2].Type.String())

	require.NoError(t, cs.UnsubscribeEvents(handler))
	admitAll(cs, clock, "d")
	assert.Len(t, events, 6)
}
