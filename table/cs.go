/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package table

import (
	"strconv"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/cespare/xxhash"
	"github.com/named-data/YaCSim/core"
)

// CsConfig contains the sizing parameters of a Content Store.
type CsConfig struct {
	Capacity    int
	TopNPopular int
	TTL         time.Duration

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// CsEntry is an entry in a router's Content Store.
type CsEntry struct {
	index      uint64
	name       string
	insertTime time.Time
	staleTime  time.Time
}

// Index returns the hash of the entry name, used for fast lookup.
func (e *CsEntry) Index() uint64 {
	return e.index
}

// Name returns the cached content name.
func (e *CsEntry) Name() string {
	return e.name
}

// InsertTime returns the time the entry was inserted.
func (e *CsEntry) InsertTime() time.Time {
	return e.insertTime
}

// StaleTime returns the time after which the entry expires.
func (e *CsEntry) StaleTime() time.Time {
	return e.staleTime
}

// ContentStore is a bounded cache of content names with a pluggable replacement policy and TTL expiry.
// Warning: a Content Store is owned by one router and must not be used concurrently.
type ContentStore struct {
	owner  string
	config CsConfig

	entries []*CsEntry // In insertion order
	csMap   map[uint64]*CsEntry

	policy      CsPolicy
	replacement CsReplacementPolicy
	popularity  PopularitySource

	events     EventBus.Bus
	nEvictions int
}

// NewContentStore creates a Content Store for the specified owner. The popularity source is consulted by FACR.
func NewContentStore(owner string, policy CsPolicy, popularity PopularitySource, config CsConfig) (*ContentStore, error) {
	if config.Capacity < 1 {
		return nil, &core.ConfigurationError{Key: "tables.cs.capacity", Value: strconv.Itoa(config.Capacity)}
	}
	if config.TopNPopular < 0 || config.TopNPopular > config.Capacity {
		return nil, &core.ConfigurationError{Key: "tables.cs.top_n_popular", Value: strconv.Itoa(config.TopNPopular)}
	}
	if config.Now == nil {
		config.Now = time.Now
	}

	c := new(ContentStore)
	c.owner = owner
	c.config = config
	c.entries = make([]*CsEntry, 0, config.Capacity)
	c.csMap = make(map[uint64]*CsEntry)
	c.popularity = popularity
	c.events = EventBus.New()
	if err := c.SetPolicy(policy); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *ContentStore) String() string {
	return "ContentStore-" + c.owner
}

func (c *ContentStore) now() time.Time {
	return c.config.Now()
}

func hashCsName(name string) uint64 {
	return xxhash.Sum64String(name)
}

// SetPolicy replaces the replacement policy. Entries already in the store are handed to the new policy in insertion order.
func (c *ContentStore) SetPolicy(policy CsPolicy) error {
	replacement := newCsReplacementPolicy(policy, c)
	if replacement == nil {
		return &core.ConfigurationError{Key: "tables.cs.policy", Value: string(policy)}
	}
	c.policy = policy
	c.replacement = replacement
	for _, entry := range c.entries {
		c.replacement.AfterInsert(entry.index, entry.name)
	}
	return nil
}

// Policy returns the active replacement policy.
func (c *ContentStore) Policy() CsPolicy {
	return c.policy
}

// Replacement returns the active replacement policy implementation.
func (c *ContentStore) Replacement() CsReplacementPolicy {
	return c.replacement
}

// Capacity returns the maximum number of entries.
func (c *ContentStore) Capacity() int {
	return c.config.Capacity
}

// Size returns the number of entries.
func (c *ContentStore) Size() int {
	return len(c.entries)
}

// Evictions returns how many admissions found the store full.
func (c *ContentStore) Evictions() int {
	return c.nEvictions
}

// Contains returns whether the specified name is cached.
func (c *ContentStore) Contains(name string) bool {
	_, ok := c.csMap[hashCsName(name)]
	return ok
}

// Find returns the entry for the specified name, or nil if it is not cached.
func (c *ContentStore) Find(name string) *CsEntry {
	return c.csMap[hashCsName(name)]
}

// Names returns the cached names in insertion order.
func (c *ContentStore) Names() []string {
	names := make([]string, len(c.entries))
	for i, entry := range c.entries {
		names[i] = entry.name
	}
	return names
}

// Admit caches the specified name, first expiring stale entries and evicting one entry if the store is full.
// Returns the name of the evicted entry, or "" if nothing was evicted.
func (c *ContentStore) Admit(name string) string {
	now := c.now()
	c.ExpireEntries()

	index := hashCsName(name)
	evicted := ""
	if len(c.entries) >= c.config.Capacity {
		c.nEvictions++
		if victim, ok := c.replacement.EvictEntry(); ok {
			evicted = c.erase(victim, CsEventEvict)
		}

		// Only reachable when every entry is reserved
		if _, isCached := c.csMap[index]; len(c.entries) >= c.config.Capacity && !isCached {
			core.LogDebug(c, "Policy ", c.replacement, " left the store full - evicting oldest entry")
			evicted = c.erase(c.entries[0].index, CsEventEvict)
		}
	}

	if entry, ok := c.csMap[index]; ok {
		entry.staleTime = now.Add(c.config.TTL)
		c.replacement.AfterRefresh(index, name)
		c.publish(CsEventRefresh, name, now)
	} else {
		entry := new(CsEntry)
		entry.index = index
		entry.name = name
		entry.insertTime = now
		entry.staleTime = now.Add(c.config.TTL)
		c.entries = append(c.entries, entry)
		c.csMap[index] = entry
		c.replacement.AfterInsert(index, name)
		c.publish(CsEventInsert, name, now)
	}

	if evicted != "" {
		core.LogTrace(c, "Admitted ", name, ", evicted ", evicted)
	}
	return evicted
}

// ExpireEntries removes every entry whose TTL has passed and returns their names.
func (c *ContentStore) ExpireEntries() []string {
	now := c.now()
	expired := make([]uint64, 0)
	for _, entry := range c.entries {
		if now.After(entry.staleTime) {
			expired = append(expired, entry.index)
		}
	}

	names := make([]string, 0, len(expired))
	for _, index := range expired {
		name := c.erase(index, CsEventExpire)
		core.LogDebug(c, "Content ", name, " expired and removed from cache")
		names = append(names, name)
	}
	return names
}

// Erase removes the specified name from the store, returning whether it was present.
func (c *ContentStore) Erase(name string) bool {
	return c.erase(hashCsName(name), CsEventErase) != ""
}

// Clear removes every entry and resets the eviction counter. No events are published.
func (c *ContentStore) Clear() {
	c.entries = make([]*CsEntry, 0, c.config.Capacity)
	c.csMap = make(map[uint64]*CsEntry)
	c.replacement = newCsReplacementPolicy(c.policy, c)
	c.nEvictions = 0
}

func (c *ContentStore) erase(index uint64, reason CsEventType) string {
	entry, ok := c.csMap[index]
	if !ok {
		return ""
	}
	c.replacement.BeforeErase(index, entry.name)
	delete(c.csMap, index)
	for i, cur := range c.entries {
		if cur == entry {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			break
		}
	}
	c.publish(reason, entry.name, c.now())
	return entry.name
}
