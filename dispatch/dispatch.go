/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package dispatch

import (
	"sort"
	"sync"
)

// Dispatch resolves node names found in FIB entries to the routers and publishers of one network.
type Dispatch struct {
	forwarders     map[string]Forwarder
	forwardersSync sync.RWMutex
	producers      map[string]Producer
	producersSync  sync.RWMutex
}

// NewDispatch creates an empty dispatch table.
func NewDispatch() *Dispatch {
	d := new(Dispatch)
	d.forwarders = make(map[string]Forwarder)
	d.producers = make(map[string]Producer)
	return d
}

// AddForwarder adds the specified router to the dispatch table.
func (d *Dispatch) AddForwarder(forwarder Forwarder) {
	d.forwardersSync.Lock()
	d.forwarders[forwarder.Name()] = forwarder
	d.forwardersSync.Unlock()
}

// GetForwarder returns the specified router or nil if it does not exist.
func (d *Dispatch) GetForwarder(name string) Forwarder {
	d.forwardersSync.RLock()
	forwarder, ok := d.forwarders[name]
	d.forwardersSync.RUnlock()
	if !ok {
		return nil
	}
	return forwarder
}

// AddProducer adds the specified publisher to the dispatch table.
func (d *Dispatch) AddProducer(producer Producer) {
	d.producersSync.Lock()
	d.producers[producer.Name()] = producer
	d.producersSync.Unlock()
}

// GetProducer returns the specified publisher or nil if it does not exist.
func (d *Dispatch) GetProducer(name string) Producer {
	d.producersSync.RLock()
	producer, ok := d.producers[name]
	d.producersSync.RUnlock()
	if !ok {
		return nil
	}
	return producer
}

// ForwarderNames returns the names of every registered router, sorted.
func (d *Dispatch) ForwarderNames() []string {
	d.forwardersSync.RLock()
	names := make([]string, 0, len(d.forwarders))
	for name := range d.forwarders {
		names = append(names, name)
	}
	d.forwardersSync.RUnlock()
	sort.Strings(names)
	return names
}
