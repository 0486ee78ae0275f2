/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package table

import "time"

// CsEventType indicates what kind of Content Store mutation occurred.
type CsEventType uint8

// Content Store event types.
const (
	CsEventInsert CsEventType = iota + 1
	CsEventRefresh
	CsEventEvict
	CsEventExpire
	CsEventErase
)

func (t CsEventType) String() string {
	switch t {
	case CsEventInsert:
		return "insert"
	case CsEventRefresh:
		return "refresh"
	case CsEventEvict:
		return "evict"
	case CsEventExpire:
		return "expire"
	case CsEventErase:
		return "erase"
	}
	return "unknown"
}

const csEventTopic = "cs:event"

// CsEvent is published whenever an entry enters, is refreshed in, or leaves a Content Store.
type CsEvent struct {
	Type  CsEventType
	Store string
	Name  string
	Time  time.Time
}

// SubscribeEvents registers a handler called synchronously for every event of this store.
func (c *ContentStore) SubscribeEvents(handler func(CsEvent)) error {
	return c.events.Subscribe(csEventTopic, handler)
}

// UnsubscribeEvents removes a handler registered with SubscribeEvents.
func (c *ContentStore) UnsubscribeEvents(handler func(CsEvent)) error {
	return c.events.Unsubscribe(csEventTopic, handler)
}

func (c *ContentStore) publish(eventType CsEventType, name string, at time.Time) {
	if !c.events.HasCallback(csEventTopic) {
		return
	}
	c.events.Publish(csEventTopic, CsEvent{Type: eventType, Store: c.owner, Name: name, Time: at})
}
