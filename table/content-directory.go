/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package table

import (
	"github.com/cornelk/hashmap"
)

// FirstContentID is the ID assigned to the first indexed content name.
const FirstContentID = 100

// ContentDirectory maps content names to globally unique numeric IDs.
// It is built once and never mutated afterwards, so it may be shared by every router of a simulation.
type ContentDirectory struct {
	ids   hashmap.HashMap
	names []string
}

// NewContentDirectory indexes the names of all catalogues in order. A name seen twice keeps its first ID.
func NewContentDirectory(catalogues ...[]string) *ContentDirectory {
	d := new(ContentDirectory)
	d.names = make([]string, 0)
	nextID := FirstContentID
	for _, catalogue := range catalogues {
		for _, name := range catalogue {
			if _, ok := d.ids.GetStringKey(name); ok {
				continue
			}
			d.ids.Set(name, nextID)
			d.names = append(d.names, name)
			nextID++
		}
	}
	return d
}

// ID returns the ID of the specified content name.
func (d *ContentDirectory) ID(name string) (int, bool) {
	if d == nil {
		return 0, false
	}
	value, ok := d.ids.GetStringKey(name)
	if !ok {
		return 0, false
	}
	return value.(int), true
}

// Len returns the number of indexed names.
func (d *ContentDirectory) Len() int {
	return len(d.names)
}

// Names returns the indexed names in ID order.
func (d *ContentDirectory) Names() []string {
	names := make([]string, len(d.names))
	copy(names, d.names)
	return names
}
