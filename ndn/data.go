/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn

import "strconv"

// Data represents a named content object travelling back towards a requester.
type Data struct {
	name    string
	content []byte
}

// NewData creates a new Data packet with the specified name and content.
func NewData(name string, content []byte) *Data {
	d := new(Data)
	d.name = name
	d.content = content
	return d
}

func (d *Data) String() string {
	return "Data(Name=" + d.name + ", Size=" + strconv.Itoa(len(d.content)) + ")"
}

// Name returns the name of the Data packet.
func (d *Data) Name() string {
	return d.name
}

// Content returns the payload of the Data packet.
func (d *Data) Content() []byte {
	return d.content
}
