/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package dispatch

import "github.com/named-data/YaCSim/ndn"

// Requester is a node that sends Interests and is handed back the matching Data.
type Requester interface {
	String() string
	Name() string

	ReceiveData(data *ndn.Data)
}

// Forwarder provides an interface that routers can satisfy (to avoid circular dependency between routers and the nodes they forward to)
type Forwarder interface {
	Requester

	ReceiveInterest(interest *ndn.Interest, requester Requester) error
}

// Producer provides an interface that publishers can satisfy.
type Producer interface {
	String() string
	Name() string

	// ServeContent returns the Data for the specified name, or nil if the producer does not have it.
	ServeContent(name string) *ndn.Data
}
