/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn

import (
	"math/rand"
	"strconv"
	"strings"
)

// Interest represents a request for a named content object, together with the trace of routers it has crossed.
type Interest struct {
	name    string
	nonce   int
	visited map[string]struct{}
	path    []string
}

// NewInterest creates a new Interest with the specified name and a random nonce.
func NewInterest(name string) *Interest {
	return NewInterestWithNonce(name, 1000+rand.Intn(9000))
}

// NewInterestWithNonce creates a new Interest with the specified name and nonce.
func NewInterestWithNonce(name string, nonce int) *Interest {
	i := new(Interest)
	i.name = name
	i.nonce = nonce
	i.visited = make(map[string]struct{})
	i.path = make([]string, 0, 4)
	return i
}

func (i *Interest) String() string {
	return "Interest(Name=" + i.name + ", Nonce=" + strconv.Itoa(i.nonce) + ", Path=[" + strings.Join(i.path, ",") + "])"
}

// Name returns the name of the requested content.
func (i *Interest) Name() string {
	return i.name
}

// Nonce returns the nonce of the Interest.
func (i *Interest) Nonce() int {
	return i.nonce
}

// HasVisited returns whether the Interest has already been processed by the specified router.
func (i *Interest) HasVisited(router string) bool {
	_, ok := i.visited[router]
	return ok
}

// Visit records that the Interest is being processed by the specified router.
func (i *Interest) Visit(router string) {
	i.path = append(i.path, router)
	i.visited[router] = struct{}{}
}

// Path returns the routers the Interest has crossed, in order.
func (i *Interest) Path() []string {
	path := make([]string, len(i.path))
	copy(path, i.path)
	return path
}

// HopCount returns the number of routers the Interest has crossed.
func (i *Interest) HopCount() int {
	return len(i.path)
}
