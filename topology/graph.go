/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package topology

import (
	"sort"

	"github.com/named-data/YaCSim/table"
)

// FibOwner is a named node with a FIB.
type FibOwner interface {
	Name() string
	Fib() *table.Fib
}

// Graph is an undirected graph over router names.
type Graph struct {
	nodes     []string
	index     map[string]int
	adjacency []map[int]struct{}
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	g := new(Graph)
	g.nodes = make([]string, 0)
	g.index = make(map[string]int)
	g.adjacency = make([]map[int]struct{}, 0)
	return g
}

// FromFibs builds the graph of the specified routers, linking two routers whenever the FIB of one points at the other.
// Next hops that are not among the routers are ignored.
func FromFibs[R FibOwner](routers []R) *Graph {
	g := NewGraph()
	for _, router := range routers {
		g.AddNode(router.Name())
	}
	for _, router := range routers {
		for _, entry := range router.Fib().Entries() {
			if entry.NextHop.Kind != table.NextHopRouter || !g.HasNode(entry.NextHop.Name) {
				continue
			}
			g.AddEdge(router.Name(), entry.NextHop.Name)
		}
	}
	return g
}

// AddNode adds a node if it does not exist yet.
func (g *Graph) AddNode(name string) {
	if _, ok := g.index[name]; ok {
		return
	}
	g.index[name] = len(g.nodes)
	g.nodes = append(g.nodes, name)
	g.adjacency = append(g.adjacency, make(map[int]struct{}))
}

// AddEdge links two nodes, adding them if needed. Self loops are ignored.
func (g *Graph) AddEdge(a string, b string) {
	if a == b {
		g.AddNode(a)
		return
	}
	g.AddNode(a)
	g.AddNode(b)
	ia, ib := g.index[a], g.index[b]
	g.adjacency[ia][ib] = struct{}{}
	g.adjacency[ib][ia] = struct{}{}
}

// HasNode returns whether the graph contains the specified node.
func (g *Graph) HasNode(name string) bool {
	_, ok := g.index[name]
	return ok
}

// HasEdge returns whether the two nodes are linked.
func (g *Graph) HasEdge(a string, b string) bool {
	ia, okA := g.index[a]
	ib, okB := g.index[b]
	if !okA || !okB {
		return false
	}
	_, ok := g.adjacency[ia][ib]
	return ok
}

// Nodes returns the nodes in insertion order.
func (g *Graph) Nodes() []string {
	nodes := make([]string, len(g.nodes))
	copy(nodes, g.nodes)
	return nodes
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	count := 0
	for _, neighbors := range g.adjacency {
		count += len(neighbors)
	}
	return count / 2
}

// Neighbors returns the neighbors of the specified node, sorted.
func (g *Graph) Neighbors(name string) []string {
	i, ok := g.index[name]
	if !ok {
		return nil
	}
	neighbors := make([]string, 0, len(g.adjacency[i]))
	for j := range g.adjacency[i] {
		neighbors = append(neighbors, g.nodes[j])
	}
	sort.Strings(neighbors)
	return neighbors
}

// Degree returns the number of neighbors of the specified node.
func (g *Graph) Degree(name string) int {
	i, ok := g.index[name]
	if !ok {
		return 0
	}
	return len(g.adjacency[i])
}

// neighborIndexes returns the neighbors of node i in index order, so that traversals are deterministic.
func (g *Graph) neighborIndexes(i int) []int {
	neighbors := make([]int, 0, len(g.adjacency[i]))
	for j := range g.adjacency[i] {
		neighbors = append(neighbors, j)
	}
	sort.Ints(neighbors)
	return neighbors
}
