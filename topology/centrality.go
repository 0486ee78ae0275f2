/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package topology

import "github.com/named-data/YaCSim/selection"

// Centrality computes the normalized degree, betweenness and closeness centrality of every node.
func Centrality(g *Graph) selection.NetworkMetrics {
	return selection.NetworkMetrics{
		Degree:      DegreeCentrality(g),
		Betweenness: BetweennessCentrality(g),
		Closeness:   ClosenessCentrality(g),
	}
}

// DegreeCentrality returns the degree of every node divided by n-1. A single node has centrality 1.
func DegreeCentrality(g *Graph) map[string]float64 {
	n := g.Len()
	centrality := make(map[string]float64, n)
	if n <= 1 {
		for _, node := range g.nodes {
			centrality[node] = 1
		}
		return centrality
	}
	for i, node := range g.nodes {
		centrality[node] = float64(len(g.adjacency[i])) / float64(n-1)
	}
	return centrality
}

// bfs returns the hop distance from the source to every node, -1 if unreachable, and the order nodes were reached in.
func (g *Graph) bfs(source int) ([]int, []int) {
	distances := make([]int, len(g.nodes))
	for i := range distances {
		distances[i] = -1
	}
	distances[source] = 0
	order := []int{source}
	for head := 0; head < len(order); head++ {
		v := order[head]
		for _, w := range g.neighborIndexes(v) {
			if distances[w] < 0 {
				distances[w] = distances[v] + 1
				order = append(order, w)
			}
		}
	}
	return distances, order
}

// BetweennessCentrality computes shortest-path betweenness with Brandes' algorithm, normalized by (n-1)(n-2).
// Graphs of 2 nodes or fewer have no intermediate node and score 0 everywhere.
func BetweennessCentrality(g *Graph) map[string]float64 {
	n := g.Len()
	betweenness := make([]float64, n)

	for s := 0; s < n; s++ {
		// Single-source shortest paths
		sigma := make([]float64, n)
		sigma[s] = 1
		predecessors := make([][]int, n)
		distances, order := g.bfs(s)
		for _, v := range order {
			for _, w := range g.neighborIndexes(v) {
				if distances[w] == distances[v]+1 {
					sigma[w] += sigma[v]
					predecessors[w] = append(predecessors[w], v)
				}
			}
		}

		// Accumulation, farthest nodes first
		delta := make([]float64, n)
		for k := len(order) - 1; k >= 0; k-- {
			w := order[k]
			for _, v := range predecessors[w] {
				delta[v] += sigma[v] / sigma[w] * (1 + delta[w])
			}
			if w != s {
				betweenness[w] += delta[w]
			}
		}
	}

	centrality := make(map[string]float64, n)
	scale := 0.0
	if n > 2 {
		scale = 1 / float64((n-1)*(n-2))
	}
	for i, node := range g.nodes {
		centrality[node] = betweenness[i] * scale
	}
	return centrality
}

// ClosenessCentrality computes the closeness of every node over the nodes it can reach, scaled by the fraction of
// the graph it reaches so that nodes of small components are not favoured.
func ClosenessCentrality(g *Graph) map[string]float64 {
	n := g.Len()
	centrality := make(map[string]float64, n)
	for i, node := range g.nodes {
		distances, order := g.bfs(i)
		total := 0
		for _, v := range order {
			total += distances[v]
		}
		reached := len(order)
		if total <= 0 || n <= 1 {
			centrality[node] = 0
			continue
		}
		closeness := float64(reached-1) / float64(total)
		centrality[node] = closeness * float64(reached-1) / float64(n-1)
	}
	return centrality
}
