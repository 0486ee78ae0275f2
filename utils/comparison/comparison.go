/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

// Package comparison contains generic helpers over ordered values.
package comparison

import "golang.org/x/exp/constraints"

func Min[V constraints.Ordered](a, b V) V {
	if a < b {
		return a
	} else {
		return b
	}
}

func Max[V constraints.Ordered](a, b V) V {
	if a > b {
		return a
	} else {
		return b
	}
}

// ArgMax returns the index of the first largest key among n elements, or -1 if n is 0.
func ArgMax[V constraints.Ordered](n int, key func(i int) V) int {
	best := -1
	var bestKey V
	for i := 0; i < n; i++ {
		if k := key(i); best < 0 || k > bestKey {
			best = i
			bestKey = k
		}
	}
	return best
}
