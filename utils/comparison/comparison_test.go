/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package comparison_test

import (
	"testing"

	"github.com/named-data/YaCSim/utils/comparison"
	"github.com/stretchr/testify/assert"
)

func TestMinMax(t *testing.T) {
	assert.Equal(t, 1, comparison.Min(1, 2))
	assert.Equal(t, 2.5, comparison.Max(2.5, -1))
	assert.Equal(t, "b", comparison.Max("a", "b"))
}

func TestArgMax(t *testing.T) {
	values := []float64{3, 7, 7, 1}
	assert.Equal(t, 1, comparison.ArgMax(len(values), func(i int) float64 { return values[i] }))
	assert.Equal(t, -1, comparison.ArgMax(0, func(i int) float64 { return 0 }))
}
