/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package table_test

import (
	"testing"

	"github.com/named-data/YaCSim/table"
	"github.com/stretchr/testify/assert"
)

func TestPitFirstRequesterWins(t *testing.T) {
	pit := table.NewPit()
	assert.True(t, pit.Insert("cat_1.jpg", "S1"))
	assert.False(t, pit.Insert("cat_1.jpg", "S2"))
	assert.True(t, pit.Insert("dog_1.jpg", "Router2"))

	requester, ok := pit.Find("cat_1.jpg")
	assert.True(t, ok)
	assert.Equal(t, "S1", requester)
	_, ok = pit.Find("bird.jpg")
	assert.False(t, ok)

	assert.Equal(t, 2, pit.Size())
	assert.Equal(t, []table.PitEntry{
		{Name: "cat_1.jpg", Requester: "S1"},
		{Name: "dog_1.jpg", Requester: "Router2"},
	}, pit.Entries())

	pit.Clear()
	assert.Equal(t, 0, pit.Size())
	assert.Empty(t, pit.Entries())
}
