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
	"github.com/stretchr/testify/require"
)

func TestFeedback(t *testing.T) {
	assert.Equal(t, 1.5, table.FeedbackHighlyLike.Weight())
	assert.Equal(t, 1.2, table.FeedbackLike.Weight())
	assert.Equal(t, 1.0, table.FeedbackNeutral.Weight())
	assert.Equal(t, 0.8, table.FeedbackDislike.Weight())
	assert.Equal(t, 0.5, table.FeedbackHighlyDislike.Weight())
	assert.Equal(t, 1.0, table.FeedbackNone.Weight())

	for _, feedback := range table.AllFeedback {
		assert.Equal(t, feedback, table.ParseFeedback(feedback.String()))
	}
	assert.Equal(t, table.FeedbackNone, table.ParseFeedback("meh"))
	assert.Equal(t, "None", table.FeedbackNone.String())
}

func TestPopularityUpdate(t *testing.T) {
	p := table.NewPopularityTable(0.9)
	p.Update("X", table.FeedbackNone)
	record, ok := p.Get("X")
	require.True(t, ok)
	assert.Equal(t, 1, record.RequestCount)
	assert.InDelta(t, 0.1, record.Popularity, 1e-9)
	assert.Equal(t, 1, record.Rank)

	p.Update("X", table.FeedbackHighlyLike)
	record, _ = p.Get("X")
	assert.Equal(t, 2, record.RequestCount)
	assert.InDelta(t, 0.39, record.Popularity, 1e-9)
	assert.Equal(t, table.FeedbackHighlyLike, record.Feedback)

	_, ok = p.Get("Y")
	assert.False(t, ok)
}

func TestPopularityRanking(t *testing.T) {
	p := table.NewPopularityTable(0.9)
	p.Update("A", table.FeedbackNone)
	p.Update("B", table.FeedbackNone)
	p.Update("C", table.FeedbackNone)
	p.Update("B", table.FeedbackNone)

	records := p.Records()
	require.Len(t, records, 3)
	assert.Equal(t, "B", records[0].Content)
	assert.Equal(t, 1, records[0].Rank)
	assert.InDelta(t, 0.29, records[0].Popularity, 1e-9)

	// A and C tie: both get the smallest rank of the group, earlier insertion first
	assert.Equal(t, "A", records[1].Content)
	assert.Equal(t, 2, records[1].Rank)
	assert.Equal(t, "C", records[2].Content)
	assert.Equal(t, 2, records[2].Rank)

	assert.Equal(t, []string{"B", "A"}, p.TopContent(2))
	assert.Equal(t, []string{"B", "A", "C"}, p.TopContent(10))
	assert.Empty(t, p.TopContent(0))

	p.Rank()
	assert.Equal(t, records, p.Records())
}

func TestPopularityRecordsRounded(t *testing.T) {
	p := table.NewPopularityTable(0.9)
	p.Update("A", table.FeedbackNone)
	p.Update("A", table.FeedbackLike)
	p.Update("A", table.FeedbackLike)
	// 0.9*(0.9*0.1 + 0.24) + 0.36 = 0.657
	records := p.Records()
	assert.Equal(t, 0.657, records[0].Popularity)
}

func TestPopularityClear(t *testing.T) {
	p := table.NewPopularityTable(0.5)
	assert.Equal(t, 0.5, p.Alpha())
	p.Update("A", table.FeedbackNone)
	p.Clear()
	assert.Equal(t, 0, p.Size())
	p.Update("A", table.FeedbackNone)
	record, _ := p.Get("A")
	assert.Equal(t, 1, record.RequestCount)
	assert.InDelta(t, 0.5, record.Popularity, 1e-9)
}

func TestAggregatePopularity(t *testing.T) {
	global := table.AggregatePopularity(map[string][]table.PopularityRecord{
		"LRU": {
			{Content: "A", Popularity: 0.2},
			{Content: "B", Popularity: 0.1},
		},
		"FIFO": {
			{Content: "B", Popularity: 0.1},
			{Content: "C", Popularity: 0.5},
		},
	})
	require.Len(t, global, 3)
	assert.Equal(t, table.GlobalPopularityRecord{Content: "C", Popularity: 0.5, Rank: 1}, global[0])
	assert.Equal(t, table.GlobalPopularityRecord{Content: "A", Popularity: 0.2, Rank: 2}, global[1])
	assert.Equal(t, table.GlobalPopularityRecord{Content: "B", Popularity: 0.2, Rank: 3}, global[2])

	assert.Empty(t, table.AggregatePopularity(nil))
}
