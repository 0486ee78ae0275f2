/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package table

import (
	"strings"

	"golang.org/x/exp/slices"
)

// GlobalPopularityRecord is the popularity of a content summed over several tables.
type GlobalPopularityRecord struct {
	Content    string
	Popularity float64
	Rank       int
}

// AggregatePopularity sums the popularity of each content over every table and ranks the totals densely from 1.
// Equal totals are ordered by name.
func AggregatePopularity(tables map[string][]PopularityRecord) []GlobalPopularityRecord {
	totals := make(map[string]float64)
	for _, records := range tables {
		for _, record := range records {
			totals[record.Content] += record.Popularity
		}
	}

	global := make([]GlobalPopularityRecord, 0, len(totals))
	for name, total := range totals {
		global = append(global, GlobalPopularityRecord{Content: name, Popularity: roundPopularity(total)})
	}
	slices.SortFunc(global, func(a, b GlobalPopularityRecord) int {
		switch {
		case a.Popularity > b.Popularity:
			return -1
		case a.Popularity < b.Popularity:
			return 1
		}
		return strings.Compare(a.Content, b.Content)
	})
	for i := range global {
		global[i].Rank = i + 1
	}
	return global
}
