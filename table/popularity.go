/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package table

import (
	"math"
	"strings"

	"golang.org/x/exp/slices"
)

// Feedback is a subscriber's opinion of delivered content.
type Feedback uint8

// Feedback levels. FeedbackNone is used for updates that carry no opinion.
const (
	FeedbackNone Feedback = iota
	FeedbackLike
	FeedbackDislike
	FeedbackNeutral
	FeedbackHighlyLike
	FeedbackHighlyDislike
)

// AllFeedback lists the feedback levels a subscriber may send.
var AllFeedback = []Feedback{FeedbackLike, FeedbackDislike, FeedbackNeutral, FeedbackHighlyLike, FeedbackHighlyDislike}

func (f Feedback) String() string {
	switch f {
	case FeedbackLike:
		return "like"
	case FeedbackDislike:
		return "dislike"
	case FeedbackNeutral:
		return "neutral"
	case FeedbackHighlyLike:
		return "highly_like"
	case FeedbackHighlyDislike:
		return "highly_dislike"
	}
	return "None"
}

// Weight returns the multiplier applied to the request count when this feedback accompanies an update.
func (f Feedback) Weight() float64 {
	switch f {
	case FeedbackHighlyLike:
		return 1.5
	case FeedbackLike:
		return 1.2
	case FeedbackDislike:
		return 0.8
	case FeedbackHighlyDislike:
		return 0.5
	}
	return 1.0
}

// ParseFeedback parses a feedback name. Unknown names map to FeedbackNone.
func ParseFeedback(name string) Feedback {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "like":
		return FeedbackLike
	case "dislike":
		return FeedbackDislike
	case "neutral":
		return FeedbackNeutral
	case "highly_like":
		return FeedbackHighlyLike
	case "highly_dislike":
		return FeedbackHighlyDislike
	}
	return FeedbackNone
}

// PopularityRecord is a row of a popularity table.
type PopularityRecord struct {
	Content      string
	RequestCount int
	Popularity   float64
	Rank         int
	Feedback     Feedback
}

type popularityEntry struct {
	record PopularityRecord
	seq    int
}

// PopularityTable ranks content by an exponentially weighted, feedback-adjusted request count.
type PopularityTable struct {
	alpha   float64
	entries map[string]*popularityEntry
	ranked  []*popularityEntry
	nextSeq int
}

// NewPopularityTable creates an empty popularity table with the specified smoothing factor.
func NewPopularityTable(alpha float64) *PopularityTable {
	p := new(PopularityTable)
	p.alpha = alpha
	p.entries = make(map[string]*popularityEntry)
	p.ranked = make([]*popularityEntry, 0)
	return p
}

// Alpha returns the smoothing factor.
func (p *PopularityTable) Alpha() float64 {
	return p.alpha
}

// Update records one more request for the specified content, weighted by the feedback, and re-ranks the table.
func (p *PopularityTable) Update(name string, feedback Feedback) {
	entry, ok := p.entries[name]
	if !ok {
		entry = &popularityEntry{seq: p.nextSeq}
		entry.record.Content = name
		entry.record.RequestCount = 1
		entry.record.Popularity = 1 - p.alpha
		p.nextSeq++
		p.entries[name] = entry
		p.ranked = append(p.ranked, entry)
	} else {
		entry.record.RequestCount++
		entry.record.Popularity = p.alpha*entry.record.Popularity +
			(1-p.alpha)*float64(entry.record.RequestCount)*feedback.Weight()
	}
	entry.record.Feedback = feedback
	p.Rank()
}

// Rank assigns competition ranks: entries sharing a popularity share the smallest rank of their group.
func (p *PopularityTable) Rank() {
	slices.SortStableFunc(p.ranked, func(a, b *popularityEntry) int {
		switch {
		case a.record.Popularity > b.record.Popularity:
			return -1
		case a.record.Popularity < b.record.Popularity:
			return 1
		}
		return a.seq - b.seq
	})
	for i, entry := range p.ranked {
		if i > 0 && entry.record.Popularity == p.ranked[i-1].record.Popularity {
			entry.record.Rank = p.ranked[i-1].record.Rank
		} else {
			entry.record.Rank = i + 1
		}
	}
}

// Get returns the record of the specified content.
func (p *PopularityTable) Get(name string) (PopularityRecord, bool) {
	entry, ok := p.entries[name]
	if !ok {
		return PopularityRecord{}, false
	}
	return entry.record, true
}

// Records returns every record ordered by rank, popularity rounded to four decimals.
func (p *PopularityTable) Records() []PopularityRecord {
	records := make([]PopularityRecord, len(p.ranked))
	for i, entry := range p.ranked {
		records[i] = entry.record
		records[i].Popularity = roundPopularity(entry.record.Popularity)
	}
	return records
}

// TopContent returns the names of the n highest-ranked contents.
func (p *PopularityTable) TopContent(n int) []string {
	if n > len(p.ranked) {
		n = len(p.ranked)
	}
	if n <= 0 {
		return []string{}
	}
	names := make([]string, n)
	for i := 0; i < n; i++ {
		names[i] = p.ranked[i].record.Content
	}
	return names
}

// Size returns the number of contents in the table.
func (p *PopularityTable) Size() int {
	return len(p.ranked)
}

// Clear removes every record.
func (p *PopularityTable) Clear() {
	p.entries = make(map[string]*popularityEntry)
	p.ranked = make([]*popularityEntry, 0)
	p.nextSeq = 0
}

func roundPopularity(value float64) float64 {
	return math.Round(value*10000) / 10000
}
