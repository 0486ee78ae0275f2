/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package executor

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/named-data/YaCSim/mgmt"
	"github.com/named-data/YaCSim/selection"
	"github.com/named-data/YaCSim/sim"
	"github.com/named-data/YaCSim/table"
)

// WritePolicyReport writes the totals of each policy run as an aligned table.
func WritePolicyReport(w io.Writer, results []*sim.PolicyStats) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Policy\tRequests\tCache Hits\tPublisher Hits\tCHR (%)\tEvicted\tExpired")
	for _, stats := range results {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%.2f\t%d\t%d\n", stats.Policy, stats.TotalRequests, stats.CacheHits,
			stats.PublisherHits, stats.CacheHitRatio, stats.EvictedEntries, stats.ExpiredEntries)
	}
	return tw.Flush()
}

// WriteGlobalPopularity writes the n best ranked contents of the global popularity table. Non-positive n writes all.
func WriteGlobalPopularity(w io.Writer, records []table.GlobalPopularityRecord, n int) error {
	if n <= 0 || n > len(records) {
		n = len(records)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Rank\tContent\tPopularity")
	for _, record := range records[:n] {
		fmt.Fprintf(tw, "%d\t%s\t%.4f\n", record.Rank, record.Content, record.Popularity)
	}
	return tw.Flush()
}

// WriteComparison writes the manual and ensemble choices of every request, then the agreement rate.
func WriteComparison(w io.Writer, rows []selection.ComparisonRow) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Content\tManual\tRecommended\tMatch")
	matches := 0
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", row.Content, row.Manual, row.Recommended, row.Match)
		if row.Match == selection.Match {
			matches++
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(rows) > 0 {
		_, err := fmt.Fprintf(w, "Agreement: %d/%d (%.1f%%)\n", matches, len(rows), float64(matches)/float64(len(rows))*100)
		return err
	}
	return nil
}

// WriteRouterStatus writes the Content Store occupancy and counters of each router.
func WriteRouterStatus(w io.Writer, routers []mgmt.RouterStatus) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Router\tPolicy\tCS\tPIT\tFIB\tCache Hits\tPublisher Hits\tEvictions")
	for _, status := range routers {
		fmt.Fprintf(tw, "%s\t%s\t%d/%d\t%d\t%d\t%d\t%d\t%d\n", status.Name, status.Policy, len(status.Cs),
			status.Capacity, len(status.Pit), len(status.Fib), status.Counters.NCacheHits,
			status.Counters.NPublisherHits, status.Counters.NEvictions)
	}
	return tw.Flush()
}
