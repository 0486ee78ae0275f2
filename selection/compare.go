/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package selection

// Comparison tells whether both selection procedures chose the same router.
type Comparison string

// Comparison outcomes.
const (
	Match        Comparison = "Yes"
	NoMatch      Comparison = "No"
	NotAvailable Comparison = "N/A"
)

// ComparisonRow pairs the manual and ensemble outcomes of one request.
type ComparisonRow struct {
	Content     string
	Manual      string
	Recommended string
	Match       Comparison
}

// Compare compares a manual selection with an ensemble recommendation by router name.
// Either being nil makes the comparison unavailable.
func Compare(manual *Selection, ai *Recommendation) Comparison {
	if manual == nil || ai == nil {
		return NotAvailable
	}
	if manual.Selected.Router == ai.Recommended.Router {
		return Match
	}
	return NoMatch
}

// NewComparisonRow pairs the outcomes of both procedures for one request. Missing outcomes are reported as N/A.
func NewComparisonRow(content string, manual *Selection, ai *Recommendation) ComparisonRow {
	row := ComparisonRow{
		Content:     content,
		Manual:      string(NotAvailable),
		Recommended: string(NotAvailable),
		Match:       Compare(manual, ai),
	}
	if manual != nil {
		row.Manual = manual.Selected.Router
	}
	if ai != nil {
		row.Recommended = ai.Recommended.Router
	}
	return row
}
