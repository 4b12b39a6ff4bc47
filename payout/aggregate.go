/*
aggregate.go - Folding per-year results into report structures

PURPOSE:
  Pure reshaping, no business rules. Takes the ordered per-year outputs
  of one or more insurer computations and produces:
    (a) per-insurer grand totals,
    (b) a combined grand total,
    (c) a year-grouped view: each year's line items listed per insurer,
        followed by a year subtotal,
    (d) a pass-through echo of the selected events per year for display.

SEE ALSO:
  - engine.go: Produces InsurerResult
  - proposal/: Renders the Report as a proposal document
*/
package payout

import "sort"

// =============================================================================
// RESULT TYPES
// =============================================================================

// YearResult is one year's output for one insurer.
type YearResult struct {
	Year  int        `json:"year"`
	Total ManWon     `json:"total"`
	Items []LineItem `json:"items"`
}

// InsurerResult is the full multi-year output for one insurer.
type InsurerResult struct {
	Insurer    Insurer      `json:"insurer"`
	GrandTotal ManWon       `json:"grand_total"`
	Years      []YearResult `json:"years"`
}

// GroupItems rebuilds an InsurerResult from a flat line-item list, in
// ascending year order. Used for the legacy hand-coded calculators, which
// emit flat (year, clause, amount) details like the original tool.
func GroupItems(insurer Insurer, items []LineItem) *InsurerResult {
	byYear := make(map[int][]LineItem)
	var years []int
	for _, it := range items {
		if _, seen := byYear[it.Year]; !seen {
			years = append(years, it.Year)
		}
		byYear[it.Year] = append(byYear[it.Year], it)
	}
	sort.Ints(years)

	result := &InsurerResult{Insurer: insurer}
	for _, y := range years {
		yr := YearResult{Year: y, Items: byYear[y]}
		for _, it := range byYear[y] {
			yr.Total += it.Amount
		}
		result.Years = append(result.Years, yr)
		result.GrandTotal += yr.Total
	}
	return result
}

// =============================================================================
// REPORT - Combined, year-grouped view
// =============================================================================

// InsurerSection is one insurer's slice of a year group.
type InsurerSection struct {
	Insurer  Insurer    `json:"insurer"`
	Items    []LineItem `json:"items"`
	Subtotal ManWon     `json:"subtotal"`
}

// YearGroup lists one year's line items per insurer with a year subtotal.
type YearGroup struct {
	Year     int              `json:"year"`
	Sections []InsurerSection `json:"sections"`
	Subtotal ManWon           `json:"subtotal"`
}

// Report is the final structure consumed by rendering.
type Report struct {
	Insurers      []InsurerResult `json:"insurers"`
	CombinedTotal ManWon          `json:"combined_total"`
	Years         []YearGroup     `json:"years"`

	// EventsByYear echoes the input selection for display only; it is
	// never recomputed from the results.
	EventsByYear []YearEvents `json:"events_by_year"`
}

// BuildReport folds insurer results into the combined report. Insurer
// order is preserved; years appear in ascending order and only when at
// least one insurer has events or payouts recorded for them.
func BuildReport(eventsByYear []YearEvents, results ...*InsurerResult) *Report {
	report := &Report{EventsByYear: eventsByYear}

	yearSet := make(map[int]bool)
	var years []int
	note := func(y int) {
		if !yearSet[y] {
			yearSet[y] = true
			years = append(years, y)
		}
	}
	for _, ye := range eventsByYear {
		note(ye.Year)
	}
	for _, r := range results {
		report.Insurers = append(report.Insurers, *r)
		report.CombinedTotal += r.GrandTotal
		for _, yr := range r.Years {
			note(yr.Year)
		}
	}
	sort.Ints(years)

	for _, y := range years {
		group := YearGroup{Year: y}
		for _, r := range results {
			section := InsurerSection{Insurer: r.Insurer}
			for _, yr := range r.Years {
				if yr.Year != y {
					continue
				}
				section.Items = append(section.Items, yr.Items...)
				section.Subtotal += yr.Total
			}
			if len(section.Items) > 0 {
				group.Sections = append(group.Sections, section)
				group.Subtotal += section.Subtotal
			}
		}
		report.Years = append(report.Years, group)
	}

	return report
}
