/*
engine.go - The per-year payout algorithm

PURPOSE:
  Turns one year's treatment events into payout line items by walking the
  rule table against the clause catalog, under the caps enforced by the
  UsageTracker. The engine itself is stateless between calls; all state
  lives in the externally-owned tracker passed by reference.

ALGORITHM (ComputeYear):
  for each event tag, in caller-supplied order (duplicates re-processed):
      for each (clause, multiplier, rate) trigger, in rule order:
          skip if the clause's cancer scope doesn't match the case
          amount = round(subscribed * multiplier * rate)
          skip if amount <= 0
          ask the tracker; skip silently if rejected
          emit line item, add to year total

FAILURE SEMANTICS:
  None. Unknown tags have no triggers; triggers naming clauses absent
  from the catalog pay zero (defensive default); cap rejections and zero
  amounts are silent skips. The only errors come from Compute's input
  validation (year ordering and range), before any computation starts.

DUPLICATE TAGS:
  A tag appearing twice in one year's input triggers its rules twice,
  each occurrence independently subject to caps. This preserves the
  original tool's loop behavior.
  TODO: confirm with the rule maintainers whether duplicate selections
  should instead be deduplicated per year.

SEE ALSO:
  - tracker.go: Cap checks
  - aggregate.go: Folding year results into reports
*/
package payout

// =============================================================================
// COMPUTATION INPUT
// =============================================================================

// MaxYears bounds the simulation horizon, matching the original tool's
// 1-10 year slider.
const MaxYears = 10

// ComputationInput is everything one insurer's computation needs. The
// catalog and rules are read-only; the engine allocates its own tracker.
type ComputationInput struct {
	Catalog *Catalog
	Rules   *RuleTable

	// MinorCancer selects minor-cancer clauses over their major-cancer
	// counterparts, once for the whole computation.
	MinorCancer bool

	// Years is the event log, required to be in strictly increasing year
	// order with years in 1..MaxYears.
	Years []YearEvents
}

// =============================================================================
// ENGINE
// =============================================================================

// Engine computes payouts. Stateless and safe for concurrent use; every
// Compute call owns a fresh UsageTracker.
type Engine struct{}

// ComputeYear produces the line items payable for one year's events and
// mutates the tracker. Events are processed in input order; rejected or
// zero-amount triggers are skipped silently.
func (Engine) ComputeYear(year int, events []EventTag, catalog *Catalog, rules *RuleTable, minorCancer bool, tracker *UsageTracker) (ManWon, []LineItem) {
	var total ManWon
	var items []LineItem

	for _, tag := range events {
		for _, trig := range rules.Triggers(tag) {
			clause, ok := catalog.Lookup(trig.Clause)
			if !ok {
				continue // rule references a clause outside the catalog: pays zero
			}
			if !clause.Scope.applies(minorCancer) {
				continue
			}

			amount := trig.Amount(clause.SubscribedAmount)
			if amount <= 0 {
				continue
			}
			if !tracker.RecordIfAllowed(clause, year) {
				continue
			}

			items = append(items, LineItem{
				Year:    year,
				Insurer: catalog.Insurer(),
				Clause:  clause.Name,
				Amount:  amount,
			})
			total += amount
		}
	}

	return total, items
}

// Compute runs the full multi-year computation for one insurer and folds
// the per-year outputs into an InsurerResult. Usage state from year k is
// visible to year k+1, never the reverse.
func (e Engine) Compute(input ComputationInput) (*InsurerResult, error) {
	if err := ValidateYears(input.Years); err != nil {
		return nil, err
	}

	tracker := NewUsageTracker()
	result := &InsurerResult{Insurer: input.Catalog.Insurer()}

	for _, ye := range input.Years {
		total, items := e.ComputeYear(ye.Year, ye.Events, input.Catalog, input.Rules, input.MinorCancer, tracker)
		result.Years = append(result.Years, YearResult{
			Year:  ye.Year,
			Total: total,
			Items: items,
		})
		result.GrandTotal += total
	}

	return result, nil
}

// ValidateYears checks the event log shape: year indexes in 1..MaxYears,
// strictly increasing. Also used by callers that bypass Compute (the
// legacy calculators take the event log directly).
func ValidateYears(years []YearEvents) error {
	prev := 0
	for _, ye := range years {
		if ye.Year < 1 || ye.Year > MaxYears {
			return &ValidationError{
				Code:    "year_range",
				Message: "year index outside 1-10",
				Err:     ErrYearRange,
			}
		}
		if ye.Year <= prev {
			return &ValidationError{
				Code:    "year_order",
				Message: "yearly events must be supplied in strictly increasing year order",
				Err:     ErrYearOrder,
			}
		}
		prev = ye.Year
	}
	return nil
}

// ValidateEvents rejects tags outside the closed vocabulary. Boundary
// validation for untrusted input; trusted rule tables never need it.
func ValidateEvents(years []YearEvents) error {
	for _, ye := range years {
		for _, tag := range ye.Events {
			if !KnownEvent(tag) {
				return &ValidationError{
					Code:    "unknown_event",
					Message: "event tag not in vocabulary: " + string(tag),
					Err:     ErrUnknownEvent,
				}
			}
		}
	}
	return nil
}
