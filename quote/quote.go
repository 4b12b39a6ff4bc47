/*
Package quote orchestrates a full proposal computation: both insurers,
either rule generation, one request in, one report out.

PURPOSE:
  The API handlers and the one-shot CLI both need the same sequence -
  validate the event log, apply subscribed amounts to each catalog, run
  the engine (or the legacy calculators) per insurer with a fresh usage
  tracker, and fold the results into the combined report. That sequence
  lives here so the two surfaces cannot drift.

GENERATIONS:
  GenerationTable  - canonical multiplier/rate rule tables (default)
  GenerationLegacy - the first revision's hand-coded logic, only defined
                     for the built-in samsung and kb product lines

CONCURRENCY:
  Compute is side-effect free apart from its own freshly allocated
  trackers; concurrent requests share nothing and need no locking.

SEE ALSO:
  - payout/: Engine, tracker, aggregation
  - factory/: Rule sets, including file-loaded overrides
  - api/, cmd/quote: The two callers
*/
package quote

import (
	"time"

	"github.com/google/uuid"

	"github.com/oncare/coverage-engine/factory"
	"github.com/oncare/coverage-engine/kb"
	"github.com/oncare/coverage-engine/payout"
	"github.com/oncare/coverage-engine/samsung"
)

// =============================================================================
// REQUEST / RESULT
// =============================================================================

// Generation selects which rule revision computes the quote.
type Generation string

const (
	GenerationTable  Generation = "table"
	GenerationLegacy Generation = "legacy"
)

// Request is one quote computation's full input. Coverages map insurer to
// clause name to subscribed amount in man-won; insurers absent from the
// map are computed with all-zero amounts and so contribute nothing.
type Request struct {
	Customer    string
	MinorCancer bool
	Generation  Generation
	Coverages   map[payout.Insurer]map[payout.ClauseName]payout.ManWon
	Years       []payout.YearEvents
}

// Result is the computed quote plus calculation metadata.
type Result struct {
	QuoteID    string
	Customer   string
	Generation Generation
	ComputedAt time.Time
	Report     *payout.Report
}

// insurerOrder fixes the display order of the built-in product lines.
var insurerOrder = []payout.Insurer{payout.InsurerSamsung, payout.InsurerKB}

// =============================================================================
// COMPUTE
// =============================================================================

// Compute runs one quote against the given rule sets. All validation
// errors satisfy payout.IsValidation; there are no other failure modes.
func Compute(req Request, ruleSets map[payout.Insurer]factory.RuleSet) (*Result, error) {
	if req.Generation == "" {
		req.Generation = GenerationTable
	}
	if err := payout.ValidateEvents(req.Years); err != nil {
		return nil, err
	}

	var results []*payout.InsurerResult
	for _, insurer := range insurerOrder {
		rs, ok := ruleSets[insurer]
		if !ok {
			continue
		}

		result, err := computeInsurer(req, insurer, rs)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return &Result{
		QuoteID:    uuid.New().String(),
		Customer:   req.Customer,
		Generation: req.Generation,
		ComputedAt: time.Now().UTC(),
		Report:     payout.BuildReport(req.Years, results...),
	}, nil
}

func computeInsurer(req Request, insurer payout.Insurer, rs factory.RuleSet) (*payout.InsurerResult, error) {
	amounts := req.Coverages[insurer]

	if req.Generation == GenerationLegacy {
		// Legacy path still validates amounts against the catalog so a
		// typo'd clause name fails loudly instead of silently paying zero.
		if _, err := rs.Catalog.WithAmounts(amounts); err != nil {
			return nil, err
		}
		if err := payout.ValidateYears(req.Years); err != nil {
			return nil, err
		}

		var items []payout.LineItem
		switch insurer {
		case payout.InsurerSamsung:
			_, items = samsung.ComputeLegacy(amounts, req.Years, req.MinorCancer)
		case payout.InsurerKB:
			_, items = kb.ComputeLegacy(amounts, req.Years, req.MinorCancer)
		default:
			return nil, &payout.ValidationError{
				Code:    "unknown_insurer",
				Message: "legacy generation is only defined for the built-in product lines",
				Err:     payout.ErrUnknownInsurer,
			}
		}
		return payout.GroupItems(insurer, items), nil
	}

	catalog, err := rs.Catalog.WithAmounts(amounts)
	if err != nil {
		return nil, err
	}

	return payout.Engine{}.Compute(payout.ComputationInput{
		Catalog:     catalog,
		Rules:       rs.Rules,
		MinorCancer: req.MinorCancer,
		Years:       req.Years,
	})
}
