/*
scenarios.go - Demo scenario presets for testing and demonstrations

PURPOSE:

	Provides pre-built quote requests that demonstrate specific engine
	behaviors without a client having to assemble coverages and event
	logs by hand. Each scenario is a complete QuoteRequest; running one
	computes it exactly like POST /api/quotes.

AVAILABLE SCENARIOS:

	single-surgery:       One surgery year firing direct + major treatment
	lifetime-cap:         Eleven surgery years against a 10-use cap
	year-exclusive:       Two triggers of the KB non-covered clause in one year
	premium-compounding:  Legacy premium clause fanning out to four rows
	first-occurrence:     Legacy first-radiation latch across years
	full-course:          A realistic five-year combined treatment path

USAGE VIA API:

	GET  /api/scenarios
	POST /api/scenarios/lifetime-cap/run

SEE ALSO:
  - handlers.go: writeJSON/writeError helpers
  - quote/: The computation these run through
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oncare/coverage-engine/payout"
	"github.com/oncare/coverage-engine/quote"
)

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

type scenario struct {
	ScenarioDTO
	Request QuoteRequest
}

var scenarios = []scenario{
	{
		ScenarioDTO: ScenarioDTO{
			ID:          "single-surgery",
			Name:        "Single Surgery Year",
			Description: "Surgery in year 1 fires the direct-treatment and major-treatment clauses once each",
		},
		Request: QuoteRequest{
			Customer: "홍길동",
			Coverages: map[string]map[string]int64{
				"samsung": {"암직접치료보장": 1000, "암주요치료보장": 1000},
			},
			Years: []YearEventsDTO{{Year: 1, Events: []string{"수술"}}},
		},
	},
	{
		ScenarioDTO: ScenarioDTO{
			ID:          "lifetime-cap",
			Name:        "Lifetime Cap",
			Description: "Surgery every year for 10 years; the direct-treatment clause stops paying at its 10-use cap",
		},
		Request: QuoteRequest{
			Customer: "홍길동",
			Coverages: map[string]map[string]int64{
				"samsung": {"암직접치료보장": 1000},
			},
			Years: surgeryYears(10),
		},
	},
	{
		ScenarioDTO: ScenarioDTO{
			ID:          "year-exclusive",
			Name:        "Year-Exclusive Clause",
			Description: "Non-covered targeted therapy and robotic surgery in the same year; the KB non-covered major clause pays only once",
		},
		Request: QuoteRequest{
			Customer: "홍길동",
			Coverages: map[string]map[string]int64{
				"kb": {"비급여 암 주요치료비II": 500},
			},
			Years: []YearEventsDTO{{Year: 3, Events: []string{"표적(비급여)", "로봇수술"}}},
		},
	},
	{
		ScenarioDTO: ScenarioDTO{
			ID:          "premium-compounding",
			Name:        "Premium Compounding (Legacy)",
			Description: "Non-covered immune therapy fans the legacy premium clause out to four named rows",
		},
		Request: QuoteRequest{
			Customer:       "홍길동",
			RuleGeneration: "legacy",
			Coverages: map[string]map[string]int64{
				"samsung": {"프리미엄암직접치료보장": 200},
			},
			Years: []YearEventsDTO{{Year: 1, Events: []string{"면역(비급여)"}}},
		},
	},
	{
		ScenarioDTO: ScenarioDTO{
			ID:          "first-occurrence",
			Name:        "First-Occurrence Latch (Legacy)",
			Description: "Radiation in years 2 and 5; the first-radiation rider pays only in year 2",
		},
		Request: QuoteRequest{
			Customer:       "홍길동",
			RuleGeneration: "legacy",
			Coverages: map[string]map[string]int64{
				"samsung": {"항암방사선 최초1회": 300},
			},
			Years: []YearEventsDTO{
				{Year: 2, Events: []string{"방사선"}},
				{Year: 5, Events: []string{"방사선"}},
			},
		},
	},
	{
		ScenarioDTO: ScenarioDTO{
			ID:          "full-course",
			Name:        "Five-Year Treatment Course",
			Description: "Surgery, radiation, targeted therapy, and an ICU stay across five years, both insurers subscribed",
		},
		Request: QuoteRequest{
			Customer: "홍길동",
			Coverages: map[string]map[string]int64{
				"samsung": {
					"암직접치료보장":      3000,
					"암주요치료보장":      2000,
					"프리미엄암직접치료보장": 500,
					"항암방사선 최초1회":   300,
				},
				"kb": {
					"암 주요치료비":       1000,
					"비급여 암 주요치료비II": 500,
					"비급여 항암약물치료비II": 300,
				},
			},
			Years: []YearEventsDTO{
				{Year: 1, Events: []string{"수술", "중환자실"}},
				{Year: 2, Events: []string{"방사선", "항암약물"}},
				{Year: 3, Events: []string{"표적(비급여)"}},
				{Year: 4, Events: []string{"표적(비급여)", "로봇수술"}},
				{Year: 5, Events: []string{"항암호르몬"}},
			},
		},
	},
}

func surgeryYears(n int) []YearEventsDTO {
	out := make([]YearEventsDTO, n)
	for i := range out {
		out[i] = YearEventsDTO{Year: i + 1, Events: []string{"수술"}}
	}
	return out
}

// =============================================================================
// SCENARIO HANDLERS
// =============================================================================

// ListScenarios returns available scenarios.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	dtos := make([]ScenarioDTO, len(scenarios))
	for i, s := range scenarios {
		dtos[i] = s.ScenarioDTO
	}
	writeJSON(w, http.StatusOK, dtos)
}

// RunScenario computes a predefined scenario.
func (h *Handler) RunScenario(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	for _, s := range scenarios {
		if s.ID != id {
			continue
		}
		res, err := quote.Compute(toQuoteRequest(s.Request), h.RuleSets)
		if err != nil {
			if payout.IsValidation(err) {
				writeError(w, http.StatusBadRequest, "Invalid scenario request", err)
			} else {
				writeError(w, http.StatusInternalServerError, "Failed to compute scenario", err)
			}
			return
		}
		writeJSON(w, http.StatusOK, toQuoteResponseDTO(res))
		return
	}

	writeError(w, http.StatusNotFound, "Unknown scenario", nil)
}
