/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract, allowing:
  - Field renaming without breaking clients
  - API-specific validation
  - Version evolution

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

TYPES:
  Quote:
    QuoteRequest, QuoteResponseDTO, YearEventsDTO

  Results:
    InsurerResultDTO, YearResultDTO, LineItemDTO, YearGroupDTO,
    InsurerSectionDTO

  Catalog:
    CatalogDTO, ClauseDTO

  Scenarios:
    ScenarioDTO

VALIDATION:
  Structural validation is done in handlers; domain validation (negative
  amounts, unknown tags, year ordering) happens in the quote/payout
  packages and is mapped to 400 responses.

SEE ALSO:
  - handlers.go: Uses these types
  - quote/: The domain request/result these convert to and from
*/
package api

import (
	"time"

	"github.com/oncare/coverage-engine/payout"
	"github.com/oncare/coverage-engine/proposal"
	"github.com/oncare/coverage-engine/quote"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// YearEventsDTO is one year's treatment selection.
type YearEventsDTO struct {
	Year   int      `json:"year"`
	Events []string `json:"events"`
}

// QuoteRequest is the request to compute a quote.
type QuoteRequest struct {
	Customer       string                      `json:"customer"`
	IsMinorCancer  bool                        `json:"is_minor_cancer"`
	RuleGeneration string                      `json:"rule_generation,omitempty"` // "table" (default) or "legacy"
	Coverages      map[string]map[string]int64 `json:"coverages"`                 // insurer -> clause -> man-won
	Years          []YearEventsDTO             `json:"years"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// LineItemDTO is one payout row.
type LineItemDTO struct {
	Year   int    `json:"year"`
	Clause string `json:"clause"`
	Amount int64  `json:"amount"`
}

// YearResultDTO is one insurer's output for one year.
type YearResultDTO struct {
	Year  int           `json:"year"`
	Total int64         `json:"total"`
	Items []LineItemDTO `json:"items"`
}

// InsurerResultDTO is one insurer's full multi-year output.
type InsurerResultDTO struct {
	Insurer    string          `json:"insurer"`
	Label      string          `json:"label"`
	GrandTotal int64           `json:"grand_total"`
	Years      []YearResultDTO `json:"years"`
}

// InsurerSectionDTO is one insurer's slice of a year group.
type InsurerSectionDTO struct {
	Insurer  string        `json:"insurer"`
	Label    string        `json:"label"`
	Items    []LineItemDTO `json:"items"`
	Subtotal int64         `json:"subtotal"`
}

// YearGroupDTO lists one year's items per insurer plus the year subtotal.
type YearGroupDTO struct {
	Year     int                 `json:"year"`
	Sections []InsurerSectionDTO `json:"sections"`
	Subtotal int64               `json:"subtotal"`
}

// QuoteResponseDTO is the computed quote.
type QuoteResponseDTO struct {
	QuoteID        string             `json:"quote_id"`
	Customer       string             `json:"customer,omitempty"`
	RuleGeneration string             `json:"rule_generation"`
	ComputedAt     string             `json:"computed_at"`
	Insurers       []InsurerResultDTO `json:"insurers"`
	CombinedTotal  int64              `json:"combined_total"`
	Years          []YearGroupDTO     `json:"years"`
	EventsByYear   []YearEventsDTO    `json:"events_by_year"`
}

// ClauseDTO describes one catalog clause.
type ClauseDTO struct {
	Name            string `json:"name"`
	MaxLifetimeUses int    `json:"max_lifetime_uses,omitempty"` // omitted when unbounded
	YearExclusive   bool   `json:"year_exclusive,omitempty"`
	Scope           string `json:"scope"`
}

// CatalogDTO is one insurer's clause catalog.
type CatalogDTO struct {
	Insurer string      `json:"insurer"`
	Label   string      `json:"label"`
	Clauses []ClauseDTO `json:"clauses"`
}

// ScenarioDTO describes a demo scenario.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toQuoteRequest(dto QuoteRequest) quote.Request {
	req := quote.Request{
		Customer:    dto.Customer,
		MinorCancer: dto.IsMinorCancer,
		Generation:  quote.Generation(dto.RuleGeneration),
		Coverages:   make(map[payout.Insurer]map[payout.ClauseName]payout.ManWon, len(dto.Coverages)),
	}
	for insurer, amounts := range dto.Coverages {
		m := make(map[payout.ClauseName]payout.ManWon, len(amounts))
		for name, amt := range amounts {
			m[payout.ClauseName(name)] = payout.ManWon(amt)
		}
		req.Coverages[payout.Insurer(insurer)] = m
	}
	for _, ye := range dto.Years {
		events := make([]payout.EventTag, len(ye.Events))
		for i, ev := range ye.Events {
			events[i] = payout.EventTag(ev)
		}
		req.Years = append(req.Years, payout.YearEvents{Year: ye.Year, Events: events})
	}
	return req
}

func toQuoteResponseDTO(res *quote.Result) QuoteResponseDTO {
	report := res.Report

	dto := QuoteResponseDTO{
		QuoteID:        res.QuoteID,
		Customer:       res.Customer,
		RuleGeneration: string(res.Generation),
		ComputedAt:     res.ComputedAt.Format(time.RFC3339),
		CombinedTotal:  int64(report.CombinedTotal),
	}

	for _, r := range report.Insurers {
		ir := InsurerResultDTO{
			Insurer:    string(r.Insurer),
			Label:      proposal.Label(r.Insurer),
			GrandTotal: int64(r.GrandTotal),
		}
		for _, yr := range r.Years {
			ir.Years = append(ir.Years, YearResultDTO{
				Year:  yr.Year,
				Total: int64(yr.Total),
				Items: toLineItemDTOs(yr.Items),
			})
		}
		dto.Insurers = append(dto.Insurers, ir)
	}

	for _, group := range report.Years {
		g := YearGroupDTO{Year: group.Year, Subtotal: int64(group.Subtotal)}
		for _, section := range group.Sections {
			g.Sections = append(g.Sections, InsurerSectionDTO{
				Insurer:  string(section.Insurer),
				Label:    proposal.Label(section.Insurer),
				Items:    toLineItemDTOs(section.Items),
				Subtotal: int64(section.Subtotal),
			})
		}
		dto.Years = append(dto.Years, g)
	}

	for _, ye := range report.EventsByYear {
		events := make([]string, len(ye.Events))
		for i, ev := range ye.Events {
			events[i] = string(ev)
		}
		dto.EventsByYear = append(dto.EventsByYear, YearEventsDTO{Year: ye.Year, Events: events})
	}

	return dto
}

func toLineItemDTOs(items []payout.LineItem) []LineItemDTO {
	dtos := make([]LineItemDTO, len(items))
	for i, it := range items {
		dtos[i] = LineItemDTO{Year: it.Year, Clause: string(it.Clause), Amount: int64(it.Amount)}
	}
	return dtos
}

func toCatalogDTO(insurer payout.Insurer, catalog *payout.Catalog) CatalogDTO {
	dto := CatalogDTO{Insurer: string(insurer), Label: proposal.Label(insurer)}
	for _, cl := range catalog.Clauses() {
		dto.Clauses = append(dto.Clauses, ClauseDTO{
			Name:            string(cl.Name),
			MaxLifetimeUses: cl.MaxLifetimeUses,
			YearExclusive:   cl.YearExclusive,
			Scope:           string(cl.Scope),
		})
	}
	return dto
}
