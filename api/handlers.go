/*
handlers.go - HTTP API handlers for the coverage quote engine

PURPOSE:
  Exposes the payout engine via REST API. Handles HTTP request/response,
  JSON serialization, and delegates to the quote/payout packages.

ENDPOINTS:
  Quotes:
    POST   /api/quotes             Compute a quote (JSON report)
    POST   /api/proposal           Compute and render as text/plain

  Reference data:
    GET    /api/catalogs           All clause catalogs
    GET    /api/catalogs/{insurer} One insurer's catalog
    GET    /api/events             The treatment-event vocabulary

  Scenarios:
    GET    /api/scenarios          List demo scenarios
    POST   /api/scenarios/{id}/run Run a demo scenario

ARCHITECTURE:
  Handler holds the rule sets (built-in defaults, optionally overridden
  from files at startup). There is no store: a quote computation is
  transient and per-request by design.

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors (negative amounts, unknown tags, year order)
  - 404: Unknown insurer or scenario
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - scenarios.go: Demo scenario definitions
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oncare/coverage-engine/factory"
	"github.com/oncare/coverage-engine/payout"
	"github.com/oncare/coverage-engine/proposal"
	"github.com/oncare/coverage-engine/quote"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	RuleSets map[payout.Insurer]factory.RuleSet
}

// NewHandler creates a handler over the given rule sets. Pass
// factory.Defaults() for the built-in product lines.
func NewHandler(ruleSets map[payout.Insurer]factory.RuleSet) *Handler {
	return &Handler{RuleSets: ruleSets}
}

// =============================================================================
// QUOTE HANDLERS
// =============================================================================

// CreateQuote computes a quote and returns the full JSON report.
func (h *Handler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var dto QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	res, err := quote.Compute(toQuoteRequest(dto), h.RuleSets)
	if err != nil {
		if payout.IsValidation(err) {
			writeError(w, http.StatusBadRequest, "Invalid quote request", err)
		} else {
			writeError(w, http.StatusInternalServerError, "Failed to compute quote", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, toQuoteResponseDTO(res))
}

// RenderProposal computes a quote and returns the proposal document as
// text/plain. The quote is not persisted; rendering is re-derived from
// the request body.
func (h *Handler) RenderProposal(w http.ResponseWriter, r *http.Request) {
	var dto QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	req := toQuoteRequest(dto)
	res, err := quote.Compute(req, h.RuleSets)
	if err != nil {
		if payout.IsValidation(err) {
			writeError(w, http.StatusBadRequest, "Invalid quote request", err)
		} else {
			writeError(w, http.StatusInternalServerError, "Failed to compute quote", err)
		}
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(proposal.Render(req, res, h.RuleSets))); err != nil {
		log.Printf("Failed to write proposal: %v", err)
	}
}

// =============================================================================
// REFERENCE DATA HANDLERS
// =============================================================================

// ListCatalogs returns all clause catalogs.
func (h *Handler) ListCatalogs(w http.ResponseWriter, r *http.Request) {
	var dtos []CatalogDTO
	for _, insurer := range []payout.Insurer{payout.InsurerSamsung, payout.InsurerKB} {
		if rs, ok := h.RuleSets[insurer]; ok {
			dtos = append(dtos, toCatalogDTO(insurer, rs.Catalog))
		}
	}
	for insurer, rs := range h.RuleSets {
		if insurer == payout.InsurerSamsung || insurer == payout.InsurerKB {
			continue
		}
		dtos = append(dtos, toCatalogDTO(insurer, rs.Catalog))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetCatalog returns a single insurer's catalog.
func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	insurer := payout.Insurer(chi.URLParam(r, "insurer"))

	rs, ok := h.RuleSets[insurer]
	if !ok {
		writeError(w, http.StatusNotFound, "Unknown insurer", payout.ErrUnknownInsurer)
		return
	}

	writeJSON(w, http.StatusOK, toCatalogDTO(insurer, rs.Catalog))
}

// ListEvents returns the treatment-event vocabulary in selection order.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events := make([]string, len(payout.EventVocabulary))
	for i, ev := range payout.EventVocabulary {
		events[i] = string(ev)
	}
	writeJSON(w, http.StatusOK, events)
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
		var ve *payout.ValidationError
		if errors.As(err, &ve) {
			resp.Code = ve.Code
		}
	}
	writeJSON(w, status, resp)
}
