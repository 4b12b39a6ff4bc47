/*
Package payout provides the core payout computation engine.

PURPOSE:
  This package contains insurer-agnostic types and algorithms for computing
  simulated insurance payouts from treatment scenarios. Given a clause
  catalog, a rule table, and a per-year list of treatment events, the same
  engine handles amount computation, cap enforcement, and aggregation for
  any insurer product line.

KEY CONCEPTS IN THIS FILE (types.go):
  - ManWon: A currency amount in units of 10,000 won
  - Clause: A named benefit with a subscribed amount and usage caps
  - EventTag: A treatment/procedure category selected for a given year
  - LineItem: An immutable payout entry (year, clause, amount)
  - Catalog: The ordered, immutable clause set for one insurer

DESIGN PRINCIPLES:
  1. Immutability: Catalogs and rule tables never change after construction
  2. Precision: Uses decimal.Decimal for rate arithmetic, never float64
  3. Type Safety: Strong typing for clause names and event tags
  4. Isolation: All mutable state lives in a per-computation UsageTracker

USAGE:
  catalog, _ := samsungCatalog.WithAmounts(map[payout.ClauseName]payout.ManWon{
      "암직접치료보장": 1000,
  })
  engine := payout.Engine{}
  result, err := engine.Compute(payout.ComputationInput{...})

SEE ALSO:
  - rules.go: Event-to-clause rule tables
  - tracker.go: Usage cap enforcement
  - engine.go: The per-year payout algorithm
*/
package payout

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// MAN-WON - Currency amount in units of 10,000 won
// =============================================================================

// ManWon is an integer amount in units of 10,000 won. All subscribed
// amounts and payouts are whole man-won; fractional results from rate
// multiplication are rounded half-up.
type ManWon int64

func (m ManWon) Decimal() decimal.Decimal { return decimal.NewFromInt(int64(m)) }
func (m ManWon) IsZero() bool             { return m == 0 }
func (m ManWon) IsNegative() bool         { return m < 0 }

// roundHalfUp converts a decimal amount to whole man-won, rounding halves
// up. decimal.Round rounds half away from zero, which is half-up for the
// non-negative amounts produced here.
func roundHalfUp(d decimal.Decimal) ManWon {
	return ManWon(d.Round(0).IntPart())
}

// =============================================================================
// IDENTIFIERS
// =============================================================================

// Insurer identifies a product line. Each insurer has its own clause
// namespace, rule table, and usage tracker.
type Insurer string

const (
	InsurerSamsung Insurer = "samsung"
	InsurerKB      Insurer = "kb"
)

// ClauseName identifies a clause within one insurer's catalog.
type ClauseName string

// =============================================================================
// EVENT TAGS - Closed treatment vocabulary shared across insurers
// =============================================================================

// EventTag is a treatment/procedure category. The vocabulary is shared
// across both insurers' rule tables; tags with no rule for an insurer are
// silently ignored by that insurer.
type EventTag string

const (
	EventSurgery          EventTag = "수술"
	EventRadiation        EventTag = "방사선"
	EventChemoDrug        EventTag = "항암약물"
	EventHormone          EventTag = "항암호르몬"
	EventHeavyParticle    EventTag = "중입자"
	EventIMRT             EventTag = "세기조절"
	EventProton           EventTag = "양성자"
	EventStereotactic     EventTag = "정위적"
	EventRobotSurgery     EventTag = "로봇수술"
	EventTargetedCovered  EventTag = "표적(급여)"
	EventTargetedNonPay   EventTag = "표적(비급여)"
	EventImmuneCovered    EventTag = "면역(급여)"
	EventImmuneNonPay     EventTag = "면역(비급여)"
	EventTertiaryHospital EventTag = "상급종합"
	EventICU              EventTag = "중환자실"
)

// EventVocabulary is the full tag set, in the order treatments are offered
// for selection.
var EventVocabulary = []EventTag{
	EventSurgery, EventRadiation, EventChemoDrug, EventHormone,
	EventHeavyParticle, EventIMRT, EventProton, EventStereotactic,
	EventRobotSurgery, EventTargetedCovered, EventTargetedNonPay,
	EventImmuneCovered, EventImmuneNonPay, EventTertiaryHospital, EventICU,
}

// KnownEvent reports whether tag is in the closed vocabulary. Used for
// boundary validation of untrusted input; the engine itself ignores
// unknown tags.
func KnownEvent(tag EventTag) bool {
	for _, t := range EventVocabulary {
		if t == tag {
			return true
		}
	}
	return false
}

// =============================================================================
// CANCER SCOPE - Major vs minor-cancer clause applicability
// =============================================================================

// CancerScope restricts a clause to major-cancer or minor-cancer
// computations. The minor-cancer flag is supplied once for a whole
// computation; a major-only clause and its minor counterpart are therefore
// mutually exclusive within any single run.
type CancerScope string

const (
	ScopeAny   CancerScope = "any"
	ScopeMajor CancerScope = "major" // pays only when the case is NOT minor-cancer
	ScopeMinor CancerScope = "minor" // pays only when the case IS minor-cancer
)

// applies reports whether a clause with this scope pays under the given
// minor-cancer flag.
func (s CancerScope) applies(minorCancer bool) bool {
	switch s {
	case ScopeMajor:
		return !minorCancer
	case ScopeMinor:
		return minorCancer
	default:
		return true
	}
}

// =============================================================================
// CLAUSE - A named benefit with a subscribed amount and caps
// =============================================================================

// Clause is a named insurance benefit belonging to one insurer product
// line. Immutable once a computation starts.
type Clause struct {
	Name ClauseName

	// SubscribedAmount is the user-entered coverage amount in man-won.
	// Defaults to zero; a zero-amount clause never emits a line item.
	SubscribedAmount ManWon

	// MaxLifetimeUses caps how many times the clause pays across the whole
	// multi-year computation. Zero or negative means unbounded. A cap of 1
	// models a first-occurrence-only clause.
	MaxLifetimeUses int

	// YearExclusive caps the clause at one payment per year, checked
	// before the lifetime cap.
	YearExclusive bool

	// Scope restricts the clause to major or minor-cancer cases.
	Scope CancerScope
}

// Unbounded reports whether the clause has no lifetime cap.
func (c Clause) Unbounded() bool { return c.MaxLifetimeUses <= 0 }

// =============================================================================
// CATALOG - Ordered, immutable clause set for one insurer
// =============================================================================

// Catalog holds the fixed ordered clause sequence for one insurer.
// Construct once at startup (or via factory from a rule-set file), then
// derive per-quote catalogs with WithAmounts.
type Catalog struct {
	insurer Insurer
	clauses []Clause
	index   map[ClauseName]int
}

// NewCatalog builds a catalog from an ordered clause list. Later
// duplicates of a name are ignored; the first definition wins.
func NewCatalog(insurer Insurer, clauses []Clause) *Catalog {
	c := &Catalog{
		insurer: insurer,
		clauses: make([]Clause, 0, len(clauses)),
		index:   make(map[ClauseName]int, len(clauses)),
	}
	for _, cl := range clauses {
		if cl.Scope == "" {
			cl.Scope = ScopeAny
		}
		if _, dup := c.index[cl.Name]; dup {
			continue
		}
		c.index[cl.Name] = len(c.clauses)
		c.clauses = append(c.clauses, cl)
	}
	return c
}

func (c *Catalog) Insurer() Insurer { return c.insurer }

// Clauses returns the ordered clause sequence. Callers must not mutate
// the returned slice.
func (c *Catalog) Clauses() []Clause { return c.clauses }

// Lookup returns the clause by name. A missing name reports ok=false;
// the engine treats that as a zero subscribed amount, never an error.
func (c *Catalog) Lookup(name ClauseName) (Clause, bool) {
	i, ok := c.index[name]
	if !ok {
		return Clause{}, false
	}
	return c.clauses[i], true
}

// WithAmounts returns a copy of the catalog with subscribed amounts
// applied from user input. Negative amounts and unknown clause names are
// rejected; this is the validation boundary, the engine itself never
// fails on bad amounts.
func (c *Catalog) WithAmounts(amounts map[ClauseName]ManWon) (*Catalog, error) {
	for name, amt := range amounts {
		if _, ok := c.index[name]; !ok {
			return nil, &ValidationError{
				Code:    "unknown_clause",
				Message: "clause not in catalog: " + string(name),
				Err:     ErrUnknownClause,
			}
		}
		if amt.IsNegative() {
			return nil, &ValidationError{
				Code:    "negative_amount",
				Message: "negative subscribed amount for clause: " + string(name),
				Err:     ErrNegativeAmount,
			}
		}
	}

	out := &Catalog{
		insurer: c.insurer,
		clauses: make([]Clause, len(c.clauses)),
		index:   c.index,
	}
	copy(out.clauses, c.clauses)
	for name, amt := range amounts {
		out.clauses[c.index[name]].SubscribedAmount = amt
	}
	return out, nil
}

// =============================================================================
// LINE ITEM - One payout entry
// =============================================================================

// LineItem records a single payout: which clause paid, in which year, and
// how much. Immutable once created; consumed only by aggregation and
// rendering. Amount is always positive (zero amounts are suppressed at
// the source).
type LineItem struct {
	Year    int        `json:"year"`
	Insurer Insurer    `json:"insurer"`
	Clause  ClauseName `json:"clause"`
	Amount  ManWon     `json:"amount"`
}

// =============================================================================
// YEARLY EVENTS - Input event log
// =============================================================================

// YearEvents is the treatment selection for one year. Events keep their
// caller-supplied order; duplicates are NOT deduplicated (each occurrence
// is re-processed, independently subject to caps), preserving the
// behavior of the original tool.
type YearEvents struct {
	Year   int
	Events []EventTag
}
