/*
tracker.go - Per-computation usage cap enforcement

PURPOSE:
  The UsageTracker is the only mutable state in a payout computation. It
  records, per clause, how many times the clause has paid over the whole
  run (lifetime) and within each year (for year-exclusive clauses), and
  answers the single question the engine asks: "may this clause pay again
  in this year?"

CRITICAL INVARIANTS:
  1. MONOTONIC: Counters only increase; there is no reversal
  2. ORDERED CHECKS: Year-exclusivity is checked BEFORE the lifetime cap
  3. NO SIDE EFFECTS ON REJECTION: A rejected payment changes nothing
  4. OWNED: One tracker per insurer per computation, never shared

WHY CHECK YEAR-EXCLUSIVITY FIRST?
  Year-exclusive clauses are the rarer, within-year-capped kind; general
  clauses are capped lifetime-wide. Checking the year constraint first
  means a year-exclusive rejection never consumes lifetime budget, which
  matches the observed behavior of the original tool.

CONCURRENCY:
  None needed. A tracker lives inside one synchronous computation and is
  discarded afterwards. Concurrent quote requests each allocate their own.

SEE ALSO:
  - engine.go: The only caller of RecordIfAllowed
  - types.go: Clause cap fields (MaxLifetimeUses, YearExclusive)
*/
package payout

// =============================================================================
// USAGE TRACKER
// =============================================================================

type yearClause struct {
	year   int
	clause ClauseName
}

// UsageTracker holds the mutable counters for one insurer's computation.
// The zero value is not usable; call NewUsageTracker.
type UsageTracker struct {
	lifetime map[ClauseName]int
	yearly   map[yearClause]int
}

// NewUsageTracker returns an empty tracker. Each computation run
// constructs a fresh one; state never crosses runs or insurers.
func NewUsageTracker() *UsageTracker {
	return &UsageTracker{
		lifetime: make(map[ClauseName]int),
		yearly:   make(map[yearClause]int),
	}
}

// RecordIfAllowed checks the clause's caps for the given year and, if the
// payment is allowed, records it and returns true. Checks run in order:
// (a) year-exclusivity, (b) lifetime cap. Rejection has no side effects.
func (t *UsageTracker) RecordIfAllowed(clause Clause, year int) bool {
	if clause.YearExclusive && t.yearly[yearClause{year, clause.Name}] >= 1 {
		return false
	}
	if !clause.Unbounded() && t.lifetime[clause.Name] >= clause.MaxLifetimeUses {
		return false
	}

	t.lifetime[clause.Name]++
	t.yearly[yearClause{year, clause.Name}]++
	return true
}

// LifetimeUses returns how many times the clause has paid so far.
func (t *UsageTracker) LifetimeUses(name ClauseName) int {
	return t.lifetime[name]
}

// YearUses returns how many times the clause has paid within one year.
func (t *UsageTracker) YearUses(name ClauseName, year int) int {
	return t.yearly[yearClause{year, name}]
}
