// Package kb provides the KB non-life product-line data: clause catalog,
// table-driven rule generation, and the legacy hand-coded calculator.
// It mirrors the samsung package over a disjoint clause namespace.
package kb

import "github.com/oncare/coverage-engine/payout"

// =============================================================================
// CLAUSE NAMES
// =============================================================================

const (
	ClauseMajor       payout.ClauseName = "암 주요치료비"
	ClauseMinorMajor  payout.ClauseName = "유사암 주요치료비"
	ClauseNonPayMajor payout.ClauseName = "비급여 암 주요치료비II"
	ClauseNonPayDrug  payout.ClauseName = "비급여 항암약물치료비II"
	ClauseFirstRT     payout.ClauseName = "항암방사선 최초1회"
	ClauseFirstDrug   payout.ClauseName = "항암약물 최초1회"
	ClauseFirstCarbon payout.ClauseName = "항암중입자 최초1회"
)

// =============================================================================
// CATALOG
// =============================================================================

// Catalog returns the KB clause catalog with zero subscribed amounts.
// The non-covered major-treatment clause is year-exclusive: within one
// year only the first triggering event pays, regardless of how many
// qualifying treatments occur. The non-covered drug clause carries a
// lifetime cap of 10 payments.
func Catalog() *payout.Catalog {
	return payout.NewCatalog(payout.InsurerKB, []payout.Clause{
		{Name: ClauseMajor, YearExclusive: true, Scope: payout.ScopeMajor},
		{Name: ClauseMinorMajor, YearExclusive: true, Scope: payout.ScopeMinor},
		{Name: ClauseNonPayMajor, YearExclusive: true, Scope: payout.ScopeAny},
		{Name: ClauseNonPayDrug, MaxLifetimeUses: 10, YearExclusive: true, Scope: payout.ScopeAny},
		{Name: ClauseFirstRT, MaxLifetimeUses: 1, Scope: payout.ScopeAny},
		{Name: ClauseFirstDrug, MaxLifetimeUses: 1, Scope: payout.ScopeAny},
		{Name: ClauseFirstCarbon, MaxLifetimeUses: 1, Scope: payout.ScopeAny},
	})
}
