/*
Package samsung provides the Samsung Life product-line data: the clause
catalog, the table-driven rule generation, and the legacy hand-coded
calculator from the first revision of the tool.

PURPOSE:
  Demonstrates the insurer-agnostic payout engine against the Samsung
  cancer-treatment riders. The catalog and rule table here are the
  canonical, table-driven generation; legacy.go preserves the older
  fixed-bonus logic, which produces different payouts for some events
  (robotic surgery in particular) and stays selectable per quote.

CLAUSE FAMILIES:
  Major treatment:      암주요치료보장 and its 갑상선·기타피부암 twin
  Direct treatment:     암직접치료보장 and its minor-cancer twin
  Tertiary hospital:    상급종합병원 직접치료보장 pair
  Premium:              프리미엄암직접치료보장 (targeted/immune therapy,
                        high-tech radiotherapy), 프리미엄클래스 특정치료보장
  First-occurrence:     항암방사선/항암약물/중입자 최초1회 (lifetime cap 1)

SCOPE:
  Major/minor twins are mutually exclusive per computation via the
  minor-cancer flag; premium and first-occurrence clauses pay either way.

SEE ALSO:
  - rules.go: The table-driven event rules
  - legacy.go: First-revision hand-coded behavior
  - kb/: The KB product line
*/
package samsung

import "github.com/oncare/coverage-engine/payout"

// =============================================================================
// CLAUSE NAMES
// =============================================================================

const (
	ClauseMajor         payout.ClauseName = "암주요치료보장"
	ClauseMinorMajor    payout.ClauseName = "갑상선·기타피부암 주요치료보장"
	ClauseDirect        payout.ClauseName = "암직접치료보장"
	ClauseMinorDirect   payout.ClauseName = "갑상선·기타피부암 직접치료보장"
	ClauseTertiary      payout.ClauseName = "상급종합병원 암직접치료보장"
	ClauseMinorTertiary payout.ClauseName = "상급종합병원 갑상선·기타피부암 직접치료보장"
	ClausePremium       payout.ClauseName = "프리미엄암직접치료보장"
	ClausePremiumClass  payout.ClauseName = "프리미엄클래스암 특정치료보장"
	ClauseFirstRT       payout.ClauseName = "항암방사선 최초1회"
	ClauseFirstDrug     payout.ClauseName = "항암약물 최초1회"
	ClauseFirstCarbon   payout.ClauseName = "중입자 최초1회"
)

// =============================================================================
// CATALOG
// =============================================================================

// Catalog returns the Samsung clause catalog with zero subscribed
// amounts. Derive a per-quote catalog with WithAmounts before computing.
func Catalog() *payout.Catalog {
	return payout.NewCatalog(payout.InsurerSamsung, []payout.Clause{
		{Name: ClauseMajor, MaxLifetimeUses: 10, YearExclusive: true, Scope: payout.ScopeMajor},
		{Name: ClauseMinorMajor, MaxLifetimeUses: 10, YearExclusive: true, Scope: payout.ScopeMinor},
		{Name: ClauseDirect, MaxLifetimeUses: 10, YearExclusive: true, Scope: payout.ScopeMajor},
		{Name: ClauseMinorDirect, MaxLifetimeUses: 10, YearExclusive: true, Scope: payout.ScopeMinor},
		{Name: ClauseTertiary, MaxLifetimeUses: 10, YearExclusive: true, Scope: payout.ScopeMajor},
		{Name: ClauseMinorTertiary, MaxLifetimeUses: 10, YearExclusive: true, Scope: payout.ScopeMinor},
		{Name: ClausePremium, Scope: payout.ScopeAny},
		{Name: ClausePremiumClass, Scope: payout.ScopeAny},
		{Name: ClauseFirstRT, MaxLifetimeUses: 1, Scope: payout.ScopeAny},
		{Name: ClauseFirstDrug, MaxLifetimeUses: 1, Scope: payout.ScopeAny},
		{Name: ClauseFirstCarbon, MaxLifetimeUses: 1, Scope: payout.ScopeAny},
	})
}
