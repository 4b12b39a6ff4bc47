package kb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oncare/coverage-engine/kb"
	"github.com/oncare/coverage-engine/payout"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func compute(t *testing.T, amounts map[payout.ClauseName]payout.ManWon, minorCancer bool, years ...payout.YearEvents) *payout.InsurerResult {
	t.Helper()
	catalog, err := kb.Catalog().WithAmounts(amounts)
	require.NoError(t, err)
	result, err := payout.Engine{}.Compute(payout.ComputationInput{
		Catalog:     catalog,
		Rules:       kb.Rules(),
		MinorCancer: minorCancer,
		Years:       years,
	})
	require.NoError(t, err)
	return result
}

// =============================================================================
// TABLE-DRIVEN GENERATION
// =============================================================================

func TestKB_NonPayMajor_YearExclusiveAcrossTriggers(t *testing.T) {
	// GIVEN: The non-covered major clause (year-exclusive) subscribed at 500
	// WHEN: A non-covered targeted therapy AND a robotic surgery occur in year 3
	// THEN: Only the first triggering event pays; year total is 500, not 1000

	result := compute(t,
		map[payout.ClauseName]payout.ManWon{kb.ClauseNonPayMajor: 500},
		false,
		payout.YearEvents{Year: 3, Events: []payout.EventTag{payout.EventTargetedNonPay, payout.EventRobotSurgery}},
	)

	assert.Equal(t, payout.ManWon(500), result.GrandTotal)
	require.Len(t, result.Years, 1)
	require.Len(t, result.Years[0].Items, 1)
	assert.Equal(t, kb.ClauseNonPayMajor, result.Years[0].Items[0].Clause)
	assert.Equal(t, 3, result.Years[0].Items[0].Year)
}

func TestKB_NonPayMajor_PaysAgainNextYear(t *testing.T) {
	// Year-exclusivity resets each year; no lifetime cap on this clause.

	result := compute(t,
		map[payout.ClauseName]payout.ManWon{kb.ClauseNonPayMajor: 500},
		false,
		payout.YearEvents{Year: 1, Events: []payout.EventTag{payout.EventTargetedNonPay}},
		payout.YearEvents{Year: 2, Events: []payout.EventTag{payout.EventRobotSurgery}},
	)

	assert.Equal(t, payout.ManWon(1000), result.GrandTotal)
}

func TestKB_ICU_PaysMajorAtHalfRate(t *testing.T) {
	// GIVEN: The major-treatment clause subscribed at 333
	// WHEN: An ICU admission is the year's only event
	// THEN: The clause pays round(333 * 0.5) = 167

	result := compute(t,
		map[payout.ClauseName]payout.ManWon{kb.ClauseMajor: 333},
		false,
		payout.YearEvents{Year: 1, Events: []payout.EventTag{payout.EventICU}},
	)

	assert.Equal(t, payout.ManWon(167), result.GrandTotal)
	require.Len(t, result.Years[0].Items, 1)
	assert.Equal(t, kb.ClauseMajor, result.Years[0].Items[0].Clause)
}

func TestKB_Major_FullRateBeatsHalfWhenSurgeryFirst(t *testing.T) {
	// GIVEN: Surgery listed before the ICU stay in the same year
	// WHEN: Computing (the major clause is year-exclusive)
	// THEN: The full-rate surgery trigger pays; the half-rate ICU trigger
	//       is rejected by year-exclusivity

	result := compute(t,
		map[payout.ClauseName]payout.ManWon{kb.ClauseMajor: 1000},
		false,
		payout.YearEvents{Year: 1, Events: []payout.EventTag{payout.EventSurgery, payout.EventICU}},
	)

	assert.Equal(t, payout.ManWon(1000), result.GrandTotal)
	require.Len(t, result.Years[0].Items, 1)
}

func TestKB_NonPayDrug_LifetimeCapTen(t *testing.T) {
	// GIVEN: The non-covered drug clause (lifetime cap 10, year-exclusive)
	// WHEN: Targeted and immune non-covered therapy both occur every year
	// THEN: The clause pays once per year throughout the 10-year horizon
	//       and the non-covered major clause pays alongside it

	var years []payout.YearEvents
	for y := 1; y <= payout.MaxYears; y++ {
		years = append(years, payout.YearEvents{
			Year:   y,
			Events: []payout.EventTag{payout.EventTargetedNonPay, payout.EventImmuneNonPay},
		})
	}

	result := compute(t,
		map[payout.ClauseName]payout.ManWon{
			kb.ClauseNonPayMajor: 500,
			kb.ClauseNonPayDrug:  300,
		},
		false, years...)

	// 10 years x (500 major + 300 drug)
	assert.Equal(t, payout.ManWon(8000), result.GrandTotal)
	for _, yr := range result.Years {
		assert.Len(t, yr.Items, 2)
	}
}

func TestKB_MinorCancer_SelectsMinorMajorClause(t *testing.T) {
	result := compute(t,
		map[payout.ClauseName]payout.ManWon{
			kb.ClauseMajor:      1000,
			kb.ClauseMinorMajor: 200,
		},
		true,
		payout.YearEvents{Year: 1, Events: []payout.EventTag{payout.EventChemoDrug}},
	)

	assert.Equal(t, payout.ManWon(200), result.GrandTotal)
	require.Len(t, result.Years[0].Items, 1)
	assert.Equal(t, kb.ClauseMinorMajor, result.Years[0].Items[0].Clause)
}

// =============================================================================
// LEGACY GENERATION
// =============================================================================

func TestKBLegacy_ICUAnywhereHalvesMajor(t *testing.T) {
	// Legacy quirk: an ICU stay anywhere in the year halves the major
	// payment even when the trigger was surgery.

	total, detail := kb.ComputeLegacy(
		map[payout.ClauseName]payout.ManWon{kb.ClauseMajor: 1000},
		[]payout.YearEvents{{Year: 1, Events: []payout.EventTag{payout.EventSurgery, payout.EventICU}}},
		false,
	)

	assert.Equal(t, payout.ManWon(500), total)
	require.Len(t, detail, 1)
	assert.Equal(t, kb.ClauseMajor, detail[0].Clause)
}

func TestKBLegacy_MajorPaysOncePerYear(t *testing.T) {
	// The legacy per-year counter caps at five but a year's fan-out can
	// structurally reach only one major payment.

	total, detail := kb.ComputeLegacy(
		map[payout.ClauseName]payout.ManWon{kb.ClauseMajor: 1000},
		[]payout.YearEvents{
			{Year: 1, Events: []payout.EventTag{payout.EventSurgery, payout.EventRadiation, payout.EventChemoDrug}},
			{Year: 2, Events: []payout.EventTag{payout.EventHormone}},
		},
		false,
	)

	assert.Equal(t, payout.ManWon(2000), total)
	assert.Len(t, detail, 2)
}

func TestKBLegacy_NonPayDrugCapTen(t *testing.T) {
	// GIVEN: Non-covered drug clause at 300, triggered once per year
	// WHEN: Running a full 10-year log
	// THEN: The cap of 10 cannot bind inside a 10-year horizon with one
	//       trigger per year; all 10 payments land

	var years []payout.YearEvents
	for y := 1; y <= payout.MaxYears; y++ {
		years = append(years, payout.YearEvents{Year: y, Events: []payout.EventTag{payout.EventTargetedNonPay}})
	}

	total, detail := kb.ComputeLegacy(
		map[payout.ClauseName]payout.ManWon{kb.ClauseNonPayDrug: 300},
		years, false,
	)

	assert.Equal(t, payout.ManWon(3000), total)
	assert.Len(t, detail, 10)
}

func TestKBLegacy_FirstOccurrenceCarbonLatch(t *testing.T) {
	total, detail := kb.ComputeLegacy(
		map[payout.ClauseName]payout.ManWon{
			kb.ClauseNonPayMajor: 500,
			kb.ClauseFirstCarbon: 400,
		},
		[]payout.YearEvents{
			{Year: 1, Events: []payout.EventTag{payout.EventHeavyParticle}},
			{Year: 2, Events: []payout.EventTag{payout.EventHeavyParticle}},
		},
		false,
	)

	// Year 1: non-pay major 500 + carbon bonus 400. Year 2: major only.
	assert.Equal(t, payout.ManWon(1400), total)
	require.Len(t, detail, 3)
	assert.Equal(t, kb.ClauseFirstCarbon, detail[1].Clause)
	assert.Equal(t, 1, detail[1].Year)
}
