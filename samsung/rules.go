/*
rules.go - Samsung table-driven rule generation

RULE SHAPE:
  Every trigger pays at the full rate; the premium compounding from the
  first revision is expressed as multipliers instead of repeated fixed
  bonuses: a non-covered immune event implies all lower-tier coverage
  also firing, hence x4 on the premium clause. Major and minor-cancer
  twins both appear on the same events; the engine's scope filter selects
  one family per computation.

DIVERGENCE FROM THE LEGACY GENERATION:
  - Robotic surgery additionally triggers the premium-class clause here.
  - Premium compounding emits ONE combined line item (e.g. x4) instead of
    four distinct named sub-coverage rows.
*/
package samsung

import "github.com/oncare/coverage-engine/payout"

// Rules returns the Samsung event-to-clause table.
func Rules() *payout.RuleTable {
	t := func(n payout.ClauseName) payout.Trigger {
		return payout.Trigger{Clause: n, Multiplier: 1, Rate: payout.RateOne}
	}
	premium := func(multiplier int) payout.Trigger {
		return payout.Trigger{Clause: ClausePremium, Multiplier: multiplier, Rate: payout.RateOne}
	}

	return payout.NewRuleTable(payout.InsurerSamsung, map[payout.EventTag][]payout.Trigger{
		payout.EventSurgery: {t(ClauseDirect), t(ClauseMinorDirect), t(ClauseMajor), t(ClauseMinorMajor)},
		payout.EventRadiation: {t(ClauseDirect), t(ClauseMinorDirect), t(ClauseMajor), t(ClauseMinorMajor),
			t(ClauseFirstRT)},
		payout.EventChemoDrug: {t(ClauseDirect), t(ClauseMinorDirect), t(ClauseMajor), t(ClauseMinorMajor),
			t(ClauseFirstDrug)},
		payout.EventHormone:          {t(ClauseDirect), t(ClauseMinorDirect)},
		payout.EventTertiaryHospital: {t(ClauseTertiary), t(ClauseMinorTertiary)},

		// Premium tiers: higher-tier therapy implies the lower tiers also fire.
		payout.EventTargetedCovered: {premium(1)},
		payout.EventTargetedNonPay:  {premium(2)},
		payout.EventImmuneCovered:   {premium(2)},
		payout.EventImmuneNonPay:    {premium(4)},

		// High-tech radiotherapy options.
		payout.EventIMRT:         {premium(1)},
		payout.EventProton:       {premium(1), t(ClausePremiumClass)},
		payout.EventStereotactic: {premium(1)},
		payout.EventRobotSurgery: {premium(1), t(ClausePremiumClass)},

		payout.EventHeavyParticle: {t(ClauseFirstCarbon), t(ClausePremiumClass)},
	})
}
