/*
rules.go - KB table-driven rule generation

RULE SHAPE:
  The major-treatment clause fires on the broad treatment tags at the
  full rate, except ICU admission which pays at half rate - the one
  fractional rate in the built-in tables. Non-covered therapy tags fire
  the non-covered clauses; year-exclusivity on those clauses (see
  catalog.go) ensures only the first trigger per year pays.
*/
package kb

import (
	"github.com/shopspring/decimal"

	"github.com/oncare/coverage-engine/payout"
)

// rateHalf is the ICU half-payment rate on the major-treatment clauses.
var rateHalf = decimal.NewFromFloat(0.5)

// Rules returns the KB event-to-clause table.
func Rules() *payout.RuleTable {
	t := func(n payout.ClauseName) payout.Trigger {
		return payout.Trigger{Clause: n, Multiplier: 1, Rate: payout.RateOne}
	}
	half := func(n payout.ClauseName) payout.Trigger {
		return payout.Trigger{Clause: n, Multiplier: 1, Rate: rateHalf}
	}

	return payout.NewRuleTable(payout.InsurerKB, map[payout.EventTag][]payout.Trigger{
		payout.EventSurgery:   {t(ClauseMajor), t(ClauseMinorMajor)},
		payout.EventRadiation: {t(ClauseMajor), t(ClauseMinorMajor), t(ClauseFirstRT)},
		payout.EventChemoDrug: {t(ClauseMajor), t(ClauseMinorMajor), t(ClauseFirstDrug)},
		payout.EventHormone:   {t(ClauseMajor), t(ClauseMinorMajor)},
		payout.EventICU:       {half(ClauseMajor), half(ClauseMinorMajor)},

		payout.EventTargetedNonPay: {t(ClauseNonPayMajor), t(ClauseNonPayDrug)},
		payout.EventImmuneNonPay:   {t(ClauseNonPayMajor), t(ClauseNonPayDrug)},
		payout.EventRobotSurgery:   {t(ClauseNonPayMajor)},
		payout.EventHeavyParticle:  {t(ClauseNonPayMajor), t(ClauseFirstCarbon)},
	})
}
