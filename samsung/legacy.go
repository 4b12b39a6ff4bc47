/*
legacy.go - First-revision hand-coded Samsung payout logic

PURPOSE:
  Preserves the fixed-bonus behavior of the first revision of the tool,
  selectable per quote next to the canonical table-driven generation.
  The two generations disagree for some events (robotic surgery triggers
  the premium-class clause only in the table-driven generation), so the
  older behavior stays available until the business rule is settled.

BEHAVIOR NOTES (kept bug-for-bug with the first revision):
  - The premium clause pays once per qualifying event TYPE per year, with
    compounding: a non-covered immune event emits all four named
    sub-coverage rows; non-covered targeted and covered immune events
    emit two rows each.
  - First-occurrence clauses use boolean latches across the whole run.
  - The major/direct/tertiary clause families check a minor-cancer flag
    supplied once for the whole computation.
  - No lifetime caps beyond the first-occurrence latches.
*/
package samsung

import "github.com/oncare/coverage-engine/payout"

// Premium sub-coverage row names emitted by the legacy generation.
const (
	LegacyPremiumTargetedCovered payout.ClauseName = "프리미엄-표적(급여)"
	LegacyPremiumTargetedNonPay  payout.ClauseName = "프리미엄-표적(비급여)"
	LegacyPremiumImmuneCovered   payout.ClauseName = "프리미엄-면역(급여)"
	LegacyPremiumImmuneNonPay    payout.ClauseName = "프리미엄-면역(비급여)"
)

// ComputeLegacy runs the first-revision Samsung logic over the event log.
// Amounts are keyed by catalog clause name; years are assumed validated
// by the caller. Returns the grand total and the flat line-item detail.
func ComputeLegacy(amounts map[payout.ClauseName]payout.ManWon, years []payout.YearEvents, minorCancer bool) (payout.ManWon, []payout.LineItem) {
	var total payout.ManWon
	var detail []payout.LineItem

	rtPaid, drugPaid, carbonPaid := false, false, false

	pay := func(year int, name payout.ClauseName, amount payout.ManWon) {
		total += amount
		detail = append(detail, payout.LineItem{
			Year:    year,
			Insurer: payout.InsurerSamsung,
			Clause:  name,
			Amount:  amount,
		})
	}

	for _, ye := range years {
		evs := ye.Events
		year := ye.Year

		// Major and direct treatment families, gated by the minor-cancer flag.
		if !minorCancer && amounts[ClauseMajor] > 0 &&
			containsAny(evs, payout.EventSurgery, payout.EventRadiation, payout.EventChemoDrug) {
			pay(year, ClauseMajor, amounts[ClauseMajor])
		}
		if minorCancer && amounts[ClauseMinorMajor] > 0 &&
			containsAny(evs, payout.EventSurgery, payout.EventRadiation, payout.EventChemoDrug) {
			pay(year, ClauseMinorMajor, amounts[ClauseMinorMajor])
		}

		if !minorCancer && amounts[ClauseDirect] > 0 &&
			containsAny(evs, payout.EventSurgery, payout.EventRadiation, payout.EventChemoDrug, payout.EventHormone) {
			pay(year, ClauseDirect, amounts[ClauseDirect])
		}
		if minorCancer && amounts[ClauseMinorDirect] > 0 &&
			containsAny(evs, payout.EventSurgery, payout.EventRadiation, payout.EventChemoDrug, payout.EventHormone) {
			pay(year, ClauseMinorDirect, amounts[ClauseMinorDirect])
		}

		if !minorCancer && amounts[ClauseTertiary] > 0 && containsAny(evs, payout.EventTertiaryHospital) {
			pay(year, ClauseTertiary, amounts[ClauseTertiary])
		}
		if minorCancer && amounts[ClauseMinorTertiary] > 0 && containsAny(evs, payout.EventTertiaryHospital) {
			pay(year, ClauseMinorTertiary, amounts[ClauseMinorTertiary])
		}

		// Premium clause: fixed compounding per qualifying event type.
		if prem := amounts[ClausePremium]; prem > 0 {
			if containsAny(evs, payout.EventTargetedCovered) {
				pay(year, LegacyPremiumTargetedCovered, prem)
			}
			if containsAny(evs, payout.EventTargetedNonPay) {
				pay(year, LegacyPremiumTargetedCovered, prem)
				pay(year, LegacyPremiumTargetedNonPay, prem)
			}
			if containsAny(evs, payout.EventImmuneCovered) {
				pay(year, LegacyPremiumTargetedCovered, prem)
				pay(year, LegacyPremiumImmuneCovered, prem)
			}
			if containsAny(evs, payout.EventImmuneNonPay) {
				pay(year, LegacyPremiumTargetedCovered, prem)
				pay(year, LegacyPremiumTargetedNonPay, prem)
				pay(year, LegacyPremiumImmuneCovered, prem)
				pay(year, LegacyPremiumImmuneNonPay, prem)
			}
			for _, opt := range []payout.EventTag{
				payout.EventIMRT, payout.EventProton, payout.EventStereotactic, payout.EventRobotSurgery,
			} {
				if containsAny(evs, opt) {
					pay(year, payout.ClauseName("프리미엄-"+string(opt)), prem)
				}
			}
		}

		// First-occurrence latches.
		if !rtPaid && containsAny(evs, payout.EventRadiation) && amounts[ClauseFirstRT] > 0 {
			rtPaid = true
			pay(year, ClauseFirstRT, amounts[ClauseFirstRT])
		}
		if !drugPaid && containsAny(evs, payout.EventChemoDrug) && amounts[ClauseFirstDrug] > 0 {
			drugPaid = true
			pay(year, ClauseFirstDrug, amounts[ClauseFirstDrug])
		}
		if !carbonPaid && containsAny(evs, payout.EventHeavyParticle) && amounts[ClauseFirstCarbon] > 0 {
			carbonPaid = true
			pay(year, ClauseFirstCarbon, amounts[ClauseFirstCarbon])
		}
	}

	return total, detail
}

func containsAny(evs []payout.EventTag, tags ...payout.EventTag) bool {
	for _, ev := range evs {
		for _, tag := range tags {
			if ev == tag {
				return true
			}
		}
	}
	return false
}
