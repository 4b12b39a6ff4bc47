/*
legacy.go - First-revision hand-coded KB payout logic

Kept behavior-for-behavior with the first revision, including its quirks:
the major-treatment clause pays at half when an ICU stay appears anywhere
in that year's events (even when the trigger was surgery), the per-year
payment counter caps at five but can structurally reach only one, and the
non-covered major clause has no cap at all.
*/
package kb

import "github.com/oncare/coverage-engine/payout"

// legacyYearCap is the per-year payment ceiling the first revision placed
// on the major-treatment clause.
const legacyYearCap = 5

// ComputeLegacy runs the first-revision KB logic over the event log.
// Amounts are keyed by catalog clause name; years are assumed validated
// by the caller. Returns the grand total and the flat line-item detail.
func ComputeLegacy(amounts map[payout.ClauseName]payout.ManWon, years []payout.YearEvents, minorCancer bool) (payout.ManWon, []payout.LineItem) {
	var total payout.ManWon
	var detail []payout.LineItem

	yearCounts := make(map[int]int)
	nonPayDrugCount := 0
	rtPaid, drugPaid, carbonPaid := false, false, false

	pay := func(year int, name payout.ClauseName, amount payout.ManWon) {
		total += amount
		detail = append(detail, payout.LineItem{
			Year:    year,
			Insurer: payout.InsurerKB,
			Clause:  name,
			Amount:  amount,
		})
	}

	majorTriggers := []payout.EventTag{
		payout.EventSurgery, payout.EventRadiation, payout.EventChemoDrug,
		payout.EventHormone, payout.EventICU,
	}

	for _, ye := range years {
		evs := ye.Events
		year := ye.Year

		// Major treatment, halved when the year includes an ICU stay.
		if !minorCancer && amounts[ClauseMajor] > 0 && containsAny(evs, majorTriggers...) &&
			yearCounts[year] < legacyYearCap {
			amt := amounts[ClauseMajor]
			if containsAny(evs, payout.EventICU) {
				amt /= 2
			}
			pay(year, ClauseMajor, amt)
			yearCounts[year]++
		}
		if minorCancer && amounts[ClauseMinorMajor] > 0 && containsAny(evs, majorTriggers...) &&
			yearCounts[year] < legacyYearCap {
			amt := amounts[ClauseMinorMajor]
			if containsAny(evs, payout.EventICU) {
				amt /= 2
			}
			pay(year, ClauseMinorMajor, amt)
			yearCounts[year]++
		}

		// Non-covered treatment clauses.
		if amounts[ClauseNonPayMajor] > 0 && containsAny(evs,
			payout.EventTargetedNonPay, payout.EventImmuneNonPay,
			payout.EventRobotSurgery, payout.EventHeavyParticle) {
			pay(year, ClauseNonPayMajor, amounts[ClauseNonPayMajor])
		}
		if amounts[ClauseNonPayDrug] > 0 && containsAny(evs,
			payout.EventTargetedNonPay, payout.EventImmuneNonPay) &&
			nonPayDrugCount < 10 {
			nonPayDrugCount++
			pay(year, ClauseNonPayDrug, amounts[ClauseNonPayDrug])
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
