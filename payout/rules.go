/*
rules.go - Event-to-clause rule tables

PURPOSE:
  Maps each treatment event tag to the ordered list of clause triggers it
  fires. A trigger carries a multiplier (how many payments) and a rate
  (fraction of the subscribed amount per payment). This is the
  table-driven rule generation: the newer of the two rule revisions, which
  subsumes the older hand-coded fixed-bonus logic via equivalent
  (multiplier, rate) pairs.

EXAMPLES:
  Non-covered immune therapy firing the premium clause four times over:
      {Clause: 프리미엄암직접치료보장, Multiplier: 4, Rate: 1}

  ICU admission paying the KB major-treatment clause at half:
      {Clause: 암 주요치료비, Multiplier: 1, Rate: 0.5}

SEMANTICS:
  - A single event can trigger multiple clauses (ordered).
  - A single clause can be triggered by multiple distinct events in the
    same year; each triggering occurrence is evaluated independently,
    subject to the clause's caps.
  - An unrecognized tag has no triggers and is silently ignored.

SEE ALSO:
  - engine.go: Consumes triggers in rule order
  - samsung/rules.go, kb/rules.go: The built-in tables
  - factory/ruleset.go: Tables loaded from JSON/YAML definitions
*/
package payout

import "github.com/shopspring/decimal"

// =============================================================================
// TRIGGER - One (clause, multiplier, rate) rule entry
// =============================================================================

// Trigger is a single rule entry: when its event fires, the named clause
// pays Multiplier times at Rate of its subscribed amount, in one combined
// line item of round(subscribed * multiplier * rate).
type Trigger struct {
	Clause     ClauseName
	Multiplier int             // positive payment count
	Rate       decimal.Decimal // fraction of subscribed amount in (0, 1]
}

// Amount computes the payout for this trigger against a subscribed
// amount, rounded half-up to whole man-won.
func (t Trigger) Amount(subscribed ManWon) ManWon {
	if subscribed <= 0 {
		return 0
	}
	return roundHalfUp(subscribed.Decimal().
		Mul(decimal.NewFromInt(int64(t.Multiplier))).
		Mul(t.Rate))
}

// RateOne is the full-amount rate shared by most rule entries.
var RateOne = decimal.NewFromInt(1)

// =============================================================================
// RULE TABLE - EventTag to ordered trigger list
// =============================================================================

// RuleTable is the immutable event-to-clause mapping for one insurer.
// Loaded once at process start; no dynamic mutation.
type RuleTable struct {
	insurer Insurer
	rules   map[EventTag][]Trigger
}

// NewRuleTable builds a rule table. The trigger slices are used as given;
// callers must not mutate them afterwards.
func NewRuleTable(insurer Insurer, rules map[EventTag][]Trigger) *RuleTable {
	return &RuleTable{insurer: insurer, rules: rules}
}

func (rt *RuleTable) Insurer() Insurer { return rt.insurer }

// Triggers returns the ordered trigger list for tag, or nil when the tag
// is unrecognized for this insurer. Unrecognized tags are not an error.
func (rt *RuleTable) Triggers(tag EventTag) []Trigger {
	return rt.rules[tag]
}

// Events returns the tags this table reacts to, in vocabulary order.
func (rt *RuleTable) Events() []EventTag {
	var out []EventTag
	for _, tag := range EventVocabulary {
		if len(rt.rules[tag]) > 0 {
			out = append(out, tag)
		}
	}
	return out
}
