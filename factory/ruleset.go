/*
Package factory provides JSON/YAML to Go rule-set conversion.

PURPOSE:
  Converts external rule-set definitions into payout.Catalog and
  payout.RuleTable values. This enables rule configuration without code
  changes - product maintainers can adjust clause caps and event triggers
  in a YAML file, and the factory builds the proper Go structures.

WHY EXTERNAL DEFINITIONS?
  - Non-developers can adjust rule tables between revisions
  - Version control for rule definitions
  - The two shipped rule generations differ; files make A/B runs cheap

YAML SCHEMA:
  insurer: samsung
  clauses:
    - name: 암직접치료보장
      max_lifetime_uses: 10
      year_exclusive: true
      scope: major
  rules:
    - event: 수술
      triggers:
        - clause: 암직접치료보장
          multiplier: 1
          rate: 1.0

VALIDATION:
  Event tags outside the vocabulary, non-positive multipliers, rates
  outside (0, 1], and bad scopes are rejected. Triggers naming clauses
  absent from the catalog are ALLOWED - they pay zero at computation
  time, matching the engine's defensive default.

SEE ALSO:
  - payout/rules.go: The types built here
  - samsung/, kb/: The built-in (code-defined) rule sets
  - cmd/server: Loads override files via the -rules flag
*/
package factory

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/oncare/coverage-engine/kb"
	"github.com/oncare/coverage-engine/payout"
	"github.com/oncare/coverage-engine/samsung"
)

// =============================================================================
// DEFINITION SCHEMA TYPES
// =============================================================================

// RuleSetDef is the external representation of one insurer's catalog and
// rule table.
type RuleSetDef struct {
	Insurer string      `json:"insurer" yaml:"insurer"`
	Clauses []ClauseDef `json:"clauses" yaml:"clauses"`
	Rules   []RuleDef   `json:"rules" yaml:"rules"`
}

// ClauseDef defines one catalog clause.
type ClauseDef struct {
	Name            string `json:"name" yaml:"name"`
	MaxLifetimeUses int    `json:"max_lifetime_uses,omitempty" yaml:"max_lifetime_uses,omitempty"`
	YearExclusive   bool   `json:"year_exclusive,omitempty" yaml:"year_exclusive,omitempty"`
	Scope           string `json:"scope,omitempty" yaml:"scope,omitempty"` // any (default), major, minor
}

// RuleDef defines the ordered trigger list for one event tag.
type RuleDef struct {
	Event    string       `json:"event" yaml:"event"`
	Triggers []TriggerDef `json:"triggers" yaml:"triggers"`
}

// TriggerDef defines one (clause, multiplier, rate) entry. Rate defaults
// to 1 when omitted.
type TriggerDef struct {
	Clause     string  `json:"clause" yaml:"clause"`
	Multiplier int     `json:"multiplier,omitempty" yaml:"multiplier,omitempty"`
	Rate       float64 `json:"rate,omitempty" yaml:"rate,omitempty"`
}

// =============================================================================
// RULE SET - A catalog paired with its rule table
// =============================================================================

// RuleSet packages a Catalog with its RuleTable. This is the unit the API
// and CLI operate on, one per insurer.
type RuleSet struct {
	Catalog *payout.Catalog
	Rules   *payout.RuleTable
}

// Defaults returns the built-in rule sets for both product lines.
func Defaults() map[payout.Insurer]RuleSet {
	return map[payout.Insurer]RuleSet{
		payout.InsurerSamsung: {Catalog: samsung.Catalog(), Rules: samsung.Rules()},
		payout.InsurerKB:      {Catalog: kb.Catalog(), Rules: kb.Rules()},
	}
}

// =============================================================================
// PARSING
// =============================================================================

// ParseJSON parses a JSON rule-set definition.
func ParseJSON(data []byte) (RuleSet, error) {
	var def RuleSetDef
	if err := json.Unmarshal(data, &def); err != nil {
		return RuleSet{}, fmt.Errorf("failed to parse rule-set JSON: %w", err)
	}
	return FromDef(def)
}

// ParseYAML parses a YAML rule-set definition.
func ParseYAML(data []byte) (RuleSet, error) {
	var def RuleSetDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return RuleSet{}, fmt.Errorf("failed to parse rule-set YAML: %w", err)
	}
	return FromDef(def)
}

// LoadFile reads a rule-set definition, dispatching on file extension
// (.json vs .yaml/.yml).
func LoadFile(path string) (RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RuleSet{}, err
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ParseJSON(data)
	}
	return ParseYAML(data)
}

// FromDef converts a definition into a RuleSet.
func FromDef(def RuleSetDef) (RuleSet, error) {
	if def.Insurer == "" {
		return RuleSet{}, fmt.Errorf("rule set: insurer is required")
	}
	insurer := payout.Insurer(def.Insurer)

	clauses := make([]payout.Clause, 0, len(def.Clauses))
	seen := make(map[string]bool)
	for _, cd := range def.Clauses {
		if cd.Name == "" {
			return RuleSet{}, fmt.Errorf("rule set %s: clause with empty name", insurer)
		}
		if seen[cd.Name] {
			return RuleSet{}, fmt.Errorf("rule set %s: duplicate clause %q", insurer, cd.Name)
		}
		seen[cd.Name] = true

		scope, err := parseScope(cd.Scope)
		if err != nil {
			return RuleSet{}, fmt.Errorf("rule set %s: clause %q: %w", insurer, cd.Name, err)
		}
		clauses = append(clauses, payout.Clause{
			Name:            payout.ClauseName(cd.Name),
			MaxLifetimeUses: cd.MaxLifetimeUses,
			YearExclusive:   cd.YearExclusive,
			Scope:           scope,
		})
	}

	rules := make(map[payout.EventTag][]payout.Trigger, len(def.Rules))
	for _, rd := range def.Rules {
		tag := payout.EventTag(rd.Event)
		if !payout.KnownEvent(tag) {
			return RuleSet{}, fmt.Errorf("rule set %s: unknown event tag %q", insurer, rd.Event)
		}
		if _, dup := rules[tag]; dup {
			return RuleSet{}, fmt.Errorf("rule set %s: duplicate rule for event %q", insurer, rd.Event)
		}

		triggers := make([]payout.Trigger, 0, len(rd.Triggers))
		for _, td := range rd.Triggers {
			trig, err := parseTrigger(td)
			if err != nil {
				return RuleSet{}, fmt.Errorf("rule set %s: event %q: %w", insurer, rd.Event, err)
			}
			triggers = append(triggers, trig)
		}
		rules[tag] = triggers
	}

	return RuleSet{
		Catalog: payout.NewCatalog(insurer, clauses),
		Rules:   payout.NewRuleTable(insurer, rules),
	}, nil
}

func parseScope(s string) (payout.CancerScope, error) {
	switch s {
	case "", "any":
		return payout.ScopeAny, nil
	case "major":
		return payout.ScopeMajor, nil
	case "minor":
		return payout.ScopeMinor, nil
	default:
		return "", fmt.Errorf("invalid scope %q (want any, major, or minor)", s)
	}
}

func parseTrigger(td TriggerDef) (payout.Trigger, error) {
	if td.Clause == "" {
		return payout.Trigger{}, fmt.Errorf("trigger with empty clause name")
	}

	multiplier := td.Multiplier
	if multiplier == 0 {
		multiplier = 1
	}
	if multiplier < 0 {
		return payout.Trigger{}, fmt.Errorf("clause %q: multiplier must be positive", td.Clause)
	}

	rate := payout.RateOne
	if td.Rate != 0 {
		rate = decimal.NewFromFloat(td.Rate)
		if rate.IsNegative() || rate.IsZero() || rate.GreaterThan(payout.RateOne) {
			return payout.Trigger{}, fmt.Errorf("clause %q: rate must be in (0, 1]", td.Clause)
		}
	}

	return payout.Trigger{
		Clause:     payout.ClauseName(td.Clause),
		Multiplier: multiplier,
		Rate:       rate,
	}, nil
}
