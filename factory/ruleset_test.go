package factory_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oncare/coverage-engine/factory"
	"github.com/oncare/coverage-engine/payout"
)

const sampleYAML = `
insurer: samsung
clauses:
  - name: 암직접치료보장
    max_lifetime_uses: 10
    year_exclusive: true
    scope: major
  - name: 항암방사선 최초1회
    max_lifetime_uses: 1
rules:
  - event: 수술
    triggers:
      - clause: 암직접치료보장
  - event: 방사선
    triggers:
      - clause: 암직접치료보장
      - clause: 항암방사선 최초1회
        rate: 0.5
`

// =============================================================================
// PARSING
// =============================================================================

func TestParseYAML_BuildsCatalogAndRules(t *testing.T) {
	rs, err := factory.ParseYAML([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, payout.InsurerSamsung, rs.Catalog.Insurer())
	require.Len(t, rs.Catalog.Clauses(), 2)

	direct, ok := rs.Catalog.Lookup("암직접치료보장")
	require.True(t, ok)
	assert.Equal(t, 10, direct.MaxLifetimeUses)
	assert.True(t, direct.YearExclusive)
	assert.Equal(t, payout.ScopeMajor, direct.Scope)

	first, ok := rs.Catalog.Lookup("항암방사선 최초1회")
	require.True(t, ok)
	assert.Equal(t, 1, first.MaxLifetimeUses)
	assert.Equal(t, payout.ScopeAny, first.Scope, "scope defaults to any")

	triggers := rs.Rules.Triggers(payout.EventRadiation)
	require.Len(t, triggers, 2)
	assert.Equal(t, 1, triggers[0].Multiplier, "multiplier defaults to 1")
	assert.True(t, triggers[1].Rate.Equal(decimal.NewFromFloat(0.5)), "explicit rate preserved")
}

func TestParseJSON_Roundtrip(t *testing.T) {
	data := []byte(`{
		"insurer": "kb",
		"clauses": [{"name": "비급여 암 주요치료비II", "year_exclusive": true}],
		"rules": [{"event": "로봇수술", "triggers": [{"clause": "비급여 암 주요치료비II"}]}]
	}`)

	rs, err := factory.ParseJSON(data)
	require.NoError(t, err)
	assert.Equal(t, payout.InsurerKB, rs.Catalog.Insurer())
	assert.Len(t, rs.Rules.Triggers(payout.EventRobotSurgery), 1)
}

func TestLoadFile_DispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	rs, err := factory.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, payout.InsurerSamsung, rs.Catalog.Insurer())
}

// =============================================================================
// VALIDATION
// =============================================================================

func TestFromDef_Validation(t *testing.T) {
	tests := []struct {
		name string
		def  factory.RuleSetDef
	}{
		{
			name: "missing insurer",
			def:  factory.RuleSetDef{},
		},
		{
			name: "duplicate clause",
			def: factory.RuleSetDef{
				Insurer: "samsung",
				Clauses: []factory.ClauseDef{{Name: "a"}, {Name: "a"}},
			},
		},
		{
			name: "bad scope",
			def: factory.RuleSetDef{
				Insurer: "samsung",
				Clauses: []factory.ClauseDef{{Name: "a", Scope: "both"}},
			},
		},
		{
			name: "unknown event tag",
			def: factory.RuleSetDef{
				Insurer: "samsung",
				Rules:   []factory.RuleDef{{Event: "침술"}},
			},
		},
		{
			name: "rate above one",
			def: factory.RuleSetDef{
				Insurer: "samsung",
				Rules: []factory.RuleDef{{
					Event:    "수술",
					Triggers: []factory.TriggerDef{{Clause: "a", Rate: 1.5}},
				}},
			},
		},
		{
			name: "negative multiplier",
			def: factory.RuleSetDef{
				Insurer: "samsung",
				Rules: []factory.RuleDef{{
					Event:    "수술",
					Triggers: []factory.TriggerDef{{Clause: "a", Multiplier: -2}},
				}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := factory.FromDef(tt.def)
			assert.Error(t, err)
		})
	}
}

func TestFromDef_TriggerToUnknownClauseAllowed(t *testing.T) {
	// Matches the engine's defensive default: the trigger builds fine and
	// pays zero at computation time.

	rs, err := factory.FromDef(factory.RuleSetDef{
		Insurer: "samsung",
		Rules: []factory.RuleDef{{
			Event:    "수술",
			Triggers: []factory.TriggerDef{{Clause: "정의되지 않은 담보"}},
		}},
	})
	require.NoError(t, err)

	total, items := payout.Engine{}.ComputeYear(1,
		[]payout.EventTag{payout.EventSurgery},
		rs.Catalog, rs.Rules, false, payout.NewUsageTracker())
	assert.Equal(t, payout.ManWon(0), total)
	assert.Empty(t, items)
}

// =============================================================================
// DEFAULTS
// =============================================================================

func TestDefaults_CoversBothInsurers(t *testing.T) {
	defaults := factory.Defaults()
	require.Len(t, defaults, 2)

	samsung := defaults[payout.InsurerSamsung]
	assert.Equal(t, payout.InsurerSamsung, samsung.Catalog.Insurer())
	assert.NotEmpty(t, samsung.Rules.Events())

	kbSet := defaults[payout.InsurerKB]
	assert.Equal(t, payout.InsurerKB, kbSet.Catalog.Insurer())
	assert.NotEmpty(t, kbSet.Rules.Events())
}
