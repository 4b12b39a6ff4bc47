package proposal_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oncare/coverage-engine/factory"
	"github.com/oncare/coverage-engine/kb"
	"github.com/oncare/coverage-engine/payout"
	"github.com/oncare/coverage-engine/proposal"
	"github.com/oncare/coverage-engine/quote"
	"github.com/oncare/coverage-engine/samsung"
)

func renderSample(t *testing.T) string {
	t.Helper()

	req := quote.Request{
		Customer: "홍길동",
		Coverages: map[payout.Insurer]map[payout.ClauseName]payout.ManWon{
			payout.InsurerSamsung: {
				samsung.ClauseDirect: 1000,
				samsung.ClauseMajor:  0, // zero amounts stay off the coverage table
			},
			payout.InsurerKB: {
				kb.ClauseNonPayMajor: 500,
			},
		},
		Years: []payout.YearEvents{
			{Year: 1, Events: []payout.EventTag{payout.EventSurgery}},
			{Year: 3, Events: []payout.EventTag{payout.EventTargetedNonPay, payout.EventRobotSurgery}},
		},
	}

	ruleSets := factory.Defaults()
	res, err := quote.Compute(req, ruleSets)
	require.NoError(t, err)

	return proposal.Render(req, res, ruleSets)
}

func TestRender_SectionsInOrder(t *testing.T) {
	doc := renderSample(t)

	title := strings.Index(doc, "맞춤형 암 치료 보장 제안서")
	s1 := strings.Index(doc, "① 가입 담보 내역")
	s2 := strings.Index(doc, "② 연간 치료 내역")
	s3 := strings.Index(doc, "③ 연도별 지급 내역")
	grand := strings.Index(doc, "총 예상 보장금액")

	require.GreaterOrEqual(t, title, 0)
	assert.True(t, title < s1 && s1 < s2 && s2 < s3 && s3 < grand,
		"sections must appear in document order")
}

func TestRender_GreetsCustomerAndLabelsInsurers(t *testing.T) {
	doc := renderSample(t)

	assert.Contains(t, doc, "홍길동 고객님")
	assert.Contains(t, doc, "삼성생명")
	assert.Contains(t, doc, "KB손해보험")
}

func TestRender_OmitsZeroCoverageRows(t *testing.T) {
	doc := renderSample(t)

	// The major clause was subscribed at zero; it must not appear in the
	// coverage table (section ① runs until section ②).
	s1 := strings.Index(doc, "① 가입 담보 내역")
	s2 := strings.Index(doc, "② 연간 치료 내역")
	require.True(t, s1 >= 0 && s2 > s1)
	assert.NotContains(t, doc[s1:s2], string(samsung.ClauseMajor))
	assert.Contains(t, doc[s1:s2], string(samsung.ClauseDirect))
}

func TestRender_EchoesTreatmentsAndSubtotals(t *testing.T) {
	doc := renderSample(t)

	assert.Contains(t, doc, "1년차")
	assert.Contains(t, doc, "3년차")
	assert.Contains(t, doc, "표적(비급여) / 로봇수술")
	assert.Contains(t, doc, "1년 합계")
	assert.Contains(t, doc, "3년 합계")
	// Samsung direct 1000 in year 1; KB non-pay major 500 once in year 3.
	assert.Contains(t, doc, "총 예상 보장금액: 1,500 만원")
}

func TestLabel_FallsBackToIdentifier(t *testing.T) {
	assert.Equal(t, "삼성생명", proposal.Label(payout.InsurerSamsung))
	assert.Equal(t, "acme", proposal.Label(payout.Insurer("acme")))
}

func TestComma_ThousandsSeparators(t *testing.T) {
	// Exercised indirectly through Render's grand total above; this pins
	// the separator behavior for larger amounts.
	req := quote.Request{
		Coverages: map[payout.Insurer]map[payout.ClauseName]payout.ManWon{
			payout.InsurerSamsung: {samsung.ClauseDirect: 1234567},
		},
		Years: []payout.YearEvents{
			{Year: 1, Events: []payout.EventTag{payout.EventSurgery}},
		},
	}
	ruleSets := factory.Defaults()
	res, err := quote.Compute(req, ruleSets)
	require.NoError(t, err)

	doc := proposal.Render(req, res, ruleSets)
	assert.Contains(t, doc, "1,234,567")
}
