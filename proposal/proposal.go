/*
Package proposal renders a computed quote as a customer proposal document
in plain text.

PURPOSE:
  The original tool produced a PDF with three sections and a grand-total
  box; this package renders the same layout as tab-aligned text, consuming
  only the aggregated report. Section order:
    ① subscribed coverages (zero amounts omitted)
    ② per-year treatment selections (input echo)
    ③ per-year payout lines with year subtotals
    grand total

  PDF/document generation is deliberately a rendering concern left to
  consumers of this output; the text form is what the CLI prints and the
  API serves as text/plain.
*/
package proposal

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/oncare/coverage-engine/factory"
	"github.com/oncare/coverage-engine/payout"
	"github.com/oncare/coverage-engine/quote"
)

// insurerLabels maps product lines to their display names.
var insurerLabels = map[payout.Insurer]string{
	payout.InsurerSamsung: "삼성생명",
	payout.InsurerKB:      "KB손해보험",
}

// Label returns the display name for an insurer, falling back to the
// identifier for custom rule sets.
func Label(insurer payout.Insurer) string {
	if l, ok := insurerLabels[insurer]; ok {
		return l
	}
	return string(insurer)
}

// Render produces the proposal document. The rule sets supply catalog
// ordering for section ①; the report supplies everything else.
func Render(req quote.Request, res *quote.Result, ruleSets map[payout.Insurer]factory.RuleSet) string {
	var b strings.Builder

	fmt.Fprintln(&b, "맞춤형 암 치료 보장 제안서")
	fmt.Fprintln(&b, strings.Repeat("=", 40))
	fmt.Fprintln(&b)
	if req.Customer != "" {
		fmt.Fprintf(&b, "%s 고객님,\n\n", req.Customer)
	}
	fmt.Fprintln(&b, "고객님의 치료 과정을 가정하여 예상되는 보장 내역을 정리했습니다.")
	fmt.Fprintln(&b, "본 제안서는 이해를 돕기 위한 시뮬레이션 자료이며, 실제 보장 여부와")
	fmt.Fprintln(&b, "금액은 개별 약관 및 심사 결과에 따라 달라질 수 있습니다.")
	fmt.Fprintln(&b)

	renderCoverages(&b, req, ruleSets)
	renderTreatments(&b, res.Report)
	renderPayouts(&b, res.Report)

	fmt.Fprintln(&b, strings.Repeat("-", 40))
	fmt.Fprintf(&b, "총 예상 보장금액: %s 만원\n", comma(res.Report.CombinedTotal))

	return b.String()
}

// renderCoverages prints section ①: subscribed clauses with a positive
// amount, in catalog order per insurer.
func renderCoverages(b *strings.Builder, req quote.Request, ruleSets map[payout.Insurer]factory.RuleSet) {
	fmt.Fprintln(b, "① 가입 담보 내역 (단위: 만원)")

	w := tabwriter.NewWriter(b, 0, 4, 2, ' ', 0)
	rows := 0
	for _, insurer := range orderedInsurers(ruleSets) {
		rs := ruleSets[insurer]
		amounts := req.Coverages[insurer]
		for _, clause := range rs.Catalog.Clauses() {
			amt := amounts[clause.Name]
			if amt <= 0 {
				continue
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\n", Label(insurer), clause.Name, comma(amt))
			rows++
		}
	}
	if rows == 0 {
		fmt.Fprintf(w, "  -\t표시할 담보가 없습니다\t0\n")
	}
	w.Flush()
	fmt.Fprintln(b)
}

// renderTreatments prints section ②: the per-year event selections.
func renderTreatments(b *strings.Builder, report *payout.Report) {
	fmt.Fprintln(b, "② 연간 치료 내역")

	w := tabwriter.NewWriter(b, 0, 4, 2, ' ', 0)
	for _, ye := range report.EventsByYear {
		line := "-"
		if len(ye.Events) > 0 {
			parts := make([]string, len(ye.Events))
			for i, ev := range ye.Events {
				parts[i] = string(ev)
			}
			line = strings.Join(parts, " / ")
		}
		fmt.Fprintf(w, "  %d년차\t%s\n", ye.Year, line)
	}
	w.Flush()
	fmt.Fprintln(b)
}

// renderPayouts prints section ③: line items grouped by year then
// insurer, each year closed by a subtotal row.
func renderPayouts(b *strings.Builder, report *payout.Report) {
	fmt.Fprintln(b, "③ 연도별 지급 내역 (단위: 만원)")

	w := tabwriter.NewWriter(b, 0, 4, 2, ' ', 0)
	for _, group := range report.Years {
		for _, section := range group.Sections {
			for _, item := range section.Items {
				fmt.Fprintf(w, "  %d년차\t%s %s\t%s\n",
					item.Year, Label(section.Insurer), item.Clause, comma(item.Amount))
			}
		}
		fmt.Fprintf(w, "  %d년 합계\t\t%s\n", group.Year, comma(group.Subtotal))
	}
	w.Flush()
	fmt.Fprintln(b)

	for _, r := range report.Insurers {
		fmt.Fprintf(b, "%s 합계: %s 만원\n", Label(r.Insurer), comma(r.GrandTotal))
	}
}

// orderedInsurers returns the built-in lines first, then any custom rule
// sets sorted by identifier.
func orderedInsurers(ruleSets map[payout.Insurer]factory.RuleSet) []payout.Insurer {
	var out []payout.Insurer
	for _, ins := range []payout.Insurer{payout.InsurerSamsung, payout.InsurerKB} {
		if _, ok := ruleSets[ins]; ok {
			out = append(out, ins)
		}
	}
	var rest []string
	for ins := range ruleSets {
		if ins != payout.InsurerSamsung && ins != payout.InsurerKB {
			rest = append(rest, string(ins))
		}
	}
	sort.Strings(rest)
	for _, ins := range rest {
		out = append(out, payout.Insurer(ins))
	}
	return out
}

// comma formats man-won with thousands separators.
func comma(m payout.ManWon) string {
	s := fmt.Sprintf("%d", m)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		s = "-" + s
	}
	return s
}
