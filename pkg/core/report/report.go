// Package report formats an analysis Report for human consumption:
// a Markdown summary and its HTML rendering. The JSON Report stays the
// machine interface; this package exists for the report endpoint.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"buffettbrain/pkg/core/analysis"
	"buffettbrain/pkg/core/checklist"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// GFM tables are needed for the checklist section.
var renderer = goldmark.New(goldmark.WithExtensions(extension.Table))

// Markdown renders the report as a Markdown document: recommendation
// header, valuation summary, and the full rule table.
func Markdown(rep *analysis.Report) string {
	var b strings.Builder

	title := rep.Symbol
	if rep.Name != "" {
		title = fmt.Sprintf("%s (%s)", rep.Name, rep.Symbol)
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	rec := rep.Recommendation
	fmt.Fprintf(&b, "**Recommendation: %s** — %d passed, %d failed, %d indeterminate\n\n",
		rec.Tier, rec.Passed, rec.Failed, rec.Indeterminate)
	if rec.InsufficientData {
		b.WriteString("_Insufficient data: no rule could be determined._\n\n")
	}

	b.WriteString("## Valuation\n\n")
	val := rep.Valuation
	if val.Indeterminate {
		fmt.Fprintf(&b, "Intrinsic value indeterminate: %s.\n\n", val.Reason)
	} else {
		fmt.Fprintf(&b, "Intrinsic value per share: %.2f\n", *val.IntrinsicValue)
		if val.MarginOfSafety != nil {
			fmt.Fprintf(&b, "\nMargin of safety: %.1f%%\n", *val.MarginOfSafety)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Checklist\n\n")
	b.WriteString("| Rule | Value | Criteria | Result |\n")
	b.WriteString("|------|-------|----------|--------|\n")
	for _, o := range rep.Outcomes {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", o.Name, o.Display, o.Criteria, resultCell(o))
	}
	b.WriteString("\n")

	if adv := rep.Advanced; adv != nil {
		b.WriteString("## Supplemental\n\n")
		if adv.Piotroski != nil {
			fmt.Fprintf(&b, "- Piotroski F-Score: %d/9\n", adv.Piotroski.Score)
		}
		if adv.AltmanZ != nil {
			fmt.Fprintf(&b, "- Altman Z-Score: %.2f (%s)\n", adv.AltmanZ.Score, adv.AltmanZ.Zone)
		}
		if adv.ROIC != nil {
			fmt.Fprintf(&b, "- ROIC: %.2f%%\n", *adv.ROIC*100)
		}
		if adv.ImpliedGrowth != nil {
			fmt.Fprintf(&b, "- Market-implied FCF growth: %.1f%%\n", *adv.ImpliedGrowth*100)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// HTML renders the Markdown report to HTML with goldmark.
func HTML(rep *analysis.Report) (string, error) {
	var buf bytes.Buffer
	if err := renderer.Convert([]byte(Markdown(rep)), &buf); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return buf.String(), nil
}

func resultCell(o checklist.RuleOutcome) string {
	switch o.State {
	case checklist.StatePass:
		return "PASS"
	case checklist.StateFail:
		if o.Grade == checklist.GradeCaution {
			return "FAIL (caution)"
		}
		return "FAIL"
	default:
		return "INDETERMINATE"
	}
}
