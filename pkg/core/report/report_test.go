package report

import (
	"strings"
	"testing"

	"buffettbrain/pkg/core/analysis"
	"buffettbrain/pkg/core/snapshot"
)

func sampleReport(t *testing.T) *analysis.Report {
	t.Helper()
	rep, err := analysis.NewDefaultEngine().Analyze(&snapshot.FinancialSnapshot{
		Symbol:             "TEST",
		Name:               "Test Industries",
		NetIncome:          snapshot.Float(150),
		ShareholderEquity:  snapshot.Float(1000),
		TotalDebt:          snapshot.Float(300),
		Revenue:            snapshot.Float(2000),
		OperatingIncome:    snapshot.Float(400),
		FreeCashFlow:       snapshot.Float(180),
		CurrentAssets:      snapshot.Float(800),
		CurrentLiabilities: snapshot.Float(400),
		SharesOutstanding:  snapshot.Float(100),
		CurrentPrice:       snapshot.Float(12),
		EPS:                snapshot.Float(1.5),
	})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	return rep
}

func TestMarkdownContainsAllRules(t *testing.T) {
	md := Markdown(sampleReport(t))

	if !strings.Contains(md, "# Test Industries (TEST)") {
		t.Error("Expected title with name and symbol")
	}
	if !strings.Contains(md, "**Recommendation:") {
		t.Error("Expected a recommendation line")
	}
	for _, name := range []string{"Return on Equity", "Debt-to-Equity", "PEG Ratio", "Dividend History"} {
		if !strings.Contains(md, name) {
			t.Errorf("Expected rule %q in the table", name)
		}
	}
}

func TestMarkdownIndeterminateValuation(t *testing.T) {
	rep, err := analysis.NewDefaultEngine().Analyze(&snapshot.FinancialSnapshot{Symbol: "GHOST"})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	md := Markdown(rep)

	if !strings.Contains(md, "Intrinsic value indeterminate") {
		t.Error("Expected the indeterminate valuation notice")
	}
	if !strings.Contains(md, "Insufficient data") {
		t.Error("Expected the insufficient data notice")
	}
}

func TestHTMLRendersTable(t *testing.T) {
	html, err := HTML(sampleReport(t))
	if err != nil {
		t.Fatalf("HTML failed: %v", err)
	}
	if !strings.Contains(html, "<h1>") {
		t.Error("Expected an h1 heading")
	}
	if !strings.Contains(html, "<table>") {
		t.Error("Expected the checklist rendered as a table")
	}
}
