package analysis

import (
	"testing"

	"buffettbrain/pkg/core/checklist"
	"buffettbrain/pkg/core/snapshot"
	"buffettbrain/pkg/core/verdict"
)

func testSnapshot() *snapshot.FinancialSnapshot {
	return &snapshot.FinancialSnapshot{
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
		DividendYield:      snapshot.Float(0.02),
		RevenueGrowth:      snapshot.Float(0.10),
		EarningsGrowth:     snapshot.Float(0.12),
		NetIncomeHistory:   []float64{100, 120, 135, 150},
	}
}

func TestAnalyzeFullSnapshot(t *testing.T) {
	rep, err := NewDefaultEngine().Analyze(testSnapshot())
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if rep.ID == "" {
		t.Error("Expected a report ID")
	}
	if rep.Symbol != "TEST" {
		t.Errorf("Expected symbol TEST, got %s", rep.Symbol)
	}
	if len(rep.Outcomes) != checklist.RuleCount {
		t.Fatalf("Expected %d outcomes, got %d", checklist.RuleCount, len(rep.Outcomes))
	}
	if rep.Valuation.Indeterminate {
		t.Errorf("Expected determinate valuation, got: %s", rep.Valuation.Reason)
	}

	// This snapshot fails only the book value and P/E rules.
	rec := rep.Recommendation
	if rec.Passed != 13 || rec.Failed != 2 || rec.Indeterminate != 0 {
		t.Errorf("Expected 13/2/0, got %d/%d/%d", rec.Passed, rec.Failed, rec.Indeterminate)
	}
	if rec.Tier != verdict.TierBuy {
		t.Errorf("Expected Buy at 13 passes, got %s", rec.Tier)
	}
	if rec.InsufficientData {
		t.Error("Expected InsufficientData false for a full snapshot")
	}
}

func TestAnalyzeEmptySnapshot(t *testing.T) {
	rep, err := NewDefaultEngine().Analyze(&snapshot.FinancialSnapshot{Symbol: "GHOST"})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	rec := rep.Recommendation
	if rec.Tier != verdict.TierAvoid {
		t.Errorf("Expected Avoid with no data, got %s", rec.Tier)
	}
	if !rec.InsufficientData {
		t.Error("Expected InsufficientData with no data")
	}
	if rec.Indeterminate != checklist.RuleCount {
		t.Errorf("Expected all %d rules indeterminate, got %d", checklist.RuleCount, rec.Indeterminate)
	}
	if !rep.Valuation.Indeterminate {
		t.Error("Expected indeterminate valuation with no data")
	}
}

func TestAnalyzeNilSnapshot(t *testing.T) {
	if _, err := NewDefaultEngine().Analyze(nil); err == nil {
		t.Error("Expected error for nil snapshot")
	}
}

func TestAnalyzeDoesNotMutateInput(t *testing.T) {
	s := &snapshot.FinancialSnapshot{
		Symbol:           "TEST",
		NetIncomeHistory: []float64{100, 150},
	}
	if _, err := NewDefaultEngine().Analyze(s); err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if s.EarningsGrowth != nil {
		t.Error("Expected the caller's snapshot to stay untouched")
	}
}

func TestAnalyzeDerivesGrowthFromHistory(t *testing.T) {
	s := &snapshot.FinancialSnapshot{
		Symbol:           "TEST",
		NetIncomeHistory: []float64{100, 110, 121},
	}
	rep, err := NewDefaultEngine().Analyze(s)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if rep.Ratios.EarningsGrowth == nil {
		t.Fatal("Expected earnings growth derived from history")
	}
	// 10% a year compounding.
	if g := *rep.Ratios.EarningsGrowth; g < 0.09 || g > 0.11 {
		t.Errorf("Expected growth near 0.10, got %v", g)
	}
}

func TestAnalyzeAdvancedMetrics(t *testing.T) {
	s := testSnapshot()
	s.History = []snapshot.PeriodFigures{
		{
			FiscalYear:         2024,
			TotalAssets:        snapshot.Float(1000),
			TotalLiabilities:   snapshot.Float(600),
			NetIncome:          snapshot.Float(120),
			OperatingCashFlow:  snapshot.Float(140),
			LongTermDebt:       snapshot.Float(300),
			CurrentAssets:      snapshot.Float(700),
			CurrentLiabilities: snapshot.Float(380),
			GrossProfit:        snapshot.Float(800),
			Revenue:            snapshot.Float(1800),
			RetainedEarnings:   snapshot.Float(250),
			EBIT:               snapshot.Float(350),
			SharesOutstanding:  snapshot.Float(100),
		},
		{
			FiscalYear:         2025,
			TotalAssets:        snapshot.Float(1100),
			TotalLiabilities:   snapshot.Float(620),
			NetIncome:          snapshot.Float(150),
			OperatingCashFlow:  snapshot.Float(170),
			LongTermDebt:       snapshot.Float(280),
			CurrentAssets:      snapshot.Float(800),
			CurrentLiabilities: snapshot.Float(400),
			GrossProfit:        snapshot.Float(900),
			Revenue:            snapshot.Float(2000),
			RetainedEarnings:   snapshot.Float(320),
			EBIT:               snapshot.Float(400),
			SharesOutstanding:  snapshot.Float(100),
		},
	}

	rep, err := NewDefaultEngine().Analyze(s)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	adv := rep.Advanced
	if adv == nil {
		t.Fatal("Expected advanced metrics")
	}
	if adv.Piotroski == nil {
		t.Error("Expected a Piotroski score with two periods of history")
	}
	if adv.AltmanZ == nil {
		t.Error("Expected an Altman Z-Score with two periods of history")
	}
	if adv.ROIC == nil {
		t.Error("Expected ROIC with income, equity and debt")
	}
	if adv.ImpliedGrowth == nil {
		t.Error("Expected implied growth with price, FCF and shares")
	}
}
