// Package analysis orchestrates one full checklist evaluation: snapshot
// in, Report out. Every call is a pure computation over its input with
// no shared state, so an Engine is safe for concurrent use.
package analysis

import (
	"fmt"
	"time"

	"buffettbrain/pkg/core/checklist"
	"buffettbrain/pkg/core/fundamentals"
	"buffettbrain/pkg/core/ratios"
	"buffettbrain/pkg/core/snapshot"
	"buffettbrain/pkg/core/validate"
	"buffettbrain/pkg/core/valuation"
	"buffettbrain/pkg/core/verdict"

	"github.com/google/uuid"
)

// Engine evaluates snapshots against a fixed criteria table and policy.
type Engine struct {
	criteria []checklist.Criterion
	policy   verdict.Policy
}

// NewEngine creates an engine with explicit criteria and policy.
func NewEngine(criteria []checklist.Criterion, policy verdict.Policy) *Engine {
	return &Engine{criteria: criteria, policy: policy}
}

// NewDefaultEngine creates an engine with the built-in criteria and the
// default recommendation policy.
func NewDefaultEngine() *Engine {
	return NewEngine(checklist.DefaultCriteria(), verdict.DefaultPolicy())
}

// Analyze runs the full pipeline: derive ratios, value the company,
// evaluate the checklist, aggregate the verdict, and attach the
// supplemental models where the snapshot carries enough history.
func (e *Engine) Analyze(s *snapshot.FinancialSnapshot) (*Report, error) {
	if s == nil {
		return nil, fmt.Errorf("snapshot is nil")
	}

	// Work on a copy; the caller's snapshot stays untouched.
	work := *s
	if work.EarningsGrowth == nil {
		work.EarningsGrowth = validate.GrowthFromHistory(work.NetIncomeHistory)
	}

	rs := ratios.Compute(&work)
	dcfInput := valuation.InputFromSnapshot(&work)
	val := valuation.CalculateIntrinsicValue(dcfInput)
	outcomes := checklist.Evaluate(e.criteria, &work, rs, val)
	rec := verdict.Aggregate(outcomes, e.policy)

	report := &Report{
		ID:             uuid.NewString(),
		Symbol:         work.Symbol,
		Name:           work.Name,
		GeneratedAt:    time.Now().UTC(),
		Ratios:         rs,
		Valuation:      val,
		Outcomes:       outcomes,
		Recommendation: rec,
	}
	report.Advanced = e.advancedMetrics(&work, dcfInput)

	return report, nil
}

func (e *Engine) advancedMetrics(s *snapshot.FinancialSnapshot, dcfInput valuation.DCFInput) *AdvancedMetrics {
	adv := &AdvancedMetrics{
		ImpliedGrowth: valuation.CalculateImpliedGrowth(dcfInput),
	}

	if s.NetIncome != nil && s.ShareholderEquity != nil && s.TotalDebt != nil {
		roic := fundamentals.ROIC(*s.NetIncome, *s.ShareholderEquity, *s.TotalDebt)
		adv.ROIC = &roic
	}

	if n := len(s.History); n >= 2 {
		current, prior := s.History[n-1], s.History[n-2]
		fscore := fundamentals.PiotroskiFScore(current, prior)
		adv.Piotroski = &fscore
		adv.AltmanZ = fundamentals.AltmanFromPeriod(current, s.MarketCap())
	}

	if adv.Piotroski == nil && adv.AltmanZ == nil && adv.ROIC == nil && adv.ImpliedGrowth == nil {
		return nil
	}
	return adv
}
