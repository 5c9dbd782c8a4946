package checklist

import (
	"fmt"

	"buffettbrain/pkg/core/ratios"
	"buffettbrain/pkg/core/snapshot"
	"buffettbrain/pkg/core/validate"
	"buffettbrain/pkg/core/valuation"
)

// State is the tri-valued outcome of a rule. A rule whose input was
// missing, or whose formula was undefined, is indeterminate; it is never
// coerced to pass or fail.
type State string

const (
	StatePass          State = "pass"
	StateFail          State = "fail"
	StateIndeterminate State = "indeterminate"
)

// Grade is the display shading carried alongside the binary state:
// a failing rule can still be "caution" rather than "poor".
type Grade string

const (
	GradeGood    Grade = "good"
	GradeCaution Grade = "caution"
	GradePoor    Grade = "poor"
	GradeUnknown Grade = "unknown"
)

// RuleOutcome records the evaluation of one criterion.
type RuleOutcome struct {
	Key       string   `json:"key"`
	Name      string   `json:"name"`
	Criteria  string   `json:"criteria"`
	Value     *float64 `json:"value,omitempty"`
	Display   string   `json:"display"`
	Threshold float64  `json:"threshold"`
	State     State    `json:"state"`
	Grade     Grade    `json:"grade"`
	Passed    bool     `json:"passed"`
}

// Evaluate applies every criterion to the snapshot, its derived ratios
// and the valuation result. It always returns one outcome per criterion,
// in checklist order.
func Evaluate(criteria []Criterion, s *snapshot.FinancialSnapshot, rs *ratios.RatioSet, val valuation.DCFResult) []RuleOutcome {
	outcomes := make([]RuleOutcome, 0, len(criteria))
	for _, c := range criteria {
		outcomes = append(outcomes, evaluateOne(c, s, rs, val))
	}
	return outcomes
}

func evaluateOne(c Criterion, s *snapshot.FinancialSnapshot, rs *ratios.RatioSet, val valuation.DCFResult) RuleOutcome {
	switch c.Key {
	case KeyROE:
		if rs.ROE == nil {
			return indeterminate(c, c.GoodThreshold)
		}
		v := *rs.ROE
		display := fmt.Sprintf("%.2f%%", v*100)
		// Inclusive boundary: ROE exactly at the threshold passes.
		if v >= c.GoodThreshold {
			return pass(c, v, display, c.GoodThreshold, GradeGood)
		}
		if v > c.BadThreshold {
			return fail(c, v, display, c.GoodThreshold, GradeCaution)
		}
		return fail(c, v, display, c.GoodThreshold, GradePoor)

	case KeyDebtToEquity:
		if rs.DebtToEquity == nil {
			return indeterminate(c, c.ExcellentThreshold)
		}
		v := *rs.DebtToEquity
		display := fmt.Sprintf("%.2f", v)
		if v < c.ExcellentThreshold {
			return pass(c, v, display, c.ExcellentThreshold, GradeGood)
		}
		if v <= c.AvoidThreshold {
			return fail(c, v, display, c.ExcellentThreshold, GradeCaution)
		}
		return fail(c, v, display, c.ExcellentThreshold, GradePoor)

	case KeyCurrentRatio:
		if rs.CurrentRatio == nil {
			return indeterminate(c, c.GoodThreshold)
		}
		v := *rs.CurrentRatio
		display := fmt.Sprintf("%.2f", v)
		if v > c.GoodThreshold {
			return pass(c, v, display, c.GoodThreshold, GradeGood)
		}
		if v >= c.BadThreshold {
			return fail(c, v, display, c.GoodThreshold, GradeCaution)
		}
		return fail(c, v, display, c.GoodThreshold, GradePoor)

	case KeyBookValue:
		// Measured as price / book value per share; below 1.0 means the
		// stock trades under book.
		if rs.BookValuePerShare == nil || *rs.BookValuePerShare <= 0 || s.CurrentPrice == nil {
			return indeterminate(c, c.GoodThreshold)
		}
		v := *s.CurrentPrice / *rs.BookValuePerShare
		display := fmt.Sprintf("price %.2f vs book %.2f", *s.CurrentPrice, *rs.BookValuePerShare)
		if v < c.GoodThreshold {
			return pass(c, v, display, c.GoodThreshold, GradeGood)
		}
		return fail(c, v, display, c.GoodThreshold, GradePoor)

	case KeyPERatio:
		if rs.PERatio == nil || *rs.PERatio <= 0 {
			return indeterminate(c, c.FairMax)
		}
		v := *rs.PERatio
		display := fmt.Sprintf("%.2f", v)
		if v >= c.FairMin && v <= c.FairMax {
			return pass(c, v, display, c.FairMax, GradeGood)
		}
		if v <= c.OkayMax {
			return fail(c, v, display, c.FairMax, GradeCaution)
		}
		return fail(c, v, display, c.FairMax, GradePoor)

	case KeyPBRatio:
		if rs.PBRatio == nil || *rs.PBRatio <= 0 {
			return indeterminate(c, c.GoodThreshold)
		}
		v := *rs.PBRatio
		display := fmt.Sprintf("%.2f", v)
		if v < c.GoodThreshold {
			return pass(c, v, display, c.GoodThreshold, GradeGood)
		}
		if v < c.OkayMax {
			return fail(c, v, display, c.GoodThreshold, GradeCaution)
		}
		return fail(c, v, display, c.GoodThreshold, GradePoor)

	case KeyMarginOfSafety:
		if val.MarginOfSafety == nil {
			return indeterminate(c, c.DiscountThreshold)
		}
		v := *val.MarginOfSafety
		display := fmt.Sprintf("IV %.2f | MoS %.1f%%", deref(val.IntrinsicValue), v)
		if v >= c.DiscountThreshold {
			return pass(c, v, display, c.DiscountThreshold, GradeGood)
		}
		if v > 0 {
			return fail(c, v, display, c.DiscountThreshold, GradeCaution)
		}
		return fail(c, v, display, c.DiscountThreshold, GradePoor)

	case KeyOperatingMargin:
		return evaluateReturnMetric(c, rs.OperatingMargin)

	case KeyGrowthAlignment:
		if rs.RevenueGrowth == nil || rs.EarningsGrowth == nil {
			return indeterminate(c, 0)
		}
		rev, prof := *rs.RevenueGrowth, *rs.EarningsGrowth
		display := fmt.Sprintf("revenue %+.1f%% | profit %+.1f%%", rev*100, prof*100)
		if rev > 0 && prof > 0 {
			alignment := minF(rev, prof) / maxF(rev, prof)
			grade := GradeGood
			if alignment < 0.5 {
				// Growing, but one side far outpaces the other.
				grade = GradeCaution
			}
			return pass(c, alignment, display, 0, grade)
		}
		v := minF(rev, prof)
		return fail(c, v, display, 0, GradePoor)

	case KeyROCE:
		return evaluateReturnMetric(c, rs.ROCE)

	case KeyPEGRatio:
		if rs.PEGRatio == nil {
			return indeterminate(c, c.GoodThreshold)
		}
		v := *rs.PEGRatio
		display := fmt.Sprintf("%.2f", v)
		if v < c.GoodThreshold {
			return pass(c, v, display, c.GoodThreshold, GradeGood)
		}
		if v < c.OkayMax {
			return fail(c, v, display, c.GoodThreshold, GradeCaution)
		}
		return fail(c, v, display, c.GoodThreshold, GradePoor)

	case KeyEarningsGrowth:
		if rs.EarningsGrowth == nil {
			return indeterminate(c, c.GoodThreshold)
		}
		v := *rs.EarningsGrowth
		display := fmt.Sprintf("%.2f%%", v*100)
		if v > c.GoodThreshold {
			return pass(c, v, display, c.GoodThreshold, GradeGood)
		}
		if v > 0 {
			return fail(c, v, display, c.GoodThreshold, GradeCaution)
		}
		return fail(c, v, display, c.GoodThreshold, GradePoor)

	case KeyEarningsConsistency:
		history := s.NetIncomeHistory
		if len(history) < 2 {
			return indeterminate(c, 1.0)
		}
		positives := 0
		for _, v := range history {
			if v > 0 {
				positives++
			}
		}
		share := float64(positives) / float64(len(history))
		display := fmt.Sprintf("%d/%d profitable years", positives, len(history))
		if validate.AllPositive(history) {
			return pass(c, share, display, 1.0, GradeGood)
		}
		return fail(c, share, display, 1.0, GradePoor)

	case KeyFreeCashFlow:
		if rs.FreeCashFlow == nil {
			return indeterminate(c, 0)
		}
		v := *rs.FreeCashFlow
		if v > 0 {
			return pass(c, v, "positive", 0, GradeGood)
		}
		return fail(c, v, "negative", 0, GradePoor)

	case KeyDividendHistory:
		if rs.DividendYield == nil {
			return indeterminate(c, 0)
		}
		v := *rs.DividendYield
		if v > 0 {
			return pass(c, v, fmt.Sprintf("yield %.2f%%", v*100), 0, GradeGood)
		}
		// Absence of a dividend is a miss, not a red flag.
		return fail(c, v, "no dividend", 0, GradeCaution)
	}

	return indeterminate(c, 0)
}

// evaluateReturnMetric handles the "> threshold, caution above 70% of
// it" pattern shared by operating margin and ROCE.
func evaluateReturnMetric(c Criterion, metric *float64) RuleOutcome {
	if metric == nil {
		return indeterminate(c, c.GoodThreshold)
	}
	v := *metric
	display := fmt.Sprintf("%.2f%%", v*100)
	if v > c.GoodThreshold {
		return pass(c, v, display, c.GoodThreshold, GradeGood)
	}
	if v > c.GoodThreshold*0.7 {
		return fail(c, v, display, c.GoodThreshold, GradeCaution)
	}
	return fail(c, v, display, c.GoodThreshold, GradePoor)
}

func pass(c Criterion, v float64, display string, threshold float64, grade Grade) RuleOutcome {
	return RuleOutcome{
		Key: c.Key, Name: c.Name, Criteria: c.Criteria,
		Value: &v, Display: display, Threshold: threshold,
		State: StatePass, Grade: grade, Passed: true,
	}
}

func fail(c Criterion, v float64, display string, threshold float64, grade Grade) RuleOutcome {
	return RuleOutcome{
		Key: c.Key, Name: c.Name, Criteria: c.Criteria,
		Value: &v, Display: display, Threshold: threshold,
		State: StateFail, Grade: grade,
	}
}

func indeterminate(c Criterion, threshold float64) RuleOutcome {
	return RuleOutcome{
		Key: c.Key, Name: c.Name, Criteria: c.Criteria,
		Display: "N/A", Threshold: threshold,
		State: StateIndeterminate, Grade: GradeUnknown,
	}
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
