// Package verdict turns rule outcomes into a recommendation tier.
package verdict

import "buffettbrain/pkg/core/checklist"

// Tier is the qualitative recommendation. Ordering: Avoid < Hold < Buy.
type Tier string

const (
	TierBuy   Tier = "Buy"
	TierHold  Tier = "Hold"
	TierAvoid Tier = "Avoid"
)

// Policy maps the passed-rule count to a tier. It is configuration
// data, not a model: passed >= BuyMin is a Buy, passed >= HoldMin is a
// Hold, anything below is an Avoid.
type Policy struct {
	BuyMin  int `json:"buy_min" yaml:"buy_min"`
	HoldMin int `json:"hold_min" yaml:"hold_min"`
}

// DefaultPolicy returns the documented boundaries: 12+ passes Buy,
// 8-11 Hold, below 8 Avoid.
func DefaultPolicy() Policy {
	return Policy{BuyMin: 12, HoldMin: 8}
}

// Recommendation is the aggregate verdict over the checklist.
// Indeterminate rules count toward neither passed nor failed; they are
// surfaced so the caller can render them distinctly.
type Recommendation struct {
	Tier             Tier `json:"tier"`
	Passed           int  `json:"passed"`
	Failed           int  `json:"failed"`
	Indeterminate    int  `json:"indeterminate"`
	InsufficientData bool `json:"insufficient_data"`
}

// Aggregate counts definite passes and maps them through the policy.
// The tier is a pure function of the passed count, so adding passes can
// never lower the recommendation. When no rule was determinate the
// verdict is Avoid with InsufficientData set; missing data never
// upgrades a stock.
func Aggregate(outcomes []checklist.RuleOutcome, policy Policy) Recommendation {
	rec := Recommendation{}
	for _, o := range outcomes {
		switch o.State {
		case checklist.StatePass:
			rec.Passed++
		case checklist.StateFail:
			rec.Failed++
		default:
			rec.Indeterminate++
		}
	}

	rec.Tier = policy.TierFor(rec.Passed)
	if rec.Passed == 0 && rec.Failed == 0 {
		rec.InsufficientData = true
		rec.Tier = TierAvoid
	}
	return rec
}

// TierFor maps a passed-rule count to its tier.
func (p Policy) TierFor(passed int) Tier {
	switch {
	case passed >= p.BuyMin:
		return TierBuy
	case passed >= p.HoldMin:
		return TierHold
	default:
		return TierAvoid
	}
}

// Rank returns the tier's position in the Avoid < Hold < Buy ordering.
func Rank(t Tier) int {
	switch t {
	case TierBuy:
		return 2
	case TierHold:
		return 1
	default:
		return 0
	}
}
