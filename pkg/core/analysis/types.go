package analysis

import (
	"time"

	"buffettbrain/pkg/core/checklist"
	"buffettbrain/pkg/core/fundamentals"
	"buffettbrain/pkg/core/ratios"
	"buffettbrain/pkg/core/valuation"
	"buffettbrain/pkg/core/verdict"
)

// Report is the complete verdict for one snapshot: every rule outcome,
// the derived ratios, the valuation, and the aggregate recommendation.
// It is created fresh per analysis and never mutated.
type Report struct {
	ID          string    `json:"id"`
	Symbol      string    `json:"symbol"`
	Name        string    `json:"name,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`

	Ratios         *ratios.RatioSet        `json:"ratios"`
	Valuation      valuation.DCFResult     `json:"valuation"`
	Outcomes       []checklist.RuleOutcome `json:"outcomes"`
	Recommendation verdict.Recommendation  `json:"recommendation"`

	// Supplemental metrics, present only when the snapshot carried the
	// figures they need.
	Advanced *AdvancedMetrics `json:"advanced,omitempty"`
}

// AdvancedMetrics holds the optional health models.
type AdvancedMetrics struct {
	Piotroski     *fundamentals.FScoreResult `json:"piotroski,omitempty"`
	AltmanZ       *fundamentals.ZScoreResult `json:"altman_z,omitempty"`
	ROIC          *float64                   `json:"roic,omitempty"`
	ImpliedGrowth *float64                   `json:"implied_growth,omitempty"`
}
