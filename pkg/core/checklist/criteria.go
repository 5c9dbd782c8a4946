// Package checklist evaluates the fifteen Buffett criteria against a
// company's derived ratios and valuation. Thresholds are configuration
// data: the built-in defaults can be replaced wholesale from a YAML,
// JSON or Hjson file without touching the evaluation code.
package checklist

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"buffettbrain/pkg/core/utils"

	"gopkg.in/yaml.v2"
)

// RuleCount is the fixed size of the checklist. Every evaluation
// produces exactly this many outcomes.
const RuleCount = 15

// Rule keys, in checklist order.
const (
	KeyROE                 = "roe"
	KeyDebtToEquity        = "debt_to_equity"
	KeyCurrentRatio        = "current_ratio"
	KeyBookValue           = "book_value"
	KeyPERatio             = "pe_ratio"
	KeyPBRatio             = "pb_ratio"
	KeyMarginOfSafety      = "margin_of_safety"
	KeyOperatingMargin     = "operating_margin"
	KeyGrowthAlignment     = "growth_alignment"
	KeyROCE                = "roce"
	KeyPEGRatio            = "peg_ratio"
	KeyEarningsGrowth      = "earnings_growth"
	KeyEarningsConsistency = "earnings_consistency"
	KeyFreeCashFlow        = "free_cash_flow"
	KeyDividendHistory     = "dividend_history"
)

// Criterion describes one rule: its metric key, display name, the
// documented criteria text, and the thresholds it is checked against.
// Which threshold fields apply, and the comparison direction, are fixed
// per metric at design time; only the numbers are configurable.
type Criterion struct {
	Key      string `json:"key" yaml:"key"`
	Name     string `json:"name" yaml:"name"`
	Criteria string `json:"criteria" yaml:"criteria"`

	GoodThreshold      float64 `json:"good_threshold,omitempty" yaml:"good_threshold,omitempty"`
	BadThreshold       float64 `json:"bad_threshold,omitempty" yaml:"bad_threshold,omitempty"`
	ExcellentThreshold float64 `json:"excellent_threshold,omitempty" yaml:"excellent_threshold,omitempty"`
	AvoidThreshold     float64 `json:"avoid_threshold,omitempty" yaml:"avoid_threshold,omitempty"`
	FairMin            float64 `json:"fair_min,omitempty" yaml:"fair_min,omitempty"`
	FairMax            float64 `json:"fair_max,omitempty" yaml:"fair_max,omitempty"`
	OkayMax            float64 `json:"okay_max,omitempty" yaml:"okay_max,omitempty"`
	DiscountThreshold  float64 `json:"discount_threshold,omitempty" yaml:"discount_threshold,omitempty"`
}

// DefaultCriteria returns the built-in checklist. Ratios and margins are
// fractions (0.15 = 15%); margin of safety is in percent.
func DefaultCriteria() []Criterion {
	return []Criterion{
		{
			Key:           KeyROE,
			Name:          "Return on Equity (ROE)",
			Criteria:      ">= 15% = Good, < 10% = Avoid",
			GoodThreshold: 0.15,
			BadThreshold:  0.10,
		},
		{
			Key:                KeyDebtToEquity,
			Name:               "Debt-to-Equity Ratio",
			Criteria:           "< 0.5 = Excellent, 0.5-1 = Okay, > 1 = Avoid",
			ExcellentThreshold: 0.5,
			AvoidThreshold:     1.0,
		},
		{
			Key:           KeyCurrentRatio,
			Name:          "Current Ratio",
			Criteria:      "> 1.5 = Healthy, < 1 = Risky",
			GoodThreshold: 1.5,
			BadThreshold:  1.0,
		},
		{
			Key:           KeyBookValue,
			Name:          "Book Value Per Share",
			Criteria:      "Stock price below book value per share",
			GoodThreshold: 1.0, // price / book value
		},
		{
			Key:      KeyPERatio,
			Name:     "Price-to-Earnings (P/E) Ratio",
			Criteria: "10-15 = Fair, 15-25 = Okay, > 25 = Expensive",
			FairMin:  10,
			FairMax:  15,
			OkayMax:  25,
		},
		{
			Key:           KeyPBRatio,
			Name:          "Price-to-Book (P/B) Ratio",
			Criteria:      "< 1.5 = Undervalued",
			GoodThreshold: 1.5,
			OkayMax:       2.0,
		},
		{
			Key:               KeyMarginOfSafety,
			Name:              "Intrinsic Value vs Market Price",
			Criteria:          "Margin of safety >= 20% of DCF intrinsic value",
			DiscountThreshold: 20,
		},
		{
			Key:           KeyOperatingMargin,
			Name:          "Operating Profit Margin (OPM)",
			Criteria:      "> 15% and stable",
			GoodThreshold: 0.15,
		},
		{
			Key:      KeyGrowthAlignment,
			Name:     "Revenue vs Profit Growth",
			Criteria: "Both growing; caution when badly misaligned",
		},
		{
			Key:           KeyROCE,
			Name:          "Return on Capital Employed (ROCE)",
			Criteria:      "> 15%",
			GoodThreshold: 0.15,
		},
		{
			Key:           KeyPEGRatio,
			Name:          "PEG Ratio",
			Criteria:      "< 1.0",
			GoodThreshold: 1.0,
			OkayMax:       1.5,
		},
		{
			Key:           KeyEarningsGrowth,
			Name:          "Earnings Growth",
			Criteria:      "> 8% annualized",
			GoodThreshold: 0.08,
		},
		{
			Key:      KeyEarningsConsistency,
			Name:     "Consistent Earnings",
			Criteria: "No loss years across the reported history",
		},
		{
			Key:      KeyFreeCashFlow,
			Name:     "Free Cash Flow",
			Criteria: "Positive trailing twelve months",
		},
		{
			Key:      KeyDividendHistory,
			Name:     "Dividend History",
			Criteria: "Pays a dividend (bonus, not mandatory)",
		},
	}
}

type criteriaFile struct {
	Criteria []Criterion `json:"criteria" yaml:"criteria"`
}

// LoadCriteria reads a checklist configuration file. YAML is selected by
// extension; anything else goes through the lenient JSON/Hjson parser.
// The file must define all fifteen rules.
func LoadCriteria(path string) ([]Criterion, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read criteria file: %w", err)
	}

	var file criteriaFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse criteria yaml: %w", err)
		}
	default:
		if _, err := utils.SmartParse(string(data), &file); err != nil {
			return nil, fmt.Errorf("parse criteria file: %w", err)
		}
	}

	if err := validateCriteria(file.Criteria); err != nil {
		return nil, err
	}
	return file.Criteria, nil
}

func validateCriteria(criteria []Criterion) error {
	if len(criteria) != RuleCount {
		return fmt.Errorf("criteria file defines %d rules, want %d", len(criteria), RuleCount)
	}

	known := make(map[string]bool, RuleCount)
	for _, c := range DefaultCriteria() {
		known[c.Key] = true
	}

	seen := make(map[string]bool, RuleCount)
	for _, c := range criteria {
		if !known[c.Key] {
			return fmt.Errorf("unknown rule key %q", c.Key)
		}
		if seen[c.Key] {
			return fmt.Errorf("duplicate rule key %q", c.Key)
		}
		seen[c.Key] = true
	}
	return nil
}
