// Package valuation implements the discounted cash flow intrinsic value
// model and its reverse (implied growth) form.
package valuation

import (
	"math"

	"buffettbrain/pkg/core/snapshot"
)

// Model defaults, applied when the snapshot carries no assumption.
const (
	DefaultProjectionYears = 5
	DefaultGrowthRate      = 0.10  // FCF growth when no estimate supplied
	DefaultDiscountRate    = 0.10  // treasury yield + equity risk premium
	DefaultTerminalGrowth  = 0.025 // long-run GDP growth
	MaxGrowthRate          = 0.15  // cap on the explicit-phase growth assumption
)

// Reasons a valuation came back indeterminate.
const (
	ReasonMissingFCF    = "free cash flow unavailable"
	ReasonInvalidShares = "shares outstanding not positive"
	ReasonPerpetuity    = "discount rate must exceed terminal growth"
)

// DCFInput encapsulates all inputs for one intrinsic value calculation.
// Pointer fields follow the snapshot convention: nil means unavailable.
type DCFInput struct {
	FreeCashFlow      *float64
	GrowthRate        *float64
	DiscountRate      *float64
	TerminalGrowth    *float64
	SharesOutstanding *float64
	MarketPrice       *float64
	ProjectionYears   int // 0 means DefaultProjectionYears
}

// DCFResult holds the valuation outputs. IntrinsicValue and
// MarginOfSafety are nil when the calculation was indeterminate;
// Reason then says why.
type DCFResult struct {
	IntrinsicValue *float64 `json:"intrinsic_value,omitempty"`  // per share
	MarginOfSafety *float64 `json:"margin_of_safety,omitempty"` // percent of intrinsic value
	PVExplicit     float64  `json:"pv_explicit"`
	PVTerminal     float64  `json:"pv_terminal"`
	Indeterminate  bool     `json:"indeterminate"`
	Reason         string   `json:"reason,omitempty"`
}

// InputFromSnapshot maps snapshot fields onto a DCFInput.
func InputFromSnapshot(s *snapshot.FinancialSnapshot) DCFInput {
	return DCFInput{
		FreeCashFlow:      s.FreeCashFlow,
		GrowthRate:        s.FCFGrowthRate,
		DiscountRate:      s.DiscountRate,
		TerminalGrowth:    s.TerminalGrowthRate,
		SharesOutstanding: s.SharesOutstanding,
		MarketPrice:       s.CurrentPrice,
	}
}

// CalculateIntrinsicValue performs a two-stage DCF: the explicit phase
// compounds trailing FCF at the growth assumption and discounts each
// year to present value; the terminal phase capitalizes the final year
// with the Gordon growth formula. The sum divided by shares outstanding
// is the intrinsic value per share.
//
// The result is indeterminate (never a panic and never a fabricated
// number) when FCF is unavailable, shares outstanding is not positive,
// or the discount rate does not exceed the terminal growth rate.
func CalculateIntrinsicValue(input DCFInput) DCFResult {
	years := input.ProjectionYears
	if years <= 0 {
		years = DefaultProjectionYears
	}

	growth := DefaultGrowthRate
	if input.GrowthRate != nil {
		growth = *input.GrowthRate
	}
	growth = math.Min(growth, MaxGrowthRate)

	discount := DefaultDiscountRate
	if input.DiscountRate != nil {
		discount = *input.DiscountRate
	}
	terminal := DefaultTerminalGrowth
	if input.TerminalGrowth != nil {
		terminal = *input.TerminalGrowth
	}

	if input.FreeCashFlow == nil {
		return DCFResult{Indeterminate: true, Reason: ReasonMissingFCF}
	}
	if input.SharesOutstanding == nil || *input.SharesOutstanding <= 0 {
		return DCFResult{Indeterminate: true, Reason: ReasonInvalidShares}
	}
	if discount <= terminal {
		return DCFResult{Indeterminate: true, Reason: ReasonPerpetuity}
	}

	pvExplicit, pvTerminal := presentValue(*input.FreeCashFlow, growth, discount, terminal, years)
	intrinsic := (pvExplicit + pvTerminal) / *input.SharesOutstanding

	res := DCFResult{
		IntrinsicValue: &intrinsic,
		PVExplicit:     pvExplicit,
		PVTerminal:     pvTerminal,
	}

	// Margin of safety = (intrinsic - market) / intrinsic, in percent.
	// Negative means the stock trades above intrinsic value.
	if input.MarketPrice != nil && intrinsic > 0 {
		mos := (intrinsic - *input.MarketPrice) / intrinsic * 100
		res.MarginOfSafety = &mos
	}

	return res
}

// presentValue returns the discounted explicit-phase and terminal
// components for a cash flow compounding at growth. Callers guarantee
// discount > terminal.
func presentValue(fcf, growth, discount, terminal float64, years int) (pvExplicit, pvTerminal float64) {
	projected := fcf
	for t := 1; t <= years; t++ {
		projected *= 1 + growth
		pvExplicit += projected / math.Pow(1+discount, float64(t))
	}

	terminalFCF := projected * (1 + terminal)
	terminalValue := terminalFCF / (discount - terminal)
	pvTerminal = terminalValue / math.Pow(1+discount, float64(years))
	return pvExplicit, pvTerminal
}
