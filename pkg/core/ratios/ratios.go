// Package ratios derives the checklist metrics from a raw financial
// snapshot. Every derivation is a closed-form expression with guarded
// division: a missing input or zero denominator yields a nil metric,
// never a panic, an Inf, or a silent zero.
package ratios

import (
	"buffettbrain/pkg/core/snapshot"
)

// RatioSet holds one derived value per checklist metric. A nil entry
// means the inputs were unavailable or the formula was undefined.
// Return and margin metrics are fractions (0.15 = 15%).
type RatioSet struct {
	ROE               *float64 `json:"roe,omitempty"`
	DebtToEquity      *float64 `json:"debt_to_equity,omitempty"`
	OperatingMargin   *float64 `json:"operating_margin,omitempty"`
	CurrentRatio      *float64 `json:"current_ratio,omitempty"`
	ROCE              *float64 `json:"roce,omitempty"`
	PERatio           *float64 `json:"pe_ratio,omitempty"`
	PBRatio           *float64 `json:"pb_ratio,omitempty"`
	PEGRatio          *float64 `json:"peg_ratio,omitempty"`
	BookValuePerShare *float64 `json:"book_value_per_share,omitempty"`
	PriceToBook       *float64 `json:"price_to_book,omitempty"`
	RevenueGrowth     *float64 `json:"revenue_growth,omitempty"`
	EarningsGrowth    *float64 `json:"earnings_growth,omitempty"`
	FreeCashFlow      *float64 `json:"free_cash_flow,omitempty"`
	DividendYield     *float64 `json:"dividend_yield,omitempty"`
}

// Compute derives the full ratio set from a snapshot.
func Compute(s *snapshot.FinancialSnapshot) *RatioSet {
	rs := &RatioSet{
		ROE:             safeDiv(s.NetIncome, s.ShareholderEquity),
		DebtToEquity:    safeDiv(s.TotalDebt, s.ShareholderEquity),
		OperatingMargin: safeDiv(s.OperatingIncome, s.Revenue),
		CurrentRatio:    safeDiv(s.CurrentAssets, s.CurrentLiabilities),
		RevenueGrowth:   s.RevenueGrowth,
		EarningsGrowth:  s.EarningsGrowth,
		FreeCashFlow:    s.FreeCashFlow,
		DividendYield:   s.DividendYield,
	}

	// ROCE = operating income / capital employed (equity + debt).
	if s.OperatingIncome != nil && s.ShareholderEquity != nil && s.TotalDebt != nil {
		capital := *s.ShareholderEquity + *s.TotalDebt
		rs.ROCE = safeDiv(s.OperatingIncome, &capital)
	}

	// Book value per share: supplied directly or equity / shares.
	rs.BookValuePerShare = s.BookValuePerShare
	if rs.BookValuePerShare == nil {
		rs.BookValuePerShare = safeDiv(s.ShareholderEquity, s.SharesOutstanding)
	}

	// P/E: supplied directly or price / EPS.
	rs.PERatio = s.PERatio
	if rs.PERatio == nil {
		rs.PERatio = safeDiv(s.CurrentPrice, s.EPS)
	}

	// P/B: supplied directly or price / book value per share.
	rs.PBRatio = s.PBRatio
	if rs.PBRatio == nil {
		rs.PBRatio = safeDiv(s.CurrentPrice, rs.BookValuePerShare)
	}
	rs.PriceToBook = rs.PBRatio

	// PEG = P/E / growth expressed in percent. Undefined for
	// non-positive growth or non-positive P/E.
	if rs.PERatio != nil && *rs.PERatio > 0 && s.EarningsGrowth != nil && *s.EarningsGrowth > 0 {
		peg := *rs.PERatio / (*s.EarningsGrowth * 100)
		rs.PEGRatio = &peg
	}

	return rs
}

func safeDiv(num, den *float64) *float64 {
	if num == nil || den == nil || *den == 0 {
		return nil
	}
	v := *num / *den
	return &v
}
