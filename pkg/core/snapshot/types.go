// Package snapshot defines the immutable financial input record for one
// company. All numeric fields are pointers so that "data unavailable" is
// representable distinctly from a reported zero.
package snapshot

// Float returns a pointer to v. Convenience for building snapshots in
// literals and tests.
func Float(v float64) *float64 { return &v }

// FinancialSnapshot is the raw input to an analysis. It is supplied by
// an upstream market-data collaborator and never mutated after
// construction; every analysis derives fresh values from it.
type FinancialSnapshot struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name,omitempty"`
	Currency string `json:"currency,omitempty"`

	// Statement figures (absolute amounts, reporting currency).
	NetIncome          *float64 `json:"net_income,omitempty"`
	ShareholderEquity  *float64 `json:"shareholder_equity,omitempty"`
	TotalDebt          *float64 `json:"total_debt,omitempty"`
	Revenue            *float64 `json:"revenue,omitempty"`
	OperatingIncome    *float64 `json:"operating_income,omitempty"`
	FreeCashFlow       *float64 `json:"free_cash_flow,omitempty"` // trailing twelve months
	CurrentAssets      *float64 `json:"current_assets,omitempty"`
	CurrentLiabilities *float64 `json:"current_liabilities,omitempty"`
	SharesOutstanding  *float64 `json:"shares_outstanding,omitempty"`
	CurrentPrice       *float64 `json:"current_price,omitempty"`

	// Market-derived figures. PERatio and PBRatio may be supplied
	// directly or derived from price, EPS and book value.
	EPS               *float64 `json:"eps,omitempty"`
	PERatio           *float64 `json:"pe_ratio,omitempty"`
	PBRatio           *float64 `json:"pb_ratio,omitempty"`
	BookValuePerShare *float64 `json:"book_value_per_share,omitempty"`
	DividendYield     *float64 `json:"dividend_yield,omitempty"`

	// Growth figures as fractions (0.08 = 8%).
	RevenueGrowth    *float64  `json:"revenue_growth,omitempty"`
	EarningsGrowth   *float64  `json:"earnings_growth,omitempty"`
	NetIncomeHistory []float64 `json:"net_income_history,omitempty"` // oldest to newest

	// Valuation assumptions. Defaults apply when absent.
	FCFGrowthRate      *float64 `json:"fcf_growth_rate,omitempty"`
	DiscountRate       *float64 `json:"discount_rate,omitempty"`
	TerminalGrowthRate *float64 `json:"terminal_growth_rate,omitempty"`

	// Multi-period figures for the fundamentals models, oldest to newest.
	History []PeriodFigures `json:"history,omitempty"`
}

// PeriodFigures carries per-fiscal-year figures needed by the Piotroski
// and Altman models.
type PeriodFigures struct {
	FiscalYear         int      `json:"fiscal_year"`
	TotalAssets        *float64 `json:"total_assets,omitempty"`
	TotalLiabilities   *float64 `json:"total_liabilities,omitempty"`
	NetIncome          *float64 `json:"net_income,omitempty"`
	OperatingCashFlow  *float64 `json:"operating_cash_flow,omitempty"`
	LongTermDebt       *float64 `json:"long_term_debt,omitempty"`
	CurrentAssets      *float64 `json:"current_assets,omitempty"`
	CurrentLiabilities *float64 `json:"current_liabilities,omitempty"`
	GrossProfit        *float64 `json:"gross_profit,omitempty"`
	Revenue            *float64 `json:"revenue,omitempty"`
	RetainedEarnings   *float64 `json:"retained_earnings,omitempty"`
	EBIT               *float64 `json:"ebit,omitempty"`
	SharesOutstanding  *float64 `json:"shares_outstanding,omitempty"`
}

// MarketCap returns price x shares outstanding, or nil when either input
// is unavailable.
func (s *FinancialSnapshot) MarketCap() *float64 {
	if s.CurrentPrice == nil || s.SharesOutstanding == nil {
		return nil
	}
	v := *s.CurrentPrice * *s.SharesOutstanding
	return &v
}
