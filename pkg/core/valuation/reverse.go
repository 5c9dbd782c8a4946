package valuation

// CalculateImpliedGrowth runs the DCF backwards: it finds the explicit
// phase growth rate at which the model reproduces the current market
// price. The answer is the growth the market is paying for; comparing
// it to realistic expectations is a quick over/undervaluation check.
//
// Returns nil when the search is undefined: missing or non-positive
// price, FCF or shares, or a degenerate perpetuity.
func CalculateImpliedGrowth(input DCFInput) *float64 {
	if input.MarketPrice == nil || *input.MarketPrice <= 0 {
		return nil
	}
	if input.FreeCashFlow == nil || *input.FreeCashFlow <= 0 {
		return nil
	}
	if input.SharesOutstanding == nil || *input.SharesOutstanding <= 0 {
		return nil
	}

	years := input.ProjectionYears
	if years <= 0 {
		years = DefaultProjectionYears
	}
	discount := DefaultDiscountRate
	if input.DiscountRate != nil {
		discount = *input.DiscountRate
	}
	terminal := DefaultTerminalGrowth
	if input.TerminalGrowth != nil {
		terminal = *input.TerminalGrowth
	}
	if discount <= terminal {
		return nil
	}

	price := *input.MarketPrice
	fcfPerShare := *input.FreeCashFlow / *input.SharesOutstanding

	// Bisection over [-50%, +100%] growth. The per-share DCF value is
	// monotonically increasing in growth, so this converges.
	low, high := -0.50, 1.00
	const tolerance = 0.01 // one cent
	var mid float64
	for i := 0; i < 100; i++ {
		mid = (low + high) / 2
		pvExplicit, pvTerminal := presentValue(fcfPerShare, mid, discount, terminal, years)
		implied := pvExplicit + pvTerminal

		diff := implied - price
		if diff > -tolerance && diff < tolerance {
			return &mid
		}
		if implied < price {
			low = mid
		} else {
			high = mid
		}
	}
	return &mid
}
