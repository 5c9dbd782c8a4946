package fundamentals

// ROIC returns net income / invested capital (equity + debt) as a
// fraction, or 0 when invested capital is zero.
func ROIC(netIncome, equity, debt float64) float64 {
	return safeDiv(netIncome, equity+debt)
}
