// Package fundamentals implements the supplemental health models:
// Piotroski F-Score, Altman Z-Score and ROIC. They consume per-period
// figures and use zero-guarded arithmetic throughout.
package fundamentals

import "buffettbrain/pkg/core/snapshot"

// FScoreCheck is one of the nine Piotroski signals.
type FScoreCheck struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
}

// FScoreResult holds the 0-9 score and its breakdown.
type FScoreResult struct {
	Score  int           `json:"score"`
	Checks []FScoreCheck `json:"checks"`
}

// PiotroskiFScore scores financial health from the current and prior
// fiscal year figures. Four profitability signals, three leverage and
// liquidity signals, two operating efficiency signals; one point each.
func PiotroskiFScore(current, prior snapshot.PeriodFigures) FScoreResult {
	res := FScoreResult{}

	add := func(name string, passed bool) {
		res.Checks = append(res.Checks, FScoreCheck{Name: name, Passed: passed})
		if passed {
			res.Score++
		}
	}

	assets := val(current.TotalAssets)
	assetsPrev := val(prior.TotalAssets)
	if assetsPrev == 0 {
		assetsPrev = assets
	}
	avgAssets := (assets + assetsPrev) / 2

	// Profitability.
	netIncome := val(current.NetIncome)
	roa := safeDiv(netIncome, avgAssets)
	add("Positive ROA", roa > 0)

	ocf := val(current.OperatingCashFlow)
	add("Positive operating cash flow", ocf > 0)

	roaPrev := safeDiv(val(prior.NetIncome), assetsPrev)
	add("ROA increasing", roa > roaPrev)

	add("Quality of earnings (OCF > net income)", ocf > netIncome)

	// Leverage, liquidity, source of funds.
	leverage := safeDiv(val(current.LongTermDebt), avgAssets)
	leveragePrev := safeDiv(val(prior.LongTermDebt), assetsPrev)
	add("Lower leverage", leverage <= leveragePrev)

	currRatio := safeDiv(val(current.CurrentAssets), val(current.CurrentLiabilities))
	currRatioPrev := safeDiv(val(prior.CurrentAssets), val(prior.CurrentLiabilities))
	add("Higher current ratio", currRatio > currRatioPrev)

	add("No dilution", val(current.SharesOutstanding) <= val(prior.SharesOutstanding))

	// Operating efficiency.
	gm := safeDiv(val(current.GrossProfit), val(current.Revenue))
	gmPrev := safeDiv(val(prior.GrossProfit), val(prior.Revenue))
	add("Higher gross margin", gm > gmPrev)

	turnover := safeDiv(val(current.Revenue), avgAssets)
	turnoverPrev := safeDiv(val(prior.Revenue), assetsPrev)
	add("Higher asset turnover", turnover > turnoverPrev)

	return res
}

func val(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func safeDiv(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}
