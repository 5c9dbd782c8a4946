package fundamentals

import "buffettbrain/pkg/core/snapshot"

// Altman Z-Score zones.
const (
	ZoneSafe     = "Safe"
	ZoneGrey     = "Grey Zone"
	ZoneDistress = "Distress"
	ZoneUnknown  = "Unknown"
)

// ZScoreResult pairs the Altman score with its bankruptcy-risk zone.
type ZScoreResult struct {
	Score float64 `json:"score"`
	Zone  string  `json:"zone"`
}

// AltmanZScore computes the classic manufacturing Z-Score:
//
//	Z = 1.2A + 1.4B + 3.3C + 0.6D + 1.0E
//	A = Working Capital / Total Assets
//	B = Retained Earnings / Total Assets
//	C = EBIT / Total Assets
//	D = Market Value of Equity / Total Liabilities
//	E = Sales / Total Assets
//
// Returns 0 when total assets or liabilities are zero.
func AltmanZScore(workingCapital, retainedEarnings, ebit, marketEquity, sales, totalAssets, totalLiabilities float64) float64 {
	if totalAssets == 0 || totalLiabilities == 0 {
		return 0
	}
	a := workingCapital / totalAssets
	b := retainedEarnings / totalAssets
	c := ebit / totalAssets
	d := marketEquity / totalLiabilities
	e := sales / totalAssets

	return 1.2*a + 1.4*b + 3.3*c + 0.6*d + 1.0*e
}

// AltmanZone maps a Z-Score to its risk zone. Boundaries per Altman:
// above 2.99 safe, above 1.81 grey, at or below distress.
func AltmanZone(z float64) string {
	switch {
	case z > 2.99:
		return ZoneSafe
	case z > 1.81:
		return ZoneGrey
	default:
		return ZoneDistress
	}
}

// AltmanFromPeriod builds a ZScoreResult from one period's figures and
// the market capitalization. Returns nil when the balance sheet totals
// needed by the formula are unavailable.
func AltmanFromPeriod(p snapshot.PeriodFigures, marketCap *float64) *ZScoreResult {
	if p.TotalAssets == nil || *p.TotalAssets == 0 ||
		p.TotalLiabilities == nil || *p.TotalLiabilities == 0 ||
		marketCap == nil {
		return nil
	}

	workingCapital := val(p.CurrentAssets) - val(p.CurrentLiabilities)
	z := AltmanZScore(
		workingCapital,
		val(p.RetainedEarnings),
		val(p.EBIT),
		*marketCap,
		val(p.Revenue),
		*p.TotalAssets,
		*p.TotalLiabilities,
	)
	return &ZScoreResult{Score: z, Zone: AltmanZone(z)}
}
