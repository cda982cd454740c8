package finance

// RatioRequest holds the balance sheet and income statement figures needed
// for the core ratio set.
type RatioRequest struct {
	CurrentAssets      float64 `json:"current_assets"`
	CurrentLiabilities float64 `json:"current_liabilities"`
	TotalDebt          float64 `json:"total_debt"`
	Revenue            float64 `json:"revenue"`
	NetIncome          float64 `json:"net_income"`
	Equity             float64 `json:"equity"`
}

// RatioResult carries the computed ratios. ROE and profit margin are
// percentages.
type RatioResult struct {
	CurrentRatio float64 `json:"current_ratio"`
	DebtToEquity float64 `json:"debt_to_equity"`
	ROE          float64 `json:"roe"`
	ProfitMargin float64 `json:"profit_margin"`
}

// Ratios computes liquidity, leverage and profitability ratios. Denominators
// must be non-zero; handlers validate before calling.
func Ratios(req RatioRequest) RatioResult {
	return RatioResult{
		CurrentRatio: req.CurrentAssets / req.CurrentLiabilities,
		DebtToEquity: req.TotalDebt / req.Equity,
		ROE:          req.NetIncome / req.Equity * 100,
		ProfitMargin: req.NetIncome / req.Revenue * 100,
	}
}

// DuPontRequest holds the three DuPont components.
type DuPontRequest struct {
	ProfitMargin  float64 `json:"profit_margin"` // percent
	AssetTurnover float64 `json:"asset_turnover"`
	Leverage      float64 `json:"leverage"`
}

// DuPontROE multiplies margin, turnover and leverage into return on equity,
// in percent.
func DuPontROE(req DuPontRequest) float64 {
	return req.ProfitMargin * req.AssetTurnover * req.Leverage
}
