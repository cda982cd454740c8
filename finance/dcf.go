package finance

import "math"

// DCFRequest describes a growing cash flow stream with a Gordon-growth
// terminal value.
type DCFRequest struct {
	CashFlow       float64 `json:"cash_flow"`       // base (year 0) cash flow
	GrowthRate     float64 `json:"growth_rate"`     // percent per year during projection
	DiscountRate   float64 `json:"discount_rate"`   // percent per year
	Years          int     `json:"years"`           // projection horizon
	TerminalGrowth float64 `json:"terminal_growth"` // percent per year in perpetuity
}

// DCFResult splits the valuation into projected and terminal components.
type DCFResult struct {
	ProjectedPV   float64 `json:"projected_pv"`
	TerminalPV    float64 `json:"terminal_pv"`
	TotalValue    float64 `json:"total_value"`
	FinalCashFlow float64 `json:"final_cash_flow"`
}

// DCF values a cash flow stream: each projected year grows the base cash flow
// and is discounted back, then a terminal value is taken at the horizon using
// the perpetuity-growth formula. Requires discount rate > terminal growth.
func DCF(req DCFRequest) DCFResult {
	discount := req.DiscountRate / 100

	pv := func(cf float64, year int) float64 {
		return cf / math.Pow(1+discount, float64(year))
	}

	totalPV := 0.0
	currentCF := req.CashFlow
	for i := 1; i <= req.Years; i++ {
		currentCF = currentCF * (1 + req.GrowthRate/100)
		totalPV += pv(currentCF, i)
	}

	terminalCF := currentCF * (1 + req.TerminalGrowth/100)
	terminalValue := terminalCF / (discount - req.TerminalGrowth/100)
	terminalPV := pv(terminalValue, req.Years)

	return DCFResult{
		ProjectedPV:   totalPV,
		TerminalPV:    terminalPV,
		TotalValue:    totalPV + terminalPV,
		FinalCashFlow: currentCF,
	}
}
