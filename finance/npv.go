// Package finance implements the deterministic financial calculators backing
// the interactive lessons. Every function is a pure, closed-form formula over
// its inputs.
package finance

import "math"

// NPVRequest describes a level-annuity project: a single upfront investment
// followed by equal annual cash flows.
type NPVRequest struct {
	Investment float64 `json:"investment"`
	CashFlow   float64 `json:"cash_flow"`
	Rate       float64 `json:"rate"` // annual discount rate, percent
	Years      int     `json:"years"`
}

// NPVResult carries the net present value and the accept/reject call.
type NPVResult struct {
	NPV    float64 `json:"npv"`
	Accept bool    `json:"accept"`
}

// NPV discounts the annual cash flows at the given percentage rate and nets
// them against the initial investment.
func NPV(req NPVRequest) NPVResult {
	total := -req.Investment
	for t := 1; t <= req.Years; t++ {
		total += req.CashFlow / math.Pow(1+req.Rate/100, float64(t))
	}
	return NPVResult{NPV: total, Accept: total > 0}
}
