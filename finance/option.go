package finance

import "math"

// Option types
const (
	OptionCall = "call"
	OptionPut  = "put"
)

// OptionRequest describes a long option position held to expiry.
type OptionRequest struct {
	Type         string  `json:"type"` // "call" or "put"
	Strike       float64 `json:"strike"`
	Premium      float64 `json:"premium"`
	CurrentPrice float64 `json:"current_price"`
}

// PayoffPoint is one point on the payoff curve.
type PayoffPoint struct {
	Price  float64 `json:"price"`
	Payoff float64 `json:"payoff"`
}

// OptionResult carries the payoff at the current price, the breakeven price
// and the payoff curve over a price range around the strike.
type OptionResult struct {
	Payoff    float64       `json:"payoff"`
	Breakeven float64       `json:"breakeven"`
	Curve     []PayoffPoint `json:"curve"`
}

// OptionPayoff returns the profit of a long option at expiry, net of premium.
func OptionPayoff(optionType string, strike, premium, stockPrice float64) float64 {
	if optionType == OptionPut {
		return math.Max(0, strike-stockPrice) - premium
	}
	return math.Max(0, stockPrice-strike) - premium
}

// OptionAnalysis evaluates the position at the current price and builds the
// payoff curve from 0 to twice the strike.
func OptionAnalysis(req OptionRequest) OptionResult {
	breakeven := req.Strike + req.Premium
	if req.Type == OptionPut {
		breakeven = req.Strike - req.Premium
	}

	maxPrice := req.Strike * 2
	if maxPrice <= 0 {
		maxPrice = 200
	}
	step := maxPrice / 200

	curve := make([]PayoffPoint, 0, 201)
	for i := 0; i <= 200; i++ {
		price := float64(i) * step
		curve = append(curve, PayoffPoint{
			Price:  price,
			Payoff: OptionPayoff(req.Type, req.Strike, req.Premium, price),
		})
	}

	return OptionResult{
		Payoff:    OptionPayoff(req.Type, req.Strike, req.Premium, req.CurrentPrice),
		Breakeven: breakeven,
		Curve:     curve,
	}
}
