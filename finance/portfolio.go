package finance

// PortfolioRequest compares two annual fee rates applied to the same
// contribution plan, the classic ETF versus mutual fund comparison.
type PortfolioRequest struct {
	InitialInvestment   float64 `json:"initial_investment"`
	MonthlyContribution float64 `json:"monthly_contribution"`
	Years               int     `json:"years"`
	ReturnRate          float64 `json:"return_rate"` // percent per year
	ETFFee              float64 `json:"etf_fee"`     // percent per year
	FundFee             float64 `json:"fund_fee"`    // percent per year
}

// PortfolioYear is one year's closing balance under each fee rate.
type PortfolioYear struct {
	Year int     `json:"year"`
	ETF  float64 `json:"etf"`
	Fund float64 `json:"fund"`
}

// PortfolioResult carries the final balances, the fee drag between them and
// the year-by-year balance series.
type PortfolioResult struct {
	FinalETF   float64         `json:"final_etf"`
	FinalFund  float64         `json:"final_fund"`
	Difference float64         `json:"difference"`
	Balances   []PortfolioYear `json:"balances"`
}

// PortfolioSim compounds both portfolios annually: each year adds twelve
// monthly contributions, then applies the return net of that portfolio's fee.
func PortfolioSim(req PortfolioRequest) PortfolioResult {
	etf := req.InitialInvestment
	fund := req.InitialInvestment
	contribution := req.MonthlyContribution * 12

	balances := make([]PortfolioYear, 0, req.Years)
	for y := 1; y <= req.Years; y++ {
		etf = (etf + contribution) * (1 + (req.ReturnRate-req.ETFFee)/100)
		fund = (fund + contribution) * (1 + (req.ReturnRate-req.FundFee)/100)
		balances = append(balances, PortfolioYear{Year: y, ETF: etf, Fund: fund})
	}

	return PortfolioResult{
		FinalETF:   etf,
		FinalFund:  fund,
		Difference: etf - fund,
		Balances:   balances,
	}
}
