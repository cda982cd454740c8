package finance

import (
	"math"
	"testing"
)

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestNPV(t *testing.T) {
	tests := []struct {
		name       string
		req        NPVRequest
		want       float64
		wantAccept bool
	}{
		{
			name:       "positive NPV project",
			req:        NPVRequest{Investment: 1000, CashFlow: 300, Rate: 10, Years: 5},
			want:       137.24,
			wantAccept: true,
		},
		{
			name:       "negative NPV project",
			req:        NPVRequest{Investment: 2000, CashFlow: 300, Rate: 10, Years: 5},
			want:       -862.76,
			wantAccept: false,
		},
		{
			name:       "zero rate sums cash flows",
			req:        NPVRequest{Investment: 1000, CashFlow: 300, Rate: 0, Years: 5},
			want:       500,
			wantAccept: true,
		},
		{
			name:       "no years is pure cost",
			req:        NPVRequest{Investment: 1000, CashFlow: 300, Rate: 10, Years: 0},
			want:       -1000,
			wantAccept: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NPV(tt.req)
			if !almostEqual(got.NPV, tt.want, 0.01) {
				t.Errorf("NPV = %.4f, want %.2f", got.NPV, tt.want)
			}
			if got.Accept != tt.wantAccept {
				t.Errorf("Accept = %v, want %v", got.Accept, tt.wantAccept)
			}
		})
	}
}

func TestDCF(t *testing.T) {
	got := DCF(DCFRequest{
		CashFlow:       100,
		GrowthRate:     5,
		DiscountRate:   10,
		Years:          5,
		TerminalGrowth: 2,
	})

	if got.TotalValue <= 0 {
		t.Fatalf("TotalValue = %.2f, want positive", got.TotalValue)
	}
	if !almostEqual(got.TotalValue, got.ProjectedPV+got.TerminalPV, 1e-9) {
		t.Errorf("TotalValue %.4f != ProjectedPV %.4f + TerminalPV %.4f",
			got.TotalValue, got.ProjectedPV, got.TerminalPV)
	}
	// 100 growing at 5% for 5 years
	if !almostEqual(got.FinalCashFlow, 127.6282, 0.001) {
		t.Errorf("FinalCashFlow = %.4f, want 127.63", got.FinalCashFlow)
	}
	if got.TerminalPV <= 0 {
		t.Errorf("TerminalPV = %.2f, want positive when discount > terminal growth", got.TerminalPV)
	}
}

func TestBondPrice(t *testing.T) {
	tests := []struct {
		name     string
		req      BondRequest
		wantKind string
	}{
		{
			name:     "coupon equals market prices at par",
			req:      BondRequest{FaceValue: 1000, CouponRate: 5, MarketRate: 5, YearsToMaturity: 10},
			wantKind: BondPar,
		},
		{
			name:     "coupon above market prices at premium",
			req:      BondRequest{FaceValue: 1000, CouponRate: 8, MarketRate: 5, YearsToMaturity: 10},
			wantKind: BondPremium,
		},
		{
			name:     "coupon below market prices at discount",
			req:      BondRequest{FaceValue: 1000, CouponRate: 3, MarketRate: 5, YearsToMaturity: 10},
			wantKind: BondDiscount,
		},
		{
			name:     "semiannual par bond",
			req:      BondRequest{FaceValue: 1000, CouponRate: 6, MarketRate: 6, YearsToMaturity: 5, PaymentsPerYear: 2},
			wantKind: BondPar,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BondPrice(tt.req)
			if got.Classification != tt.wantKind {
				t.Errorf("Classification = %s (price %.4f), want %s", got.Classification, got.Price, tt.wantKind)
			}
			if !almostEqual(got.Price, got.CouponPV+got.FacePV, 1e-9) {
				t.Errorf("Price %.4f != CouponPV %.4f + FacePV %.4f", got.Price, got.CouponPV, got.FacePV)
			}
			if tt.wantKind == BondPar && !almostEqual(got.Price, tt.req.FaceValue, 0.01) {
				t.Errorf("par bond priced at %.4f, want %.2f", got.Price, tt.req.FaceValue)
			}
		})
	}
}

func TestBondPriceZeroCoupon(t *testing.T) {
	got := BondPrice(BondRequest{FaceValue: 1000, CouponRate: 0, MarketRate: 5, YearsToMaturity: 10})

	want := 1000 / math.Pow(1.05, 10)
	if !almostEqual(got.Price, want, 0.01) {
		t.Errorf("Price = %.4f, want %.4f", got.Price, want)
	}
	if got.CouponPV != 0 {
		t.Errorf("CouponPV = %.4f, want 0", got.CouponPV)
	}
	if got.Classification != BondDiscount {
		t.Errorf("Classification = %s, want discount", got.Classification)
	}
}

func TestOptionPayoff(t *testing.T) {
	tests := []struct {
		name       string
		optionType string
		strike     float64
		premium    float64
		price      float64
		want       float64
	}{
		{"call in the money", OptionCall, 100, 5, 120, 15},
		{"call out of the money loses premium", OptionCall, 100, 5, 90, -5},
		{"call at the money loses premium", OptionCall, 100, 5, 100, -5},
		{"put in the money", OptionPut, 100, 5, 80, 15},
		{"put out of the money loses premium", OptionPut, 100, 5, 110, -5},
		{"call at breakeven", OptionCall, 100, 5, 105, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OptionPayoff(tt.optionType, tt.strike, tt.premium, tt.price)
			if !almostEqual(got, tt.want, 1e-9) {
				t.Errorf("OptionPayoff = %.4f, want %.4f", got, tt.want)
			}
		})
	}
}

func TestOptionAnalysis(t *testing.T) {
	got := OptionAnalysis(OptionRequest{Type: OptionCall, Strike: 100, Premium: 5, CurrentPrice: 120})

	if !almostEqual(got.Payoff, 15, 1e-9) {
		t.Errorf("Payoff = %.4f, want 15", got.Payoff)
	}
	if !almostEqual(got.Breakeven, 105, 1e-9) {
		t.Errorf("Breakeven = %.4f, want 105", got.Breakeven)
	}
	if len(got.Curve) != 201 {
		t.Fatalf("curve has %d points, want 201", len(got.Curve))
	}
	if got.Curve[0].Price != 0 || !almostEqual(got.Curve[200].Price, 200, 1e-9) {
		t.Errorf("curve range [%.2f, %.2f], want [0, 200]", got.Curve[0].Price, got.Curve[200].Price)
	}

	put := OptionAnalysis(OptionRequest{Type: OptionPut, Strike: 100, Premium: 5, CurrentPrice: 80})
	if !almostEqual(put.Breakeven, 95, 1e-9) {
		t.Errorf("put Breakeven = %.4f, want 95", put.Breakeven)
	}
}

func TestPortfolioSim(t *testing.T) {
	got := PortfolioSim(PortfolioRequest{
		InitialInvestment:   10000,
		MonthlyContribution: 500,
		Years:               20,
		ReturnRate:          8,
		ETFFee:              0.08,
		FundFee:             1.5,
	})

	if len(got.Balances) != 20 {
		t.Fatalf("got %d yearly balances, want 20", len(got.Balances))
	}
	// Year 1: (10000 + 6000) * (1 + net return)
	if !almostEqual(got.Balances[0].ETF, 16000*1.0792, 0.01) {
		t.Errorf("year 1 ETF = %.2f, want %.2f", got.Balances[0].ETF, 16000*1.0792)
	}
	if !almostEqual(got.Balances[0].Fund, 16000*1.065, 0.01) {
		t.Errorf("year 1 fund = %.2f, want %.2f", got.Balances[0].Fund, 16000*1.065)
	}
	if got.Difference <= 0 {
		t.Errorf("Difference = %.2f, want positive fee drag when the fund charges more", got.Difference)
	}
	if !almostEqual(got.Difference, got.FinalETF-got.FinalFund, 1e-9) {
		t.Errorf("Difference %.2f != FinalETF %.2f - FinalFund %.2f", got.Difference, got.FinalETF, got.FinalFund)
	}
	if got.Balances[19].ETF != got.FinalETF || got.Balances[19].Fund != got.FinalFund {
		t.Error("final balances do not match the last series entry")
	}

	prev := 0.0
	for _, year := range got.Balances {
		if year.ETF <= prev {
			t.Fatalf("ETF balance not growing at year %d", year.Year)
		}
		prev = year.ETF
	}
}

func TestPortfolioSimEqualFees(t *testing.T) {
	got := PortfolioSim(PortfolioRequest{
		InitialInvestment:   1000,
		MonthlyContribution: 0,
		Years:               2,
		ReturnRate:          10,
		ETFFee:              0.5,
		FundFee:             0.5,
	})

	if !almostEqual(got.Difference, 0, 1e-9) {
		t.Errorf("Difference = %.4f, want 0 with identical fees", got.Difference)
	}
	// 1000 compounded twice at 9.5% net
	want := 1000 * 1.095 * 1.095
	if !almostEqual(got.FinalETF, want, 0.01) {
		t.Errorf("FinalETF = %.4f, want %.4f", got.FinalETF, want)
	}
}

func TestRatios(t *testing.T) {
	got := Ratios(RatioRequest{
		CurrentAssets:      500000,
		CurrentLiabilities: 250000,
		TotalDebt:          400000,
		Revenue:            2000000,
		NetIncome:          200000,
		Equity:             1000000,
	})

	if !almostEqual(got.CurrentRatio, 2, 1e-9) {
		t.Errorf("CurrentRatio = %.4f, want 2", got.CurrentRatio)
	}
	if !almostEqual(got.DebtToEquity, 0.4, 1e-9) {
		t.Errorf("DebtToEquity = %.4f, want 0.4", got.DebtToEquity)
	}
	if !almostEqual(got.ROE, 20, 1e-9) {
		t.Errorf("ROE = %.4f, want 20", got.ROE)
	}
	if !almostEqual(got.ProfitMargin, 10, 1e-9) {
		t.Errorf("ProfitMargin = %.4f, want 10", got.ProfitMargin)
	}
}

func TestDuPontROE(t *testing.T) {
	got := DuPontROE(DuPontRequest{ProfitMargin: 10, AssetTurnover: 1.5, Leverage: 2})
	if !almostEqual(got, 30, 1e-9) {
		t.Errorf("DuPontROE = %.4f, want 30", got)
	}
}
