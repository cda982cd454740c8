package finance

import "math"

// Bond price classifications relative to face value.
const (
	BondPremium  = "premium"
	BondDiscount = "discount"
	BondPar      = "par"
)

// BondRequest describes a coupon bond.
type BondRequest struct {
	FaceValue       float64 `json:"face_value"`
	CouponRate      float64 `json:"coupon_rate"` // percent per year
	MarketRate      float64 `json:"market_rate"` // percent per year
	YearsToMaturity int     `json:"years_to_maturity"`
	PaymentsPerYear int     `json:"payments_per_year"` // defaults to 1
}

// BondResult carries the bond price and its split into coupon and face
// components.
type BondResult struct {
	Price          float64 `json:"price"`
	CouponPV       float64 `json:"coupon_pv"`
	FacePV         float64 `json:"face_pv"`
	Classification string  `json:"classification"`
}

// BondPrice values a coupon bond as the present value of its coupon stream
// plus the present value of the face amount, discounted at the market rate
// per period.
func BondPrice(req BondRequest) BondResult {
	paymentsPerYear := req.PaymentsPerYear
	if paymentsPerYear <= 0 {
		paymentsPerYear = 1
	}

	periods := req.YearsToMaturity * paymentsPerYear
	periodRate := req.MarketRate / 100 / float64(paymentsPerYear)
	couponPayment := req.FaceValue * req.CouponRate / 100 / float64(paymentsPerYear)

	pvCoupons := 0.0
	for i := 1; i <= periods; i++ {
		pvCoupons += couponPayment / math.Pow(1+periodRate, float64(i))
	}

	pvFace := req.FaceValue / math.Pow(1+periodRate, float64(periods))
	price := pvCoupons + pvFace

	classification := BondPar
	// Rounding noise around par should still classify as par
	switch {
	case price > req.FaceValue+0.005:
		classification = BondPremium
	case price < req.FaceValue-0.005:
		classification = BondDiscount
	}

	return BondResult{
		Price:          price,
		CouponPV:       pvCoupons,
		FacePV:         pvFace,
		Classification: classification,
	}
}
