package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"fin-arcade-api/finance"
	"fin-arcade-api/utils"
)

// CalculatorHandlers exposes the stateless financial calculators.
type CalculatorHandlers struct{}

func NewCalculatorHandlers() *CalculatorHandlers {
	return &CalculatorHandlers{}
}

// HandleCalculators routes POST /calculators/{npv,dcf,bond,option,ratios,dupont,portfolio}.
func (ch *CalculatorHandlers) HandleCalculators(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/calculators/")
	utils.LogHTTP("%s /calculators/%s", r.Method, name)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	switch name {
	case "npv":
		ch.npv(w, r)
	case "dcf":
		ch.dcf(w, r)
	case "bond":
		ch.bond(w, r)
	case "option":
		ch.option(w, r)
	case "ratios":
		ch.ratios(w, r)
	case "dupont":
		ch.dupont(w, r)
	case "portfolio":
		ch.portfolio(w, r)
	default:
		http.Error(w, "Unknown calculator", http.StatusNotFound)
	}
}

func decodeCalcRequest(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		utils.LogHTTP("Invalid JSON in calculator request: %v", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return false
	}
	return true
}

func writeCalcResult(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func (ch *CalculatorHandlers) npv(w http.ResponseWriter, r *http.Request) {
	var req finance.NPVRequest
	if !decodeCalcRequest(w, r, &req) {
		return
	}
	if req.Years < 0 || req.Rate <= -100 {
		http.Error(w, "Invalid NPV parameters", http.StatusBadRequest)
		return
	}
	writeCalcResult(w, finance.NPV(req))
}

func (ch *CalculatorHandlers) dcf(w http.ResponseWriter, r *http.Request) {
	var req finance.DCFRequest
	if !decodeCalcRequest(w, r, &req) {
		return
	}
	if req.Years <= 0 {
		http.Error(w, "Years must be positive", http.StatusBadRequest)
		return
	}
	if req.DiscountRate <= req.TerminalGrowth {
		http.Error(w, "Discount rate must exceed terminal growth", http.StatusBadRequest)
		return
	}
	writeCalcResult(w, finance.DCF(req))
}

func (ch *CalculatorHandlers) bond(w http.ResponseWriter, r *http.Request) {
	var req finance.BondRequest
	if !decodeCalcRequest(w, r, &req) {
		return
	}
	if req.FaceValue <= 0 || req.YearsToMaturity <= 0 {
		http.Error(w, "Invalid bond parameters", http.StatusBadRequest)
		return
	}
	writeCalcResult(w, finance.BondPrice(req))
}

func (ch *CalculatorHandlers) option(w http.ResponseWriter, r *http.Request) {
	var req finance.OptionRequest
	if !decodeCalcRequest(w, r, &req) {
		return
	}
	if req.Type != finance.OptionCall && req.Type != finance.OptionPut {
		http.Error(w, "Option type must be call or put", http.StatusBadRequest)
		return
	}
	if req.Strike <= 0 {
		http.Error(w, "Strike must be positive", http.StatusBadRequest)
		return
	}
	writeCalcResult(w, finance.OptionAnalysis(req))
}

func (ch *CalculatorHandlers) ratios(w http.ResponseWriter, r *http.Request) {
	var req finance.RatioRequest
	if !decodeCalcRequest(w, r, &req) {
		return
	}
	if req.CurrentLiabilities == 0 || req.Equity == 0 || req.Revenue == 0 {
		http.Error(w, "Denominators must be non-zero", http.StatusBadRequest)
		return
	}
	writeCalcResult(w, finance.Ratios(req))
}

func (ch *CalculatorHandlers) portfolio(w http.ResponseWriter, r *http.Request) {
	var req finance.PortfolioRequest
	if !decodeCalcRequest(w, r, &req) {
		return
	}
	if req.Years <= 0 {
		http.Error(w, "Years must be positive", http.StatusBadRequest)
		return
	}
	if req.InitialInvestment < 0 || req.MonthlyContribution < 0 {
		http.Error(w, "Investment amounts must be non-negative", http.StatusBadRequest)
		return
	}
	writeCalcResult(w, finance.PortfolioSim(req))
}

func (ch *CalculatorHandlers) dupont(w http.ResponseWriter, r *http.Request) {
	var req finance.DuPontRequest
	if !decodeCalcRequest(w, r, &req) {
		return
	}
	writeCalcResult(w, map[string]float64{"roe": finance.DuPontROE(req)})
}
