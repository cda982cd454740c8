// Package content is the static learning catalog: modules, lessons and
// quizzes. The catalog is immutable; nothing in the service writes to it.
package content

import "fin-arcade-api/models"

var quizzes = []models.Quiz{
	{
		ID:           "fs-quiz-1",
		ModuleID:     "financial-statements",
		Title:        "Financial Statements Basics",
		Description:  "Test your understanding of financial statement analysis fundamentals",
		Difficulty:   "beginner",
		PassingScore: 70,
		Questions: []models.Question{
			{
				ID:       "fs-q1",
				Type:     models.QuestionMultipleChoice,
				Question: "What does the Current Ratio measure?",
				Choices: []string{
					"Long-term solvency",
					"Short-term liquidity",
					"Profitability",
					"Efficiency",
				},
				CorrectAnswer: "Short-term liquidity",
				Explanation:   "The Current Ratio (Current Assets / Current Liabilities) measures a company's ability to pay short-term obligations.",
				Topic:         "Ratio Analysis",
				Difficulty:    "beginner",
				Points:        25,
			},
			{
				ID:            "fs-q2",
				Type:          models.QuestionCalculation,
				Question:      "If a company has Current Assets of $500,000 and Current Liabilities of $250,000, what is the Current Ratio?",
				CorrectAnswer: 2,
				Explanation:   "Current Ratio = Current Assets / Current Liabilities = $500,000 / $250,000 = 2.0",
				Topic:         "Ratio Analysis",
				Difficulty:    "beginner",
				Points:        25,
			},
			{
				ID:       "fs-q3",
				Type:     models.QuestionMultipleChoice,
				Question: "What is the primary purpose of trend analysis?",
				Choices: []string{
					"Compare companies in the same industry",
					"Identify patterns over multiple periods",
					"Calculate financial ratios",
					"Determine market value",
				},
				CorrectAnswer: "Identify patterns over multiple periods",
				Explanation:   "Trend analysis examines financial data over time to identify patterns, growth rates, and potential issues.",
				Topic:         "Trend Analysis",
				Difficulty:    "beginner",
				Points:        25,
			},
			{
				ID:            "fs-q4",
				Type:          models.QuestionTrueFalse,
				Question:      "A higher Current Ratio always indicates better financial health.",
				Choices:       []string{"True", "False"},
				CorrectAnswer: "False",
				Explanation:   "While a ratio above 1 is generally good, an excessively high Current Ratio might indicate inefficient use of assets.",
				Topic:         "Ratio Analysis",
				Difficulty:    "intermediate",
				Points:        25,
			},
		},
	},
	{
		ID:           "fs-quiz-2",
		ModuleID:     "financial-statements",
		Title:        "DuPont & Profitability",
		Description:  "Decompose return on equity and read profitability ratios",
		Difficulty:   "intermediate",
		PassingScore: 70,
		Questions: []models.Question{
			{
				ID:       "fs2-q1",
				Type:     models.QuestionMultipleChoice,
				Question: "Which three components multiply together in the DuPont decomposition of ROE?",
				Choices: []string{
					"Profit margin, asset turnover, financial leverage",
					"Gross margin, inventory turnover, debt ratio",
					"Operating margin, current ratio, equity multiplier",
					"Net margin, quick ratio, interest coverage",
				},
				CorrectAnswer: "Profit margin, asset turnover, financial leverage",
				Explanation:   "DuPont: ROE = Net Profit Margin x Asset Turnover x Financial Leverage.",
				Topic:         "DuPont Analysis",
				Difficulty:    "intermediate",
				Points:        25,
			},
			{
				ID:            "fs2-q2",
				Type:          models.QuestionCalculation,
				Question:      "A firm has a 10% net profit margin, asset turnover of 1.5 and financial leverage of 2.0. What is its ROE in percent?",
				CorrectAnswer: 30,
				Explanation:   "ROE = 10% x 1.5 x 2.0 = 30%.",
				Topic:         "DuPont Analysis",
				Difficulty:    "intermediate",
				Points:        25,
			},
			{
				ID:            "fs2-q3",
				Type:          models.QuestionCalculation,
				Question:      "Net income is $200,000 on revenue of $2,000,000. What is the profit margin in percent?",
				CorrectAnswer: 10,
				Explanation:   "Profit Margin = Net Income / Revenue = 200,000 / 2,000,000 = 10%.",
				Topic:         "Ratio Analysis",
				Difficulty:    "beginner",
				Points:        25,
			},
			{
				ID:            "fs2-q4",
				Type:          models.QuestionTrueFalse,
				Question:      "Increasing financial leverage always increases ROE without adding risk.",
				Choices:       []string{"True", "False"},
				CorrectAnswer: "False",
				Explanation:   "Leverage amplifies ROE in good times but also magnifies losses and adds financial risk.",
				Topic:         "DuPont Analysis",
				Difficulty:    "intermediate",
				Points:        25,
			},
		},
	},
	{
		ID:           "cf-quiz-1",
		ModuleID:     "corporate-finance",
		Title:        "NPV & Capital Budgeting",
		Description:  "Test your knowledge of NPV, IRR, and capital budgeting decisions",
		Difficulty:   "intermediate",
		PassingScore: 75,
		Questions: []models.Question{
			{
				ID:       "cf-q1",
				Type:     models.QuestionMultipleChoice,
				Question: "What does a positive NPV indicate?",
				Choices: []string{
					"The project should be rejected",
					"The project adds value and should be accepted",
					"The project breaks even",
					"The discount rate is too high",
				},
				CorrectAnswer: "The project adds value and should be accepted",
				Explanation:   "A positive NPV means the project's cash flows, discounted at the required rate, exceed the initial investment.",
				Topic:         "NPV",
				Difficulty:    "intermediate",
				Points:        25,
			},
			{
				ID:            "cf-q2",
				Type:          models.QuestionCalculation,
				Question:      "A project requires a $1,000 investment and generates $300 per year for 5 years. If the discount rate is 10%, what is the approximate NPV? (Round to nearest dollar)",
				CorrectAnswer: 137,
				Explanation:   "NPV = -1000 + 300/(1.1) + 300/(1.1)^2 + 300/(1.1)^3 + 300/(1.1)^4 + 300/(1.1)^5 = about $137",
				Topic:         "NPV",
				Difficulty:    "intermediate",
				Points:        50,
			},
		},
	},
	{
		ID:           "mk-quiz-1",
		ModuleID:     "markets",
		Title:        "Bonds & Derivatives",
		Description:  "Bond pricing, the price-yield relationship, and option payoffs",
		Difficulty:   "advanced",
		PassingScore: 75,
		Questions: []models.Question{
			{
				ID:       "mk-q1",
				Type:     models.QuestionMultipleChoice,
				Question: "A bond priced above its face value trades at:",
				Choices: []string{
					"A discount",
					"Par",
					"A premium",
					"Its yield to maturity",
				},
				CorrectAnswer: "A premium",
				Explanation:   "When the coupon rate exceeds the market rate, the bond price rises above face value and the bond trades at a premium.",
				Topic:         "Bond Pricing",
				Difficulty:    "advanced",
				Points:        25,
			},
			{
				ID:            "mk-q2",
				Type:          models.QuestionTrueFalse,
				Question:      "Bond prices and market interest rates move in the same direction.",
				Choices:       []string{"True", "False"},
				CorrectAnswer: "False",
				Explanation:   "Prices and yields move inversely: when rates rise, existing bonds with lower coupons are worth less.",
				Topic:         "Bond Pricing",
				Difficulty:    "intermediate",
				Points:        25,
			},
			{
				ID:            "mk-q3",
				Type:          models.QuestionCalculation,
				Question:      "You buy a call option with a strike of $100 for a $5 premium. The stock expires at $120. What is your profit per share?",
				CorrectAnswer: 15,
				Explanation:   "Call profit = max(0, 120 - 100) - 5 = $15.",
				Topic:         "Options",
				Difficulty:    "advanced",
				Points:        25,
			},
			{
				ID:            "mk-q4",
				Type:          models.QuestionCalculation,
				Question:      "The same call expires with the stock at $90. What is your profit per share?",
				CorrectAnswer: -5,
				Explanation:   "The option expires worthless, losing the $5 premium: max(0, 90 - 100) - 5 = -$5.",
				Topic:         "Options",
				Difficulty:    "advanced",
				Points:        25,
			},
		},
	},
}

var modules = []models.Module{
	{
		ID:            "financial-statements",
		Title:         "Financial Statement Analysis",
		Description:   "Master trend, vertical, horizontal, and ratio analysis. Learn DuPont analysis, EPS calculations, and cash flow interpretation.",
		Difficulty:    "beginner",
		EstimatedTime: 180,
		Lessons: []models.Lesson{
			{
				ID:      "trend-analysis",
				Title:   "Trend Analysis",
				Content: "Trend analysis examines financial data over multiple periods to identify patterns, growth rates, and potential issues.",
				Examples: []models.Example{
					{
						Title:       "Revenue Growth",
						Description: "A company's revenue grew from $1M to $1.5M over 3 years.",
						Calculation: "Growth Rate = ((Final - Initial) / Initial) x 100",
						Result:      "Growth Rate = ((1.5M - 1M) / 1M) x 100 = 50% over 3 years",
					},
				},
				EstimatedTime: 20,
			},
			{
				ID:      "ratio-analysis",
				Title:   "Ratio Analysis",
				Content: "Financial ratios help compare companies and assess performance. Key ratios include liquidity, profitability, and efficiency ratios.",
				Examples: []models.Example{
					{
						Title:       "Current Ratio",
						Description: "Measures short-term liquidity",
						Calculation: "Current Ratio = Current Assets / Current Liabilities",
						Result:      "A ratio above 1 indicates good short-term liquidity",
					},
				},
				EstimatedTime: 30,
				Interactive:   true,
			},
		},
		Quizzes: []string{"fs-quiz-1", "fs-quiz-2"},
	},
	{
		ID:            "corporate-finance",
		Title:         "Corporate Finance",
		Description:   "Capital budgeting (NPV, IRR), capital structure (WACC), DCF valuation, and relative valuation methods.",
		Difficulty:    "intermediate",
		EstimatedTime: 240,
		Lessons: []models.Lesson{
			{
				ID:      "npv-irr",
				Title:   "NPV & IRR",
				Content: "Net Present Value (NPV) and Internal Rate of Return (IRR) are key capital budgeting techniques.",
				Examples: []models.Example{
					{
						Title:       "NPV Calculation",
						Description: "A project requires $1000 investment and generates $300/year for 5 years at 10% discount rate.",
						Calculation: "NPV = -1000 + sum(300/(1.1)^t) for t=1 to 5",
						Result:      "NPV = about $137.24 (positive = accept project)",
					},
				},
				EstimatedTime: 25,
				Interactive:   true,
			},
			{
				ID:      "dcf-valuation",
				Title:   "DCF Valuation",
				Content: "Discounted Cash Flow valuation estimates company value by discounting future cash flows.",
				Examples: []models.Example{
					{
						Title:       "FCFF Model",
						Description: "Free Cash Flow to Firm (FCFF) = EBIT(1-Tax) + Depreciation - CapEx - Change in NWC",
					},
				},
				EstimatedTime: 35,
				Interactive:   true,
			},
		},
		Quizzes:       []string{"cf-quiz-1"},
		Prerequisites: []string{"financial-statements"},
	},
	{
		ID:            "markets",
		Title:         "Markets & Instruments",
		Description:   "Bond markets, derivatives (futures, options, swaps), and mutual funds vs ETFs.",
		Difficulty:    "advanced",
		EstimatedTime: 300,
		Lessons: []models.Lesson{
			{
				ID:      "bonds",
				Title:   "Bond Markets",
				Content: "Understand YTM, duration, convexity, and the price-yield relationship.",
				Examples: []models.Example{
					{
						Title:       "YTM Calculation",
						Description: "Yield to Maturity is the total return expected if bond is held to maturity.",
						Calculation: "YTM considers coupon payments, face value, current price, and time to maturity",
					},
				},
				EstimatedTime: 30,
				Interactive:   true,
			},
			{
				ID:      "derivatives",
				Title:   "Derivatives",
				Content: "Futures, options, forwards, and swaps. Learn payoff charts and hedging strategies.",
				Examples: []models.Example{
					{
						Title:       "Call Option Payoff",
						Description: "Call option profit = Max(0, Stock Price - Strike Price) - Premium",
					},
				},
				EstimatedTime: 40,
				Interactive:   true,
			},
		},
		Quizzes:       []string{"mk-quiz-1"},
		Prerequisites: []string{"corporate-finance"},
	},
}

// GetQuiz looks up a quiz by ID.
func GetQuiz(id string) *models.Quiz {
	for i := range quizzes {
		if quizzes[i].ID == id {
			return &quizzes[i]
		}
	}
	return nil
}

// GetModule looks up a module by ID.
func GetModule(id string) *models.Module {
	for i := range modules {
		if modules[i].ID == id {
			return &modules[i]
		}
	}
	return nil
}

// GetQuizzesByModule returns every quiz belonging to a module.
func GetQuizzesByModule(moduleID string) []models.Quiz {
	var result []models.Quiz
	for _, q := range quizzes {
		if q.ModuleID == moduleID {
			result = append(result, q)
		}
	}
	return result
}

// Quizzes returns the full quiz catalog.
func Quizzes() []models.Quiz {
	return quizzes
}

// Modules returns the full module catalog.
func Modules() []models.Module {
	return modules
}
