package models

// InvestmentInput is a plan submitted for projection.
// All fields are already numeric; string coercion happens upstream.
type InvestmentInput struct {
	// InitialInvestment is the capital invested before the first year.
	InitialInvestment float64 `json:"initial_investment"`

	// AnnualInvestment is contributed at the end of every year.
	AnnualInvestment float64 `json:"annual_investment"`

	// ExpectedReturn is the yearly return as a percentage (5 means 5%).
	// Negative values model decay.
	ExpectedReturn float64 `json:"expected_return"`

	// Duration is the number of years to project.
	Duration int `json:"duration"`
}

// YearRecord is one year's snapshot within a projection.
// Records are produced in ascending year order and never mutated.
type YearRecord struct {
	// Year is 1-based.
	Year int `json:"year"`

	// Interest is the interest earned during this year only.
	Interest float64 `json:"interest"`

	// ValueEndOfYear is the investment value after interest and the contribution.
	ValueEndOfYear float64 `json:"value_end_of_year"`

	// AnnualInvestment is the contribution made this year.
	AnnualInvestment float64 `json:"annual_investment"`

	// TotalInterest is all interest earned up to and including this year.
	TotalInterest float64 `json:"total_interest"`

	// TotalAmountInvested is the principal contributed so far
	// (initial investment plus every annual contribution).
	TotalAmountInvested float64 `json:"total_amount_invested"`
}

// Summary holds the headline numbers of a projection.
// It is the zero value for an empty projection.
type Summary struct {
	Years         int     `json:"years"`
	FinalValue    float64 `json:"final_value"`
	TotalInterest float64 `json:"total_interest"`
	TotalInvested float64 `json:"total_invested"`
}
