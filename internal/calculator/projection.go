package calculator

import (
	"math"

	"github.com/mmynk/investcalc/internal/models"
)

// Project computes the year-by-year growth of an investment plan.
// Based on the algorithm: value_n = value_(n-1) × (1 + return/100) + annual_investment
//
// The function is total: any numeric input yields a result, Duration <= 0 yields
// an empty ledger and a negative ExpectedReturn decays the value without clamping.
func Project(input models.InvestmentInput) []models.YearRecord {
	if input.Duration <= 0 {
		return []models.YearRecord{}
	}

	records := make([]models.YearRecord, 0, input.Duration)
	investmentValue := input.InitialInvestment

	for year := 1; year <= input.Duration; year++ {
		interestEarnedInYear := investmentValue * (input.ExpectedReturn / 100)
		investmentValue += interestEarnedInYear + input.AnnualInvestment

		// Principal contributed so far; everything above it is interest.
		invested := input.InitialInvestment + input.AnnualInvestment*float64(year)
		totalInterest := investmentValue - input.AnnualInvestment*float64(year) - input.InitialInvestment

		records = append(records, models.YearRecord{
			Year:                year,
			Interest:            interestEarnedInYear,
			ValueEndOfYear:      investmentValue,
			AnnualInvestment:    input.AnnualInvestment,
			TotalInterest:       totalInterest,
			TotalAmountInvested: invested,
		})
	}

	return records
}

// Summarize returns the headline numbers of a projection, taken from its last year.
func Summarize(records []models.YearRecord) models.Summary {
	if len(records) == 0 {
		return models.Summary{}
	}
	last := records[len(records)-1]
	return models.Summary{
		Years:         last.Year,
		FinalValue:    last.ValueEndOfYear,
		TotalInterest: last.TotalInterest,
		TotalInvested: last.TotalAmountInvested,
	}
}

// Finite reports whether every amount in records is a finite number.
// Extreme inputs can overflow the compounding loop to ±Inf and then NaN.
func Finite(records []models.YearRecord) bool {
	for _, r := range records {
		for _, v := range []float64{r.Interest, r.ValueEndOfYear, r.AnnualInvestment, r.TotalInterest, r.TotalAmountInvested} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}
