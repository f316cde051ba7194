package calculator

import (
	"math"
	"strconv"
	"strings"

	"github.com/mmynk/investcalc/internal/models"
)

// EnteredData is the raw investment form as typed by the user.
type EnteredData struct {
	InitialInvestment string `json:"initial_investment" yaml:"initial_investment"`
	AnnualInvestment  string `json:"annual_investment" yaml:"annual_investment"`
	ExpectedReturn    string `json:"expected_return" yaml:"expected_return"`
	Duration          string `json:"duration" yaml:"duration"`
}

// DefaultEnteredData returns the values the form starts with.
func DefaultEnteredData() EnteredData {
	return EnteredData{
		InitialInvestment: "0",
		AnnualInvestment:  "0",
		ExpectedReturn:    "5",
		Duration:          "10",
	}
}

// ParseInput coerces the entered strings into an InvestmentInput.
// Anything that is not a finite number becomes 0. A fractional duration is
// rounded up so that "2.5" years projects three years.
func ParseInput(data EnteredData) models.InvestmentInput {
	return models.InvestmentInput{
		InitialInvestment: parseNumber(data.InitialInvestment),
		AnnualInvestment:  parseNumber(data.AnnualInvestment),
		ExpectedReturn:    parseNumber(data.ExpectedReturn),
		Duration:          parseYears(data.Duration),
	}
}

func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// MaxYears is the longest projection accepted from user input.
const MaxYears = 1000

func parseYears(s string) int {
	v := parseNumber(s)
	if v <= 0 {
		return 0
	}
	years := math.Ceil(v)
	if years > MaxYears {
		return MaxYears
	}
	return int(years)
}
