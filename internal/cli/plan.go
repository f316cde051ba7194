package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mmynk/investcalc/internal/calculator"
)

// loadPlan reads an investment plan from a YAML file.
// Keys missing from the file keep the form defaults.
//
//	initial_investment: 10000
//	annual_investment: 1200
//	expected_return: 6.5
//	duration: 20
func loadPlan(path string) (calculator.EnteredData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return calculator.EnteredData{}, fmt.Errorf("failed to read plan: %w", err)
	}

	entered := calculator.DefaultEnteredData()
	if err := yaml.Unmarshal(data, &entered); err != nil {
		return calculator.EnteredData{}, fmt.Errorf("failed to parse plan %s: %w", path, err)
	}
	return entered, nil
}
