// Package render formats projections for people and for machines.
package render

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mmynk/investcalc/internal/calculator"
	"github.com/mmynk/investcalc/internal/models"
)

const noResults = "No results. Enter a duration of at least one year."

// Format selects the locale and currency used for money values.
type Format struct {
	Language language.Tag
	Currency currency.Unit
}

// DefaultFormat is US English with US dollars.
func DefaultFormat() Format {
	return Format{Language: language.AmericanEnglish, Currency: currency.USD}
}

// ParseFormat builds a Format from a BCP 47 language tag and an ISO 4217 code.
func ParseFormat(locale, code string) (Format, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return Format{}, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return Format{}, fmt.Errorf("invalid currency %q: %w", code, err)
	}
	return Format{Language: tag, Currency: unit}, nil
}

// Money formats v as a localized currency amount, e.g. "$ 1,210.00".
func (f Format) Money(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return f.Currency.String() + " " + strconv.FormatFloat(v, 'f', -1, 64)
	}
	p := message.NewPrinter(f.Language)
	return p.Sprint(currency.Symbol(f.Currency.Amount(v)))
}

// Table writes the projection as an aligned table followed by a summary line.
func Table(w io.Writer, records []models.YearRecord, f Format) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, noResults)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Year\tInvestment Value\tInterest (Year)\tTotal Interest\tInvested Capital")
	for _, r := range records {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			r.Year,
			f.Money(r.ValueEndOfYear),
			f.Money(r.Interest),
			f.Money(r.TotalInterest),
			f.Money(r.TotalAmountInvested),
		)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}

	_, err := fmt.Fprintf(w, "\n%s\n", Headline(records, f))
	return err
}

// Headline summarizes the final year in one sentence, e.g.
// "After 2 years: $ 1,210.00 ($ 210.00 interest on $ 1,000.00 invested)".
func Headline(records []models.YearRecord, f Format) string {
	if len(records) == 0 {
		return noResults
	}
	s := calculator.Summarize(records)
	return fmt.Sprintf("After %d %s: %s (%s interest on %s invested)",
		s.Years, plural(s.Years, "year", "years"),
		f.Money(s.FinalValue),
		f.Money(s.TotalInterest),
		f.Money(s.TotalInvested),
	)
}

// Row is a YearRecord with money rounded to cents, ready for JSON output.
type Row struct {
	Year                int    `json:"year"`
	Interest            string `json:"interest"`
	ValueEndOfYear      string `json:"value_end_of_year"`
	AnnualInvestment    string `json:"annual_investment"`
	TotalInterest       string `json:"total_interest"`
	TotalAmountInvested string `json:"total_amount_invested"`
}

// Rows converts records to Rows, rounding half away from zero to two decimals.
func Rows(records []models.YearRecord) []Row {
	rows := make([]Row, len(records))
	for i, r := range records {
		rows[i] = Row{
			Year:                r.Year,
			Interest:            cents(r.Interest),
			ValueEndOfYear:      cents(r.ValueEndOfYear),
			AnnualInvestment:    cents(r.AnnualInvestment),
			TotalInterest:       cents(r.TotalInterest),
			TotalAmountInvested: cents(r.TotalAmountInvested),
		}
	}
	return rows
}

// SummaryRow is a Summary with money rounded to cents.
type SummaryRow struct {
	Years         int    `json:"years"`
	FinalValue    string `json:"final_value"`
	TotalInterest string `json:"total_interest"`
	TotalInvested string `json:"total_invested"`
}

// Summarize returns the rounded headline numbers of records.
func Summarize(records []models.YearRecord) SummaryRow {
	s := calculator.Summarize(records)
	return SummaryRow{
		Years:         s.Years,
		FinalValue:    cents(s.FinalValue),
		TotalInterest: cents(s.TotalInterest),
		TotalInvested: cents(s.TotalInvested),
	}
}

// cents renders v with exactly two decimals. decimal.NewFromFloat panics on
// NaN and infinities, so those are passed through as text.
func cents(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
