package display

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// Score formats a score the way players see it: rounded to a whole number,
// halves rounding up, with thousands separators.
func Score(f float64) string {
	return printer.Sprint(number.Decimal(math.Floor(f+0.5), number.MaxFractionDigits(0)))
}

// Amount formats a price or income rate with up to two decimals.
func Amount(f float64) string {
	return printer.Sprint(number.Decimal(f, number.MaxFractionDigits(2)))
}
