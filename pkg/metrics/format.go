package metrics

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// brl renders numbers with pt-BR grouping ("1.234").
var brl = message.NewPrinter(language.BrazilianPortuguese)

// formatValue renders a metric value for display. Currency metrics use
// the dashboard's cent-free BRL format ("R$ 4.500"); count metrics
// render the rounded integer.
func formatValue(v float64, currency bool) string {
	if currency {
		return brl.Sprintf("R$ %v", number.Decimal(v, number.MaxFractionDigits(0)))
	}
	return strconv.Itoa(int(math.Round(v)))
}
