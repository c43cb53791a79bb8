package format

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("es-CO"))

// Price renders a price the way the floor staff reads it: "$" plus es-CO
// digit grouping with no fraction digits, e.g. 12500 -> "$12.500".
func Price(v float64) string {
	return printer.Sprintf("$%v", number.Decimal(v,
		number.MinFractionDigits(0),
		number.MaxFractionDigits(0),
	))
}

// Clock renders an RFC3339 timestamp as a 24h HH:MM clock. Malformed input
// yields the empty string; callers fall back to showing the raw value.
func Clock(timestamp string) string {
	t, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return ""
	}
	return t.Format("15:04")
}
