// Package validate turns raw user text into validated domain values.
//
// Every function is pure. Rejections are *errors.Error values whose Code
// identifies the failed rule and whose Metadata carries the values used by
// the message catalog (Value, Name, Min, Max, Count, Want, Unit).
package validate

import (
	"math"
	"strconv"
	"strings"
)

// Race limits.
const (
	MinNameLength = 1
	MaxNameLength = 5
	MinRounds     = 1
	MaxRounds     = 10
)

// Lotto limits.
const (
	NumberMin   = 1
	NumberMax   = 45
	TicketSize  = 6
	TicketPrice = 1000
	// MaxPurchaseAmount is the most a single run can spend (100,000 tickets).
	MaxPurchaseAmount = 100_000 * TicketPrice
)

// parseInteger reports whether raw is an exact integer. Surrounding
// whitespace, a leading sign and an all-zero fraction ("3.0", "3.") are
// accepted. Values beyond the int range saturate so range checks reject them.
func parseInteger(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	if whole, frac, found := strings.Cut(s, "."); found {
		if strings.Trim(frac, "0") != "" {
			return 0, false
		}
		s = whole
	}
	digits := strings.TrimLeft(s, "+-")
	if len(s)-len(digits) > 1 || digits == "" {
		return 0, false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// Only range errors remain after the digit scan.
		if strings.HasPrefix(s, "-") {
			return math.MinInt, true
		}
		return math.MaxInt, true
	}
	if n > math.MaxInt {
		return math.MaxInt, true
	}
	if n < math.MinInt {
		return math.MinInt, true
	}
	return int(n), true
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
