package validate

import (
	"slices"
	"strings"

	apperrors "github.com/louisbranch/minigames/internal/platform/errors"
)

// WinningNumbers parses the six drawn numbers and returns them sorted.
func WinningNumbers(raw []string) ([]int, error) {
	if len(raw) != TicketSize {
		return nil, apperrors.WithMetadata(apperrors.CodeWrongCount, "wrong number of winning numbers", map[string]string{
			"Want":  itoa(TicketSize),
			"Count": itoa(len(raw)),
		})
	}

	numbers := make([]int, 0, TicketSize)
	for _, value := range raw {
		n, err := intInRange(value, NumberMin, NumberMax, "winning number")
		if err != nil {
			return nil, err
		}
		numbers = append(numbers, n)
	}

	slices.Sort(numbers)
	for i := 1; i < len(numbers); i++ {
		if numbers[i] == numbers[i-1] {
			return nil, apperrors.WithMetadata(apperrors.CodeDuplicateNumber, "winning number repeated", map[string]string{
				"Value": itoa(numbers[i]),
			})
		}
	}
	return numbers, nil
}

// SplitNumbers splits a comma separated list such as "1, 2, 3" into its raw
// values for WinningNumbers. Empty entries are kept so the count check sees
// them.
func SplitNumbers(raw string) []string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(trimmed, "，", ","), ",")
}

// BonusNumber parses the bonus ball, which must not be one of winning.
func BonusNumber(raw string, winning []int) (int, error) {
	n, err := intInRange(raw, NumberMin, NumberMax, "bonus number")
	if err != nil {
		return 0, err
	}
	if slices.Contains(winning, n) {
		return 0, apperrors.WithMetadata(apperrors.CodeOverlapsWinning, "bonus number is a winning number", map[string]string{
			"Value": itoa(n),
		})
	}
	return n, nil
}

// PurchaseAmount parses the money spent on tickets. It must buy at least one
// ticket and leave no change.
func PurchaseAmount(raw string) (int, error) {
	value := strings.TrimSpace(raw)
	n, ok := parseInteger(value)
	if !ok {
		return 0, apperrors.WithMetadata(apperrors.CodeNotInteger, "purchase amount is not an integer", map[string]string{
			"Value": value,
		})
	}
	if n < TicketPrice {
		return 0, apperrors.WithMetadata(apperrors.CodeBelowMinimum, "purchase amount below ticket price", map[string]string{
			"Value": value,
			"Min":   itoa(TicketPrice),
		})
	}
	if n%TicketPrice != 0 {
		return 0, apperrors.WithMetadata(apperrors.CodeNotAMultiple, "purchase amount not a multiple of ticket price", map[string]string{
			"Value": value,
			"Unit":  itoa(TicketPrice),
		})
	}
	return n, nil
}

// PurchaseAmountAtMost parses like PurchaseAmount and additionally rejects
// amounts above max with CodeOutOfRange.
func PurchaseAmountAtMost(raw string, max int) (int, error) {
	n, err := PurchaseAmount(raw)
	if err != nil {
		return 0, err
	}
	if n > max {
		return 0, apperrors.WithMetadata(apperrors.CodeOutOfRange, "purchase amount above limit", map[string]string{
			"Value": strings.TrimSpace(raw),
			"Min":   itoa(TicketPrice),
			"Max":   itoa(max),
		})
	}
	return n, nil
}
