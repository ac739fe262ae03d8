package validate

import (
	"strings"
	"unicode/utf8"

	apperrors "github.com/louisbranch/minigames/internal/platform/errors"
)

// isNameDelimiter matches the ASCII comma and the full-width comma.
func isNameDelimiter(r rune) bool {
	return r == ',' || r == '，'
}

// ParticipantNames splits raw on commas and returns the trimmed names in input
// order. Repeated names are rejected rather than merged.
func ParticipantNames(raw string) ([]string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, apperrors.New(apperrors.CodeEmptyInput, "participant names are empty")
	}

	var names []string
	for _, token := range strings.FieldsFunc(trimmed, isNameDelimiter) {
		if name := strings.TrimSpace(token); name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, apperrors.New(apperrors.CodeNoNames, "no participant names after splitting")
	}

	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if n := utf8.RuneCountInString(name); n < MinNameLength || n > MaxNameLength {
			return nil, apperrors.WithMetadata(apperrors.CodeNameLengthViolation, "participant name length out of range", map[string]string{
				"Name": name,
				"Min":  itoa(MinNameLength),
				"Max":  itoa(MaxNameLength),
			})
		}
		if _, dup := seen[name]; dup {
			return nil, apperrors.WithMetadata(apperrors.CodeDuplicateName, "participant name repeated", map[string]string{
				"Name": name,
			})
		}
		seen[name] = struct{}{}
	}
	return names, nil
}

// RoundCount parses the number of race rounds.
func RoundCount(raw string) (int, error) {
	return intInRange(raw, MinRounds, MaxRounds, "round count")
}

func intInRange(raw string, min, max int, what string) (int, error) {
	value := strings.TrimSpace(raw)
	n, ok := parseInteger(value)
	if !ok {
		return 0, apperrors.WithMetadata(apperrors.CodeNotInteger, what+" is not an integer", map[string]string{
			"Value": value,
		})
	}
	if n < min || n > max {
		return 0, apperrors.WithMetadata(apperrors.CodeOutOfRange, what+" out of range", map[string]string{
			"Value": value,
			"Min":   itoa(min),
			"Max":   itoa(max),
		})
	}
	return n, nil
}
