// Package errors provides structured error handling with i18n support.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Name input errors
	CodeEmptyInput          Code = "EMPTY_INPUT"
	CodeNoNames             Code = "NO_NAMES"
	CodeNameLengthViolation Code = "NAME_LENGTH_VIOLATION"
	CodeDuplicateName       Code = "DUPLICATE_NAME"

	// Number input errors
	CodeNotInteger      Code = "NOT_INTEGER"
	CodeOutOfRange      Code = "OUT_OF_RANGE"
	CodeWrongCount      Code = "WRONG_COUNT"
	CodeDuplicateNumber Code = "DUPLICATE_NUMBER"
	CodeOverlapsWinning Code = "OVERLAPS_WINNING"

	// Purchase errors
	CodeBelowMinimum Code = "BELOW_MINIMUM"
	CodeNotAMultiple Code = "NOT_A_MULTIPLE"

	// CodeInvalidArgument marks a precondition violated inside a simulation
	// or evaluation. Validated input never produces it.
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
)

// Codes returns every known code except CodeUnknown, in declaration order.
func Codes() []Code {
	return []Code{
		CodeEmptyInput,
		CodeNoNames,
		CodeNameLengthViolation,
		CodeDuplicateName,
		CodeNotInteger,
		CodeOutOfRange,
		CodeWrongCount,
		CodeDuplicateNumber,
		CodeOverlapsWinning,
		CodeBelowMinimum,
		CodeNotAMultiple,
		CodeInvalidArgument,
	}
}

