package session

import (
	"errors"
	"fmt"

	"bmi-tool/internal/bmi"
)

var (
	// ErrNotNumber reports input that is not a decimal number.
	ErrNotNumber = errors.New("please enter numbers in a valid format")
	// ErrNotPositive reports a height or weight that is zero or negative.
	ErrNotPositive = errors.New("height and weight must both be greater than 0")
	// ErrCalculation reports that the calculator produced no result.
	ErrCalculation = errors.New("calculation failed, please check your input")
)

// InputError names the field that failed validation.
type InputError struct {
	Field string // "height" or "weight"
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// ValidateInput checks that both texts are finite decimal numbers greater
// than zero. A not-a-number failure on either field takes precedence over a
// positivity failure.
func ValidateInput(heightText, weightText string) (height, weight float64, err error) {
	height, err = bmi.ParseDecimal(heightText)
	if err != nil {
		return 0, 0, &InputError{Field: "height", Err: ErrNotNumber}
	}
	weight, err = bmi.ParseDecimal(weightText)
	if err != nil {
		return 0, 0, &InputError{Field: "weight", Err: ErrNotNumber}
	}

	if height <= 0 {
		return 0, 0, &InputError{Field: "height", Err: ErrNotPositive}
	}
	if weight <= 0 {
		return 0, 0, &InputError{Field: "weight", Err: ErrNotPositive}
	}
	return height, weight, nil
}

// IsInputError reports whether err came from ValidateInput.
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}
