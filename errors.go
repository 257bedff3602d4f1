package go_bsoption

import (
	"errors"
	"fmt"
)

// ErrDomain is matched by every *DomainError through errors.Is.
var ErrDomain = errors.New("parameter outside the domain of the Black-Scholes formula")

// ErrNumericOverflow is matched by every *NumericOverflowError through errors.Is.
var ErrNumericOverflow = errors.New("numeric overflow")

// DomainError reports a parameter for which the closed form is undefined.
type DomainError struct {
	Param string
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Param, e.Value)
}

func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}

// NumericOverflowError reports an intermediate quantity that left the
// float64 range for otherwise valid inputs.
type NumericOverflowError struct {
	Quantity string
	Value    float64
}

func (e *NumericOverflowError) Error() string {
	return fmt.Sprintf("%s overflowed: %v", e.Quantity, e.Value)
}

func (e *NumericOverflowError) Is(target error) bool {
	return target == ErrNumericOverflow
}
