package order

import (
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrDuplicateCode     = errors.New("order code already exists")
	ErrUnknownStatus     = errors.New("unknown order status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrOrderFinalized    = errors.New("order is finalized")
	ErrValidation        = errors.New("validation failed")
	ErrNotPreparing      = errors.New("order is not being prepared")
	ErrUnknownProduct    = errors.New("product not in order")
	ErrOverScan          = errors.New("scanned quantity exceeds requested quantity")
	ErrScanIncomplete    = errors.New("not all items are scanned")
	ErrCarrierRequired   = errors.New("carrier is not assigned")
)

type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid status transition: %s -> %s", e.From, e.To)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func UnknownStatusError(s Status) error {
	return fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

func lineField(i int, name string) string {
	return fmt.Sprintf("products[%d].%s", i, name)
}
