package engine

import (
	"errors"
	"fmt"
)

// OperationError reports a storage fault raised while an operation was
// being applied. The accompanying response describes what the engine had
// decided before the fault.
type OperationError struct {
	// Op names the operation, e.g. "add".
	Op string

	// Date is the raw order date the operation ran against.
	Date string

	// OrderNumber is set when the fault concerns one order.
	OrderNumber int

	Err error
}

func (e *OperationError) Error() string {
	if e.OrderNumber > 0 {
		return fmt.Sprintf("%s order %d on %s: %v", e.Op, e.OrderNumber, e.Date, e.Err)
	}
	return fmt.Sprintf("%s on %s: %v", e.Op, e.Date, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// IsOperationError reports whether err wraps an *OperationError.
func IsOperationError(err error) bool {
	var oe *OperationError
	return errors.As(err, &oe)
}
