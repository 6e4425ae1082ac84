package engine

import (
	"fmt"
	"time"

	"github.com/roach88/flooring/internal/model"
)

// Result is the outcome kind of an engine operation.
type Result int

const (
	// Success means the operation was applied.
	Success Result = iota

	// Fail means a well-formed input broke a business rule.
	Fail

	// Invalid means the order date could not be parsed. No business rule
	// was checked.
	Invalid
)

func (r Result) String() string {
	switch r {
	case Success:
		return "Success"
	case Fail:
		return "Fail"
	case Invalid:
		return "Invalid"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// MarshalText renders the result by name in JSON output.
func (r Result) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// ParseResult parses the name of a result, as written by String.
func ParseResult(s string) (Result, error) {
	switch s {
	case "Success":
		return Success, nil
	case "Fail":
		return Fail, nil
	case "Invalid":
		return Invalid, nil
	}
	return 0, fmt.Errorf("unknown result %q", s)
}

// Response is the outcome shared by every operation.
type Response struct {
	Result  Result    `json:"result"`
	Message string    `json:"message,omitempty"`
	Date    time.Time `json:"date"`
}

// OK reports whether the result is Success.
func (r Response) OK() bool {
	return r.Result == Success
}

// AddOrderResponse carries the order created by AddOrder.
type AddOrderResponse struct {
	Response
	Order model.Order `json:"order"`
}

// EditOrderResponse carries the replacement order written by EditOrder.
type EditOrderResponse struct {
	Response
	Order model.Order `json:"order"`
}

// RemoveOrderResponse carries the number of the removed order.
type RemoveOrderResponse struct {
	Response
	OrderNumber int `json:"order_number,omitempty"`
}

// LookupResponse carries every order of the looked-up date.
type LookupResponse struct {
	Response
	Orders []model.Order `json:"orders"`
}

func (r *Response) fail(msg string) {
	r.Result = Fail
	r.Message = msg
}
