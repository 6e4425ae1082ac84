package codec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Separator joins the fields of one record line.
const Separator = "~"

// ErrMalformed matches decode errors caused by a wrong field count.
var ErrMalformed = errors.New("malformed record")

// Codec converts records of type T to and from one text line.
type Codec[T any] interface {
	// Header is the first line of every file holding T records.
	Header() string

	// Encode renders r as a single line without a trailing newline.
	Encode(r T) string

	// Decode parses a line produced by Encode.
	Decode(line string) (T, error)
}

// FieldCountError reports a line with the wrong number of fields.
type FieldCountError struct {
	Want int
	Got  int
}

func (e *FieldCountError) Error() string {
	return fmt.Sprintf("malformed record: want %d fields, got %d", e.Want, e.Got)
}

// Is makes FieldCountError match ErrMalformed.
func (e *FieldCountError) Is(target error) bool {
	return target == ErrMalformed
}

// FieldError reports a field whose value could not be parsed.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: cannot parse %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// IsMalformed reports whether err is a tolerated field-count mismatch.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformed)
}

// FormatDecimal renders d with its own scale, so "515.00" stays "515.00"
// and "61.875000" stays "61.875000".
func FormatDecimal(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

func split(line string, want int) ([]string, error) {
	fields := strings.Split(line, Separator)
	if len(fields) != want {
		return nil, &FieldCountError{Want: want, Got: len(fields)}
	}
	return fields, nil
}

func join(fields ...string) string {
	return strings.Join(fields, Separator)
}

func parseDecimal(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, &FieldError{Field: field, Value: value, Err: err}
	}
	return d, nil
}

func parseInt(field, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &FieldError{Field: field, Value: value, Err: err}
	}
	return n, nil
}

// decimalFields parses a run of decimal fields in order, stopping at the
// first failure.
func decimalFields(names []string, values []string) ([]decimal.Decimal, error) {
	out := make([]decimal.Decimal, len(names))
	for i, name := range names {
		d, err := parseDecimal(name, values[i])
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}
