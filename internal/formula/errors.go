package formula

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrDivisionByZero is returned when a formula denominator evaluates to zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrDomain is returned when an operand is outside the domain of an operation,
	// such as the square root of a negative number.
	ErrDomain = errors.New("math domain error")
	// ErrInvalidInput is returned by optional precondition checks.
	ErrInvalidInput = errors.New("invalid input")
)

// Param is a named scalar input reported alongside a failed computation.
type Param struct {
	Name  string
	Value float64
}

// P builds a Param.
func P(name string, value float64) Param {
	return Param{Name: name, Value: value}
}

// Error reports the failing operation together with the inputs it was called with.
type Error struct {
	Op     string
	Inputs []Param
	Err    error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	if len(e.Inputs) > 0 {
		b.WriteString(" (")
		for i, p := range e.Inputs {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(p.Name)
			b.WriteByte('=')
			b.WriteString(strconv.FormatFloat(p.Value, 'g', -1, 64))
		}
		b.WriteByte(')')
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap attaches the operation name and inputs to err. It returns nil for a nil err.
func Wrap(op string, err error, inputs ...Param) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Inputs: inputs, Err: err}
}
