package pac

import (
	"errors"
	"fmt"
)

// Kind names the family of a numbering contract, for diagnostics.
type Kind string

const (
	KindException Kind = "exception"
	KindInterrupt Kind = "interrupt"
	KindPriority  Kind = "priority"
	KindHartId    Kind = "hart id"
)

// ErrUnrecognizedNumber matches every *NumberError with errors.Is.
var ErrUnrecognizedNumber = errors.New("unrecognized number")

// NumberError is returned by FromNumber when no variant maps to the number.
// Number is the rejected input, unchanged. It is wider than any contract
// number so that raw register fields too large for a contract are kept whole.
type NumberError struct {
	Kind   Kind
	Number uint64
}

func NewNumberError(kind Kind, n uint64) *NumberError {
	return &NumberError{Kind: kind, Number: n}
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("unrecognized %s number %d", e.Kind, e.Number)
}

func (e *NumberError) Is(target error) bool {
	return target == ErrUnrecognizedNumber
}

// RejectedNumber returns the number carried by a *NumberError anywhere in the chain of err.
func RejectedNumber(err error) (uint64, bool) {
	var nerr *NumberError
	if errors.As(err, &nerr) {
		return nerr.Number, true
	}
	return 0, false
}
