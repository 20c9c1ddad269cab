package math

import (
	"errors"
	"fmt"
)

// ErrDegenerate is wrapped by every DomainError.
var ErrDegenerate = errors.New("degenerate input")

// DomainError reports an input outside an operation's domain, such as a
// zero-length rotation axis. It is returned instead of letting NaNs into
// camera or transform state.
type DomainError struct {
	Op     string
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// Unwrap returns ErrDegenerate.
func (e *DomainError) Unwrap() error {
	return ErrDegenerate
}
