package errors

import "fmt"

type InvalidStateError struct {
	msg string
	err error
}

func NewInvalidStateError(msg string) *InvalidStateError {
	return &InvalidStateError{msg: msg}
}

// WrapInvalidStateError keeps the underlying validation error reachable via errors.Is/As.
func WrapInvalidStateError(msg string, err error) *InvalidStateError {
	return &InvalidStateError{msg: msg, err: err}
}

func (e *InvalidStateError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return fmt.Sprintf("%s: %v", e.msg, e.err)
}

func (e *InvalidStateError) Unwrap() error {
	return e.err
}

type NilArgumentError struct {
	argument string
}

func NewNilArgumentError(argument string) *NilArgumentError {
	return &NilArgumentError{argument: argument}
}

func (e *NilArgumentError) Error() string {
	return fmt.Sprintf("argument '%s' must not be nil", e.argument)
}
