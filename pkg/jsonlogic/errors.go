package jsonlogic

import (
	"errors"
	"fmt"
)

// ErrUnimplementedOperator indicates a logic node names an operator that
// is not registered as custom, array-context or built-in.
var ErrUnimplementedOperator = errors.New("unimplemented operator")

// UnimplementedOperatorError carries the name of the unknown operator.
// It matches ErrUnimplementedOperator with errors.Is.
type UnimplementedOperatorError struct {
	// Operator is the first key of the offending logic node.
	Operator string
}

// Error implements the error interface.
func (e *UnimplementedOperatorError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnimplementedOperator, e.Operator)
}

// Unwrap returns ErrUnimplementedOperator for errors.Is support.
func (e *UnimplementedOperatorError) Unwrap() error {
	return ErrUnimplementedOperator
}

// OperatorError wraps an error returned by a custom operator.
type OperatorError struct {
	// Operator is the name the operator was registered under.
	Operator string
	// Err is the error the operator returned.
	Err error
}

// Error implements the error interface.
func (e *OperatorError) Error() string {
	return fmt.Sprintf("operator %s: %v", e.Operator, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *OperatorError) Unwrap() error {
	return e.Err
}

// PanicError captures a panic raised inside a custom operator.
// It includes the stack trace for debugging.
type PanicError struct {
	// Operator is the name of the operator that panicked.
	Operator string
	// Value is the value passed to panic().
	Value any
	// Stack is the full stack trace at the point of panic.
	Stack string
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("operator %s panicked: %v", e.Operator, e.Value)
}
