package operators

import (
	"fmt"

	"solis/runtime-go/pkg/runtime"
)

// TypeErrorKind discriminates the two ways an operand set can be refused.
type TypeErrorKind string

const (
	// TypeErrorUnsupported: the operator does not accept the type at all,
	// independent of the other operand.
	TypeErrorUnsupported TypeErrorKind = "UnsupportedTypeError"
	// TypeErrorMismatch: both types are individually acceptable to the
	// operator but differ from each other.
	TypeErrorMismatch TypeErrorKind = "TypeMismatchError"
)

// TypeError is the single error kind the engine raises for refused operand
// types. The host translates it into the language's fatal-error channel; the
// engine never recovers from one.
type TypeError struct {
	ErrKind  TypeErrorKind
	Operator string
	// Tag names the refused type for Unsupported errors.
	Tag string
	// LeftTag and RightTag name the differing types (or class names, for
	// object comparisons) for Mismatch errors.
	LeftTag  string
	RightTag string
}

func (e *TypeError) Error() string {
	switch e.ErrKind {
	case TypeErrorUnsupported:
		return fmt.Sprintf("unsupported operand type %s for operator %s", e.Tag, e.Operator)
	case TypeErrorMismatch:
		return fmt.Sprintf("type mismatch for operator %s: %s vs %s", e.Operator, e.LeftTag, e.RightTag)
	default:
		return fmt.Sprintf("type error for operator %s", e.Operator)
	}
}

func newUnsupportedError(op string, tag runtime.Kind) *TypeError {
	return &TypeError{ErrKind: TypeErrorUnsupported, Operator: op, Tag: tag.String()}
}

func newMismatchError(op string, left runtime.Kind, right runtime.Kind) *TypeError {
	return &TypeError{ErrKind: TypeErrorMismatch, Operator: op, LeftTag: left.String(), RightTag: right.String()}
}

func newClassMismatchError(op string, leftClass string, rightClass string) *TypeError {
	return &TypeError{ErrKind: TypeErrorMismatch, Operator: op, LeftTag: leftClass, RightTag: rightClass}
}

// arithmeticErrorKind covers the value-level failures arithmetic can raise.
// They are distinct from TypeError: the operand types were acceptable.
type arithmeticErrorKind string

const (
	arithmeticDivisionByZero arithmeticErrorKind = "DivisionByZeroError"
	arithmeticNegativeShift  arithmeticErrorKind = "NegativeShiftError"
)

// ArithmeticError reports division/modulo by zero and negative shift counts.
type ArithmeticError struct {
	ErrKind arithmeticErrorKind
	message string
	Shift   int64
}

func (e *ArithmeticError) Error() string {
	return e.message
}

func newDivisionByZeroError() *ArithmeticError {
	return &ArithmeticError{ErrKind: arithmeticDivisionByZero, message: "division by zero"}
}

func newNegativeShiftError(shift int64) *ArithmeticError {
	return &ArithmeticError{
		ErrKind: arithmeticNegativeShift,
		message: fmt.Sprintf("shift count %d is negative", shift),
		Shift:   shift,
	}
}

// internalError flags engine misuse: a coercion or operator the rule tables
// never sanction. It indicates a bug in the caller, not a user program error.
type internalError struct {
	message string
}

func (e *internalError) Error() string {
	return e.message
}

func newInternalError(format string, args ...any) *internalError {
	return &internalError{message: fmt.Sprintf(format, args...)}
}
