package operators

import "solis/runtime-go/pkg/runtime"

// outcome is the rule tables' verdict for an operand tag pair. Under Strict
// the verdict is a function of tags alone; operand values never influence it.
type outcome int

const (
	outcomeCompute outcome = iota
	outcomeWidenLeft
	outcomeWidenRight
	outcomeReject
)

func isNumericTag(k runtime.Kind) bool {
	return k == runtime.KindInteger || k == runtime.KindFloat
}

// isOrderableTag reports whether relational operators accept the tag at all
// under strict rules. String, null, resource, array, and object values carry
// no sanctioned ordering.
func isOrderableTag(k runtime.Kind) bool {
	switch k {
	case runtime.KindInteger, runtime.KindFloat, runtime.KindBool:
		return true
	default:
		return false
	}
}

// numericOutcome resolves the int→float widening rule for a numeric tag pair.
func numericOutcome(left runtime.Kind, right runtime.Kind) outcome {
	if left == runtime.KindInteger && right == runtime.KindFloat {
		return outcomeWidenLeft
	}
	if left == runtime.KindFloat && right == runtime.KindInteger {
		return outcomeWidenRight
	}
	return outcomeCompute
}

// strictRelationalRule decides <, <=, >, >=, and <=> for a tag pair.
//
// Equal non-orderable tags are refused as unsupported: the operator does not
// order that type at all. A non-orderable tag paired with an orderable one is
// a mismatch. Two differing non-orderable tags report the left operand's type
// as unsupported.
func strictRelationalRule(op string, left runtime.Kind, right runtime.Kind) (outcome, *TypeError) {
	if isNumericTag(left) && isNumericTag(right) {
		return numericOutcome(left, right), nil
	}
	if left == runtime.KindBool && right == runtime.KindBool {
		return outcomeCompute, nil
	}
	if left == right {
		return outcomeReject, newUnsupportedError(op, left)
	}
	if !isOrderableTag(left) && !isOrderableTag(right) {
		return outcomeReject, newUnsupportedError(op, left)
	}
	return outcomeReject, newMismatchError(op, left, right)
}

// strictEqualityRule decides == and != for a tag pair. Arrays are refused on
// either side before any mismatch framing; otherwise tags must be equal after
// int→float widening. Object pairs pass the tag check here and are subject to
// the class check in the structural comparator.
func strictEqualityRule(op string, left runtime.Kind, right runtime.Kind) (outcome, *TypeError) {
	if left == runtime.KindArray || right == runtime.KindArray {
		return outcomeReject, newUnsupportedError(op, runtime.KindArray)
	}
	if isNumericTag(left) && isNumericTag(right) {
		return numericOutcome(left, right), nil
	}
	if left == right {
		return outcomeCompute, nil
	}
	return outcomeReject, newMismatchError(op, left, right)
}

// strictArithmeticRule decides +, -, *, /, %, and ** for a tag pair. Only
// numeric tags are accepted; + additionally accepts two arrays (handled by the
// evaluator before consulting this table). An array paired with a non-array
// under + is a mismatch; every other non-numeric tag is unsupported outright.
func strictArithmeticRule(op string, left runtime.Kind, right runtime.Kind) (outcome, *TypeError) {
	if isNumericTag(left) && isNumericTag(right) {
		return numericOutcome(left, right), nil
	}
	if op == "+" && (left == runtime.KindArray || right == runtime.KindArray) {
		return outcomeReject, newMismatchError(op, left, right)
	}
	if !isNumericTag(left) {
		return outcomeReject, newUnsupportedError(op, left)
	}
	return outcomeReject, newUnsupportedError(op, right)
}
