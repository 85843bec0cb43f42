package operators

import (
	"math"

	"solis/runtime-go/pkg/runtime"
)

// EvaluateArithmetic applies +, -, *, /, %, or ** to two evaluated operands.
// Strict mode accepts only numeric tags (with int→float widening), plus the
// key-wise array union for +. Division and modulo by zero raise an
// ArithmeticError in both modes.
func EvaluateArithmetic(op string, left runtime.Value, right runtime.Value, mode Mode) (runtime.Value, error) {
	if mode == Weak {
		return weakArithmetic(op, left, right)
	}
	leftTag := runtime.Classify(left)
	rightTag := runtime.Classify(right)
	if op == "+" && leftTag == runtime.KindArray && rightTag == runtime.KindArray {
		return arrayUnion(left.(*runtime.ArrayValue), right.(*runtime.ArrayValue)), nil
	}
	verdict, typeErr := strictArithmeticRule(op, leftTag, rightTag)
	if typeErr != nil {
		return nil, typeErr
	}
	var err error
	switch verdict {
	case outcomeWidenLeft:
		if left, err = widen(left, runtime.KindFloat); err != nil {
			return nil, err
		}
	case outcomeWidenRight:
		if right, err = widen(right, runtime.KindFloat); err != nil {
			return nil, err
		}
	}
	if li, ok := left.(runtime.IntegerValue); ok {
		return integerArithmetic(op, li.Val, right.(runtime.IntegerValue).Val)
	}
	return floatArithmetic(op, left.(runtime.FloatValue).Val, right.(runtime.FloatValue).Val)
}

// arrayUnion computes the key-wise union of two arrays. Keys of the left
// operand win on conflict; right-only keys are appended in their own order.
func arrayUnion(left *runtime.ArrayValue, right *runtime.ArrayValue) *runtime.ArrayValue {
	merged := runtime.NewArrayValue()
	merged.Entries = append(merged.Entries, left.Entries...)
	for _, entry := range right.Entries {
		if _, ok := merged.Lookup(entry.Key); !ok {
			merged.Entries = append(merged.Entries, entry)
		}
	}
	return merged
}

// integerArithmetic computes over two int64 operands. Results that overflow
// the integer representation degrade to floats, matching the legacy numeric
// model shared by both modes.
func integerArithmetic(op string, left int64, right int64) (runtime.Value, error) {
	switch op {
	case "+":
		if sum, ok := addInt64(left, right); ok {
			return runtime.IntegerValue{Val: sum}, nil
		}
		return runtime.FloatValue{Val: float64(left) + float64(right)}, nil
	case "-":
		if diff, ok := subInt64(left, right); ok {
			return runtime.IntegerValue{Val: diff}, nil
		}
		return runtime.FloatValue{Val: float64(left) - float64(right)}, nil
	case "*":
		if prod, ok := mulInt64(left, right); ok {
			return runtime.IntegerValue{Val: prod}, nil
		}
		return runtime.FloatValue{Val: float64(left) * float64(right)}, nil
	case "/":
		if right == 0 {
			return nil, newDivisionByZeroError()
		}
		if left%right == 0 {
			return runtime.IntegerValue{Val: left / right}, nil
		}
		return runtime.FloatValue{Val: float64(left) / float64(right)}, nil
	case "%":
		if right == 0 {
			return nil, newDivisionByZeroError()
		}
		return runtime.IntegerValue{Val: left % right}, nil
	case "**":
		return integerPow(left, right), nil
	default:
		return nil, newInternalError("unsupported arithmetic operator %s", op)
	}
}

func floatArithmetic(op string, left float64, right float64) (runtime.Value, error) {
	switch op {
	case "+":
		return runtime.FloatValue{Val: left + right}, nil
	case "-":
		return runtime.FloatValue{Val: left - right}, nil
	case "*":
		return runtime.FloatValue{Val: left * right}, nil
	case "/":
		if right == 0 {
			return nil, newDivisionByZeroError()
		}
		return runtime.FloatValue{Val: left / right}, nil
	case "%":
		if right == 0 {
			return nil, newDivisionByZeroError()
		}
		return runtime.FloatValue{Val: math.Mod(left, right)}, nil
	case "**":
		return runtime.FloatValue{Val: math.Pow(left, right)}, nil
	default:
		return nil, newInternalError("unsupported arithmetic operator %s", op)
	}
}

// integerPow exponentiates by squaring, degrading to a float result on a
// negative exponent or overflow.
func integerPow(base int64, exp int64) runtime.Value {
	if exp < 0 {
		return runtime.FloatValue{Val: math.Pow(float64(base), float64(exp))}
	}
	result := int64(1)
	acc := base
	remaining := exp
	for remaining > 0 {
		if remaining&1 == 1 {
			product, ok := mulInt64(result, acc)
			if !ok {
				return runtime.FloatValue{Val: math.Pow(float64(base), float64(exp))}
			}
			result = product
		}
		remaining >>= 1
		if remaining == 0 {
			break
		}
		square, ok := mulInt64(acc, acc)
		if !ok {
			return runtime.FloatValue{Val: math.Pow(float64(base), float64(exp))}
		}
		acc = square
	}
	return runtime.IntegerValue{Val: result}
}

func addInt64(a int64, b int64) (int64, bool) {
	sum := a + b
	if (a > 0 && b > 0 && sum < 0) || (a < 0 && b < 0 && sum >= 0) {
		return 0, false
	}
	return sum, true
}

func subInt64(a int64, b int64) (int64, bool) {
	diff := a - b
	if (a >= 0 && b < 0 && diff < 0) || (a < 0 && b > 0 && diff >= 0) {
		return 0, false
	}
	return diff, true
}

func mulInt64(a int64, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	prod := a * b
	if prod/b != a {
		return 0, false
	}
	return prod, true
}
