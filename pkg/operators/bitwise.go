package operators

import "solis/runtime-go/pkg/runtime"

// EvaluateBitwise applies &, |, ^, ~, <<, or >> to evaluated operands. The
// unary complement passes nil for right. &, |, and ^ accept either two
// integers or two strings (byte-wise); the shifts accept integers only. An
// integer paired with a string is a mismatch, any other tag is unsupported.
func EvaluateBitwise(op string, left runtime.Value, right runtime.Value, mode Mode) (runtime.Value, error) {
	if op == "~" {
		return bitwiseComplement(left, mode)
	}
	if mode == Weak {
		return weakBitwise(op, left, right)
	}
	leftTag := runtime.Classify(left)
	rightTag := runtime.Classify(right)
	switch op {
	case "&", "|", "^":
		if leftTag == runtime.KindInteger && rightTag == runtime.KindInteger {
			return integerBitwise(op, left.(runtime.IntegerValue).Val, right.(runtime.IntegerValue).Val)
		}
		if leftTag == runtime.KindString && rightTag == runtime.KindString {
			return stringBitwise(op, left.(runtime.StringValue).Val, right.(runtime.StringValue).Val), nil
		}
		if bitwiseOperandTag(leftTag) && bitwiseOperandTag(rightTag) {
			return nil, newMismatchError(op, leftTag, rightTag)
		}
		if !bitwiseOperandTag(leftTag) {
			return nil, newUnsupportedError(op, leftTag)
		}
		return nil, newUnsupportedError(op, rightTag)
	case "<<", ">>":
		if leftTag != runtime.KindInteger {
			return nil, newUnsupportedError(op, leftTag)
		}
		if rightTag != runtime.KindInteger {
			return nil, newUnsupportedError(op, rightTag)
		}
		return integerShift(op, left.(runtime.IntegerValue).Val, right.(runtime.IntegerValue).Val)
	default:
		return nil, newInternalError("unsupported bitwise operator %s", op)
	}
}

func bitwiseOperandTag(k runtime.Kind) bool {
	return k == runtime.KindInteger || k == runtime.KindString
}

func bitwiseComplement(operand runtime.Value, mode Mode) (runtime.Value, error) {
	switch v := operand.(type) {
	case runtime.IntegerValue:
		return runtime.IntegerValue{Val: ^v.Val}, nil
	case runtime.StringValue:
		out := make([]byte, len(v.Val))
		for i := 0; i < len(v.Val); i++ {
			out[i] = ^v.Val[i]
		}
		return runtime.StringValue{Val: string(out)}, nil
	default:
		if mode == Weak {
			if n, ok := weakToInt(operand); ok {
				return runtime.IntegerValue{Val: ^n}, nil
			}
		}
		return nil, newUnsupportedError("~", runtime.Classify(operand))
	}
}

func integerBitwise(op string, left int64, right int64) (runtime.Value, error) {
	switch op {
	case "&":
		return runtime.IntegerValue{Val: left & right}, nil
	case "|":
		return runtime.IntegerValue{Val: left | right}, nil
	case "^":
		return runtime.IntegerValue{Val: left ^ right}, nil
	default:
		return nil, newInternalError("unsupported bitwise operator %s", op)
	}
}

// stringBitwise operates byte-wise. & and ^ truncate to the shorter operand;
// | pads the shorter operand with zero bytes.
func stringBitwise(op string, left string, right string) runtime.StringValue {
	shorter, longer := left, right
	if len(left) > len(right) {
		shorter, longer = right, left
	}
	switch op {
	case "|":
		out := make([]byte, len(longer))
		copy(out, longer)
		for i := 0; i < len(shorter); i++ {
			out[i] = left[i] | right[i]
		}
		return runtime.StringValue{Val: string(out)}
	case "&":
		out := make([]byte, len(shorter))
		for i := range out {
			out[i] = left[i] & right[i]
		}
		return runtime.StringValue{Val: string(out)}
	default: // ^
		out := make([]byte, len(shorter))
		for i := range out {
			out[i] = left[i] ^ right[i]
		}
		return runtime.StringValue{Val: string(out)}
	}
}

func integerShift(op string, left int64, count int64) (runtime.Value, error) {
	if count < 0 {
		return nil, newNegativeShiftError(count)
	}
	if count >= 64 {
		if op == ">>" && left < 0 {
			return runtime.IntegerValue{Val: -1}, nil
		}
		return runtime.IntegerValue{Val: 0}, nil
	}
	if op == "<<" {
		return runtime.IntegerValue{Val: left << uint(count)}, nil
	}
	return runtime.IntegerValue{Val: left >> uint(count)}, nil
}
