package operators

import "solis/runtime-go/pkg/runtime"

// EvaluateIncDec applies ++ or -- to a single operand and returns the stepped
// value; the host writes it back to the variable. Strict mode accepts only
// integers and floats, which removes the legacy string increment. Weak mode
// keeps the legacy behaviour, including alphanumeric string increment and
// null++ producing 1.
func EvaluateIncDec(op string, operand runtime.Value, mode Mode) (runtime.Value, error) {
	if mode == Weak {
		return weakIncDec(op, operand)
	}
	step := int64(1)
	if op == "--" {
		step = -1
	} else if op != "++" {
		return nil, newInternalError("unsupported step operator %s", op)
	}
	switch v := operand.(type) {
	case runtime.IntegerValue:
		if next, ok := addInt64(v.Val, step); ok {
			return runtime.IntegerValue{Val: next}, nil
		}
		return runtime.FloatValue{Val: float64(v.Val) + float64(step)}, nil
	case runtime.FloatValue:
		return runtime.FloatValue{Val: v.Val + float64(step)}, nil
	default:
		return nil, newUnsupportedError(op, runtime.Classify(operand))
	}
}
