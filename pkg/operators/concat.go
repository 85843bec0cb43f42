package operators

import "solis/runtime-go/pkg/runtime"

// EvaluateConcat applies the . operator. Strict mode accepts integers,
// floats, strings, null, and objects with a string conversion capability;
// weak mode additionally juggles booleans the legacy way.
func EvaluateConcat(left runtime.Value, right runtime.Value, mode Mode) (runtime.Value, error) {
	if mode == Weak {
		return weakConcat(left, right)
	}
	ls, typeErr := castToString(".", left)
	if typeErr != nil {
		return nil, typeErr
	}
	rs, typeErr := castToString(".", right)
	if typeErr != nil {
		return nil, typeErr
	}
	return runtime.StringValue{Val: ls + rs}, nil
}
