package operators

import (
	"math"
	"strconv"

	"solis/runtime-go/pkg/runtime"
)

// widen performs the single sanctioned implicit conversion, integer to float.
// Callers must only request widenings the rule tables sanctioned; any other
// pair is an internal error.
func widen(v runtime.Value, target runtime.Kind) (runtime.Value, error) {
	if target == runtime.KindFloat {
		if iv, ok := v.(runtime.IntegerValue); ok {
			return runtime.FloatValue{Val: float64(iv.Val)}, nil
		}
	}
	return nil, newInternalError("widen: unsanctioned conversion %s -> %s", runtime.Classify(v), target)
}

// castToString is the strict-mode scalar-to-string cast used by concatenation.
// Integers, floats, strings, null, and objects with a string conversion
// capability succeed; booleans, arrays, resources, and capability-less objects
// are refused outright.
func castToString(op string, v runtime.Value) (string, *TypeError) {
	switch val := v.(type) {
	case runtime.StringValue:
		return val.Val, nil
	case runtime.IntegerValue:
		return strconv.FormatInt(val.Val, 10), nil
	case runtime.FloatValue:
		return formatFloat(val.Val), nil
	case runtime.NullValue, nil:
		return "", nil
	case *runtime.ObjectValue:
		if val != nil && val.Stringify != nil {
			return val.Stringify(), nil
		}
		return "", newUnsupportedError(op, runtime.KindObject)
	default:
		return "", newUnsupportedError(op, runtime.Classify(v))
	}
}

// formatFloat renders a float the way the runtime prints numbers: integral
// values without a trailing ".0", everything else in shortest round-trip form.
func formatFloat(f float64) string {
	if math.IsInf(f, 1) {
		return "INF"
	}
	if math.IsInf(f, -1) {
		return "-INF"
	}
	if math.IsNaN(f) {
		return "NAN"
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'G', -1, 64)
}
