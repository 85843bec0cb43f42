package operators

import "solis/runtime-go/pkg/runtime"

// EvaluateLogical applies &&, ||, xor, or ! over already-evaluated operands.
// Short-circuiting happens in the host evaluator before operands reach the
// engine. Logical operators are unaffected by mode and never fail: both
// operands go through the runtime's truthiness rule.
func EvaluateLogical(op string, left runtime.Value, right runtime.Value) runtime.Value {
	lb := runtime.Truthy(left)
	switch op {
	case "!":
		return runtime.BoolValue{Val: !lb}
	case "&&":
		return runtime.BoolValue{Val: lb && runtime.Truthy(right)}
	case "||":
		return runtime.BoolValue{Val: lb || runtime.Truthy(right)}
	case "xor":
		return runtime.BoolValue{Val: lb != runtime.Truthy(right)}
	default:
		return runtime.BoolValue{Val: false}
	}
}
