package operators

import (
	"math"
	"strconv"
	"strings"

	"solis/runtime-go/pkg/runtime"
)

// Weak mode reproduces the legacy value-dependent juggling rules that predate
// the strict operator mode. These semantics are frozen: they exist so that
// units that never opted in keep their observed behaviour, not because they
// are a good idea.

//-----------------------------------------------------------------------------
// Comparison
//-----------------------------------------------------------------------------

func weakComparison(op string, left runtime.Value, right runtime.Value) (runtime.Value, error) {
	switch op {
	case "==":
		return runtime.BoolValue{Val: weakLooseEqual(left, right, nil)}, nil
	case "!=":
		return runtime.BoolValue{Val: !weakLooseEqual(left, right, nil)}, nil
	case "<", "<=", ">", ">=":
		cmp, ordered := weakCmp3(left, right)
		if !ordered {
			return runtime.BoolValue{Val: false}, nil
		}
		return runtime.BoolValue{Val: comparisonOp(op, cmp)}, nil
	case "<=>":
		cmp, ordered := weakCmp3(left, right)
		if !ordered {
			cmp = 1
		}
		return runtime.IntegerValue{Val: int64(cmp)}, nil
	default:
		return nil, newInternalError("unsupported comparison operator %s", op)
	}
}

func weakLooseEqual(left runtime.Value, right runtime.Value, seen map[arrayPair]bool) bool {
	leftTag := runtime.Classify(left)
	rightTag := runtime.Classify(right)
	if leftTag == rightTag {
		switch leftTag {
		case runtime.KindInteger, runtime.KindFloat:
			return weakNumericValue(left) == weakNumericValue(right)
		case runtime.KindString:
			ls := left.(runtime.StringValue).Val
			rs := right.(runtime.StringValue).Val
			if lf, lok := numericStringValue(ls); lok {
				if rf, rok := numericStringValue(rs); rok {
					return lf == rf
				}
			}
			return ls == rs
		case runtime.KindBool:
			return left.(runtime.BoolValue).Val == right.(runtime.BoolValue).Val
		case runtime.KindNull:
			return true
		case runtime.KindArray:
			return weakArraysEqual(left.(*runtime.ArrayValue), right.(*runtime.ArrayValue), seen)
		case runtime.KindObject:
			return weakObjectsEqual(left.(*runtime.ObjectValue), right.(*runtime.ObjectValue))
		case runtime.KindResource:
			return scalarsIdentical(left, right)
		}
		return false
	}
	// Boolean juggling wins over everything else.
	if leftTag == runtime.KindBool {
		return left.(runtime.BoolValue).Val == runtime.Truthy(right)
	}
	if rightTag == runtime.KindBool {
		return right.(runtime.BoolValue).Val == runtime.Truthy(left)
	}
	if leftTag == runtime.KindNull {
		return weakNullEqual(right)
	}
	if rightTag == runtime.KindNull {
		return weakNullEqual(left)
	}
	if isNumericTag(leftTag) && isNumericTag(rightTag) {
		return weakNumericValue(left) == weakNumericValue(right)
	}
	if isNumericTag(leftTag) && rightTag == runtime.KindString {
		return weakNumberStringEqual(left, right.(runtime.StringValue).Val)
	}
	if leftTag == runtime.KindString && isNumericTag(rightTag) {
		return weakNumberStringEqual(right, left.(runtime.StringValue).Val)
	}
	return false
}

// weakNumberStringEqual: a numeric string compares numerically, any other
// string compares against the number's string rendering.
func weakNumberStringEqual(number runtime.Value, s string) bool {
	if f, ok := numericStringValue(s); ok {
		return weakNumericValue(number) == f
	}
	rendered, typeErr := castToString("==", number)
	if typeErr != nil {
		return false
	}
	return rendered == s
}

func weakNullEqual(other runtime.Value) bool {
	switch v := other.(type) {
	case runtime.IntegerValue:
		return v.Val == 0
	case runtime.FloatValue:
		return v.Val == 0
	case runtime.StringValue:
		return v.Val == ""
	case *runtime.ArrayValue:
		return v.Len() == 0
	default:
		return false
	}
}

func weakArraysEqual(left *runtime.ArrayValue, right *runtime.ArrayValue, seen map[arrayPair]bool) bool {
	if left == right {
		return true
	}
	if left.Len() != right.Len() {
		return false
	}
	pair := arrayPair{left, right}
	if seen[pair] {
		return true
	}
	if seen == nil {
		seen = make(map[arrayPair]bool)
	}
	seen[pair] = true
	for _, entry := range left.Entries {
		other, ok := right.Lookup(entry.Key)
		if !ok {
			return false
		}
		if !weakLooseEqual(entry.Value, other, seen) {
			return false
		}
	}
	return true
}

func weakObjectsEqual(left *runtime.ObjectValue, right *runtime.ObjectValue) bool {
	if left == right {
		return true
	}
	if left == nil || right == nil || left.Class != right.Class {
		return false
	}
	if len(left.Props) != len(right.Props) {
		return false
	}
	for _, prop := range left.Props {
		other, ok := right.Prop(prop.Name)
		if !ok {
			return false
		}
		if !weakLooseEqual(prop.Value, other, nil) {
			return false
		}
	}
	return true
}

// weakCmp3 three-way-compares under legacy juggling. The bool result is false
// for unordered pairs (NaN, objects of different classes, mixed composites).
func weakCmp3(left runtime.Value, right runtime.Value) (int, bool) {
	leftTag := runtime.Classify(left)
	rightTag := runtime.Classify(right)
	if leftTag == runtime.KindBool || rightTag == runtime.KindBool {
		return boolToInt(runtime.Truthy(left)) - boolToInt(runtime.Truthy(right)), true
	}
	if leftTag == runtime.KindArray || rightTag == runtime.KindArray {
		if leftTag != rightTag {
			// An array outweighs any non-array.
			if leftTag == runtime.KindArray {
				return 1, true
			}
			return -1, true
		}
		return weakArraysCmp(left.(*runtime.ArrayValue), right.(*runtime.ArrayValue))
	}
	if leftTag == runtime.KindObject || rightTag == runtime.KindObject {
		if leftTag == rightTag && weakObjectsEqual(left.(*runtime.ObjectValue), right.(*runtime.ObjectValue)) {
			return 0, true
		}
		return 0, false
	}
	if leftTag == runtime.KindResource || rightTag == runtime.KindResource {
		if leftTag == rightTag {
			return cmpInt64(left.(*runtime.ResourceValue).Handle, right.(*runtime.ResourceValue).Handle), true
		}
		return 0, false
	}
	if leftTag == runtime.KindString && rightTag == runtime.KindString {
		ls := left.(runtime.StringValue).Val
		rs := right.(runtime.StringValue).Val
		if lf, lok := numericStringValue(ls); lok {
			if rf, rok := numericStringValue(rs); rok {
				return cmpFloat(lf, rf)
			}
		}
		return strings.Compare(ls, rs), true
	}
	// Null and numbers, or a number against a string.
	lf, lok := weakToFloat(left)
	rf, rok := weakToFloat(right)
	if lok && rok {
		return cmpFloat(lf, rf)
	}
	// A non-numeric string against a number compares as strings.
	ls, lerr := weakCastToString(left)
	rs, rerr := weakCastToString(right)
	if lerr == nil && rerr == nil {
		return strings.Compare(ls, rs), true
	}
	return 0, false
}

func weakArraysCmp(left *runtime.ArrayValue, right *runtime.ArrayValue) (int, bool) {
	if left.Len() != right.Len() {
		return cmpInt64(int64(left.Len()), int64(right.Len())), true
	}
	if weakArraysEqual(left, right, nil) {
		return 0, true
	}
	return 0, false
}

func cmpInt64(a int64, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpFloat(a float64, b float64) (int, bool) {
	if math.IsNaN(a) || math.IsNaN(b) {
		return 0, false
	}
	switch {
	case a < b:
		return -1, true
	case a > b:
		return 1, true
	default:
		return 0, true
	}
}

//-----------------------------------------------------------------------------
// Arithmetic, bitwise, concatenation, increment
//-----------------------------------------------------------------------------

func weakArithmetic(op string, left runtime.Value, right runtime.Value) (runtime.Value, error) {
	leftTag := runtime.Classify(left)
	rightTag := runtime.Classify(right)
	if op == "+" && leftTag == runtime.KindArray && rightTag == runtime.KindArray {
		return arrayUnion(left.(*runtime.ArrayValue), right.(*runtime.ArrayValue)), nil
	}
	if leftTag == runtime.KindArray || rightTag == runtime.KindArray {
		return nil, newMismatchError(op, leftTag, rightTag)
	}
	leftNum, typeErr := weakToNumber(op, left)
	if typeErr != nil {
		return nil, typeErr
	}
	rightNum, typeErr := weakToNumber(op, right)
	if typeErr != nil {
		return nil, typeErr
	}
	li, lok := leftNum.(runtime.IntegerValue)
	ri, rok := rightNum.(runtime.IntegerValue)
	if lok && rok {
		return integerArithmetic(op, li.Val, ri.Val)
	}
	lf, _ := weakToFloat(leftNum)
	rf, _ := weakToFloat(rightNum)
	return floatArithmetic(op, lf, rf)
}

func weakBitwise(op string, left runtime.Value, right runtime.Value) (runtime.Value, error) {
	if op == "&" || op == "|" || op == "^" {
		if ls, ok := left.(runtime.StringValue); ok {
			if rs, ok := right.(runtime.StringValue); ok {
				return stringBitwise(op, ls.Val, rs.Val), nil
			}
		}
	}
	li, lok := weakToInt(left)
	if !lok {
		return nil, newUnsupportedError(op, runtime.Classify(left))
	}
	ri, rok := weakToInt(right)
	if !rok {
		return nil, newUnsupportedError(op, runtime.Classify(right))
	}
	if op == "<<" || op == ">>" {
		return integerShift(op, li, ri)
	}
	return integerBitwise(op, li, ri)
}

func weakConcat(left runtime.Value, right runtime.Value) (runtime.Value, error) {
	ls, err := weakCastToString(left)
	if err != nil {
		return nil, err
	}
	rs, err := weakCastToString(right)
	if err != nil {
		return nil, err
	}
	return runtime.StringValue{Val: ls + rs}, nil
}

func weakIncDec(op string, operand runtime.Value) (runtime.Value, error) {
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
	case runtime.NullValue, nil:
		if op == "++" {
			return runtime.IntegerValue{Val: 1}, nil
		}
		return runtime.NullValue{}, nil
	case runtime.BoolValue:
		return v, nil
	case runtime.StringValue:
		return weakStringStep(op, v.Val), nil
	default:
		return nil, newUnsupportedError(op, runtime.Classify(operand))
	}
}

// weakStringStep is the legacy string increment: numeric strings step
// numerically, alphanumeric strings increment with carry, and decrement on a
// non-numeric string is a no-op.
func weakStringStep(op string, s string) runtime.Value {
	if f, ok := numericStringValue(s); ok {
		if i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
			if op == "++" {
				return runtime.IntegerValue{Val: i + 1}
			}
			return runtime.IntegerValue{Val: i - 1}
		}
		if op == "++" {
			return runtime.FloatValue{Val: f + 1}
		}
		return runtime.FloatValue{Val: f - 1}
	}
	if s == "" {
		if op == "++" {
			return runtime.StringValue{Val: "1"}
		}
		return runtime.IntegerValue{Val: -1}
	}
	if op == "--" {
		return runtime.StringValue{Val: s}
	}
	return runtime.StringValue{Val: alphaIncrement(s)}
}

func alphaIncrement(s string) string {
	out := []byte(s)
	for i := len(out) - 1; i >= 0; i-- {
		switch c := out[i]; {
		case c >= 'a' && c < 'z', c >= 'A' && c < 'Z', c >= '0' && c < '9':
			out[i] = c + 1
			return string(out)
		case c == 'z':
			out[i] = 'a'
		case c == 'Z':
			out[i] = 'A'
		case c == '9':
			out[i] = '0'
		default:
			return string(out)
		}
	}
	switch out[0] {
	case 'a':
		return "a" + string(out)
	case 'A':
		return "A" + string(out)
	default:
		return "1" + string(out)
	}
}

//-----------------------------------------------------------------------------
// Legacy coercion helpers
//-----------------------------------------------------------------------------

func weakToNumber(op string, v runtime.Value) (runtime.Value, *TypeError) {
	switch val := v.(type) {
	case runtime.IntegerValue, runtime.FloatValue:
		return val, nil
	case runtime.BoolValue:
		return runtime.IntegerValue{Val: int64(boolToInt(val.Val))}, nil
	case runtime.NullValue, nil:
		return runtime.IntegerValue{Val: 0}, nil
	case runtime.StringValue:
		trimmed := strings.TrimSpace(val.Val)
		if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
			return runtime.IntegerValue{Val: i}, nil
		}
		if f, ok := numericStringValue(val.Val); ok {
			return runtime.FloatValue{Val: f}, nil
		}
		return nil, newUnsupportedError(op, runtime.KindString)
	default:
		return nil, newUnsupportedError(op, runtime.Classify(v))
	}
}

func weakToFloat(v runtime.Value) (float64, bool) {
	switch val := v.(type) {
	case runtime.IntegerValue:
		return float64(val.Val), true
	case runtime.FloatValue:
		return val.Val, true
	case runtime.BoolValue:
		return float64(boolToInt(val.Val)), true
	case runtime.NullValue, nil:
		return 0, true
	case runtime.StringValue:
		if f, ok := numericStringValue(val.Val); ok {
			return f, true
		}
		return 0, false
	default:
		return 0, false
	}
}

func weakToInt(v runtime.Value) (int64, bool) {
	switch val := v.(type) {
	case runtime.IntegerValue:
		return val.Val, true
	case runtime.FloatValue:
		if math.IsNaN(val.Val) || math.IsInf(val.Val, 0) {
			return 0, false
		}
		return int64(val.Val), true
	case runtime.BoolValue:
		return int64(boolToInt(val.Val)), true
	case runtime.NullValue, nil:
		return 0, true
	case runtime.StringValue:
		if f, ok := numericStringValue(val.Val); ok {
			return int64(f), true
		}
		return 0, false
	default:
		return 0, false
	}
}

func weakNumericValue(v runtime.Value) float64 {
	f, _ := weakToFloat(v)
	return f
}

// weakCastToString is the legacy string cast: booleans render as "1"/"",
// resources render with their handle. Only objects without a string
// conversion capability are refused, as in strict mode.
func weakCastToString(v runtime.Value) (string, *TypeError) {
	switch val := v.(type) {
	case runtime.BoolValue:
		if val.Val {
			return "1", nil
		}
		return "", nil
	case *runtime.ArrayValue:
		return "Array", nil
	case *runtime.ResourceValue:
		return "Resource id #" + strconv.FormatInt(val.Handle, 10), nil
	default:
		return castToString(".", v)
	}
}

// numericStringValue reports whether a string parses as an integer or float
// literal, modulo surrounding whitespace, and returns its numeric value.
func numericStringValue(s string) (float64, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, false
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		// Reject Go-isms the language's numeric literals do not allow.
		if strings.ContainsAny(trimmed, "xX_") || strings.EqualFold(trimmed, "inf") ||
			strings.EqualFold(trimmed, "+inf") || strings.EqualFold(trimmed, "-inf") ||
			strings.EqualFold(trimmed, "nan") {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
