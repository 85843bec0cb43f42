package runtime

// Truthy applies the runtime's boolean coercion rule. The rule predates the
// strict operator mode and is shared by both modes: false, integer and float
// zero, the empty string, the string "0", null, and the empty array are falsy;
// everything else, including every object and resource, is truthy.
func Truthy(v Value) bool {
	switch val := v.(type) {
	case nil:
		return false
	case BoolValue:
		return val.Val
	case IntegerValue:
		return val.Val != 0
	case FloatValue:
		return val.Val != 0
	case StringValue:
		return val.Val != "" && val.Val != "0"
	case NullValue:
		return false
	case *ArrayValue:
		return val.Len() != 0
	default:
		return true
	}
}
