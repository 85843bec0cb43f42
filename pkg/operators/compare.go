package operators

import (
	"math"

	"solis/runtime-go/pkg/runtime"
)

// EvaluateComparison applies a comparison operator to two evaluated operands.
// === and !== are identity checks unaffected by mode; every other operator
// follows the strict rule tables or the legacy weak juggling, per mode.
func EvaluateComparison(op string, left runtime.Value, right runtime.Value, mode Mode) (runtime.Value, error) {
	switch op {
	case "===":
		return runtime.BoolValue{Val: identicalValues(left, right)}, nil
	case "!==":
		return runtime.BoolValue{Val: !identicalValues(left, right)}, nil
	}
	if mode == Weak {
		return weakComparison(op, left, right)
	}
	switch op {
	case "==", "!=":
		eq, err := strictEquals(op, left, right)
		if err != nil {
			return nil, err
		}
		if op == "!=" {
			eq = !eq
		}
		return runtime.BoolValue{Val: eq}, nil
	case "<", "<=", ">", ">=", "<=>":
		return strictRelational(op, left, right)
	default:
		return nil, newInternalError("unsupported comparison operator %s", op)
	}
}

//-----------------------------------------------------------------------------
// Strict equality
//-----------------------------------------------------------------------------

func strictEquals(op string, left runtime.Value, right runtime.Value) (bool, error) {
	verdict, typeErr := strictEqualityRule(op, runtime.Classify(left), runtime.Classify(right))
	if typeErr != nil {
		return false, typeErr
	}
	var err error
	switch verdict {
	case outcomeWidenLeft:
		if left, err = widen(left, runtime.KindFloat); err != nil {
			return false, err
		}
	case outcomeWidenRight:
		if right, err = widen(right, runtime.KindFloat); err != nil {
			return false, err
		}
	}
	switch lv := left.(type) {
	case runtime.IntegerValue:
		return lv.Val == right.(runtime.IntegerValue).Val, nil
	case runtime.FloatValue:
		return lv.Val == right.(runtime.FloatValue).Val, nil
	case runtime.BoolValue:
		return lv.Val == right.(runtime.BoolValue).Val, nil
	case runtime.StringValue:
		// Lexical only: numeric-looking strings stay strings.
		return lv.Val == right.(runtime.StringValue).Val, nil
	case runtime.NullValue, nil:
		return true, nil
	case *runtime.ResourceValue:
		rv := right.(*runtime.ResourceValue)
		return lv == rv || (lv != nil && rv != nil && lv.Handle == rv.Handle), nil
	case *runtime.ObjectValue:
		return strictObjectsEqual(op, lv, right.(*runtime.ObjectValue))
	default:
		return false, newInternalError("strict equality over unhandled tag %s", runtime.Classify(left))
	}
}

// objectPair keys the visited set for the structural object walk.
type objectPair struct {
	a *runtime.ObjectValue
	b *runtime.ObjectValue
}

// compareState carries the worklist and visited-pair set for one structural
// comparison. The visited set strictly grows and is bounded by the finite
// object graph, which guarantees termination; a revisited pair is a cycle and
// counts as equal along that branch.
type compareState struct {
	work    []objectPair
	visited map[objectPair]bool
}

// strictObjectsEqual implements strict ==/!= over objects. Only the outer pair
// can raise: differing classes at the top level are a mismatch error. Inside
// the structural walk every discrepancy, including nested class differences,
// simply yields false.
func strictObjectsEqual(op string, a *runtime.ObjectValue, b *runtime.ObjectValue) (bool, error) {
	if a == nil || b == nil {
		return a == b, nil
	}
	if a.Class != b.Class {
		return false, newClassMismatchError(op, a.Class, b.Class)
	}
	state := &compareState{visited: make(map[objectPair]bool)}
	state.work = append(state.work, objectPair{a, b})
	for len(state.work) > 0 {
		pair := state.work[len(state.work)-1]
		state.work = state.work[:len(state.work)-1]
		if pair.a == pair.b || state.visited[pair] {
			continue
		}
		state.visited[pair] = true
		if pair.a.Class != pair.b.Class {
			return false, nil
		}
		if len(pair.a.Props) != len(pair.b.Props) {
			return false, nil
		}
		for i := range pair.a.Props {
			if pair.a.Props[i].Name != pair.b.Props[i].Name {
				return false, nil
			}
			if !strictPropEqual(pair.a.Props[i].Value, pair.b.Props[i].Value, state) {
				return false, nil
			}
		}
	}
	return true, nil
}

// strictPropEqual compares one property slot. Scalars require tag and value
// equality with no coercion; object pairs are deferred to the worklist; arrays
// are walked element-wise under the same state. A tag mismatch is false, never
// an error.
func strictPropEqual(a runtime.Value, b runtime.Value, state *compareState) bool {
	leftTag := runtime.Classify(a)
	if leftTag != runtime.Classify(b) {
		return false
	}
	switch leftTag {
	case runtime.KindObject:
		state.work = append(state.work, objectPair{a.(*runtime.ObjectValue), b.(*runtime.ObjectValue)})
		return true
	case runtime.KindArray:
		return strictArrayPropEqual(a.(*runtime.ArrayValue), b.(*runtime.ArrayValue), state)
	default:
		return scalarsIdentical(a, b)
	}
}

func strictArrayPropEqual(a *runtime.ArrayValue, b *runtime.ArrayValue, state *compareState) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := range a.Entries {
		if a.Entries[i].Key != b.Entries[i].Key {
			return false
		}
		if !strictPropEqual(a.Entries[i].Value, b.Entries[i].Value, state) {
			return false
		}
	}
	return true
}

//-----------------------------------------------------------------------------
// Strict relational operators
//-----------------------------------------------------------------------------

func strictRelational(op string, left runtime.Value, right runtime.Value) (runtime.Value, error) {
	verdict, typeErr := strictRelationalRule(op, runtime.Classify(left), runtime.Classify(right))
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
	cmp, ordered := orderedCmp(left, right)
	if op == "<=>" {
		if !ordered {
			// NaN is incomparable; the spaceship reports it as greater.
			return runtime.IntegerValue{Val: 1}, nil
		}
		return runtime.IntegerValue{Val: int64(cmp)}, nil
	}
	if !ordered {
		return runtime.BoolValue{Val: false}, nil
	}
	return runtime.BoolValue{Val: comparisonOp(op, cmp)}, nil
}

// orderedCmp three-way-compares two operands of equal (post-widening) tag.
// The bool result is false when the pair is unordered (a NaN operand).
func orderedCmp(left runtime.Value, right runtime.Value) (int, bool) {
	switch lv := left.(type) {
	case runtime.IntegerValue:
		rv := right.(runtime.IntegerValue)
		switch {
		case lv.Val < rv.Val:
			return -1, true
		case lv.Val > rv.Val:
			return 1, true
		default:
			return 0, true
		}
	case runtime.FloatValue:
		rv := right.(runtime.FloatValue)
		if math.IsNaN(lv.Val) || math.IsNaN(rv.Val) {
			return 0, false
		}
		switch {
		case lv.Val < rv.Val:
			return -1, true
		case lv.Val > rv.Val:
			return 1, true
		default:
			return 0, true
		}
	case runtime.BoolValue:
		rv := right.(runtime.BoolValue)
		return boolToInt(lv.Val) - boolToInt(rv.Val), true
	default:
		return 0, false
	}
}

func comparisonOp(op string, cmp int) bool {
	switch op {
	case "<":
		return cmp < 0
	case "<=":
		return cmp <= 0
	case ">":
		return cmp > 0
	case ">=":
		return cmp >= 0
	case "==":
		return cmp == 0
	case "!=":
		return cmp != 0
	default:
		return false
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

//-----------------------------------------------------------------------------
// Identity (=== / !==), unaffected by mode
//-----------------------------------------------------------------------------

func identicalValues(left runtime.Value, right runtime.Value) bool {
	return identicalValuesGuarded(left, right, nil)
}

type arrayPair struct {
	a *runtime.ArrayValue
	b *runtime.ArrayValue
}

func identicalValuesGuarded(left runtime.Value, right runtime.Value, seen map[arrayPair]bool) bool {
	leftTag := runtime.Classify(left)
	if leftTag != runtime.Classify(right) {
		return false
	}
	switch leftTag {
	case runtime.KindObject:
		return left.(*runtime.ObjectValue) == right.(*runtime.ObjectValue)
	case runtime.KindArray:
		la := left.(*runtime.ArrayValue)
		ra := right.(*runtime.ArrayValue)
		if la == ra {
			return true
		}
		if la.Len() != ra.Len() {
			return false
		}
		pair := arrayPair{la, ra}
		if seen[pair] {
			return true
		}
		if seen == nil {
			seen = make(map[arrayPair]bool)
		}
		seen[pair] = true
		for i := range la.Entries {
			if la.Entries[i].Key != ra.Entries[i].Key {
				return false
			}
			if !identicalValuesGuarded(la.Entries[i].Value, ra.Entries[i].Value, seen) {
				return false
			}
		}
		return true
	default:
		return scalarsIdentical(left, right)
	}
}

// scalarsIdentical compares two values of equal scalar tag with no coercion.
func scalarsIdentical(left runtime.Value, right runtime.Value) bool {
	switch lv := left.(type) {
	case runtime.IntegerValue:
		return lv.Val == right.(runtime.IntegerValue).Val
	case runtime.FloatValue:
		return lv.Val == right.(runtime.FloatValue).Val
	case runtime.BoolValue:
		return lv.Val == right.(runtime.BoolValue).Val
	case runtime.StringValue:
		return lv.Val == right.(runtime.StringValue).Val
	case runtime.NullValue, nil:
		return true
	case *runtime.ResourceValue:
		rv := right.(*runtime.ResourceValue)
		return lv == rv || (lv != nil && rv != nil && lv.Handle == rv.Handle)
	default:
		return false
	}
}
