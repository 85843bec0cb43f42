package operators

import "solis/runtime-go/pkg/runtime"

// MatchCase tests a case label against the switch subject. It is a distinct
// comparator with its own rules and it never raises: an unrelated case label's
// type must not abort the whole switch dispatch, it simply fails to match.
//
// Scalars match when tag and value are both equal, with no coercion: numeric
// strings stay strings, and an integer never matches a float. Arrays match
// when their key sets are identical regardless of order and every value
// matches recursively. Objects match when they share a class and compare equal
// structurally; differing classes never match.
func MatchCase(subject runtime.Value, label runtime.Value) bool {
	return matchCaseGuarded(subject, label, nil)
}

func matchCaseGuarded(subject runtime.Value, label runtime.Value, seen map[arrayPair]bool) bool {
	subjectTag := runtime.Classify(subject)
	if subjectTag != runtime.Classify(label) {
		return false
	}
	switch subjectTag {
	case runtime.KindArray:
		return matchArrays(subject.(*runtime.ArrayValue), label.(*runtime.ArrayValue), seen)
	case runtime.KindObject:
		return matchObjects(subject.(*runtime.ObjectValue), label.(*runtime.ObjectValue))
	default:
		return scalarsIdentical(subject, label)
	}
}

// matchArrays requires identical key sets, order-insensitive, and recursively
// matching values. Self-referential arrays terminate via the seen set.
func matchArrays(subject *runtime.ArrayValue, label *runtime.ArrayValue, seen map[arrayPair]bool) bool {
	if subject == label {
		return true
	}
	if subject.Len() != label.Len() {
		return false
	}
	pair := arrayPair{subject, label}
	if seen[pair] {
		return true
	}
	if seen == nil {
		seen = make(map[arrayPair]bool)
	}
	seen[pair] = true
	for _, entry := range subject.Entries {
		other, ok := label.Lookup(entry.Key)
		if !ok {
			return false
		}
		if !matchCaseGuarded(entry.Value, other, seen) {
			return false
		}
	}
	return true
}

// matchObjects reuses the strict structural comparator. The class check comes
// first, so the comparator's only error path (an outer class mismatch) is
// unreachable and a mismatch is just a non-match.
func matchObjects(subject *runtime.ObjectValue, label *runtime.ObjectValue) bool {
	if subject == nil || label == nil {
		return subject == label
	}
	if subject.Class != label.Class {
		return false
	}
	equal, err := strictObjectsEqual("case", subject, label)
	if err != nil {
		return false
	}
	return equal
}
