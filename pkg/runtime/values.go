package runtime

import "fmt"

// Kind identifies the semantic type tag of a runtime value. The set is closed:
// every value the runtime can produce maps to exactly one Kind.
type Kind int

const (
	KindInteger Kind = iota
	KindFloat
	KindBool
	KindString
	KindNull
	KindArray
	KindObject
	KindResource
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindNull:
		return "null"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindResource:
		return "resource"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
}

// Classify maps a value to its type tag. Total and pure: a nil interface is
// the null value.
func Classify(v Value) Kind {
	if v == nil {
		return KindNull
	}
	return v.Kind()
}

//-----------------------------------------------------------------------------
// Scalars
//-----------------------------------------------------------------------------

type IntegerValue struct {
	Val int64
}

func (v IntegerValue) Kind() Kind { return KindInteger }

type FloatValue struct {
	Val float64
}

func (v FloatValue) Kind() Kind { return KindFloat }

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }

type NullValue struct{}

func (NullValue) Kind() Kind { return KindNull }

//-----------------------------------------------------------------------------
// Arrays
//-----------------------------------------------------------------------------

// ArrayKey is either an integer or a string key.
type ArrayKey struct {
	Str   string
	Int   int64
	IsInt bool
}

func IntKey(i int64) ArrayKey {
	return ArrayKey{Int: i, IsInt: true}
}

func StringKey(s string) ArrayKey {
	return ArrayKey{Str: s}
}

func (k ArrayKey) String() string {
	if k.IsInt {
		return fmt.Sprintf("%d", k.Int)
	}
	return k.Str
}

type ArrayEntry struct {
	Key   ArrayKey
	Value Value
}

// ArrayValue is an ordered mapping from key to value. Insertion order is
// preserved; key lookup ignores it.
type ArrayValue struct {
	Entries []ArrayEntry
}

func (v *ArrayValue) Kind() Kind { return KindArray }

func NewArrayValue(entries ...ArrayEntry) *ArrayValue {
	return &ArrayValue{Entries: entries}
}

// Lookup returns the value stored under key, if any.
func (v *ArrayValue) Lookup(key ArrayKey) (Value, bool) {
	if v == nil {
		return nil, false
	}
	for _, entry := range v.Entries {
		if entry.Key == key {
			return entry.Value, true
		}
	}
	return nil, false
}

// Set replaces the value under an existing key in place, or appends a new
// entry preserving insertion order.
func (v *ArrayValue) Set(key ArrayKey, val Value) {
	for i, entry := range v.Entries {
		if entry.Key == key {
			v.Entries[i].Value = val
			return
		}
	}
	v.Entries = append(v.Entries, ArrayEntry{Key: key, Value: val})
}

func (v *ArrayValue) Len() int {
	if v == nil {
		return 0
	}
	return len(v.Entries)
}

//-----------------------------------------------------------------------------
// Objects and resources
//-----------------------------------------------------------------------------

type PropertyEntry struct {
	Name  string
	Value Value
}

// ObjectValue carries a class identity and an ordered set of properties.
// Stringify, when non-nil, is the host-provided string conversion capability;
// objects without it cannot appear in string contexts.
type ObjectValue struct {
	Class     string
	Props     []PropertyEntry
	Stringify func() string
}

func (v *ObjectValue) Kind() Kind { return KindObject }

// Prop returns the named property, if present.
func (v *ObjectValue) Prop(name string) (Value, bool) {
	if v == nil {
		return nil, false
	}
	for _, entry := range v.Props {
		if entry.Name == name {
			return entry.Value, true
		}
	}
	return nil, false
}

// ResourceValue is an opaque host handle. Handles are compared by identity.
type ResourceValue struct {
	Handle  int64
	ResType string
}

func (v *ResourceValue) Kind() Kind { return KindResource }
