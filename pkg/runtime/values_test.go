package runtime

import "testing"

func TestClassifyCoversEveryTag(t *testing.T) {
	cases := []struct {
		value Value
		want  Kind
	}{
		{IntegerValue{Val: 1}, KindInteger},
		{FloatValue{Val: 1.5}, KindFloat},
		{BoolValue{Val: true}, KindBool},
		{StringValue{Val: "x"}, KindString},
		{NullValue{}, KindNull},
		{nil, KindNull},
		{NewArrayValue(), KindArray},
		{&ObjectValue{Class: "X"}, KindObject},
		{&ResourceValue{Handle: 1}, KindResource},
	}
	for _, tc := range cases {
		if got := Classify(tc.value); got != tc.want {
			t.Fatalf("Classify(%#v) = %s, want %s", tc.value, got, tc.want)
		}
		// Referential transparency: a second call answers the same.
		if got := Classify(tc.value); got != tc.want {
			t.Fatalf("Classify(%#v) not deterministic", tc.value)
		}
	}
}

func TestKindStringNames(t *testing.T) {
	names := map[Kind]string{
		KindInteger:  "int",
		KindFloat:    "float",
		KindBool:     "bool",
		KindString:   "string",
		KindNull:     "null",
		KindArray:    "array",
		KindObject:   "object",
		KindResource: "resource",
	}
	for kind, want := range names {
		if kind.String() != want {
			t.Fatalf("Kind(%d).String() = %q, want %q", int(kind), kind.String(), want)
		}
	}
}

func TestArrayInsertionOrderAndLookup(t *testing.T) {
	a := NewArrayValue()
	a.Set(StringKey("b"), IntegerValue{Val: 1})
	a.Set(IntKey(0), IntegerValue{Val: 2})
	a.Set(StringKey("a"), IntegerValue{Val: 3})
	a.Set(StringKey("b"), IntegerValue{Val: 9})

	if a.Len() != 3 {
		t.Fatalf("Len = %d, want 3", a.Len())
	}
	// Replacing a value keeps the key's original position.
	if a.Entries[0].Key != StringKey("b") {
		t.Fatalf("first key = %v, want b", a.Entries[0].Key)
	}
	got, ok := a.Lookup(StringKey("b"))
	if !ok || got.(IntegerValue).Val != 9 {
		t.Fatalf("Lookup(b) = %v, %v", got, ok)
	}
	if _, ok := a.Lookup(StringKey("missing")); ok {
		t.Fatal("Lookup(missing) reported a hit")
	}
	// Integer and string keys are distinct even when they render alike.
	a.Set(StringKey("0"), IntegerValue{Val: 7})
	intKeyed, _ := a.Lookup(IntKey(0))
	strKeyed, _ := a.Lookup(StringKey("0"))
	if intKeyed.(IntegerValue).Val == strKeyed.(IntegerValue).Val {
		t.Fatal("int key 0 and string key \"0\" collided")
	}
}

func TestObjectPropLookup(t *testing.T) {
	obj := &ObjectValue{Class: "Point", Props: []PropertyEntry{
		{Name: "x", Value: IntegerValue{Val: 1}},
		{Name: "y", Value: IntegerValue{Val: 2}},
	}}
	if v, ok := obj.Prop("y"); !ok || v.(IntegerValue).Val != 2 {
		t.Fatalf("Prop(y) = %v, %v", v, ok)
	}
	if _, ok := obj.Prop("z"); ok {
		t.Fatal("Prop(z) reported a hit")
	}
}

func TestTruthiness(t *testing.T) {
	falsy := []Value{nil, BoolValue{}, IntegerValue{}, FloatValue{}, StringValue{}, StringValue{Val: "0"}, NullValue{}, NewArrayValue()}
	for _, v := range falsy {
		if Truthy(v) {
			t.Fatalf("Truthy(%#v) = true, want false", v)
		}
	}
	truthy := []Value{
		BoolValue{Val: true}, IntegerValue{Val: -1}, FloatValue{Val: 0.1},
		StringValue{Val: "00"}, StringValue{Val: "false"},
		NewArrayValue(ArrayEntry{Key: IntKey(0), Value: NullValue{}}),
		&ObjectValue{Class: "X"}, &ResourceValue{Handle: 0},
	}
	for _, v := range truthy {
		if !Truthy(v) {
			t.Fatalf("Truthy(%#v) = false, want true", v)
		}
	}
}
