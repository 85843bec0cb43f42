package operators

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"solis/runtime-go/pkg/runtime"
)

func TestMatchCaseScalars(t *testing.T) {
	assert.True(t, MatchCase(integer(42), integer(42)))
	assert.False(t, MatchCase(integer(0), str("0")))
	assert.False(t, MatchCase(integer(1), boolean(true)))
	assert.False(t, MatchCase(integer(1), float(1.0)))
	assert.True(t, MatchCase(null(), null()))
	assert.False(t, MatchCase(null(), boolean(false)))

	// Numeric-looking strings stay strings.
	assert.False(t, MatchCase(str("100"), str("1e2")))
	assert.True(t, MatchCase(str("100"), str("100")))
}

func TestMatchCaseArraysOrderInsensitive(t *testing.T) {
	subject := runtime.NewArrayValue()
	subject.Set(runtime.StringKey("bar"), integer(1))
	subject.Set(runtime.StringKey("foo"), integer(42))
	label := runtime.NewArrayValue()
	label.Set(runtime.StringKey("foo"), integer(42))
	label.Set(runtime.StringKey("bar"), integer(1))
	assert.True(t, MatchCase(subject, label))

	missing := runtime.NewArrayValue()
	missing.Set(runtime.StringKey("foo"), integer(42))
	assert.False(t, MatchCase(subject, missing))

	coerced := runtime.NewArrayValue()
	coerced.Set(runtime.StringKey("foo"), str("42"))
	coerced.Set(runtime.StringKey("bar"), integer(1))
	assert.False(t, MatchCase(subject, coerced))
}

func TestMatchCaseNestedArrays(t *testing.T) {
	subject := arr(arr(integer(1), integer(2)), str("x"))
	label := arr(arr(integer(1), integer(2)), str("x"))
	assert.True(t, MatchCase(subject, label))

	deviant := arr(arr(integer(1), integer(3)), str("x"))
	assert.False(t, MatchCase(subject, deviant))
}

func TestMatchCaseObjects(t *testing.T) {
	a := object("Point", prop("x", integer(1)))
	b := object("Point", prop("x", integer(1)))
	c := object("Point", prop("x", integer(2)))
	d := object("Vector", prop("x", integer(1)))
	assert.True(t, MatchCase(a, b))
	assert.False(t, MatchCase(a, c))
	// Different classes never match and never error.
	assert.False(t, MatchCase(a, d))
}

func TestMatchCaseNeverPanicsOrErrors(t *testing.T) {
	values := []runtime.Value{
		integer(0), float(0), boolean(false), str(""), null(), arr(integer(1)),
		object("X", prop("p", null())), &runtime.ResourceValue{Handle: 9}, nil,
	}
	for _, subject := range values {
		for _, label := range values {
			// Exercising every pair; the matcher must stay total.
			MatchCase(subject, label)
		}
	}
	assert.True(t, MatchCase(nil, null()))
}

func TestMatchCaseSelfReferentialArrayTerminates(t *testing.T) {
	a := runtime.NewArrayValue()
	a.Set(runtime.StringKey("self"), a)
	b := runtime.NewArrayValue()
	b.Set(runtime.StringKey("self"), b)
	assert.True(t, MatchCase(a, b))
}
