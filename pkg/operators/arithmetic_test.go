package operators

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solis/runtime-go/pkg/runtime"
)

func mustFloat(t *testing.T) func(runtime.Value, error) float64 {
	return func(v runtime.Value, err error) float64 {
		t.Helper()
		require.NoError(t, err)
		f, ok := v.(runtime.FloatValue)
		require.True(t, ok, "expected float result, got %s", DescribeValue(v))
		return f.Val
	}
}

func TestStrictArithmeticWidening(t *testing.T) {
	assert.Equal(t, int64(5), mustInt(t)(EvaluateArithmetic("+", integer(2), integer(3), Strict)))
	assert.InDelta(t, 3.2, mustFloat(t)(EvaluateArithmetic("+", float(1.2), integer(2), Strict)), 1e-12)
	assert.InDelta(t, 3.2, mustFloat(t)(EvaluateArithmetic("+", integer(2), float(1.2), Strict)), 1e-12)
	assert.Equal(t, int64(6), mustInt(t)(EvaluateArithmetic("*", integer(2), integer(3), Strict)))
	assert.Equal(t, int64(8), mustInt(t)(EvaluateArithmetic("**", integer(2), integer(3), Strict)))
	assert.InDelta(t, 0.25, mustFloat(t)(EvaluateArithmetic("**", integer(2), integer(-2), Strict)), 1e-12)
}

func TestStrictArithmeticRejectsNonNumerics(t *testing.T) {
	_, err := EvaluateArithmetic("+", str("1"), integer(2), Strict)
	typeErr := requireTypeError(t, err, TypeErrorUnsupported)
	assert.Equal(t, "string", typeErr.Tag)

	_, err = EvaluateArithmetic("-", integer(2), boolean(true), Strict)
	typeErr = requireTypeError(t, err, TypeErrorUnsupported)
	assert.Equal(t, "bool", typeErr.Tag)

	_, err = EvaluateArithmetic("*", null(), integer(2), Strict)
	requireTypeError(t, err, TypeErrorUnsupported)
}

func TestStrictDivision(t *testing.T) {
	assert.Equal(t, int64(3), mustInt(t)(EvaluateArithmetic("/", integer(6), integer(2), Strict)))
	assert.InDelta(t, 1.5, mustFloat(t)(EvaluateArithmetic("/", integer(3), integer(2), Strict)), 1e-12)

	_, err := EvaluateArithmetic("/", integer(1), integer(0), Strict)
	var arithErr *ArithmeticError
	require.True(t, errors.As(err, &arithErr))

	_, err = EvaluateArithmetic("%", integer(1), integer(0), Strict)
	require.True(t, errors.As(err, &arithErr))

	_, err = EvaluateArithmetic("/", float(1), float(0), Strict)
	require.True(t, errors.As(err, &arithErr))
}

func TestStrictModulo(t *testing.T) {
	assert.Equal(t, int64(1), mustInt(t)(EvaluateArithmetic("%", integer(7), integer(3), Strict)))
	assert.Equal(t, int64(-1), mustInt(t)(EvaluateArithmetic("%", integer(-7), integer(3), Strict)))
	assert.InDelta(t, 0.5, mustFloat(t)(EvaluateArithmetic("%", float(2.5), integer(2), Strict)), 1e-12)
}

func TestIntegerOverflowDegradesToFloat(t *testing.T) {
	huge := integer(math.MaxInt64)
	got, err := EvaluateArithmetic("+", huge, integer(1), Strict)
	require.NoError(t, err)
	_, isFloat := got.(runtime.FloatValue)
	assert.True(t, isFloat, "got %s", DescribeValue(got))

	got, err = EvaluateArithmetic("*", huge, integer(2), Strict)
	require.NoError(t, err)
	_, isFloat = got.(runtime.FloatValue)
	assert.True(t, isFloat, "got %s", DescribeValue(got))

	got, err = EvaluateArithmetic("**", integer(2), integer(80), Strict)
	require.NoError(t, err)
	_, isFloat = got.(runtime.FloatValue)
	assert.True(t, isFloat, "got %s", DescribeValue(got))
}

func TestArrayUnion(t *testing.T) {
	left := runtime.NewArrayValue()
	left.Set(runtime.StringKey("a"), integer(1))
	left.Set(runtime.StringKey("b"), integer(2))
	right := runtime.NewArrayValue()
	right.Set(runtime.StringKey("b"), integer(99))
	right.Set(runtime.StringKey("c"), integer(3))

	got, err := EvaluateArithmetic("+", left, right, Strict)
	require.NoError(t, err)
	merged, ok := got.(*runtime.ArrayValue)
	require.True(t, ok)
	require.Equal(t, 3, merged.Len())

	// Left keys win on conflict; right-only keys append in their order.
	b, _ := merged.Lookup(runtime.StringKey("b"))
	assert.Equal(t, integer(2), b)
	c, _ := merged.Lookup(runtime.StringKey("c"))
	assert.Equal(t, integer(3), c)
	assert.Equal(t, runtime.StringKey("a"), merged.Entries[0].Key)
	assert.Equal(t, runtime.StringKey("c"), merged.Entries[2].Key)

	// The union must not alias the left operand.
	merged.Set(runtime.StringKey("d"), integer(4))
	assert.Equal(t, 2, left.Len())
}

func TestArrayPlusNonArrayIsMismatch(t *testing.T) {
	_, err := EvaluateArithmetic("+", arr(integer(1)), integer(1), Strict)
	typeErr := requireTypeError(t, err, TypeErrorMismatch)
	assert.Equal(t, "array", typeErr.LeftTag)
	assert.Equal(t, "int", typeErr.RightTag)

	_, err = EvaluateArithmetic("+", integer(1), arr(integer(1)), Strict)
	requireTypeError(t, err, TypeErrorMismatch)

	// Arrays never reach the other arithmetic operators.
	_, err = EvaluateArithmetic("-", arr(), arr(), Strict)
	requireTypeError(t, err, TypeErrorUnsupported)
}

func TestStrictIncDec(t *testing.T) {
	assert.Equal(t, int64(3), mustInt(t)(EvaluateIncDec("++", integer(2), Strict)))
	assert.Equal(t, int64(1), mustInt(t)(EvaluateIncDec("--", integer(2), Strict)))
	assert.InDelta(t, 2.5, mustFloat(t)(EvaluateIncDec("++", float(1.5), Strict)), 1e-12)

	for _, operand := range []runtime.Value{str("a"), str("5"), boolean(true), null(), arr(), object("X"), &runtime.ResourceValue{Handle: 1}} {
		_, err := EvaluateIncDec("++", operand, Strict)
		requireTypeError(t, err, TypeErrorUnsupported)
	}
}
