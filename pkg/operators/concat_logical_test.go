package operators

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"solis/runtime-go/pkg/runtime"
)

func TestStrictConcat(t *testing.T) {
	assert.Equal(t, "n=42", mustString(t)(EvaluateConcat(str("n="), integer(42), Strict)))
	assert.Equal(t, "1.5x", mustString(t)(EvaluateConcat(float(1.5), str("x"), Strict)))
	assert.Equal(t, "left", mustString(t)(EvaluateConcat(str("left"), null(), Strict)))

	stringable := &runtime.ObjectValue{Class: "Path", Stringify: func() string { return "/tmp" }}
	assert.Equal(t, "/tmp!", mustString(t)(EvaluateConcat(stringable, str("!"), Strict)))
}

func TestStrictConcatNullRepresentations(t *testing.T) {
	// A nil interface and NullValue{} are the same null; both cast to "".
	assert.Equal(t, "x", mustString(t)(EvaluateConcat(str("x"), nil, Strict)))
	assert.Equal(t, "x", mustString(t)(EvaluateConcat(nil, str("x"), Strict)))
	assert.Equal(t, "x", mustString(t)(EvaluateConcat(str("x"), null(), Strict)))
	assert.Equal(t, "", mustString(t)(EvaluateConcat(nil, null(), Strict)))
	assert.Equal(t, "x", mustString(t)(EvaluateConcat(str("x"), nil, Weak)))
}

func TestStrictConcatRejections(t *testing.T) {
	_, err := EvaluateConcat(str(""), boolean(true), Strict)
	typeErr := requireTypeError(t, err, TypeErrorUnsupported)
	assert.Equal(t, "bool", typeErr.Tag)

	_, err = EvaluateConcat(arr(), str(""), Strict)
	requireTypeError(t, err, TypeErrorUnsupported)

	_, err = EvaluateConcat(str(""), &runtime.ResourceValue{Handle: 1}, Strict)
	requireTypeError(t, err, TypeErrorUnsupported)

	plain := &runtime.ObjectValue{Class: "Opaque"}
	_, err = EvaluateConcat(plain, str(""), Strict)
	typeErr = requireTypeError(t, err, TypeErrorUnsupported)
	assert.Equal(t, "object", typeErr.Tag)
}

func TestLogicalIsModeIndependentAndTotal(t *testing.T) {
	truthyOperands := []runtime.Value{integer(1), float(0.5), str("x"), boolean(true), arr(integer(0)), object("X"), &runtime.ResourceValue{Handle: 1}}
	falsyOperands := []runtime.Value{integer(0), float(0), str(""), str("0"), boolean(false), null(), arr()}

	for _, v := range truthyOperands {
		assert.Equal(t, runtime.BoolValue{Val: false}, EvaluateLogical("!", v, nil), DescribeValue(v))
	}
	for _, v := range falsyOperands {
		assert.Equal(t, runtime.BoolValue{Val: true}, EvaluateLogical("!", v, nil), DescribeValue(v))
	}

	assert.Equal(t, runtime.BoolValue{Val: true}, EvaluateLogical("&&", integer(1), str("x")))
	assert.Equal(t, runtime.BoolValue{Val: false}, EvaluateLogical("&&", integer(1), str("0")))
	assert.Equal(t, runtime.BoolValue{Val: true}, EvaluateLogical("||", null(), float(2)))
	assert.Equal(t, runtime.BoolValue{Val: true}, EvaluateLogical("xor", boolean(true), str("")))
	assert.Equal(t, runtime.BoolValue{Val: false}, EvaluateLogical("xor", boolean(true), boolean(true)))
}
