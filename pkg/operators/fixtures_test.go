package operators

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"solis/runtime-go/pkg/runtime"
)

func TestConformanceFixtures(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths, "no fixture files under testdata")
	for _, path := range paths {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			file, err := LoadFixtureFile(path)
			require.NoError(t, err)
			for i := range file.Cases {
				c := &file.Cases[i]
				t.Run(c.Name, func(t *testing.T) {
					if err := c.Check(); err != nil {
						t.Fatal(err)
					}
				})
			}
		})
	}
}

func TestFixtureValueBuild(t *testing.T) {
	key := "foo"
	idx := int64(3)
	fixture := &FixtureValue{
		Type: "array",
		Elems: []FixtureEntry{
			{Key: &key, Value: &FixtureValue{Type: "int", Int: 42}},
			{Value: &FixtureValue{Type: "string", Str: "x"}},
			{KeyInt: &idx, Value: &FixtureValue{Type: "bool", Bool: true}},
			{Value: &FixtureValue{Type: "null"}},
		},
	}
	got, err := fixture.Build()
	require.NoError(t, err)

	want := runtime.NewArrayValue()
	want.Set(runtime.StringKey("foo"), runtime.IntegerValue{Val: 42})
	want.Set(runtime.IntKey(0), runtime.StringValue{Val: "x"})
	want.Set(runtime.IntKey(3), runtime.BoolValue{Val: true})
	want.Set(runtime.IntKey(4), runtime.NullValue{})

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("built array mismatch (-want +got):\n%s", diff)
	}
}

func TestFixtureObjectBuild(t *testing.T) {
	rendered := "[obj]"
	fixture := &FixtureValue{
		Type:      "object",
		Class:     "Renderable",
		Props:     []FixtureProp{{Name: "n", Value: &FixtureValue{Type: "int", Int: 1}}},
		Stringify: &rendered,
	}
	built, err := fixture.Build()
	require.NoError(t, err)
	obj, ok := built.(*runtime.ObjectValue)
	require.True(t, ok)
	require.Equal(t, "Renderable", obj.Class)
	require.NotNil(t, obj.Stringify)
	require.Equal(t, "[obj]", obj.Stringify())

	got, err := EvaluateConcat(built, runtime.StringValue{Val: "!"}, Strict)
	require.NoError(t, err)
	if diff := cmp.Diff(runtime.StringValue{Val: "[obj]!"}, got); diff != "" {
		t.Fatalf("concat mismatch (-want +got):\n%s", diff)
	}
}

func TestFixtureCaseRejectsUnknowns(t *testing.T) {
	badOp := &FixtureCase{Name: "x", Op: "=~"}
	_, err := badOp.Run()
	require.Error(t, err)

	badMode := &FixtureCase{Name: "x", Op: "==", Mode: "loose"}
	_, err = badMode.Run()
	require.Error(t, err)

	badValue := &FixtureValue{Type: "tuple"}
	_, err = badValue.Build()
	require.Error(t, err)
}
