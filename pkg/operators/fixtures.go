package operators

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"solis/runtime-go/pkg/runtime"
)

// The fixture format drives the conformance suite: each case names an
// operator, a mode, operand values, and either an expected value, an expected
// error, or an expected match verdict for the switch matcher. The same files
// are consumed by `go test` and by the solis-ops CLI.

type FixtureFile struct {
	Cases []FixtureCase `yaml:"cases"`
}

type FixtureCase struct {
	Name        string        `yaml:"name"`
	Op          string        `yaml:"op"`
	Mode        string        `yaml:"mode"`
	Left        *FixtureValue `yaml:"left"`
	Right       *FixtureValue `yaml:"right"`
	Want        *FixtureValue `yaml:"want"`
	WantErr     string        `yaml:"want_err"`
	ErrContains string        `yaml:"err_contains"`
	WantMatch   *bool         `yaml:"want_match"`
}

// FixtureValue is a tagged literal. Type selects which field is read.
type FixtureValue struct {
	Type      string         `yaml:"type"`
	Int       int64          `yaml:"int"`
	Float     float64        `yaml:"float"`
	Bool      bool           `yaml:"bool"`
	Str       string         `yaml:"string"`
	Elems     []FixtureEntry `yaml:"elems"`
	Class     string         `yaml:"class"`
	Props     []FixtureProp  `yaml:"props"`
	Stringify *string        `yaml:"stringify"`
	Handle    int64          `yaml:"handle"`
}

type FixtureEntry struct {
	Key    *string       `yaml:"key"`
	KeyInt *int64        `yaml:"key_int"`
	Value  *FixtureValue `yaml:"value"`
}

type FixtureProp struct {
	Name  string        `yaml:"name"`
	Value *FixtureValue `yaml:"value"`
}

// LoadFixtureFile reads and decodes one conformance fixture file.
func LoadFixtureFile(path string) (*FixtureFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file FixtureFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("fixture %s: %w", path, err)
	}
	for i := range file.Cases {
		if file.Cases[i].Name == "" {
			return nil, fmt.Errorf("fixture %s: case %d has no name", path, i)
		}
		if file.Cases[i].Op == "" {
			return nil, fmt.Errorf("fixture %s: case %q has no op", path, file.Cases[i].Name)
		}
	}
	return &file, nil
}

// Build converts a fixture literal into a runtime value.
func (v *FixtureValue) Build() (runtime.Value, error) {
	if v == nil {
		return runtime.NullValue{}, nil
	}
	switch v.Type {
	case "int":
		return runtime.IntegerValue{Val: v.Int}, nil
	case "float":
		return runtime.FloatValue{Val: v.Float}, nil
	case "bool":
		return runtime.BoolValue{Val: v.Bool}, nil
	case "string":
		return runtime.StringValue{Val: v.Str}, nil
	case "null":
		return runtime.NullValue{}, nil
	case "array":
		arr := runtime.NewArrayValue()
		nextIndex := int64(0)
		for _, entry := range v.Elems {
			var key runtime.ArrayKey
			switch {
			case entry.KeyInt != nil:
				key = runtime.IntKey(*entry.KeyInt)
				if *entry.KeyInt >= nextIndex {
					nextIndex = *entry.KeyInt + 1
				}
			case entry.Key != nil:
				key = runtime.StringKey(*entry.Key)
			default:
				key = runtime.IntKey(nextIndex)
				nextIndex++
			}
			val, err := entry.Value.Build()
			if err != nil {
				return nil, err
			}
			arr.Set(key, val)
		}
		return arr, nil
	case "object":
		obj := &runtime.ObjectValue{Class: v.Class}
		for _, prop := range v.Props {
			val, err := prop.Value.Build()
			if err != nil {
				return nil, err
			}
			obj.Props = append(obj.Props, runtime.PropertyEntry{Name: prop.Name, Value: val})
		}
		if v.Stringify != nil {
			rendered := *v.Stringify
			obj.Stringify = func() string { return rendered }
		}
		return obj, nil
	case "resource":
		return &runtime.ResourceValue{Handle: v.Handle, ResType: v.Class}, nil
	default:
		return nil, fmt.Errorf("unknown fixture value type %q", v.Type)
	}
}

func (c *FixtureCase) mode() (Mode, error) {
	switch c.Mode {
	case "", "strict":
		return Strict, nil
	case "weak":
		return Weak, nil
	default:
		return Strict, fmt.Errorf("case %q: unknown mode %q", c.Name, c.Mode)
	}
}

// Run evaluates the case's operator application. For op "case" the matcher
// verdict is returned as a boolean value.
func (c *FixtureCase) Run() (runtime.Value, error) {
	mode, err := c.mode()
	if err != nil {
		return nil, err
	}
	left, err := c.Left.Build()
	if err != nil {
		return nil, err
	}
	right, err := c.Right.Build()
	if err != nil {
		return nil, err
	}
	switch c.Op {
	case "==", "!=", "===", "!==", "<", "<=", ">", ">=", "<=>":
		return EvaluateComparison(c.Op, left, right, mode)
	case "+", "-", "*", "/", "%", "**":
		return EvaluateArithmetic(c.Op, left, right, mode)
	case "&", "|", "^", "~", "<<", ">>":
		return EvaluateBitwise(c.Op, left, right, mode)
	case ".":
		return EvaluateConcat(left, right, mode)
	case "&&", "||", "xor", "!":
		return EvaluateLogical(c.Op, left, right), nil
	case "++", "--":
		return EvaluateIncDec(c.Op, left, mode)
	case "case":
		return runtime.BoolValue{Val: MatchCase(left, right)}, nil
	default:
		return nil, fmt.Errorf("case %q: unknown operator %q", c.Name, c.Op)
	}
}

// Check runs the case and verifies it against its expectations, reporting the
// first discrepancy.
func (c *FixtureCase) Check() error {
	result, err := c.Run()
	if c.WantErr != "" {
		if err == nil {
			return fmt.Errorf("case %q: expected %s error, got %s", c.Name, c.WantErr, DescribeValue(result))
		}
		if kind := classifyFixtureError(err); kind != c.WantErr {
			return fmt.Errorf("case %q: expected %s error, got %s (%v)", c.Name, c.WantErr, kind, err)
		}
		if c.ErrContains != "" && !strings.Contains(err.Error(), c.ErrContains) {
			return fmt.Errorf("case %q: error %q does not contain %q", c.Name, err.Error(), c.ErrContains)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("case %q: unexpected error: %v", c.Name, err)
	}
	if c.WantMatch != nil {
		got, ok := result.(runtime.BoolValue)
		if !ok {
			return fmt.Errorf("case %q: matcher produced %s", c.Name, DescribeValue(result))
		}
		if got.Val != *c.WantMatch {
			return fmt.Errorf("case %q: match = %v, want %v", c.Name, got.Val, *c.WantMatch)
		}
		return nil
	}
	want, buildErr := c.Want.Build()
	if buildErr != nil {
		return fmt.Errorf("case %q: bad want literal: %v", c.Name, buildErr)
	}
	if !identicalValues(result, want) {
		return fmt.Errorf("case %q: got %s, want %s", c.Name, DescribeValue(result), DescribeValue(want))
	}
	return nil
}

func classifyFixtureError(err error) string {
	switch e := err.(type) {
	case *TypeError:
		if e.ErrKind == TypeErrorUnsupported {
			return "unsupported"
		}
		return "mismatch"
	case *ArithmeticError:
		if e.ErrKind == arithmeticDivisionByZero {
			return "division_by_zero"
		}
		return "negative_shift"
	default:
		return "internal"
	}
}

// DescribeValue renders a value for diagnostics.
func DescribeValue(v runtime.Value) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case runtime.IntegerValue:
		return fmt.Sprintf("int(%d)", val.Val)
	case runtime.FloatValue:
		return fmt.Sprintf("float(%s)", formatFloat(val.Val))
	case runtime.BoolValue:
		return fmt.Sprintf("bool(%t)", val.Val)
	case runtime.StringValue:
		return fmt.Sprintf("string(%q)", val.Val)
	case runtime.NullValue:
		return "null"
	case *runtime.ArrayValue:
		parts := make([]string, 0, val.Len())
		for _, entry := range val.Entries {
			parts = append(parts, fmt.Sprintf("%s => %s", entry.Key, DescribeValue(entry.Value)))
		}
		return "array[" + strings.Join(parts, ", ") + "]"
	case *runtime.ObjectValue:
		return fmt.Sprintf("object(%s)", val.Class)
	case *runtime.ResourceValue:
		return fmt.Sprintf("resource(#%d)", val.Handle)
	default:
		return fmt.Sprintf("unknown(%v)", v)
	}
}
