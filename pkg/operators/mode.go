// Package operators implements the operator evaluation engine of the Solis
// runtime. The engine is stateless and pure: callers evaluate operands to
// values, then ask the engine for the result of a single operator application
// under an explicit mode. Strict mode decisions depend only on type tags,
// never on operand values; weak mode reproduces the legacy juggling rules.
package operators

// Mode selects the operator semantics for a compilation unit. It is resolved
// once per unit by the host (see pkg/units) and threaded explicitly through
// every evaluation call.
type Mode int

const (
	Weak Mode = iota
	Strict
)

func (m Mode) String() string {
	if m == Strict {
		return "strict"
	}
	return "weak"
}
