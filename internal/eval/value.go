package eval

import (
	"fmt"
	"math/big"
)

// Value is a sealed interface over the two runtime kinds: arbitrary-
// precision integer and boolean. Only Int and Bool implement it. There
// is no float, string, or null kind in this language.
type Value interface {
	costValue() // Sealed - only these types implement it
}

// Int is an arbitrary-precision integer value.
type Int struct {
	N *big.Int
}

func (Int) costValue() {}

func (v Int) String() string { return v.N.String() }

// Bool is a boolean value.
type Bool bool

func (Bool) costValue() {}

func (v Bool) String() string { return fmt.Sprintf("%t", bool(v)) }

// NewInt creates an Int from a machine integer.
func NewInt(n int64) Int {
	return Int{N: big.NewInt(n)}
}

// NewBigInt creates an Int from a big.Int. The value is copied; the
// environment never aliases caller-owned integers.
func NewBigInt(n *big.Int) Int {
	return Int{N: new(big.Int).Set(n)}
}

// NewBool creates a Bool.
func NewBool(b bool) Bool {
	return Bool(b)
}

// Vars is the environment: a mapping from variable name (without the
// "$" sigil) to a value. It is supplied per evaluation and not owned by
// the AST; callers must not mutate it concurrently with a read.
type Vars map[string]Value

// kindOf names a value's kind for diagnostics.
func kindOf(v Value) string {
	switch v.(type) {
	case Int:
		return "integer"
	case Bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
