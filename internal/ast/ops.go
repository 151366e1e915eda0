package ast

// ArithOp is one of the four arithmetic operators.
type ArithOp string

const (
	OpAdd ArithOp = "+"
	OpSub ArithOp = "-"
	OpMul ArithOp = "*"
	OpDiv ArithOp = "/"
)

func (op ArithOp) String() string { return string(op) }

// ComparisonOp compares two integers.
type ComparisonOp string

const (
	CmpEq ComparisonOp = "=="
	CmpNe ComparisonOp = "!="
	CmpGe ComparisonOp = ">="
	CmpLe ComparisonOp = "<="
	CmpGt ComparisonOp = ">"
	CmpLt ComparisonOp = "<"
)

func (op ComparisonOp) String() string { return string(op) }

// BooleanOp joins two conditions.
type BooleanOp string

const (
	BoolOr  BooleanOp = "||"
	BoolAnd BooleanOp = "&&"
)

func (op BooleanOp) String() string { return string(op) }
