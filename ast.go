package lox

// Expr is the closed set of expression nodes built by the parser. The
// variants are fixed, so consumers dispatch with an exhaustive type switch
// rather than a visitor. Each composite node exclusively owns its children;
// the tree is built bottom-up and is immutable after construction.
type Expr interface {
	isExpr()
}

// LiteralExpr yields a fixed runtime value.
type LiteralExpr struct {
	Value Value
}

// GroupingExpr is a parenthesized sub-expression.
type GroupingExpr struct {
	Expression Expr
}

// UnaryExpr applies a prefix operator ("!" or "-") to its operand.
type UnaryExpr struct {
	Operator Token
	Right    Expr
}

// BinaryExpr applies an infix operator to two operands.
type BinaryExpr struct {
	Left     Expr
	Operator Token
	Right    Expr
}

func (*LiteralExpr) isExpr()  {}
func (*GroupingExpr) isExpr() {}
func (*UnaryExpr) isExpr()    {}
func (*BinaryExpr) isExpr()   {}
