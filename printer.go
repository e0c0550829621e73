// printer.go — debug rendering of expression trees in fully parenthesized
// prefix notation, e.g. "(+ 1.0 2.0)" or "(group (- 3.0))". Literals render
// through the canonical Value form, so numbers keep their trailing ".0".
package lox

import "strings"

// PrintExpr renders the tree rooted at expr.
func PrintExpr(expr Expr) string {
	switch e := expr.(type) {
	case *LiteralExpr:
		return e.Value.String()
	case *GroupingExpr:
		return parenthesize("group", e.Expression)
	case *UnaryExpr:
		return parenthesize(e.Operator.Lexeme, e.Right)
	case *BinaryExpr:
		return parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	}
	return ""
}

func parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		b.WriteString(PrintExpr(e))
	}
	b.WriteByte(')')
	return b.String()
}
