// Package lox implements the expression core of the Lox language: a lexer,
// a recursive-descent parser, and a tree-walking evaluator with explicit
// failure semantics. Data flows strictly left to right, text → tokens →
// tree → value; every stage uses a fresh instance per input and holds no
// shared mutable state.
package lox

// Version is the release version reported by the CLI.
const Version = "0.1.0"

// ParseSource scans and parses src into a single expression tree. The
// returned error is a *Report: the first lexical report when scanning
// found any, else the syntax report when parsing failed.
func ParseSource(src string) (Expr, error) {
	tokens, reports := NewLexer(src).Scan()
	if len(reports) > 0 {
		return nil, reports[0]
	}
	expr, rep := NewParser(tokens).Parse()
	if rep != nil {
		return nil, rep
	}
	return expr, nil
}

// EvalSource runs the whole pipeline on src and returns the resulting
// value, or the first error from whichever stage failed.
func EvalSource(src string) (Value, error) {
	expr, err := ParseSource(src)
	if err != nil {
		return Value{}, err
	}
	return NewInterpreter().Evaluate(expr)
}
