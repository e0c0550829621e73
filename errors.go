// errors.go: the two failure channels of the core, plus a snippet renderer.
//
// Source errors (lexical + syntax) are represented uniformly as a *Report;
// runtime failures as a *RuntimeError tied to the offending token. Both wire
// formats are stable and consumed verbatim by the CLI. PrettyError adds an
// optional human-oriented rendering with numbered source context; it never
// replaces the wire formats.
package lox

import (
	"fmt"
	"strings"
)

// Report is a lexical or syntax error with source-line context.
// Where is either empty, " at end", or " at '<lexeme>'".
type Report struct {
	Line    int
	Where   string
	Message string
}

func (r *Report) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", r.Line, r.Where, r.Message)
}

// reportAt builds a Report with no location annotation (lexical errors).
func reportAt(line int, message string) *Report {
	return &Report{Line: line, Message: message}
}

// reportAtToken builds a Report positioned at a token: "at end" for the
// end-marker, "at '<lexeme>'" otherwise (syntax errors).
func reportAtToken(tok Token, message string) *Report {
	where := " at end"
	if tok.Type != EOF {
		where = fmt.Sprintf(" at '%s'", tok.Lexeme)
	}
	return &Report{Line: tok.Line, Where: where, Message: message}
}

// RuntimeError is an evaluation-time failure tied to the offending token.
type RuntimeError struct {
	Token   Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Line)
}

// InternalError marks an invariant the grammar guarantees cannot be
// violated, e.g. an operator token category reaching the evaluator at a
// site that cannot produce it. It is a defect signal, not a user-facing
// runtime error, and is kept as a distinct type so callers can tell the
// two apart.
type InternalError struct {
	Token   Token
	Message string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %s (token %s, line %d)", e.Message, e.Token.Type, e.Token.Line)
}

// PrettyError returns a multi-line rendering of a *Report or *RuntimeError
// with up to one line of numbered source context on each side of the
// offending line. Any other error is returned unchanged via Error().
func PrettyError(err error, src string) string {
	switch e := err.(type) {
	case *Report:
		return prettySnippet(src, "Error"+e.Where, e.Line, e.Message)
	case *RuntimeError:
		return prettySnippet(src, "Runtime error", e.Token.Line, e.Message)
	default:
		return err.Error()
	}
}

// prettySnippet builds the numbered-gutter snippet. The line is clamped to
// the source bounds so a stale coordinate cannot break rendering.
func prettySnippet(src, header string, line int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s at line %d: %s\n", header, line, msg)
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
