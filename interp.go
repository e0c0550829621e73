// interp.go — tree-walking evaluator.
//
// Evaluation is a single depth-first post-order walk: children are evaluated
// before the parent operator is applied, and the walk stops at the first
// failure. Internally failures are signalled by panicking with a small
// sentinel and recovered once at the Evaluate boundary, so the recursive
// walk does not thread errors manually. Two sentinels exist: rtErr for
// user-facing runtime errors, and defect for states the grammar guarantees
// are unreachable.
package lox

// Interpreter evaluates expression trees. It holds no state; a fresh value
// works, and instances must not be shared across concurrent evaluations.
type Interpreter struct{}

func NewInterpreter() *Interpreter { return &Interpreter{} }

type rtErr struct {
	tok Token
	msg string
}

type defect struct {
	tok Token
	msg string
}

// failAt raises a user-facing runtime error at the offending token.
func failAt(tok Token, msg string) {
	panic(rtErr{tok: tok, msg: msg})
}

// failDefect raises an internal invariant violation. These are defects in
// the pipeline, never user errors; the grammar cannot produce them.
func failDefect(tok Token, msg string) {
	panic(defect{tok: tok, msg: msg})
}

// Evaluate walks the tree and produces a single runtime value, or exactly
// one error: *RuntimeError for user-facing failures, *InternalError for
// invariant violations. No partial results are surfaced.
func (ip *Interpreter) Evaluate(expr Expr) (v Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			switch sig := r.(type) {
			case rtErr:
				v = Value{}
				err = &RuntimeError{Token: sig.tok, Message: sig.msg}
			case defect:
				v = Value{}
				err = &InternalError{Token: sig.tok, Message: sig.msg}
			default:
				panic(r)
			}
		}
	}()
	return ip.eval(expr), nil
}

func (ip *Interpreter) eval(expr Expr) Value {
	switch e := expr.(type) {
	case *LiteralExpr:
		return e.Value
	case *GroupingExpr:
		return ip.eval(e.Expression)
	case *UnaryExpr:
		return ip.evalUnary(e)
	case *BinaryExpr:
		return ip.evalBinary(e)
	}
	failDefect(Token{}, "unknown expression node")
	return Value{}
}

func (ip *Interpreter) evalUnary(e *UnaryExpr) Value {
	right := ip.eval(e.Right)

	switch e.Operator.Type {
	case BANG:
		return Bool(!right.Truthy())
	case MINUS:
		if right.Tag != VTNum {
			failAt(e.Operator, "Operand must be a number.")
		}
		return Num(-right.AsNum())
	}
	failDefect(e.Operator, "unexpected unary operator")
	return Value{}
}

func (ip *Interpreter) evalBinary(e *BinaryExpr) Value {
	left := ip.eval(e.Left)
	right := ip.eval(e.Right)
	op := e.Operator

	switch op.Type {
	case BANG_EQUAL:
		return Bool(!left.Equal(right))
	case EQUAL_EQUAL:
		return Bool(left.Equal(right))
	case MINUS:
		a, b := checkNumberOperands(left, right, op)
		return Num(a - b)
	case STAR:
		a, b := checkNumberOperands(left, right, op)
		return Num(a * b)
	case SLASH:
		a, b := checkNumberOperands(left, right, op)
		if b == 0 {
			failAt(op, "Division by 0")
		}
		return Num(a / b)
	case GREATER:
		a, b := checkNumberOperands(left, right, op)
		return Bool(a > b)
	case GREATER_EQUAL:
		a, b := checkNumberOperands(left, right, op)
		return Bool(a >= b)
	case LESS:
		a, b := checkNumberOperands(left, right, op)
		return Bool(a < b)
	case LESS_EQUAL:
		a, b := checkNumberOperands(left, right, op)
		return Bool(a <= b)
	case PLUS:
		if left.Tag == VTNum && right.Tag == VTNum {
			return Num(left.AsNum() + right.AsNum())
		}
		if left.Tag == VTStr && right.Tag == VTStr {
			return Str(left.AsStr() + right.AsStr())
		}
		failAt(op, "Operands must be two numbers or two strings.")
	}
	failDefect(op, "unexpected binary operator")
	return Value{}
}

// checkNumberOperands narrows both operands to numbers for the arithmetic
// and comparison operators.
func checkNumberOperands(left, right Value, op Token) (float64, float64) {
	if left.Tag != VTNum || right.Tag != VTNum {
		failAt(op, "Operands must be numbers.")
	}
	return left.AsNum(), right.AsNum()
}
