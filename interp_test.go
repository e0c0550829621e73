package lox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustEval runs the full pipeline and fails the test on any error.
func mustEval(t *testing.T, src string) Value {
	t.Helper()
	v, err := EvalSource(src)
	require.NoError(t, err, "source: %s", src)
	return v
}

// mustFailEval requires a *RuntimeError whose Error() matches exactly.
func mustFailEval(t *testing.T, src, wantErr string) {
	t.Helper()
	_, err := EvalSource(src)
	require.Error(t, err, "source: %s", src)
	require.IsType(t, &RuntimeError{}, err, "source: %s", src)
	assert.Equal(t, wantErr, err.Error(), "source: %s", src)
}

func Test_Eval_Literals_RoundTrip(t *testing.T) {
	cases := []struct {
		src  string
		want Value
	}{
		{"42", Num(42)},
		{"0.5", Num(0.5)},
		{`"hi"`, Str("hi")},
		{"true", Bool(true)},
		{"false", Bool(false)},
		{"nil", NilValue},
	}
	for _, tc := range cases {
		got := mustEval(t, tc.src)
		assert.True(t, tc.want.Equal(got), "source: %s, got %s", tc.src, got)
	}
}

func Test_Eval_Grouping_IsTransparent(t *testing.T) {
	assert.True(t, Num(7).Equal(mustEval(t, "((7))")))
}

func Test_Eval_UnaryBang_Truthiness(t *testing.T) {
	cases := []struct {
		src  string
		want bool
	}{
		{"!nil", true},
		{"!false", true},
		{"!true", false},
		{"!0", false},        // zero is truthy
		{"!\"\"", false},     // empty string is truthy
		{"!\"true\"", false}, // non-empty string is truthy, whatever it spells
		{"!!false", false},
	}
	for _, tc := range cases {
		got := mustEval(t, tc.src)
		require.Equal(t, VTBool, got.Tag, "source: %s", tc.src)
		assert.Equal(t, tc.want, got.Data.(bool), "source: %s", tc.src)
	}
}

func Test_Eval_StringKeyword_IsStringNotBoolean(t *testing.T) {
	got := mustEval(t, `"true"`)
	assert.Equal(t, VTStr, got.Tag)
	assert.True(t, got.Truthy())
}

func Test_Eval_UnaryMinus(t *testing.T) {
	assert.True(t, Num(-63).Equal(mustEval(t, "-63")))
	assert.True(t, Num(42).Equal(mustEval(t, "--42")))
}

func Test_Eval_UnaryMinus_TypeError(t *testing.T) {
	mustFailEval(t, `-"muffin"`, "Operand must be a number.\n[line 1]")
	mustFailEval(t, "-nil", "Operand must be a number.\n[line 1]")
	mustFailEval(t, "-true", "Operand must be a number.\n[line 1]")
}

func Test_Eval_Arithmetic(t *testing.T) {
	cases := []struct {
		src  string
		want float64
	}{
		{"1 + 2", 3},
		{"5 - 3", 2},
		{"4 * 2.5", 10},
		{"62 / 5", 12.4},
		{"7 * 4 / 7 / 1", 4},
		{"66 - 25 * 66 - 65", 66 - 25*66 - 65},
		{"(-90 + 67) * (14 * 41) / (37 + 93)", (-90 + 67) * (14 * 41) / 130.0},
	}
	for _, tc := range cases {
		got := mustEval(t, tc.src)
		require.Equal(t, VTNum, got.Tag, "source: %s", tc.src)
		assert.Equal(t, tc.want, got.AsNum(), "source: %s", tc.src)
	}
}

func Test_Eval_DivisionResult_Rendering(t *testing.T) {
	assert.Equal(t, "12.4", mustEval(t, "62 / 5").String())
	assert.Equal(t, "4.0", mustEval(t, "7 * 4 / 7 / 1").String())
}

func Test_Eval_DivisionByZero_IsError_NotInfinity(t *testing.T) {
	mustFailEval(t, "1 / 0", "Division by 0\n[line 1]")
	mustFailEval(t, "0 / 0", "Division by 0\n[line 1]")
	mustFailEval(t, "5 / (3 - 3)", "Division by 0\n[line 1]")
}

func Test_Eval_Comparisons(t *testing.T) {
	cases := []struct {
		src  string
		want bool
	}{
		{"97 > 65", true},
		{"97 < 65", false},
		{"32 <= 129", true},
		{"32 <= 32", true},
		{"5 >= 6", false},
		{"5 >= 5", true},
	}
	for _, tc := range cases {
		got := mustEval(t, tc.src)
		require.Equal(t, VTBool, got.Tag, "source: %s", tc.src)
		assert.Equal(t, tc.want, got.Data.(bool), "source: %s", tc.src)
	}
}

func Test_Eval_Comparison_TypeErrors(t *testing.T) {
	mustFailEval(t, `1 < "2"`, "Operands must be numbers.\n[line 1]")
	mustFailEval(t, `"a" > "b"`, "Operands must be numbers.\n[line 1]")
	mustFailEval(t, "nil - 1", "Operands must be numbers.\n[line 1]")
	mustFailEval(t, `true * 3`, "Operands must be numbers.\n[line 1]")
}

func Test_Eval_Equality(t *testing.T) {
	cases := []struct {
		src  string
		want bool
	}{
		{"60 == 83", false},
		{"60 == 60", true},
		{`"foo" == "foo"`, true},
		{`"bar" != "hello"`, true},
		{"nil == nil", true},
		{"true == true", true},
		{"true == false", false},
		// cross-variant comparisons are always unequal, never an error
		{`1 == "1"`, false},
		{"nil == false", false},
		{`"" == 0`, false},
		{`61 == "61"`, false},
	}
	for _, tc := range cases {
		got := mustEval(t, tc.src)
		require.Equal(t, VTBool, got.Tag, "source: %s", tc.src)
		assert.Equal(t, tc.want, got.Data.(bool), "source: %s", tc.src)
	}
}

func Test_Eval_Plus(t *testing.T) {
	assert.True(t, Num(3).Equal(mustEval(t, "1 + 2")))
	assert.True(t, Str("helloworld").Equal(mustEval(t, `"hello" + "world"`)))
}

func Test_Eval_Plus_MismatchedOperands(t *testing.T) {
	want := "Operands must be two numbers or two strings.\n[line 1]"
	mustFailEval(t, `1 + "1"`, want)
	mustFailEval(t, `"1" + 1`, want)
	mustFailEval(t, "true + false", want)
	mustFailEval(t, "nil + nil", want)
	mustFailEval(t, `"s" + nil`, want)
}

func Test_Eval_RuntimeError_CarriesOperatorToken(t *testing.T) {
	_, err := EvalSource("1 +\n\"x\"")
	require.Error(t, err)
	rterr, ok := err.(*RuntimeError)
	require.True(t, ok)
	assert.Equal(t, PLUS, rterr.Token.Type)
	assert.Equal(t, 1, rterr.Token.Line)
}

func Test_Eval_StopsAtFirstFailure(t *testing.T) {
	// the left subtree fails before the division by zero is ever reached
	mustFailEval(t, "(-\"x\") + 1 / 0", "Operand must be a number.\n[line 1]")
}

func Test_Eval_NestedScenario(t *testing.T) {
	got := mustEval(t, "(85 != 50) == ((-58 + 98) >= (89 * 74))")
	assert.True(t, Bool(false).Equal(got))
}

func Test_Eval_InternalDefect_IsDistinctFromRuntimeError(t *testing.T) {
	// an operator category the grammar cannot produce at this site
	bad := &BinaryExpr{
		Left:     &LiteralExpr{Value: Num(1)},
		Operator: Token{Type: SEMICOLON, Lexeme: ";", Line: 1},
		Right:    &LiteralExpr{Value: Num(2)},
	}
	_, err := NewInterpreter().Evaluate(bad)
	require.Error(t, err)
	assert.IsType(t, &InternalError{}, err)

	badUnary := &UnaryExpr{
		Operator: Token{Type: STAR, Lexeme: "*", Line: 1},
		Right:    &LiteralExpr{Value: Num(2)},
	}
	_, err = NewInterpreter().Evaluate(badUnary)
	require.Error(t, err)
	assert.IsType(t, &InternalError{}, err)
}
