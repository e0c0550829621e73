// parser.go — recursive-descent parser for Lox expressions.
//
// Grammar (descending precedence, binary operators left-associative):
//
//	expression → equality
//	equality   → comparison ( ("!=" | "==") comparison )*
//	comparison → term ( (">" | ">=" | "<" | "<=") term )*
//	term       → factor ( ("-" | "+") factor )*
//	factor     → unary ( ("/" | "*") unary )*
//	unary      → ("!" | "-") unary | primary
//	primary    → NUMBER | STRING | "true" | "false" | "nil" | "(" expression ")"
//
// Each production is a method matching its right-hand side; the binary tiers
// fold repeated operators into left-nested BinaryExpr nodes. Parsing halts at
// the first syntax error: exactly one Report per failed attempt, no recovery.
package lox

// Parser consumes a finite token list (lexical errors pre-filtered out
// upstream) and builds a single expression tree. A new Parser is used per
// token list.
type Parser struct {
	toks []Token
	i    int
}

// NewParser creates a parser over a scanned token list. The list must end
// with the EOF token, which Scan guarantees; an empty list is treated as
// an immediate EOF.
func NewParser(tokens []Token) *Parser {
	if len(tokens) == 0 {
		tokens = []Token{eofToken(1)}
	}
	return &Parser{toks: tokens}
}

// Parse builds the expression tree, or fails with a single syntax Report.
func (p *Parser) Parse() (Expr, *Report) {
	return p.expression()
}

// ─────────────────────────── token basics & helpers ─────────────────────────

func (p *Parser) atEnd() bool { return p.peek().Type == EOF }

func (p *Parser) peek() Token {
	if p.i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.i]
}

func (p *Parser) prev() Token { return p.toks[p.i-1] }

func (p *Parser) advance() Token {
	if !p.atEnd() {
		p.i++
	}
	return p.prev()
}

func (p *Parser) check(tt TokenType) bool {
	return !p.atEnd() && p.peek().Type == tt
}

func (p *Parser) match(tt ...TokenType) bool {
	for _, t := range tt {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(tt TokenType, message string) (Token, *Report) {
	if p.check(tt) {
		return p.advance(), nil
	}
	return Token{}, reportAtToken(p.peek(), message)
}

// ─────────────────────────────── productions ────────────────────────────────

func (p *Parser) expression() (Expr, *Report) {
	return p.equality()
}

func (p *Parser) equality() (Expr, *Report) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(BANG_EQUAL, EQUAL_EQUAL) {
		op := p.prev()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) comparison() (Expr, *Report) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(GREATER, GREATER_EQUAL, LESS, LESS_EQUAL) {
		op := p.prev()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) term() (Expr, *Report) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(MINUS, PLUS) {
		op := p.prev()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) factor() (Expr, *Report) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(SLASH, STAR) {
		op := p.prev()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) unary() (Expr, *Report) {
	if p.match(BANG, MINUS) {
		op := p.prev()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Operator: op, Right: right}, nil
	}
	return p.primary()
}

func (p *Parser) primary() (Expr, *Report) {
	switch {
	case p.match(TRUE):
		return &LiteralExpr{Value: Bool(true)}, nil
	case p.match(FALSE):
		return &LiteralExpr{Value: Bool(false)}, nil
	case p.match(NIL):
		return &LiteralExpr{Value: NilValue}, nil
	case p.match(NUMBER):
		return &LiteralExpr{Value: Num(p.prev().Literal.(float64))}, nil
	case p.match(STRING):
		return &LiteralExpr{Value: Str(p.prev().Literal.(string))}, nil
	case p.match(LEFT_PAREN):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(RIGHT_PAREN, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &GroupingExpr{Expression: expr}, nil
	}
	return nil, reportAtToken(p.peek(), "Expect expression.")
}
