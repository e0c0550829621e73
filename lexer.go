package lox

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Lexer scans a Lox source string into tokens. A Lexer is single-pass: each
// call to Next yields the next token or lexical report, and the stream ends
// with exactly one EOF token regardless of errors encountered along the way.
// A new Lexer is used per input; it is not safe for concurrent use.
type Lexer struct {
	src   string
	start int // start index of current token
	cur   int // current index
	line  int // 1-based
}

// NewLexer creates a new lexer for the given source.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1}
}

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) peek() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	return l.src[l.cur], true
}

func (l *Lexer) peekNext() (byte, bool) {
	if l.cur+1 >= len(l.src) {
		return 0, false
	}
	return l.src[l.cur+1], true
}

func (l *Lexer) advance() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	ch := l.src[l.cur]
	l.cur++
	if ch == '\n' {
		l.line++
	}
	return ch, true
}

// matchNext consumes the next byte when it equals expected (maximal munch).
func (l *Lexer) matchNext(expected byte) bool {
	if b, ok := l.peek(); ok && b == expected {
		l.advance()
		return true
	}
	return false
}

func (l *Lexer) makeToken(tt TokenType, lit any) Token {
	return Token{
		Type:    tt,
		Lexeme:  l.src[l.start:l.cur],
		Literal: lit,
		Line:    l.line,
	}
}

// helpers

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' }
func isAlphaNum(b byte) bool {
	return isAlpha(b) || isDigit(b)
}

// ----- scanners -----

// scanString consumes a string literal after its opening quote. Embedded
// newlines are preserved in the lexeme and advance the line counter. When
// input ends before the closing quote, the report is positioned at the line
// where scanning stopped and no token is produced.
func (l *Lexer) scanString() (Token, *Report) {
	for {
		b, ok := l.peek()
		if !ok {
			return Token{}, reportAt(l.line, "Unterminated string.")
		}
		if b == '"' {
			break
		}
		l.advance()
	}
	l.advance() // closing quote

	// literal is the text strictly between the quotes
	lit := l.src[l.start+1 : l.cur-1]
	return l.makeToken(STRING, lit), nil
}

// scanNumber consumes digits, plus a fractional part only when the '.' is
// immediately followed by a digit. The two-character lookahead keeps "7."
// scanning as NUMBER then DOT.
func (l *Lexer) scanNumber() Token {
	for {
		b, ok := l.peek()
		if !ok || !isDigit(b) {
			break
		}
		l.advance()
	}

	if b, ok := l.peek(); ok && b == '.' {
		if b2, ok2 := l.peekNext(); ok2 && isDigit(b2) {
			l.advance() // consume '.'
			for {
				b, ok := l.peek()
				if !ok || !isDigit(b) {
					break
				}
				l.advance()
			}
		}
	}

	lex := l.src[l.start:l.cur]
	// digits-only lexemes always parse; overflow saturates to +Inf
	v, _ := strconv.ParseFloat(lex, 64)
	return l.makeToken(NUMBER, v)
}

// scanIdentifier consumes [A-Za-z_][A-Za-z0-9_]* and resolves keywords.
func (l *Lexer) scanIdentifier() Token {
	for {
		b, ok := l.peek()
		if !ok || !isAlphaNum(b) {
			break
		}
		l.advance()
	}
	lex := l.src[l.start:l.cur]
	if tt, ok := keywords[lex]; ok {
		return l.makeToken(tt, nil)
	}
	return l.makeToken(IDENTIFIER, nil)
}

// ignoreUntilNewline eats a line comment through (not including) '\n'.
func (l *Lexer) ignoreUntilNewline() {
	for {
		b, ok := l.peek()
		if !ok || b == '\n' {
			return
		}
		l.advance()
	}
}

// ----- main scanner -----

// Next returns the next token, or a lexical report when the upcoming input
// is not a valid token. Reports are non-fatal: scanning resumes with the
// following character on the next call. At end of input Next returns the
// EOF token; further calls keep returning it.
func (l *Lexer) Next() (Token, *Report) {
	for {
		l.start = l.cur

		if l.isAtEnd() {
			return eofToken(l.line), nil
		}

		ch, _ := l.advance()
		switch ch {
		case ' ', '\t', '\r', '\n':
			continue
		case '(':
			return l.makeToken(LEFT_PAREN, nil), nil
		case ')':
			return l.makeToken(RIGHT_PAREN, nil), nil
		case '{':
			return l.makeToken(LEFT_BRACE, nil), nil
		case '}':
			return l.makeToken(RIGHT_BRACE, nil), nil
		case ',':
			return l.makeToken(COMMA, nil), nil
		case '.':
			return l.makeToken(DOT, nil), nil
		case '-':
			return l.makeToken(MINUS, nil), nil
		case '+':
			return l.makeToken(PLUS, nil), nil
		case ';':
			return l.makeToken(SEMICOLON, nil), nil
		case '*':
			return l.makeToken(STAR, nil), nil
		case '=':
			if l.matchNext('=') {
				return l.makeToken(EQUAL_EQUAL, nil), nil
			}
			return l.makeToken(EQUAL, nil), nil
		case '!':
			if l.matchNext('=') {
				return l.makeToken(BANG_EQUAL, nil), nil
			}
			return l.makeToken(BANG, nil), nil
		case '<':
			if l.matchNext('=') {
				return l.makeToken(LESS_EQUAL, nil), nil
			}
			return l.makeToken(LESS, nil), nil
		case '>':
			if l.matchNext('=') {
				return l.makeToken(GREATER_EQUAL, nil), nil
			}
			return l.makeToken(GREATER, nil), nil
		case '/':
			if l.matchNext('/') {
				l.ignoreUntilNewline()
				continue
			}
			return l.makeToken(SLASH, nil), nil
		case '"':
			return l.scanString()
		}

		if isDigit(ch) {
			return l.scanNumber(), nil
		}
		if isAlpha(ch) {
			return l.scanIdentifier(), nil
		}

		// Source may be UTF-8; report the whole rune, not its lead byte.
		r := rune(ch)
		if ch >= utf8.RuneSelf {
			var size int
			r, size = utf8.DecodeRuneInString(l.src[l.start:])
			l.cur = l.start + size
		}
		return Token{}, reportAt(l.line, fmt.Sprintf("Unexpected character: %c", r))
	}
}

// Scan drains the source into a token list plus all lexical reports found
// along the way. The token list always ends with exactly one EOF token.
// Any report means the run must be treated as failed, even though every
// valid token was still produced.
func (l *Lexer) Scan() ([]Token, []*Report) {
	var tokens []Token
	var reports []*Report
	for {
		tok, rep := l.Next()
		if rep != nil {
			reports = append(reports, rep)
			continue
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, reports
		}
	}
}
