package lexer

import (
	"fmt"
	"io"
	"io/ioutil"
)

const eof = rune(-1)

type lexState func(*Lexer) lexState

var (
	isOpenExpression  = isTokenType(TokenOpenExpression)
	isCloseExpression = isTokenType(TokenCloseExpression)

	isPlus    = isTokenType(TokenPlus)
	isMinus   = isTokenType(TokenMinus)
	isStar    = isTokenType(TokenStar)
	isSlash   = isTokenType(TokenSlash)
	isPercent = isTokenType(TokenPercent)
	isQuote   = isTokenType(TokenQuote)

	isDoubleQuote = isTokenType(TokenDoubleQuote)
	isWhitespace  = isTokenType(TokenWhitespace)
	isNewLine     = isTokenType(TokenNewLine)

	isWord  = isTokenType(TokenWord)
	isDigit = isTokenType(TokenNumeric)
)

// New initializes a Lexer object
func New(r io.Reader) (*Lexer, error) {
	in, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return newLexer(in), nil
}

func newLexer(in []byte) *Lexer {
	return &Lexer{
		in:     []rune(string(in)),
		tokens: []Token{},
		buf:    []rune{},
	}
}

// Lexer represents a lexical analyzer. Newlines are dropped as if they were
// never part of the input, so the whole source is scanned as one logical line.
type Lexer struct {
	in  []rune
	pos int

	tokens  []Token
	invalid []Token
	lastErr error

	buf []rune

	line int
	col  int

	startLine int
	startCol  int
}

// Tokens returns the tokens detected by the last call to Scan.
func (lx *Lexer) Tokens() []Token {
	return lx.tokens
}

// Scan reads the whole input. Any character outside of the known lexical
// classes is collected and reported as a single *SyntaxError after the scan
// completes.
func (lx *Lexer) Scan() error {
	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}

	if lx.lastErr == nil && len(lx.invalid) > 0 {
		lx.lastErr = &SyntaxError{Tokens: lx.invalid}
	}

	if lx.lastErr != nil {
		lx.tokens = nil
		return lx.lastErr
	}

	lx.mark()
	lx.emit(TokenEOF)
	return nil
}

func (lx *Lexer) skipNewLines() {
	for lx.pos < len(lx.in) {
		r := lx.in[lx.pos]
		if r == '\r' && lx.pos+1 < len(lx.in) && isNewLine(lx.in[lx.pos+1]) {
			lx.pos++
			continue
		}
		if !isNewLine(r) {
			return
		}
		lx.pos++
		lx.line++
		lx.col = 0
	}
}

func (lx *Lexer) mark() {
	lx.skipNewLines()
	lx.startLine, lx.startCol = lx.line+1, lx.col+1
}

func (lx *Lexer) emit(tt TokenType) {
	lx.tokens = append(lx.tokens, Token{
		tt:     tt,
		lexeme: string(lx.buf),

		line: lx.startLine,
		col:  lx.startCol,
	})
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) discard() {
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) reject() {
	lx.invalid = append(lx.invalid, Token{
		tt:     TokenInvalid,
		lexeme: string(lx.buf),

		line: lx.startLine,
		col:  lx.startCol,
	})
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) peek() rune {
	lx.skipNewLines()
	if lx.pos >= len(lx.in) {
		return eof
	}
	return lx.in[lx.pos]
}

func (lx *Lexer) next() rune {
	r := lx.peek()
	if r == eof {
		return eof
	}

	lx.pos++
	lx.col++

	lx.buf = append(lx.buf, r)
	return r
}

func lexDefaultState(lx *Lexer) lexState {
	lx.mark()

	r := lx.next()
	switch {
	case r == eof:
		return nil

	case isOpenExpression(r):
		return lexEmit(TokenOpenExpression)
	case isCloseExpression(r):
		return lexEmit(TokenCloseExpression)

	case isPlus(r):
		return lexEmit(TokenPlus)
	case isStar(r):
		return lexEmit(TokenStar)
	case isSlash(r):
		return lexEmit(TokenSlash)
	case isPercent(r):
		return lexEmit(TokenPercent)
	case isQuote(r):
		return lexEmit(TokenQuote)

	case isDoubleQuote(r):
		return lexString

	case isDigit(r):
		return lexCollectStream(TokenNumeric, isNumericBody)
	case isMinus(r):
		if isDigit(lx.peek()) {
			return lexCollectStream(TokenNumeric, isNumericBody)
		}
		return lexEmit(TokenMinus)

	case isWord(r):
		return lexCollectStream(TokenWord, isWordBody)

	case isWhitespace(r):
		lx.discard()
		return lexDefaultState
	}

	lx.reject()
	return lexDefaultState
}

func lexString(lx *Lexer) lexState {
	for {
		r := lx.next()
		if r == eof {
			return lexStateError(fmt.Errorf("%w: opened at line %d, column %d", ErrUnterminatedString, lx.startLine, lx.startCol))
		}
		if isDoubleQuote(r) {
			break
		}
	}
	return lexEmit(TokenString)
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return lexDefaultState
	}
}

func lexCollectStream(tt TokenType, accept func(rune) bool) lexState {
	return func(lx *Lexer) lexState {
		for accept(lx.peek()) {
			lx.next()
		}
		return lexEmit(tt)
	}
}

func lexStateError(err error) lexState {
	return func(lx *Lexer) lexState {
		lx.lastErr = err
		return nil
	}
}

// Tokenize takes an array of bytes and returns all the tokens within it,
// or an error if a token can't be identified. Separators are not returned
// and the last token is always of type TokenEOF.
func Tokenize(in []byte) ([]Token, error) {
	lx := newLexer(in)
	if err := lx.Scan(); err != nil {
		return nil, err
	}
	return lx.Tokens(), nil
}
