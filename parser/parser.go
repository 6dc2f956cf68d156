package parser

import (
	"bytes"
	"fmt"
	"io"

	"github.com/xiam/steed/ast"
	"github.com/xiam/steed/lexer"
)

var tokenEOF = lexer.NewToken(lexer.TokenEOF, "", 0, 0)

type parserState func(p *Parser) parserState

// Parser reduces the flat sequence of tokens produced by the lexer into a
// sequence of nested expressions.
type Parser struct {
	r io.Reader

	tokens []lexer.Token
	offset int

	root *ast.Node

	lastTok *lexer.Token
	lastErr error
}

// New creates a parser that reads source code from r
func New(r io.Reader) *Parser {
	return &Parser{
		r:    r,
		root: ast.NewExpression(nil),
	}
}

// Parse tokenizes the whole input and builds the expression tree. It stops on
// the first error, no partial tree is kept.
func (p *Parser) Parse() error {
	lx, err := lexer.New(p.r)
	if err != nil {
		return err
	}
	if err := lx.Scan(); err != nil {
		return err
	}
	p.tokens = lx.Tokens()

	for state := parserDefaultState; state != nil; {
		state = state(p)
	}

	if p.lastErr != nil {
		p.root = ast.NewExpression(nil)
		return p.lastErr
	}
	return nil
}

// Expressions returns the top-level expressions, in source order.
func (p *Parser) Expressions() []*ast.Node {
	return p.root.List()
}

func (p *Parser) curr() *lexer.Token {
	return p.lastTok
}

func (p *Parser) next() *lexer.Token {
	if p.offset >= len(p.tokens) {
		p.lastTok = tokenEOF
		return p.lastTok
	}
	tok := p.tokens[p.offset]
	p.offset++
	p.lastTok = &tok
	return p.lastTok
}

func parserDefaultState(p *Parser) parserState {
	tok := p.next()

	switch tok.Type() {
	case lexer.TokenEOF:
		return nil

	case lexer.TokenCloseExpression:
		return parserErrorState(positionError(ErrUnexpectedCloseParenthesis, tok))
	}

	if state := parserStateData(p.root)(p); state != nil {
		return state
	}

	return parserDefaultState
}

func parserErrorState(err error) parserState {
	return func(p *Parser) parserState {
		p.lastErr = err
		return nil
	}
}

func positionError(err error, tok *lexer.Token) error {
	line, col := tok.Pos()
	return fmt.Errorf("%w (line %d, column %d)", err, line, col)
}

func parserStateData(root *ast.Node) parserState {
	return func(p *Parser) parserState {
		tok := p.curr()

		switch tok.Type() {
		case lexer.TokenOpenExpression:
			node, err := root.PushExpression(tok)
			if err != nil {
				return parserErrorState(err)
			}
			return parserStateOpenExpression(node)(p)

		case lexer.TokenWord, lexer.TokenNumeric, lexer.TokenString, lexer.TokenQuote,
			lexer.TokenPlus, lexer.TokenMinus, lexer.TokenStar, lexer.TokenSlash, lexer.TokenPercent:
			if _, err := root.PushAtom(tok); err != nil {
				return parserErrorState(err)
			}
			return nil
		}

		return parserErrorState(positionError(ErrUnexpectedToken, tok))
	}
}

func parserStateOpenExpression(root *ast.Node) parserState {
	open := openingToken(root)
	return func(p *Parser) parserState {
		for {
			tok := p.next()

			switch tok.Type() {
			case lexer.TokenEOF:
				return parserErrorState(positionError(ErrUnmatchedParenthesis, open))

			case lexer.TokenCloseExpression:
				return nil
			}

			if state := parserStateData(root)(p); state != nil {
				return state
			}
		}
	}
}

func openingToken(n *ast.Node) *lexer.Token {
	if tok := n.Token(); tok != nil {
		return tok
	}
	return tokenEOF
}

// Parse reads all the expressions within the given source code.
func Parse(in []byte) ([]*ast.Node, error) {
	p := New(bytes.NewReader(in))

	if err := p.Parse(); err != nil {
		return nil, err
	}

	return p.Expressions(), nil
}
