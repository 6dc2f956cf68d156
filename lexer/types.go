package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid         TokenType = iota
	TokenOpenExpression            // Open parenthesis: "("
	TokenCloseExpression           // Close parenthesis: ")"
	TokenPlus                      // Plus: "+"
	TokenMinus                     // Minus: "-"
	TokenStar                      // Star: "*"
	TokenSlash                     // Slash: "/"
	TokenPercent                   // Percent: "%"
	TokenQuote                     // Single quote: "'"
	TokenDoubleQuote               // Double quote: '"'
	TokenWhitespace                // Space: " "
	TokenNewLine                   // Newline: "\n"
	TokenWord                      // Letters ([a-zA-Z]) and dash
	TokenNumeric                   // Digits and dot, optionally led by a dash
	TokenString                    // Double quoted string, quotes included
	TokenEOF                       // End of file
)

var tokenValues = map[TokenType][]rune{
	TokenOpenExpression:  {'('},
	TokenCloseExpression: {')'},
	TokenPlus:            {'+'},
	TokenMinus:           {'-'},
	TokenStar:            {'*'},
	TokenSlash:           {'/'},
	TokenPercent:         {'%'},
	TokenQuote:           {'\''},
	TokenDoubleQuote:     {'"'},
	TokenWhitespace:      {' '},
	TokenNewLine:         {'\n'},
	TokenWord:            []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"),
	TokenNumeric:         []rune("0123456789"),
}

var tokenNames = map[TokenType]string{
	TokenInvalid:         "invalid",
	TokenOpenExpression:  "open_expression",
	TokenCloseExpression: "close_expression",
	TokenPlus:            "plus",
	TokenMinus:           "minus",
	TokenStar:            "star",
	TokenSlash:           "slash",
	TokenPercent:         "percent",
	TokenQuote:           "quote",
	TokenDoubleQuote:     "double_quote",
	TokenWhitespace:      "separator",
	TokenNewLine:         "newline",
	TokenWord:            "word",
	TokenNumeric:         "numeric",
	TokenString:          "string",
	TokenEOF:             "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

// IsOperator returns true for the single-character arithmetic tokens.
func (tt TokenType) IsOperator() bool {
	switch tt {
	case TokenPlus, TokenMinus, TokenStar, TokenSlash, TokenPercent:
		return true
	}
	return false
}

func isTokenType(tt TokenType) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range tokenValues[tt] {
			if v == r {
				return true
			}
		}
		return false
	}
}

func isWordBody(r rune) bool {
	return isWord(r) || isMinus(r)
}

func isNumericBody(r rune) bool {
	return isDigit(r) || r == '.'
}
