package tokens

import "fmt"

type Kind uint8

const (
	Invalid Kind = iota

	// single character
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star

	// one or two characters
	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	// literals
	Identifier
	StringLiteral
	Number

	Keyword

	Whitespace
	Comment
	Unknown
	Eof
)

var kindNames = [...]string{
	Invalid:       "Invalid",
	LeftParen:     "LeftParen",
	RightParen:    "RightParen",
	LeftBrace:     "LeftBrace",
	RightBrace:    "RightBrace",
	Comma:         "Comma",
	Dot:           "Dot",
	Minus:         "Minus",
	Plus:          "Plus",
	Semicolon:     "Semicolon",
	Slash:         "Slash",
	Star:          "Star",
	Bang:          "Bang",
	BangEqual:     "BangEqual",
	Equal:         "Equal",
	EqualEqual:    "EqualEqual",
	Greater:       "Greater",
	GreaterEqual:  "GreaterEqual",
	Less:          "Less",
	LessEqual:     "LessEqual",
	Identifier:    "Identifier",
	StringLiteral: "StringLiteral",
	Number:        "Number",
	Keyword:       "Keyword",
	Whitespace:    "Whitespace",
	Comment:       "Comment",
	Unknown:       "Unknown",
	Eof:           "Eof",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Token is a classified lexeme. The text is not stored; slice the source with Span.
type Token struct {
	Kind    Kind
	Keyword KeywordKind // valid only when Kind == Keyword
	Span    Span
}

func (t Token) Text(source string) string {
	return t.Span.Text(source)
}

func (t Token) Is(kind Kind) bool {
	return t.Kind == kind
}

func (t Token) IsKeyword(keyword KeywordKind) bool {
	return t.Kind == Keyword && t.Keyword == keyword
}

func (t Token) String() string {
	if t.Kind == Keyword {
		return fmt.Sprintf("Keyword(%s)@%s", t.Keyword, t.Span)
	}
	return fmt.Sprintf("%s@%s", t.Kind, t.Span)
}
