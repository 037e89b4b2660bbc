package lexers

import (
	"iter"
	"unicode"
	"unicode/utf8"

	"github.com/reusee/lox/errs"
	"github.com/reusee/lox/tokens"
)

// Lexer produces tokens from source on demand. It is not resumable; create a new one to start over.
type Lexer struct {
	source string
	offset int
	report errs.Report
	errors []*errs.Error
}

func New(source string, report errs.Report) *Lexer {
	return &Lexer{
		source: source,
		report: report,
	}
}

func (l *Lexer) Errors() []*errs.Error {
	return l.errors
}

// All yields the remaining tokens, excluding Eof.
func (l *Lexer) All() iter.Seq[tokens.Token] {
	return func(yield func(tokens.Token) bool) {
		for {
			token, ok := l.Next()
			if !ok {
				return
			}
			if !yield(token) {
				return
			}
		}
	}
}

// Next scans one token at the current offset. It returns false at end of input.
func (l *Lexer) Next() (token tokens.Token, ok bool) {
	if l.offset >= len(l.source) {
		return token, false
	}

	start := l.offset
	r := l.advance()
	kind := tokens.Invalid

	switch r {
	case '(':
		kind = tokens.LeftParen
	case ')':
		kind = tokens.RightParen
	case '{':
		kind = tokens.LeftBrace
	case '}':
		kind = tokens.RightBrace
	case ',':
		kind = tokens.Comma
	case '.':
		kind = tokens.Dot
	case '-':
		kind = tokens.Minus
	case '+':
		kind = tokens.Plus
	case ';':
		kind = tokens.Semicolon
	case '*':
		kind = tokens.Star

	case '!':
		kind = l.either('=', tokens.BangEqual, tokens.Bang)
	case '=':
		kind = l.either('=', tokens.EqualEqual, tokens.Equal)
	case '<':
		kind = l.either('=', tokens.LessEqual, tokens.Less)
	case '>':
		kind = l.either('=', tokens.GreaterEqual, tokens.Greater)

	case '/':
		if l.match('/') {
			for l.offset < len(l.source) && l.source[l.offset] != '\n' {
				l.offset++
			}
			kind = tokens.Comment
		} else {
			kind = tokens.Slash
		}

	case '"':
		kind = l.scanString(start)

	default:
		switch {
		case isDigit(r):
			l.scanNumber()
			kind = tokens.Number

		case isASCIILetter(r):
			l.skipWhile(func(r rune) bool {
				return unicode.IsLetter(r) || unicode.IsDigit(r)
			})
			text := l.source[start:l.offset]
			if keyword, ok := tokens.LookupKeyword(text); ok {
				return tokens.Token{
					Kind:    tokens.Keyword,
					Keyword: keyword,
					Span:    tokens.Span{Start: start, End: l.offset},
				}, true
			}
			kind = tokens.Identifier

		case unicode.IsSpace(r):
			l.skipWhile(unicode.IsSpace)
			kind = tokens.Whitespace

		default:
			kind = tokens.Unknown
			l.error(tokens.Span{Start: start, End: l.offset}, "Unexpected character")
		}
	}

	return tokens.Token{
		Kind: kind,
		Span: tokens.Span{Start: start, End: l.offset},
	}, true
}

func (l *Lexer) scanString(start int) tokens.Kind {
	for l.offset < len(l.source) {
		c := l.source[l.offset]
		switch c {
		case '"':
			l.offset++
			return tokens.StringLiteral
		case '\\':
			l.offset++
			if l.offset < len(l.source) {
				_, size := utf8.DecodeRuneInString(l.source[l.offset:])
				l.offset += size
			}
		default:
			l.offset++
		}
	}
	l.error(tokens.Span{Start: start, End: l.offset}, "Unterminated string")
	return tokens.Unknown
}

func (l *Lexer) scanNumber() {
	l.skipWhile(isDigit)
	// a trailing dot without digits belongs to the next token
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.offset++
		l.skipWhile(isDigit)
	}
}

func (l *Lexer) advance() rune {
	r, size := utf8.DecodeRuneInString(l.source[l.offset:])
	l.offset += size
	return r
}

func (l *Lexer) peek() rune {
	if l.offset >= len(l.source) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.offset:])
	return r
}

func (l *Lexer) peekNext() rune {
	if l.offset >= len(l.source) {
		return 0
	}
	_, size := utf8.DecodeRuneInString(l.source[l.offset:])
	if l.offset+size >= len(l.source) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.offset+size:])
	return r
}

func (l *Lexer) match(expected byte) bool {
	if l.offset < len(l.source) && l.source[l.offset] == expected {
		l.offset++
		return true
	}
	return false
}

func (l *Lexer) either(expected byte, matched tokens.Kind, otherwise tokens.Kind) tokens.Kind {
	if l.match(expected) {
		return matched
	}
	return otherwise
}

func (l *Lexer) skipWhile(fn func(rune) bool) {
	for l.offset < len(l.source) {
		r, size := utf8.DecodeRuneInString(l.source[l.offset:])
		if !fn(r) {
			return
		}
		l.offset += size
	}
}

func (l *Lexer) error(span tokens.Span, message string) {
	err := errs.New(errs.KindLex, span, "%s", message)
	l.errors = append(l.errors, err)
	if l.report != nil {
		l.report(err)
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isASCIILetter(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}
