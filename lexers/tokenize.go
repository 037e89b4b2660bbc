package lexers

import (
	"iter"

	"github.com/reusee/lox/errs"
	"github.com/reusee/lox/tokens"
)

// Tokenize scans the whole source and terminates the result with an Eof token.
func Tokenize(source string, report errs.Report) []tokens.Token {
	var ret []tokens.Token
	for token := range New(source, report).All() {
		ret = append(ret, token)
	}
	return append(ret, EOF(source))
}

func EOF(source string) tokens.Token {
	return tokens.Token{
		Kind: tokens.Eof,
		Span: tokens.Span{Start: len(source), End: len(source)},
	}
}

// Significant drops whitespace and comment tokens.
func Significant(seq iter.Seq[tokens.Token]) iter.Seq[tokens.Token] {
	return func(yield func(tokens.Token) bool) {
		for token := range seq {
			switch token.Kind {
			case tokens.Whitespace, tokens.Comment:
				continue
			}
			if !yield(token) {
				return
			}
		}
	}
}
