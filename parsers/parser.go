package parsers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/reusee/lox/asts"
	"github.com/reusee/lox/errs"
	"github.com/reusee/lox/objects"
	"github.com/reusee/lox/tokens"
)

// Parser is a recursive-descent parser over significant tokens.
type Parser struct {
	source  string
	tokens  []tokens.Token
	current int
}

func New(source string, toks []tokens.Token) *Parser {
	if len(toks) == 0 || toks[len(toks)-1].Kind != tokens.Eof {
		toks = append(toks[:len(toks):len(toks)], tokens.Token{
			Kind: tokens.Eof,
			Span: tokens.Span{Start: len(source), End: len(source)},
		})
	}
	return &Parser{
		source: source,
		tokens: toks,
	}
}

// Parse parses the whole program, stopping at the first error.
func (p *Parser) Parse() ([]asts.Stmt, error) {
	var stmts []asts.Stmt
	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// ParseAll parses the whole program, synchronizing after each error and collecting all of them.
func (p *Parser) ParseAll() ([]asts.Stmt, []*errs.Error) {
	var stmts []asts.Stmt
	var errors []*errs.Error
	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			errors = append(errors, err)
			p.Synchronize()
			continue
		}
		stmts = append(stmts, stmt)
	}
	return stmts, errors
}

// Synchronize discards tokens until a statement boundary: just past a ';' or before a statement keyword.
func (p *Parser) Synchronize() {
	if p.isAtEnd() {
		return
	}
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == tokens.Semicolon {
			return
		}
		if token := p.peek(); token.Kind == tokens.Keyword {
			switch token.Keyword {
			case tokens.Class, tokens.Fun, tokens.Var, tokens.For,
				tokens.If, tokens.While, tokens.Print, tokens.Return:
				return
			}
		}
		p.advance()
	}
}

func (p *Parser) declaration() (asts.Stmt, *errs.Error) {
	if p.matchKeyword(tokens.Var) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *Parser) varDeclaration() (asts.Stmt, *errs.Error) {
	name, err := p.consume(tokens.Identifier, "Expect variable name.")
	if err != nil {
		return nil, err
	}
	stmt := &asts.VarStmt{
		Name: name,
	}
	if p.match(tokens.Equal) {
		stmt.Initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(tokens.Semicolon, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) statement() (asts.Stmt, *errs.Error) {
	if p.matchKeyword(tokens.Print) {
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(tokens.Semicolon, "Expect ';' after value."); err != nil {
			return nil, err
		}
		return &asts.PrintStmt{
			Expr: expr,
		}, nil
	}

	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(tokens.Semicolon, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return &asts.ExpressionStmt{
		Expr: expr,
	}, nil
}

func (p *Parser) expression() (asts.Expr, *errs.Error) {
	return p.equality()
}

func (p *Parser) equality() (asts.Expr, *errs.Error) {
	return p.binary(p.comparison, tokens.BangEqual, tokens.EqualEqual)
}

func (p *Parser) comparison() (asts.Expr, *errs.Error) {
	return p.binary(p.term, tokens.Greater, tokens.GreaterEqual, tokens.Less, tokens.LessEqual)
}

func (p *Parser) term() (asts.Expr, *errs.Error) {
	return p.binary(p.factor, tokens.Minus, tokens.Plus)
}

func (p *Parser) factor() (asts.Expr, *errs.Error) {
	return p.binary(p.unary, tokens.Slash, tokens.Star)
}

// binary parses a left-associative level: operand (op operand)*.
func (p *Parser) binary(operand func() (asts.Expr, *errs.Error), operators ...tokens.Kind) (asts.Expr, *errs.Error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for p.match(operators...) {
		operator := p.previous()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = &asts.Binary{
			Left:     expr,
			Operator: operator,
			Right:    right,
		}
	}
	return expr, nil
}

func (p *Parser) unary() (asts.Expr, *errs.Error) {
	if p.match(tokens.Bang, tokens.Minus) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &asts.Unary{
			Operator: operator,
			Right:    right,
		}, nil
	}
	return p.primary()
}

func (p *Parser) primary() (asts.Expr, *errs.Error) {
	token := p.peek()

	switch token.Kind {

	case tokens.Number:
		p.advance()
		text := token.Text(p.source)
		f, err := strconv.ParseFloat(text, 64)
		// out of range literals evaluate to infinity
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			panic(fmt.Errorf("malformed number literal %q at %s: %w", text, token.Span, err))
		}
		return &asts.Literal{
			Value: objects.Number(f),
		}, nil

	case tokens.StringLiteral:
		p.advance()
		text := token.Text(p.source)
		return &asts.Literal{
			Value: objects.String(unquote(text[1 : len(text)-1])),
		}, nil

	case tokens.Keyword:
		switch token.Keyword {
		case tokens.True:
			p.advance()
			return &asts.Literal{Value: objects.Boolean(true)}, nil
		case tokens.False:
			p.advance()
			return &asts.Literal{Value: objects.Boolean(false)}, nil
		case tokens.Nil:
			p.advance()
			return &asts.Literal{Value: objects.Nil{}}, nil
		}

	case tokens.Identifier:
		p.advance()
		return &asts.Variable{
			Name: token,
		}, nil

	case tokens.LeftParen:
		p.advance()
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(tokens.RightParen, "Expect ')' after expression"); err != nil {
			return nil, err
		}
		return &asts.Grouping{
			Expr: expr,
		}, nil

	}

	return nil, p.error(token, "Expect expression.")
}

func unquote(text string) string {
	if !strings.Contains(text, `\`) {
		return text
	}
	var sb strings.Builder
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '\\' || i+1 == len(text) {
			sb.WriteByte(c)
			continue
		}
		i++
		switch text[i] {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case '"':
			sb.WriteByte('"')
		case '\\':
			sb.WriteByte('\\')
		default:
			sb.WriteByte('\\')
			sb.WriteByte(text[i])
		}
	}
	return sb.String()
}

func (p *Parser) consume(kind tokens.Kind, message string) (tokens.Token, *errs.Error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return tokens.Token{}, p.error(p.peek(), message)
}

func (p *Parser) error(token tokens.Token, message string) *errs.Error {
	return errs.New(errs.KindParse, token.Span, "%s", message)
}

func (p *Parser) match(kinds ...tokens.Kind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) matchKeyword(keyword tokens.KeywordKind) bool {
	if p.peek().IsKeyword(keyword) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) check(kind tokens.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) advance() tokens.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == tokens.Eof
}

func (p *Parser) peek() tokens.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() tokens.Token {
	return p.tokens[p.current-1]
}
