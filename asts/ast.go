package asts

import (
	"github.com/reusee/lox/objects"
	"github.com/reusee/lox/tokens"
)

// Expr is one of Literal, Grouping, Unary, Binary, Variable.
type Expr interface {
	isExpr()
}

type Literal struct {
	Value objects.Object
}

type Grouping struct {
	Expr Expr
}

type Unary struct {
	Operator tokens.Token
	Right    Expr
}

type Binary struct {
	Left     Expr
	Operator tokens.Token
	Right    Expr
}

type Variable struct {
	Name tokens.Token
}

func (*Literal) isExpr()  {}
func (*Grouping) isExpr() {}
func (*Unary) isExpr()    {}
func (*Binary) isExpr()   {}
func (*Variable) isExpr() {}

// Stmt is one of ExpressionStmt, PrintStmt, VarStmt.
type Stmt interface {
	isStmt()
}

type ExpressionStmt struct {
	Expr Expr
}

type PrintStmt struct {
	Expr Expr
}

type VarStmt struct {
	Name        tokens.Token
	Initializer Expr // nil if absent
}

func (*ExpressionStmt) isStmt() {}
func (*PrintStmt) isStmt()      {}
func (*VarStmt) isStmt()        {}
