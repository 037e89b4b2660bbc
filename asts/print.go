package asts

import (
	"fmt"
	"strings"

	"github.com/reusee/lox/objects"
)

// ExprString renders an expression in parenthesized prefix form, e.g. (* (group (+ 1 2)) 3).
func ExprString(source string, expr Expr) string {
	var sb strings.Builder
	printExpr(&sb, source, expr)
	return sb.String()
}

func printExpr(sb *strings.Builder, source string, expr Expr) {
	switch expr := expr.(type) {
	case *Literal:
		if str, ok := expr.Value.(objects.String); ok {
			sb.WriteString(string(str))
			return
		}
		sb.WriteString(objects.Format(expr.Value))
	case *Grouping:
		parenthesize(sb, source, "group", expr.Expr)
	case *Unary:
		parenthesize(sb, source, expr.Operator.Text(source), expr.Right)
	case *Binary:
		parenthesize(sb, source, expr.Operator.Text(source), expr.Left, expr.Right)
	case *Variable:
		sb.WriteString(expr.Name.Text(source))
	default:
		panic(fmt.Errorf("unknown expression %T", expr))
	}
}

func parenthesize(sb *strings.Builder, source string, name string, exprs ...Expr) {
	sb.WriteString("(")
	sb.WriteString(name)
	for _, expr := range exprs {
		sb.WriteString(" ")
		printExpr(sb, source, expr)
	}
	sb.WriteString(")")
}

// StmtString renders a statement on a single line.
func StmtString(source string, stmt Stmt) string {
	switch stmt := stmt.(type) {
	case *ExpressionStmt:
		return "(expr " + ExprString(source, stmt.Expr) + ")"
	case *PrintStmt:
		return "(print " + ExprString(source, stmt.Expr) + ")"
	case *VarStmt:
		if stmt.Initializer == nil {
			return "(var " + stmt.Name.Text(source) + ")"
		}
		return "(var " + stmt.Name.Text(source) + " " + ExprString(source, stmt.Initializer) + ")"
	}
	panic(fmt.Errorf("unknown statement %T", stmt))
}
