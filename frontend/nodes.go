package frontend

import (
	"github.com/isaacev/Kaleido/source"
)

// Node is a generic node in the abstract syntax tree (AST). The variant set
// is closed: every consumer switches exhaustively over the types below and
// adding a variant is a deliberate, compile-checked change
type Node interface {
	Pos() source.Pos
	End() source.Pos
}

// Expr represents a Node that produces a value when evaluated
type Expr interface {
	Node
	exprNode()
}

// Program is the root node for an AST and holds every top-level construct
// that parsed successfully, in source order
type Program struct {
	Constructs []Node
}

// Pos returns the starting source code position of this node
func (p Program) Pos() source.Pos {
	if len(p.Constructs) > 0 {
		return p.Constructs[0].Pos()
	}

	return source.Pos{Line: 1, Col: 1}
}

// End returns the terminal source code position of this node
func (p Program) End() source.Pos {
	if len(p.Constructs) > 0 {
		return p.Constructs[len(p.Constructs)-1].End()
	}

	return source.Pos{Line: 1, Col: 1}
}

// NumberLiteral represents an instance of a numeric literal in the AST
type NumberLiteral struct {
	Lexeme string
	Value  float64
	Start  source.Pos
}

// Pos returns the starting source code position of this node
func (n NumberLiteral) Pos() source.Pos {
	return n.Start
}

// End returns the terminal source code position of this node
func (n NumberLiteral) End() source.Pos {
	return source.Pos{
		Line: n.Start.Line,
		Col:  n.Start.Col + (len(n.Lexeme) - 1),
	}
}

func (n NumberLiteral) exprNode() {}

// VariableRef represents a reference to a variable by name
type VariableRef struct {
	Name    string
	NamePos source.Pos
}

// Pos returns the starting source code position of this node
func (v VariableRef) Pos() source.Pos {
	return v.NamePos
}

// End returns the terminal source code position of this node
func (v VariableRef) End() source.Pos {
	return source.Pos{
		Line: v.NamePos.Line,
		Col:  v.NamePos.Col + (len(v.Name) - 1),
	}
}

func (v VariableRef) exprNode() {}

// BinaryExpr represents a basic expression of the form:
// <left expr> <operator> <right expr>
type BinaryExpr struct {
	Operator rune
	Left     Expr
	Right    Expr
}

// Pos returns the starting source code position of this node
func (b BinaryExpr) Pos() source.Pos {
	return b.Left.Pos()
}

// End returns the terminal source code position of this node
func (b BinaryExpr) End() source.Pos {
	return b.Right.End()
}

func (b BinaryExpr) exprNode() {}

// CallExpr represents a function call including the callee name and any
// arguments in source order
type CallExpr struct {
	Callee     string
	Args       []Expr
	Start      source.Pos
	RightParen source.Pos
}

// Pos returns the starting source code position of this node
func (c CallExpr) Pos() source.Pos {
	return c.Start
}

// End returns the terminal source code position of this node
func (c CallExpr) End() source.Pos {
	return c.RightParen
}

func (c CallExpr) exprNode() {}

// Prototype represents a function's name together with its ordered parameter
// name list, independent of any body. The name is the empty string for the
// synthetic wrapper around a bare top-level expression. Parameter names are
// not checked for uniqueness
type Prototype struct {
	Name       string
	Params     []string
	Start      source.Pos
	RightParen source.Pos
}

// Pos returns the starting source code position of this node
func (p Prototype) Pos() source.Pos {
	return p.Start
}

// End returns the terminal source code position of this node
func (p Prototype) End() source.Pos {
	return p.RightParen
}

// Function represents a function definition: a prototype paired with a single
// expression body
type Function struct {
	Proto *Prototype
	Body  Expr
}

// Pos returns the starting source code position of this node
func (f Function) Pos() source.Pos {
	return f.Proto.Pos()
}

// End returns the terminal source code position of this node
func (f Function) End() source.Pos {
	return f.Body.End()
}
