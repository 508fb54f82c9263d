package frontend

import (
	"github.com/isaacev/Kaleido/feedback"
	"github.com/isaacev/Kaleido/source"
)

// Parse takes a file and returns an abstract-syntax-tree holding every
// top-level construct that parsed successfully plus any errors generated
// during the parsing process. Parsing always continues to the end of the
// stream: a failed construct contributes one message, costs one token of
// resynchronization and never halts the loop
func Parse(file *source.File) (ast *Program, msgs []feedback.Message) {
	parser := NewParser(file, nil)
	ast = &Program{}

	for {
		node, done, msg := parser.ParseTopLevel()

		if done {
			return ast, msgs
		}

		if msg != nil {
			msgs = append(msgs, msg)
		} else if node != nil {
			ast.Constructs = append(ast.Constructs, node)
		}
	}
}

// Parser instances combine a Lexer with one token of lookahead and the
// operator precedence table consulted while climbing binary expressions. All
// parse functions assume the current token already holds the first token of
// their construct on entry
type Parser struct {
	Lexer *Lexer
	Table *OpTable
	cur   Token
}

// NewParser builds a parser over a file. A nil table gets the default seeded
// operator table; passing a shared table lets several parse sessions (like
// successive REPL lines) see the same user-defined operators
func NewParser(file *source.File, table *OpTable) *Parser {
	if table == nil {
		table = NewOpTable()
	}

	p := &Parser{
		Lexer: NewLexer(file, NewGrammar()),
		Table: table,
	}

	// Load the first token
	p.advance()

	return p
}

// advance asks the Lexer for the next token and stores it as current
func (p *Parser) advance() {
	p.cur = p.Lexer.Next()
}

// syntaxError builds the single kind of parse diagnostic. Failures are
// represented as an absent node plus one of these messages, never as a panic
func (p *Parser) syntaxError(description string, span source.Span) feedback.Message {
	return feedback.Error{
		Classification: feedback.SyntaxError,
		File:           p.Lexer.Scanner.File,
		What: feedback.Selection{
			Description: description,
			Span:        span,
		},
	}
}

// tokPrecedence returns the binary precedence of the current token, or -1 if
// the current token cannot act as a binary operator. Only literal
// single-character tokens are candidates: named symbols like Identifier and
// multi-character keywords never match
func (p *Parser) tokPrecedence() (precedence int) {
	runes := []rune(p.cur.Lexeme)

	if len(runes) != 1 || p.cur.Symbol != TokenSymbol(p.cur.Lexeme) {
		return -1
	}

	return p.Table.Lookup(runes[0])
}

// ParseTopLevel consumes exactly one top-level construct. The done flag
// reports end-of-stream; a nil node with a nil message means a stray ';'
// separator was skipped. When a construct fails to parse, exactly one token
// is consumed before returning so the next call can resume dispatch — a
// deliberately coarse recovery that can misalign on multi-token constructs
func (p *Parser) ParseTopLevel() (node Node, done bool, msg feedback.Message) {
	switch p.cur.Symbol {
	case EOFSymbol:
		return nil, true, nil
	case TokenSymbol(";"):
		p.advance()
		return nil, false, nil
	case DefSymbol:
		fn, msg := p.parseDefinition()
		if msg != nil {
			p.advance()
			return nil, false, msg
		}

		return fn, false, nil
	case ExternSymbol:
		proto, msg := p.parseExtern()
		if msg != nil {
			p.advance()
			return nil, false, msg
		}

		return proto, false, nil
	default:
		fn, msg := p.parseTopLevelExpr()
		if msg != nil {
			p.advance()
			return nil, false, msg
		}

		return fn, false, nil
	}
}

// primary ::= identifierExpr | numberExpr | '(' expression ')'
func (p *Parser) parsePrimary() (expr Expr, msg feedback.Message) {
	switch p.cur.Symbol {
	case IdentSymbol:
		return p.parseIdentifierExpr()
	case NumberSymbol:
		return p.parseNumberExpr()
	case TokenSymbol("("):
		return p.parseParenExpr()
	default:
		return nil, p.syntaxError("unknown token when expecting an expression", p.cur.Span)
	}
}

// numberExpr ::= Number
func (p *Parser) parseNumberExpr() (expr Expr, msg feedback.Message) {
	expr = &NumberLiteral{
		Lexeme: p.cur.Lexeme,
		Value:  p.cur.Value,
		Start:  p.cur.Span.Start,
	}

	p.advance() // eat the number
	return expr, nil
}

// parenExpr ::= '(' expression ')'
//
// The grouped expression is returned unchanged; no wrapper node exists
func (p *Parser) parseParenExpr() (expr Expr, msg feedback.Message) {
	p.advance() // eat '('

	if expr, msg = p.parseExpression(); msg != nil {
		return nil, msg
	}

	if p.cur.Symbol != TokenSymbol(")") {
		return nil, p.syntaxError("expected ')'", p.cur.Span)
	}

	p.advance() // eat ')'
	return expr, nil
}

// identifierExpr ::= Identifier
//                ::= Identifier '(' (expression (',' expression)*)? ')'
func (p *Parser) parseIdentifierExpr() (expr Expr, msg feedback.Message) {
	name := p.cur.Lexeme
	namePos := p.cur.Span.Start

	p.advance() // eat the identifier

	// A bare identifier is a variable reference
	if p.cur.Symbol != TokenSymbol("(") {
		return &VariableRef{Name: name, NamePos: namePos}, nil
	}

	p.advance() // eat '('

	var args []Expr

	if p.cur.Symbol != TokenSymbol(")") {
		for {
			var arg Expr

			// A malformed argument aborts the whole call
			if arg, msg = p.parseExpression(); msg != nil {
				return nil, msg
			}

			args = append(args, arg)

			if p.cur.Symbol == TokenSymbol(")") {
				break
			}

			if p.cur.Symbol != TokenSymbol(",") {
				return nil, p.syntaxError("Expected ')' or ',' in argument list", p.cur.Span)
			}

			p.advance() // eat ','
		}
	}

	rParen := p.cur.Span.End
	p.advance() // eat ')'

	return &CallExpr{
		Callee:     name,
		Args:       args,
		Start:      namePos,
		RightParen: rParen,
	}, nil
}

// expression ::= primary binopRHS
func (p *Parser) parseExpression() (expr Expr, msg feedback.Message) {
	var lhs Expr

	if lhs, msg = p.parsePrimary(); msg != nil {
		return nil, msg
	}

	return p.parseBinOpRHS(0, lhs)
}

// parseBinOpRHS is the operator-precedence climbing loop. It extends lhs with
// operator/primary pairs for as long as the upcoming operator binds at least
// as tightly as minPrec
func (p *Parser) parseBinOpRHS(minPrec int, lhs Expr) (expr Expr, msg feedback.Message) {
	for {
		prec := p.tokPrecedence()

		// Tokens that aren't binary operators report precedence -1, which
		// always fails this test and terminates the climb
		if prec < minPrec {
			return lhs, nil
		}

		op := []rune(p.cur.Lexeme)[0]
		p.advance() // eat the operator

		var rhs Expr

		if rhs, msg = p.parsePrimary(); msg != nil {
			return nil, msg
		}

		// If the upcoming operator binds strictly tighter than the one just
		// consumed, let it claim the candidate right-hand side first. The
		// strict comparison is the tie-break that makes equal-precedence
		// operators group left-associatively
		if next := p.tokPrecedence(); prec < next {
			if rhs, msg = p.parseBinOpRHS(prec+1, rhs); msg != nil {
				return nil, msg
			}
		}

		lhs = &BinaryExpr{Operator: op, Left: lhs, Right: rhs}
	}
}

// prototype ::= Identifier '(' Identifier* ')'
func (p *Parser) parsePrototype() (proto *Prototype, msg feedback.Message) {
	if p.cur.Symbol != IdentSymbol {
		return nil, p.syntaxError("Expected function name in prototype", p.cur.Span)
	}

	name := p.cur.Lexeme
	start := p.cur.Span.Start

	p.advance() // eat the function name

	if p.cur.Symbol != TokenSymbol("(") {
		return nil, p.syntaxError("Expected '(' in prototype", p.cur.Span)
	}

	p.advance() // eat '('

	// Parameter names are undelimited and are not checked for uniqueness
	var params []string

	for p.cur.Symbol == IdentSymbol {
		params = append(params, p.cur.Lexeme)
		p.advance()
	}

	if p.cur.Symbol != TokenSymbol(")") {
		return nil, p.syntaxError("Expected ')' in prototype", p.cur.Span)
	}

	rParen := p.cur.Span.End
	p.advance() // eat ')'

	return &Prototype{
		Name:       name,
		Params:     params,
		Start:      start,
		RightParen: rParen,
	}, nil
}

// definition ::= 'def' prototype expression
func (p *Parser) parseDefinition() (fn *Function, msg feedback.Message) {
	p.advance() // eat 'def'

	var proto *Prototype

	if proto, msg = p.parsePrototype(); msg != nil {
		return nil, msg
	}

	var body Expr

	if body, msg = p.parseExpression(); msg != nil {
		return nil, msg
	}

	return &Function{Proto: proto, Body: body}, nil
}

// extern ::= 'extern' prototype
func (p *Parser) parseExtern() (proto *Prototype, msg feedback.Message) {
	p.advance() // eat 'extern'
	return p.parsePrototype()
}

// topLevelExpr ::= expression
//
// A bare expression is wrapped in a synthetic Function whose prototype has an
// empty name and no parameters so a hypothetical execution backend could
// invoke it anonymously
func (p *Parser) parseTopLevelExpr() (fn *Function, msg feedback.Message) {
	var body Expr

	if body, msg = p.parseExpression(); msg != nil {
		return nil, msg
	}

	proto := &Prototype{
		Name:       "",
		Start:      body.Pos(),
		RightParen: body.Pos(),
	}

	return &Function{Proto: proto, Body: body}, nil
}
