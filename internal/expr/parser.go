package expr

import "fmt"

// Parse parses a formula into its expression tree. The grammar:
//
//	formula   := expr (CMPOP expr)?
//	expr      := term (('+'|'-') term)*
//	term      := factor (('*'|'/') factor)*
//	factor    := unary ('**' unary)*
//	unary     := '-'? primary
//	primary   := NUMBER | IDENT | '(' expr ')' | IDENT '(' expr (',' expr)* ')'
//
// A comparison may only appear at the top level; nesting one is a syntax
// error by construction.
func Parse(src string) (Node, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{src: src, toks: toks}
	root, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokEOF {
		return nil, p.errorf(p.peek().pos, "unexpected %q", p.peek().text)
	}
	return root, nil
}

type parser struct {
	src  string
	toks []token
	i    int
}

func (p *parser) peek() token { return p.toks[p.i] }

func (p *parser) next() token {
	t := p.toks[p.i]
	if t.kind != tokEOF {
		p.i++
	}
	return t
}

func (p *parser) errorf(pos int, format string, args ...any) error {
	return &ParseError{Formula: p.src, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

func (p *parser) parseFormula() (Node, error) {
	left, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokCmp {
		return left, nil
	}
	op := p.next()
	right, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.peek().kind == tokCmp {
		return nil, p.errorf(p.peek().pos, "chained comparisons are not supported")
	}
	return &Compare{Op: op.text, L: left, R: right}, nil
}

func (p *parser) parseExpr() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokOp && (p.peek().text == "+" || p.peek().text == "-") {
		op := p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op.text, L: left, R: right}
	}
	return left, nil
}

func (p *parser) parseTerm() (Node, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokOp && (p.peek().text == "*" || p.peek().text == "/") {
		op := p.next()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op.text, L: left, R: right}
	}
	return left, nil
}

func (p *parser) parseFactor() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.peek().kind == tokOp && p.peek().text == "**" {
		p.next()
		// Power is right-associative: a ** b ** c == a ** (b ** c).
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &Binary{Op: "**", L: left, R: right}, nil
	}
	return left, nil
}

func (p *parser) parseUnary() (Node, error) {
	if p.peek().kind == tokOp && p.peek().text == "-" {
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Unary{Op: "-", X: x}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Node, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return &NumberLit{Value: t.val, Text: t.text}, nil
	case tokIdent:
		if p.peek().kind != tokLParen {
			return &Ident{Name: t.text}, nil
		}
		p.next() // consume '('
		if !isBuiltinFunc(t.text) {
			return nil, p.errorf(t.pos, "call to %q: only %v may be called", t.text, BuiltinFuncs())
		}
		var args []Node
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.peek().kind == tokComma {
				p.next()
				continue
			}
			break
		}
		if closing := p.next(); closing.kind != tokRParen {
			return nil, p.errorf(closing.pos, "expected ')' to close call to %q", t.text)
		}
		return &Call{Func: t.text, Args: args}, nil
	case tokLParen:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return nil, p.errorf(closing.pos, "expected ')'")
		}
		return inner, nil
	case tokEOF:
		return nil, p.errorf(t.pos, "unexpected end of formula")
	default:
		return nil, p.errorf(t.pos, "unexpected %q", t.text)
	}
}
