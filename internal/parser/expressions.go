package parser

import (
	"math/big"

	"github.com/slitherlang/slither/internal/ast"
	"github.com/slitherlang/slither/internal/diagnostics"
	"github.com/slitherlang/slither/internal/token"
)

func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken)
		return nil
	}
	leftExp := prefix()

	for leftExp != nil && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}
		p.nextToken()
		leftExp = infix(leftExp)
	}
	return leftExp
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	val, ok := p.curToken.Literal.(*big.Int)
	if !ok {
		p.errors = append(p.errors, diagnostics.New(diagnostics.PhaseParser, diagnostics.ErrP003,
			p.curToken, p.curToken.Lexeme))
		return nil
	}
	return &ast.IntegerLiteral{Token: p.curToken, Value: val}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	val, ok := p.curToken.Literal.(float64)
	if !ok {
		p.errors = append(p.errors, diagnostics.New(diagnostics.PhaseParser, diagnostics.ErrP003,
			p.curToken, p.curToken.Lexeme))
		return nil
	}
	return &ast.FloatLiteral{Token: p.curToken, Value: val}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Lexeme}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
}

func (p *Parser) parseNoneLiteral() ast.Expression {
	return &ast.NoneLiteral{Token: p.curToken}
}

func (p *Parser) parseUnaryExpression() ast.Expression {
	expr := &ast.UnaryOp{Token: p.curToken, Operator: p.curToken.Lexeme}
	p.nextToken()
	expr.Operand = p.parseExpression(PREFIX)
	return expr
}

// parseNotExpression binds looser than comparisons: `not a == b` negates
// the comparison, not the operand.
func (p *Parser) parseNotExpression() ast.Expression {
	expr := &ast.UnaryOp{Token: p.curToken, Operator: "not"}
	p.nextToken()
	expr.Operand = p.parseExpression(LOGIC_NOT)
	return expr
}

func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	expr := &ast.BinOp{Token: p.curToken, Operator: p.curToken.Lexeme, Left: left}
	precedence := p.curPrecedence()
	if p.curTokenIs(token.POWER) {
		// ** is right-associative.
		precedence--
	}
	p.nextToken()
	expr.Right = p.parseExpression(precedence)
	return expr
}

func (p *Parser) parseGroupedOrTuple() ast.Expression {
	lparen := p.curToken
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return &ast.TupleDef{Token: lparen}
	}
	p.nextToken()
	first := p.parseExpression(LOWEST)
	if !p.peekTokenIs(token.COMMA) {
		p.expectPeek(token.RPAREN)
		return first
	}
	tuple := &ast.TupleDef{Token: lparen, Elements: []ast.Expression{first}}
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		if p.peekTokenIs(token.RPAREN) {
			break // trailing comma
		}
		p.nextToken()
		tuple.Elements = append(tuple.Elements, p.parseExpression(LOWEST))
	}
	p.expectPeek(token.RPAREN)
	return tuple
}

func (p *Parser) parseListLiteral() ast.Expression {
	list := &ast.ListDef{Token: p.curToken}
	if p.peekTokenIs(token.RBRACKET) {
		p.nextToken()
		return list
	}
	for {
		p.nextToken()
		list.Elements = append(list.Elements, p.parseExpression(LOWEST))
		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
		if p.peekTokenIs(token.RBRACKET) {
			break // trailing comma
		}
	}
	p.expectPeek(token.RBRACKET)
	return list
}

func (p *Parser) parseCallExpression(callee ast.Expression) ast.Expression {
	call := &ast.Call{Token: p.curToken, Callee: callee}
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return call
	}
	for {
		p.nextToken()
		call.Args = append(call.Args, p.parseExpression(LOWEST))
		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
	}
	p.expectPeek(token.RPAREN)
	return call
}

func (p *Parser) parseAttributeExpression(target ast.Expression) ast.Expression {
	attr := &ast.Attribute{Token: p.curToken, Target: target}
	if !p.expectPeek(token.IDENT) {
		return attr
	}
	attr.Name = p.curToken.Lexeme
	return attr
}

// parseSubscriptExpression parses `a[i]` and the slice forms `a[i:j]`,
// `a[i:j:k]` with every part optional.
func (p *Parser) parseSubscriptExpression(container ast.Expression) ast.Expression {
	sub := &ast.Subscript{Token: p.curToken, Container: container}
	sliceTok := p.curToken

	var start ast.Expression
	if !p.peekTokenIs(token.COLON) {
		p.nextToken()
		start = p.parseExpression(LOWEST)
		if p.peekTokenIs(token.RBRACKET) {
			p.nextToken()
			sub.Index = start
			return sub
		}
	}
	// Slice form from here on.
	slice := &ast.SliceDef{Token: sliceTok, Start: start}
	if !p.expectPeek(token.COLON) {
		return sub
	}
	if !p.peekTokenIs(token.COLON) && !p.peekTokenIs(token.RBRACKET) {
		p.nextToken()
		slice.Stop = p.parseExpression(LOWEST)
	}
	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		if !p.peekTokenIs(token.RBRACKET) {
			p.nextToken()
			slice.Stride = p.parseExpression(LOWEST)
		}
	}
	p.expectPeek(token.RBRACKET)
	sub.Index = slice
	return sub
}

func (p *Parser) parseTernaryExpression(then ast.Expression) ast.Expression {
	expr := &ast.TernOp{Token: p.curToken, Then: then}
	p.nextToken()
	expr.Condition = p.parseExpression(TERNARY)
	if !p.expectPeek(token.ELSE) {
		return expr
	}
	p.nextToken()
	expr.Else = p.parseExpression(LOWEST)
	return expr
}

func (p *Parser) parseAsExpression(value ast.Expression) ast.Expression {
	expr := &ast.As{Token: p.curToken, Value: value}
	p.nextToken()
	expr.Binding = p.parseExpression(ASBIND)
	return expr
}

func (p *Parser) parseLambda() ast.Expression {
	lambda := &ast.Lambda{Token: p.curToken}
	for !p.peekTokenIs(token.COLON) && !p.peekTokenIs(token.NEWLINE) && !p.peekTokenIs(token.EOF) {
		if !p.expectPeek(token.IDENT) {
			return lambda
		}
		lambda.Params = append(lambda.Params, &ast.Parameter{Token: p.curToken, Name: p.curToken.Lexeme})
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
	if !p.expectPeek(token.COLON) {
		return lambda
	}
	p.nextToken()
	lambda.Body = p.parseExpression(LOWEST)
	return lambda
}

func (p *Parser) parseYield() ast.Expression {
	y := &ast.Yield{Token: p.curToken}
	if !p.peekTokenIs(token.NEWLINE) && !p.peekTokenIs(token.SEMI) &&
		!p.peekTokenIs(token.RPAREN) && !p.peekTokenIs(token.EOF) {
		p.nextToken()
		y.Value = p.parseExpression(LOWEST)
	}
	return y
}
