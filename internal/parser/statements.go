package parser

import (
	"github.com/slitherlang/slither/internal/ast"
	"github.com/slitherlang/slither/internal/diagnostics"
	"github.com/slitherlang/slither/internal/token"
)

// parseStatement parses one statement. Compound statements return a single
// node; a simple line may carry several semicolon-separated statements.
// On return curToken sits at the first token of the next statement.
func (p *Parser) parseStatement() []ast.Statement {
	switch p.curToken.Type {
	case token.IF:
		return []ast.Statement{p.parseIf()}
	case token.WHILE:
		return []ast.Statement{p.parseWhile()}
	case token.FOR:
		return []ast.Statement{p.parseFor()}
	case token.TRY:
		return []ast.Statement{p.parseTry()}
	case token.WITH:
		return []ast.Statement{p.parseWith()}
	case token.DEF:
		return []ast.Statement{p.parseDef()}
	case token.CLASS:
		return []ast.Statement{p.parseClass()}
	default:
		return p.parseSimpleLine()
	}
}

// parseSimpleLine parses `stmt (';' stmt)* NEWLINE` and advances past the
// terminating newline.
func (p *Parser) parseSimpleLine() []ast.Statement {
	var stmts []ast.Statement
	for {
		if s := p.parseSimpleStmt(); s != nil {
			stmts = append(stmts, s)
		}
		if p.peekTokenIs(token.SEMI) {
			p.nextToken() // onto ';'
			if p.peekTokenIs(token.NEWLINE) {
				p.nextToken() // trailing semicolon
				break
			}
			p.nextToken() // onto the next statement
			continue
		}
		if !p.expectPeek(token.NEWLINE) {
			p.skipToNewline()
			return stmts
		}
		break
	}
	p.nextToken() // past NEWLINE
	return stmts
}

// parseSimpleStmt parses a single non-compound statement, leaving curToken
// at its last token.
func (p *Parser) parseSimpleStmt() ast.Statement {
	switch p.curToken.Type {
	case token.PASS:
		return &ast.Pass{Token: p.curToken}
	case token.BREAK:
		return &ast.Break{Token: p.curToken}
	case token.CONTINUE:
		return &ast.Continue{Token: p.curToken}
	case token.RETURN:
		stmt := &ast.Return{Token: p.curToken}
		if !p.peekTokenIs(token.NEWLINE) && !p.peekTokenIs(token.SEMI) {
			p.nextToken()
			stmt.Value = p.parseExpression(LOWEST)
		}
		return stmt
	case token.RAISE:
		stmt := &ast.Raise{Token: p.curToken}
		if !p.peekTokenIs(token.NEWLINE) && !p.peekTokenIs(token.SEMI) {
			p.nextToken()
			stmt.Exc = p.parseExpression(LOWEST)
			if p.peekTokenIs(token.FROM) {
				p.nextToken()
				p.nextToken()
				stmt.From = p.parseExpression(LOWEST)
			}
		}
		return stmt
	case token.ASSERT:
		stmt := &ast.Assert{Token: p.curToken}
		p.nextToken()
		stmt.Condition = p.parseExpression(LOWEST)
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			stmt.Message = p.parseExpression(LOWEST)
		}
		return stmt
	case token.DEL:
		stmt := &ast.Del{Token: p.curToken}
		p.nextToken()
		stmt.Target = p.parseExpression(LOWEST)
		return stmt
	case token.IMPORT:
		return p.parseImport()
	case token.FROM:
		return p.parseImportFrom()
	case token.GLOBAL:
		stmt := &ast.Global{Token: p.curToken}
		stmt.Names = p.parseNameList()
		return stmt
	case token.NONLOCAL:
		stmt := &ast.Nonlocal{Token: p.curToken}
		stmt.Names = p.parseNameList()
		return stmt
	default:
		return p.parseExpressionOrAssignment()
	}
}

func (p *Parser) parseExpressionOrAssignment() ast.Statement {
	startTok := p.curToken
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken() // onto '='
		assignTok := p.curToken
		p.nextToken()
		value := p.parseExpression(LOWEST)
		return &ast.Assign{Token: assignTok, Target: expr, Value: value}
	}
	return &ast.ExpressionStatement{Token: startTok, Expression: expr}
}

func (p *Parser) parseNameList() []string {
	var names []string
	for {
		if !p.expectPeek(token.IDENT) {
			return names
		}
		names = append(names, p.curToken.Lexeme)
		if !p.peekTokenIs(token.COMMA) {
			return names
		}
		p.nextToken()
	}
}

// parseSuite parses `: simple_line` or `: NEWLINE INDENT stmts DEDENT`.
// curToken must be the colon; on return curToken sits after the suite.
func (p *Parser) parseSuite() *ast.Block {
	block := &ast.Block{Token: p.curToken}
	if !p.curTokenIs(token.COLON) {
		p.errors = append(p.errors, diagnostics.New(diagnostics.PhaseParser, diagnostics.ErrP005,
			p.curToken, string(token.COLON), string(p.curToken.Type)))
		p.skipToNewline()
		return block
	}
	if p.peekTokenIs(token.NEWLINE) {
		p.nextToken() // onto NEWLINE
		p.nextToken() // should be INDENT
		if !p.curTokenIs(token.INDENT) {
			p.errors = append(p.errors, diagnostics.New(diagnostics.PhaseParser, diagnostics.ErrP005,
				p.curToken, string(token.INDENT), string(p.curToken.Type)))
			return block
		}
		p.nextToken()
		for !p.curTokenIs(token.DEDENT) && !p.curTokenIs(token.EOF) {
			if p.curTokenIs(token.NEWLINE) || p.curTokenIs(token.SEMI) {
				p.nextToken()
				continue
			}
			block.Statements = append(block.Statements, p.parseStatement()...)
		}
		if p.curTokenIs(token.DEDENT) {
			p.nextToken()
		}
	} else {
		p.nextToken() // first token of the inline suite
		block.Statements = p.parseSimpleLine()
	}
	return block
}

func (p *Parser) parseIf() ast.Statement {
	stmt := &ast.If{Token: p.curToken}
	for {
		clauseTok := p.curToken
		p.nextToken()
		cond := p.parseExpression(LOWEST)
		p.nextToken() // onto ':'
		body := p.parseSuite()
		stmt.Clauses = append(stmt.Clauses, &ast.IfClause{Token: clauseTok, Condition: cond, Body: body})
		if !p.curTokenIs(token.ELIF) {
			break
		}
	}
	if p.curTokenIs(token.ELSE) {
		p.nextToken()
		stmt.Else = p.parseSuite()
	}
	return stmt
}

func (p *Parser) parseWhile() ast.Statement {
	stmt := &ast.While{Token: p.curToken}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	p.nextToken() // onto ':'
	stmt.Body = p.parseSuite()
	if p.curTokenIs(token.ELSE) {
		p.nextToken()
		stmt.Else = p.parseSuite()
	}
	return stmt
}

func (p *Parser) parseFor() ast.Statement {
	stmt := &ast.For{Token: p.curToken}
	p.nextToken()
	stmt.Target = p.parseExpression(COMPARISON)
	if !p.expectPeek(token.IN) {
		p.skipToNewline()
		return stmt
	}
	p.nextToken()
	stmt.Iterable = p.parseExpression(LOWEST)
	p.nextToken() // onto ':'
	stmt.Body = p.parseSuite()
	if p.curTokenIs(token.ELSE) {
		p.nextToken()
		stmt.Else = p.parseSuite()
	}
	return stmt
}

func (p *Parser) parseWith() ast.Statement {
	stmt := &ast.With{Token: p.curToken}
	for {
		p.nextToken()
		item := p.parseExpression(LOWEST)
		stmt.Items = append(stmt.Items, item)
		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
	}
	p.nextToken() // onto ':'
	stmt.Body = p.parseSuite()
	return stmt
}

func (p *Parser) parseTry() ast.Statement {
	stmt := &ast.Try{Token: p.curToken}
	p.nextToken() // onto ':'
	stmt.Body = p.parseSuite()

	for p.curTokenIs(token.EXCEPT) {
		clause := &ast.ExceptClause{Token: p.curToken}
		if p.peekTokenIs(token.COLON) {
			p.nextToken() // bare except
		} else {
			p.nextToken()
			// Parse below ASBIND so a trailing `as name` stays ours.
			clause.Class = p.parseExpression(ASBIND)
			if p.peekTokenIs(token.AS) {
				p.nextToken()
				if p.expectPeek(token.IDENT) {
					clause.Name = p.curToken.Lexeme
				}
			}
			p.nextToken() // onto ':'
		}
		clause.Body = p.parseSuite()
		stmt.Excepts = append(stmt.Excepts, clause)
	}
	if p.curTokenIs(token.ELSE) {
		p.nextToken()
		stmt.Else = p.parseSuite()
	}
	if p.curTokenIs(token.FINALLY) {
		p.nextToken()
		stmt.Finally = p.parseSuite()
	}
	if len(stmt.Excepts) == 0 && stmt.Finally == nil {
		p.errors = append(p.errors, diagnostics.New(diagnostics.PhaseParser, diagnostics.ErrP006,
			stmt.Token, "try statement must have at least one except or finally clause"))
	}
	return stmt
}

func (p *Parser) parseDef() ast.Statement {
	stmt := &ast.Def{Token: p.curToken}
	if !p.expectPeek(token.IDENT) {
		p.skipToNewline()
		return stmt
	}
	stmt.Name = p.curToken.Lexeme
	if !p.expectPeek(token.LPAREN) {
		p.skipToNewline()
		return stmt
	}
	stmt.Params = p.parseParameters()
	p.nextToken() // onto ':'
	stmt.Body = p.parseSuite()
	return stmt
}

// parseParameters parses `(a, b, c)` with curToken on the opening paren,
// leaving curToken on the closing paren.
func (p *Parser) parseParameters() []*ast.Parameter {
	var params []*ast.Parameter
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params
	}
	for {
		if !p.expectPeek(token.IDENT) {
			return params
		}
		params = append(params, &ast.Parameter{Token: p.curToken, Name: p.curToken.Lexeme})
		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
	}
	p.expectPeek(token.RPAREN)
	return params
}

func (p *Parser) parseClass() ast.Statement {
	stmt := &ast.ClassDef{Token: p.curToken}
	if !p.expectPeek(token.IDENT) {
		p.skipToNewline()
		return stmt
	}
	stmt.Name = p.curToken.Lexeme
	if p.peekTokenIs(token.LPAREN) {
		p.nextToken()
		if !p.peekTokenIs(token.RPAREN) {
			for {
				p.nextToken()
				base := p.parseExpression(LOWEST)
				stmt.Bases = append(stmt.Bases, base)
				if !p.peekTokenIs(token.COMMA) {
					break
				}
				p.nextToken()
			}
		}
		p.expectPeek(token.RPAREN)
	}
	p.nextToken() // onto ':'
	stmt.Body = p.parseSuite()
	return stmt
}

func (p *Parser) parseImport() ast.Statement {
	stmt := &ast.Import{Token: p.curToken}
	for {
		if !p.expectPeek(token.IDENT) {
			return stmt
		}
		path := &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
		var item ast.Expression = path
		if p.peekTokenIs(token.AS) {
			p.nextToken()
			asTok := p.curToken
			if p.expectPeek(token.IDENT) {
				alias := &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
				item = &ast.As{Token: asTok, Value: path, Binding: alias}
			}
		}
		stmt.Items = append(stmt.Items, item)
		if !p.peekTokenIs(token.COMMA) {
			return stmt
		}
		p.nextToken()
	}
}

func (p *Parser) parseImportFrom() ast.Statement {
	stmt := &ast.ImportFrom{Token: p.curToken}
	level := 0
	for p.peekTokenIs(token.DOT) {
		p.nextToken()
		level++
	}
	if !p.expectPeek(token.IDENT) {
		p.skipToNewline()
		return stmt
	}
	path := &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
	stmt.Module = &ast.RelativeImport{Token: stmt.Token, Level: level, Path: path}
	if !p.expectPeek(token.IMPORT) {
		p.skipToNewline()
		return stmt
	}
	if p.peekTokenIs(token.ASTERISK) {
		p.nextToken()
		stmt.Items = []ast.Expression{&ast.Glob{Token: p.curToken}}
		return stmt
	}
	p.errors = append(p.errors, diagnostics.New(diagnostics.PhaseParser, diagnostics.ErrP006,
		p.peekToken, "only 'from <module> import *' is supported"))
	return stmt
}
