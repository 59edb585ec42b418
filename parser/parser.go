/*
 * SPL
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"fmt"
)

/*
firstTerm is the set of tokens which can start a term.
*/
var firstTerm = map[LexTokenID]bool{
	TokenINT:    true,
	TokenTRUE:   true,
	TokenFALSE:  true,
	TokenVAR:    true,
	TokenSTR:    true,
	TokenLBRACK: true,
	TokenLBRACE: true,
	TokenNIL:    true,
}

/*
firstExpression is the set of tokens which can start an expression.
*/
var firstExpression = map[LexTokenID]bool{
	TokenINT:    true,
	TokenTRUE:   true,
	TokenFALSE:  true,
	TokenVAR:    true,
	TokenSTR:    true,
	TokenLBRACK: true,
	TokenLBRACE: true,
	TokenNIL:    true,
	TokenLPAREN: true,
}

/*
unaryOpNodes maps tokens of unary operators to their AST node names.
*/
var unaryOpNodes = map[LexTokenID]string{
	TokenNOT:   NodeNOT,
	TokenHEAD:  NodeHEAD,
	TokenTAIL:  NodeTAIL,
	TokenPRINT: NodePRINT,
}

/*
binaryOpNodes maps tokens of binary operators to their AST node names.
*/
var binaryOpNodes = map[LexTokenID]string{
	TokenAND:   NodeAND,
	TokenOR:    NodeOR,
	TokenEQ:    NodeEQ,
	TokenNEQ:   NodeNEQ,
	TokenLT:    NodeLT,
	TokenLEQ:   NodeLEQ,
	TokenGT:    NodeGT,
	TokenGEQ:   NodeGEQ,
	TokenPLUS:  NodePLUS,
	TokenMINUS: NodeMINUS,
	TokenTIMES: NodeTIMES,
	TokenDIV:   NodeDIV,
	TokenWHILE: NodeWHILE,
	TokenPUSH:  NodePUSH,
	TokenGET:   NodeGET,
}

/*
ternaryOpNodes maps tokens of ternary operators to their AST node names.
*/
var ternaryOpNodes = map[LexTokenID]string{
	TokenIF:  NodeIF,
	TokenPUT: NodePUT,
}

// Parser
// ======

/*
Parser data structure
*/
type parser struct {
	name   string          // Name to identify the input
	token  *LexToken       // Current lookahead token
	tokens *LABuffer       // Buffer which is connected to the channel which contains lex tokens
	rp     RuntimeProvider // Runtime provider which creates runtime components
}

/*
Parse parses a given input string and returns an AST. Empty input yields a
nil AST.
*/
func Parse(name string, input string) (*ASTNode, error) {
	return ParseWithRuntime(name, input, nil)
}

/*
ParseWithRuntime parses a given input string and returns an AST decorated with
runtime components.
*/
func ParseWithRuntime(name string, input string, rp RuntimeProvider) (*ASTNode, error) {

	// Create a new parser with a look-ahead buffer of 3

	p := &parser{name, nil, NewLABuffer(Lex(name, input), 3), rp}

	// Read the first token

	if err := p.next(); err != nil {
		return nil, err
	}

	// Empty input is valid and produces no AST

	if p.token.ID == TokenEOF {
		return nil, nil
	}

	n, err := p.parseExpression()

	// The whole input must have been consumed by the single top-level
	// expression

	if err == nil && p.token.ID != TokenEOF {
		err = p.newParserError(ErrRemainingInput,
			fmt.Sprintf("extra token id:%v (%v)", p.token.ID, p.token), *p.token)
	}

	return n, err
}

/*
next retrieves the next lexer token.
*/
func (p *parser) next() error {
	token, more := p.tokens.Next()

	if !more {

		// Unexpected end of input - the associated token is an empty error token

		return p.newParserError(ErrUnexpectedEnd, "", token)

	} else if token.ID == TokenError {

		// There was a lexer error wrap it in a parser error

		return p.newParserError(ErrLexicalError, token.Val, token)
	}

	p.token = &token

	return nil
}

// Grammar productions
// ===================

/*
parseExpression parses an expression - either a term or a parenthesized
compound expression, optionally followed by the sequence operator.
*/
func (p *parser) parseExpression() (*ASTNode, error) {
	var left *ASTNode
	var err error

	if p.token.ID == TokenLPAREN {

		if err = p.next(); err == nil {
			left, err = p.parseParenExpression()
		}

	} else if firstTerm[p.token.ID] {

		left, err = p.parseTerm()

	} else if p.token.ID == TokenEOF {

		err = p.newParserError(ErrUnexpectedEnd, "", *p.token)

	} else {

		err = p.newParserError(ErrUnexpectedToken, p.token.String(), *p.token)
	}

	if err != nil {
		return nil, err
	}

	// One or more sequence separators chain a second expression - a missing
	// second expression after the separator is legal and elides the sequence

	if p.token.ID == TokenSEMICOLON {
		seqToken := *p.token

		for err == nil && p.token.ID == TokenSEMICOLON {
			err = p.next()
		}

		if err == nil && firstExpression[p.token.ID] {
			var right *ASTNode

			if right, err = p.parseExpression(); err == nil {
				seq := newAstNode(NodeSEQ, p, &seqToken)
				seq.Children = append(seq.Children, left)
				seq.Children = append(seq.Children, right)
				left = seq
			}
		}
	}

	return left, err
}

/*
parseParenExpression parses the inside of a parenthesized expression. The
opening parenthesis has been consumed - the first token determines the
production.
*/
func (p *parser) parseParenExpression() (*ASTNode, error) {
	var ret *ASTNode
	var err error

	token := *p.token

	if token.ID == TokenFUNC {
		ret, err = p.parseFunc(&token)

	} else if token.ID == TokenCALL {
		ret, err = p.parseCall(&token)

	} else if token.ID == TokenLET || token.ID == TokenMUT || token.ID == TokenSET {
		ret, err = p.parseBinding(&token)

	} else if name, ok := unaryOpNodes[token.ID]; ok {
		ret, err = p.parseOperands(newAstNode(name, p, &token), 1)

	} else if name, ok := binaryOpNodes[token.ID]; ok {
		ret, err = p.parseOperands(newAstNode(name, p, &token), 2)

	} else if name, ok := ternaryOpNodes[token.ID]; ok {
		ret, err = p.parseOperands(newAstNode(name, p, &token), 3)

	} else if firstExpression[token.ID] {

		// A parenthesized grouping of a plain expression

		if ret, err = p.parseExpression(); err == nil {
			err = p.skipToken(TokenRPAREN)
		}

	} else if token.ID == TokenEOF {

		err = p.newParserError(ErrUnexpectedEnd, "", token)

	} else {

		err = p.newParserError(ErrUnexpectedToken, p.token.String(), *p.token)
	}

	return ret, err
}

/*
parseFunc parses a function definition: func <name> <params> : <body> )
*/
func (p *parser) parseFunc(token *LexToken) (*ASTNode, error) {
	ret := newAstNode(NodeFUNC, p, token)

	err := p.next()

	if err == nil {
		err = p.acceptVarChild(ret)
	}

	if err == nil {
		params := newAstNode(NodePARAMS, p, nil)
		ret.Children = append(ret.Children, params)

		for err == nil && p.token.ID == TokenVAR {
			err = p.acceptVarChild(params)
		}

		if err == nil {

			// A parameter must never use the function's own name

			name := ret.Children[0].Token.Val

			for _, param := range params.Children {
				if param.Token.Val == name {
					err = p.newParserError(ErrInvalidConstruct,
						fmt.Sprintf("Function parameter must not use the function name %v", name),
						*param.Token)
				}
			}
		}
	}

	if err == nil {
		if err = p.skipToken(TokenCOLON); err == nil {
			var body *ASTNode

			if body, err = p.parseExpression(); err == nil {
				ret.Children = append(ret.Children, body)
				err = p.skipToken(TokenRPAREN)
			}
		}
	}

	return ret, err
}

/*
parseCall parses a function call: call <expression> <arguments> )
*/
func (p *parser) parseCall(token *LexToken) (*ASTNode, error) {
	var fn *ASTNode

	ret := newAstNode(NodeCALL, p, token)

	err := p.next()

	if err == nil {
		if fn, err = p.parseExpression(); err == nil {
			ret.Children = append(ret.Children, fn)

			for err == nil && firstExpression[p.token.ID] {
				var arg *ASTNode

				if arg, err = p.parseExpression(); err == nil {
					ret.Children = append(ret.Children, arg)
				}
			}

			if err == nil {
				err = p.skipToken(TokenRPAREN)
			}
		}
	}

	return ret, err
}

/*
parseBinding parses the binding forms: let / mut / set <var> <expression> )
*/
func (p *parser) parseBinding(token *LexToken) (*ASTNode, error) {
	var name string

	if token.ID == TokenLET {
		name = NodeLET
	} else if token.ID == TokenMUT {
		name = NodeMUT
	} else {
		name = NodeSET
	}

	ret := newAstNode(name, p, token)

	err := p.next()

	if err == nil {
		if err = p.acceptVarChild(ret); err == nil {
			var expr *ASTNode

			if expr, err = p.parseExpression(); err == nil {
				ret.Children = append(ret.Children, expr)
				err = p.skipToken(TokenRPAREN)
			}
		}
	}

	return ret, err
}

/*
parseOperands parses a fixed number of operand expressions followed by the
closing parenthesis.
*/
func (p *parser) parseOperands(ret *ASTNode, operands int) (*ASTNode, error) {
	err := p.next()

	for i := 0; err == nil && i < operands; i++ {
		var operand *ASTNode

		if operand, err = p.parseExpression(); err == nil {
			ret.Children = append(ret.Children, operand)
		}
	}

	if err == nil {
		err = p.skipToken(TokenRPAREN)
	}

	return ret, err
}

/*
parseTerm parses a term.
*/
func (p *parser) parseTerm() (*ASTNode, error) {
	var ret *ASTNode
	var err error

	token := *p.token

	switch token.ID {

	case TokenINT:
		ret = newAstNode(NodeINT, p, &token)
		err = p.next()

	case TokenTRUE:
		ret = newAstNode(NodeTRUE, p, &token)
		err = p.next()

	case TokenFALSE:
		ret = newAstNode(NodeFALSE, p, &token)
		err = p.next()

	case TokenVAR:
		ret = newAstNode(NodeVAR, p, &token)
		err = p.next()

	case TokenSTR:
		ret = newAstNode(NodeSTRING, p, &token)
		err = p.next()

	case TokenNIL:
		ret = newAstNode(NodeNIL, p, &token)
		err = p.next()

	case TokenLBRACK:
		ret, err = p.parseList(&token)

	case TokenLBRACE:
		ret, err = p.parseMap(&token)

	case TokenEOF:
		err = p.newParserError(ErrUnexpectedEnd, "", token)

	default:
		err = p.newParserError(ErrUnexpectedToken, p.token.String(), *p.token)
	}

	return ret, err
}

/*
parseList parses a list literal: [ <expressions> ]
*/
func (p *parser) parseList(token *LexToken) (*ASTNode, error) {
	ret := newAstNode(NodeLIST, p, token)

	err := p.next()

	for err == nil && firstExpression[p.token.ID] {
		var item *ASTNode

		if item, err = p.parseExpression(); err == nil {
			ret.Children = append(ret.Children, item)
		}
	}

	if err == nil {
		err = p.skipToken(TokenRBRACK)
	}

	return ret, err
}

/*
parseMap parses a map literal: { <expression> : <expression> ... }
*/
func (p *parser) parseMap(token *LexToken) (*ASTNode, error) {
	ret := newAstNode(NodeMAP, p, token)

	err := p.next()

	for err == nil && firstExpression[p.token.ID] {
		var key, val *ASTNode

		if key, err = p.parseExpression(); err == nil {
			kvpToken := *p.token

			if err = p.skipToken(TokenCOLON); err == nil {

				if val, err = p.parseExpression(); err == nil {
					kvp := newAstNode(NodeKVP, p, &kvpToken)
					kvp.Children = append(kvp.Children, key)
					kvp.Children = append(kvp.Children, val)
					ret.Children = append(ret.Children, kvp)
				}
			}
		}
	}

	if err == nil {
		err = p.skipToken(TokenRBRACE)
	}

	return ret, err
}

// Helper functions
// ================

/*
skipToken skips over a given token.
*/
func (p *parser) skipToken(ids ...LexTokenID) error {
	var err error

	canSkip := func(id LexTokenID) bool {
		for _, i := range ids {
			if i == id {
				return true
			}
		}
		return false
	}

	if !canSkip(p.token.ID) {
		if p.token.ID == TokenEOF {
			return p.newParserError(ErrUnexpectedEnd, "", *p.token)
		}
		return p.newParserError(ErrUnexpectedToken, p.token.Val, *p.token)
	}

	// This should never return an error unless we skip over EOF or complex tokens
	// like values

	return p.next()
}

/*
acceptVarChild accepts the current token as a variable identifier and adds it
as a child to the given node.
*/
func (p *parser) acceptVarChild(self *ASTNode) error {
	var err error

	current := *p.token

	if current.ID != TokenVAR {
		if current.ID == TokenEOF {
			return p.newParserError(ErrUnexpectedEnd, "", current)
		}
		return p.newParserError(ErrUnexpectedToken, current.Val, current)
	}

	if err = p.next(); err == nil {
		self.Children = append(self.Children, newAstNode(NodeVAR, p, &current))
	}

	return err
}
