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
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

/*
LexToken represents a token which is returned by the lexer.
*/
type LexToken struct {
	ID         LexTokenID // Token kind
	Pos        int        // Starting position (in bytes)
	Val        string     // Token value
	Identifier bool       // Flag if the value is an identifier (not quoted and not a number)
	Lsource    string     // Input source label (e.g. filename)
	Lline      int        // Line in the input this token appears
	Lpos       int        // Position in the input line this token appears
}

/*
NewLexTokenInstance creates a new LexToken object instance from given LexToken values.
*/
func NewLexTokenInstance(t LexToken) *LexToken {
	return &LexToken{
		t.ID,
		t.Pos,
		t.Val,
		t.Identifier,
		t.Lsource,
		t.Lline,
		t.Lpos,
	}
}

/*
Equals checks if this LexToken equals another LexToken. Returns also a message describing
what is the found difference.
*/
func (t LexToken) Equals(other LexToken, ignorePosition bool) (bool, string) {
	var res = true
	var msg = ""

	if t.ID != other.ID {
		res = false
		msg += fmt.Sprintf("ID is different %v vs %v\n", t.ID, other.ID)
	}

	if !ignorePosition && t.Pos != other.Pos {
		res = false
		msg += fmt.Sprintf("Pos is different %v vs %v\n", t.Pos, other.Pos)
	}

	if t.Val != other.Val {
		res = false
		msg += fmt.Sprintf("Val is different %v vs %v\n", t.Val, other.Val)
	}

	if t.Identifier != other.Identifier {
		res = false
		msg += fmt.Sprintf("Identifier is different %v vs %v\n", t.Identifier, other.Identifier)
	}

	if !ignorePosition && t.Lline != other.Lline {
		res = false
		msg += fmt.Sprintf("Lline is different %v vs %v\n", t.Lline, other.Lline)
	}

	if !ignorePosition && t.Lpos != other.Lpos {
		res = false
		msg += fmt.Sprintf("Lpos is different %v vs %v\n", t.Lpos, other.Lpos)
	}

	if msg != "" {
		var buf bytes.Buffer
		out, _ := json.MarshalIndent(t, "", "  ")
		buf.WriteString(string(out))
		buf.WriteString("\nvs\n")
		out, _ = json.MarshalIndent(other, "", "  ")
		buf.WriteString(string(out))
		msg = fmt.Sprintf("%v%v", msg, buf.String())
	}

	return res, msg
}

/*
PosString returns the position of this token in the original input as a string.
*/
func (t LexToken) PosString() string {
	return fmt.Sprintf("Line %v, Pos %v", t.Lline, t.Lpos)
}

/*
String returns a string representation of a token.
*/
func (t LexToken) String() string {

	switch {

	case t.ID == TokenEOF:
		return "EOF"

	case t.ID == TokenError:
		return fmt.Sprintf("Error: %s (%s)", t.Val, t.PosString())

	case t.ID == TokenINT:
		return t.Val

	case t.ID == TokenVAR:
		return t.Val

	case t.ID == TokenSTR:
		return fmt.Sprintf("%q", t.Val)

	case t.ID > TOKENodeKEYWORDS:
		return fmt.Sprintf("<%s>", t.Val)
	}

	return t.Val
}

/*
KeywordMap is a map of keywords - these require a non-alphanumeric character
after them. Keywords are case-sensitive.
*/
var KeywordMap = map[string]LexTokenID{
	"while": TokenWHILE,
	"if":    TokenIF,
	"func":  TokenFUNC,
	"call":  TokenCALL,
	"let":   TokenLET,
	"mut":   TokenMUT,
	"set":   TokenSET,
	"True":  TokenTRUE,
	"False": TokenFALSE,
	"nil":   TokenNIL,
	"head":  TokenHEAD,
	"tail":  TokenTAIL,
	"push":  TokenPUSH,
	"get":   TokenGET,
	"put":   TokenPUT,
	"print": TokenPRINT,
}

/*
keywordOrder is the order in which keywords are matched.
*/
var keywordOrder = []string{"while", "if", "func", "call", "let", "mut", "set",
	"True", "False", "nil", "head", "tail", "push", "get", "put", "print"}

/*
SymbolMap is a map of special symbols. Symbols can be maximal 2 characters long.
*/
var SymbolMap = map[string]LexTokenID{

	// Condition operators

	">=": TokenGEQ,
	"<=": TokenLEQ,
	"!=": TokenNEQ,
	"==": TokenEQ,
	">":  TokenGT,
	"<":  TokenLT,

	// Grouping symbols

	"(": TokenLPAREN,
	")": TokenRPAREN,
	"[": TokenLBRACK,
	"]": TokenRBRACK,
	"{": TokenLBRACE,
	"}": TokenRBRACE,

	// Separators

	":": TokenCOLON,
	";": TokenSEMICOLON,

	// Arithmetic operators

	"+": TokenPLUS,
	"-": TokenMINUS,
	"*": TokenTIMES,
	"/": TokenDIV,

	// Boolean operators

	"&&": TokenAND,
	"||": TokenOR,
	"!":  TokenNOT,
}

/*
twoCharSymbols are the symbols which are matched before any single character
symbol is tried.
*/
var twoCharSymbols = []string{"!=", "<=", ">=", "&&", "||", "=="}

/*
oneCharSymbols are the single character symbols in matching order. The minus
symbol is missing here deliberately - it is only matched after integer
scanning failed so negative integer literals stay reachable.
*/
var oneCharSymbols = []string{"(", ")", "[", "]", "{", "}", ":", "!", "<", ">",
	"+", ";", "*", "/"}

// Lexer
// =====

/*
RuneEOF is a special rune which represents the end of the input
*/
const RuneEOF = -1

/*
Function which represents the current state of the lexer and returns the next state
*/
type lexFunc func(*lexer) lexFunc

/*
Lexer data structure
*/
type lexer struct {
	name   string        // Name to identify the input
	input  string        // Input string of the lexer
	pos    int           // Current rune pointer
	line   int           // Current line pointer
	lastnl int           // Last newline position
	width  int           // Width of last rune
	start  int           // Start position of the current red token
	tokens chan LexToken // Channel for lexer output
}

/*
Lex lexes a given input. Returns a channel which contains tokens.
*/
func Lex(name string, input string) chan LexToken {
	l := &lexer{name, input, 0, 0, 0, 0, 0, make(chan LexToken)}
	go l.run()
	return l.tokens
}

/*
LexToList lexes a given input. Returns a list of tokens.
*/
func LexToList(name string, input string) []LexToken {
	var tokens []LexToken

	for t := range Lex(name, input) {
		tokens = append(tokens, t)
	}

	return tokens
}

/*
Main loop of the lexer.
*/
func (l *lexer) run() {

	if skipWhiteSpace(l) {
		for state := lexToken; state != nil; {
			state = state(l)

			if state == nil || !skipWhiteSpace(l) {
				break
			}
		}
	}

	close(l.tokens)
}

/*
next returns the next rune in the input and advances the current rune pointer
if peek is 0. If peek is >0 then the nth character is returned without advancing
the rune pointer.
*/
func (l *lexer) next(peek int) rune {

	// Check if we reached the end

	if int(l.pos) >= len(l.input) {
		return RuneEOF
	}

	// Decode the next rune

	pos := l.pos
	if peek > 0 {
		pos += peek - 1
	}

	if pos >= len(l.input) {
		return RuneEOF
	}

	r, w := utf8.DecodeRuneInString(l.input[pos:])

	if peek == 0 {
		l.width = w
		l.pos += l.width
	}

	return r
}

/*
backup sets the pointer one rune back. Can only be called once per next call.
*/
func (l *lexer) backup(width int) {
	if width == 0 {
		width = l.width
	}
	l.pos -= width
}

/*
startNew starts a new token.
*/
func (l *lexer) startNew() {
	l.start = l.pos
}

/*
emitToken passes a token back to the client.
*/
func (l *lexer) emitToken(t LexTokenID) {
	if t == TokenEOF {
		l.emitTokenAndValue(t, "", false)
		return
	}

	if l.tokens != nil {
		l.tokens <- LexToken{t, l.start, l.input[l.start:l.pos], false, l.name,
			l.line + 1, l.start - l.lastnl + 1}
	}
}

/*
emitTokenAndValue passes a token with a given value back to the client.
*/
func (l *lexer) emitTokenAndValue(t LexTokenID, val string, identifier bool) {
	if l.tokens != nil {
		l.tokens <- LexToken{t, l.start, val, identifier, l.name, l.line + 1, l.start - l.lastnl + 1}
	}
}

/*
emitError passes an error token back to the client.
*/
func (l *lexer) emitError(msg string) {
	if l.tokens != nil {
		l.tokens <- LexToken{TokenError, l.start, msg, false, l.name, l.line + 1, l.start - l.lastnl + 1}
	}
}

// Helper functions
// ================

/*
skipWhiteSpace skips any number of whitespace characters. Returns false if the lexer
reaches EOF while skipping whitespaces.
*/
func skipWhiteSpace(l *lexer) bool {
	r := l.next(0)

	for unicode.IsSpace(r) || unicode.IsControl(r) || r == RuneEOF {
		if r == '\n' {
			l.line++
			l.lastnl = l.pos
		}
		r = l.next(0)

		if r == RuneEOF {
			l.emitToken(TokenEOF)
			return false
		}
	}

	l.backup(0)
	return true
}

/*
isAlpha checks if a given rune is a letter.
*/
func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

/*
isNumeric checks if a given rune is a digit.
*/
func isNumeric(r rune) bool {
	return r >= '0' && r <= '9'
}

/*
isAlphaNumeric checks if a given rune is a letter or a digit.
*/
func isAlphaNumeric(r rune) bool {
	return isAlpha(r) || isNumeric(r)
}

/*
hasPrefix checks if the remaining input starts with a given string.
*/
func (l *lexer) hasPrefix(s string) bool {
	if l.pos+len(s) > len(l.input) {
		return false
	}
	return l.input[l.pos:l.pos+len(s)] == s
}

// State functions
// ===============

/*
lexToken is the main entry function for the lexer. The match order is
significant - it mirrors the language definition: two-character operators,
single-character symbols, integer literals (which consume a leading run of
minus signs), the minus symbol, keywords, identifiers and finally string
literals.
*/
func lexToken(l *lexer) lexFunc {

	l.startNew()

	// Check for a two-character operator symbol

	for _, sym := range twoCharSymbols {
		if l.hasPrefix(sym) {
			l.next(0)
			l.next(0)
			l.emitToken(SymbolMap[sym])
			return lexToken
		}
	}

	// Check for a single-character symbol (not including minus)

	for _, sym := range oneCharSymbols {
		if l.hasPrefix(sym) {
			l.next(0)
			l.emitToken(SymbolMap[sym])
			return lexToken
		}
	}

	// Try to lex an integer - this must happen before the minus symbol is
	// tried so negative literals can be matched

	r := l.next(1)

	if r == '-' || isNumeric(r) {
		if ok, state := lexIntBlock(l); ok {
			return state
		}
	}

	// A minus which did not start an integer is the minus symbol

	if r == '-' {
		l.next(0)
		l.emitToken(TokenMINUS)
		return lexToken
	}

	// Check for a keyword - requires a non-alphanumeric boundary

	for _, kw := range keywordOrder {
		if l.hasPrefix(kw) {
			if b := l.pos + len(kw); b >= len(l.input) || !isAlphaNumericByte(l.input[b]) {
				for range kw {
					l.next(0)
				}
				l.emitToken(KeywordMap[kw])
				return lexToken
			}
		}
	}

	// Check for an identifier

	if isAlpha(r) {
		l.next(0)
		for isAlphaNumeric(l.next(1)) {
			l.next(0)
		}
		l.emitTokenAndValue(TokenVAR, l.input[l.start:l.pos], true)
		return lexToken
	}

	// Check for a string literal

	if r == '"' {
		return lexString
	}

	l.emitError(fmt.Sprintf("Cannot parse character '%v'", string(r)))
	return nil
}

/*
isAlphaNumericByte checks if a given byte is a letter or a digit.
*/
func isAlphaNumericByte(b byte) bool {
	return isAlphaNumeric(rune(b))
}

/*
lexIntBlock lexes an integer literal. A literal may start with a run of minus
signs of which each flips the sign. The literal is rejected if no digits were
consumed or if it is immediately followed by a letter. Returns false if no
integer could be matched - the lexer state is unchanged in that case.
*/
func lexIntBlock(l *lexer) (bool, lexFunc) {
	startPos := l.pos

	neg := false
	for l.next(1) == '-' {
		l.next(0)
		neg = !neg
	}

	digitStart := l.pos
	for isNumeric(l.next(1)) {
		l.next(0)
	}

	if digitStart == l.pos || isAlpha(l.next(1)) {

		// No digits were consumed or a letter follows directly

		if digitStart != l.pos {
			l.emitError(fmt.Sprintf("Integer literal must not be followed by a letter '%v'",
				l.input[l.start:l.pos]))
			return true, nil
		}

		l.pos = startPos
		return false, nil
	}

	val, err := strconv.ParseInt(l.input[digitStart:l.pos], 10, 64)
	if err != nil {
		l.emitError(fmt.Sprintf("Could not parse integer: %v", err.Error()))
		return true, nil
	}

	if neg {
		val = -val
	}

	l.emitTokenAndValue(TokenINT, strconv.FormatInt(val, 10), false)
	return true, lexToken
}

/*
lexString lexes a string value. Characters are parsed between double quotes.
A quote which is directly preceded by a backslash does not end the string -
the backslash itself is kept verbatim in the token value.
*/
func lexString(l *lexer) lexFunc {

	// Consume the opening quote

	l.next(0)

	valStart := l.pos
	lLine := l.line
	lLastnl := l.lastnl

	for {
		r := l.next(1)

		if r == RuneEOF {
			l.emitError("Unexpected end while reading string value (unclosed quotes)")
			return nil
		}

		if r > unicode.MaxASCII {
			l.emitError(fmt.Sprintf("Non-ASCII character in string value '%v'", string(r)))
			return nil
		}

		if r == '"' && (l.pos == valStart || l.input[l.pos-1] != '\\') {
			break
		}

		if r == '\n' {
			lLine++
			lLastnl = l.pos + 1
		}

		l.next(0)
	}

	val := l.input[valStart:l.pos]

	// Consume the closing quote

	l.next(0)

	l.emitTokenAndValue(TokenSTR, val, false)

	//  Set newline

	l.line = lLine
	l.lastnl = lLastnl

	return lexToken
}
