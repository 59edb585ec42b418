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
	"encoding/json"
	"fmt"
	"strings"
	"testing"
)

func TestASTNodeEquals(t *testing.T) {

	ast1, _ := UnitTestParse("mytest", `(+ 1 2)`)
	ast2, _ := UnitTestParse("mytest", `(+ 1 2)`)
	ast3, _ := UnitTestParse("mytest", `(+ 1 3)`)
	ast4, _ := UnitTestParse("mytest", `(+ 1 (* 2 3))`)

	if ok, msg := ast1.Equals(ast2, false); !ok {
		t.Error("ASTs should be equal:", msg)
		return
	}

	if ok, msg := ast1.Equals(ast3, false); ok || !strings.Contains(msg, "Val is different 2 vs 3") {
		t.Error("ASTs should not be equal:", msg)
		return
	}

	if ok, msg := ast1.Equals(ast4, false); ok || !strings.Contains(msg, "Number of children is different") {
		t.Error("ASTs should not be equal:", msg)
		return
	}
}

func TestASTNodeJSONSerialization(t *testing.T) {

	ast, _ := UnitTestParse("mytest", `(let x [1 "a"])`)

	// Serialize to JSON and back

	astJSON := ast.ToJSONObject()

	data, err := json.Marshal(astJSON)
	if err != nil {
		t.Error("Unexpected marshal error:", err)
		return
	}

	var decoded map[string]interface{}
	if err = json.Unmarshal(data, &decoded); err != nil {
		t.Error("Unexpected unmarshal error:", err)
		return
	}

	ast2, err := ASTFromJSONObject(decoded)
	if err != nil {
		t.Error("Unexpected conversion error:", err)
		return
	}

	if ok, msg := ast.Equals(ast2, true); !ok {
		t.Error("ASTs should be equal:", msg)
		return
	}

	// A node without a name is invalid

	if _, err := ASTFromJSONObject(map[string]interface{}{}); err == nil {
		t.Error("Conversion should fail")
		return
	}
}

func TestLABuffer(t *testing.T) {

	buf := NewLABuffer(Lex("test", "1 2 3 4 5 6 7 8 9"), 3)

	if token, ok := buf.Next(); token.Val != "1" || !ok {
		t.Error("Unexpected result:", token, ok)
		return
	}

	if token, ok := buf.Next(); token.Val != "2" || !ok {
		t.Error("Unexpected result:", token, ok)
		return
	}

	// Check Peek

	if token, ok := buf.Peek(0); token.Val != "3" || !ok {
		t.Error("Unexpected result:", token, ok)
		return
	}

	if token, ok := buf.Peek(1); token.Val != "4" || !ok {
		t.Error("Unexpected result:", token, ok)
		return
	}

	if token, ok := buf.Peek(3); token.ID != TokenEOF || ok {
		t.Error("Unexpected result:", token, ok)
		return
	}

	// Exhaust the buffer

	for i := 3; i <= 9; i++ {
		if token, ok := buf.Next(); token.Val != fmt.Sprint(i) || !ok {
			t.Error("Unexpected result:", token, ok)
			return
		}
	}

	if token, ok := buf.Next(); token.ID != TokenEOF || !ok {
		t.Error("Unexpected result:", token, ok)
		return
	}

	if token, ok := buf.Next(); token.ID != TokenEOF || ok {
		t.Error("Unexpected result:", token, ok)
		return
	}
}

func TestSmallLABuffer(t *testing.T) {

	// A size smaller than 1 is corrected to 1

	buf := NewLABuffer(Lex("test", "1"), 0)

	if token, ok := buf.Next(); token.Val != "1" || !ok {
		t.Error("Unexpected result:", token, ok)
		return
	}

	if token, ok := buf.Next(); token.ID != TokenEOF || !ok {
		t.Error("Unexpected result:", token, ok)
		return
	}

	if token, ok := buf.Next(); token.ID != TokenEOF || ok {
		t.Error("Unexpected result:", token, ok)
		return
	}
}
