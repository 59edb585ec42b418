/*
 * SPL
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package interpreter

import (
	"bytes"
	"strings"
	"testing"

	"devt.de/krotik/spl/parser"
)

func TestInvalidRuntime(t *testing.T) {

	erp := NewSPLRuntimeProvider("test", nil, nil)

	node := &parser.ASTNode{Name: "unknownnode", Token: &parser.LexToken{}, Children: nil}
	node.Runtime = erp.Runtime(node)

	if err := node.Runtime.Validate(); err == nil ||
		!strings.Contains(err.Error(), "Unknown node: unknownnode") {
		t.Error("Unexpected result:", err)
		return
	}
}

func TestProviderDefaults(t *testing.T) {

	erp := NewSPLRuntimeProvider("test", nil, nil)

	if erp.Logger == nil || erp.Out == nil {
		t.Error("Provider should have default logger and output")
		return
	}

	if f := erp.currentFrame(); f != nil {
		t.Error("Provider should start without frames:", f)
		return
	}

	if f := erp.currentFunction(); f != nil {
		t.Error("Provider should start without a current function:", f)
		return
	}
}

func TestValueStrings(t *testing.T) {

	if s := ToString(nil); s != "nil" {
		t.Error("Unexpected result:", s)
		return
	}

	if s := ToString(int64(-42)); s != "-42" {
		t.Error("Unexpected result:", s)
		return
	}

	if s := ToString(false); s != "False" {
		t.Error("Unexpected result:", s)
		return
	}

	if s := ToString("foo"); s != "foo" {
		t.Error("Unexpected result:", s)
		return
	}

	l := []interface{}{int64(1), "a", nil}

	if s := ToString(l); s != "[1 \"a\" nil]" {
		t.Error("Unexpected result:", s)
		return
	}

	m := map[interface{}]interface{}{
		"b":      int64(2),
		"a":      int64(1),
		int64(3): l,
	}

	if s := ToString(m); s != "{3:[1 \"a\" nil] \"a\":1 \"b\":2}" {
		t.Error("Unexpected result:", s)
		return
	}
}

func TestInterpret(t *testing.T) {

	var out bytes.Buffer

	res, err := Interpret("test", `(print "hello"); (+ 1 2)`, false, &out)

	if err != nil || res != int64(3) {
		t.Error("Unexpected result:", res, err)
		return
	}

	if out.String() != "hello\n" {
		t.Error("Unexpected output:", out.String())
		return
	}

	// Verbose mode writes a rendering of the AST before evaluation

	out.Reset()

	res, err = Interpret("test", `(+ 1 2)`, true, &out)

	if err != nil || res != int64(3) {
		t.Error("Unexpected result:", res, err)
		return
	}

	if out.String() != "(+ 1 2)\n" {
		t.Error("Unexpected output:", out.String())
		return
	}

	// Empty input is valid and produces no value

	res, err = Interpret("test", "", false, &out)

	if err != nil || res != nil {
		t.Error("Unexpected result:", res, err)
		return
	}

	// Errors are returned to the caller

	_, err = Interpret("test", `(let x`, false, &out)

	if err == nil {
		t.Error("Expected a parse error")
		return
	}
}

func TestDeterminism(t *testing.T) {

	// Two independent evaluators produce the same value for the same program

	prog := `
(mut acc 0);
(let f (func f n: (if (== n 0) acc (call f (- n 1)))));
(call f 3);
(push (call f 2) [acc])
`

	res1, err1 := UnitTestEval(prog, nil)
	res2, err2 := UnitTestEval(prog, nil)

	if err1 != nil || err2 != nil {
		t.Error("Unexpected errors:", err1, err2)
		return
	}

	if ToString(res1) != ToString(res2) {
		t.Error("Unexpected results:", res1, res2)
		return
	}
}
