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
	"strings"
	"testing"
)

func TestSequences(t *testing.T) {

	// The value of a sequence is the value of its second expression

	res, err := UnitTestEvalAndAST(`1;2`, nil, `
seq
  int: 1
  int: 2
`[1:])

	if err != nil || res != int64(2) {
		t.Error("Unexpected result:", res, err)
		return
	}

	res, err = UnitTestEval(`1;2;3`, nil)

	if err != nil || res != int64(3) {
		t.Error("Unexpected result:", res, err)
		return
	}

	// An empty right hand side after the separator is legal

	res, err = UnitTestEval(`1;`, nil)

	if err != nil || res != int64(1) {
		t.Error("Unexpected result:", res, err)
		return
	}
}

func TestIfStatement(t *testing.T) {

	res, err := UnitTestEvalAndAST(`(if True 1 2)`, nil, `
if
  true
  int: 1
  int: 2
`[1:])

	if err != nil || res != int64(1) {
		t.Error("Unexpected result:", res, err)
		return
	}

	res, err = UnitTestEval(`(if (> 1 2) 1 2)`, nil)

	if err != nil || res != int64(2) {
		t.Error("Unexpected result:", res, err)
		return
	}

	// Only one branch is evaluated

	res, err = UnitTestEval(`(if True 1 (head []))`, nil)

	if err != nil || res != int64(1) {
		t.Error("Unexpected result:", res, err)
		return
	}

	_, err = UnitTestEval(`(if 1 2 3)`, nil)

	if err == nil || !strings.Contains(err.Error(), "If condition must be a boolean") {
		t.Error("Unexpected result:", err)
		return
	}
}

func TestWhileStatement(t *testing.T) {

	res, err := UnitTestEval(`(mut x 0); (while (< x 3) (set x (+ x 1))); x`, nil)

	if err != nil || res != int64(3) {
		t.Error("Unexpected result:", res, err)
		return
	}

	// The while expression has the value of the last body evaluation

	res, err = UnitTestEval(`(mut x 0); (while (< x 3) (set x (+ x 1)))`, nil)

	if err != nil || res != int64(3) {
		t.Error("Unexpected result:", res, err)
		return
	}

	// If the body never ran the value is false

	res, err = UnitTestEval(`(while False 1)`, nil)

	if err != nil || res != false {
		t.Error("Unexpected result:", res, err)
		return
	}

	_, err = UnitTestEval(`(while 1 2)`, nil)

	if err == nil || !strings.Contains(err.Error(), "While condition must be a boolean") {
		t.Error("Unexpected result:", err)
		return
	}
}

func TestPrintStatement(t *testing.T) {

	res, err := UnitTestEval(`(print (+ 1 1))`, nil)

	if err != nil || res != nil {
		t.Error("Unexpected result:", res, err)
		return
	}

	if testout.String() != "2\n" {
		t.Error("Unexpected output:", testout.String())
		return
	}

	// Strings are printed without quotes at the top level

	UnitTestEval(`(print "hello")`, nil)

	if testout.String() != "hello\n" {
		t.Error("Unexpected output:", testout.String())
		return
	}

	UnitTestEval(`(print True); (print nil)`, nil)

	if testout.String() != "True\nnil\n" {
		t.Error("Unexpected output:", testout.String())
		return
	}

	// Aggregates print in their prefix-notation form - map entries appear
	// in sorted key order

	UnitTestEval(`(print [1 "a" [2 3]])`, nil)

	if testout.String() != "[1 \"a\" [2 3]]\n" {
		t.Error("Unexpected output:", testout.String())
		return
	}

	UnitTestEval(`(print {"b":2 "a":1})`, nil)

	if testout.String() != "{\"a\":1 \"b\":2}\n" {
		t.Error("Unexpected output:", testout.String())
		return
	}
}
