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

	"devt.de/krotik/spl/scope"
)

func TestDeclarations(t *testing.T) {

	res, err := UnitTestEvalAndAST(`(let x 1)`, nil, `
let
  identifier: x
  int: 1
`[1:])

	if err != nil || res != int64(1) {
		t.Error("Unexpected result:", res, err)
		return
	}

	res, err = UnitTestEval(`(mut x 0); (set x 1); x`, nil)

	if err != nil || res != int64(1) {
		t.Error("Unexpected result:", res, err)
		return
	}

	// The value of a declaration is the declared value

	res, err = UnitTestEval(`(mut x (+ 1 2))`, nil)

	if err != nil || res != int64(3) {
		t.Error("Unexpected result:", res, err)
		return
	}
}

func TestBindingErrors(t *testing.T) {

	// Let bound names cannot be reassigned

	_, err := UnitTestEval(`(let x 1); (set x 2)`, nil)

	if err == nil || err.Error() != "SPL error in unit-test: Invalid binding (Cannot rebind non-mutable x) (Line:1 Pos:13)" {
		t.Error("Unexpected result:", err)
		return
	}

	// Redeclaration in the same scope is forbidden

	_, err = UnitTestEval(`(let x 1); (let x 2)`, nil)

	if err == nil || !strings.Contains(err.Error(), "Re-declaration of x inside local scope") {
		t.Error("Unexpected result:", err)
		return
	}

	_, err = UnitTestEval(`(mut x 1); (mut x 2)`, nil)

	if err == nil || !strings.Contains(err.Error(), "Re-declaration of x inside local scope") {
		t.Error("Unexpected result:", err)
		return
	}

	// Assigning an unknown name is a name error

	_, err = UnitTestEval(`(set x 1)`, nil)

	if err == nil || err.Error() != "SPL error in unit-test: Unknown variable (x) (Line:1 Pos:2)" {
		t.Error("Unexpected result:", err)
		return
	}

	// Reading an unknown name is a name error

	_, err = UnitTestEval(`(+ x 1)`, nil)

	if err == nil || err.Error() != "SPL error in unit-test: Unknown variable (x) (Line:1 Pos:4)" {
		t.Error("Unexpected result:", err)
		return
	}
}

func TestParamBindings(t *testing.T) {

	// Parameters cannot be redeclared or rebound

	_, err := UnitTestEval(`(let f (func f a: (let a 1))); (call f 2)`, nil)

	if err == nil || !strings.Contains(err.Error(), "Re-declaration of param a") {
		t.Error("Unexpected result:", err)
		return
	}

	_, err = UnitTestEval(`(let f (func f a: (set a 1))); (call f 2)`, nil)

	if err == nil || !strings.Contains(err.Error(), "Cannot rebind non-mutable a") {
		t.Error("Unexpected result:", err)
		return
	}
}

func TestShadowing(t *testing.T) {

	// A local declaration shadows an inherited binding in the frame of the
	// called function - the original binding is untouched

	res, err := UnitTestEval(`
(let x 1);
(let f (func f: (let x 2); x));
(call f);
x
`, nil)

	if err != nil || res != int64(1) {
		t.Error("Unexpected result:", res, err)
		return
	}

	res, err = UnitTestEval(`
(let x 1);
(let f (func f: (let x 2); x));
(call f)
`, nil)

	if err != nil || res != int64(2) {
		t.Error("Unexpected result:", res, err)
		return
	}
}

func TestSetPropagation(t *testing.T) {

	// A write to a captured mutable name is visible in the lexical scope
	// where the function was defined while control is still inside it. The
	// closure environment itself is a snapshot - every call starts from the
	// captured value again.

	res, err := UnitTestEval(`
(mut x 0);
(let f (func f: (set x (+ x 1))));
(call f);
(call f);
x
`, nil)

	if err != nil || res != int64(1) {
		t.Error("Unexpected result:", res, err)
		return
	}

	// Nested functions propagate through every aligned frame

	res, err = UnitTestEval(`
(mut x 0);
(let outer (func outer:
    (let inner (func inner: (set x (+ x 10))));
    (call inner);
    x
));
(call outer);
x
`, nil)

	if err != nil || res != int64(10) {
		t.Error("Unexpected result:", res, err)
		return
	}

	// Once a function has escaped its lexical scope no propagation occurs

	res, err = UnitTestEval(`
(let mk (func mk: (mut n 0); (func inc: (set n (+ n 1)); n)));
(let inc (call mk));
(call inc);
(call inc)
`, nil)

	if err != nil || res != int64(1) {
		t.Error("Unexpected result:", res, err)
		return
	}
}

func TestSelfRebinding(t *testing.T) {

	// The executing function cannot be rebound under its own name

	_, err := UnitTestEval(`(let f (func f: (set f 1))); (call f)`, nil)

	if err == nil || !strings.Contains(err.Error(), "Re-binding of current function f") {
		t.Error("Unexpected result:", err)
		return
	}
}

func TestScopeValues(t *testing.T) {

	vs := scope.NewScope(scope.GlobalScope)

	if _, err := UnitTestEval(`(let x 1); (mut y 2)`, vs); err != nil {
		t.Error("Unexpected result:", err)
		return
	}

	if v, ok, _ := vs.GetValue("x"); !ok || v != int64(1) {
		t.Error("Unexpected scope content:", v, ok)
		return
	}

	if v, ok, _ := vs.GetValue("y"); !ok || v != int64(2) {
		t.Error("Unexpected scope content:", v, ok)
		return
	}
}
