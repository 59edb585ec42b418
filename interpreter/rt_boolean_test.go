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

func TestBooleanOperators(t *testing.T) {

	res, err := UnitTestEvalAndAST(`(&& True False)`, nil, `
and
  true
  false
`[1:])

	if err != nil || res != false {
		t.Error("Unexpected result:", res, err)
		return
	}

	res, err = UnitTestEval(`(|| False True)`, nil)

	if err != nil || res != true {
		t.Error("Unexpected result:", res, err)
		return
	}

	res, err = UnitTestEval(`(! False)`, nil)

	if err != nil || res != true {
		t.Error("Unexpected result:", res, err)
		return
	}

	_, err = UnitTestEval(`(&& 1 True)`, nil)

	if err == nil || !strings.Contains(err.Error(), "Operand is not a boolean") {
		t.Error("Unexpected result:", err)
		return
	}

	_, err = UnitTestEval(`(! 1)`, nil)

	if err == nil || !strings.Contains(err.Error(), "Operand is not a boolean") {
		t.Error("Unexpected result:", err)
		return
	}
}

func TestEagerBooleanEvaluation(t *testing.T) {

	// Both operands are always evaluated - an error in the second operand
	// surfaces even if the first operand already decides the result

	_, err := UnitTestEval(`(|| True (head []))`, nil)

	if err == nil || !strings.Contains(err.Error(), "List is empty") {
		t.Error("Unexpected result:", err)
		return
	}

	_, err = UnitTestEval(`(&& False (head []))`, nil)

	if err == nil || !strings.Contains(err.Error(), "List is empty") {
		t.Error("Unexpected result:", err)
		return
	}
}

func TestEquality(t *testing.T) {

	res, err := UnitTestEval(`(== 1 1)`, nil)

	if err != nil || res != true {
		t.Error("Unexpected result:", res, err)
		return
	}

	res, err = UnitTestEval(`(== 1 "1")`, nil)

	if err != nil || res != false {
		t.Error("Unexpected result:", res, err)
		return
	}

	res, err = UnitTestEval(`(!= nil nil)`, nil)

	if err != nil || res != false {
		t.Error("Unexpected result:", res, err)
		return
	}

	res, err = UnitTestEval(`(== "abc" "abc")`, nil)

	if err != nil || res != true {
		t.Error("Unexpected result:", res, err)
		return
	}

	// Aggregate values compare by identity

	res, err = UnitTestEval(`(== [1 2] [1 2])`, nil)

	if err != nil || res != false {
		t.Error("Unexpected result:", res, err)
		return
	}

	res, err = UnitTestEval(`(let l [1 2]); (== l l)`, nil)

	if err != nil || res != true {
		t.Error("Unexpected result:", res, err)
		return
	}

	res, err = UnitTestEval(`(let m {1:2}); (let m2 {1:2}); (== m m2)`, nil)

	if err != nil || res != false {
		t.Error("Unexpected result:", res, err)
		return
	}

	res, err = UnitTestEval(`(let m {1:2}); (== m m)`, nil)

	if err != nil || res != true {
		t.Error("Unexpected result:", res, err)
		return
	}
}
