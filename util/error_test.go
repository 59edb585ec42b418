/*
 * SPL
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package util

import (
	"testing"

	"devt.de/krotik/spl/parser"
)

func TestRuntimeError(t *testing.T) {

	ast, err := parser.Parse("mytest", "(+ a 1)")
	if err != nil {
		t.Error("Unexpected parse error:", err)
		return
	}

	err = NewRuntimeError("mytest", ErrUnknownVar, "a", ast.Children[0])

	if err.Error() != "SPL error in mytest: Unknown variable (a) (Line:1 Pos:4)" {
		t.Error("Unexpected result:", err)
		return
	}

	// Errors without a node have no line information

	err = NewRuntimeError("mytest", ErrRuntimeError, "foo", nil)

	if err.Error() != "SPL error in mytest: Runtime error (foo)" {
		t.Error("Unexpected result:", err)
		return
	}

	// Check trace handling

	rerr := NewRuntimeError("mytest", ErrUnknownVar, "a", ast.Children[0]).(TraceableRuntimeError)

	rerr.AddTrace(ast)

	if len(rerr.GetTrace()) != 1 {
		t.Error("Unexpected trace:", rerr.GetTrace())
		return
	}

	if res := rerr.GetTraceString(); len(res) != 1 || res[0] != "(+ a 1) (mytest:1)" {
		t.Error("Unexpected trace string:", res)
		return
	}
}

func TestRuntimeErrorJSON(t *testing.T) {

	ast, _ := parser.Parse("mytest", "a")

	err := NewRuntimeError("mytest", ErrUnknownVar, "a", ast).(*RuntimeError)

	if _, merr := err.MarshalJSON(); merr != nil {
		t.Error("Unexpected marshal error:", merr)
		return
	}

	if res := err.ToJSONObject(); res["Type"] != "Unknown variable" || res["Detail"] != "a" {
		t.Error("Unexpected JSON object:", res)
		return
	}
}
